package types

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func TestClaimsCollabRoles(t *testing.T) {
	c := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "u-1"},
		Teams:            []string{"collab-neuro-viewer", "collab-sim-editor"},
	}

	assert.Equal(t, "u-1", c.UserID())
	assert.True(t, c.CanView("neuro"))
	assert.False(t, c.CanEdit("neuro"))
	assert.True(t, c.CanView("sim"))
	assert.True(t, c.CanEdit("sim"))
	assert.False(t, c.CanView("other"))
}
