package types

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Claims identifies the caller. The token is issued by the identity service;
// Teams lists the collab team memberships it reports.
type Claims struct {
	Username string   `json:"preferred_username"`
	Teams    []string `json:"teams"`
	jwt.RegisteredClaims
}

// UserID returns the identity service subject.
func (c *Claims) UserID() string {
	return c.Subject
}

// InTeam reports whether the caller is a member of team.
func (c *Claims) InTeam(team string) bool {
	for _, t := range c.Teams {
		if t == team {
			return true
		}
	}
	return false
}

// CanView reports whether the caller holds any role in the collab.
func (c *Claims) CanView(collabID string) bool {
	return c.hasCollabRole(collabID, "viewer", "editor", "administrator")
}

// CanEdit reports whether the caller may modify records of the collab.
func (c *Claims) CanEdit(collabID string) bool {
	return c.hasCollabRole(collabID, "editor", "administrator")
}

func (c *Claims) hasCollabRole(collabID string, roles ...string) bool {
	for _, role := range roles {
		if c.InTeam(fmt.Sprintf("collab-%s-%s", collabID, role)) {
			return true
		}
	}
	return false
}
