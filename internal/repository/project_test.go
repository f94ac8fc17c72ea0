package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/linskybing/simqueue/internal/domain/project"
	"github.com/linskybing/simqueue/internal/repository"
	"github.com/linskybing/simqueue/internal/testutils"
	"github.com/linskybing/simqueue/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newProject(collab, owner string) *project.Project {
	return &project.Project{
		ID:       uuid.New(),
		Collab:   collab,
		Owner:    owner,
		Title:    "Cortical column",
		Abstract: "abstract",
	}
}

func TestProjectQueryByDerivedStatus(t *testing.T) {
	ctx := context.Background()
	repos := repository.NewRepositories(testutils.NewSQLiteDB(t))
	feb := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	inPrep := newProject("c1", "alice")
	underReview := newProject("c1", "bob")
	underReview.SubmissionDate = project.DateOf(feb)
	rejected := newProject("c2", "alice")
	rejected.SubmissionDate = project.DateOf(feb)
	rejected.DecisionDate = project.DateOf(feb)
	accepted := newProject("c2", "bob")
	accepted.SubmissionDate = project.DateOf(feb)
	require.NoError(t, accepted.Accept(feb))

	for _, p := range []*project.Project{inPrep, underReview, rejected, accepted} {
		require.NoError(t, repos.Project.Create(ctx, p))
	}

	page := types.Pagination{Size: 50}
	query := func(f project.Filter) []uuid.UUID {
		t.Helper()
		ps, err := repos.Project.Query(ctx, f, page)
		require.NoError(t, err)
		out := make([]uuid.UUID, len(ps))
		for i, p := range ps {
			out[i] = p.ID
			assert.Contains(t, f.Status, p.Status(), "query returned a project its own status disagrees with")
		}
		return out
	}

	for _, p := range []*project.Project{inPrep, underReview, rejected, accepted} {
		got := query(project.Filter{Status: []project.Status{p.Status()}})
		assert.Equal(t, []uuid.UUID{p.ID}, got, "status %s", p.Status())
	}

	got := query(project.Filter{Status: []project.Status{project.StatusRejected, project.StatusAccepted}})
	assert.ElementsMatch(t, []uuid.UUID{rejected.ID, accepted.ID}, got)

	all, err := repos.Project.Query(ctx, project.Filter{Collab: []string{"c2"}, Owner: []string{"alice", "bob"}}, page)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestProjectRoundTripAndDelete(t *testing.T) {
	ctx := context.Background()
	repos := repository.NewRepositories(testutils.NewSQLiteDB(t))

	p := newProject("c1", "alice")
	p.SubmissionDate = project.DateOf(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, repos.Project.Create(ctx, p))

	got, err := repos.Project.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, project.StatusUnderReview, got.Status())
	assert.Equal(t, "2024-02-01", *project.FormatDate(got.SubmissionDate))

	require.NoError(t, repos.Project.Delete(ctx, p.ID))
	require.NoError(t, repos.Project.Delete(ctx, p.ID))

	_, err = repos.Project.GetByID(ctx, p.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestProjectQueryOrdersByCreation(t *testing.T) {
	ctx := context.Background()
	repos := repository.NewRepositories(testutils.NewSQLiteDB(t))
	created := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	first := newProject("c1", "alice")
	first.ID = uuid.MustParse("ffffffff-0000-4000-8000-000000000000")
	first.CreatedAt = created
	second := newProject("c1", "alice")
	second.ID = uuid.MustParse("00000000-0000-4000-8000-000000000000")
	second.CreatedAt = created.Add(time.Minute)
	for _, p := range []*project.Project{second, first} {
		require.NoError(t, repos.Project.Create(ctx, p))
	}

	ps, err := repos.Project.Query(ctx, project.Filter{}, types.Pagination{Size: 10})
	require.NoError(t, err)
	require.Len(t, ps, 2)
	assert.Equal(t, first.ID, ps[0].ID)
	assert.Equal(t, second.ID, ps[1].ID)

	err = repos.Project.Create(ctx, newProjectWithID(first.ID))
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func newProjectWithID(id uuid.UUID) *project.Project {
	p := newProject("c9", "carol")
	p.ID = id
	return p
}
