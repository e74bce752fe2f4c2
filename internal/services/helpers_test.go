package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/craftbridge/platform_be_craftbridge/internal/models"
	"github.com/craftbridge/platform_be_craftbridge/internal/store"
	"github.com/craftbridge/platform_be_craftbridge/internal/store/memstore"
)

func newCommunity(t *testing.T, st *store.Store, email string) *models.User {
	t.Helper()
	u := &models.User{
		Name:     "Community " + email,
		Email:    email,
		Password: "x",
		Role:     models.RoleCommunity,
		IsActive: true,
	}
	require.NoError(t, st.Users.Create(context.Background(), u))
	return u
}

func newEngineer(t *testing.T, st *store.Store, email string, skills ...string) *models.User {
	t.Helper()
	u := &models.User{
		Name:     "Engineer " + email,
		Email:    email,
		Password: "x",
		Role:     models.RoleEngineer,
		IsActive: true,
		Skills:   models.EncodeTags(skills),
	}
	require.NoError(t, st.Users.Create(context.Background(), u))
	return u
}

func newOpenProject(t *testing.T, st *store.Store, owner *models.User, skills ...string) *models.Project {
	t.Helper()
	svc := NewProjectService(st)
	p, err := svc.Create(context.Background(), owner, CreateProjectInput{
		Title:          "Fix the community well",
		Description:    "The hand pump is seized and needs a rebuild.",
		Category:       string(models.CategoryRepair),
		Difficulty:     "medium",
		Location:       "Riverside",
		RequiredSkills: skills,
	})
	require.NoError(t, err)
	return p
}

func testStore(t *testing.T) *store.Store {
	t.Helper()
	return memstore.New()
}
