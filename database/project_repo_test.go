package database

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/rpupo63/domp-site-backend/errs"
	"github.com/rpupo63/domp-site-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func projectInput(name string) models.ProjectInput {
	return models.ProjectInput{
		Name:        name,
		Type:        "residencial",
		City:        "Chihuahua",
		Description: "Casa habitación de dos plantas",
		Status:      "publicado",
	}
}

func TestProjectCreateSlugs(t *testing.T) {
	ctx := context.Background()
	repo := NewProjectRepo(NewMemoryStore())

	first, err := repo.Create(ctx, projectInput("  Casa Roble "))
	require.NoError(t, err)
	second, err := repo.Create(ctx, projectInput("Casa Roble"))
	require.NoError(t, err)
	third, err := repo.Create(ctx, projectInput("¡¡¡"))
	require.NoError(t, err)

	assert.Equal(t, "casa-roble", first.Slug)
	assert.Equal(t, "Casa Roble", first.Name)
	assert.Equal(t, "casa-roble-1", second.Slug)
	assert.Equal(t, "proyecto", third.Slug)

	_, err = uuid.Parse(first.ID)
	assert.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	list := repo.List(ctx)
	require.Len(t, list, 3)
	assert.Equal(t, []string{first.ID, second.ID, third.ID}, []string{list[0].ID, list[1].ID, list[2].ID})
}

func TestProjectCreateValidation(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	repo := NewProjectRepo(store)

	in := projectInput("Casa")
	in.City = "   "
	_, err := repo.Create(ctx, in)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrMissingRequiredField)

	in = projectInput("Casa")
	in.Type = "hotelero"
	_, err = repo.Create(ctx, in)
	assert.ErrorIs(t, err, errs.ErrInvalidField)

	in = projectInput("Casa")
	in.Status = "archivado"
	_, err = repo.Create(ctx, in)
	assert.ErrorIs(t, err, errs.ErrInvalidField)

	assert.Empty(t, repo.List(ctx))
}

func TestProjectYearZeroIsAbsent(t *testing.T) {
	in := projectInput("Bodega Norte")
	in.Year = ptr(0)
	p, err := NewProjectRepo(NewMemoryStore()).Create(context.Background(), in)
	require.NoError(t, err)
	assert.Nil(t, p.Year)
}

func TestProjectUpdateSlug(t *testing.T) {
	ctx := context.Background()
	repo := NewProjectRepo(NewMemoryStore())

	a, err := repo.Create(ctx, projectInput("Casa Roble"))
	require.NoError(t, err)
	b, err := repo.Create(ctx, projectInput("Casa Pino"))
	require.NoError(t, err)

	in := projectInput(" Casa Roble ")
	in.Description = "Nueva descripción"
	same, err := repo.Update(ctx, a.ID, in)
	require.NoError(t, err)
	assert.Equal(t, "casa-roble", same.Slug, "unchanged name keeps the slug")
	assert.Equal(t, "Nueva descripción", same.Description)

	renamed, err := repo.Update(ctx, b.ID, projectInput("Casa Roble"))
	require.NoError(t, err)
	assert.Equal(t, "casa-roble-1", renamed.Slug)

	// a project's own slug is not a collision
	back, err := repo.Update(ctx, a.ID, projectInput("Casa  Roble"))
	require.NoError(t, err)
	assert.Equal(t, "casa-roble", back.Slug)

	_, err = repo.Update(ctx, uuid.NewString(), projectInput("Otra"))
	assert.True(t, errs.IsNotFound(err))
}

func TestProjectPublicReads(t *testing.T) {
	ctx := context.Background()
	repo := NewProjectRepo(NewMemoryStore())

	pub, err := repo.Create(ctx, projectInput("Plaza Norte"))
	require.NoError(t, err)
	draftIn := projectInput("Torre Centro")
	draftIn.Status = "borrador"
	draft, err := repo.Create(ctx, draftIn)
	require.NoError(t, err)

	published := repo.Published(ctx)
	require.Len(t, published, 1)
	assert.Equal(t, pub.ID, published[0].ID)

	got, ok := repo.BySlug(ctx, pub.Slug)
	require.True(t, ok)
	assert.Equal(t, pub, got)

	_, ok = repo.BySlug(ctx, draft.Slug)
	assert.False(t, ok, "drafts are never returned by slug")
}

func TestProjectDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewProjectRepo(NewMemoryStore())

	p, err := repo.Create(ctx, projectInput("Casa Roble"))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, p.ID))
	assert.Empty(t, repo.List(ctx))
	assert.True(t, errs.IsNotFound(repo.Delete(ctx, p.ID)))
}

func TestProjectStoreDown(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	repo := NewProjectRepo(store)
	_, err := repo.Create(ctx, projectInput("Casa Roble"))
	require.NoError(t, err)

	store.SetUnavailable(true)
	assert.Equal(t, []models.Project{}, repo.List(ctx))
	assert.Equal(t, []models.Project{}, repo.Published(ctx))

	_, err = repo.Create(ctx, projectInput("Casa Pino"))
	assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
}

// Two writers that both read before either writes: the second overwrite
// drops the first one's project. Mutations are not serialized.
func TestProjectConcurrentWritesLoseUpdates(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	c := store.Collection(ProjectsCollection)

	snapshotA, err := findAll[models.Project](ctx, c)
	require.NoError(t, err)
	snapshotB, err := findAll[models.Project](ctx, c)
	require.NoError(t, err)

	idOf := func(p models.Project) string { return p.ID }
	require.NoError(t, replaceAll(ctx, c, append(snapshotA, models.Project{ID: "a", Slug: "a"}), idOf))
	require.NoError(t, replaceAll(ctx, c, append(snapshotB, models.Project{ID: "b", Slug: "b"}), idOf))

	list := NewProjectRepo(store).List(ctx)
	require.Len(t, list, 1)
	assert.Equal(t, "b", list[0].ID)
}
