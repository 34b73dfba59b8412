package database

import (
	"context"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/rpupo63/domp-site-backend/errs"
	"github.com/rpupo63/domp-site-backend/models"
)

// ProjectRepo stores the portfolio as one collection. Every mutation loads
// the whole list, changes it and writes it back; two concurrent admin
// writes can lose one of the updates.
type ProjectRepo struct {
	collection Collection
}

func NewProjectRepo(store Store) *ProjectRepo {
	return &ProjectRepo{collection: store.Collection(ProjectsCollection)}
}

// List returns every project in storage order. An unreachable store yields
// an empty list.
func (r *ProjectRepo) List(ctx context.Context) []models.Project {
	projects, _ := readOrDefault(ProjectsCollection, func() ([]models.Project, error) {
		return findAll[models.Project](ctx, r.collection)
	}, emptySlice[models.Project])
	return projects
}

// Published returns the projects with status publicado, in storage order.
func (r *ProjectRepo) Published(ctx context.Context) []models.Project {
	out := []models.Project{}
	for _, p := range r.List(ctx) {
		if p.Published() {
			out = append(out, p)
		}
	}
	return out
}

// BySlug finds a published project. Drafts are never returned.
func (r *ProjectRepo) BySlug(ctx context.Context, slug string) (models.Project, bool) {
	for _, p := range r.List(ctx) {
		if p.Slug == slug && p.Published() {
			return p, true
		}
	}
	return models.Project{}, false
}

// load is List for writers: it fails instead of pretending the store is empty.
func (r *ProjectRepo) load(ctx context.Context) ([]models.Project, error) {
	projects, err := findAll[models.Project](ctx, r.collection)
	if err != nil {
		return nil, errs.NewDatabaseError("leer", "los proyectos", err)
	}
	return projects, nil
}

func (r *ProjectRepo) save(ctx context.Context, projects []models.Project, operation string) error {
	err := replaceAll(ctx, r.collection, projects, func(p models.Project) string { return p.ID })
	if err != nil {
		return errs.NewDatabaseError(operation, "el proyecto", err)
	}
	return nil
}

func (r *ProjectRepo) Create(ctx context.Context, in models.ProjectInput) (models.Project, error) {
	p, err := validateProject(in)
	if err != nil {
		return models.Project{}, err
	}

	projects, err := r.load(ctx)
	if err != nil {
		return models.Project{}, err
	}

	p.ID = uuid.NewString()
	p.Slug = uniqueSlug(p.Name, func(s string) bool {
		return slices.ContainsFunc(projects, func(o models.Project) bool { return o.Slug == s })
	})

	projects = append(projects, p)
	if err := r.save(ctx, projects, "crear"); err != nil {
		return models.Project{}, err
	}
	return p, nil
}

// Update replaces the project with the given id. The slug is regenerated
// only when the trimmed name changes, ignoring the project's own slug when
// checking for collisions.
func (r *ProjectRepo) Update(ctx context.Context, id string, in models.ProjectInput) (models.Project, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return models.Project{}, errs.NewMissingRequiredFieldError("id")
	}
	p, err := validateProject(in)
	if err != nil {
		return models.Project{}, err
	}

	projects, err := r.load(ctx)
	if err != nil {
		return models.Project{}, err
	}
	i := slices.IndexFunc(projects, func(o models.Project) bool { return o.ID == id })
	if i < 0 {
		return models.Project{}, errs.NewNotFound("proyecto")
	}

	stored := projects[i]
	p.ID = stored.ID
	p.Slug = stored.Slug
	if stored.Name != p.Name {
		p.Slug = uniqueSlug(p.Name, func(s string) bool {
			return slices.ContainsFunc(projects, func(o models.Project) bool { return o.Slug == s && o.ID != id })
		})
	}

	projects[i] = p
	if err := r.save(ctx, projects, "actualizar"); err != nil {
		return models.Project{}, err
	}
	return p, nil
}

func (r *ProjectRepo) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return errs.NewMissingRequiredFieldError("id")
	}
	projects, err := r.load(ctx)
	if err != nil {
		return err
	}
	i := slices.IndexFunc(projects, func(o models.Project) bool { return o.ID == id })
	if i < 0 {
		return errs.NewNotFound("proyecto")
	}
	return r.save(ctx, slices.Delete(projects, i, i+1), "eliminar")
}

func validateProject(in models.ProjectInput) (models.Project, error) {
	p := models.Project{
		Name:        strings.TrimSpace(in.Name),
		Type:        models.ProjectType(strings.TrimSpace(in.Type)),
		City:        strings.TrimSpace(in.City),
		Description: strings.TrimSpace(in.Description),
		Status:      models.ProjectStatus(strings.TrimSpace(in.Status)),
		ImageURL:    strings.TrimSpace(in.ImageURL),
	}
	if in.Year != nil && *in.Year != 0 {
		year := *in.Year
		p.Year = &year
	}

	var missing []string
	for _, f := range []struct{ name, value string }{
		{"name", p.Name},
		{"type", string(p.Type)},
		{"city", p.City},
		{"description", p.Description},
		{"status", string(p.Status)},
	} {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return models.Project{}, errs.NewMissingRequiredFieldError(strings.Join(missing, ", "))
	}

	if !p.Type.Valid() {
		return models.Project{}, errs.NewInvalidFieldError("type", "debe ser residencial, comercial o industrial")
	}
	if !p.Status.Valid() {
		return models.Project{}, errs.NewInvalidFieldError("status", "debe ser publicado o borrador")
	}
	return p, nil
}
