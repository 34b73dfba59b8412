package database

import (
	"context"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/rpupo63/domp-site-backend/errs"
	"github.com/rpupo63/domp-site-backend/models"
)

// ServiceRepo stores the specialties catalog as one collection, with the
// same whole-list read-modify-write cycle as ProjectRepo.
type ServiceRepo struct {
	collection Collection
}

func NewServiceRepo(store Store) *ServiceRepo {
	return &ServiceRepo{collection: store.Collection(ServicesCollection)}
}

// List returns the stored catalog, or the built-in one when the store is
// empty or unreachable.
func (r *ServiceRepo) List(ctx context.Context) []models.Service {
	services, _ := readOrDefault(ServicesCollection, func() ([]models.Service, error) {
		return findAll[models.Service](ctx, r.collection)
	}, DefaultServices)
	if len(services) == 0 {
		return DefaultServices()
	}
	return services
}

func (r *ServiceRepo) ByID(ctx context.Context, id string) (models.Service, bool) {
	services := r.List(ctx)
	i := slices.IndexFunc(services, func(s models.Service) bool { return s.ID == id })
	if i < 0 {
		return models.Service{}, false
	}
	return services[i], true
}

// load returns what List shows for an empty store, so that editing a
// built-in entry persists the whole catalog. Store failures are errors.
func (r *ServiceRepo) load(ctx context.Context) ([]models.Service, error) {
	services, err := findAll[models.Service](ctx, r.collection)
	if err != nil {
		return nil, errs.NewDatabaseError("leer", "los servicios", err)
	}
	if len(services) == 0 {
		return DefaultServices(), nil
	}
	return services, nil
}

func (r *ServiceRepo) save(ctx context.Context, services []models.Service, operation string) error {
	err := replaceAll(ctx, r.collection, services, func(s models.Service) string { return s.ID })
	if err != nil {
		return errs.NewDatabaseError(operation, "el servicio", err)
	}
	return nil
}

func (r *ServiceRepo) Create(ctx context.Context, in models.ServiceInput) (models.Service, error) {
	s, err := validateService(in)
	if err != nil {
		return models.Service{}, err
	}
	services, err := r.load(ctx)
	if err != nil {
		return models.Service{}, err
	}

	s.ID = uuid.NewString()
	services = append(services, s)
	if err := r.save(ctx, services, "crear"); err != nil {
		return models.Service{}, err
	}
	return s, nil
}

func (r *ServiceRepo) Update(ctx context.Context, id string, in models.ServiceInput) (models.Service, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return models.Service{}, errs.NewMissingRequiredFieldError("id")
	}
	s, err := validateService(in)
	if err != nil {
		return models.Service{}, err
	}
	services, err := r.load(ctx)
	if err != nil {
		return models.Service{}, err
	}
	i := slices.IndexFunc(services, func(o models.Service) bool { return o.ID == id })
	if i < 0 {
		return models.Service{}, errs.NewNotFound("servicio")
	}

	s.ID = id
	services[i] = s
	if err := r.save(ctx, services, "actualizar"); err != nil {
		return models.Service{}, err
	}
	return s, nil
}

func (r *ServiceRepo) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return errs.NewMissingRequiredFieldError("id")
	}
	services, err := r.load(ctx)
	if err != nil {
		return err
	}
	i := slices.IndexFunc(services, func(o models.Service) bool { return o.ID == id })
	if i < 0 {
		return errs.NewNotFound("servicio")
	}
	return r.save(ctx, slices.Delete(services, i, i+1), "eliminar")
}

func validateService(in models.ServiceInput) (models.Service, error) {
	s := models.Service{
		Title:               strings.TrimSpace(in.Title),
		Description:         strings.TrimSpace(in.Description),
		DetailedDescription: strings.TrimSpace(in.DetailedDescription),
		Benefits:            nonBlank(in.Benefits),
		IdealClient:         strings.TrimSpace(in.IdealClient),
		Icon:                strings.TrimSpace(in.Icon),
		ImageURL:            strings.TrimSpace(in.ImageURL),
		Category:            strings.TrimSpace(in.Category),
	}
	if gallery := nonBlank(in.GalleryImages); len(gallery) > 0 {
		s.GalleryImages = gallery
	}

	var missing []string
	if s.Title == "" {
		missing = append(missing, "title")
	}
	if s.Description == "" {
		missing = append(missing, "description")
	}
	if len(s.Benefits) == 0 {
		missing = append(missing, "benefits")
	}
	if s.IdealClient == "" {
		missing = append(missing, "idealClient")
	}
	if len(missing) > 0 {
		return models.Service{}, errs.NewMissingRequiredFieldError(strings.Join(missing, ", "))
	}
	return s, nil
}

// nonBlank trims every entry and drops the empty ones.
func nonBlank(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
