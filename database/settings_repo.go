package database

import (
	"context"
	"errors"
	"strings"

	"github.com/rpupo63/domp-site-backend/errs"
	"github.com/rpupo63/domp-site-backend/models"
	"github.com/rs/zerolog/log"
)

type SettingsRepo struct {
	collection Collection
}

func NewSettingsRepo(store Store) *SettingsRepo {
	return &SettingsRepo{collection: store.Collection(SettingsCollection)}
}

// Get returns the stored settings, or the defaults when there are none yet
// or the store cannot be reached. A missing document is seeded with the
// defaults on a best-effort basis. Any other read failure still yields the
// defaults, together with a store error the caller may surface as a warning.
func (r *SettingsRepo) Get(ctx context.Context) (models.SiteSettings, error) {
	s, err := readOrDefault(SettingsCollection, func() (models.SiteSettings, error) {
		return findOne[models.SiteSettings](ctx, r.collection, models.SettingsID)
	}, DefaultSettings)

	switch {
	case err == nil:
		return s.Normalize(), nil
	case errors.Is(err, errs.ErrNotFound):
		if seedErr := upsert(ctx, r.collection, models.SettingsID, s); seedErr != nil {
			log.Warn().Err(seedErr).Msg("could not seed default settings")
		}
		return s, nil
	case errs.IsStoreUnavailable(err):
		return s, nil
	default:
		return s, errs.NewDatabaseError("leer", "la configuración", err)
	}
}

// current is the base a write merges onto: the stored document, or the
// defaults when none exists yet. Unlike Get it fails on an unreachable store
// so that writes never silently overwrite with defaults.
func (r *SettingsRepo) current(ctx context.Context) (models.SiteSettings, error) {
	s, err := findOne[models.SiteSettings](ctx, r.collection, models.SettingsID)
	if errors.Is(err, errs.ErrNotFound) {
		return DefaultSettings(), nil
	}
	if err != nil {
		return models.SiteSettings{}, errs.NewDatabaseError("leer", "la configuración", err)
	}
	return s.Normalize(), nil
}

// Update merges patch onto the current settings, stores the result and
// returns it.
func (r *SettingsRepo) Update(ctx context.Context, patch models.SettingsPatch) (models.SiteSettings, error) {
	base, err := r.current(ctx)
	if err != nil {
		return models.SiteSettings{}, err
	}
	merged := base.Apply(patch)
	if err := upsert(ctx, r.collection, models.SettingsID, merged); err != nil {
		return models.SiteSettings{}, errs.NewDatabaseError("guardar", "la configuración", err)
	}
	return merged, nil
}

// SetSocialLink adds or replaces one social network link. New keys are
// appended after the existing ones.
func (r *SettingsRepo) SetSocialLink(ctx context.Context, key, url string) (models.SiteSettings, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return models.SiteSettings{}, errs.NewMissingRequiredFieldError("key")
	}
	url = strings.TrimSpace(url)

	links := models.NewSocialLinks(key, url)
	return r.Update(ctx, models.SettingsPatch{Social: &links})
}

// RemoveSocialLink deletes a social network key. Removing an absent key is
// a NotFound error.
func (r *SettingsRepo) RemoveSocialLink(ctx context.Context, key string) (models.SiteSettings, error) {
	base, err := r.current(ctx)
	if err != nil {
		return models.SiteSettings{}, err
	}
	if !base.Social.Delete(key) {
		return models.SiteSettings{}, errs.NewNotFound("red social " + key)
	}
	if err := upsert(ctx, r.collection, models.SettingsID, base); err != nil {
		return models.SiteSettings{}, errs.NewDatabaseError("guardar", "la configuración", err)
	}
	return base, nil
}
