package database

import "context"

type Database struct {
	store        Store
	settingsRepo *SettingsRepo
	projectRepo  *ProjectRepo
	serviceRepo  *ServiceRepo
	quoteRepo    *QuoteRepo
}

// New initializes a new Database struct with each repository sharing store
func New(store Store) Database {
	return Database{
		store:        store,
		settingsRepo: NewSettingsRepo(store),
		projectRepo:  NewProjectRepo(store),
		serviceRepo:  NewServiceRepo(store),
		quoteRepo:    NewQuoteRepo(store),
	}
}

// Accessor methods for each repository

func (d Database) SettingsRepo() *SettingsRepo {
	return d.settingsRepo
}

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) ServiceRepo() *ServiceRepo {
	return d.serviceRepo
}

func (d Database) QuoteRepo() *QuoteRepo {
	return d.quoteRepo
}

// Ping reports whether the store is reachable.
func (d Database) Ping(ctx context.Context) error {
	return d.store.Ping(ctx)
}
