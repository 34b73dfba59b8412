package api

import (
	"time"

	"github.com/rpupo63/domp-site-backend/database"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, intake quoteSubmitter, c map[string]string, startupTime time.Time) *routeHandlers {
	return &routeHandlers{
		authHandler:     newAuthHandler(c),
		settingsHandler: newSettingsHandler(database.SettingsRepo(), database.Ping),
		projectHandler:  newProjectHandler(database.ProjectRepo()),
		serviceHandler:  newServiceHandler(database.ServiceRepo()),
		quoteHandler:    newQuoteHandler(database.QuoteRepo(), intake),
		healthHandler:   newHealthHandler(startupTime, database.Ping),
	}
}
