package api

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	authHandler     authHandler
	settingsHandler settingsHandler
	projectHandler  projectHandler
	serviceHandler  serviceHandler
	quoteHandler    quoteHandler
	healthHandler   healthHandler
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type socialLinkRequest struct {
	URL string `json:"url"`
}

type quoteStatusRequest struct {
	Status string `json:"status"`
}

type healthResponse struct {
	Status   string `json:"status"`
	Uptime   string `json:"uptime"`
	Database string `json:"database"`
}
