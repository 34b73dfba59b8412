package models

type ProjectType string

const (
	ProjectTypeResidencial ProjectType = "residencial"
	ProjectTypeComercial   ProjectType = "comercial"
	ProjectTypeIndustrial  ProjectType = "industrial"
)

func (t ProjectType) Valid() bool {
	switch t {
	case ProjectTypeResidencial, ProjectTypeComercial, ProjectTypeIndustrial:
		return true
	}
	return false
}

type ProjectStatus string

const (
	ProjectStatusPublicado ProjectStatus = "publicado"
	ProjectStatusBorrador  ProjectStatus = "borrador"
)

func (s ProjectStatus) Valid() bool {
	return s == ProjectStatusPublicado || s == ProjectStatusBorrador
}

// Project is a portfolio entry. Slug is derived from Name and unique across
// all projects.
type Project struct {
	ID          string        `json:"id"`
	Slug        string        `json:"slug"`
	Name        string        `json:"name"`
	Type        ProjectType   `json:"type"`
	City        string        `json:"city"`
	Description string        `json:"description"`
	Status      ProjectStatus `json:"status"`
	Year        *int          `json:"year,omitempty"`
	ImageURL    string        `json:"imageUrl,omitempty"`
}

func (p Project) Published() bool {
	return p.Status == ProjectStatusPublicado
}

// ProjectInput is the admin form payload for create and update. ID is only
// read on update.
type ProjectInput struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	City        string `json:"city"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Year        *int   `json:"year,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
}
