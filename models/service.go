package models

// Service is an entry of the specialties catalog
type Service struct {
	ID                  string   `json:"id"`
	Title               string   `json:"title"`
	Description         string   `json:"description"`
	DetailedDescription string   `json:"detailedDescription,omitempty"`
	Benefits            []string `json:"benefits"`
	IdealClient         string   `json:"idealClient"`
	Icon                string   `json:"icon,omitempty"`
	ImageURL            string   `json:"imageUrl,omitempty"`
	Category            string   `json:"category,omitempty"`
	GalleryImages       []string `json:"galleryImages,omitempty"`
}

// ServiceInput is the admin form payload for create and update. ID is only
// read on update.
type ServiceInput struct {
	ID                  string   `json:"id,omitempty"`
	Title               string   `json:"title"`
	Description         string   `json:"description"`
	DetailedDescription string   `json:"detailedDescription,omitempty"`
	Benefits            []string `json:"benefits"`
	IdealClient         string   `json:"idealClient"`
	Icon                string   `json:"icon,omitempty"`
	ImageURL            string   `json:"imageUrl,omitempty"`
	Category            string   `json:"category,omitempty"`
	GalleryImages       []string `json:"galleryImages,omitempty"`
}
