package api

import (
	"net/http"

	"github.com/rpupo63/domp-site-backend/database"
	"github.com/rpupo63/domp-site-backend/errs"
	"github.com/rpupo63/domp-site-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type projectHandler struct {
	responder   Responder
	logger      zerolog.Logger
	projectRepo *database.ProjectRepo
}

func newProjectHandler(projectRepo *database.ProjectRepo) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		projectRepo: projectRepo,
	}
}

// getPublishedProjects lists published projects, or returns the one whose
// slug matches the slug query parameter.
func (h projectHandler) getPublishedProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if slug := r.URL.Query().Get("slug"); slug != "" {
			project, ok := h.projectRepo.BySlug(r.Context(), slug)
			if !ok {
				h.responder.WriteError(w, errs.NewNotFound("proyecto"))
				return
			}
			h.responder.WriteData(w, http.StatusOK, project, "")
			return
		}

		h.responder.WriteData(w, http.StatusOK, h.projectRepo.Published(r.Context()), "")
	}
}

// getAllProjects lists every project, drafts included
func (h projectHandler) getAllProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteData(w, http.StatusOK, h.projectRepo.List(r.Context()), "")
	}
}

func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in models.ProjectInput
		if err := decodeJSON(w, r, "proyecto", &in); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.projectRepo.Create(r.Context(), in)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.logger.Info().Str("projectId", project.ID).Str("slug", project.Slug).Msg("Project created")
		h.responder.WriteData(w, http.StatusCreated, project, "Proyecto creado correctamente")
	}
}

// updateProject replaces the project whose id is given in the body
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in models.ProjectInput
		if err := decodeJSON(w, r, "proyecto", &in); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if in.ID == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("ID de proyecto requerido"))
			return
		}

		project, err := h.projectRepo.Update(r.Context(), in.ID, in)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteData(w, http.StatusOK, project, "Proyecto actualizado correctamente")
	}
}

// deleteProject removes the project given by the id query parameter
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.URL.Query().Get("id")
		if id == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("ID de proyecto requerido"))
			return
		}

		if err := h.projectRepo.Delete(r.Context(), id); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteData(w, http.StatusOK, nil, "Proyecto eliminado correctamente")
	}
}
