package handlers

import (
	"errors"
	"founderdeck/internal/middlewares"
	"founderdeck/internal/models"
	"founderdeck/internal/storage"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func GETProjectsHandler(ctx *middlewares.AppContext) {
	user, ok := requireUser(ctx)
	if !ok {
		return
	}

	projects, err := ctx.Storage.ListProjects(ctx, user.ID)
	if err != nil {
		ctx.Logger.Error("failed to list projects", "error", err)
		ctx.SetJSONError(http.StatusInternalServerError, "Failed to list projects")
		return
	}

	ctx.WriteJSON(http.StatusOK, projects)
}

func POSTProjectHandler(ctx *middlewares.AppContext) {
	user, ok := requireUser(ctx)
	if !ok {
		return
	}

	var project models.Project
	if !decodeJSON(ctx, &project) {
		return
	}

	if project.Name == "" {
		ctx.SetJSONError(http.StatusBadRequest, "Name is required")
		return
	}

	if project.Status == "" {
		project.Status = models.ProjectStatusIdea
	}

	project.OwnerID = user.ID

	created, err := ctx.Storage.CreateProject(ctx, &project)
	if err != nil {
		ctx.Logger.Error("failed to create project", "error", err)
		ctx.SetJSONError(http.StatusInternalServerError, "Failed to create project")
		return
	}

	invalidateDashboard(ctx, user.ID)
	ctx.WriteJSON(http.StatusCreated, created)
}

func PUTProjectHandler(ctx *middlewares.AppContext) {
	user, ok := requireUser(ctx)
	if !ok {
		return
	}

	var project models.Project
	if !decodeJSON(ctx, &project) {
		return
	}

	project.ID = chi.URLParam(ctx.Request, "id")
	project.OwnerID = user.ID

	updated, err := ctx.Storage.UpdateProject(ctx, &project)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			ctx.SetJSONError(http.StatusNotFound, "Project not found")
			return
		}
		ctx.Logger.Error("failed to update project", "error", err)
		ctx.SetJSONError(http.StatusInternalServerError, "Failed to update project")
		return
	}

	invalidateDashboard(ctx, user.ID)
	ctx.WriteJSON(http.StatusOK, updated)
}

func DELETEProjectHandler(ctx *middlewares.AppContext) {
	user, ok := requireUser(ctx)
	if !ok {
		return
	}

	id := chi.URLParam(ctx.Request, "id")

	if err := ctx.Storage.DeleteProject(ctx, user.ID, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			ctx.SetJSONError(http.StatusNotFound, "Project not found")
			return
		}
		ctx.Logger.Error("failed to delete project", "error", err)
		ctx.SetJSONError(http.StatusInternalServerError, "Failed to delete project")
		return
	}

	invalidateDashboard(ctx, user.ID)
	ctx.SetJSONStatus(http.StatusOK, "deleted")
}
