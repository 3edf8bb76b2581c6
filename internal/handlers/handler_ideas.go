package handlers

import (
	"errors"
	"founderdeck/internal/middlewares"
	"founderdeck/internal/models"
	"founderdeck/internal/storage"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func GETIdeasHandler(ctx *middlewares.AppContext) {
	user, ok := requireUser(ctx)
	if !ok {
		return
	}

	ideas, err := ctx.Storage.ListIdeas(ctx, user.ID)
	if err != nil {
		ctx.Logger.Error("failed to list ideas", "error", err)
		ctx.SetJSONError(http.StatusInternalServerError, "Failed to list ideas")
		return
	}

	ctx.WriteJSON(http.StatusOK, ideas)
}

func POSTIdeaHandler(ctx *middlewares.AppContext) {
	user, ok := requireUser(ctx)
	if !ok {
		return
	}

	var idea models.Idea
	if !decodeJSON(ctx, &idea) {
		return
	}

	if idea.Title == "" {
		ctx.SetJSONError(http.StatusBadRequest, "Title is required")
		return
	}

	idea.OwnerID = user.ID

	created, err := ctx.Storage.CreateIdea(ctx, &idea)
	if err != nil {
		ctx.Logger.Error("failed to create idea", "error", err)
		ctx.SetJSONError(http.StatusInternalServerError, "Failed to create idea")
		return
	}

	invalidateDashboard(ctx, user.ID)
	ctx.WriteJSON(http.StatusCreated, created)
}

func PUTIdeaHandler(ctx *middlewares.AppContext) {
	user, ok := requireUser(ctx)
	if !ok {
		return
	}

	var idea models.Idea
	if !decodeJSON(ctx, &idea) {
		return
	}

	idea.ID = chi.URLParam(ctx.Request, "id")
	idea.OwnerID = user.ID

	updated, err := ctx.Storage.UpdateIdea(ctx, &idea)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			ctx.SetJSONError(http.StatusNotFound, "Idea not found")
			return
		}
		ctx.Logger.Error("failed to update idea", "error", err)
		ctx.SetJSONError(http.StatusInternalServerError, "Failed to update idea")
		return
	}

	invalidateDashboard(ctx, user.ID)
	ctx.WriteJSON(http.StatusOK, updated)
}

func DELETEIdeaHandler(ctx *middlewares.AppContext) {
	user, ok := requireUser(ctx)
	if !ok {
		return
	}

	id := chi.URLParam(ctx.Request, "id")

	if err := ctx.Storage.DeleteIdea(ctx, user.ID, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			ctx.SetJSONError(http.StatusNotFound, "Idea not found")
			return
		}
		ctx.Logger.Error("failed to delete idea", "error", err)
		ctx.SetJSONError(http.StatusInternalServerError, "Failed to delete idea")
		return
	}

	invalidateDashboard(ctx, user.ID)
	ctx.SetJSONStatus(http.StatusOK, "deleted")
}
