package handlers

import (
	"errors"
	"founderdeck/internal/middlewares"
	"founderdeck/internal/models"
	"founderdeck/internal/storage"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func GETSnippetsHandler(ctx *middlewares.AppContext) {
	user, ok := requireUser(ctx)
	if !ok {
		return
	}

	snippets, err := ctx.Storage.ListSnippets(ctx, user.ID)
	if err != nil {
		ctx.Logger.Error("failed to list snippets", "error", err)
		ctx.SetJSONError(http.StatusInternalServerError, "Failed to list snippets")
		return
	}

	ctx.WriteJSON(http.StatusOK, snippets)
}

func POSTSnippetHandler(ctx *middlewares.AppContext) {
	user, ok := requireUser(ctx)
	if !ok {
		return
	}

	var snippet models.Snippet
	if !decodeJSON(ctx, &snippet) {
		return
	}

	if snippet.Title == "" || snippet.Code == "" {
		ctx.SetJSONError(http.StatusBadRequest, "Title and code are required")
		return
	}

	snippet.OwnerID = user.ID

	created, err := ctx.Storage.CreateSnippet(ctx, &snippet)
	if err != nil {
		ctx.Logger.Error("failed to create snippet", "error", err)
		ctx.SetJSONError(http.StatusInternalServerError, "Failed to create snippet")
		return
	}

	invalidateDashboard(ctx, user.ID)
	ctx.WriteJSON(http.StatusCreated, created)
}

func PUTSnippetHandler(ctx *middlewares.AppContext) {
	user, ok := requireUser(ctx)
	if !ok {
		return
	}

	var snippet models.Snippet
	if !decodeJSON(ctx, &snippet) {
		return
	}

	snippet.ID = chi.URLParam(ctx.Request, "id")
	snippet.OwnerID = user.ID

	updated, err := ctx.Storage.UpdateSnippet(ctx, &snippet)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			ctx.SetJSONError(http.StatusNotFound, "Snippet not found")
			return
		}
		ctx.Logger.Error("failed to update snippet", "error", err)
		ctx.SetJSONError(http.StatusInternalServerError, "Failed to update snippet")
		return
	}

	invalidateDashboard(ctx, user.ID)
	ctx.WriteJSON(http.StatusOK, updated)
}

func DELETESnippetHandler(ctx *middlewares.AppContext) {
	user, ok := requireUser(ctx)
	if !ok {
		return
	}

	id := chi.URLParam(ctx.Request, "id")

	if err := ctx.Storage.DeleteSnippet(ctx, user.ID, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			ctx.SetJSONError(http.StatusNotFound, "Snippet not found")
			return
		}
		ctx.Logger.Error("failed to delete snippet", "error", err)
		ctx.SetJSONError(http.StatusInternalServerError, "Failed to delete snippet")
		return
	}

	invalidateDashboard(ctx, user.ID)
	ctx.SetJSONStatus(http.StatusOK, "deleted")
}
