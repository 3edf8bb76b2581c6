package handlers

import (
	"errors"
	"founderdeck/internal/middlewares"
	"founderdeck/internal/models"
	"founderdeck/internal/storage"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
)

func GETServersHandler(ctx *middlewares.AppContext) {
	user, ok := requireUser(ctx)
	if !ok {
		return
	}

	servers, err := ctx.Storage.ListServers(ctx, user.ID)
	if err != nil {
		ctx.Logger.Error("failed to list servers", "error", err)
		ctx.SetJSONError(http.StatusInternalServerError, "Failed to list servers")
		return
	}

	ctx.WriteJSON(http.StatusOK, servers)
}

func POSTServerHandler(ctx *middlewares.AppContext) {
	user, ok := requireUser(ctx)
	if !ok {
		return
	}

	var server models.TrackedServer
	if !decodeJSON(ctx, &server) {
		return
	}

	if server.Name == "" {
		ctx.SetJSONError(http.StatusBadRequest, "Name is required")
		return
	}

	if !isValidCheckURL(server.CheckURL) {
		ctx.SetJSONError(http.StatusBadRequest, "Check URL must be a valid http or https URL")
		return
	}

	server.OwnerID = user.ID
	server.Status = models.ServerStatusUnknown

	created, err := ctx.Storage.CreateServer(ctx, &server)
	if err != nil {
		ctx.Logger.Error("failed to create server", "error", err)
		ctx.SetJSONError(http.StatusInternalServerError, "Failed to create server")
		return
	}

	invalidateDashboard(ctx, user.ID)
	ctx.WriteJSON(http.StatusCreated, created)
}

func PUTServerHandler(ctx *middlewares.AppContext) {
	user, ok := requireUser(ctx)
	if !ok {
		return
	}

	var server models.TrackedServer
	if !decodeJSON(ctx, &server) {
		return
	}

	if server.CheckURL != "" && !isValidCheckURL(server.CheckURL) {
		ctx.SetJSONError(http.StatusBadRequest, "Check URL must be a valid http or https URL")
		return
	}

	server.ID = chi.URLParam(ctx.Request, "id")
	server.OwnerID = user.ID

	updated, err := ctx.Storage.UpdateServer(ctx, &server)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			ctx.SetJSONError(http.StatusNotFound, "Server not found")
			return
		}
		ctx.Logger.Error("failed to update server", "error", err)
		ctx.SetJSONError(http.StatusInternalServerError, "Failed to update server")
		return
	}

	invalidateDashboard(ctx, user.ID)
	ctx.WriteJSON(http.StatusOK, updated)
}

func DELETEServerHandler(ctx *middlewares.AppContext) {
	user, ok := requireUser(ctx)
	if !ok {
		return
	}

	id := chi.URLParam(ctx.Request, "id")

	if err := ctx.Storage.DeleteServer(ctx, user.ID, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			ctx.SetJSONError(http.StatusNotFound, "Server not found")
			return
		}
		ctx.Logger.Error("failed to delete server", "error", err)
		ctx.SetJSONError(http.StatusInternalServerError, "Failed to delete server")
		return
	}

	invalidateDashboard(ctx, user.ID)
	ctx.SetJSONStatus(http.StatusOK, "deleted")
}

func isValidCheckURL(raw string) bool {
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}

	return (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != ""
}
