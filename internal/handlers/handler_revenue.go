package handlers

import (
	"errors"
	"founderdeck/internal/middlewares"
	"founderdeck/internal/models"
	"founderdeck/internal/storage"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func GETRevenueSourcesHandler(ctx *middlewares.AppContext) {
	user, ok := requireUser(ctx)
	if !ok {
		return
	}

	sources, err := ctx.Storage.ListRevenueSources(ctx, user.ID)
	if err != nil {
		ctx.Logger.Error("failed to list revenue sources", "error", err)
		ctx.SetJSONError(http.StatusInternalServerError, "Failed to list revenue sources")
		return
	}

	ctx.WriteJSON(http.StatusOK, sources)
}

func POSTRevenueSourceHandler(ctx *middlewares.AppContext) {
	user, ok := requireUser(ctx)
	if !ok {
		return
	}

	var source models.RevenueSource
	if !decodeJSON(ctx, &source) {
		return
	}

	if source.Name == "" {
		ctx.SetJSONError(http.StatusBadRequest, "Name is required")
		return
	}

	if source.MRRCents < 0 {
		ctx.SetJSONError(http.StatusBadRequest, "MRR must not be negative")
		return
	}

	if source.Currency == "" {
		source.Currency = "USD"
	}

	source.OwnerID = user.ID

	created, err := ctx.Storage.CreateRevenueSource(ctx, &source)
	if err != nil {
		ctx.Logger.Error("failed to create revenue source", "error", err)
		ctx.SetJSONError(http.StatusInternalServerError, "Failed to create revenue source")
		return
	}

	invalidateDashboard(ctx, user.ID)
	ctx.WriteJSON(http.StatusCreated, created)
}

func PUTRevenueSourceHandler(ctx *middlewares.AppContext) {
	user, ok := requireUser(ctx)
	if !ok {
		return
	}

	var source models.RevenueSource
	if !decodeJSON(ctx, &source) {
		return
	}

	source.ID = chi.URLParam(ctx.Request, "id")
	source.OwnerID = user.ID

	updated, err := ctx.Storage.UpdateRevenueSource(ctx, &source)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			ctx.SetJSONError(http.StatusNotFound, "Revenue source not found")
			return
		}
		ctx.Logger.Error("failed to update revenue source", "error", err)
		ctx.SetJSONError(http.StatusInternalServerError, "Failed to update revenue source")
		return
	}

	invalidateDashboard(ctx, user.ID)
	ctx.WriteJSON(http.StatusOK, updated)
}

func DELETERevenueSourceHandler(ctx *middlewares.AppContext) {
	user, ok := requireUser(ctx)
	if !ok {
		return
	}

	id := chi.URLParam(ctx.Request, "id")

	if err := ctx.Storage.DeleteRevenueSource(ctx, user.ID, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			ctx.SetJSONError(http.StatusNotFound, "Revenue source not found")
			return
		}
		ctx.Logger.Error("failed to delete revenue source", "error", err)
		ctx.SetJSONError(http.StatusInternalServerError, "Failed to delete revenue source")
		return
	}

	invalidateDashboard(ctx, user.ID)
	ctx.SetJSONStatus(http.StatusOK, "deleted")
}
