package handlers

import (
	"errors"
	"founderdeck/internal/middlewares"
	"founderdeck/internal/models"
	"founderdeck/internal/storage"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func GETAcquisitionTargetsHandler(ctx *middlewares.AppContext) {
	user, ok := requireUser(ctx)
	if !ok {
		return
	}

	targets, err := ctx.Storage.ListAcquisitionTargets(ctx, user.ID)
	if err != nil {
		ctx.Logger.Error("failed to list acquisition targets", "error", err)
		ctx.SetJSONError(http.StatusInternalServerError, "Failed to list acquisition targets")
		return
	}

	ctx.WriteJSON(http.StatusOK, targets)
}

func POSTAcquisitionTargetHandler(ctx *middlewares.AppContext) {
	user, ok := requireUser(ctx)
	if !ok {
		return
	}

	var target models.AcquisitionTarget
	if !decodeJSON(ctx, &target) {
		return
	}

	if target.Name == "" {
		ctx.SetJSONError(http.StatusBadRequest, "Name is required")
		return
	}

	if target.Stage == "" {
		target.Stage = models.AcquisitionStageWatching
	}

	target.OwnerID = user.ID

	created, err := ctx.Storage.CreateAcquisitionTarget(ctx, &target)
	if err != nil {
		ctx.Logger.Error("failed to create acquisition target", "error", err)
		ctx.SetJSONError(http.StatusInternalServerError, "Failed to create acquisition target")
		return
	}

	invalidateDashboard(ctx, user.ID)
	ctx.WriteJSON(http.StatusCreated, created)
}

func PUTAcquisitionTargetHandler(ctx *middlewares.AppContext) {
	user, ok := requireUser(ctx)
	if !ok {
		return
	}

	var target models.AcquisitionTarget
	if !decodeJSON(ctx, &target) {
		return
	}

	target.ID = chi.URLParam(ctx.Request, "id")
	target.OwnerID = user.ID

	updated, err := ctx.Storage.UpdateAcquisitionTarget(ctx, &target)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			ctx.SetJSONError(http.StatusNotFound, "Acquisition target not found")
			return
		}
		ctx.Logger.Error("failed to update acquisition target", "error", err)
		ctx.SetJSONError(http.StatusInternalServerError, "Failed to update acquisition target")
		return
	}

	invalidateDashboard(ctx, user.ID)
	ctx.WriteJSON(http.StatusOK, updated)
}

func DELETEAcquisitionTargetHandler(ctx *middlewares.AppContext) {
	user, ok := requireUser(ctx)
	if !ok {
		return
	}

	id := chi.URLParam(ctx.Request, "id")

	if err := ctx.Storage.DeleteAcquisitionTarget(ctx, user.ID, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			ctx.SetJSONError(http.StatusNotFound, "Acquisition target not found")
			return
		}
		ctx.Logger.Error("failed to delete acquisition target", "error", err)
		ctx.SetJSONError(http.StatusInternalServerError, "Failed to delete acquisition target")
		return
	}

	invalidateDashboard(ctx, user.ID)
	ctx.SetJSONStatus(http.StatusOK, "deleted")
}
