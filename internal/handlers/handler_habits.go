package handlers

import (
	"errors"
	"founderdeck/internal/middlewares"
	"founderdeck/internal/models"
	"founderdeck/internal/storage"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

func GETHabitsHandler(ctx *middlewares.AppContext) {
	user, ok := requireUser(ctx)
	if !ok {
		return
	}

	habits, err := ctx.Storage.ListHabits(ctx, user.ID)
	if err != nil {
		ctx.Logger.Error("failed to list habits", "error", err)
		ctx.SetJSONError(http.StatusInternalServerError, "Failed to list habits")
		return
	}

	ctx.WriteJSON(http.StatusOK, habits)
}

func POSTHabitHandler(ctx *middlewares.AppContext) {
	user, ok := requireUser(ctx)
	if !ok {
		return
	}

	var habit models.Habit
	if !decodeJSON(ctx, &habit) {
		return
	}

	if habit.Name == "" {
		ctx.SetJSONError(http.StatusBadRequest, "Name is required")
		return
	}

	if habit.Cadence != "daily" && habit.Cadence != "weekly" {
		ctx.SetJSONError(http.StatusBadRequest, "Cadence must be daily or weekly")
		return
	}

	habit.OwnerID = user.ID

	created, err := ctx.Storage.CreateHabit(ctx, &habit)
	if err != nil {
		ctx.Logger.Error("failed to create habit", "error", err)
		ctx.SetJSONError(http.StatusInternalServerError, "Failed to create habit")
		return
	}

	invalidateDashboard(ctx, user.ID)
	ctx.WriteJSON(http.StatusCreated, created)
}

func PUTHabitHandler(ctx *middlewares.AppContext) {
	user, ok := requireUser(ctx)
	if !ok {
		return
	}

	var habit models.Habit
	if !decodeJSON(ctx, &habit) {
		return
	}

	habit.ID = chi.URLParam(ctx.Request, "id")
	habit.OwnerID = user.ID

	updated, err := ctx.Storage.UpdateHabit(ctx, &habit)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			ctx.SetJSONError(http.StatusNotFound, "Habit not found")
			return
		}
		ctx.Logger.Error("failed to update habit", "error", err)
		ctx.SetJSONError(http.StatusInternalServerError, "Failed to update habit")
		return
	}

	invalidateDashboard(ctx, user.ID)
	ctx.WriteJSON(http.StatusOK, updated)
}

// POSTHabitCheckHandler records a check-in: the current streak advances, the
// best streak follows it, and the timestamp is stamped server-side. A second
// check-in inside the same cadence window is a no-op.
func POSTHabitCheckHandler(ctx *middlewares.AppContext) {
	user, ok := requireUser(ctx)
	if !ok {
		return
	}

	id := chi.URLParam(ctx.Request, "id")

	habits, err := ctx.Storage.ListHabits(ctx, user.ID)
	if err != nil {
		ctx.Logger.Error("failed to list habits", "error", err)
		ctx.SetJSONError(http.StatusInternalServerError, "Failed to check habit")
		return
	}

	var habit *models.Habit
	for _, h := range habits {
		if h.ID == id {
			habit = h
			break
		}
	}

	if habit == nil {
		ctx.SetJSONError(http.StatusNotFound, "Habit not found")
		return
	}

	now := time.Now()
	if habit.LastCheckedAt != nil && withinCadenceWindow(*habit.LastCheckedAt, now, habit.Cadence) {
		ctx.WriteJSON(http.StatusOK, habit)
		return
	}

	if habit.LastCheckedAt != nil && withinCadenceWindow(*habit.LastCheckedAt, now.Add(-cadenceDuration(habit.Cadence)), habit.Cadence) {
		habit.CurrentStreak++
	} else {
		habit.CurrentStreak = 1
	}

	if habit.CurrentStreak > habit.BestStreak {
		habit.BestStreak = habit.CurrentStreak
	}

	habit.LastCheckedAt = &now

	updated, err := ctx.Storage.UpdateHabit(ctx, habit)
	if err != nil {
		ctx.Logger.Error("failed to record habit check-in", "error", err)
		ctx.SetJSONError(http.StatusInternalServerError, "Failed to check habit")
		return
	}

	invalidateDashboard(ctx, user.ID)
	ctx.WriteJSON(http.StatusOK, updated)
}

func cadenceDuration(cadence string) time.Duration {
	if cadence == "weekly" {
		return 7 * 24 * time.Hour
	}
	return 24 * time.Hour
}

func withinCadenceWindow(last, now time.Time, cadence string) bool {
	if cadence == "weekly" {
		lastYear, lastWeek := last.ISOWeek()
		nowYear, nowWeek := now.ISOWeek()
		return lastYear == nowYear && lastWeek == nowWeek
	}

	return last.Year() == now.Year() && last.YearDay() == now.YearDay()
}

func DELETEHabitHandler(ctx *middlewares.AppContext) {
	user, ok := requireUser(ctx)
	if !ok {
		return
	}

	id := chi.URLParam(ctx.Request, "id")

	if err := ctx.Storage.DeleteHabit(ctx, user.ID, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			ctx.SetJSONError(http.StatusNotFound, "Habit not found")
			return
		}
		ctx.Logger.Error("failed to delete habit", "error", err)
		ctx.SetJSONError(http.StatusInternalServerError, "Failed to delete habit")
		return
	}

	invalidateDashboard(ctx, user.ID)
	ctx.SetJSONStatus(http.StatusOK, "deleted")
}
