package handlers

import (
	"encoding/json"
	"founderdeck/internal/middlewares"
	"founderdeck/internal/models"
	"net/http"
)

// demoSummary is served while the storage backend is unconfigured, so the
// dashboard renders something meaningful before setup completes.
var demoSummary = models.DashboardSummary{
	ProjectCount:     3,
	LiveProjectCount: 1,
	IdeaCount:        7,
	HabitCount:       2,
	SnippetCount:     5,
	ServerCount:      2,
	ServersDown:      0,
	AcquisitionCount: 1,
	TotalMRRCents:    128500,
}

func GETDashboardHandler(ctx *middlewares.AppContext) {
	if !ctx.Config.Storage.Configured {
		ctx.WriteJSON(http.StatusOK, DashboardResponse{Demo: true, Summary: &demoSummary})
		return
	}

	user, ok := requireUser(ctx)
	if !ok {
		return
	}

	if cached, hit := ctx.Cache.Get(ctx, dashboardCacheKey(user.ID)); hit {
		var summary models.DashboardSummary
		if err := json.Unmarshal(cached, &summary); err == nil {
			ctx.WriteJSON(http.StatusOK, DashboardResponse{Summary: &summary})
			return
		}
		ctx.Logger.Warn("discarding undecodable dashboard cache entry", "user", user.Username)
	}

	summary, err := ctx.Storage.GetDashboardSummary(ctx, user.ID)
	if err != nil {
		ctx.Logger.Error("failed to compute dashboard summary", "error", err)
		ctx.SetJSONError(http.StatusInternalServerError, "Failed to load dashboard")
		return
	}

	if encoded, err := json.Marshal(summary); err == nil {
		ctx.Cache.Set(ctx, dashboardCacheKey(user.ID), encoded, ctx.Config.Cache.TTL)
	}

	ctx.WriteJSON(http.StatusOK, DashboardResponse{Summary: summary})
}
