package handlers

import (
	"encoding/json"
	"founderdeck/internal/middlewares"
	"founderdeck/internal/models"
	"net/http"
	"strings"
)

// requireUser returns the authenticated user or writes a 401. Handlers behind
// the session gate still call it: the gate redirects pages, but API callers
// deserve a typed error rather than a redirect chase.
func requireUser(ctx *middlewares.AppContext) (*models.User, bool) {
	user, ok := ctx.SessionManager.GetAuthenticatedUser(ctx)
	if !ok || user == nil {
		ctx.SetJSONError(http.StatusUnauthorized, "Not authenticated")
		return nil, false
	}

	return user, true
}

func decodeJSON(ctx *middlewares.AppContext, dst interface{}) bool {
	if err := json.NewDecoder(ctx.Request.Body).Decode(dst); err != nil {
		ctx.SetJSONError(http.StatusBadRequest, "Invalid request body")
		return false
	}

	return true
}

// dashboardCacheKey is the per-owner key for the cached summary. Every
// mutating handler deletes it so the next dashboard read recomputes.
func dashboardCacheKey(ownerID string) string {
	return "dashboard:" + ownerID
}

func invalidateDashboard(ctx *middlewares.AppContext, ownerID string) {
	ctx.Cache.Delete(ctx, dashboardCacheKey(ownerID))
}

// RedactEmail is used to redact emails (mostly for logs)
func RedactEmail(email string) string {
	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return ""
	}

	localRunes := []rune(parts[0])
	domain := parts[1]

	if len(localRunes) <= 2 {
		return strings.Repeat("*", len(localRunes)) + "@" + domain
	}

	first := string(localRunes[0])
	last := string(localRunes[len(localRunes)-1])
	middle := strings.Repeat("*", len(localRunes)-2)

	return first + middle + last + "@" + domain
}
