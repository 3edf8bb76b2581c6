package handlers

import (
	"founderdeck/internal/middlewares"
	"net/http"
)

func LogoutHandler(ctx *middlewares.AppContext) {
	logger := ctx.Logger

	user, _ := ctx.SessionManager.GetUser(ctx)

	if err := ctx.SessionManager.Logout(ctx); err != nil {
		logger.Error("Failed to logout user", "error", err)
		ctx.SetJSONError(http.StatusInternalServerError, "Failed to logout")
		return
	}

	if user != nil {
		logger.Info("User logged out", "username", user.Username)
	}

	ctx.SetJSONStatus(http.StatusOK, "OK")
}
