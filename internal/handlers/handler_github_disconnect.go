package handlers

import (
	"founderdeck/internal/middlewares"
	"founderdeck/internal/models"
	"net/http"
)

// POSTGitHubDisconnectHandler unlinks the account by deleting the stored
// token row. Disconnecting an unlinked account succeeds the same way.
func POSTGitHubDisconnectHandler(ctx *middlewares.AppContext) {
	user, ok := requireUser(ctx)
	if !ok {
		return
	}

	if err := ctx.Storage.DeleteUserSetting(ctx, user.ID, models.SettingGitHubAccessToken); err != nil {
		ctx.Logger.Error("failed to delete github token", "error", err)
		ctx.SetJSONError(http.StatusInternalServerError, "Failed to disconnect")
		return
	}

	ctx.Logger.Info("github account unlinked", "user", user.Username)
	ctx.SetJSONStatus(http.StatusOK, "disconnected")
}
