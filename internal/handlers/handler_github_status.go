package handlers

import (
	"founderdeck/internal/middlewares"
	"founderdeck/internal/models"
	"net/http"
)

// GETGitHubStatusHandler reports whether a usable GitHub credential exists.
// Every failure mode collapses to connected=false; the raw token never leaves
// the server.
func GETGitHubStatusHandler(ctx *middlewares.AppContext) {
	user, ok := requireUser(ctx)
	if !ok {
		return
	}

	token, found := ctx.Settings.Resolve(ctx, user.ID, models.SettingGitHubAccessToken)
	if !found {
		ctx.WriteJSON(http.StatusOK, GitHubStatusResponse{Connected: false})
		return
	}

	profile, err := ctx.GitHub.FetchProfile(ctx, token)
	if err != nil {
		ctx.Logger.Debug("github credential probe failed", "error", err)
		ctx.WriteJSON(http.StatusOK, GitHubStatusResponse{Connected: false})
		return
	}

	ctx.WriteJSON(http.StatusOK, GitHubStatusResponse{
		Connected: true,
		Login:     profile.Login,
		AvatarURL: profile.AvatarURL,
	})
}
