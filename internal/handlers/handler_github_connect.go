package handlers

import (
	"founderdeck/internal/github"
	"founderdeck/internal/middlewares"
	"founderdeck/internal/models"
	"net/http"
)

// GETGitHubConnectHandler starts the account-linking handshake. It writes
// exactly one state cookie and one redirect, and touches no backend state.
func GETGitHubConnectHandler(ctx *middlewares.AppContext) {
	user, ok := requireUser(ctx)
	if !ok {
		return
	}

	clientID, found := ctx.Settings.Resolve(ctx, user.ID, models.SettingGitHubClientID)
	if !found {
		ctx.Logger.Warn("github connect requested without a configured client id", "user", user.Username)
		ctx.Redirect("/settings?error=github_not_configured", http.StatusFound)
		return
	}

	state := github.NewState()
	github.SetStateCookie(ctx.Response, state, ctx.Config.Sessions.Secure)

	authURL := ctx.GitHub.AuthCodeURL(clientID, state, ctx.Config.Integrations.GitHub.Scope)

	ctx.Logger.Debug("Redirecting to GitHub for account linking", "user", user.Username)
	ctx.Redirect(authURL, http.StatusFound)
}
