package handlers

import (
	"crypto/subtle"
	"founderdeck/internal/github"
	"founderdeck/internal/metrics"
	"founderdeck/internal/middlewares"
	"founderdeck/internal/models"
	"net/http"

	"golang.org/x/sync/errgroup"
)

// GETGitHubCallbackHandler completes the linking handshake. The anti-forgery
// check runs before any network call, and the state cookie is consumed on
// every path past it. The route is public so an expired session still reaches
// the session check below and gets a clean /login redirect instead of a gate
// loop; the exchanged token is discarded in that case.
func GETGitHubCallbackHandler(ctx *middlewares.AppContext) {
	code := ctx.Request.URL.Query().Get("code")
	echoedState := ctx.Request.URL.Query().Get("state")

	storedState, hasCookie := github.ConsumeStateCookie(ctx.Response, ctx.Request)

	if code == "" || echoedState == "" || !hasCookie ||
		subtle.ConstantTimeCompare([]byte(echoedState), []byte(storedState)) != 1 {
		ctx.Logger.Warn("github callback rejected", "has_code", code != "", "has_state", echoedState != "", "has_cookie", hasCookie)
		ctx.Redirect("/settings?error=github_auth_failed", http.StatusFound)
		return
	}

	user, authenticated := ctx.SessionManager.GetAuthenticatedUser(ctx)

	var ownerID string
	if user != nil {
		ownerID = user.ID
	}

	// The two credential lookups are independent; resolve them concurrently.
	var clientID, clientSecret string
	var foundID, foundSecret bool

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		clientID, foundID = ctx.Settings.Resolve(gctx, ownerID, models.SettingGitHubClientID)
		return nil
	})
	g.Go(func() error {
		clientSecret, foundSecret = ctx.Settings.Resolve(gctx, ownerID, models.SettingGitHubClientSecret)
		return nil
	})
	_ = g.Wait()

	if !foundID || !foundSecret {
		ctx.Logger.Warn("github callback without configured credentials")
		ctx.Redirect("/settings?error=github_not_configured", http.StatusFound)
		return
	}

	accessToken, err := ctx.GitHub.ExchangeCode(ctx, clientID, clientSecret, code)
	if err != nil {
		metrics.TokenExchangesTotal.WithLabelValues("github", "failure").Inc()
		ctx.Logger.Error("github token exchange failed", "error", err)
		ctx.Redirect("/settings?error=github_token_failed", http.StatusFound)
		return
	}
	metrics.TokenExchangesTotal.WithLabelValues("github", "success").Inc()

	if !authenticated || user == nil {
		ctx.Logger.Warn("github callback arrived on an expired session")
		ctx.Redirect("/login", http.StatusFound)
		return
	}

	if err := ctx.Storage.UpsertUserSetting(ctx, user.ID, models.SettingGitHubAccessToken, accessToken); err != nil {
		ctx.Logger.Error("failed to store github token", "error", err)
		ctx.Redirect("/settings?error=github_token_failed", http.StatusFound)
		return
	}

	ctx.Logger.Info("github account linked", "user", user.Username)
	ctx.Redirect("/?github=connected", http.StatusFound)
}
