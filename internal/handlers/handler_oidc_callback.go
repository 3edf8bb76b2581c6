package handlers

import (
	"errors"
	"founderdeck/internal/auth"
	"founderdeck/internal/middlewares"
	"net/http"
)

func GETCallbackHandler(ctx *middlewares.AppContext) {
	if ctx.OIDCProvider == nil {
		ctx.Redirect("/login?error=auth_failed", http.StatusFound)
		return
	}

	idToken, user, err := ctx.OIDCProvider.HandleCallback(ctx)
	if err != nil {
		ctx.Logger.Error("Failed to handle OIDC callback", "error", err)

		var oidcErr *auth.OIDCError
		if errors.As(err, &oidcErr) && oidcErr.RedirectURL != "" {
			ctx.Redirect(oidcErr.RedirectURL, http.StatusFound)
			return
		}

		ctx.Redirect("/login?error=auth_failed", http.StatusFound)
		return
	}

	if ctx.Config.Storage.Configured {
		stored, err := ctx.Storage.UpsertUser(ctx, user.Sub, user.Iss, user.Username, user.DisplayName, user.Email)
		if err != nil {
			ctx.Logger.Error("Failed to persist user", "error", err)
			ctx.Redirect("/login?error=auth_failed", http.StatusFound)
			return
		}
		user = stored
	}

	if err := ctx.SessionManager.CreateSessionWithTokenExpiry(ctx, idToken, user); err != nil {
		ctx.Logger.Error("Failed to create session", "error", err)
		ctx.Redirect("/login?error=auth_failed", http.StatusFound)
		return
	}

	ctx.Logger.Info("User successfully authenticated",
		"user_id", user.Sub,
		"username", user.Username,
		"email", RedactEmail(user.Email),
	)

	redirectTo := ctx.SessionManager.GetRedirectAfterLogin(ctx)
	if redirectTo != "" {
		ctx.Redirect(redirectTo, http.StatusFound)
		return
	}

	ctx.Redirect("/", http.StatusFound)
}
