package middlewares

import (
	"founderdeck/internal/metrics"
	"net/http"
	"path"
	"strings"
)

// RouteClass is the three-way static partition of request paths the gate
// decides on. Every non-asset path falls into exactly one class, based on the
// path string alone.
type RouteClass int

const (
	RoutePublic RouteClass = iota
	RouteAuthOnly
	RouteProtected
)

const (
	LoginPath          = "/login"
	DefaultLandingPath = "/"
)

var authOnlyPaths = map[string]bool{
	"/login":  true,
	"/signup": true,
}

var publicPaths = map[string]bool{
	"/":           true,
	"/api/health": true,
}

// publicPrefixes cover the sign-in endpoints and the GitHub OAuth return leg,
// which carries its own anti-forgery proof and may arrive on an expired
// session.
var publicPrefixes = []string{
	"/api/auth/",
	"/api/github/callback",
}

var assetExtensions = map[string]bool{
	".ico":  true,
	".png":  true,
	".svg":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
	".gif":  true,
}

// IsStaticAsset reports whether the path is served as a static asset and
// therefore bypasses classification entirely.
func IsStaticAsset(requestPath string) bool {
	if strings.HasPrefix(requestPath, "/assets/") || strings.HasPrefix(requestPath, "/static/") {
		return true
	}

	return assetExtensions[path.Ext(requestPath)]
}

// ClassifyRoute assigns a path to exactly one route class.
func ClassifyRoute(requestPath string) RouteClass {
	if authOnlyPaths[requestPath] {
		return RouteAuthOnly
	}

	if publicPaths[requestPath] {
		return RoutePublic
	}

	for _, prefix := range publicPrefixes {
		if strings.HasPrefix(requestPath, prefix) {
			return RoutePublic
		}
	}

	return RouteProtected
}

// SessionGate is the single authorization decision point, evaluated once per
// request before any protected handler runs. It must be mounted inside the
// session manager's LoadAndSave layer so that rotated session cookies appear
// on both forwarded and redirect responses.
//
// Session resolution never fails the gate: a backend error during resolution
// is indistinguishable from "no session" and yields the same redirect.
func SessionGate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if IsStaticAsset(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		appCtx := GetAppContext(r)
		if appCtx == nil {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		// Setup-not-complete escape hatch, not a security decision: without a
		// configured backend there is nothing to authenticate against and the
		// app serves demo data.
		if !appCtx.Config.Storage.Configured {
			next.ServeHTTP(w, r)
			return
		}

		authenticated := appCtx.SessionManager.IsUserAuthenticated(appCtx)

		switch ClassifyRoute(r.URL.Path) {
		case RoutePublic:
			metrics.GateDecisionsTotal.WithLabelValues("public", "forward").Inc()
			next.ServeHTTP(w, r)
		case RouteAuthOnly:
			if authenticated {
				metrics.GateDecisionsTotal.WithLabelValues("auth_only", "redirect").Inc()
				http.Redirect(w, r, DefaultLandingPath, http.StatusFound)
				return
			}
			metrics.GateDecisionsTotal.WithLabelValues("auth_only", "forward").Inc()
			next.ServeHTTP(w, r)
		case RouteProtected:
			if !authenticated {
				metrics.GateDecisionsTotal.WithLabelValues("protected", "redirect").Inc()
				http.Redirect(w, r, LoginPath, http.StatusFound)
				return
			}
			metrics.GateDecisionsTotal.WithLabelValues("protected", "forward").Inc()
			next.ServeHTTP(w, r)
		}
	})
}
