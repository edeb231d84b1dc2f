package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pkm-kampus/portal/core/user"
)

// guard describes who may reach a route. It is checked once per request, after the session is loaded.
type guard struct {
	auth  bool     // a session is required
	roles []string // the session user must hold one of these
	api   bool     // answer with an error status instead of redirecting
}

var (
	public      = guard{}
	loggedIn    = guard{auth: true}
	loggedInAPI = guard{auth: true, api: true}
	adminOnly   = guard{auth: true, roles: []string{user.RoleAdmin}}
)

type route struct {
	method  string
	path    string
	handler echo.HandlerFunc
	guard   guard
}

func register(app *echo.Echo, routes []route) {
	for _, r := range routes {
		app.Add(r.method, r.path, r.handler, r.guard.middleware())
	}
}

// middleware sends anonymous page requests to the login form and
// page requests lacking the role to the menu.
func (g guard) middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			usr, ok := getContextUser(ctx)

			if len(g.roles) > 0 && !(ok && usr.HasRole(g.roles...)) {
				if g.api {
					if !ok {
						return errUnauthorized
					}
					return errHTTPForbidden
				}
				return ctx.Redirect(http.StatusFound, "/menu")
			}
			if g.auth && !ok {
				if g.api {
					return errUnauthorized
				}
				return ctx.Redirect(http.StatusFound, "/")
			}
			return next(ctx)
		}
	}
}

// newSessionMiddleware resolves the session cookie into the context user.
// Missing, tampered and expired cookies leave the request anonymous.
func newSessionMiddleware(store sessionGetter, signer *cookieSigner) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			cookie, err := ctx.Cookie(signer.name)
			if err != nil || cookie.Value == "" {
				return next(ctx)
			}
			sid, err := signer.parse(cookie.Value)
			if err != nil {
				return next(ctx)
			}
			if usr, ok := store.Get(ctx.Request().Context(), sid); ok {
				ctx.Set(contextUserKey, usr)
				ctx.Set(contextSessionKey, sid)
			}
			return next(ctx)
		}
	}
}
