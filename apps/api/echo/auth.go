package echoapi

import (
	"context"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/pkm-kampus/portal/core"
	"github.com/pkm-kampus/portal/core/session"
	"github.com/pkm-kampus/portal/core/user"
)

const (
	contextUserKey    = "user"
	contextSessionKey = "sessionID"

	msgLoginRequired = "⚠️ Username dan Password wajib diisi!"
	msgLoginFailed   = "❌ Login gagal! Username atau Password salah."
)

var errInvalidSessionCookie = errors.New("invalid session cookie")

type sessionGetter interface {
	Get(ctx context.Context, token string) (user.User, bool)
}

// sessionClaims wrap a session store token into a signed cookie value.
type sessionClaims struct {
	jwt.RegisteredClaims
	SessionID string `json:"sid"`
}

type cookieSigner struct {
	name   string
	issuer string
	key    []byte
	ttl    time.Duration
	secure bool
}

func newCookieSigner(conf *core.Config) *cookieSigner {
	return &cookieSigner{
		name:   conf.Session.CookieName,
		issuer: conf.AppName,
		key:    []byte(conf.SecretKey),
		ttl:    conf.Session.TTL,
		secure: !conf.Debug && !conf.TestMode,
	}
}

func (cs *cookieSigner) sign(sid string) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   cs.issuer,
			IssuedAt: jwt.NewNumericDate(now),
		},
		SessionID: sid,
	}
	if cs.ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(cs.ttl))
	}
	ss, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(cs.key)
	if err != nil {
		return "", errors.Wrap(err, "signing session cookie")
	}
	return ss, nil
}

func (cs *cookieSigner) parse(value string) (string, error) {
	var claims sessionClaims
	token, err := jwt.ParseWithClaims(value, &claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errInvalidSessionCookie
		}
		return cs.key, nil
	})
	if err != nil || !token.Valid || claims.SessionID == "" {
		return "", errInvalidSessionCookie
	}
	return claims.SessionID, nil
}

func (cs *cookieSigner) cookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     cs.name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   cs.secure,
		SameSite: http.SameSiteLaxMode,
	}
}

func getContextUser(ctx echo.Context) (user.User, bool) {
	usr, ok := ctx.Get(contextUserKey).(user.User)
	return usr, ok
}

func getContextSessionID(ctx echo.Context) string {
	sid, _ := ctx.Get(contextSessionKey).(string)
	return sid
}

type authHandler struct {
	svc      *user.Service
	sessions session.Store
	signer   *cookieSigner
}

func (h *authHandler) routes() []route {
	return []route{
		{method: http.MethodGet, path: "/", handler: h.loginForm, guard: public},
		{method: http.MethodPost, path: "/login", handler: h.login, guard: public},
		{method: http.MethodGet, path: "/logout", handler: h.logout, guard: public},
	}
}

func (h *authHandler) loginForm(ctx echo.Context) error {
	return ctx.Render(http.StatusOK, "login", echo.Map{"message": ""})
}

func (h *authHandler) login(ctx echo.Context) error {
	uname := ctx.FormValue("username")
	pwd := ctx.FormValue("password")
	if uname == "" || pwd == "" {
		return ctx.Render(http.StatusOK, "login", echo.Map{"message": msgLoginRequired})
	}

	reqCtx := ctx.Request().Context()
	usr, err := h.svc.Authenticate(reqCtx, uname, pwd)
	if err != nil {
		if errors.Cause(err) == user.ErrInvalidCredentials {
			return ctx.Render(http.StatusOK, "login", echo.Map{"message": msgLoginFailed})
		}
		return errors.Wrap(err, "authenticating")
	}

	// replace any previous session
	if sid := getContextSessionID(ctx); sid != "" {
		_ = h.sessions.Destroy(reqCtx, sid)
	}
	sid, err := h.sessions.Create(reqCtx, usr)
	if err != nil {
		return errors.Wrap(err, "creating session")
	}
	value, err := h.signer.sign(sid)
	if err != nil {
		return err
	}
	ctx.SetCookie(h.signer.cookie(value, int(h.signer.ttl.Seconds())))
	return ctx.Redirect(http.StatusFound, "/menu")
}

func (h *authHandler) logout(ctx echo.Context) error {
	if sid := getContextSessionID(ctx); sid != "" {
		if err := h.sessions.Destroy(ctx.Request().Context(), sid); err != nil {
			return errors.Wrap(err, "destroying session")
		}
	}
	ctx.SetCookie(h.signer.cookie("", -1))
	return ctx.Redirect(http.StatusFound, "/")
}
