package tests

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginForm(t *testing.T) {
	env := setup(t)

	req, rec := newRequest(http.MethodGet, "/")
	env.serve(req, rec)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `action="/login"`)
	assert.NotContains(t, rec.Body.String(), `class="message"`)
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name        string
		form        url.Values
		wantMessage string
	}{
		{"missing username", url.Values{"password": {"admin123"}}, "⚠️ Username dan Password wajib diisi!"},
		{"missing password", url.Values{"username": {"admin"}}, "⚠️ Username dan Password wajib diisi!"},
		{"unknown user", url.Values{"username": {"nobody"}, "password": {"admin123"}}, "❌ Login gagal! Username atau Password salah."},
		{"wrong password", url.Values{"username": {"admin"}, "password": {"dosen123"}}, "❌ Login gagal! Username atau Password salah."},
	}

	env := setup(t)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req, rec := newFormRequest(http.MethodPost, "/login", nil, tc.form)
			env.serve(req, rec)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Body.String(), tc.wantMessage)
			assert.Empty(t, rec.Result().Cookies())
		})
	}

	t.Run("success", func(t *testing.T) {
		cookie := env.login(t, "pakbudi", "dosen123")
		assert.True(t, cookie.HttpOnly)
		assert.Equal(t, "/", cookie.Path)
		assert.Equal(t, 1, env.sessions.Len())

		req, rec := newAuthRequest(http.MethodGet, "/account", cookie)
		env.serve(req, rec)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "pakbudi")
		assert.Contains(t, rec.Body.String(), "dosen")
	})
}

func TestLoginBcrypt(t *testing.T) {
	env := setup(t, withBcrypt())

	req, rec := newFormRequest(http.MethodPost, "/login", nil, url.Values{"username": {"andi"}, "password": {"wrong"}})
	env.serve(req, rec)
	assert.Contains(t, rec.Body.String(), "❌ Login gagal! Username atau Password salah.")

	cookie := env.login(t, "andi", "mhs123")
	req, rec = newAuthRequest(http.MethodGet, "/menu", cookie)
	env.serve(req, rec)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Selamat datang, andi")
}

func TestRelogin(t *testing.T) {
	env := setup(t)
	first := env.login(t, "admin", "admin123")

	req, rec := newFormRequest(http.MethodPost, "/login", first, url.Values{"username": {"andi"}, "password": {"mhs123"}})
	env.serve(req, rec)
	require.Equal(t, http.StatusFound, rec.Code)

	// the previous session is replaced
	assert.Equal(t, 1, env.sessions.Len())
	req, rec = newAuthRequest(http.MethodGet, "/menu", first)
	env.serve(req, rec)
	assertRedirect(t, rec, "/")
}

func TestLogout(t *testing.T) {
	env := setup(t)
	cookie := env.login(t, "admin", "admin123")

	req, rec := newAuthRequest(http.MethodGet, "/logout", cookie)
	env.serve(req, rec)
	assertRedirect(t, rec, "/")
	assert.Equal(t, 0, env.sessions.Len())

	cleared := rec.Result().Cookies()
	require.Len(t, cleared, 1)
	assert.Equal(t, cookieName, cleared[0].Name)
	assert.True(t, cleared[0].MaxAge < 0)

	// the old cookie no longer works
	req, rec = newAuthRequest(http.MethodGet, "/menu", cookie)
	env.serve(req, rec)
	assertRedirect(t, rec, "/")

	// anonymous logout is harmless
	req, rec = newRequest(http.MethodGet, "/logout")
	env.serve(req, rec)
	assertRedirect(t, rec, "/")
}

func TestSessionCookie(t *testing.T) {
	env := setup(t)
	cookie := env.login(t, "admin", "admin123")

	tests := []struct {
		name   string
		cookie *http.Cookie
		wantOK bool
	}{
		{"valid", cookie, true},
		{"tampered", &http.Cookie{Name: cookieName, Value: cookie.Value + "x"}, false},
		{"not a token", &http.Cookie{Name: cookieName, Value: "a-session-id"}, false},
		{"empty", &http.Cookie{Name: cookieName, Value: ""}, false},
		{"other cookie", &http.Cookie{Name: "other", Value: cookie.Value}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req, rec := newAuthRequest(http.MethodGet, "/menu", tc.cookie)
			env.serve(req, rec)
			if tc.wantOK {
				assert.Equal(t, http.StatusOK, rec.Code)
			} else {
				assertRedirect(t, rec, "/")
			}
		})
	}
}

func TestSessionExpiry(t *testing.T) {
	env := setup(t)
	cookie := env.login(t, "admin", "admin123")

	// sweeping live sessions keeps them
	assert.Equal(t, 0, env.sessions.Sweep())

	env.sessions.SetNowFunc(func() time.Time { return time.Now().Add(2 * time.Hour) })
	req, rec := newAuthRequest(http.MethodGet, "/menu", cookie)
	env.serve(req, rec)
	assertRedirect(t, rec, "/")
	assert.Equal(t, 1, env.sessions.Sweep())
}

func TestGuards(t *testing.T) {
	env := setup(t)
	admin := env.login(t, "admin", "admin123")
	lecturer := env.login(t, "pakbudi", "dosen123")
	student := env.login(t, "andi", "mhs123")

	tests := []struct {
		name         string
		path         string
		cookie       *http.Cookie
		wantCode     int
		wantLocation string
	}{
		{"anonymous menu", "/menu", nil, http.StatusFound, "/"},
		{"anonymous account", "/account", nil, http.StatusFound, "/"},
		{"anonymous deadline", "/deadline", nil, http.StatusFound, "/"},
		{"anonymous rekap", "/rekap", nil, http.StatusFound, "/"},
		{"anonymous mahasiswa", "/mahasiswa", nil, http.StatusFound, "/menu"},
		{"anonymous users", "/users", nil, http.StatusFound, "/menu"},
		{"student mahasiswa", "/mahasiswa", student, http.StatusFound, "/menu"},
		{"student mahasiswa add", "/mahasiswa/add", student, http.StatusFound, "/menu"},
		{"lecturer mahasiswa", "/mahasiswa", lecturer, http.StatusFound, "/menu"},
		{"lecturer users", "/users", lecturer, http.StatusFound, "/menu"},
		{"admin mahasiswa", "/mahasiswa", admin, http.StatusOK, ""},
		{"admin users", "/users", admin, http.StatusOK, ""},
		{"student deadline", "/deadline", student, http.StatusOK, ""},
		{"lecturer rekap", "/rekap", lecturer, http.StatusOK, ""},
		{"trailing slash", "/menu/", student, http.StatusOK, ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req, rec := newAuthRequest(http.MethodGet, tc.path, tc.cookie)
			env.serve(req, rec)
			assert.Equal(t, tc.wantCode, rec.Code)
			assert.Equal(t, tc.wantLocation, rec.Header().Get("Location"))
		})
	}
}
