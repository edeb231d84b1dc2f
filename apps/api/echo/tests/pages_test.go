package tests

import (
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testutil "github.com/pkm-kampus/portal/tests"
)

func TestMenu(t *testing.T) {
	tests := []struct {
		name      string
		uname     string
		pwd       string
		wantLinks []string
		noLinks   []string
	}{
		{"admin", "admin", "admin123", []string{"/mahasiswa", "/deadline", "/users", "/account", "/logout"}, []string{"/jadwal_mengajar", `"/jadwal"`}},
		{"lecturer", "pakbudi", "dosen123", []string{"/matkul", "/deadline", "/jadwal_mengajar", "/account", "/logout"}, []string{"/users", "/mahasiswa"}},
		{"student", "andi", "mhs123", []string{"/matkul", "/deadline", `"/jadwal"`, "/account", "/logout"}, []string{"/users", "/jadwal_mengajar"}},
	}

	env := setup(t)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cookie := env.login(t, tc.uname, tc.pwd)
			req, rec := newAuthRequest(http.MethodGet, "/menu", cookie)
			env.serve(req, rec)
			require.Equal(t, http.StatusOK, rec.Code)

			body := rec.Body.String()
			assert.Contains(t, body, "Selamat datang, "+tc.uname)
			for _, link := range tc.wantLinks {
				assert.Contains(t, body, link)
			}
			for _, link := range tc.noLinks {
				assert.NotContains(t, body, link)
			}
			// role entries come before the common ones
			assert.Less(t, strings.Index(body, "/deadline"), strings.Index(body, "/account"))
			assert.Less(t, strings.Index(body, "/account"), strings.Index(body, "/logout"))
		})
	}
}

func TestSchedulePages(t *testing.T) {
	env := setup(t)
	cookie := env.login(t, "andi", "mhs123")

	tests := []struct {
		path string
		want []string
	}{
		{"/matkul", []string{"MSC 3401 - F", "UM 142 - K", "Laboratory"}},
		{"/jadwal", []string{"Jadwal Kelas andi", "Algoritma", "Jaringan Komputer"}},
		{"/jadwal_mengajar", []string{"Jadwal Mengajar"}},
		{"/deadline", []string{`id="tasksList"`, "/static/js/deadline.js"}},
	}
	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			req, rec := newAuthRequest(http.MethodGet, tc.path, cookie)
			env.serve(req, rec)
			require.Equal(t, http.StatusOK, rec.Code)
			for _, s := range tc.want {
				assert.Contains(t, rec.Body.String(), s)
			}
		})
	}
}

func TestUsersPage(t *testing.T) {
	env := setup(t)
	cookie := env.login(t, "admin", "admin123")

	req, rec := newAuthRequest(http.MethodGet, "/users", cookie)
	env.serve(req, rec)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	for _, uname := range []string{"admin", "pakbudi", "andi"} {
		assert.Contains(t, body, uname)
	}
	assert.NotContains(t, body, "admin123")
}

func TestStaticFiles(t *testing.T) {
	env := setup(t)

	req, rec := newRequest(http.MethodGet, "/static/js/deadline.js")
	env.serve(req, rec)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/api/tasks")

	req, rec = newRequest(http.MethodGet, "/static/css/style.css")
	env.serve(req, rec)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRekap(t *testing.T) {
	env := setup(t)
	cookie := env.login(t, "pakbudi", "dosen123")

	req, rec := newAuthRequest(http.MethodGet, "/rekap", cookie)
	env.serve(req, rec)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Belum ada data rekap")

	req, rec = newAuthRequest(http.MethodGet, "/rekap/add", cookie)
	env.serve(req, rec)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `action="/rekap/add"`)

	valid := url.Values{
		"nim": {"2201001"}, "nama": {"Andi"}, "matkul": {"Basis Data"},
		"pertemuan": {"3"}, "status": {"Hadir"}, "tanggal": {"2024-03-12"},
	}
	for fld := range valid {
		t.Run("missing "+fld, func(t *testing.T) {
			form := url.Values{}
			for k, v := range valid {
				if k != fld {
					form[k] = v
				}
			}
			req, rec := newFormRequest(http.MethodPost, "/rekap/add", cookie, form)
			env.serve(req, rec)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "Semua field wajib diisi", rec.Body.String())
		})
	}

	req, rec = newFormRequest(http.MethodPost, "/rekap/add", cookie, valid)
	env.serve(req, rec)
	assertRedirect(t, rec, "/rekap")

	testutil.CreateEntry(t, env.attendanceRepo, "2201002", "Budi", "Jaringan", "2024-03-14")
	testutil.CreateEntry(t, env.attendanceRepo, "2201003", "Citra", "Jaringan", "2024-03-01")

	req, rec = newAuthRequest(http.MethodGet, "/rekap", cookie)
	env.serve(req, rec)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	// newest first
	assert.Less(t, strings.Index(body, "Budi"), strings.Index(body, "Andi"))
	assert.Less(t, strings.Index(body, "Andi"), strings.Index(body, "Citra"))
}

func TestRekapStorageErrors(t *testing.T) {
	env := setup(t, withBrokenStorage())
	cookie := env.login(t, "andi", "mhs123")

	req, rec := newAuthRequest(http.MethodGet, "/rekap", cookie)
	env.serve(req, rec)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Gagal mengambil data", rec.Body.String())

	form := url.Values{
		"nim": {"2201001"}, "nama": {"Andi"}, "matkul": {"Basis Data"},
		"pertemuan": {"3"}, "status": {"Hadir"}, "tanggal": {"2024-03-12"},
	}
	req, rec = newFormRequest(http.MethodPost, "/rekap/add", cookie, form)
	env.serve(req, rec)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Gagal menyimpan data rekap", rec.Body.String())
}

func TestUnknownRoute(t *testing.T) {
	env := setup(t)

	req, rec := newRequest(http.MethodGet, "/nope")
	env.serve(req, rec)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	req, rec = newRequest(http.MethodGet, "/api/nope")
	env.serve(req, rec)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"error"`)
}
