package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"net/url"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/pkm-kampus/portal/apps/api/echo"
	"github.com/pkm-kampus/portal/core"
	"github.com/pkm-kampus/portal/core/attendance"
	"github.com/pkm-kampus/portal/core/session"
	"github.com/pkm-kampus/portal/core/student"
	"github.com/pkm-kampus/portal/core/task"
	"github.com/pkm-kampus/portal/core/user"
	logsvc "github.com/pkm-kampus/portal/services/logger"
	inmemdb "github.com/pkm-kampus/portal/storage/database/inmem"
	testutil "github.com/pkm-kampus/portal/tests"
)

const cookieName = "kampus_session"

var errDB = errors.New("connection refused")

type testEnv struct {
	app            Server
	usrRepo        user.Repository
	studentRepo    student.Repository
	taskRepo       task.Repository
	attendanceRepo attendance.Repository
	sessions       *session.MemoryStore

	admin, lecturer, student user.User
}

type envOption func(conf *core.Config, env *testEnv)

func withOpenTaskAPI() envOption {
	return func(conf *core.Config, _ *testEnv) { conf.Server.OpenTaskAPI = true }
}

func withBcrypt() envOption {
	return func(conf *core.Config, _ *testEnv) {
		conf.Auth.PasswordScheme = user.SchemeBcrypt
		conf.Auth.BcryptCost = 4
	}
}

// withBrokenStorage swaps the task, student and attendance repositories for ones that always fail.
func withBrokenStorage() envOption {
	return func(_ *core.Config, env *testEnv) {
		env.taskRepo = brokenRepo{}
		env.studentRepo = brokenRepo{}
		env.attendanceRepo = brokenRepo{}
	}
}

func testConfig() *core.Config {
	return &core.Config{
		Env:       "TEST",
		AppName:   "Kampus Portal",
		TestMode:  true,
		SecretKey: "test-secret",
		Server:    core.ServerConfig{DisableReqLogs: true},
		Session:   core.SessionConfig{CookieName: cookieName, TTL: time.Hour},
		Auth:      core.AuthConfig{PasswordScheme: user.SchemePlain},
	}
}

func setup(t *testing.T, opts ...envOption) *testEnv {
	t.Helper()
	conf := testConfig()

	// set up DB & repos
	db := inmemdb.Open()
	env := &testEnv{
		usrRepo:        inmemdb.NewUserRepository(db),
		studentRepo:    inmemdb.NewStudentRepository(db),
		taskRepo:       inmemdb.NewTaskRepository(db),
		attendanceRepo: inmemdb.NewAttendanceRepository(db),
		sessions:       session.NewMemoryStore(conf.Session.TTL),
	}
	for _, opt := range opts {
		opt(conf, env)
	}

	verifier := user.NewCredentialVerifier(conf.Auth.PasswordScheme, conf.Auth.BcryptCost)
	hash := func(pwd string) string {
		h, err := verifier.Hash(pwd)
		require.NoError(t, err)
		return h
	}
	env.admin = testutil.CreateUser(t, env.usrRepo, "admin", hash("admin123"), user.RoleAdmin)
	env.lecturer = testutil.CreateUser(t, env.usrRepo, "pakbudi", hash("dosen123"), user.RoleLecturer)
	env.student = testutil.CreateUser(t, env.usrRepo, "andi", hash("mhs123"), user.RoleStudent)

	// set up server
	logger := logsvc.NewRollbarLogger(log.New(io.Discard, "", 0), conf)
	env.app = NewServer("", nil, &Deps{
		Conf:          conf,
		Logger:        logger,
		Sessions:      env.sessions,
		UserSvc:       user.NewService(env.usrRepo, verifier),
		StudentSvc:    student.NewService(env.studentRepo),
		TaskSvc:       task.NewService(env.taskRepo),
		AttendanceSvc: attendance.NewService(env.attendanceRepo),
	})
	return env
}

// login posts the login form and returns the session cookie.
func (env *testEnv) login(t *testing.T, uname, pwd string) *http.Cookie {
	t.Helper()
	req, rec := newFormRequest(http.MethodPost, "/login", nil, url.Values{"username": {uname}, "password": {pwd}})
	env.app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusFound, rec.Code, rec.Body.String())
	require.Equal(t, "/menu", rec.Header().Get("Location"))

	for _, c := range rec.Result().Cookies() {
		if c.Name == cookieName {
			return c
		}
	}
	t.Fatalf("login(%s) failed: no session cookie", uname)
	return nil
}

func (env *testEnv) serve(req *http.Request, rec *httptest.ResponseRecorder) *httptest.ResponseRecorder {
	env.app.ServeHTTP(rec, req)
	return rec
}

type httpErr struct {
	Error string `json:"error"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	cookie   *http.Cookie
	wantCode int
	wantData []byte
	extra    interface{}
}

func newAuthRequest(method, path string, cookie *http.Cookie, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	return req, rec
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	return newAuthRequest(method, path, nil, data...)
}

func newFormRequest(method, path string, cookie *http.Cookie, form url.Values) (*http.Request, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	return req, httptest.NewRecorder()
}

func marchallObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marchallObj() failed: %v", err)
	}
	return data
}

func jsonBytesEqual(b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	return reflect.DeepEqual(j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	t.Helper()
	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	if tt.wantData == nil {
		return
	}
	ok, err := jsonBytesEqual(rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}

func assertRedirect(t *testing.T, rec *httptest.ResponseRecorder, location string) {
	t.Helper()
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, location, rec.Header().Get("Location"))
}

// brokenRepo fails every storage call.
type brokenRepo struct{}

func (brokenRepo) CreateTask(context.Context, task.Task) (int64, error) { return 0, errDB }
func (brokenRepo) QueryAllTasks(context.Context) ([]task.Task, error)   { return nil, errDB }
func (brokenRepo) UpdateTask(context.Context, task.Task) error          { return errDB }
func (brokenRepo) DeleteTaskByID(context.Context, int64) error          { return errDB }

func (brokenRepo) CreateStudent(context.Context, student.Student) (student.Student, error) {
	return student.Student{}, errDB
}
func (brokenRepo) QueryAllStudents(context.Context) ([]student.Student, error) { return nil, errDB }
func (brokenRepo) GetStudentByID(context.Context, int) (student.Student, error) {
	return student.Student{}, errDB
}
func (brokenRepo) UpdateStudent(context.Context, student.Student) error { return errDB }
func (brokenRepo) DeleteStudentByID(context.Context, int) error         { return errDB }

func (brokenRepo) CreateEntry(context.Context, attendance.Entry) (attendance.Entry, error) {
	return attendance.Entry{}, errDB
}
func (brokenRepo) QueryAllEntries(context.Context) ([]attendance.Entry, error) { return nil, errDB }
