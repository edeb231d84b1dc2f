package echoapi

import (
	"context"
	"net/http"
	"os"
	"syscall"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/pkg/errors"

	"github.com/pkm-kampus/portal/core"
	"github.com/pkm-kampus/portal/core/attendance"
	"github.com/pkm-kampus/portal/core/session"
	"github.com/pkm-kampus/portal/core/student"
	"github.com/pkm-kampus/portal/core/task"
	"github.com/pkm-kampus/portal/core/user"
	"github.com/pkm-kampus/portal/web"
)

type (
	Deps struct {
		Conf          *core.Config
		Logger        core.Logger
		Sessions      session.Store
		UserSvc       *user.Service
		StudentSvc    *student.Service
		TaskSvc       *task.Service
		AttendanceSvc *attendance.Service
	}

	Server interface {
		http.Handler
		Start() error
		Stop(context.Context) error
	}

	server struct {
		addr     string
		shutdown chan os.Signal
		deps     *Deps
		app      *echo.Echo
	}
)

var _ Server = (*server)(nil)

// NewServer builds the HTTP server. shutdown, when set, receives SIGTERM on a fatal handler error.
func NewServer(addr string, shutdown chan os.Signal, deps *Deps) Server {
	s := &server{
		addr:     addr,
		shutdown: shutdown,
		deps:     deps,
		app:      echo.New(),
	}
	s.setup()
	return s
}

func (s *server) setup() {
	conf := s.deps.Conf
	validate, translator := core.NewValidator()

	s.app.HideBanner = true
	s.app.Debug = conf.Debug
	s.app.Renderer = mustNewTemplateRenderer(web.FS)
	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.deps.Logger, translator, s.signalShutdown)

	s.app.Pre(middleware.RemoveTrailingSlash())
	if !conf.Server.DisableReqLogs {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(conf.Debug || conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}
	s.app.Use(newSessionMiddleware(s.deps.Sessions, newCookieSigner(conf)))

	s.app.StaticFS("/static", echo.MustSubFS(web.FS, "static"))

	taskGuard := loggedInAPI
	if conf.Server.OpenTaskAPI {
		taskGuard = public
	}

	auth := &authHandler{svc: s.deps.UserSvc, sessions: s.deps.Sessions, signer: newCookieSigner(conf)}
	pages := &pageHandler{usrSvc: s.deps.UserSvc}
	students := &studentHandler{svc: s.deps.StudentSvc, validate: validate}
	tasks := &taskApi{svc: s.deps.TaskSvc, validate: validate}
	rekap := &attendanceHandler{svc: s.deps.AttendanceSvc, validate: validate}

	var routes []route
	routes = append(routes, auth.routes()...)
	routes = append(routes, pages.routes()...)
	routes = append(routes, students.routes()...)
	routes = append(routes, tasks.routes(taskGuard)...)
	routes = append(routes, rekap.routes()...)
	register(s.app, routes)
}

func (s *server) signalShutdown() {
	if s.shutdown != nil {
		s.shutdown <- syscall.SIGTERM
	}
}

func (s *server) Start() error {
	if err := s.app.Start(s.addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *server) Stop(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}
