package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/pkm-kampus/portal/core/schedule"
	"github.com/pkm-kampus/portal/core/user"
)

type pageHandler struct {
	usrSvc *user.Service
}

func (h *pageHandler) routes() []route {
	return []route{
		{method: http.MethodGet, path: "/menu", handler: h.menu, guard: loggedIn},
		{method: http.MethodGet, path: "/account", handler: h.account, guard: loggedIn},
		{method: http.MethodGet, path: "/deadline", handler: h.deadline, guard: loggedIn},
		{method: http.MethodGet, path: "/matkul", handler: h.courses, guard: loggedIn},
		{method: http.MethodGet, path: "/jadwal", handler: h.classes, guard: loggedIn},
		{method: http.MethodGet, path: "/jadwal_mengajar", handler: h.teaching, guard: loggedIn},
		{method: http.MethodGet, path: "/users", handler: h.users, guard: adminOnly},
	}
}

func (h *pageHandler) menu(ctx echo.Context) error {
	usr, _ := getContextUser(ctx)
	return ctx.Render(http.StatusOK, "menu", echo.Map{
		"user":  usr,
		"menus": user.Menu(usr.Role),
	})
}

func (h *pageHandler) account(ctx echo.Context) error {
	usr, _ := getContextUser(ctx)
	return ctx.Render(http.StatusOK, "account", echo.Map{"user": usr})
}

func (h *pageHandler) deadline(ctx echo.Context) error {
	return ctx.Render(http.StatusOK, "deadline", nil)
}

func (h *pageHandler) courses(ctx echo.Context) error {
	return ctx.Render(http.StatusOK, "matkul", echo.Map{"jadwal": schedule.Courses()})
}

func (h *pageHandler) classes(ctx echo.Context) error {
	usr, _ := getContextUser(ctx)
	return ctx.Render(http.StatusOK, "jadwal", echo.Map{"user": usr, "jadwal": schedule.Classes()})
}

func (h *pageHandler) teaching(ctx echo.Context) error {
	return ctx.Render(http.StatusOK, "jadwal_mengajar", echo.Map{"jadwal": schedule.TeachingSchedule()})
}

func (h *pageHandler) users(ctx echo.Context) error {
	users, err := h.usrSvc.QueryAll(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying users")
	}
	return ctx.Render(http.StatusOK, "users/index", echo.Map{"users": users})
}
