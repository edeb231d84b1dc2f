package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/pkm-kampus/portal/core/attendance"
)

type attendanceHandler struct {
	svc      *attendance.Service
	validate *validator.Validate
}

func (h *attendanceHandler) routes() []route {
	return []route{
		{method: http.MethodGet, path: "/rekap", handler: h.list, guard: loggedIn},
		{method: http.MethodGet, path: "/rekap/add", handler: h.addForm, guard: loggedIn},
		{method: http.MethodPost, path: "/rekap/add", handler: h.create, guard: loggedIn},
	}
}

func (h *attendanceHandler) list(ctx echo.Context) error {
	entries, err := h.svc.QueryAll(ctx.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Gagal mengambil data").SetInternal(err)
	}
	usr, _ := getContextUser(ctx)
	return ctx.Render(http.StatusOK, "rekap", echo.Map{"user": usr, "rekap": entries})
}

func (h *attendanceHandler) addForm(ctx echo.Context) error {
	return ctx.Render(http.StatusOK, "rekap_add", nil)
}

func (h *attendanceHandler) create(ctx echo.Context) error {
	var data attendance.NewEntry
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewEntry")
	}
	if err := data.Validate(h.validate); err != nil {
		return err
	}

	if _, err := h.svc.Create(ctx.Request().Context(), data); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Gagal menyimpan data rekap").SetInternal(err)
	}
	return ctx.Redirect(http.StatusFound, "/rekap")
}
