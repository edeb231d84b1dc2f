package echoapi

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/pkm-kampus/portal/core/student"
)

const msgStudentFieldsRequired = "Nama, NIM, dan jurusan wajib diisi"

type studentHandler struct {
	svc      *student.Service
	validate *validator.Validate
}

func (h *studentHandler) routes() []route {
	return []route{
		{method: http.MethodGet, path: "/mahasiswa", handler: h.list, guard: adminOnly},
		{method: http.MethodGet, path: "/mahasiswa/add", handler: h.addForm, guard: adminOnly},
		{method: http.MethodPost, path: "/mahasiswa/add", handler: h.create, guard: adminOnly},
		{method: http.MethodGet, path: "/mahasiswa/edit/:id", handler: h.editForm, guard: adminOnly},
		{method: http.MethodPost, path: "/mahasiswa/edit/:id", handler: h.update, guard: adminOnly},
		{method: http.MethodGet, path: "/mahasiswa/delete/:id", handler: h.confirmDelete, guard: adminOnly},
		{method: http.MethodPost, path: "/mahasiswa/delete/:id", handler: h.destroy, guard: adminOnly},
	}
}

func studentID(ctx echo.Context) (int, error) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return 0, errHTTPNotFound
	}
	return id, nil
}

// getStudent loads the :id student, mapping an unknown id to 404.
func (h *studentHandler) getStudent(ctx echo.Context) (student.Student, error) {
	id, err := studentID(ctx)
	if err != nil {
		return student.Student{}, err
	}
	s, err := h.svc.GetByID(ctx.Request().Context(), id)
	if err != nil {
		if errors.Cause(err) == student.ErrNotFound {
			return student.Student{}, errHTTPNotFound
		}
		return student.Student{}, errors.Wrap(err, "getting mahasiswa")
	}
	return s, nil
}

func (h *studentHandler) list(ctx echo.Context) error {
	students, err := h.svc.QueryAll(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying mahasiswa")
	}
	return ctx.Render(http.StatusOK, "mahasiswa/index", echo.Map{"data": students})
}

func (h *studentHandler) addForm(ctx echo.Context) error {
	return ctx.Render(http.StatusOK, "mahasiswa/add", echo.Map{"form": student.NewStudent{}})
}

func (h *studentHandler) create(ctx echo.Context) error {
	var data student.NewStudent
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewStudent")
	}
	if err := data.Validate(h.validate); err != nil {
		if _, ok := err.(validator.ValidationErrors); ok {
			return ctx.Render(http.StatusBadRequest, "mahasiswa/add", echo.Map{
				"form":    data,
				"message": msgStudentFieldsRequired,
			})
		}
		return err
	}
	if _, err := h.svc.Create(ctx.Request().Context(), data); err != nil {
		return errors.Wrap(err, "creating mahasiswa")
	}
	return ctx.Redirect(http.StatusFound, "/mahasiswa")
}

func (h *studentHandler) editForm(ctx echo.Context) error {
	s, err := h.getStudent(ctx)
	if err != nil {
		return err
	}
	return ctx.Render(http.StatusOK, "mahasiswa/edit", echo.Map{"mahasiswa": s})
}

func (h *studentHandler) update(ctx echo.Context) error {
	id, err := studentID(ctx)
	if err != nil {
		return err
	}
	var data student.UpdateStudent
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateStudent")
	}
	if err := h.svc.Update(ctx.Request().Context(), id, data); err != nil {
		return errors.Wrap(err, "updating mahasiswa")
	}
	return ctx.Redirect(http.StatusFound, "/mahasiswa")
}

func (h *studentHandler) confirmDelete(ctx echo.Context) error {
	s, err := h.getStudent(ctx)
	if err != nil {
		return err
	}
	return ctx.Render(http.StatusOK, "mahasiswa/delete", echo.Map{"mahasiswa": s})
}

func (h *studentHandler) destroy(ctx echo.Context) error {
	id, err := studentID(ctx)
	if err != nil {
		return err
	}
	if err := h.svc.Delete(ctx.Request().Context(), id); err != nil {
		return errors.Wrap(err, "deleting mahasiswa")
	}
	return ctx.Redirect(http.StatusFound, "/mahasiswa")
}
