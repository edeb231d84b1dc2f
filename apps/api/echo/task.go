package echoapi

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/pkm-kampus/portal/core/task"
)

type taskApi struct {
	svc      *task.Service
	validate *validator.Validate
}

type (
	taskCreatedResponse struct {
		ID      int64  `json:"id"`
		Message string `json:"message"`
	}

	messageResponse struct {
		Message string `json:"message"`
	}
)

func (api *taskApi) routes(g guard) []route {
	return []route{
		{method: http.MethodGet, path: "/api/tasks", handler: api.query, guard: g},
		{method: http.MethodPost, path: "/api/tasks", handler: api.create, guard: g},
		{method: http.MethodPut, path: "/api/tasks/:id", handler: api.update, guard: g},
		{method: http.MethodDelete, path: "/api/tasks/:id", handler: api.destroy, guard: g},
	}
}

func taskID(ctx echo.Context) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return 0, errHTTPNotFound
	}
	return id, nil
}

// Handlers

func (api *taskApi) query(ctx echo.Context) error {
	tasks, err := api.svc.QueryAll(ctx.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Database error").SetInternal(err)
	}
	return ctx.JSON(http.StatusOK, tasks)
}

func (api *taskApi) create(ctx echo.Context) error {
	var data task.NewTask
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewTask")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	id, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Gagal membuat tugas").SetInternal(err)
	}
	return ctx.JSON(http.StatusOK, taskCreatedResponse{ID: id, Message: "Task created successfully"})
}

func (api *taskApi) update(ctx echo.Context) error {
	id, err := taskID(ctx)
	if err != nil {
		return err
	}
	var data task.UpdateTask
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateTask")
	}

	if err := api.svc.Update(ctx.Request().Context(), id, data); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Gagal update tugas").SetInternal(err)
	}
	return ctx.JSON(http.StatusOK, messageResponse{Message: "Task updated successfully"})
}

func (api *taskApi) destroy(ctx echo.Context) error {
	id, err := taskID(ctx)
	if err != nil {
		return err
	}
	if err := api.svc.Delete(ctx.Request().Context(), id); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Gagal menghapus tugas").SetInternal(err)
	}
	return ctx.JSON(http.StatusOK, messageResponse{Message: "Task deleted successfully"})
}
