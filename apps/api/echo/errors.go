package echoapi

import (
	"fmt"
	"net/http"
	"sort"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/pkm-kampus/portal/core"
)

var (
	errUnauthorized  = echo.NewHTTPError(http.StatusUnauthorized, "Silakan login terlebih dahulu")
	errHTTPForbidden = echo.NewHTTPError(http.StatusForbidden, "permission denied")
	errHTTPNotFound  = echo.NewHTTPError(http.StatusNotFound, "not found")
)

func isAPIRequest(ctx echo.Context) bool {
	return strings.HasPrefix(ctx.Request().URL.Path, "/api/")
}

// newAppHTTPErrorHandler returns a custom echo.HTTPErrorHandler that knows how to handle our errors.
// /api/ requests get a JSON body; pages get plain text, or the error page for unexpected failures.
// signalShutdown is called in order to gracefully shutdown the Server whenever a core.shutdown error is caught.
func newAppHTTPErrorHandler(logger core.Logger, translator ut.Translator, signalShutdown func()) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		var code int
		var message interface{}
		var unexpected bool

		usr, _ := getContextUser(ctx)

		switch origErr := errors.Cause(err).(type) {
		case *echo.HTTPError:
			if origErr.Internal != nil {
				if herr, ok := origErr.Internal.(*echo.HTTPError); ok {
					origErr = herr
				} else if origErr.Code >= http.StatusInternalServerError {
					logger.Error(fmt.Sprint(origErr.Message), origErr.Internal, usr)
				}
			}
			code = origErr.Code
			message = origErr.Message
		case validator.ValidationErrors:
			code = http.StatusBadRequest
			message = core.TranslateErrors(origErr, translator)
		case *core.ValidationError:
			if fldErrs := origErr.FieldMap(); fldErrs != nil {
				message = fldErrs
			} else {
				message = origErr.Error()
			}
			code = http.StatusBadRequest
		default: // any other error is a server error
			unexpected = true
			code = http.StatusInternalServerError
			msg := http.StatusText(http.StatusInternalServerError)
			message = msg

			logger.Error(msg, errors.Wrap(err, msg), usr)

			// shutting down...
			if core.IsShutdown(err) {
				signalShutdown()
			}
		}

		if unexpected && ctx.Echo().Debug {
			message = err.Error()
		}

		// Send response
		if ctx.Response().Committed {
			return
		}
		switch {
		case ctx.Request().Method == http.MethodHead:
			err = ctx.NoContent(code)
		case isAPIRequest(ctx):
			if m, ok := message.(string); ok {
				message = echo.Map{"error": m}
			}
			err = ctx.JSON(code, message)
		case unexpected:
			err = ctx.Render(code, "error", echo.Map{"code": code, "message": message})
		default:
			err = ctx.String(code, messageText(message))
		}
		if err != nil {
			ctx.Echo().Logger.Error(err)
		}
	}
}

func messageText(message interface{}) string {
	switch m := message.(type) {
	case string:
		return m
	case map[string]string:
		parts := make([]string, 0, len(m))
		for fld, msg := range m {
			parts = append(parts, fld+": "+msg)
		}
		sort.Strings(parts)
		return strings.Join(parts, "\n")
	default:
		return fmt.Sprint(m)
	}
}
