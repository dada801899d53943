package handler

import (
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/livro-service/livro/internal/errs"
)

const (
	MIMEApplicationProblemJSON = "application/problem+json"

	problemBaseURL          = "http://www.jhipster.tech/problem"
	typeDefault             = problemBaseURL + "/problem-with-message"
	typeConstraintViolation = problemBaseURL + "/constraint-violation"
)

type Problem struct {
	Type        string            `json:"type,omitempty"`
	Title       string            `json:"title"`
	Status      int               `json:"status"`
	Detail      string            `json:"detail,omitempty"`
	Path        string            `json:"path,omitempty"`
	Message     string            `json:"message"`
	Params      string            `json:"params,omitempty"`
	EntityName  string            `json:"entityName,omitempty"`
	ErrorKey    string            `json:"errorKey,omitempty"`
	FieldErrors []errs.FieldError `json:"fieldErrors,omitempty"`
}

// HTTPErrorHandler translates handler errors into problem+json responses.
func (h *Handler) HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	p, alert := translate(err)
	p.Path = c.Request().URL.Path
	if alert != nil {
		setFailureAlert(c, alert.EntityName, alert.ErrorKey)
	}
	if p.Status >= http.StatusInternalServerError {
		h.log.Error("request failed", zap.String("path", p.Path), zap.Error(err))
	}

	c.Response().Header().Set(echo.HeaderContentType, MIMEApplicationProblemJSON)
	var werr error
	if c.Request().Method == http.MethodHead {
		werr = c.NoContent(p.Status)
	} else {
		werr = c.JSON(p.Status, p)
	}
	if werr != nil {
		h.log.Error("write problem", zap.Error(werr))
	}
}

func translate(err error) (Problem, *errs.BadRequestAlert) {
	var (
		alert    *errs.BadRequestAlert
		verr     *errs.ValidationError
		fieldErr validator.ValidationErrors
		httpErr  *echo.HTTPError
	)
	switch {
	case errors.As(err, &alert):
		return Problem{
			Type:       typeDefault,
			Title:      alert.Title,
			Status:     http.StatusBadRequest,
			Message:    "error." + alert.ErrorKey,
			Params:     alert.EntityName,
			EntityName: alert.EntityName,
			ErrorKey:   alert.ErrorKey,
		}, alert
	case errors.As(err, &fieldErr):
		return validationProblem(fieldErrors(fieldErr)), nil
	case errors.As(err, &verr):
		return validationProblem(verr.Fields), nil
	case errors.Is(err, errs.ErrNotFound):
		return httpProblem(http.StatusNotFound, ""), nil
	case errors.As(err, &httpErr):
		detail := fmt.Sprint(httpErr.Message)
		if detail == http.StatusText(httpErr.Code) {
			detail = ""
		}
		return httpProblem(httpErr.Code, detail), nil
	default:
		return httpProblem(http.StatusInternalServerError, ""), nil
	}
}

func httpProblem(status int, detail string) Problem {
	return Problem{
		Title:   http.StatusText(status),
		Status:  status,
		Detail:  detail,
		Message: fmt.Sprintf("error.http.%d", status),
	}
}

func validationProblem(fields []errs.FieldError) Problem {
	return Problem{
		Type:        typeConstraintViolation,
		Title:       "Method argument not valid",
		Status:      http.StatusBadRequest,
		Message:     "error.validation",
		FieldErrors: fields,
	}
}

func fieldErrors(ves validator.ValidationErrors) []errs.FieldError {
	out := make([]errs.FieldError, 0, len(ves))
	for _, fe := range ves {
		msg := fe.Tag()
		if msg == "required" {
			msg = "NotNull"
		}
		out = append(out, errs.FieldError{
			ObjectName: errs.EntityName,
			Field:      fe.Field(),
			Message:    msg,
		})
	}
	return out
}
