package rest

import (
	"context"
	"errors"
	"net/http"
	"reflect"
	"strings"

	"beaconia/domain"
	"beaconia/pkg/logger"

	jsonres "beaconia/pkg/response"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// newValidator reports field errors under their JSON names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"json", "query"} {
			name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return f.Name
	})
	return v
}

func validationDetails(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}
	details := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msg := fe.Tag()
		if fe.Param() != "" {
			msg += "=" + fe.Param()
		}
		details = append(details, fe.Namespace()[strings.Index(fe.Namespace(), ".")+1:]+": failed "+msg)
	}
	return details
}

func badRequest(c echo.Context, message string, details []string) error {
	return c.JSON(http.StatusBadRequest, jsonres.Error(jsonres.CodeBadRequest, message, details))
}

// respondError maps service errors onto the error envelope.
func respondError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return badRequest(c, "Validation failed", []string{err.Error()})
	case errors.Is(err, domain.ErrNoCandidates):
		return c.JSON(http.StatusNotFound, jsonres.Error(jsonres.CodeNotFound, "No matching activities found for your criteria", nil))
	case errors.Is(err, domain.ErrDecisionNotFound):
		return c.JSON(http.StatusNotFound, jsonres.Error(jsonres.CodeNotFound, "Decision not found", nil))
	case errors.Is(err, domain.ErrActivityNotFound):
		return c.JSON(http.StatusNotFound, jsonres.Error(jsonres.CodeNotFound, "Activity not found", nil))
	case errors.Is(err, domain.ErrNotFound):
		return c.JSON(http.StatusNotFound, jsonres.Error(jsonres.CodeNotFound, "Not found", nil))
	case errors.Is(err, domain.ErrForbidden):
		return c.JSON(http.StatusForbidden, jsonres.Error(jsonres.CodeForbidden, "You can only provide feedback for your own decisions", nil))
	case errors.Is(err, context.DeadlineExceeded):
		logger.Warn("request timed out", "path", c.Path())
		return c.JSON(http.StatusInternalServerError, jsonres.Error(jsonres.CodeInternal, "Request timed out", nil))
	default:
		logger.Error("request failed", "path", c.Path(), "error", err)
		return c.JSON(http.StatusInternalServerError, jsonres.Error(jsonres.CodeInternal, "Internal server error", nil))
	}
}
