package utils

import (
	"errors"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

type errorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

type validationResponse struct {
	Success bool         `json:"success"`
	Errors  []FieldError `json:"errors"`
}

// HTTPErrorHandler renders every error escaping a handler. Validation errors
// use the {success:false, errors:[...]} shape, everything else
// {status:"error", message}. Internal details are exposed only in development.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr *AppError
	if !errors.As(err, &appErr) {
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			msg, ok := httpErr.Message.(string)
			if !ok {
				msg = http.StatusText(httpErr.Code)
			}
			appErr = &AppError{Code: httpErr.Code, Message: msg, Internal: httpErr.Internal}
		} else {
			appErr = NewInternal(err)
		}
	}

	if appErr.Code >= http.StatusInternalServerError {
		Log.WithFields(logrus.Fields{
			"method": c.Request().Method,
			"path":   c.Request().URL.Path,
		}).WithError(err).Error("request failed")
	}

	if len(appErr.Errors) > 0 {
		_ = c.JSON(appErr.Code, validationResponse{Success: false, Errors: appErr.Errors})
		return
	}

	resp := errorResponse{Status: "error", Message: appErr.Message}
	if appErr.Internal != nil && os.Getenv("APP_ENV") == "development" {
		resp.Detail = appErr.Internal.Error()
	}
	_ = c.JSON(appErr.Code, resp)
}
