package utils

import "github.com/labstack/echo/v4"

// SuccessResponse is the envelope for every successful response.
type SuccessResponse struct {
	Status  string      `json:"status"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

func OK(c echo.Context, code int, data interface{}) error {
	return c.JSON(code, SuccessResponse{Status: "success", Data: data})
}

func OKMessage(c echo.Context, code int, message string) error {
	return c.JSON(code, SuccessResponse{Status: "success", Message: message})
}
