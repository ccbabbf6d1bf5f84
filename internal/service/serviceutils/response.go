// Package serviceutils holds the response envelope shared by every handler.
package serviceutils

import (
	"github.com/labstack/echo/v4"

	"github.com/tucasahr/hr-apigateway/internal/logger"
)

// Response is the envelope every endpoint answers with. Success carries the
// payload in Data; failure carries a human-readable Message.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// ResponseSuccess writes a success envelope with the given status.
func ResponseSuccess(c echo.Context, status int, message string, data interface{}) error {
	return c.JSON(status, Response{Success: true, Message: message, Data: data})
}

// ResponseError logs the cause and writes a failure envelope. The underlying
// error stays in the log; clients only see the message.
func ResponseError(c echo.Context, status int, message string, err error) error {
	if err != nil {
		logger.ErrorLog(c.Request().Context(), message, err)
	}
	return c.JSON(status, Response{Success: false, Message: message})
}
