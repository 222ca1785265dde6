package apperr

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the JSON body of every non-2xx response.
type ErrorResponse struct {
	Error    string `json:"error"`
	Title    string `json:"title,omitempty"`
	Kind     string `json:"kind,omitempty"`
	Position *int   `json:"position,omitempty"`
}

func GlobalErrorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var ve *ValidationError
		if errors.As(err, &ve) {
			body := ErrorResponse{Error: ve.Message, Title: "validation error"}
			if ce, ok := ve.Calc(); ok {
				pos := ce.Pos
				body.Title = "evaluation error"
				body.Kind = ce.Kind.String()
				body.Position = &pos
			}
			_ = c.JSON(http.StatusBadRequest, body)
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			msg := fmt.Sprintf("%v", he.Message)
			_ = c.JSON(he.Code, ErrorResponse{Error: msg})
			return
		}

		slog.Error("Unhandled error", "error", err)
		_ = c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}
