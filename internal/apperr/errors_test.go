package apperr_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DjordjeVuckovic/mcalc/internal/apperr"
	"github.com/DjordjeVuckovic/mcalc/internal/calcerr"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidation(t *testing.T) {
	err := apperr.NewValidation("expression is required")

	assert.Equal(t, "expression is required", err.Error())
	assert.Nil(t, err.Unwrap())
	_, ok := err.Calc()
	assert.False(t, ok)
}

func TestNewValidationWrap(t *testing.T) {
	inner := fmt.Errorf("decode failed")
	err := apperr.NewValidationWrap("invalid body", inner)

	assert.Equal(t, "invalid body: decode failed", err.Error())
	assert.ErrorIs(t, err, inner)
}

func TestNewEvaluation(t *testing.T) {
	inner := &calcerr.Error{Kind: calcerr.UnexpectedEndOfInput, Pos: 6, Expected: "')'"}
	err := apperr.NewEvaluation(inner)

	assert.Equal(t, "Unexpected end of expression.", err.Message)
	ce, ok := err.Calc()
	require.True(t, ok)
	assert.Equal(t, 6, ce.Pos)
}

func TestValidationError_SurvivesFmtWrapping(t *testing.T) {
	original := apperr.NewValidation("empty expression")
	doubleWrapped := fmt.Errorf("router: %w", fmt.Errorf("handler: %w", original))

	var ve *apperr.ValidationError
	require.True(t, errors.As(doubleWrapped, &ve))
	assert.Equal(t, "empty expression", ve.Message)
}

func handle(t *testing.T, err error) (int, apperr.ErrorResponse) {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	apperr.GlobalErrorHandler()(err, c)

	var body apperr.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestGlobalErrorHandler(t *testing.T) {
	t.Run("evaluation error", func(t *testing.T) {
		code, body := handle(t, apperr.NewEvaluation(&calcerr.Error{Kind: calcerr.InvalidCharacter, Pos: 1, Found: "x"}))
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "Invalid character was found.", body.Error)
		assert.Equal(t, "invalid_character", body.Kind)
		require.NotNil(t, body.Position)
		assert.Equal(t, 1, *body.Position)
	})

	t.Run("plain validation error", func(t *testing.T) {
		code, body := handle(t, apperr.NewValidation("expression is required"))
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "validation error", body.Title)
		assert.Empty(t, body.Kind)
		assert.Nil(t, body.Position)
	})

	t.Run("echo http error", func(t *testing.T) {
		code, body := handle(t, echo.NewHTTPError(http.StatusNotFound, "not found"))
		assert.Equal(t, http.StatusNotFound, code)
		assert.Equal(t, "not found", body.Error)
	})

	t.Run("unknown error", func(t *testing.T) {
		code, body := handle(t, errors.New("boom"))
		assert.Equal(t, http.StatusInternalServerError, code)
		assert.Equal(t, "internal server error", body.Error)
	})
}
