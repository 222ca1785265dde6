package router

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/DjordjeVuckovic/mcalc/internal/api/dto"
	"github.com/DjordjeVuckovic/mcalc/internal/apperr"
	"github.com/DjordjeVuckovic/mcalc/internal/calcerr"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const DefaultMaxBatchSize = 100

type Evaluator interface {
	Evaluate(expr string) (float64, error)
}

type EvaluateRouter struct {
	e            *echo.Echo
	evaluator    Evaluator
	maxBatchSize int
}

type EvaluateRouterOption func(*EvaluateRouter)

// WithMaxBatchSize caps the number of expressions per batch request; 0 disables the cap.
func WithMaxBatchSize(n int) EvaluateRouterOption {
	return func(r *EvaluateRouter) {
		r.maxBatchSize = n
	}
}

func NewEvaluateRouter(e *echo.Echo, ev Evaluator, opts ...EvaluateRouterOption) *EvaluateRouter {
	r := &EvaluateRouter{
		e:            e,
		evaluator:    ev,
		maxBatchSize: DefaultMaxBatchSize,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *EvaluateRouter) Bind() {
	r.e.GET("/evaluate", r.evaluateQueryHandler)
	r.e.POST("/evaluate", r.evaluateBodyHandler)
	r.e.POST("/evaluate/batch", r.evaluateBatchHandler)
}

// evaluateQueryHandler godoc
// @Summary Evaluate an expression
// @Description Evaluates an arithmetic expression passed as a query parameter
// @Tags evaluate
// @Produce json
// @Param expr query string true "Expression, e.g. 2+4*8"
// @Success 200 {object} dto.EvaluateResponse
// @Failure 400 {object} apperr.ErrorResponse
// @Router /evaluate [get]
func (r *EvaluateRouter) evaluateQueryHandler(c echo.Context) error {
	expr := c.QueryParam("expr")
	if strings.TrimSpace(expr) == "" {
		return apperr.NewValidation("expr query parameter is required")
	}
	return r.evaluate(c, expr)
}

// evaluateBodyHandler godoc
// @Summary Evaluate an expression
// @Description Evaluates an arithmetic expression passed in the request body
// @Tags evaluate
// @Accept json
// @Produce json
// @Param request body dto.EvaluateRequest true "Expression"
// @Success 200 {object} dto.EvaluateResponse
// @Failure 400 {object} apperr.ErrorResponse
// @Router /evaluate [post]
func (r *EvaluateRouter) evaluateBodyHandler(c echo.Context) error {
	var req dto.EvaluateRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}
	if strings.TrimSpace(req.Expression) == "" {
		return apperr.NewValidation("expression is required")
	}
	return r.evaluate(c, req.Expression)
}

func (r *EvaluateRouter) evaluate(c echo.Context, expr string) error {
	v, err := r.evaluator.Evaluate(expr)
	if err != nil {
		slog.Debug("Evaluation failed", "expression", expr, "error", err)
		return apperr.NewEvaluation(err)
	}

	return c.JSON(http.StatusOK, dto.EvaluateResponse{
		ID:         uuid.New(),
		Expression: expr,
		Result:     dto.Number(v),
	})
}

// evaluateBatchHandler godoc
// @Summary Evaluate several expressions
// @Description Evaluates each expression independently; failures are reported per item
// @Tags evaluate
// @Accept json
// @Produce json
// @Param request body dto.BatchRequest true "Expressions"
// @Success 200 {object} dto.BatchResponse
// @Failure 400 {object} apperr.ErrorResponse
// @Router /evaluate/batch [post]
func (r *EvaluateRouter) evaluateBatchHandler(c echo.Context) error {
	var req dto.BatchRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}
	if len(req.Expressions) == 0 {
		return apperr.NewValidation("expressions must not be empty")
	}
	if r.maxBatchSize > 0 && len(req.Expressions) > r.maxBatchSize {
		return apperr.NewValidation(fmt.Sprintf("batch size %d exceeds limit %d", len(req.Expressions), r.maxBatchSize))
	}

	resp := dto.BatchResponse{
		ID:    uuid.New(),
		Items: make([]dto.BatchItem, 0, len(req.Expressions)),
	}
	for _, expr := range req.Expressions {
		item := dto.BatchItem{Expression: expr}
		v, err := r.evaluator.Evaluate(expr)
		if err != nil {
			item.Error = calcerr.Message(calcerr.KindOf(err))
			var ce *calcerr.Error
			if errors.As(err, &ce) {
				pos := ce.Pos
				item.Kind = ce.Kind.String()
				item.Position = &pos
			}
			resp.Failed++
		} else {
			n := dto.Number(v)
			item.Result = &n
			resp.Succeeded++
		}
		resp.Items = append(resp.Items, item)
	}

	return c.JSON(http.StatusOK, resp)
}
