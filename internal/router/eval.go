package router

import (
	"net/http"

	"github.com/DjordjeVuckovic/exprtree/internal/apperr"
	"github.com/DjordjeVuckovic/exprtree/internal/domain"
	"github.com/DjordjeVuckovic/exprtree/internal/dto"
	"github.com/DjordjeVuckovic/exprtree/internal/expr"
	"github.com/DjordjeVuckovic/exprtree/internal/history"
	"github.com/DjordjeVuckovic/exprtree/internal/storage"
	"github.com/DjordjeVuckovic/exprtree/internal/tree"
	"github.com/DjordjeVuckovic/exprtree/internal/types/operator"
	"github.com/DjordjeVuckovic/exprtree/pkg/pagination"
	"github.com/labstack/echo/v4"
)

type EvalRouter struct {
	e        *echo.Echo
	recorder *history.Recorder
	reader   storage.Reader
	engines  map[operator.Dialect]expr.Engine
}

// NewEvalRouter serves evaluations and, when reader is not nil, their history.
func NewEvalRouter(e *echo.Echo, recorder *history.Recorder, reader storage.Reader) *EvalRouter {
	return &EvalRouter{
		e:        e,
		recorder: recorder,
		reader:   reader,
		engines: map[operator.Dialect]expr.Engine{
			operator.Arithmetic: expr.NewArithmetic(),
			operator.Boolean:    expr.NewBoolean(),
		},
	}
}

func (r *EvalRouter) Bind() {
	g := r.e.Group("/api/v1")
	g.POST("/evaluate", r.evaluateHandler)
	g.POST("/postfix", r.postfixHandler)
	g.POST("/tree", r.treeHandler)
	if r.reader != nil {
		g.GET("/history", r.historyHandler)
	}
}

func (r *EvalRouter) engine(d operator.Dialect) (expr.Engine, error) {
	if d == "" {
		d = operator.DefaultDialect
	}
	engine, ok := r.engines[d]
	if !ok {
		return nil, apperr.NewValidation("unsupported dialect: " + string(d))
	}
	return engine, nil
}

// evaluateHandler godoc
// @Summary Evaluate an expression
// @Description Converts an infix expression to postfix, builds its tree and evaluates it. Every call is recorded in the history.
// @Tags evaluation
// @Accept json
// @Produce json
// @Param request body dto.ExpressionRequest true "Expression"
// @Success 200 {object} dto.EvaluateResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]any
// @Router /api/v1/evaluate [post]
func (r *EvalRouter) evaluateHandler(c echo.Context) error {
	var req dto.ExpressionRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	engine, err := r.engine(req.Dialect)
	if err != nil {
		return err
	}

	evaluation, result, err := r.recorder.Evaluate(c.Request().Context(), engine, domain.SourceAPI, req.Expression)
	if err != nil {
		return err
	}

	var root tree.Node
	if root, err = engine.BuildTree(evaluation.Postfix); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.EvaluateResponse{
		ID:         evaluation.ID,
		Dialect:    engine.Dialect(),
		Expression: req.Expression,
		Postfix:    evaluation.Postfix,
		Result:     result.Value(),
		Tree:       dto.NewNode(root),
	})
}

// postfixHandler godoc
// @Summary Convert infix to postfix
// @Tags evaluation
// @Accept json
// @Produce json
// @Param request body dto.ExpressionRequest true "Expression"
// @Success 200 {object} dto.PostfixResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]any
// @Router /api/v1/postfix [post]
func (r *EvalRouter) postfixHandler(c echo.Context) error {
	var req dto.ExpressionRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	engine, err := r.engine(req.Dialect)
	if err != nil {
		return err
	}

	postfix, err := engine.ToPostfix(req.Expression)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.PostfixResponse{
		Dialect:    engine.Dialect(),
		Expression: req.Expression,
		Postfix:    postfix,
	})
}

// treeHandler godoc
// @Summary Build an expression tree from postfix
// @Tags evaluation
// @Accept json
// @Produce json
// @Param request body dto.TreeRequest true "Postfix expression"
// @Success 200 {object} dto.TreeResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]any
// @Router /api/v1/tree [post]
func (r *EvalRouter) treeHandler(c echo.Context) error {
	var req dto.TreeRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	engine, err := r.engine(req.Dialect)
	if err != nil {
		return err
	}

	root, err := engine.BuildTree(req.Postfix)
	if err != nil {
		return err
	}

	res := dto.TreeResponse{
		Dialect: engine.Dialect(),
		Postfix: tree.Postfix(root),
		Size:    tree.Size(root),
		Root:    dto.NewNode(root),
	}
	if root != nil {
		res.Infix = root.String()
	}

	return c.JSON(http.StatusOK, res)
}

// historyHandler godoc
// @Summary List recorded evaluations
// @Description Newest first, offset paginated.
// @Tags history
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size" default(100)
// @Success 200 {object} dto.HistoryResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/history [get]
func (r *EvalRouter) historyHandler(c echo.Context) error {
	var page pagination.OffsetRequest
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &page); err != nil {
		return apperr.NewValidationWrap("invalid pagination parameters", err)
	}
	_ = page.Validate()

	res, err := r.reader.List(c.Request().Context(), page)
	if err != nil {
		return err
	}

	items := make([]dto.Evaluation, 0, len(res.Items))
	for _, e := range res.Items {
		items = append(items, dto.NewEvaluation(e))
	}

	return c.JSON(http.StatusOK, dto.HistoryResponse{
		Items:   items,
		Total:   res.Total,
		Page:    res.Page,
		Size:    res.Size,
		HasMore: res.HasMore,
	})
}
