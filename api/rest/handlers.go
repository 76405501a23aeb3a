package rest

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"yqhp/calculator/internal/expression"
	"yqhp/calculator/pkg/jsonutil"
)

// healthCheck handles GET /health
func (s *Server) healthCheck(c *fiber.Ctx) error {
	return c.JSON(HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

// evaluate handles POST /api/v1/evaluate
func (s *Server) evaluate(c *fiber.Ctx) error {
	var req EvaluateRequest
	if err := jsonutil.Unmarshal(c.Body(), &req); err != nil {
		return BadRequest(c, "")
	}

	id := uuid.NewString()
	start := time.Now()
	value, err := s.calc.EvaluateString(req.Expression)
	s.stats.Record(time.Since(start), err)

	if err != nil {
		failure := EvaluateFailure{
			ID:         id,
			Expression: req.Expression,
			Kind:       kindName(err),
			Position:   -1,
		}
		var exprErr *expression.ExpressionError
		if errors.As(err, &exprErr) {
			failure.Stage = exprErr.Stage.String()
			failure.Position = exprErr.Position
		}

		s.logger.Debug("expression rejected",
			zap.String("id", id),
			zap.String("expression", req.Expression),
			zap.Error(err),
		)
		return InvalidInput(c, failure)
	}

	return Success(c, EvaluateResult{
		ID:         id,
		Expression: req.Expression,
		Result:     value,
	})
}

// getStats handles GET /api/v1/stats
func (s *Server) getStats(c *fiber.Ctx) error {
	return Success(c, s.stats.Snapshot())
}
