// Package server exposes the evaluator over HTTP and records every evaluation
// in a history store.
package server

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/zephyrtronium/rootcalc"
	"github.com/zephyrtronium/rootcalc/internal/history"
)

// DefaultHistoryLimit is the number of entries listed when no limit is given.
const DefaultHistoryLimit = 50

// Server is the HTTP API server.
type Server struct {
	app   *fiber.App
	store *history.Store
	opts  []rootcalc.EvalOption
}

// New creates a server that records evaluations in s. The options are used
// for every evaluation.
func New(s *history.Store, opts ...rootcalc.EvalOption) *Server {
	srv := &Server{
		store: s,
		opts:  opts,
	}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ReadTimeout:           30 * time.Second,
		WriteTimeout:          30 * time.Second,
	})

	app.Get("/healthz", srv.health)
	app.Post("/v1/evaluate", srv.evaluate)
	app.Post("/v1/postfix", srv.postfix)
	app.Get("/v1/history", srv.listHistory)
	app.Get("/v1/history/:id", srv.getHistory)
	app.Delete("/v1/history", srv.clearHistory)

	srv.app = app
	return srv
}

// Listen starts the HTTP server on the given address.
func (s *Server) Listen(addr string) error {
	return s.app.Listen(addr)
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// App returns the underlying Fiber app (useful for testing).
func (s *Server) App() *fiber.App {
	return s.app
}

type expressionRequest struct {
	Expression string `json:"expression"`
}

type evaluateResponse struct {
	ID         string `json:"id,omitempty"`
	Expression string `json:"expression"`
	Postfix    string `json:"postfix"`
	Result     string `json:"result"`
}

type postfixResponse struct {
	Expression string `json:"expression"`
	Postfix    string `json:"postfix"`
}

type entryResponse struct {
	ID         string `json:"id"`
	Expression string `json:"expression"`
	Postfix    string `json:"postfix,omitempty"`
	Result     string `json:"result,omitempty"`
	Error      string `json:"error,omitempty"`
	CreateTime string `json:"createTime"`
}

func toEntryResponse(e history.Entry) entryResponse {
	return entryResponse{
		ID:         e.ID,
		Expression: e.Expression,
		Postfix:    e.Postfix,
		Result:     e.Result,
		Error:      e.Error,
		CreateTime: e.CreatedAt.Format(time.RFC3339Nano),
	}
}

func (s *Server) health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (s *Server) evaluate(c *fiber.Ctx) error {
	var req expressionRequest
	if err := c.BodyParser(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "invalid request body: "+err.Error())
	}

	entry := history.Entry{Expression: req.Expression}
	postfix, err := rootcalc.InfixToPostfix(req.Expression)
	if err == nil {
		entry.Postfix = postfix
		var v float64
		v, err = rootcalc.EvaluatePostfix(postfix, s.opts...)
		if err == nil {
			entry.Result = rootcalc.FormatResult(v)
		}
	}
	if err != nil {
		entry.Error = err.Error()
	}

	saved, rerr := s.store.Record(c.UserContext(), entry)
	if rerr != nil {
		log.Printf("Error recording evaluation of %q: %v", req.Expression, rerr)
		return errorResponse(c, fiber.StatusInternalServerError, "failed to record evaluation")
	}
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, err.Error())
	}
	return c.JSON(evaluateResponse{
		ID:         saved.ID,
		Expression: req.Expression,
		Postfix:    postfix,
		Result:     entry.Result,
	})
}

func (s *Server) postfix(c *fiber.Ctx) error {
	var req expressionRequest
	if err := c.BodyParser(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "invalid request body: "+err.Error())
	}
	postfix, err := rootcalc.InfixToPostfix(req.Expression)
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, err.Error())
	}
	return c.JSON(postfixResponse{Expression: req.Expression, Postfix: postfix})
}

func (s *Server) listHistory(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", DefaultHistoryLimit)
	entries, err := s.store.List(c.UserContext(), limit)
	if err != nil {
		log.Printf("Error listing history: %v", err)
		return errorResponse(c, fiber.StatusInternalServerError, err.Error())
	}
	resp := make([]entryResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, toEntryResponse(e))
	}
	return c.JSON(fiber.Map{"entries": resp})
}

func (s *Server) getHistory(c *fiber.Ctx) error {
	e, err := s.store.Get(c.UserContext(), c.Params("id"))
	if errors.Is(err, history.ErrNotFound) {
		return errorResponse(c, fiber.StatusNotFound, "history entry "+c.Params("id")+" not found")
	}
	if err != nil {
		log.Printf("Error reading history: %v", err)
		return errorResponse(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(toEntryResponse(e))
}

func (s *Server) clearHistory(c *fiber.Ctx) error {
	n, err := s.store.Clear(c.UserContext())
	if err != nil {
		log.Printf("Error clearing history: %v", err)
		return errorResponse(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{"deleted": n})
}

// errorResponse writes the standard error envelope.
func errorResponse(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(fiber.Map{
		"error": fiber.Map{
			"code":    code,
			"message": message,
			"status":  statusName(code),
		},
	})
}

func statusName(code int) string {
	switch code {
	case fiber.StatusBadRequest:
		return "INVALID_ARGUMENT"
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	default:
		return "INTERNAL"
	}
}
