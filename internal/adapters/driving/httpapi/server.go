// Package httpapi exposes the question pipeline over HTTP.
package httpapi

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/danielgtaylor/huma/v2"
	humachi "github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/bijilboby/TQuery/internal/core/ports/driving"
	"github.com/bijilboby/TQuery/internal/logger"
)

// Version is reported by the health endpoint.
const Version = "0.1.0"

// askTimeout bounds one question end to end, including the LLM round trip.
const askTimeout = 3 * time.Minute

// Config for the HTTP API handler.
type Config struct {
	Ask driving.AskService
}

// AskRequest is the question payload.
type AskRequest struct {
	Query string `json:"query" example:"How many Nike t-shirts do we have in total?" doc:"Natural-language question about the inventory"`
}

// AskResponse carries the conversational answer.
type AskResponse struct {
	Answer string `json:"answer" example:"You have a total of 1063 Nike t-shirts in stock."`
}

// New returns an HTTP handler exposing the inventory Q&A API.
func New(cfg Config) http.Handler {
	router := chi.NewRouter()
	router.Use(requestID)
	router.Use(middleware.Recoverer)

	hcfg := huma.DefaultConfig("TQuery API", Version)
	api := humachi.New(router, hcfg)

	registerHealth(api)
	registerAsk(api, cfg.Ask)

	return router
}

// requestID tags each request with a UUID for log correlation.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", id)
		logger.Debug("HTTP %s %s [%s]", r.Method, r.URL.Path, id)
		next.ServeHTTP(w, r)
	})
}

func registerHealth(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check",
	}, func(ctx context.Context, _ *struct{}) (*struct {
		Body map[string]string `json:"body"`
	}, error) {
		return &struct {
			Body map[string]string `json:"body"`
		}{Body: map[string]string{"status": "ok", "version": Version}}, nil
	})
}

func registerAsk(api huma.API, ask driving.AskService) {
	huma.Register(api, huma.Operation{
		OperationID: "ask",
		Method:      http.MethodPost,
		Path:        "/ask",
		Summary:     "Ask an inventory question",
		Description: "Answers a natural-language question about the t-shirt inventory.",
		Errors:      []int{http.StatusBadRequest},
	}, func(ctx context.Context, input *struct {
		Body AskRequest `json:"body"`
	}) (*struct {
		Body AskResponse `json:"body"`
	}, error) {
		question := strings.TrimSpace(input.Body.Query)
		if question == "" {
			return nil, huma.Error400BadRequest("query is required")
		}

		ctx, cancel := context.WithTimeout(ctx, askTimeout)
		defer cancel()

		answer := ask.Ask(ctx, question)
		return &struct {
			Body AskResponse `json:"body"`
		}{Body: AskResponse{Answer: answer}}, nil
	})
}
