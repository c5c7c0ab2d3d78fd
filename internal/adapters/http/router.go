// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/kanban-pipeline/internal/adapters/http/dto"
	"github.com/jsamuelsen11/kanban-pipeline/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/kanban-pipeline/internal/adapters/http/middleware"
)

// Handlers groups the inbound handlers mounted by NewRouter.
type Handlers struct {
	Board   *handlers.BoardHandler
	Lead    *handlers.LeadHandler
	Metrics *handlers.MetricsHandler
	Health  *handlers.HealthHandler
}

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given. Every /api/v1 route
// additionally requires a principal resolved by resolver.
func NewRouter(
	h Handlers,
	resolver middleware.PrincipalResolver,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	if len(middlewares) > 0 {
		r.Use(middleware.Chain(middlewares...))
	}

	// Set before Route so the /api/v1 subrouter inherits them.
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		dto.WriteProblem(w, r, http.StatusNotFound, "no route for "+r.URL.Path)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		dto.WriteProblem(w, r, http.StatusMethodNotAllowed, r.Method+" not allowed on "+r.URL.Path)
	})

	// Health endpoints (outside /api/v1 prefix, no principal).
	r.Get("/health/live", h.Health.Liveness)
	r.Get("/health/ready", h.Health.Readiness)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Principal(resolver))

		// Boards and columns.
		r.Get("/boards", h.Board.ListBoards)
		r.Post("/boards", h.Board.CreateBoard)
		r.Get("/boards/{"+handlers.ParamBoardID+"}", h.Board.GetBoard)
		r.Post("/boards/{"+handlers.ParamBoardID+"}/columns", h.Board.CreateColumn)
		r.Put("/boards/{"+handlers.ParamBoardID+"}/columns/order", h.Board.ReorderColumns)
		r.Patch("/columns/{"+handlers.ParamColumnID+"}", h.Board.UpdateColumn)
		r.Delete("/columns/{"+handlers.ParamColumnID+"}", h.Board.DeleteColumn)

		// Leads, moves and timeline.
		r.Post("/leads", h.Lead.CreateLead)
		r.Get("/leads/{"+handlers.ParamLeadID+"}", h.Lead.GetLead)
		r.Post("/leads/{"+handlers.ParamLeadID+"}/move", h.Lead.MoveLead)
		r.Get("/leads/{"+handlers.ParamLeadID+"}/timeline", h.Lead.GetLeadTimeline)
		r.Post("/leads/{"+handlers.ParamLeadID+"}/timeline", h.Lead.AddTimelineEntry)

		// Analytics.
		r.Get("/metrics", h.Metrics.GetMetrics)
	})

	return r
}
