package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/frahmantamala/shift-roster/internal/auth"
	"github.com/frahmantamala/shift-roster/internal/calendar"
	"github.com/frahmantamala/shift-roster/internal/leave"
	"github.com/frahmantamala/shift-roster/internal/leavetype"
	"github.com/frahmantamala/shift-roster/internal/schedule"
	"github.com/frahmantamala/shift-roster/internal/transport/middleware"
	"github.com/frahmantamala/shift-roster/internal/transport/swagger"
	"github.com/frahmantamala/shift-roster/internal/user"
	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"
)

type Handlers struct {
	Auth      *auth.Handler
	User      *user.Handler
	Schedule  *schedule.Handler
	Leave     *leave.Handler
	LeaveType *leavetype.Handler
	Calendar  *calendar.Handler
}

func RegisterAllRoutes(router *chi.Mux, db *sql.DB, h Handlers, roles *auth.RoleAuthorization, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	// Apply global middleware
	router.Use(middleware.CORS)
	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.RequestID)
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	// Serve OpenAPI spec at root (outside API prefix)
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	// Swagger UI route at root
	router.Handle("/swagger/*", swagger.Handler())

	// Mount API under /api/v1 to match OpenAPI basePath
	router.Route("/api/v1", func(r chi.Router) {
		// Health check route
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		// Auth routes
		if h.Auth != nil {
			r.Route("/auth", func(sr chi.Router) {
				sr.Post("/signup", h.Auth.Signup)
				sr.Post("/login", h.Auth.Login)
				sr.Post("/refresh", h.Auth.RefreshToken)
				sr.Post("/logout", h.Auth.Logout)
			})
		}

		// Public routes (no auth required): signup needs managers to pick
		// from, and leave types back the submit form.
		if h.User != nil {
			r.Get("/users/managers", h.User.ListManagers)
		}
		if h.LeaveType != nil {
			r.Get("/leave-types", h.LeaveType.GetLeaveTypes)
		}

		if h.Auth != nil {
			// Protected routes that require authentication
			r.Group(func(pr chi.Router) {
				pr.Use(h.Auth.AuthMiddleware)

				// Current user
				if h.User != nil {
					pr.Get("/users/me", h.User.GetCurrentUser)
				}

				// Leave routes
				if h.Leave != nil {
					pr.Route("/leaves", func(lr chi.Router) {
						lr.Post("/", h.Leave.SubmitLeave) // POST /leaves
						lr.Get("/", h.Leave.ListLeaves)   // GET /leaves

						// Manager routes with role protection
						lr.Group(func(mr chi.Router) {
							mr.Use(roles.RequireManager())
							mr.Patch("/{id}/approve", h.Leave.ApproveLeave) // PATCH /leaves/:id/approve
							mr.Patch("/{id}/reject", h.Leave.RejectLeave)   // PATCH /leaves/:id/reject
						})
					})
				}

				// Schedule routes: reads are own-or-linked, writes manager-only
				if h.Schedule != nil {
					pr.Route("/schedules", func(sr chi.Router) {
						sr.Get("/{userID}", h.Schedule.GetSchedule)

						sr.Group(func(mr chi.Router) {
							mr.Use(roles.RequireManager())
							mr.Put("/{userID}", h.Schedule.UpsertSchedule) // PUT /schedules/:userID
						})
					})
				}

				// Calendar month view
				if h.Calendar != nil {
					pr.Get("/calendar", h.Calendar.GetMonth)
				}

				// Manager team listing
				if h.User != nil {
					pr.Group(func(mr chi.Router) {
						mr.Use(roles.RequireManager())
						mr.Get("/users/associates", h.User.ListAssociates)
					})
				}
			})
		}
	})
}
