package http

import (
	"net/http"

	"github.com/classvote/urna/internal/core/domain"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Handlers struct {
	Voter     *VoterHandler
	Candidate *CandidateHandler
	Ballot    *BallotHandler
	Result    *ResultHandler
	Auth      *AuthHandler
	User      *UserHandler
}

func NewHandler(h Handlers, allowedOrigins []string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(corsMiddleware(allowedOrigins))

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.Route("/api", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("welcome"))
		})

		if h.Auth != nil {
			r.Route("/auth", func(r chi.Router) {
				r.Post("/login", h.Auth.Login)
				r.Post("/google", h.Auth.GoogleLogin)
				r.Post("/refresh", h.Auth.Refresh)
				r.Post("/logout", h.Auth.Logout)
			})
		}

		if h.User != nil {
			r.With(AuthMiddleware).Get("/users/me", h.User.GetMe)
		}

		// The ballot box itself is open: the voter is identified by the
		// registration number in the payload, not by a session.
		r.Post("/ballots", h.Ballot.CastBallot)
		r.Get("/candidates", h.Candidate.ListCandidates)
		r.Get("/results", h.Result.GetResults)

		r.Group(func(r chi.Router) {
			r.Use(AuthMiddleware)

			r.With(RequireRole(domain.RoleMesario)).Route("/voters", func(r chi.Router) {
				r.Post("/", h.Voter.RegisterVoter)
				r.Get("/", h.Voter.ListVoters)
				r.Get("/{number}", h.Voter.GetVoter)
			})

			r.With(RequireRole(domain.RoleAdmin)).Post("/candidates", h.Candidate.AddCandidate)
			r.With(RequireRole(domain.RoleAdmin)).Delete("/candidates/{id}", h.Candidate.DeleteCandidate)

			r.With(RequireRole(domain.RoleMesario)).Get("/results/export", h.Result.ExportResults)
			r.With(RequireRole(domain.RoleMesario)).Get("/results/summary", h.Result.GetSummary)

			r.With(RequireRole(domain.RoleAdmin)).Post("/election/reset", h.Result.ResetElection)
		})
	})

	return r
}
