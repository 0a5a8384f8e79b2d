package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type RouterDeps struct {
	Auth          *Authenticator
	AuthHandler   *AuthHandler
	Users         *UserHandler
	Polls         *PollHandler
	Choices       *ChoiceHandler
	Votes         *VoteHandler
	Moderators    *ModeratorHandler
	Bans          *BanHandler
	AllowedOrigin []string
}

func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.AllowedOrigin,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Set-Cookie"},
		AllowCredentials: true,
	}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]string{"message": "Poll API"})
		})

		// Public: registration, login and poll reads.
		r.Post("/users", deps.Users.Register)
		r.Post("/auth/login", deps.AuthHandler.Login)
		r.Get("/auth/login/basic", deps.AuthHandler.BasicLogin)
		r.Post("/auth/logout", deps.AuthHandler.Logout)
		r.Get("/polls", deps.Polls.List)
		r.Get("/polls/{id}", deps.Polls.Get)

		// Everything below resolves identity first; ownership and role
		// checks happen in the services with that identity.
		r.Group(func(r chi.Router) {
			r.Use(deps.Auth.RequireUser)

			// Method routes rather than nested Route() here: /users and
			// /polls already carry public endpoints on the outer router.
			r.Get("/users", deps.Users.List)
			r.Get("/users/{id}", deps.Users.Get)
			r.Put("/users/{id}", deps.Users.Update)
			r.Delete("/users/{id}", deps.Users.Delete)

			r.Post("/polls", deps.Polls.Create)
			r.Put("/polls/{id}", deps.Polls.Update)
			r.Delete("/polls/{id}", deps.Polls.Delete)

			r.Route("/choices", func(r chi.Router) {
				r.Post("/", deps.Choices.Create)
				r.Get("/", deps.Choices.List)
				r.Get("/{id}", deps.Choices.Get)
				r.Put("/{id}", deps.Choices.Update)
				r.Delete("/{id}", deps.Choices.Delete)
			})

			r.Route("/votes", func(r chi.Router) {
				r.Post("/", deps.Votes.Create)
				r.Get("/", deps.Votes.List)
				r.Get("/{id}", deps.Votes.Get)
				r.Delete("/{id}", deps.Votes.Delete)
			})

			r.Route("/moderators", func(r chi.Router) {
				r.Post("/", deps.Moderators.Create)
				r.Get("/", deps.Moderators.List)
				r.Get("/{id}", deps.Moderators.Get)
				r.Put("/{id}", deps.Moderators.Update)
				r.Delete("/{id}", deps.Moderators.Delete)
			})

			r.Route("/bans", func(r chi.Router) {
				r.Get("/", deps.Bans.List)
				r.Post("/{user_id}", deps.Bans.Create)
				r.Get("/{user_id}", deps.Bans.Get)
				r.Delete("/{user_id}", deps.Bans.Delete)
			})
		})
	})

	return r
}
