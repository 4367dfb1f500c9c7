package routes

import (
	"net/http"

	"fintrack/internal/auth"
	"fintrack/internal/handlers"
	appmw "fintrack/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

func New(h *handlers.Handler, tokens *auth.TokenService) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	r.Post("/api/auth/signup", h.Signup)
	r.Post("/api/auth/login", h.Login)

	authed := appmw.Authenticated(tokens)

	r.Route("/api/user", func(r chi.Router) {
		r.Use(authed)
		r.Get("/profile", h.GetProfile)
		r.Put("/profile", h.UpdateProfile)
	})

	r.Route("/api/expenses", func(r chi.Router) {
		r.Use(authed)
		r.Get("/", h.ListExpenses)
		r.Post("/", h.AddExpense)
		r.Delete("/{id}", h.DeleteExpense)
		r.Get("/summary", h.ExpenseSummary)
		r.Post("/scan", h.ScanReceipt)
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}
