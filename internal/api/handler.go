package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"jotter/m/domain"
	"jotter/m/internal/auth"
	"jotter/m/internal/logging"
	"jotter/m/internal/store"
)

// UserStore is the credential store used by the auth and profile handlers.
type UserStore interface {
	Register(ctx context.Context, p store.RegisterParams) (int64, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	UpdateProfile(ctx context.Context, id int64, p domain.Profile) error
}

// NoteStore is the owner-scoped note store.
type NoteStore interface {
	List(ctx context.Context, userID int64) ([]domain.Note, error)
	Get(ctx context.Context, userID, noteID int64) (*domain.Note, error)
	Create(ctx context.Context, userID int64, title, content string) (*domain.Note, error)
	Update(ctx context.Context, userID, noteID int64, u domain.NoteUpdate) (*domain.Note, error)
	Delete(ctx context.Context, userID, noteID int64) error
}

// Handler bundles dependencies for HTTP handlers.
type Handler struct {
	users   UserStore
	notes   NoteStore
	tokens  *auth.Tokens
	log     logging.Logger
	origins []string
}

// New constructs a Handler. origins lists the CORS origins allowed to call
// the API; an empty list disables CORS headers.
func New(users UserStore, notes NoteStore, tokens *auth.Tokens, log logging.Logger, origins []string) *Handler {
	return &Handler{users: users, notes: notes, tokens: tokens, log: log, origins: origins}
}

// Router wires up the HTTP API.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestLogger(accessLog{log: h.log}))
	r.Use(middleware.Recoverer)
	if len(h.origins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: h.origins,
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Content-Type", "Authorization"},
			MaxAge:         300,
		}))
	}

	r.Get("/health", h.health)
	r.Post("/register", h.register)
	r.Post("/login", h.login)

	r.Group(func(pr chi.Router) {
		pr.Use(h.authMiddleware)

		pr.Get("/profile", h.getProfile)
		pr.Put("/profile", h.updateProfile)

		pr.Route("/notes", func(r chi.Router) {
			r.Get("/", h.listNotes)
			r.Post("/", h.createNote)
			r.Get("/{id}", h.getNote)
			r.Put("/{id}", h.updateNote)
			r.Delete("/{id}", h.deleteNote)
		})
	})

	return r
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
