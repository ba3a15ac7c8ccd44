package players

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"pocket-pets/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/players", func(pr chi.Router) {
		pr.Post("/", createPlayerHandler(svc))
		pr.Get("/me", getMeHandler(svc))
	})
}

type createPlayerRequest struct {
	Name string `json:"name"`
}

type playerResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Currency   int       `json:"currency"`
	Experience int       `json:"experience"`
	Level      int       `json:"level"`
	PetCount   int       `json:"pet_count"`
	ItemCount  int       `json:"item_count"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// createPlayerHandler crea el perfil del jugador autenticado.
// @Summary Crear perfil de jugador
// @Router /players [post]
func createPlayerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createPlayerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		p, err := svc.Create(r.Context(), claims.UserID, CreateInput{Name: req.Name})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, toPlayerResponse(p))
	}
}

// getMeHandler devuelve el perfil del jugador autenticado.
// @Summary Perfil propio
// @Router /players/me [get]
func getMeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		p, err := svc.GetByID(r.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "player not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, toPlayerResponse(p))
	}
}

func toPlayerResponse(p Player) playerResponse {
	return playerResponse{
		ID:         p.ID,
		Name:       p.Name,
		Currency:   p.Currency,
		Experience: p.Experience,
		Level:      p.Level,
		PetCount:   p.PetCount,
		ItemCount:  p.ItemCount,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
