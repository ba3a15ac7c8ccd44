package care

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"pocket-pets/internal/domain/players"
	"pocket-pets/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/pets/{petID}/actions", performActionHandler(svc))
	r.Get("/pets/{petID}/history", listHistoryHandler(svc))
}

type performActionRequest struct {
	Action string `json:"action"`
	Note   string `json:"note"`
}

type performActionResponse struct {
	Pet    petSnapshot    `json:"pet"`
	Player playerSnapshot `json:"player"`
	Entry  entryResponse  `json:"entry"`
}

type petSnapshot struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Status    string `json:"status"`
	Health    int    `json:"health"`
	Happiness int    `json:"happiness"`
	Energy    int    `json:"energy"`
	Hunger    int    `json:"hunger"`
}

type playerSnapshot struct {
	ID         string `json:"id"`
	Currency   int    `json:"currency"`
	Experience int    `json:"experience"`
	Level      int    `json:"level"`
}

type entryResponse struct {
	ID        string    `json:"id"`
	PetID     string    `json:"pet_id"`
	PlayerID  string    `json:"player_id"`
	Action    Action    `json:"action"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// performActionHandler ejecuta una acción de cuidado sobre una mascota.
// @Summary Ejecutar acción de cuidado
// @Router /pets/{petID}/actions [post]
func performActionHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req performActionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		action, ok := ParseAction(req.Action)
		if !ok {
			http.Error(w, "unknown action", http.StatusBadRequest)
			return
		}

		res, err := svc.Perform(r.Context(), claims.UserID, chi.URLParam(r, "petID"), PerformInput{
			Action: action,
			Note:   req.Note,
		})
		if err != nil {
			writeCareError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, performActionResponse{
			Pet: petSnapshot{
				ID:        res.Pet.ID,
				Name:      res.Pet.Name,
				Status:    string(res.Pet.Status),
				Health:    res.Pet.Health,
				Happiness: res.Pet.Happiness,
				Energy:    res.Pet.Energy,
				Hunger:    res.Pet.Hunger,
			},
			Player: playerSnapshot{
				ID:         res.Player.ID,
				Currency:   res.Player.Currency,
				Experience: res.Player.Experience,
				Level:      res.Player.Level,
			},
			Entry: toEntryResponse(res.Entry),
		})
	}
}

// listHistoryHandler lista el historial de cuidado (solo el dueño).
// @Summary Historial de cuidado
// @Router /pets/{petID}/history [get]
func listHistoryHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.History(r.Context(), claims.UserID, chi.URLParam(r, "petID"))
		if err != nil {
			writeCareError(w, err)
			return
		}

		out := make([]entryResponse, 0, len(items))
		for _, e := range items {
			out = append(out, toEntryResponse(e))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// writeCareError mapea la taxonomía de errores del dominio a status HTTP.
func writeCareError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	case errors.Is(err, ErrNotOwner):
		http.Error(w, "forbidden", http.StatusForbidden)
	case errors.Is(err, players.ErrInsufficientFunds):
		http.Error(w, "insufficient funds", http.StatusConflict)
	case errors.Is(err, ErrPetTooTired):
		http.Error(w, "pet is too tired", http.StatusConflict)
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrUnknownAction):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toEntryResponse(e Entry) entryResponse {
	return entryResponse{
		ID:        e.ID,
		PetID:     e.PetID,
		PlayerID:  e.PlayerID,
		Action:    e.Action,
		Note:      e.Note,
		CreatedAt: e.CreatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
