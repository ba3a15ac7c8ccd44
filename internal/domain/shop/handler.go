package shop

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
	r.Route("/shop/items", func(sr chi.Router) {
		sr.Get("/", listItemsHandler(svc))
		sr.Post("/{itemID}/purchase", purchaseItemHandler(svc))
	})
}

type itemResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Kind      Kind      `json:"kind"`
	Price     int       `json:"price"`
	CreatedAt time.Time `json:"created_at"`
}

type purchaseResponse struct {
	Item      itemResponse `json:"item"`
	Currency  int          `json:"currency"`
	ItemCount int          `json:"item_count"`
}

// listItemsHandler lista el catálogo.
// @Summary Catálogo de la tienda
// @Router /shop/items [get]
func listItemsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]itemResponse, 0, len(items))
		for _, it := range items {
			out = append(out, toItemResponse(it))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// purchaseItemHandler compra un item para el jugador autenticado.
// @Summary Comprar item
// @Router /shop/items/{itemID}/purchase [post]
func purchaseItemHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		p, it, err := svc.Purchase(r.Context(), claims.UserID, chi.URLParam(r, "itemID"))
		if err != nil {
			switch {
			case errors.Is(err, ErrNotFound), errors.Is(err, players.ErrNotFound):
				http.Error(w, "not found", http.StatusNotFound)
			case errors.Is(err, players.ErrInsufficientFunds):
				http.Error(w, "insufficient funds", http.StatusConflict)
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, purchaseResponse{
			Item:      toItemResponse(it),
			Currency:  p.Currency,
			ItemCount: p.ItemCount,
		})
	}
}

func toItemResponse(it Item) itemResponse {
	return itemResponse{
		ID:        it.ID,
		Name:      it.Name,
		Kind:      it.Kind,
		Price:     it.Price,
		CreatedAt: it.CreatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
