package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

// newTestRouter arma el router en modo dev: storage in-memory, catálogo
// sembrado, auth por header X-Debug-User-ID.
func newTestRouter() http.Handler {
	return NewRouter(Options{StartingBalance: 100})
}

func doJSON(t *testing.T, h http.Handler, method, path, userID string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	if userID != "" {
		req.Header.Set("X-Debug-User-ID", userID)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeInto(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(rec.Body).Decode(v); err != nil {
		t.Fatalf("decode response: %v (body %q)", err, rec.Body.String())
	}
}

func TestHealth(t *testing.T) {
	h := newTestRouter()

	rec := doJSON(t, h, http.MethodGet, "/health", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /health = %d, want 200", rec.Code)
	}
}

func TestFullPlayerLifecycle(t *testing.T) {
	h := newTestRouter()

	// 1. crear perfil
	rec := doJSON(t, h, http.MethodPost, "/players", "user-1", map[string]string{"name": "Ana"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("POST /players = %d, body %s", rec.Code, rec.Body.String())
	}
	var player struct {
		ID       string `json:"id"`
		Currency int    `json:"currency"`
		Level    int    `json:"level"`
	}
	decodeInto(t, rec, &player)
	if player.ID != "user-1" || player.Currency != 100 || player.Level != 1 {
		t.Fatalf("unexpected player: %+v", player)
	}

	// 2. adoptar mascota
	rec = doJSON(t, h, http.MethodPost, "/pets", "user-1", map[string]string{"name": "Milo", "rarity": "rare"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("POST /pets = %d, body %s", rec.Code, rec.Body.String())
	}
	var pet struct {
		ID     string `json:"id"`
		Health int    `json:"health"`
		Status string `json:"status"`
	}
	decodeInto(t, rec, &pet)
	if pet.ID == "" || pet.Status != "healthy" {
		t.Fatalf("unexpected pet: %+v", pet)
	}

	// 3. feed: cuesta 10, balance 100 -> 90
	rec = doJSON(t, h, http.MethodPost, "/pets/"+pet.ID+"/actions", "user-1", map[string]string{"action": "feed"})
	if rec.Code != http.StatusOK {
		t.Fatalf("feed = %d, body %s", rec.Code, rec.Body.String())
	}
	var actionRes struct {
		Pet struct {
			Health int    `json:"health"`
			Energy int    `json:"energy"`
			Status string `json:"status"`
		} `json:"pet"`
		Player struct {
			Currency   int `json:"currency"`
			Experience int `json:"experience"`
		} `json:"player"`
	}
	decodeInto(t, rec, &actionRes)
	if actionRes.Player.Currency != 90 {
		t.Fatalf("balance after feed = %d, want 90", actionRes.Player.Currency)
	}

	// 4. heal: cuesta 20, balance 90 -> 70, health queda en 100
	rec = doJSON(t, h, http.MethodPost, "/pets/"+pet.ID+"/actions", "user-1", map[string]string{"action": "heal"})
	if rec.Code != http.StatusOK {
		t.Fatalf("heal = %d, body %s", rec.Code, rec.Body.String())
	}
	decodeInto(t, rec, &actionRes)
	if actionRes.Player.Currency != 70 {
		t.Fatalf("balance after heal = %d, want 70", actionRes.Player.Currency)
	}
	if actionRes.Pet.Health != 100 || actionRes.Pet.Status != "healthy" {
		t.Fatalf("pet after heal = %+v", actionRes.Pet)
	}

	// 5. historial: dos entradas en orden
	rec = doJSON(t, h, http.MethodGet, "/pets/"+pet.ID+"/history", "user-1", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("history = %d, body %s", rec.Code, rec.Body.String())
	}
	var history []struct {
		Action string `json:"action"`
	}
	decodeInto(t, rec, &history)
	if len(history) != 2 || history[0].Action != "feed" || history[1].Action != "heal" {
		t.Fatalf("unexpected history: %+v", history)
	}

	// 6. tienda: comprar bow tie (40) y tonic (25), balance 70 -> 5
	rec = doJSON(t, h, http.MethodGet, "/shop/items", "user-1", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /shop/items = %d", rec.Code)
	}
	var items []struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Price int    `json:"price"`
	}
	decodeInto(t, rec, &items)
	if len(items) != 4 {
		t.Fatalf("catalog size = %d, want 4", len(items))
	}

	byName := map[string]string{}
	for _, it := range items {
		byName[it.Name] = it.ID
	}

	rec = doJSON(t, h, http.MethodPost, "/shop/items/"+byName["bow tie"]+"/purchase", "user-1", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("purchase bow tie = %d, body %s", rec.Code, rec.Body.String())
	}
	rec = doJSON(t, h, http.MethodPost, "/shop/items/"+byName["tonic"]+"/purchase", "user-1", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("purchase tonic = %d, body %s", rec.Code, rec.Body.String())
	}
	var purchase struct {
		Currency  int `json:"currency"`
		ItemCount int `json:"item_count"`
	}
	decodeInto(t, rec, &purchase)
	if purchase.Currency != 5 || purchase.ItemCount != 2 {
		t.Fatalf("after purchases: currency %d items %d, want 5/2", purchase.Currency, purchase.ItemCount)
	}

	// 7. feed con balance 5 => 409 sin mutación
	rec = doJSON(t, h, http.MethodPost, "/pets/"+pet.ID+"/actions", "user-1", map[string]string{"action": "feed"})
	if rec.Code != http.StatusConflict {
		t.Fatalf("feed sin fondos = %d, want 409", rec.Code)
	}

	rec = doJSON(t, h, http.MethodGet, "/players/me", "user-1", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /players/me = %d", rec.Code)
	}
	decodeInto(t, rec, &player)
	if player.Currency != 5 {
		t.Fatalf("balance after rejected feed = %d, want 5", player.Currency)
	}
}

func TestActionOnForeignPetIsForbidden(t *testing.T) {
	h := newTestRouter()

	doJSON(t, h, http.MethodPost, "/players", "user-1", map[string]string{"name": "Ana"})
	doJSON(t, h, http.MethodPost, "/players", "user-2", map[string]string{"name": "Bruno"})

	rec := doJSON(t, h, http.MethodPost, "/pets", "user-1", map[string]string{"name": "Milo"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("POST /pets = %d", rec.Code)
	}
	var pet struct {
		ID string `json:"id"`
	}
	decodeInto(t, rec, &pet)

	rec = doJSON(t, h, http.MethodPost, "/pets/"+pet.ID+"/actions", "user-2", map[string]string{"action": "rest"})
	if rec.Code != http.StatusForbidden {
		t.Fatalf("foreign action = %d, want 403", rec.Code)
	}

	rec = doJSON(t, h, http.MethodGet, "/pets/"+pet.ID+"/history", "user-2", nil)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("foreign history = %d, want 403", rec.Code)
	}

	rec = doJSON(t, h, http.MethodGet, "/pets/"+pet.ID, "user-2", nil)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("foreign pet profile = %d, want 403", rec.Code)
	}
}

func TestUnknownActionIsBadRequest(t *testing.T) {
	h := newTestRouter()

	doJSON(t, h, http.MethodPost, "/players", "user-1", map[string]string{"name": "Ana"})
	rec := doJSON(t, h, http.MethodPost, "/pets", "user-1", map[string]string{"name": "Milo"})
	var pet struct {
		ID string `json:"id"`
	}
	decodeInto(t, rec, &pet)

	rec = doJSON(t, h, http.MethodPost, "/pets/"+pet.ID+"/actions", "user-1", map[string]string{"action": "groom"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unknown action = %d, want 400", rec.Code)
	}
}

func TestMissingAuthIsUnauthorized(t *testing.T) {
	h := newTestRouter()

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/players"},
		{http.MethodGet, "/players/me"},
		{http.MethodPost, "/pets"},
		{http.MethodGet, "/pets"},
	}
	for _, p := range paths {
		rec := doJSON(t, h, p.method, p.path, "", map[string]string{"name": "x"})
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s sin auth = %d, want 401", p.method, p.path, rec.Code)
		}
	}
}

func TestActionOnUnknownPetIsNotFound(t *testing.T) {
	h := newTestRouter()

	doJSON(t, h, http.MethodPost, "/players", "user-1", map[string]string{"name": "Ana"})

	rec := doJSON(t, h, http.MethodPost, "/pets/ghost/actions", "user-1", map[string]string{"action": "rest"})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("action on unknown pet = %d, want 404", rec.Code)
	}
}
