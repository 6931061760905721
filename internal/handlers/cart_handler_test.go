package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/yolimar-textil/storefront-api/internal/cart"
	"github.com/yolimar-textil/storefront-api/internal/catalog"
	"github.com/yolimar-textil/storefront-api/pkg/logger"
)

func newCartRouter() http.Handler {
	log := logger.New("error")
	cfg := catalog.Default()
	repo := catalog.NewInMemoryRepository(cfg, log)
	store := cart.NewStore(cfg.CatalogProgram, cfg.DesignProgram)
	handler := NewCartHandler(store, repo, log)

	r := chi.NewRouter()
	r.Get("/api/cart", handler.GetCart)
	r.Post("/api/cart/items", handler.AddItem)
	r.Patch("/api/cart/items/{lineKey}", handler.UpdateItem)
	r.Delete("/api/cart/items/{lineKey}", handler.RemoveItem)
	r.Delete("/api/cart", handler.ClearCart)
	r.Post("/api/cart/open", handler.OpenCart)
	r.Post("/api/cart/close", handler.CloseCart)
	return r
}

// doCart sends a request with the session cookie and decodes the snapshot.
func doCart(t *testing.T, router http.Handler, method, path, body, session string) (cart.Snapshot, *httptest.ResponseRecorder) {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if session != "" {
		req.AddCookie(&http.Cookie{Name: sessionCookie, Value: session})
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var snap cart.Snapshot
	if w.Code == http.StatusOK {
		if err := json.NewDecoder(w.Body).Decode(&snap); err != nil {
			t.Fatalf("failed to decode snapshot: %v", err)
		}
	}
	return snap, w
}

func TestCartFlow_AddMergeUpdateRemove(t *testing.T) {
	router := newCartRouter()
	session := cart.NewSessionID()

	addBody := `{"productId":1,"type":"polera","name":"Polera","color":"blanco","size":"M","quantity":2}`
	snap, w := doCart(t, router, http.MethodPost, "/api/cart/items", addBody, session)
	if w.Code != http.StatusOK {
		t.Fatalf("AddItem status = %d, want 200", w.Code)
	}
	if len(snap.Lines) != 1 || snap.Lines[0].Quantity != 2 {
		t.Fatalf("snapshot after add = %+v, want one line of 2", snap.Lines)
	}
	if !snap.Open {
		t.Error("adding an item must open the cart drawer")
	}
	// base price resolved from the catalog at add time
	if snap.Lines[0].UnitPrice != 55 {
		t.Errorf("unit price = %d, want 55", snap.Lines[0].UnitPrice)
	}

	// same identity merges instead of duplicating; quantity 3 unlocks the
	// catalog discount
	addAgain := `{"productId":1,"type":"polera","name":"Polera","color":"blanco","size":"M","quantity":1}`
	snap, _ = doCart(t, router, http.MethodPost, "/api/cart/items", addAgain, session)
	if len(snap.Lines) != 1 || snap.Lines[0].Quantity != 3 {
		t.Fatalf("snapshot after merge = %+v, want one line of 3", snap.Lines)
	}
	if snap.Lines[0].UnitPrice != 54 {
		t.Errorf("unit price at threshold = %d, want 54", snap.Lines[0].UnitPrice)
	}

	key := snap.Lines[0].Key

	// PATCH with zero removes the line
	snap, _ = doCart(t, router, http.MethodPatch, "/api/cart/items/"+key, `{"quantity":0}`, session)
	if len(snap.Lines) != 0 || snap.Totals.TotalItems != 0 {
		t.Errorf("snapshot after zero quantity = %+v, want empty cart", snap)
	}
}

func TestCartFlow_DesignThresholdAcrossLines(t *testing.T) {
	router := newCartRouter()
	session := cart.NewSessionID()

	first := `{"productId":100,"name":"Polera Personalizada","color":"negro","size":"M","quantity":5,
		"design":{"designId":1,"designCode":"DSN-001","designName":"Dragon"}}`
	second := `{"productId":100,"name":"Polera Personalizada","color":"blanco","size":"M","quantity":6,
		"design":{"designId":2,"designCode":"DSN-002","designName":"Fenix"}}`

	doCart(t, router, http.MethodPost, "/api/cart/items", first, session)
	snap, _ := doCart(t, router, http.MethodPost, "/api/cart/items", second, session)

	// 11 personalized units: no discount yet
	for _, pl := range snap.Lines {
		if pl.UnitPrice != 60 {
			t.Errorf("unit price below threshold = %d, want 60", pl.UnitPrice)
		}
	}

	// the 12th unit reprices both lines
	snap, _ = doCart(t, router, http.MethodPatch, "/api/cart/items/"+snap.Lines[1].Key, `{"quantity":7}`, session)
	if snap.Totals.TotalCustomItems != 12 {
		t.Fatalf("TotalCustomItems = %d, want 12", snap.Totals.TotalCustomItems)
	}
	for _, pl := range snap.Lines {
		if pl.UnitPrice != 59 {
			t.Errorf("unit price at threshold = %d, want 59", pl.UnitPrice)
		}
	}
}

func TestCartFlow_SessionsAreIsolated(t *testing.T) {
	router := newCartRouter()
	sessionA := cart.NewSessionID()
	sessionB := cart.NewSessionID()

	addBody := `{"productId":1,"type":"polera","name":"Polera","color":"blanco","size":"M","quantity":2}`
	doCart(t, router, http.MethodPost, "/api/cart/items", addBody, sessionA)

	snap, _ := doCart(t, router, http.MethodGet, "/api/cart", "", sessionB)
	if len(snap.Lines) != 0 {
		t.Errorf("session B sees %d lines, want 0", len(snap.Lines))
	}
}

func TestCartFlow_InvalidQuantityRejected(t *testing.T) {
	router := newCartRouter()
	session := cart.NewSessionID()

	addBody := `{"productId":1,"type":"polera","name":"Polera","color":"blanco","size":"M","quantity":0}`
	_, w := doCart(t, router, http.MethodPost, "/api/cart/items", addBody, session)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestCartFlow_OpenCloseAndClear(t *testing.T) {
	router := newCartRouter()
	session := cart.NewSessionID()

	addBody := `{"productId":1,"type":"polera","name":"Polera","color":"blanco","size":"M","quantity":2}`
	doCart(t, router, http.MethodPost, "/api/cart/items", addBody, session)

	snap, _ := doCart(t, router, http.MethodPost, "/api/cart/close", "", session)
	if snap.Open {
		t.Error("close must clear the drawer flag")
	}
	snap, _ = doCart(t, router, http.MethodPost, "/api/cart/open", "", session)
	if !snap.Open {
		t.Error("open must set the drawer flag")
	}

	snap, _ = doCart(t, router, http.MethodDelete, "/api/cart", "", session)
	if len(snap.Lines) != 0 {
		t.Errorf("clear left %d lines", len(snap.Lines))
	}
}

func TestGetCart_MintsSessionCookie(t *testing.T) {
	router := newCartRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == sessionCookie && cookie.Value != "" {
			return
		}
	}
	t.Error("first contact must set the session cookie")
}
