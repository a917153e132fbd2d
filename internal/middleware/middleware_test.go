package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/eaglebank/bankingsim/internal/idempotency"
	"github.com/gin-gonic/gin"
)

func newIdempotentRouter(store idempotency.Store, status int, calls *int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(LoggingMiddleware())
	r.POST("/v1/things", Idempotency(store), func(c *gin.Context) {
		*calls++
		c.JSON(status, gin.H{"call": *calls})
	})
	return r
}

func post(router *gin.Engine, key string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodPost, "/v1/things", nil)
	if key != "" {
		req.Header.Set(IdempotencyKeyHeader, key)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestIdempotencyWithoutKey(t *testing.T) {
	calls := 0
	router := newIdempotentRouter(idempotency.NewMemoryStore(time.Hour), http.StatusCreated, &calls)
	post(router, "")
	post(router, "")
	if calls != 2 {
		t.Fatalf("calls=%d want=2", calls)
	}
}

func TestIdempotencyReplaysStoredResponse(t *testing.T) {
	calls := 0
	router := newIdempotentRouter(idempotency.NewMemoryStore(time.Hour), http.StatusCreated, &calls)

	first := post(router, "abc")
	second := post(router, "abc")

	if calls != 1 {
		t.Fatalf("calls=%d want=1", calls)
	}
	if second.Code != http.StatusCreated || second.Body.String() != first.Body.String() {
		t.Fatalf("replay mismatch: %d %s vs %d %s", second.Code, second.Body, first.Code, first.Body)
	}
	if second.Header().Get(ReplayedHeader) != "true" || first.Header().Get(ReplayedHeader) != "" {
		t.Fatalf("replay header: first=%q second=%q", first.Header().Get(ReplayedHeader), second.Header().Get(ReplayedHeader))
	}
	if ct := second.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Fatalf("content type=%q", ct)
	}

	post(router, "other")
	if calls != 2 {
		t.Fatalf("different key should run the handler: calls=%d", calls)
	}
}

func TestIdempotencyStoresClientErrors(t *testing.T) {
	calls := 0
	router := newIdempotentRouter(idempotency.NewMemoryStore(time.Hour), http.StatusUnprocessableEntity, &calls)
	post(router, "abc")
	w := post(router, "abc")
	if calls != 1 || w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("calls=%d code=%d", calls, w.Code)
	}
}

func TestIdempotencyReleasesOnServerError(t *testing.T) {
	calls := 0
	router := newIdempotentRouter(idempotency.NewMemoryStore(time.Hour), http.StatusInternalServerError, &calls)
	post(router, "abc")
	post(router, "abc")
	if calls != 2 {
		t.Fatalf("calls=%d want=2", calls)
	}
}

func TestIdempotencyReleasesOnPanic(t *testing.T) {
	gin.SetMode(gin.TestMode)
	calls := 0
	r := gin.New()
	r.Use(gin.Recovery())
	r.POST("/v1/things", Idempotency(idempotency.NewMemoryStore(time.Hour)), func(c *gin.Context) {
		calls++
		if calls == 1 {
			panic("handler crashed")
		}
		c.JSON(http.StatusCreated, gin.H{"call": calls})
	})

	if w := post(r, "abc"); w.Code != http.StatusInternalServerError {
		t.Fatalf("expected %d got %d", http.StatusInternalServerError, w.Code)
	}
	w := post(r, "abc")
	if w.Code != http.StatusCreated || calls != 2 {
		t.Fatalf("retry after panic: code=%d calls=%d", w.Code, calls)
	}
}

type failingSaveStore struct {
	*idempotency.MemoryStore
}

func (s failingSaveStore) Save(context.Context, string, idempotency.Response) error {
	return errors.New("store down")
}

func TestIdempotencyReleasesWhenSaveFails(t *testing.T) {
	calls := 0
	router := newIdempotentRouter(failingSaveStore{idempotency.NewMemoryStore(time.Hour)}, http.StatusCreated, &calls)
	post(router, "abc")
	if w := post(router, "abc"); w.Code != http.StatusCreated || calls != 2 {
		t.Fatalf("retry after failed save: code=%d calls=%d", w.Code, calls)
	}
}

func TestIdempotencyInFlightConflict(t *testing.T) {
	store := idempotency.NewMemoryStore(time.Hour)
	if ok, _ := store.Reserve(context.Background(), "POST /v1/things abc"); !ok {
		t.Fatal("reserve failed")
	}
	calls := 0
	router := newIdempotentRouter(store, http.StatusCreated, &calls)

	w := post(router, "abc")
	if w.Code != http.StatusConflict || calls != 0 {
		t.Fatalf("code=%d calls=%d", w.Code, calls)
	}
}

func TestRespondWithValidationError(t *testing.T) {
	type request struct {
		Name string `validate:"required"`
	}
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/", func(c *gin.Context) {
		if errs := ValidateRequest(request{}); errs != nil {
			RespondWithValidationError(c, errs)
			return
		}
		c.Status(http.StatusOK)
	})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d", http.StatusBadRequest, w.Code)
	}
	var body BadRequestErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if len(body.Details) != 1 || body.Details[0].Field != "Name" || body.Details[0].Type != "required" {
		t.Fatalf("unexpected details: %+v", body.Details)
	}
}
