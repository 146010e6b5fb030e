package health_test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/hzein/bawaba/internal/app/features/health"
	"github.com/hzein/bawaba/internal/app/state"
	"github.com/hzein/bawaba/internal/testutil"
)

func TestCheck_Seeded(t *testing.T) {
	h := health.NewHandler(testutil.SeededStore(t), zap.NewNop())

	req := httptest.NewRequest("GET", "/health", nil)
	rec := httptest.NewRecorder()
	h.Check(rec, req)

	if rec.Code != 200 {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body struct {
		Status   string `json:"status"`
		Services int    `json:"services"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Status != "ok" || body.Services == 0 {
		t.Fatalf("body = %+v", body)
	}
}

func TestCheck_Unseeded(t *testing.T) {
	h := health.NewHandler(state.New(), zap.NewNop())

	req := httptest.NewRequest("GET", "/health", nil)
	rec := httptest.NewRecorder()
	h.Check(rec, req)

	if rec.Code != 503 {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
}
