package reachable_test

import (
	"net/http"
	"testing"

	"github.com/dalemusser/coursecompare/internal/app/features/reachable"
	"github.com/dalemusser/coursecompare/internal/testutil"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func TestServe(t *testing.T) {
	h := reachable.NewHandler(zap.NewNop())

	tests := []struct {
		target   string
		wantCode int
		wantBody string
	}{
		{"/reachable?path=/institutions/iit-delhi/", http.StatusOK, `"reachable":true`},
		{"/reachable?path=/institutions/iit-delhi/", http.StatusOK, `"path":"/institutions/iit-delhi"`},
		{"/reachable?path=/a/b/c/d", http.StatusOK, `"reachable":false`},
		{"/reachable", http.StatusBadRequest, `"ref":`},
	}
	for _, tt := range tests {
		rec := testutil.NewRecorder()
		h.Serve(rec, testutil.NewRequest("GET", tt.target))
		rec.AssertStatus(t, tt.wantCode)
		rec.AssertContains(t, tt.wantBody)
	}
}

func TestRoutes(t *testing.T) {
	r := chi.NewRouter()
	r.Mount("/reachable", reachable.Routes(reachable.NewHandler(zap.NewNop())))

	rec := testutil.NewRecorder()
	r.ServeHTTP(rec, testutil.NewRequest("GET", "/reachable?path=/compare/btech-cse"))
	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, `"reachable":true`)

	rec = testutil.NewRecorder()
	r.ServeHTTP(rec, testutil.NewRequest("POST", "/reachable?path=/"))
	rec.AssertStatus(t, http.StatusMethodNotAllowed)
}
