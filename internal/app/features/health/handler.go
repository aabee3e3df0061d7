package health

import (
	"context"
	"encoding/json"
	"net/http"

	catalogstore "github.com/dalemusser/coursecompare/internal/app/store/catalog"
	"github.com/dalemusser/coursecompare/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// Handler holds dependencies needed for health checks.
type Handler struct {
	Client  *mongo.Client
	Catalog *catalogstore.Store
	Log     *zap.Logger
}

// NewHandler constructs a health Handler. catalog may be nil, in which case
// the program count is omitted.
func NewHandler(client *mongo.Client, catalog *catalogstore.Store, logger *zap.Logger) *Handler {
	return &Handler{
		Client:  client,
		Catalog: catalog,
		Log:     logger,
	}
}

type healthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Programs *int64 `json:"programs,omitempty"`
	Message  string `json:"message,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Serve handles GET /health.
//
// On success: 200 and
//
//	{ "status":"ok", "database":"connected", "programs":42 }
//
// On DB failure: 503 and
//
//	{ "status":"error", "message":"Database unavailable", "error":"…"}
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Ping())
	defer cancel()

	w.Header().Set("Content-Type", "application/json")

	resp := healthResponse{
		Status:   "ok",
		Database: "connected",
	}

	if err := h.Client.Ping(ctx, readpref.Primary()); err != nil {
		h.Log.Error("health-check: mongo ping failed", zap.Error(err))
		w.WriteHeader(http.StatusServiceUnavailable)
		resp.Status = "error"
		resp.Database = "disconnected"
		resp.Message = "Database unavailable"
		resp.Error = err.Error()
		_ = json.NewEncoder(w).Encode(resp)
		return
	}

	// informational only
	if h.Catalog != nil {
		if n, err := h.Catalog.CountPrograms(ctx); err == nil {
			resp.Programs = &n
		} else {
			h.Log.Warn("health-check: count programs failed", zap.Error(err))
		}
	}

	_ = json.NewEncoder(w).Encode(resp)
}
