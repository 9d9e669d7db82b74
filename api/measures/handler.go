package measures

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/kilianp07/macc/core/catalog"
	"github.com/kilianp07/macc/core/logger"
	"github.com/kilianp07/macc/core/measure"
	coremetrics "github.com/kilianp07/macc/core/metrics"
)

// ComputeRequest is the POST body of the compute endpoint.
type ComputeRequest struct {
	Draft              measure.Draft `json:"draft"`
	IncludeCarbonPrice bool          `json:"include_carbon_price"`
	// Save persists the frozen measure; when false the computation is
	// returned without touching the store (the live-recompute path).
	Save bool `json:"save"`
}

// ComputeResponse carries the frozen measure and its full computation.
type ComputeResponse struct {
	Measure     measure.Measure     `json:"measure"`
	Computation measure.Computation `json:"computation"`
}

// NewComputeHandler returns an HTTP handler evaluating measure drafts
// via POST /api/measures/compute.
func NewComputeHandler(eng measure.Engine, cat catalog.Resolved, st measure.Store, sink coremetrics.ComputeSink, discountRatePct, carbonPrice float64, log logger.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		var req ComputeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		start := time.Now()
		comp := eng.Compute(req.Draft, cat, discountRatePct, carbonPrice)
		m := measure.Freeze(req.Draft, comp, req.IncludeCarbonPrice, carbonPrice)
		if req.Save {
			if err := st.Save(m); err != nil {
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
		}
		if sink != nil {
			if err := sink.RecordComputation(m, time.Since(start)); err != nil {
				log.Warnf("metrics sink: %v", err)
			}
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(ComputeResponse{Measure: m, Computation: comp}); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// NewListHandler returns an HTTP handler exposing saved measures via
// GET /api/measures, optionally filtered by sector.
func NewListHandler(st measure.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		ms, err := st.List()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if sector := r.URL.Query().Get("sector"); sector != "" {
			var filtered []measure.Measure
			for _, m := range ms {
				if strings.EqualFold(m.Sector, sector) {
					filtered = append(filtered, m)
				}
			}
			ms = filtered
		}
		if ms == nil {
			ms = []measure.Measure{}
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(ms); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// NewDeleteHandler returns an HTTP handler removing a measure via
// DELETE /api/measures/{id}.
func NewDeleteHandler(st measure.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		id := strings.TrimPrefix(r.URL.Path, "/api/measures/")
		if id == "" {
			http.Error(w, "missing id", http.StatusBadRequest)
			return
		}
		if err := st.Delete(id); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
}
