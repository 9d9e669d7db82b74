package curvehttp

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/kilianp07/macc/core/curve"
	"github.com/kilianp07/macc/core/logger"
	"github.com/kilianp07/macc/core/measure"
	coremetrics "github.com/kilianp07/macc/core/metrics"
	"github.com/kilianp07/macc/core/numeric"
)

// Response is the curve endpoint payload.
type Response struct {
	Curve  curve.Curve            `json:"curve"`
	Trend  *numeric.QuadFitResult `json:"trend,omitempty"`
	Budget *curve.BudgetResult    `json:"budget,omitempty"`
}

// NewHandler returns an HTTP handler building the cost curve from saved
// measures via GET /api/curve. Query parameters: mode (capacity or
// intensity), sector, baseline (tCO2), target_pct (enables the
// budget-to-target walk), trend=1 (enables the regression overlay).
func NewHandler(st measure.Store, sink coremetrics.ComputeSink, carbonPrice float64, log logger.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		q := r.URL.Query()
		mode := curve.Capacity
		if q.Get("mode") == string(curve.Intensity) {
			mode = curve.Intensity
		}
		baseline, _ := strconv.ParseFloat(q.Get("baseline"), 64)

		ms, err := st.List()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		ranked := curve.Rank(ms, q.Get("sector"), carbonPrice)
		c := curve.Build(ranked, mode, baseline)

		resp := Response{Curve: c}
		if q.Get("trend") == "1" {
			trend := curve.FitTrend(c.Segments)
			resp.Trend = &trend
		}
		if tp := q.Get("target_pct"); tp != "" {
			pct, err := strconv.ParseFloat(tp, 64)
			if err != nil {
				http.Error(w, "invalid target_pct", http.StatusBadRequest)
				return
			}
			budget := curve.BudgetToTarget(ranked, baseline, pct)
			resp.Budget = &budget
		}
		if sink != nil {
			if err := sink.RecordCurve(c); err != nil {
				log.Warnf("metrics sink: %v", err)
			}
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
