package curvehttp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kilianp07/macc/core/measure"
	"github.com/kilianp07/macc/infra/logger"
	"github.com/kilianp07/macc/infra/store"
)

func seeded(t *testing.T) *store.MemoryStore {
	t.Helper()
	st := store.NewMemoryStore()
	require.NoError(t, st.Save(measure.Quick("cheap", "cement", 100, -50)))
	require.NoError(t, st.Save(measure.Quick("mid", "cement", 250, 10)))
	require.NoError(t, st.Save(measure.Quick("dear", "power", 150, 200)))
	return st
}

func TestCurveHandlerCapacity(t *testing.T) {
	h := NewHandler(seeded(t), nil, 0, logger.NopLogger{})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/curve", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Curve.Segments, 3)
	require.Equal(t, 500.0, resp.Curve.TotalAbatement)
	require.Equal(t, resp.Curve.Segments[0].X2, resp.Curve.Segments[1].X1)
	require.Nil(t, resp.Budget)
}

func TestCurveHandlerSectorAndBudget(t *testing.T) {
	h := NewHandler(seeded(t), nil, 0, logger.NopLogger{})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/curve?sector=cement&baseline=1000&target_pct=30", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Curve.Segments, 2)
	require.NotNil(t, resp.Budget)
	require.Equal(t, 300.0, resp.Budget.ReachedTons)
}

func TestCurveHandlerTrend(t *testing.T) {
	h := NewHandler(seeded(t), nil, 0, logger.NopLogger{})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/curve?trend=1", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.NotNil(t, resp.Trend)
}

func TestCurveHandlerBadTarget(t *testing.T) {
	h := NewHandler(seeded(t), nil, 0, logger.NopLogger{})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/curve?target_pct=abc", nil))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
