package measures

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kilianp07/macc/core/catalog"
	"github.com/kilianp07/macc/core/measure"
	"github.com/kilianp07/macc/infra/logger"
	"github.com/kilianp07/macc/infra/store"
)

func testEngine() measure.Engine {
	return measure.Engine{Years: []int{2025, 2030, 2035, 2040, 2045, 2050}, BaseYear: 2025, UnitScale: 1e7}
}

func testCatalogs() catalog.Resolved {
	return catalog.Set{
		Fuel: []catalog.Row{{Name: "Coal", Unit: "t", PricePerUnit: 5000, EFPerUnit: 2.5}},
	}.Index()
}

func computeBody(t *testing.T, save bool) *bytes.Buffer {
	t.Helper()
	delta := func(v float64) *float64 { return &v }
	d := measure.NewDraft(6)
	d.Name = "coal switch"
	d.Sector = "cement"
	d.Fuel[0].CatalogKey = "Coal"
	d.Fuel[0].Delta = []*float64{nil, delta(1000), delta(2000), delta(2000), delta(2000), delta(2000)}
	d.Adoption = []float64{0, 0.25, 0.5, 1, 1, 1}
	body, err := json.Marshal(ComputeRequest{Draft: d, Save: save})
	require.NoError(t, err)
	return bytes.NewBuffer(body)
}

func TestComputeHandlerSaves(t *testing.T) {
	st := store.NewMemoryStore()
	h := NewComputeHandler(testEngine(), testCatalogs(), st, nil, 10, 500, logger.NopLogger{})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/measures/compute", computeBody(t, true)))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ComputeResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.NotEmpty(t, resp.Measure.ID)
	require.Equal(t, "coal switch", resp.Measure.Name)
	require.Greater(t, resp.Measure.AbatementTCO2, 0.0)
	require.Len(t, resp.Computation.PerYear, 6)

	saved, err := st.List()
	require.NoError(t, err)
	require.Len(t, saved, 1)
}

func TestComputeHandlerDryRun(t *testing.T) {
	st := store.NewMemoryStore()
	h := NewComputeHandler(testEngine(), testCatalogs(), st, nil, 10, 0, logger.NopLogger{})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/measures/compute", computeBody(t, false)))
	require.Equal(t, http.StatusOK, rec.Code)

	saved, err := st.List()
	require.NoError(t, err)
	require.Empty(t, saved)
}

func TestComputeHandlerRejectsGet(t *testing.T) {
	h := NewComputeHandler(testEngine(), testCatalogs(), store.NewMemoryStore(), nil, 10, 0, logger.NopLogger{})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/measures/compute", nil))
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestListHandlerSectorFilter(t *testing.T) {
	st := store.NewMemoryStore()
	require.NoError(t, st.Save(measure.Quick("a", "cement", 100, 10)))
	require.NoError(t, st.Save(measure.Quick("b", "power", 200, 20)))

	h := NewListHandler(st)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/measures?sector=power", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var got []measure.Measure
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	require.Len(t, got, 1)
	require.Equal(t, "b", got[0].Name)
}

func TestDeleteHandler(t *testing.T) {
	st := store.NewMemoryStore()
	m := measure.Quick("a", "cement", 100, 10)
	require.NoError(t, st.Save(m))

	h := NewDeleteHandler(st)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/measures/"+m.ID, nil))
	require.Equal(t, http.StatusNoContent, rec.Code)

	_, ok, err := st.Get(m.ID)
	require.NoError(t, err)
	require.False(t, ok)
}
