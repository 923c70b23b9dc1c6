package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"SecureBank/internal/domain/service"
	"SecureBank/internal/messages"
	"SecureBank/internal/service/backend"
	"SecureBank/internal/service/ratelimit"
	"SecureBank/internal/usecase"
	"SecureBank/internal/view"
	"SecureBank/pkg/cache"
	"SecureBank/pkg/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, mux *http.ServeMux, limit int) *echo.Echo {
	t.Helper()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	cfg := config.Default()
	cfg.Backend.BaseURL = srv.URL
	cat := messages.New(messages.LocaleID)
	api := backend.NewClient(cfg, nil, nil)

	var guard *ratelimit.Guard
	if limit > 0 {
		store := cache.NewMemoryCache()
		t.Cleanup(func() { _ = store.Close() })
		guard = ratelimit.NewGuard(ratelimit.New(store, limit, time.Minute), "predict", nil, nil)
	}

	h := NewPagesHandler(nil, cat, guard,
		usecase.NewDashboardUsecase(api, cfg, cat, nil),
		usecase.NewInsightsUsecase(api, cat, nil),
		usecase.NewModelInfoUsecase(api, cat, nil),
		usecase.NewPredictionUsecase(api, nil, cat, nil, nil),
	)

	r, err := view.NewRenderer(cat)
	require.NoError(t, err)
	e := echo.New()
	e.Renderer = r
	h.RegisterRoutes(e)
	return e
}

func serve(e *echo.Echo, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func predictMux(t *testing.T) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc(service.EndpointPredict, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, float64(0), body["balance"])
		assert.Equal(t, "student", body["job"])
		writeJSON(w, http.StatusOK, `{"prediction":"yes","probability_yes":0.716}`)
	})
	return mux
}

func formRequest(values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(values.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	return req
}

func TestPredictionFormShowsDefaults(t *testing.T) {
	e := newTestServer(t, http.NewServeMux(), 0)

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `name="age" value="30"`)
	assert.Contains(t, rec.Body.String(), `class="active"`)
}

func TestPredictSubmitsForm(t *testing.T) {
	e := newTestServer(t, predictMux(t), 0)

	rec := serve(e, formRequest(url.Values{"job": {"student"}, "balance": {""}}))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "71.60%")
	assert.Contains(t, rec.Body.String(), `name="balance" value=""`)
}

func TestPredictRejectsUnknownOption(t *testing.T) {
	e := newTestServer(t, http.NewServeMux(), 0)

	rec := serve(e, formRequest(url.Values{"job": {"astronaut"}}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Input tidak valid.")
}

func TestPredictRateLimited(t *testing.T) {
	e := newTestServer(t, predictMux(t), 1)
	values := url.Values{"job": {"student"}, "balance": {"abc"}}

	first := serve(e, formRequest(values))
	require.Equal(t, http.StatusOK, first.Code)

	second := serve(e, formRequest(values))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Equal(t, "60", second.Header().Get("Retry-After"))
	assert.Contains(t, second.Body.String(), "Terlalu banyak permintaan. Coba lagi dalam 60 detik.")
}

func TestDashboardShowsBackendDetail(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc(service.EndpointTargetDistribution, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusInternalServerError, `{"detail":"Dataset tidak ditemukan"}`)
	})
	mux.HandleFunc(service.EndpointJobSuccessRate, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `[]`)
	})
	e := newTestServer(t, mux, 0)

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Dataset tidak ditemukan")
	assert.Contains(t, rec.Body.String(), `role="alert"`)
}

func TestInsightsAndModelInfoRender(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc(service.EndpointAgeDistribution, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `[{"age_group":"18-30","Berlangganan":10,"Tidak Berlangganan":"90"}]`)
	})
	mux.HandleFunc(service.EndpointBalanceDurationSample, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `[{"balance":null,"duration":120,"y":"yes","y_label":"Berlangganan"}]`)
	})
	mux.HandleFunc(service.EndpointModelInfo, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"model_name":"Gradient Boosting","accuracy":0.9,"AUC-ROC":"bad"}`)
	})
	e := newTestServer(t, mux, 0)

	insights := serve(e, httptest.NewRequest(http.MethodGet, "/insights", nil))
	assert.Equal(t, http.StatusOK, insights.Code)
	assert.Contains(t, insights.Body.String(), "<circle")

	info := serve(e, httptest.NewRequest(http.MethodGet, "/model-info", nil))
	assert.Equal(t, http.StatusOK, info.Code)
	assert.Contains(t, info.Body.String(), "90.0%")
	assert.Contains(t, info.Body.String(), "<strong>N/A</strong>")
}
