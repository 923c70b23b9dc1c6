package view

import (
	"bytes"
	"testing"

	"SecureBank/internal/domain/models"
	"SecureBank/internal/messages"
	"SecureBank/internal/usecase"
	xhttp "SecureBank/pkg/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRenderer(t *testing.T) (*Renderer, *messages.Catalog) {
	t.Helper()
	cat := messages.New(messages.LocaleID)
	r, err := NewRenderer(cat)
	require.NoError(t, err)
	return r, cat
}

func render(t *testing.T, r *Renderer, name string, content interface{}) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, name, content, nil))
	return buf.String()
}

func TestRenderMarksActiveNav(t *testing.T) {
	r, _ := newTestRenderer(t)
	out := render(t, r, TemplateDashboard, NewDashboardView(usecase.State[models.Dashboard]{Status: usecase.StatusLoading}))

	assert.Contains(t, out, `<a href="/dashboard" class="active" aria-current="page">`)
	assert.Contains(t, out, `<a href="/insights">`)
	assert.Contains(t, out, "Memuat data dashboard...")
}

func TestRenderUnknownPage(t *testing.T) {
	r, _ := newTestRenderer(t)
	var buf bytes.Buffer
	assert.Error(t, r.Render(&buf, "nope", nil, nil))
	assert.Zero(t, buf.Len())
}

func TestRenderPredictionStates(t *testing.T) {
	r, cat := newTestRenderer(t)
	form := models.NewCustomerInputForm()

	idle := render(t, r, TemplatePrediction, NewPredictionView(cat, form, usecase.State[models.PredictionResult]{Status: usecase.StatusIdle}, nil))
	assert.Contains(t, idle, `<option value="admin." selected>Administrasi</option>`)
	assert.Contains(t, idle, `name="balance" value="1787"`)
	assert.NotContains(t, idle, "Hasil Prediksi")

	res := models.PredictionResult{Prediction: models.OutcomeYes, ProbabilityYes: models.NumberOf(0.716)}
	ready := render(t, r, TemplatePrediction, NewPredictionView(cat, form, usecase.State[models.PredictionResult]{Status: usecase.StatusReady, Data: &res}, nil))
	assert.Contains(t, ready, "71.60%")
	assert.Contains(t, ready, "<strong>YA</strong>")
	assert.Contains(t, ready, cat.T("predict.rec.yes.title"))

	failed := render(t, r, TemplatePrediction, NewPredictionView(cat, form, usecase.State[models.PredictionResult]{Status: usecase.StatusError, Error: "Model <b>down</b>"}, nil))
	assert.Contains(t, failed, "Model &lt;b&gt;down&lt;/b&gt;")
}

func TestRenderPredictionFieldErrors(t *testing.T) {
	r, cat := newTestRenderer(t)
	form := models.NewCustomerInputForm()
	form.Job = "astronaut"

	out := render(t, r, TemplatePrediction, NewPredictionView(cat, form,
		usecase.State[models.PredictionResult]{Status: usecase.StatusIdle},
		[]xhttp.ValidationError{{Field: "job", Code: "ERR_ONEOF"}},
	))
	assert.Contains(t, out, `<span class="field-error">Input tidak valid.</span>`)
}

func TestRenderDashboardReady(t *testing.T) {
	r, cat := newTestRenderer(t)
	d := models.Dashboard{
		KPI: models.KPI{TotalCustomers: 45211, OverallSuccessRate: 11.7, AvgCallDuration: 263, AvgCustomerAge: 41, Placeholder: true},
		TargetDistribution: []models.TargetDistributionPoint{
			{Label: models.LabelNotSubscribed, Value: models.NumberOf(39922)},
			{Label: models.LabelSubscribed, Value: models.NumberOf(5289)},
		},
		JobSuccessRate: []models.JobSuccessPoint{{Job: "student", SuccessRate: models.NumberOf(28.7)}},
	}

	out := render(t, r, TemplateDashboard, NewDashboardView(usecase.State[models.Dashboard]{Status: usecase.StatusReady, Data: &d}))
	assert.Contains(t, out, "45,211")
	assert.Contains(t, out, "(88%)")
	assert.Contains(t, out, "(12%)")
	assert.Contains(t, out, "conic-gradient(")
	assert.Contains(t, out, cat.T("common.placeholder"))
}

func TestRenderDashboardError(t *testing.T) {
	r, _ := newTestRenderer(t)
	out := render(t, r, TemplateDashboard, NewDashboardView(usecase.State[models.Dashboard]{Status: usecase.StatusError, Error: "X"}))
	assert.Contains(t, out, `role="alert"`)
	assert.Contains(t, out, "X")
	assert.NotContains(t, out, "conic-gradient(")
}

func TestRenderInsightsReady(t *testing.T) {
	r, _ := newTestRenderer(t)
	in := models.Insights{
		AgeDistribution: []models.AgeDistributionPoint{{AgeGroup: "18-30", Subscribed: models.NumberOf(10), NotSubscribed: models.NumberOf(90)}},
		BalanceDurationSample: []models.BalanceDurationSample{
			{Balance: models.NumberOf(100), Duration: models.NumberOf(50), Y: "yes", YLabel: models.LabelSubscribed},
			{Balance: models.NumberOf(200), Duration: models.NumberOf(80), Y: "no", YLabel: models.LabelNotSubscribed},
		},
	}

	out := render(t, r, TemplateInsights, NewInsightsView(usecase.State[models.Insights]{Status: usecase.StatusReady, Data: &in}))
	assert.Contains(t, out, "<svg")
	assert.Equal(t, 2, bytes.Count([]byte(out), []byte("<circle")))
	assert.Contains(t, out, "18-30")
	assert.Contains(t, out, "Gambaran Umum Dataset")
}

func TestRenderModelInfoMissingMetrics(t *testing.T) {
	r, cat := newTestRenderer(t)
	info := models.ModelInfo{ModelName: "Gradient Boosting", Accuracy: models.NumberOf(0.9123)}

	out := render(t, r, TemplateModelInfo, NewModelInfoView(cat, usecase.State[models.ModelInfo]{Status: usecase.StatusReady, Data: &info}))
	assert.Contains(t, out, "Gradient Boosting")
	assert.Contains(t, out, "91.2%")
	assert.Contains(t, out, "<strong>N/A</strong>")
	assert.Contains(t, out, "CRISP-DM")
}
