package view

import (
	"SecureBank/internal/domain/models"
	"SecureBank/internal/messages"
	"SecureBank/internal/usecase"
	xhttp "SecureBank/pkg/http"
)

// NavItem is one entry of the navigation header.
type NavItem struct {
	Page   string
	Href   string
	Label  string
	Active bool
}

var navOrder = []struct{ page, href, key string }{
	{usecase.PagePrediction, "/", "nav.predict"},
	{usecase.PageDashboard, "/dashboard", "nav.dashboard"},
	{usecase.PageInsights, "/insights", "nav.insights"},
	{usecase.PageModelInfo, "/model-info", "nav.modelinfo"},
}

// Navigation lists the four pages with active highlighted.
func Navigation(cat *messages.Catalog, active string) []NavItem {
	items := make([]NavItem, 0, len(navOrder))
	for _, n := range navOrder {
		items = append(items, NavItem{Page: n.page, Href: n.href, Label: cat.T(n.key), Active: n.page == active})
	}
	return items
}

// FormOption is one choice of a select input.
type FormOption struct {
	Value    string
	Label    string
	Selected bool
}

// FormField is one input of the prediction form. Options is empty for
// numeric inputs.
type FormField struct {
	Name    string
	Label   string
	Value   string
	Options []FormOption
	Error   string
}

func (f FormField) IsSelect() bool { return len(f.Options) > 0 }

// PredictionView backs the prediction page.
type PredictionView struct {
	Fields      []FormField
	State       usecase.State[models.PredictionResult]
	Probability string
	YesPercent  float64
	NoPercent   float64
}

func NewPredictionView(
	cat *messages.Catalog,
	form *models.CustomerInputForm,
	st usecase.State[models.PredictionResult],
	errs []xhttp.ValidationError,
) PredictionView {
	v := PredictionView{Fields: formFields(cat, form, errs), State: st}
	if st.Status == usecase.StatusReady && st.Data != nil {
		v.Probability = FormatProbability(st.Data.ProbabilityYes)
		v.YesPercent, v.NoPercent = ProbabilityBars(st.Data.ProbabilityYes)
	}
	return v
}

func formFields(cat *messages.Catalog, f *models.CustomerInputForm, errs []xhttp.ValidationError) []FormField {
	fields := []FormField{
		numberField(cat, "age", f.Age),
		selectField(cat, "job", "job", f.Job, models.JobOptions),
		selectField(cat, "marital", "marital", f.Marital, models.MaritalOptions),
		selectField(cat, "education", "education", f.Education, models.EducationOptions),
		numberField(cat, "balance", f.Balance),
		selectField(cat, "default", "yesno", f.Default, models.YesNoOptions),
		selectField(cat, "housing", "yesno", f.Housing, models.YesNoOptions),
		selectField(cat, "loan", "yesno", f.Loan, models.YesNoOptions),
		selectField(cat, "contact", "contact", f.Contact, models.ContactOptions),
		selectField(cat, "month", "month", f.Month, models.MonthOptions),
		numberField(cat, "duration", f.Duration),
		numberField(cat, "campaign", f.Campaign),
		numberField(cat, "pdays", f.PDays),
		numberField(cat, "previous", f.Previous),
		selectField(cat, "poutcome", "poutcome", f.POutcome, models.POutcomeOptions),
	}
	for _, e := range errs {
		for i := range fields {
			if fields[i].Name == e.Field {
				fields[i].Error = cat.T(messages.PredictInvalid)
			}
		}
	}
	return fields
}

func numberField(cat *messages.Catalog, name string, v models.FormValue) FormField {
	return FormField{Name: name, Label: cat.T("field." + name), Value: v.String()}
}

func selectField(cat *messages.Catalog, name, group, value string, options []string) FormField {
	f := FormField{Name: name, Label: cat.T("field." + name), Value: value}
	for _, o := range options {
		f.Options = append(f.Options, FormOption{
			Value:    o,
			Label:    cat.T("option." + group + "." + o),
			Selected: o == value,
		})
	}
	return f
}

// DashboardView backs the dashboard page.
type DashboardView struct {
	State usecase.State[models.Dashboard]
	Pie   Pie
	Jobs  []Bar
}

func NewDashboardView(st usecase.State[models.Dashboard]) DashboardView {
	v := DashboardView{State: st}
	if st.Data != nil {
		v.Pie = NewPie(st.Data.TargetDistribution)
		v.Jobs = NewJobBars(st.Data.JobSuccessRate)
	}
	return v
}

// InsightsView backs the insights page.
type InsightsView struct {
	State   usecase.State[models.Insights]
	Ages    []GroupedBar
	Scatter Scatter
}

func NewInsightsView(st usecase.State[models.Insights]) InsightsView {
	v := InsightsView{State: st}
	if st.Data != nil {
		v.Ages = NewAgeBars(st.Data.AgeDistribution)
		v.Scatter = NewScatter(st.Data.BalanceDurationSample)
	}
	return v
}

// Metric is one labelled, already formatted model metric.
type Metric struct {
	Label string
	Value string
}

// ModelInfoView backs the model-info page.
type ModelInfoView struct {
	State   usecase.State[models.ModelInfo]
	Metrics []Metric
}

func NewModelInfoView(cat *messages.Catalog, st usecase.State[models.ModelInfo]) ModelInfoView {
	v := ModelInfoView{State: st}
	if m := st.Data; m != nil {
		v.Metrics = []Metric{
			{cat.T("modelinfo.metric.accuracy"), FormatRatio(m.Accuracy)},
			{cat.T("modelinfo.metric.precision"), FormatRatio(m.Precision)},
			{cat.T("modelinfo.metric.recall"), FormatRatio(m.Recall)},
			{cat.T("modelinfo.metric.f1"), FormatDecimal3(m.F1Score)},
			{cat.T("modelinfo.metric.auc"), FormatDecimal3(m.AUCROC)},
			{cat.T("modelinfo.metric.cvfolds"), FormatInt(m.CVFolds.Number)},
			{cat.T("modelinfo.metric.cvscore"), FormatText(m.CVScore)},
		}
	}
	return v
}
