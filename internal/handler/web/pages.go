package web

import (
	"net/http"
	"strconv"

	"SecureBank/internal/domain/models"
	"SecureBank/internal/messages"
	"SecureBank/internal/service/ratelimit"
	"SecureBank/internal/usecase"
	"SecureBank/internal/view"
	xhttp "SecureBank/pkg/http"
	applogger "SecureBank/pkg/logger"

	"github.com/labstack/echo/v4"
)

// PagesHandler serves the four HTML pages.
type PagesHandler struct {
	logger     *applogger.Logger
	cat        *messages.Catalog
	guard      *ratelimit.Guard
	dashboard  *usecase.DashboardUsecase
	insights   *usecase.InsightsUsecase
	modelInfo  *usecase.ModelInfoUsecase
	prediction *usecase.PredictionUsecase
}

func NewPagesHandler(
	logger *applogger.Logger,
	cat *messages.Catalog,
	guard *ratelimit.Guard,
	dashboard *usecase.DashboardUsecase,
	insights *usecase.InsightsUsecase,
	modelInfo *usecase.ModelInfoUsecase,
	prediction *usecase.PredictionUsecase,
) *PagesHandler {
	if logger == nil {
		logger = applogger.Nop()
	}
	return &PagesHandler{
		logger:     logger,
		cat:        cat,
		guard:      guard,
		dashboard:  dashboard,
		insights:   insights,
		modelInfo:  modelInfo,
		prediction: prediction,
	}
}

func (h *PagesHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.PredictionForm)
	e.POST("/", h.Predict)
	e.GET("/dashboard", h.Dashboard)
	e.GET("/insights", h.Insights)
	e.GET("/model-info", h.ModelInfo)
}

func (h *PagesHandler) PredictionForm(c echo.Context) error {
	idle := usecase.State[models.PredictionResult]{Status: usecase.StatusIdle}
	return c.Render(http.StatusOK, view.TemplatePrediction,
		view.NewPredictionView(h.cat, models.NewCustomerInputForm(), idle, nil))
}

func (h *PagesHandler) Predict(c echo.Context) error {
	form := models.NewCustomerInputForm()
	if verr := xhttp.BindAndValidate(c, form); verr != nil {
		st := usecase.State[models.PredictionResult]{Status: usecase.StatusError, Error: h.cat.T(messages.PredictInvalid)}
		return c.Render(http.StatusBadRequest, view.TemplatePrediction, view.NewPredictionView(h.cat, form, st, verr))
	}

	if d := h.guard.Allow(c.Request().Context(), c.RealIP()); !d.Allowed {
		secs := d.RetryAfterSeconds()
		c.Response().Header().Set("Retry-After", strconv.Itoa(secs))
		st := usecase.State[models.PredictionResult]{Status: usecase.StatusError, Error: h.cat.T(messages.PredictRateLimit, secs)}
		return c.Render(http.StatusTooManyRequests, view.TemplatePrediction, view.NewPredictionView(h.cat, form, st, nil))
	}

	page := h.prediction.Page(form)
	trace(h.logger, usecase.PagePrediction, page)
	st := page.Load(c.Request().Context())
	if st.Status == usecase.StatusIdle {
		return nil
	}
	return c.Render(http.StatusOK, view.TemplatePrediction, view.NewPredictionView(h.cat, form, st, nil))
}

func (h *PagesHandler) Dashboard(c echo.Context) error {
	page := h.dashboard.Page()
	trace(h.logger, usecase.PageDashboard, page)
	st := page.Load(c.Request().Context())
	if st.Status == usecase.StatusIdle {
		return nil
	}
	return c.Render(http.StatusOK, view.TemplateDashboard, view.NewDashboardView(st))
}

func (h *PagesHandler) Insights(c echo.Context) error {
	page := h.insights.Page()
	trace(h.logger, usecase.PageInsights, page)
	st := page.Load(c.Request().Context())
	if st.Status == usecase.StatusIdle {
		return nil
	}
	return c.Render(http.StatusOK, view.TemplateInsights, view.NewInsightsView(st))
}

func (h *PagesHandler) ModelInfo(c echo.Context) error {
	page := h.modelInfo.Page()
	trace(h.logger, usecase.PageModelInfo, page)
	st := page.Load(c.Request().Context())
	if st.Status == usecase.StatusIdle {
		return nil
	}
	return c.Render(http.StatusOK, view.TemplateModelInfo, view.NewModelInfoView(h.cat, st))
}

// trace logs every state transition of a page at debug level.
func trace[T any](l *applogger.Logger, page string, m *usecase.Machine[T]) {
	m.Observe(func(s usecase.State[T]) {
		l.Debug("page state",
			applogger.String("page", page),
			applogger.String("state", string(s.Status)),
			applogger.String("message", s.Error),
		)
	})
}
