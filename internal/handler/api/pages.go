package api

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

// PagesHandler exposes the state of every page as JSON.
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
	g := e.Group("/api")
	g.GET("/pages/dashboard", h.Dashboard)
	g.GET("/pages/insights", h.Insights)
	g.GET("/pages/model-info", h.ModelInfo)
	g.POST("/predict", h.Predict)
}

func (h *PagesHandler) Dashboard(c echo.Context) error {
	st := h.dashboard.Page().Load(c.Request().Context())
	return c.JSON(stateStatus(st.Status), st)
}

func (h *PagesHandler) Insights(c echo.Context) error {
	st := h.insights.Page().Load(c.Request().Context())
	return c.JSON(stateStatus(st.Status), st)
}

func (h *PagesHandler) ModelInfo(c echo.Context) error {
	st := h.modelInfo.Page().Load(c.Request().Context())
	return c.JSON(stateStatus(st.Status), st)
}

// PredictionBody is the JSON form of the prediction page state.
type PredictionBody struct {
	State       usecase.Status           `json:"state"`
	Error       string                   `json:"error,omitempty"`
	Data        *models.PredictionResult `json:"data,omitempty"`
	Probability string                   `json:"probability,omitempty"`
}

func (h *PagesHandler) Predict(c echo.Context) error {
	form := models.NewCustomerInputForm()
	if verr := xhttp.BindAndValidate(c, form); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	if d := h.guard.Allow(c.Request().Context(), c.RealIP()); !d.Allowed {
		secs := d.RetryAfterSeconds()
		c.Response().Header().Set("Retry-After", strconv.Itoa(secs))
		return xhttp.AppErrorResponse(c, xhttp.TooManyRequestsError(h.cat.T(messages.PredictRateLimit, secs)))
	}

	st := h.prediction.Page(form).Load(c.Request().Context())
	body := PredictionBody{State: st.Status, Error: st.Error, Data: st.Data}
	if st.Data != nil {
		body.Probability = view.FormatProbability(st.Data.ProbabilityYes)
	}
	return c.JSON(stateStatus(st.Status), body)
}

// stateStatus maps a settled page state to an HTTP status. Idle only
// happens when the client went away.
func stateStatus(s usecase.Status) int {
	switch s {
	case usecase.StatusReady:
		return http.StatusOK
	case usecase.StatusError:
		return http.StatusBadGateway
	default:
		return http.StatusServiceUnavailable
	}
}
