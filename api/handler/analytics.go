package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/dayplanner/backend/pkg/httpcontext"
	analyticsUC "github.com/dayplanner/backend/usecase/analytics"
)

type AnalyticsHandler struct {
	baseHandler
	uc *analyticsUC.UseCase
}

func NewAnalyticsHandler(uc *analyticsUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary Daily planned/done totals against limits
// @Tags analytics
// @Router /api/v1/analytics/summary [get]
func (h *AnalyticsHandler) DaySummary(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	date := string(ctx.QueryArgs().Peek("date"))

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	summary, err := h.uc.DaySummary(stdCtx, userID, date)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, summary)
}

// @Summary Rolling 7-day completed-minutes chart
// @Tags analytics
// @Router /api/v1/analytics/weekly [get]
func (h *AnalyticsHandler) Weekly(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	week, err := h.uc.Weekly(stdCtx, userID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, week)
}

// @Summary Consecutive fully-completed days before today
// @Tags analytics
// @Router /api/v1/analytics/streak [get]
func (h *AnalyticsHandler) Streak(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	streak, err := h.uc.Streak(stdCtx, userID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, map[string]int{"streak": streak})
}

// @Summary Export the task collection as CSV or TSV
// @Tags analytics
// @Router /api/v1/export [get]
func (h *AnalyticsHandler) Export(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	format := string(ctx.QueryArgs().Peek("format"))

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	body, contentType, err := h.uc.Export(stdCtx, userID, format)
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	ctx.Response.Header.SetContentType(contentType)
	ctx.Response.Header.Set("Content-Disposition", `attachment; filename="tasks.`+extensionFor(contentType)+`"`)
	ctx.SetStatusCode(http.StatusOK)
	ctx.SetBodyString(body)
}

func extensionFor(contentType string) string {
	if contentType == "text/tab-separated-values" {
		return "tsv"
	}
	return "csv"
}
