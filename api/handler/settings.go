package handler

import (
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/dayplanner/backend/api/transport"
	"github.com/dayplanner/backend/domain"
	"github.com/dayplanner/backend/pkg/httpcontext"
	settingsUC "github.com/dayplanner/backend/usecase/settings"
)

type SettingsHandler struct {
	baseHandler
	uc *settingsUC.UseCase
}

func NewSettingsHandler(uc *settingsUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *SettingsHandler {
	return &SettingsHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary Get planning settings (defaults before the first save)
// @Tags settings
// @Router /api/v1/settings [get]
func (h *SettingsHandler) GetSettings(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	settings, err := h.uc.GetSettings(stdCtx, userID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, settings)
}

// @Summary Replace planning settings
// @Tags settings
// @Router /api/v1/settings [put]
func (h *SettingsHandler) SaveSettings(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	var req transport.SettingsRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx, "invalid payload")
		return
	}

	settings := &domain.Settings{
		UserID:        userID,
		DailyLimit:    req.DailyLimit,
		WorkLimit:     req.WorkLimit,
		PersonalLimit: req.PersonalLimit,
		WorkStart:     req.WorkStart,
		WorkEnd:       req.WorkEnd,
		PersonalStart: req.PersonalStart,
		PersonalEnd:   req.PersonalEnd,
		FocusStart:    req.FocusStart,
		FocusEnd:      req.FocusEnd,
		BreakMinutes:  req.BreakMinutes,
		SlotMinutes:   req.SlotMinutes,
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	saved, err := h.uc.SaveSettings(stdCtx, settings)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, saved)
}
