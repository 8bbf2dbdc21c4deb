package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/dayplanner/backend/api/transport"
	"github.com/dayplanner/backend/domain"
	"github.com/dayplanner/backend/pkg/httpcontext"
	"github.com/dayplanner/backend/planner"
	"github.com/dayplanner/backend/repository"
	taskUC "github.com/dayplanner/backend/usecase/task"
)

type TaskHandler struct {
	baseHandler
	uc *taskUC.UseCase
}

func NewTaskHandler(uc *taskUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary List tasks
// @Tags tasks
// @Router /api/v1/tasks [get]
func (h *TaskHandler) GetTasks(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	filter := repository.TaskFilter{
		UserID:     userID,
		Date:       string(ctx.QueryArgs().Peek("date")),
		OnlyParked: string(ctx.QueryArgs().Peek("parked")) == "true",
		Status:     domain.Status(ctx.QueryArgs().Peek("status")),
		Limit:      parseInt(string(ctx.QueryArgs().Peek("limit")), 0),
		Offset:     parseInt(string(ctx.QueryArgs().Peek("offset")), 0),
	}
	if filter.Date != "" && !planner.IsValidDate(filter.Date) {
		h.respondInvalid(ctx, "malformed date")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	tasks, err := h.uc.ListTasks(stdCtx, filter)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, tasks)
}

// @Summary Create task (expands repeat rule into 1..N records)
// @Tags tasks
// @Router /api/v1/tasks [post]
func (h *TaskHandler) CreateTask(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	var req transport.TaskRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx, "invalid payload")
		return
	}

	draft, rule := draftFromRequest(&req, userID)

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	result, err := h.uc.CreateTasks(stdCtx, draft, rule)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, result)
}

// @Summary Update a single task instance
// @Tags tasks
// @Router /api/v1/tasks/{id} [put]
func (h *TaskHandler) UpdateTask(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	var req transport.TaskRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx, "invalid payload")
		return
	}

	draft, _ := draftFromRequest(&req, userID)
	if draft.ID == "" {
		if id, ok := ctx.UserValue("id").(string); ok {
			draft.ID = id
		}
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	// Edits preserve status; fetch the stored record for the fields the
	// request does not carry.
	stored, err := h.uc.GetTask(stdCtx, userID, draft.ID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	draft.Status = stored.Status
	draft.CompletedAt = stored.CompletedAt
	draft.CreatedAt = stored.CreatedAt
	draft.Repeat = stored.Repeat

	updated, err := h.uc.UpdateTask(stdCtx, draft)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, updated)
}

// @Summary Toggle task completion
// @Tags tasks
// @Router /api/v1/tasks/{id}/toggle [post]
func (h *TaskHandler) ToggleTask(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	id, _ := ctx.UserValue("id").(string)
	if id == "" {
		h.respondInvalid(ctx, "missing task id")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	task, err := h.uc.ToggleTask(stdCtx, userID, id)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, task)
}

// @Summary Bulk-shift pending tasks to another date
// @Tags tasks
// @Router /api/v1/tasks/shift [post]
func (h *TaskHandler) ShiftTasks(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	var req transport.ShiftRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx, "invalid payload")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	moved, err := h.uc.ShiftTasks(stdCtx, userID, req.FromDate, req.ToDate, req.IDs)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, map[string]int{"moved": moved})
}

// @Summary Park tasks (clear their date)
// @Tags tasks
// @Router /api/v1/tasks/park [post]
func (h *TaskHandler) ParkTasks(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	var req transport.ParkRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx, "invalid payload")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.ParkTasks(stdCtx, userID, req.IDs); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, map[string]int{"parked": len(req.IDs)})
}

// @Summary Probe a schedule window for conflicts
// @Tags tasks
// @Router /api/v1/tasks/conflict [get]
func (h *TaskHandler) CheckConflict(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	date := string(ctx.QueryArgs().Peek("date"))
	start := string(ctx.QueryArgs().Peek("start"))
	end := string(ctx.QueryArgs().Peek("end"))

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	conflict, err := h.uc.CheckConflict(stdCtx, userID, date, start, end)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, map[string]bool{"conflict": conflict})
}

// @Summary Delete task
// @Tags tasks
// @Router /api/v1/tasks/{id} [delete]
func (h *TaskHandler) DeleteTask(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	id, _ := ctx.UserValue("id").(string)
	if id == "" {
		h.respondInvalid(ctx, "missing task id")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.DeleteTask(stdCtx, userID, id); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusNoContent, nil)
}

func draftFromRequest(req *transport.TaskRequest, userID string) (*domain.Task, planner.RepeatRule) {
	draft := &domain.Task{
		ID:             req.ID,
		UserID:         userID,
		Task:           req.Task,
		Category:       domain.Category(req.Category),
		TimeRequired:   req.TimeRequired,
		Date:           req.Date,
		IsScheduled:    req.IsScheduled,
		ScheduledStart: req.ScheduledStart,
	}

	var rule planner.RepeatRule
	if req.RepeatInfo != nil {
		rule = planner.RepeatRule{
			Cadence: domain.Cadence(req.RepeatInfo.Cadence),
			Count:   req.RepeatInfo.Count,
			EndDate: req.RepeatInfo.EndDate,
		}
	}
	return draft, rule
}

func parseInt(value string, fallback int) int {
	if v, err := strconv.Atoi(value); err == nil {
		return v
	}
	return fallback
}
