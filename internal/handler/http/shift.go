package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/kerjaplus/wfm-backend-go/internal/domain/shift"
	"github.com/kerjaplus/wfm-backend-go/internal/handler/http/response"
	"github.com/kerjaplus/wfm-backend-go/internal/pkg/validator"
)

type ShiftHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Assign(w http.ResponseWriter, r *http.Request)
	ListAssignments(w http.ResponseWriter, r *http.Request)
	UpdateAssignment(w http.ResponseWriter, r *http.Request)
	GetShiftInfo(w http.ResponseWriter, r *http.Request)
}

type ShiftHandlerImpl struct {
	shiftService shift.ShiftService
}

func NewShiftHandler(shiftService shift.ShiftService) ShiftHandler {
	return &ShiftHandlerImpl{shiftService: shiftService}
}

// Create implements ShiftHandler.
func (h *ShiftHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq shift.CreateShiftRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("CreateShift decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	shiftResp, err := h.shiftService.CreateShift(r.Context(), createReq)
	if err != nil {
		slog.Error("CreateShift service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Shift created", shiftResp)
}

// Delete implements ShiftHandler.
func (h *ShiftHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	shiftID := chi.URLParam(r, "shiftID")

	if err := h.shiftService.DeleteShift(r.Context(), shiftID); err != nil {
		slog.Error("DeleteShift service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift deleted", nil)
}

// List implements ShiftHandler.
func (h *ShiftHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	shifts, err := h.shiftService.ListShifts(r.Context())
	if err != nil {
		slog.Error("ListShifts service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, shifts)
}

// Assign implements ShiftHandler.
func (h *ShiftHandlerImpl) Assign(w http.ResponseWriter, r *http.Request) {
	var assignReq shift.AssignShiftRequest

	if err := json.NewDecoder(r.Body).Decode(&assignReq); err != nil {
		slog.Error("AssignShift decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	assignmentResp, err := h.shiftService.Assign(r.Context(), assignReq)
	if err != nil {
		slog.Error("AssignShift service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Shift assigned", assignmentResp)
}

// ListAssignments implements ShiftHandler.
func (h *ShiftHandlerImpl) ListAssignments(w http.ResponseWriter, r *http.Request) {
	var date *time.Time
	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		parsed, ok := validator.IsValidDate(dateStr)
		if !ok {
			response.BadRequest(w, "date must be a calendar date in YYYY-MM-DD format", nil)
			return
		}
		date = &parsed
	}

	assignments, err := h.shiftService.ListAssignments(r.Context(), date)
	if err != nil {
		slog.Error("ListAssignments service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, assignments)
}

// UpdateAssignment implements ShiftHandler.
func (h *ShiftHandlerImpl) UpdateAssignment(w http.ResponseWriter, r *http.Request) {
	var assignReq shift.AssignShiftRequest

	if err := json.NewDecoder(r.Body).Decode(&assignReq); err != nil {
		slog.Error("UpdateAssignment decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	assignmentResp, err := h.shiftService.UpdateAssignment(r.Context(), assignReq)
	if err != nil {
		slog.Error("UpdateAssignment service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift assignment updated", assignmentResp)
}

// GetShiftInfo implements ShiftHandler.
func (h *ShiftHandlerImpl) GetShiftInfo(w http.ResponseWriter, r *http.Request) {
	date := time.Now()
	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		parsed, ok := validator.IsValidDate(dateStr)
		if !ok {
			response.BadRequest(w, "date must be a calendar date in YYYY-MM-DD format", nil)
			return
		}
		date = parsed
	}

	infoResp, err := h.shiftService.GetShiftInfo(r.Context(), date)
	if err != nil {
		slog.Error("GetShiftInfo service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, infoResp)
}
