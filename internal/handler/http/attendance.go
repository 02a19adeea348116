package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/kerjaplus/wfm-backend-go/internal/domain/attendance"
	"github.com/kerjaplus/wfm-backend-go/internal/handler/http/response"
	"github.com/kerjaplus/wfm-backend-go/internal/pkg/validator"
)

type AttendanceHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	Today(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// CheckIn implements AttendanceHandler. The event timestamp is taken
// server-side; clients only report their position.
func (h *AttendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	var checkReq attendance.CheckRequest

	if err := json.NewDecoder(r.Body).Decode(&checkReq); err != nil {
		slog.Error("CheckIn decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	checkReq.Timestamp = time.Now()

	attendanceResp, err := h.attendanceService.CheckIn(r.Context(), checkReq)
	if err != nil {
		slog.Error("CheckIn service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Checked in", attendanceResp)
}

// CheckOut implements AttendanceHandler.
func (h *AttendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	var checkReq attendance.CheckRequest

	if err := json.NewDecoder(r.Body).Decode(&checkReq); err != nil {
		slog.Error("CheckOut decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	checkReq.Timestamp = time.Now()

	attendanceResp, err := h.attendanceService.CheckOut(r.Context(), checkReq)
	if err != nil {
		slog.Error("CheckOut service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Checked out", attendanceResp)
}

// Today implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Today(w http.ResponseWriter, r *http.Request) {
	date := time.Now()
	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		parsed, ok := validator.IsValidDate(dateStr)
		if !ok {
			response.BadRequest(w, "date must be a calendar date in YYYY-MM-DD format", nil)
			return
		}
		date = parsed
	}

	attendanceResp, err := h.attendanceService.Today(r.Context(), date)
	if err != nil {
		slog.Error("Today service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, attendanceResp)
}
