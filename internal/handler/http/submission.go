package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/kerjaplus/wfm-backend-go/internal/domain/submission"
	"github.com/kerjaplus/wfm-backend-go/internal/handler/http/response"
)

type SubmissionHandler interface {
	CreateSick(w http.ResponseWriter, r *http.Request)
	CreatePermission(w http.ResponseWriter, r *http.Request)
	CreateLeave(w http.ResponseWriter, r *http.Request)
	CreateMutation(w http.ResponseWriter, r *http.Request)
	CreateChangeShift(w http.ResponseWriter, r *http.Request)
	Decide(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type SubmissionHandlerImpl struct {
	submissionService submission.SubmissionService
}

func NewSubmissionHandler(submissionService submission.SubmissionService) SubmissionHandler {
	return &SubmissionHandlerImpl{submissionService: submissionService}
}

// CreateSick implements SubmissionHandler.
func (h *SubmissionHandlerImpl) CreateSick(w http.ResponseWriter, r *http.Request) {
	h.createPermission(w, r, submission.TypeSick)
}

// CreatePermission implements SubmissionHandler.
func (h *SubmissionHandlerImpl) CreatePermission(w http.ResponseWriter, r *http.Request) {
	h.createPermission(w, r, submission.TypePermission)
}

func (h *SubmissionHandlerImpl) createPermission(w http.ResponseWriter, r *http.Request, submissionType submission.Type) {
	var createReq submission.CreatePermissionRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("CreatePermission decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	createReq.Type = submissionType

	submissionResp, err := h.submissionService.CreatePermission(r.Context(), createReq)
	if err != nil {
		slog.Error("CreatePermission service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Submission created", submissionResp)
}

// CreateLeave implements SubmissionHandler.
func (h *SubmissionHandlerImpl) CreateLeave(w http.ResponseWriter, r *http.Request) {
	var createReq submission.CreateLeaveRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("CreateLeave decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	submissionResp, err := h.submissionService.CreateLeave(r.Context(), createReq)
	if err != nil {
		slog.Error("CreateLeave service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Submission created", submissionResp)
}

// CreateMutation implements SubmissionHandler.
func (h *SubmissionHandlerImpl) CreateMutation(w http.ResponseWriter, r *http.Request) {
	var createReq submission.CreateMutationRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("CreateMutation decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	submissionResp, err := h.submissionService.CreateMutation(r.Context(), createReq)
	if err != nil {
		slog.Error("CreateMutation service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Submission created", submissionResp)
}

// CreateChangeShift implements SubmissionHandler.
func (h *SubmissionHandlerImpl) CreateChangeShift(w http.ResponseWriter, r *http.Request) {
	var createReq submission.CreateChangeShiftRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("CreateChangeShift decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	submissionResp, err := h.submissionService.CreateChangeShift(r.Context(), createReq)
	if err != nil {
		slog.Error("CreateChangeShift service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Submission created", submissionResp)
}

// Decide implements SubmissionHandler.
func (h *SubmissionHandlerImpl) Decide(w http.ResponseWriter, r *http.Request) {
	var decideReq submission.DecideRequest

	if err := json.NewDecoder(r.Body).Decode(&decideReq); err != nil {
		slog.Error("Decide decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	decideReq.SubmissionID = chi.URLParam(r, "submissionID")

	submissionResp, err := h.submissionService.Decide(r.Context(), decideReq)
	if err != nil {
		slog.Error("Decide service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Submission decided", submissionResp)
}

// History implements SubmissionHandler.
func (h *SubmissionHandlerImpl) History(w http.ResponseWriter, r *http.Request) {
	filter := submission.HistoryFilter{Year: time.Now().Year()}

	if yearStr := r.URL.Query().Get("year"); yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			response.BadRequest(w, "year must be a number", nil)
			return
		}
		filter.Year = year
	}
	if statusStr := r.URL.Query().Get("status"); statusStr != "" {
		status := submission.Status(statusStr)
		filter.Status = &status
	}

	submissions, err := h.submissionService.History(r.Context(), filter)
	if err != nil {
		slog.Error("History service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, submissions)
}

// Delete implements SubmissionHandler.
func (h *SubmissionHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	submissionID := chi.URLParam(r, "submissionID")

	if err := h.submissionService.Delete(r.Context(), submissionID); err != nil {
		slog.Error("DeleteSubmission service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Submission deleted", nil)
}
