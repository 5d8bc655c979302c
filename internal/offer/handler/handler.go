// Package handler provides HTTP handlers for offer endpoints.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	offerModel "github.com/crewmatch/staffing/internal/offer/model"
	"github.com/crewmatch/staffing/internal/offer/service"
	teamrequestModel "github.com/crewmatch/staffing/internal/teamrequest/model"
)

// Handler handles HTTP requests for offer endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new offer handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// SendOffers handles POST /offer/send request.
func (h *Handler) SendOffers(c *gin.Context) {
	var req offerModel.SendOffersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.SendOffers(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, teamrequestModel.ErrTeamRequestNotFound):
			notFoundResponse(c, "team request not found")
		case errors.Is(err, offerModel.ErrNotCoordinator):
			errorResponse(c, "FORBIDDEN", "caller is not the responsible coordinator", http.StatusForbidden)
		case errors.Is(err, offerModel.ErrDemandComplete):
			errorResponse(c, "DEMAND_COMPLETE", "team request is complete", http.StatusConflict)
		case errors.Is(err, offerModel.ErrInvalidRole):
			errorResponse(c, "INVALID_REQUEST", "role must not be blank", http.StatusBadRequest)
		case errors.Is(err, offerModel.ErrNoCandidates):
			errorResponse(c, "INVALID_REQUEST", "candidate list must not be empty", http.StatusBadRequest)
		case errors.Is(err, offerModel.ErrNoOpenVacancy):
			errorResponse(c, "NO_OPEN_VACANCY", "no open vacancies for this role", http.StatusConflict)
		case errors.Is(err, offerModel.ErrNoNewOffers):
			errorResponse(c, "NO_NEW_OFFERS", "no new invitations created", http.StatusConflict)
		default:
			h.logger.Errorw("error sending offers", "error", err)
			errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// AcceptOffer handles POST /offer/accept request.
func (h *Handler) AcceptOffer(c *gin.Context) {
	var req offerModel.AcceptOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.AcceptOffer(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, offerModel.ErrSlotNotFound):
			notFoundResponse(c, "role slot not found")
		case errors.Is(err, teamrequestModel.ErrTeamRequestNotFound):
			notFoundResponse(c, "team request not found")
		case errors.Is(err, offerModel.ErrNoQualifyingOffer):
			errorResponse(c, "FORBIDDEN", "worker holds no active invitation for this role", http.StatusForbidden)
		case errors.Is(err, offerModel.ErrVacanciesExhausted):
			errorResponse(c, "VACANCIES_EXHAUSTED", "vacancies exhausted for this role", http.StatusConflict)
		case errors.Is(err, offerModel.ErrSlotTaken):
			errorResponse(c, "SLOT_TAKEN", "slot was taken by another worker", http.StatusConflict)
		case errors.Is(err, offerModel.ErrAlreadyInTeam):
			errorResponse(c, "ALREADY_IN_TEAM", "worker already holds a slot in this team request", http.StatusConflict)
		case errors.Is(err, offerModel.ErrScheduleClash):
			errorResponse(c, "SCHEDULE_CLASH", "assignment window overlaps another accepted team request", http.StatusConflict)
		default:
			h.logger.Errorw("error accepting offer", "error", err)
			errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"allocation": resp,
	})
}

// ListOffers handles GET /offer/list request.
func (h *Handler) ListOffers(c *gin.Context) {
	workerID, ok := parseIDQuery(c, "worker_id")
	if !ok {
		return
	}

	resp, err := h.service.ListOffersForWorker(c.Request.Context(), workerID)
	if err != nil {
		h.logger.Errorw("error listing offers", "error", err, "worker_id", workerID)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetWorkerSummary handles GET /worker/summary request.
func (h *Handler) GetWorkerSummary(c *gin.Context) {
	workerID, ok := parseIDQuery(c, "worker_id")
	if !ok {
		return
	}

	resp, err := h.service.GetWorkerSummary(c.Request.Context(), workerID)
	if err != nil {
		h.logger.Errorw("error getting worker summary", "error", err, "worker_id", workerID)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// parseIDQuery parses a required positive integer query parameter.
func parseIDQuery(c *gin.Context, name string) (int64, bool) {
	raw := c.Query(name)
	if raw == "" {
		errorResponse(c, "INVALID_REQUEST", name+" is required", http.StatusBadRequest)
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		errorResponse(c, "INVALID_REQUEST", name+" must be a positive integer", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}
