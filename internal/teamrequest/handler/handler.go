// Package handler provides HTTP handlers for teamrequest endpoints.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	teamrequestModel "github.com/crewmatch/staffing/internal/teamrequest/model"
	"github.com/crewmatch/staffing/internal/teamrequest/service"
)

// Handler handles HTTP requests for teamrequest endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new teamrequest handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// CreateDemand handles POST /demand/create request.
func (h *Handler) CreateDemand(c *gin.Context) {
	var req teamrequestModel.CreateDemandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.CreateDemand(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, teamrequestModel.ErrCompanyNotFound):
			notFoundResponse(c, "company account not found")
		case errors.Is(err, teamrequestModel.ErrInvalidName):
			errorResponse(c, "INVALID_REQUEST", "name is required", http.StatusBadRequest)
		case errors.Is(err, teamrequestModel.ErrNoRoles):
			errorResponse(c, "INVALID_REQUEST", "at least one role requirement is required", http.StatusBadRequest)
		case errors.Is(err, teamrequestModel.ErrInvalidRole):
			errorResponse(c, "INVALID_REQUEST", "role must not be blank", http.StatusBadRequest)
		case errors.Is(err, teamrequestModel.ErrInvalidRoleCount):
			errorResponse(c, "INVALID_REQUEST", "role count must be greater than 0", http.StatusBadRequest)
		case errors.Is(err, teamrequestModel.ErrInvalidWindow):
			errorResponse(c, "INVALID_REQUEST", "end_date must be after start_date", http.StatusBadRequest)
		default:
			h.logger.Errorw("error creating demand", "error", err)
			errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusCreated, map[string]interface{}{
		"team_request": resp,
	})
}

// GetDemand handles GET /demand/get request.
func (h *Handler) GetDemand(c *gin.Context) {
	teamRequestID, ok := parseIDQuery(c, "team_request_id")
	if !ok {
		return
	}

	resp, err := h.service.GetDemand(c.Request.Context(), teamRequestID)
	if err != nil {
		if errors.Is(err, teamrequestModel.ErrTeamRequestNotFound) {
			notFoundResponse(c, "team request not found")
			return
		}
		h.logger.Errorw("error getting demand", "error", err, "team_request_id", teamRequestID)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"team_request": resp,
	})
}

// GetRoleSummary handles GET /demand/roles request.
func (h *Handler) GetRoleSummary(c *gin.Context) {
	teamRequestID, ok := parseIDQuery(c, "team_request_id")
	if !ok {
		return
	}

	resp, err := h.service.GetRoleSummary(c.Request.Context(), teamRequestID)
	if err != nil {
		if errors.Is(err, teamrequestModel.ErrTeamRequestNotFound) {
			notFoundResponse(c, "team request not found")
			return
		}
		h.logger.Errorw("error getting role summary", "error", err, "team_request_id", teamRequestID)
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
