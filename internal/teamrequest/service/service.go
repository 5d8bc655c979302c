// Package service provides business logic layer for the teamrequest module.
package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	accountModel "github.com/crewmatch/staffing/internal/account/model"
	accountRepository "github.com/crewmatch/staffing/internal/account/repository"
	teamrequestModel "github.com/crewmatch/staffing/internal/teamrequest/model"
	"github.com/crewmatch/staffing/internal/teamrequest/repository"
)

// Service defines the interface for teamrequest business logic operations.
type Service interface {
	// CreateDemand creates a new team request with its role slots and
	// assigns the least-loaded coordinator.
	CreateDemand(
		ctx context.Context,
		req *teamrequestModel.CreateDemandRequest,
	) (*teamrequestModel.TeamRequestResponse, error)

	// GetDemand returns a team request with its slots.
	GetDemand(ctx context.Context, teamRequestID int64) (*teamrequestModel.TeamRequestResponse, error)

	// GetRoleSummary returns the per-role aggregate projection of a demand.
	GetRoleSummary(ctx context.Context, teamRequestID int64) (*teamrequestModel.RoleSummaryResponse, error)

	// PickCoordinator selects the least-loaded coordinator account.
	// Returns nil when no coordinator accounts exist.
	PickCoordinator(ctx context.Context) (*int64, error)
}

type service struct {
	repo     repository.Repository
	accounts accountRepository.Repository
	db       *gorm.DB
	logger   *zap.SugaredLogger
}

// New creates a new teamrequest service instance.
func New(
	repo repository.Repository,
	accounts accountRepository.Repository,
	db *gorm.DB,
	logger *zap.SugaredLogger,
) Service {
	return &service{
		repo:     repo,
		accounts: accounts,
		db:       db,
		logger:   logger,
	}
}

// CreateDemand creates a new team request with its role slots and assigns
// the least-loaded coordinator.
func (s *service) CreateDemand(
	ctx context.Context,
	req *teamrequestModel.CreateDemandRequest,
) (*teamrequestModel.TeamRequestResponse, error) {
	if err := validateCreateDemand(req); err != nil {
		return nil, err
	}

	company, err := s.accounts.GetByID(ctx, req.CompanyID)
	if err != nil {
		if errors.Is(err, accountModel.ErrAccountNotFound) {
			return nil, teamrequestModel.ErrCompanyNotFound
		}
		return nil, err
	}
	if company.Type != accountModel.TypeCompany {
		return nil, teamrequestModel.ErrCompanyNotFound
	}

	// Coordinator selection is one-shot at creation time; no rebalancing later.
	coordinatorID, err := s.PickCoordinator(ctx)
	if err != nil {
		return nil, err
	}

	request := &teamrequestModel.TeamRequest{
		CompanyID:     req.CompanyID,
		Name:          req.Name,
		Description:   req.Description,
		Location:      req.Location,
		State:         teamrequestModel.StateIncomplete,
		CoordinatorID: coordinatorID,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		CreatedAt:     time.Now(),
	}

	var slots []teamrequestModel.RoleSlot
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx)

		if txErr := txRepo.Create(ctx, request); txErr != nil {
			return txErr
		}

		for _, role := range req.Roles {
			for i := 0; i < role.Count; i++ {
				slots = append(slots, teamrequestModel.RoleSlot{
					TeamRequestID: request.ID,
					Role:          role.Role,
					Compensation:  role.Compensation,
					CreatedAt:     time.Now(),
				})
			}
		}

		return txRepo.CreateSlots(ctx, slots)
	})

	if err != nil {
		return nil, err
	}

	s.logger.Infow("demand created",
		"team_request_id", request.ID,
		"company_id", request.CompanyID,
		"coordinator_id", coordinatorID,
		"slots", len(slots),
	)

	return buildResponse(request, company.Name, slots), nil
}

// validateCreateDemand validates the create demand request.
func validateCreateDemand(req *teamrequestModel.CreateDemandRequest) error {
	if req.Name == "" {
		return teamrequestModel.ErrInvalidName
	}
	if len(req.Roles) == 0 {
		return teamrequestModel.ErrNoRoles
	}
	for _, role := range req.Roles {
		if teamrequestModel.NormalizeRole(role.Role) == "" {
			return teamrequestModel.ErrInvalidRole
		}
		if role.Count <= 0 {
			return teamrequestModel.ErrInvalidRoleCount
		}
	}
	if req.StartDate != nil && req.EndDate != nil && !req.EndDate.After(*req.StartDate) {
		return teamrequestModel.ErrInvalidWindow
	}
	return nil
}

// PickCoordinator selects the coordinator with the fewest assigned team
// requests; ties break by lowest account id. Pure query-time aggregation,
// no cached counters.
func (s *service) PickCoordinator(ctx context.Context) (*int64, error) {
	coordinators, err := s.accounts.ListCoordinators(ctx)
	if err != nil {
		return nil, err
	}
	if len(coordinators) == 0 {
		return nil, nil
	}

	loads, err := s.repo.GetCoordinatorLoads(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[int64]int64, len(loads))
	for _, load := range loads {
		counts[load.CoordinatorID] = load.Count
	}

	// Coordinators arrive ordered by id, so the first minimum wins ties.
	best := coordinators[0].ID
	bestCount := counts[best]
	for _, coordinator := range coordinators[1:] {
		if counts[coordinator.ID] < bestCount {
			best = coordinator.ID
			bestCount = counts[coordinator.ID]
		}
	}

	return &best, nil
}

// GetDemand returns a team request with its slots.
func (s *service) GetDemand(
	ctx context.Context,
	teamRequestID int64,
) (*teamrequestModel.TeamRequestResponse, error) {
	request, err := s.repo.GetByID(ctx, teamRequestID)
	if err != nil {
		return nil, err
	}

	slots, err := s.repo.GetSlots(ctx, teamRequestID)
	if err != nil {
		return nil, err
	}

	companyName := ""
	if company, companyErr := s.accounts.GetByID(ctx, request.CompanyID); companyErr == nil {
		companyName = company.Name
	}

	return buildResponse(request, companyName, slots), nil
}

// GetRoleSummary returns the per-role aggregate projection of a demand.
func (s *service) GetRoleSummary(
	ctx context.Context,
	teamRequestID int64,
) (*teamrequestModel.RoleSummaryResponse, error) {
	if _, err := s.repo.GetByID(ctx, teamRequestID); err != nil {
		return nil, err
	}

	roles, err := s.repo.GetRoleSummary(ctx, teamRequestID)
	if err != nil {
		return nil, err
	}

	return &teamrequestModel.RoleSummaryResponse{
		TeamRequestID: teamRequestID,
		Roles:         roles,
	}, nil
}

// buildResponse assembles a team request response with its slots.
func buildResponse(
	request *teamrequestModel.TeamRequest,
	companyName string,
	slots []teamrequestModel.RoleSlot,
) *teamrequestModel.TeamRequestResponse {
	resp := &teamrequestModel.TeamRequestResponse{
		ID:            request.ID,
		CompanyID:     request.CompanyID,
		CompanyName:   companyName,
		Name:          request.Name,
		Description:   request.Description,
		Location:      request.Location,
		State:         request.State,
		CoordinatorID: request.CoordinatorID,
		CreatedAt:     request.CreatedAt.Format(time.RFC3339),
		Slots:         make([]teamrequestModel.RoleSlotResponse, 0, len(slots)),
	}

	if request.StartDate != nil {
		resp.StartDate = request.StartDate.Format(time.RFC3339)
	}
	if request.EndDate != nil {
		resp.EndDate = request.EndDate.Format(time.RFC3339)
	}

	for _, slot := range slots {
		slotResp := teamrequestModel.RoleSlotResponse{
			ID:           slot.ID,
			Role:         slot.Role,
			Compensation: slot.Compensation,
			WorkerID:     slot.WorkerID,
		}
		if slot.AcceptedAt != nil {
			slotResp.AcceptedAt = slot.AcceptedAt.Format(time.RFC3339)
		}
		resp.Slots = append(resp.Slots, slotResp)
	}

	return resp
}
