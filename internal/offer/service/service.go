// Package service provides business logic layer for the offer module.
package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	accountRepository "github.com/crewmatch/staffing/internal/account/repository"
	"github.com/crewmatch/staffing/internal/notification"
	offerModel "github.com/crewmatch/staffing/internal/offer/model"
	"github.com/crewmatch/staffing/internal/offer/repository"
	teamrequestModel "github.com/crewmatch/staffing/internal/teamrequest/model"
	teamrequestRepository "github.com/crewmatch/staffing/internal/teamrequest/repository"
)

// Service defines the interface for offer business logic operations.
type Service interface {
	// SendOffers batch-creates invitations for a role pool.
	SendOffers(ctx context.Context, req *offerModel.SendOffersRequest) (*offerModel.SendOffersResponse, error)

	// AcceptOffer atomically assigns the worker to an open slot of the
	// invited pool, enforcing team- and schedule-exclusivity.
	AcceptOffer(ctx context.Context, req *offerModel.AcceptOfferRequest) (*offerModel.AllocationResult, error)

	// ListOffersForWorker returns the worker's reconciled offer view.
	ListOffersForWorker(ctx context.Context, workerID int64) (*offerModel.ListOffersResponse, error)

	// GetWorkerSummary returns derived profile metrics for a worker.
	GetWorkerSummary(ctx context.Context, workerID int64) (*offerModel.WorkerSummaryResponse, error)
}

type service struct {
	repo     repository.Repository
	requests teamrequestRepository.Repository
	accounts accountRepository.Repository
	db       *gorm.DB
	logger   *zap.SugaredLogger
	notifier notification.Notifier
}

// New creates a new offer service instance.
func New(
	repo repository.Repository,
	requests teamrequestRepository.Repository,
	accounts accountRepository.Repository,
	db *gorm.DB,
	logger *zap.SugaredLogger,
	notifier notification.Notifier,
) Service {
	return &service{
		repo:     repo,
		requests: requests,
		accounts: accounts,
		db:       db,
		logger:   logger,
		notifier: notifier,
	}
}

// SendOffers batch-creates invitations for a role pool.
func (s *service) SendOffers(
	ctx context.Context,
	req *offerModel.SendOffersRequest,
) (*offerModel.SendOffersResponse, error) {
	var created int
	var invitedWorkers []int64
	var requestName string

	// Duplicate-offer prevention must share the transaction with the insert.
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx)
		txRequests := teamrequestRepository.New(tx)

		request, txErr := txRequests.GetByID(ctx, req.TeamRequestID)
		if txErr != nil {
			return txErr
		}
		requestName = request.Name

		if request.CoordinatorID == nil || *request.CoordinatorID != req.CoordinatorID {
			return offerModel.ErrNotCoordinator
		}

		if request.State == teamrequestModel.StateComplete {
			return offerModel.ErrDemandComplete
		}

		role := teamrequestModel.NormalizeRole(req.Role)
		if role == "" {
			return offerModel.ErrInvalidRole
		}

		if len(req.CandidateIDs) == 0 {
			return offerModel.ErrNoCandidates
		}

		openSlots, txErr := txRepo.GetOpenPoolSlots(ctx, req.TeamRequestID, role)
		if txErr != nil {
			return txErr
		}
		if len(openSlots) == 0 {
			return offerModel.ErrNoOpenVacancy
		}

		assignedWorkers, txErr := txRepo.GetAssignedWorkerIDs(ctx, req.TeamRequestID)
		if txErr != nil {
			return txErr
		}

		offers, workers, txErr := s.buildOffers(ctx, txRepo, openSlots, req.CandidateIDs, assignedWorkers)
		if txErr != nil {
			return txErr
		}
		if len(offers) == 0 {
			return offerModel.ErrNoNewOffers
		}

		if txErr := txRepo.CreateOffers(ctx, offers); txErr != nil {
			return txErr
		}

		created = len(offers)
		invitedWorkers = workers
		return nil
	})

	if err != nil {
		return nil, err
	}

	// One notification per distinct invited worker, not per offer.
	for _, workerID := range invitedWorkers {
		s.notifier.Notify(ctx, workerID,
			fmt.Sprintf("You have been invited to %q as %s", requestName, req.Role),
			notification.KindOfferReceived, req.TeamRequestID)
	}

	s.logger.Infow("offers sent",
		"team_request_id", req.TeamRequestID,
		"role", req.Role,
		"created", created,
		"invited_workers", len(invitedWorkers),
	)

	return &offerModel.SendOffersResponse{Created: created}, nil
}

// buildOffers collects new offers over the (slot, candidate) grid, skipping
// candidates already placed in the team, unknown workers, and pairs that
// already hold an active offer. A candidate receives at most one new offer
// per call; repeated calls may spread a worker's offers across pool slots.
// Returns the distinct invited worker ids.
func (s *service) buildOffers(
	ctx context.Context,
	txRepo repository.Repository,
	openSlots []teamrequestModel.RoleSlot,
	candidateIDs []int64,
	assignedWorkers []int64,
) ([]offerModel.Offer, []int64, error) {
	assigned := make(map[int64]bool, len(assignedWorkers))
	for _, id := range assignedWorkers {
		assigned[id] = true
	}

	workerExists := make(map[int64]bool)
	invited := make(map[int64]bool)

	var offers []offerModel.Offer
	var invitedOrder []int64

	for _, slot := range openSlots {
		for _, candidateID := range candidateIDs {
			if assigned[candidateID] || invited[candidateID] {
				continue
			}

			exists, ok := workerExists[candidateID]
			if !ok {
				var err error
				exists, err = s.accounts.ExistsWorker(ctx, candidateID)
				if err != nil {
					return nil, nil, err
				}
				workerExists[candidateID] = exists
			}
			if !exists {
				continue
			}

			hasOffer, err := txRepo.HasActiveOffer(ctx, slot.ID, candidateID)
			if err != nil {
				return nil, nil, err
			}
			if hasOffer {
				continue
			}

			offers = append(offers, offerModel.Offer{
				SlotID:    slot.ID,
				WorkerID:  candidateID,
				Active:    true,
				CreatedAt: time.Now(),
			})
			invited[candidateID] = true
			invitedOrder = append(invitedOrder, candidateID)
		}
	}

	return offers, invitedOrder, nil
}

// AcceptOffer atomically assigns the worker to an open slot of the invited pool.
//
// Validation failures leave no partial state: the transaction rolls back
// before any mutation. The guarded slot update resolves concurrent
// acceptances of the same slot to exactly one winner.
func (s *service) AcceptOffer(
	ctx context.Context,
	req *offerModel.AcceptOfferRequest,
) (*offerModel.AllocationResult, error) {
	var result *offerModel.AllocationResult
	var completedRequest *teamrequestModel.TeamRequest

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx)
		txRequests := teamrequestRepository.New(tx)

		target, txErr := txRepo.GetSlotByID(ctx, req.SlotID)
		if txErr != nil {
			return txErr
		}

		request, txErr := txRequests.GetByID(ctx, target.TeamRequestID)
		if txErr != nil {
			return txErr
		}

		role := teamrequestModel.NormalizeRole(target.Role)

		// Any active offer within the pool qualifies; pool slots are interchangeable.
		qualified, txErr := txRepo.HasActiveOfferInPool(ctx, request.ID, role, req.WorkerID)
		if txErr != nil {
			return txErr
		}
		if !qualified {
			return offerModel.ErrNoQualifyingOffer
		}

		if !target.Open() {
			// The invited slot was taken; fall back to a sibling slot of the pool.
			openSlots, siblingErr := txRepo.GetOpenPoolSlots(ctx, request.ID, role)
			if siblingErr != nil {
				return siblingErr
			}
			if len(openSlots) == 0 {
				return offerModel.ErrVacanciesExhausted
			}
			target = &openSlots[0]
		}

		if !target.Open() {
			return offerModel.ErrSlotTaken
		}

		assignedWorkers, txErr := txRepo.GetAssignedWorkerIDs(ctx, request.ID)
		if txErr != nil {
			return txErr
		}
		if workerHoldsSlot(assignedWorkers, req.WorkerID) {
			return offerModel.ErrAlreadyInTeam
		}

		if request.StartDate != nil && request.EndDate != nil {
			assignments, scheduleErr := txRepo.GetWorkerAssignments(ctx, req.WorkerID)
			if scheduleErr != nil {
				return scheduleErr
			}
			if overlapsSchedule(assignments, request.ID, *request.StartDate, *request.EndDate, target.ID) {
				return offerModel.ErrScheduleClash
			}
		}

		acceptedAt := time.Now()
		assignedOK, txErr := txRepo.AssignSlot(ctx, target.ID, req.WorkerID, acceptedAt)
		if txErr != nil {
			return txErr
		}
		if !assignedOK {
			return offerModel.ErrSlotTaken
		}

		// The worker no longer needs other invitations for the same pool.
		if txErr := txRepo.DeactivatePoolOffers(ctx, request.ID, role, req.WorkerID); txErr != nil {
			return txErr
		}

		openCount, txErr := txRepo.CountOpenSlots(ctx, request.ID)
		if txErr != nil {
			return txErr
		}

		state := request.State
		if openCount == 0 {
			transitioned, completeErr := txRequests.MarkComplete(ctx, request.ID)
			if completeErr != nil {
				return completeErr
			}
			state = teamrequestModel.StateComplete
			if transitioned {
				completedRequest = request
			}
		}

		result = &offerModel.AllocationResult{
			SlotID:        target.ID,
			TeamRequestID: request.ID,
			Role:          target.Role,
			WorkerID:      req.WorkerID,
			AcceptedAt:    acceptedAt.Format(time.RFC3339),
			RequestState:  state,
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	// Sink failures must not affect the committed allocation.
	if completedRequest != nil {
		s.notifier.Notify(ctx, completedRequest.CompanyID,
			fmt.Sprintf("Team request %q is fully staffed", completedRequest.Name),
			notification.KindRequestCompleted, completedRequest.ID)
	}

	s.logger.Infow("offer accepted",
		"slot_id", result.SlotID,
		"team_request_id", result.TeamRequestID,
		"worker_id", result.WorkerID,
		"request_state", result.RequestState,
	)

	return result, nil
}

// ListOffersForWorker returns the worker's reconciled offer view.
func (s *service) ListOffersForWorker(
	ctx context.Context,
	workerID int64,
) (*offerModel.ListOffersResponse, error) {
	offers, err := s.repo.GetWorkerOffers(ctx, workerID)
	if err != nil {
		return nil, err
	}

	assignments, err := s.repo.GetWorkerAssignments(ctx, workerID)
	if err != nil {
		return nil, err
	}

	views := reconcileOffers(offers, assignments, time.Now())

	return &offerModel.ListOffersResponse{Offers: views}, nil
}

// GetWorkerSummary returns derived profile metrics for a worker: the number
// of open invitations and the most recent employer's company name.
func (s *service) GetWorkerSummary(
	ctx context.Context,
	workerID int64,
) (*offerModel.WorkerSummaryResponse, error) {
	offers, err := s.repo.GetWorkerOffers(ctx, workerID)
	if err != nil {
		return nil, err
	}

	assignments, err := s.repo.GetWorkerAssignments(ctx, workerID)
	if err != nil {
		return nil, err
	}

	openInvitations := 0
	for _, view := range reconcileOffers(offers, assignments, time.Now()) {
		if view.Status == offerModel.StatusOpen {
			openInvitations++
		}
	}

	employer := ""
	if len(assignments) > 0 {
		// Assignments arrive most-recent-first.
		company, companyErr := s.accounts.GetByID(ctx, assignments[0].CompanyID)
		if companyErr == nil {
			employer = company.Name
		}
	}

	return &offerModel.WorkerSummaryResponse{
		OpenInvitations: openInvitations,
		CurrentEmployer: employer,
	}, nil
}
