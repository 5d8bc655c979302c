package model

import "errors"

var (
	// ErrSlotNotFound indicates that the targeted role slot does not exist.
	ErrSlotNotFound = errors.New("role slot not found")
	// ErrNotCoordinator indicates the caller is not the coordinator responsible for the demand.
	ErrNotCoordinator = errors.New("caller is not the responsible coordinator")
	// ErrDemandComplete indicates the team request is COMPLETE and accepts no new offers.
	ErrDemandComplete = errors.New("team request is complete")
	// ErrInvalidRole indicates a blank role name.
	ErrInvalidRole = errors.New("role must not be blank")
	// ErrNoCandidates indicates an empty candidate list.
	ErrNoCandidates = errors.New("candidate list must not be empty")
	// ErrNoOpenVacancy indicates no open slot exists for the requested role.
	ErrNoOpenVacancy = errors.New("no open vacancies for this role")
	// ErrNoNewOffers indicates that every candidate was skipped and no invitation was created.
	ErrNoNewOffers = errors.New("no new invitations created")
	// ErrNoQualifyingOffer indicates the worker holds no active offer for the pool.
	ErrNoQualifyingOffer = errors.New("worker holds no active invitation for this role")
	// ErrVacanciesExhausted indicates every slot in the pool is already filled.
	ErrVacanciesExhausted = errors.New("vacancies exhausted for this role")
	// ErrSlotTaken indicates the resolved slot was filled concurrently.
	ErrSlotTaken = errors.New("slot was taken by another worker")
	// ErrAlreadyInTeam indicates the worker already holds a slot in this team request.
	ErrAlreadyInTeam = errors.New("worker already holds a slot in this team request")
	// ErrScheduleClash indicates an overlapping assignment window in another team request.
	ErrScheduleClash = errors.New("assignment window overlaps another accepted team request")
)
