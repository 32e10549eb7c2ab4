package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/ligaescolar/kings-api/internal/domain/request"
	"github.com/ligaescolar/kings-api/internal/domain/team"
	"github.com/ligaescolar/kings-api/internal/platform/id"
	"github.com/ligaescolar/kings-api/internal/platform/logging"
)

type SubmitRequestInput struct {
	Type   string
	UserID string
	Data   json.RawMessage
}

type ReviewRequestInput struct {
	RequestID  string
	Status     string
	ReviewerID string
}

// RequestService runs the generic approval inbox. Reviewing a request only
// stamps it; whatever the request asked for still needs a separate admin
// action.
type RequestService struct {
	requestRepo request.Repository
	teamRepo    team.Repository
	idGen       id.Generator
	logger      *logging.Logger
	now         func() time.Time
}

func NewRequestService(requestRepo request.Repository, teamRepo team.Repository, idGen id.Generator, logger *logging.Logger) *RequestService {
	return &RequestService{
		requestRepo: requestRepo,
		teamRepo:    teamRepo,
		idGen:       idGen,
		logger:      logger,
		now:         time.Now,
	}
}

func (s *RequestService) ListRequests(ctx context.Context, status string) ([]request.Request, error) {
	requests, err := s.requestRepo.List(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}

	return requests, nil
}

func (s *RequestService) SubmitRequest(ctx context.Context, input SubmitRequestInput) (request.Request, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RequestService.SubmitRequest")
	defer span.End()

	if !request.ValidType(input.Type) {
		return request.Request{}, fmt.Errorf("%w: unknown request type %q", ErrInvalidInput, input.Type)
	}
	if strings.TrimSpace(input.UserID) == "" {
		return request.Request{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	teamID := ""
	if t, exists, err := s.teamRepo.GetByOwner(ctx, input.UserID); err != nil {
		return request.Request{}, fmt.Errorf("get team by owner: %w", err)
	} else if exists {
		teamID = t.ID
	}

	requestID, err := s.idGen.NewID()
	if err != nil {
		return request.Request{}, fmt.Errorf("generate request id: %w", err)
	}

	rq := request.Request{
		ID:        requestID,
		Type:      input.Type,
		UserID:    input.UserID,
		TeamID:    teamID,
		Data:      input.Data,
		Status:    request.StatusPending,
		CreatedAt: s.now().UTC(),
	}
	if err := s.requestRepo.Create(ctx, rq); err != nil {
		return request.Request{}, fmt.Errorf("create request: %w", err)
	}

	s.logger.InfoContext(ctx, "request submitted", "request_id", rq.ID, "type", rq.Type, "user_id", rq.UserID)

	return rq, nil
}

// ReviewRequest stamps status and reviewer. It deliberately performs no
// domain side effect and no pending guard; a re-review rewrites the stamp.
func (s *RequestService) ReviewRequest(ctx context.Context, input ReviewRequestInput) (request.Request, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RequestService.ReviewRequest")
	defer span.End()

	if !request.ValidReviewStatus(input.Status) {
		return request.Request{}, fmt.Errorf("%w: review status must be approved or rejected", ErrInvalidInput)
	}

	rq, exists, err := s.requestRepo.GetByID(ctx, input.RequestID)
	if err != nil {
		return request.Request{}, fmt.Errorf("get request: %w", err)
	}
	if !exists {
		return request.Request{}, fmt.Errorf("%w: request=%s", ErrNotFound, input.RequestID)
	}

	if err := s.requestRepo.UpdateReview(ctx, rq.ID, input.Status, input.ReviewerID); err != nil {
		return request.Request{}, fmt.Errorf("update request review: %w", err)
	}

	rq.Status = input.Status
	rq.ReviewedBy = input.ReviewerID

	s.logger.InfoContext(ctx, "request reviewed", "request_id", rq.ID, "status", rq.Status, "reviewer_id", input.ReviewerID)

	return rq, nil
}

func (s *RequestService) CountPending(ctx context.Context) (int, error) {
	count, err := s.requestRepo.CountPending(ctx)
	if err != nil {
		return 0, fmt.Errorf("count pending requests: %w", err)
	}

	return count, nil
}
