package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/craftbridge/platform_be_craftbridge/internal/models"
	"github.com/craftbridge/platform_be_craftbridge/internal/store"
)

type BidService struct {
	bids     store.Bids
	projects store.Projects
}

func NewBidService(st *store.Store) *BidService {
	return &BidService{bids: st.Bids, projects: st.Projects}
}

type SubmitBidInput struct {
	ProjectID        uuid.UUID
	ProposedBudget   float64
	ProposedTimeline string
	Message          string
}

// Submit creates a pending bid. Uniqueness of the (project, engineer) pair is
// enforced by the store's unique index, not an application-level pre-check, so
// concurrent submissions cannot slip through.
func (s *BidService) Submit(ctx context.Context, actor *models.User, in SubmitBidInput) (*models.Bid, error) {
	if !isEngineer(actor) {
		return nil, fmt.Errorf("%w: only engineer accounts can bid", ErrForbidden)
	}
	if in.ProposedBudget < 0 {
		return nil, fmt.Errorf("%w: proposed budget must not be negative", ErrValidation)
	}
	if in.ProposedTimeline == "" {
		return nil, fmt.Errorf("%w: proposed timeline is required", ErrValidation)
	}

	p, err := s.projects.ByID(ctx, in.ProjectID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("%w: project", ErrNotFound)
		}
		return nil, err
	}
	if p.Status != models.ProjectStatusOpen {
		return nil, fmt.Errorf("%w: project is not accepting bids", ErrInvalidState)
	}

	b := &models.Bid{
		ProjectID:        in.ProjectID,
		EngineerID:       actor.ID,
		ProposedBudget:   in.ProposedBudget,
		ProposedTimeline: in.ProposedTimeline,
		Message:          in.Message,
		Status:           models.BidStatusPending,
	}
	if err := s.bids.Create(ctx, b); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, fmt.Errorf("%w: you have already bid on this project", ErrConflict)
		}
		return nil, err
	}
	return b, nil
}

func (s *BidService) ListByProject(ctx context.Context, actor *models.User, projectID uuid.UUID) ([]models.Bid, error) {
	p, err := s.projects.ByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("%w: project", ErrNotFound)
		}
		return nil, err
	}
	if !canViewBids(actor, p) {
		return nil, fmt.Errorf("%w: not allowed to view these bids", ErrForbidden)
	}
	return s.bids.ByProject(ctx, projectID)
}

func (s *BidService) ListMine(ctx context.Context, actor *models.User) ([]models.Bid, error) {
	if !isEngineer(actor) {
		return nil, fmt.Errorf("%w: only engineer accounts have bids", ErrForbidden)
	}
	return s.bids.ByEngineer(ctx, actor.ID)
}

// SetStatus decides a pending bid. Accepting also moves the project to
// in_progress; a project already in progress cannot take a second acceptance.
// Sibling bids stay pending and can still be rejected or withdrawn.
func (s *BidService) SetStatus(ctx context.Context, actor *models.User, bidID uuid.UUID, newStatus string) (*models.Bid, error) {
	status := models.BidStatus(newStatus)
	if status != models.BidStatusAccepted && status != models.BidStatusRejected {
		return nil, fmt.Errorf("%w: status must be accepted or rejected", ErrValidation)
	}

	b, err := s.bids.ByID(ctx, bidID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("%w: bid", ErrNotFound)
		}
		return nil, err
	}

	p, err := s.projects.ByID(ctx, b.ProjectID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("%w: project", ErrNotFound)
		}
		return nil, err
	}
	if !canDecideBid(actor, p) {
		return nil, fmt.Errorf("%w: only the project owner can decide bids", ErrForbidden)
	}
	if b.Status != models.BidStatusPending {
		return nil, fmt.Errorf("%w: bid is already %s", ErrInvalidState, b.Status)
	}
	if status == models.BidStatusAccepted && p.Status != models.ProjectStatusOpen {
		return nil, fmt.Errorf("%w: project is not open", ErrInvalidState)
	}

	b.Status = status
	if err := s.bids.Save(ctx, b); err != nil {
		return nil, err
	}

	if status == models.BidStatusAccepted {
		p.Status = models.ProjectStatusInProgress
		if err := s.projects.Save(ctx, p); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (s *BidService) Withdraw(ctx context.Context, actor *models.User, bidID uuid.UUID) error {
	b, err := s.bids.ByID(ctx, bidID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("%w: bid", ErrNotFound)
		}
		return err
	}
	if actor == nil || actor.ID != b.EngineerID {
		return fmt.Errorf("%w: not your bid", ErrForbidden)
	}
	if b.Status == models.BidStatusAccepted {
		return fmt.Errorf("%w: accepted bids cannot be withdrawn", ErrInvalidState)
	}
	return s.bids.Delete(ctx, bidID)
}
