package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/craftbridge/platform_be_craftbridge/internal/models"
	"github.com/craftbridge/platform_be_craftbridge/internal/store"
)

type ChatService struct {
	messages store.Messages
	projects store.Projects
	bids     store.Bids
}

func NewChatService(st *store.Store) *ChatService {
	return &ChatService{messages: st.Messages, projects: st.Projects, bids: st.Bids}
}

func (s *ChatService) Post(ctx context.Context, actor *models.User, projectID uuid.UUID, body string) (*models.ChatMessage, error) {
	if body == "" {
		return nil, fmt.Errorf("%w: message body is required", ErrValidation)
	}
	if err := s.requireParticipant(ctx, actor, projectID); err != nil {
		return nil, err
	}

	m := &models.ChatMessage{
		ProjectID: projectID,
		SenderID:  actor.ID,
		Body:      body,
	}
	if err := s.messages.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *ChatService) List(ctx context.Context, actor *models.User, projectID uuid.UUID) ([]models.ChatMessage, error) {
	if err := s.requireParticipant(ctx, actor, projectID); err != nil {
		return nil, err
	}
	return s.messages.ByProject(ctx, projectID)
}

// requireParticipant gates the chat to the project owner and engineers holding
// an accepted bid on it.
func (s *ChatService) requireParticipant(ctx context.Context, actor *models.User, projectID uuid.UUID) error {
	p, err := s.projects.ByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("%w: project", ErrNotFound)
		}
		return err
	}
	if actor == nil {
		return fmt.Errorf("%w: not a participant of this project", ErrForbidden)
	}
	if actor.ID == p.CommunityID {
		return nil
	}

	b, err := s.bids.ByProjectAndEngineer(ctx, projectID, actor.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("%w: not a participant of this project", ErrForbidden)
		}
		return err
	}
	if b.Status != models.BidStatusAccepted {
		return fmt.Errorf("%w: not a participant of this project", ErrForbidden)
	}
	return nil
}
