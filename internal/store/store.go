package store

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/craftbridge/platform_be_craftbridge/internal/models"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

type ProjectFilter struct {
	Status      string
	Category    string
	Difficulty  string
	Location    string // substring match
	Skill       string // required-skill tag match
	CommunityID uuid.UUID
}

type EngineerFilter struct {
	Skill    string
	Location string
}

type Users interface {
	Create(ctx context.Context, u *models.User) error
	ByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	ByEmail(ctx context.Context, email string) (*models.User, error)
	Save(ctx context.Context, u *models.User) error
	ListEngineers(ctx context.Context, f EngineerFilter) ([]models.User, error)
}

type Projects interface {
	Create(ctx context.Context, p *models.Project) error
	ByID(ctx context.Context, id uuid.UUID) (*models.Project, error)
	List(ctx context.Context, f ProjectFilter) ([]models.Project, error)
	Save(ctx context.Context, p *models.Project) error
	Delete(ctx context.Context, id uuid.UUID) error
	BidCount(ctx context.Context, projectID uuid.UUID) (int64, error)
	Categories(ctx context.Context) ([]string, error)
	StatsByCommunity(ctx context.Context, communityID uuid.UUID) (total, completed int64, err error)
}

type Bids interface {
	// Create returns ErrDuplicate when the (project, engineer) pair exists.
	Create(ctx context.Context, b *models.Bid) error
	ByID(ctx context.Context, id uuid.UUID) (*models.Bid, error)
	ByProject(ctx context.Context, projectID uuid.UUID) ([]models.Bid, error)
	ByEngineer(ctx context.Context, engineerID uuid.UUID) ([]models.Bid, error)
	ByProjectAndEngineer(ctx context.Context, projectID, engineerID uuid.UUID) (*models.Bid, error)
	Save(ctx context.Context, b *models.Bid) error
	Delete(ctx context.Context, id uuid.UUID) error
	StatsByEngineer(ctx context.Context, engineerID uuid.UUID) (total, accepted int64, err error)
}

type Messages interface {
	Create(ctx context.Context, m *models.ChatMessage) error
	ByProject(ctx context.Context, projectID uuid.UUID) ([]models.ChatMessage, error)
}

// Store bundles the per-entity stores handed to services and handlers.
type Store struct {
	Users    Users
	Projects Projects
	Bids     Bids
	Messages Messages
}
