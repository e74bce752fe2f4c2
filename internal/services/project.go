package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/craftbridge/platform_be_craftbridge/internal/models"
	"github.com/craftbridge/platform_be_craftbridge/internal/store"
)

type ProjectService struct {
	projects store.Projects
}

func NewProjectService(st *store.Store) *ProjectService {
	return &ProjectService{projects: st.Projects}
}

type CreateProjectInput struct {
	Title          string
	Description    string
	Category       string
	Difficulty     string
	Location       string
	RequiredSkills []string
	Images         []string
	BudgetMin      *float64
	BudgetMax      *float64
	TimelineStart  *time.Time
	TimelineEnd    *time.Time
}

// UpdateProjectInput carries the allow-listed patch; nil fields stay untouched.
type UpdateProjectInput struct {
	Title          *string
	Description    *string
	Category       *string
	Difficulty     *string
	Location       *string
	RequiredSkills *[]string
	Images         *[]string
	BudgetMin      *float64
	BudgetMax      *float64
	TimelineStart  *time.Time
	TimelineEnd    *time.Time
	Status         *string
}

type ProjectListItem struct {
	Project  models.Project `json:"project"`
	BidCount int64          `json:"bid_count"`
}

func (s *ProjectService) Create(ctx context.Context, actor *models.User, in CreateProjectInput) (*models.Project, error) {
	if !isCommunity(actor) {
		return nil, fmt.Errorf("%w: only community accounts can post projects", ErrForbidden)
	}
	if in.Title == "" || in.Description == "" || in.Location == "" {
		return nil, fmt.Errorf("%w: title, description and location are required", ErrValidation)
	}
	if !models.ValidCategory(in.Category) {
		return nil, fmt.Errorf("%w: unknown category %q", ErrValidation, in.Category)
	}
	if !models.ValidDifficulty(in.Difficulty) {
		return nil, fmt.Errorf("%w: unknown difficulty %q", ErrValidation, in.Difficulty)
	}

	p := &models.Project{
		CommunityID:    actor.ID,
		Title:          in.Title,
		Description:    in.Description,
		Category:       in.Category,
		Difficulty:     in.Difficulty,
		Location:       in.Location,
		RequiredSkills: models.EncodeTags(in.RequiredSkills),
		Images:         models.EncodeTags(in.Images),
		BudgetMin:      in.BudgetMin,
		BudgetMax:      in.BudgetMax,
		TimelineStart:  in.TimelineStart,
		TimelineEnd:    in.TimelineEnd,
		Status:         models.ProjectStatusOpen,
	}
	if err := s.projects.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Get returns the project and, for engineer viewers, the match score between
// the viewer's skills and the project's required skills. Anonymous and
// community viewers get no score.
func (s *ProjectService) Get(ctx context.Context, id uuid.UUID, viewer *models.User) (*models.Project, *int, error) {
	p, err := s.projects.ByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil, fmt.Errorf("%w: project", ErrNotFound)
		}
		return nil, nil, err
	}

	var score *int
	if isEngineer(viewer) {
		v := MatchScore(viewer.SkillList(), p.RequiredSkillList())
		score = &v
	}
	return p, score, nil
}

func (s *ProjectService) List(ctx context.Context, f store.ProjectFilter) ([]ProjectListItem, error) {
	projects, err := s.projects.List(ctx, f)
	if err != nil {
		return nil, err
	}

	items := make([]ProjectListItem, 0, len(projects))
	for _, p := range projects {
		count, err := s.projects.BidCount(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		items = append(items, ProjectListItem{Project: p, BidCount: count})
	}
	return items, nil
}

func (s *ProjectService) Update(ctx context.Context, actor *models.User, id uuid.UUID, in UpdateProjectInput) (*models.Project, error) {
	p, err := s.projects.ByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("%w: project", ErrNotFound)
		}
		return nil, err
	}
	if !canManageProject(actor, p) {
		return nil, fmt.Errorf("%w: not the project owner", ErrForbidden)
	}
	if p.Status.Terminal() {
		return nil, fmt.Errorf("%w: project is %s", ErrInvalidState, p.Status)
	}

	if in.Title != nil {
		p.Title = *in.Title
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Category != nil {
		if !models.ValidCategory(*in.Category) {
			return nil, fmt.Errorf("%w: unknown category %q", ErrValidation, *in.Category)
		}
		p.Category = *in.Category
	}
	if in.Difficulty != nil {
		if !models.ValidDifficulty(*in.Difficulty) {
			return nil, fmt.Errorf("%w: unknown difficulty %q", ErrValidation, *in.Difficulty)
		}
		p.Difficulty = *in.Difficulty
	}
	if in.Location != nil {
		p.Location = *in.Location
	}
	if in.RequiredSkills != nil {
		p.RequiredSkills = models.EncodeTags(*in.RequiredSkills)
	}
	if in.Images != nil {
		p.Images = models.EncodeTags(*in.Images)
	}
	if in.BudgetMin != nil {
		p.BudgetMin = in.BudgetMin
	}
	if in.BudgetMax != nil {
		p.BudgetMax = in.BudgetMax
	}
	if in.TimelineStart != nil {
		p.TimelineStart = in.TimelineStart
	}
	if in.TimelineEnd != nil {
		p.TimelineEnd = in.TimelineEnd
	}
	if in.Status != nil {
		next := models.ProjectStatus(*in.Status)
		if next != p.Status {
			if !models.ValidTransition(p.Status, next) {
				return nil, fmt.Errorf("%w: cannot move project from %s to %s", ErrInvalidState, p.Status, next)
			}
			p.Status = next
		}
	}

	if err := s.projects.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ProjectService) Delete(ctx context.Context, actor *models.User, id uuid.UUID) error {
	p, err := s.projects.ByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("%w: project", ErrNotFound)
		}
		return err
	}
	if !canManageProject(actor, p) {
		return fmt.Errorf("%w: not the project owner", ErrForbidden)
	}
	return s.projects.Delete(ctx, id)
}
