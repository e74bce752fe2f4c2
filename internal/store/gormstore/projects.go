package gormstore

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/craftbridge/platform_be_craftbridge/internal/models"
	"github.com/craftbridge/platform_be_craftbridge/internal/store"
)

type projectStore struct {
	db *gorm.DB
}

func (s *projectStore) Create(ctx context.Context, p *models.Project) error {
	return translate(s.db.WithContext(ctx).Create(p).Error)
}

func (s *projectStore) ByID(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	var p models.Project
	err := s.db.WithContext(ctx).
		Preload("Community").
		First(&p, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (s *projectStore) List(ctx context.Context, f store.ProjectFilter) ([]models.Project, error) {
	q := s.db.WithContext(ctx).Preload("Community")

	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.Difficulty != "" {
		q = q.Where("difficulty = ?", f.Difficulty)
	}
	if f.Location != "" {
		q = q.Where("location ILIKE ?", "%"+f.Location+"%")
	}
	if f.Skill != "" {
		q = q.Where("required_skills::text ILIKE ?", "%"+strings.ToLower(f.Skill)+"%")
	}
	if f.CommunityID != uuid.Nil {
		q = q.Where("community_id = ?", f.CommunityID)
	}

	var projects []models.Project
	if err := q.Order("created_at DESC").Find(&projects).Error; err != nil {
		return nil, translate(err)
	}
	return projects, nil
}

func (s *projectStore) Save(ctx context.Context, p *models.Project) error {
	return translate(s.db.WithContext(ctx).Save(p).Error)
}

func (s *projectStore) Delete(ctx context.Context, id uuid.UUID) error {
	return translate(s.db.WithContext(ctx).Delete(&models.Project{}, "id = ?", id).Error)
}

func (s *projectStore) BidCount(ctx context.Context, projectID uuid.UUID) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.Bid{}).
		Where("project_id = ?", projectID).
		Count(&count).Error
	return count, translate(err)
}

func (s *projectStore) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	err := s.db.WithContext(ctx).
		Model(&models.Project{}).
		Distinct("category").
		Order("category ASC").
		Pluck("category", &categories).Error
	if err != nil {
		return nil, translate(err)
	}
	return categories, nil
}

func (s *projectStore) StatsByCommunity(ctx context.Context, communityID uuid.UUID) (int64, int64, error) {
	var total, completed int64
	err := s.db.WithContext(ctx).
		Model(&models.Project{}).
		Where("community_id = ?", communityID).
		Count(&total).Error
	if err != nil {
		return 0, 0, translate(err)
	}
	err = s.db.WithContext(ctx).
		Model(&models.Project{}).
		Where("community_id = ? AND status = ?", communityID, models.ProjectStatusCompleted).
		Count(&completed).Error
	return total, completed, translate(err)
}
