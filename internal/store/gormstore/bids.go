package gormstore

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/craftbridge/platform_be_craftbridge/internal/models"
)

type bidStore struct {
	db *gorm.DB
}

func (s *bidStore) Create(ctx context.Context, b *models.Bid) error {
	return translate(s.db.WithContext(ctx).Create(b).Error)
}

func (s *bidStore) ByID(ctx context.Context, id uuid.UUID) (*models.Bid, error) {
	var b models.Bid
	err := s.db.WithContext(ctx).
		Preload("Engineer").
		Preload("Project").
		First(&b, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &b, nil
}

func (s *bidStore) ByProject(ctx context.Context, projectID uuid.UUID) ([]models.Bid, error) {
	var bids []models.Bid
	err := s.db.WithContext(ctx).
		Preload("Engineer").
		Where("project_id = ?", projectID).
		Order("created_at DESC").
		Find(&bids).Error
	if err != nil {
		return nil, translate(err)
	}
	return bids, nil
}

func (s *bidStore) ByEngineer(ctx context.Context, engineerID uuid.UUID) ([]models.Bid, error) {
	var bids []models.Bid
	err := s.db.WithContext(ctx).
		Preload("Project").
		Preload("Project.Community").
		Where("engineer_id = ?", engineerID).
		Order("created_at DESC").
		Find(&bids).Error
	if err != nil {
		return nil, translate(err)
	}
	return bids, nil
}

func (s *bidStore) ByProjectAndEngineer(ctx context.Context, projectID, engineerID uuid.UUID) (*models.Bid, error) {
	var b models.Bid
	err := s.db.WithContext(ctx).
		First(&b, "project_id = ? AND engineer_id = ?", projectID, engineerID).Error
	if err != nil {
		return nil, translate(err)
	}
	return &b, nil
}

func (s *bidStore) Save(ctx context.Context, b *models.Bid) error {
	return translate(s.db.WithContext(ctx).Save(b).Error)
}

func (s *bidStore) Delete(ctx context.Context, id uuid.UUID) error {
	return translate(s.db.WithContext(ctx).Delete(&models.Bid{}, "id = ?", id).Error)
}

func (s *bidStore) StatsByEngineer(ctx context.Context, engineerID uuid.UUID) (int64, int64, error) {
	var total, accepted int64
	err := s.db.WithContext(ctx).
		Model(&models.Bid{}).
		Where("engineer_id = ?", engineerID).
		Count(&total).Error
	if err != nil {
		return 0, 0, translate(err)
	}
	err = s.db.WithContext(ctx).
		Model(&models.Bid{}).
		Where("engineer_id = ? AND status = ?", engineerID, models.BidStatusAccepted).
		Count(&accepted).Error
	return total, accepted, translate(err)
}
