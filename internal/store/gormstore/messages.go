package gormstore

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/craftbridge/platform_be_craftbridge/internal/models"
)

type messageStore struct {
	db *gorm.DB
}

func (s *messageStore) Create(ctx context.Context, m *models.ChatMessage) error {
	return translate(s.db.WithContext(ctx).Create(m).Error)
}

func (s *messageStore) ByProject(ctx context.Context, projectID uuid.UUID) ([]models.ChatMessage, error) {
	var messages []models.ChatMessage
	err := s.db.WithContext(ctx).
		Preload("Sender").
		Where("project_id = ?", projectID).
		Order("created_at ASC").
		Find(&messages).Error
	if err != nil {
		return nil, translate(err)
	}
	return messages, nil
}
