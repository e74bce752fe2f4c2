package gormstore

import (
	"errors"

	"gorm.io/gorm"

	"github.com/craftbridge/platform_be_craftbridge/internal/store"
)

// New wires the gorm-backed implementations into a store.Store.
func New(db *gorm.DB) *store.Store {
	return &store.Store{
		Users:    &userStore{db: db},
		Projects: &projectStore{db: db},
		Bids:     &bidStore{db: db},
		Messages: &messageStore{db: db},
	}
}

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return store.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return store.ErrDuplicate
	default:
		return err
	}
}
