package services

import (
	"context"
	"fmt"
	"time"

	"defensa_juridica_web/models"

	"gorm.io/gorm"
)

// GormContactArchive stores contact messages in the site database
type GormContactArchive struct {
	db *gorm.DB
}

// NewContactArchive creates an archive over db
func NewContactArchive(db *gorm.DB) *GormContactArchive {
	return &GormContactArchive{db: db}
}

// Save inserts msg
func (a *GormContactArchive) Save(ctx context.Context, msg *models.ContactMessage) error {
	if err := a.db.WithContext(ctx).Create(msg).Error; err != nil {
		return fmt.Errorf("failed to save contact message: %w", err)
	}
	return nil
}

// ContactFilter narrows List results. Zero values mean no restriction.
type ContactFilter struct {
	Since  time.Time
	Until  time.Time
	Status string
}

// List returns archived messages, newest first
func (a *GormContactArchive) List(ctx context.Context, filter ContactFilter) ([]models.ContactMessage, error) {
	query := a.db.WithContext(ctx).Model(&models.ContactMessage{})
	if !filter.Since.IsZero() {
		query = query.Where("created_at >= ?", filter.Since)
	}
	if !filter.Until.IsZero() {
		query = query.Where("created_at < ?", filter.Until)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var messages []models.ContactMessage
	if err := query.Order("created_at DESC").Find(&messages).Error; err != nil {
		return nil, fmt.Errorf("failed to list contact messages: %w", err)
	}
	return messages, nil
}

// PurgeOlderThan deletes messages created before cutoff and returns how many
// were removed.
func (a *GormContactArchive) PurgeOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := a.db.WithContext(ctx).Where("created_at < ?", cutoff).Delete(&models.ContactMessage{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to purge contact messages: %w", result.Error)
	}
	return result.RowsAffected, nil
}
