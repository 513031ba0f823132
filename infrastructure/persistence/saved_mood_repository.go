package persistence

import (
	"context"

	"mood-playlist/domain/model"
	"mood-playlist/domain/repository"

	"gorm.io/gorm"
)

// SavedMoodRepository persists mood snapshots in MySQL via gorm
type SavedMoodRepository struct{ db *gorm.DB }

func NewSavedMoodRepository(db *gorm.DB) repository.ISavedMood {
	return &SavedMoodRepository{db: db}
}

func (r *SavedMoodRepository) Save(ctx context.Context, mood *model.SavedMood) error {
	return r.db.WithContext(ctx).Create(mood).Error
}

// ListByUser returns a page of saved moods ordered newest first plus the
// total count for pagination.
func (r *SavedMoodRepository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]model.SavedMood, int64, error) {
	var total int64
	q := r.db.WithContext(ctx).Model(&model.SavedMood{}).Where("user_id = ?", userID)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var items []model.SavedMood
	err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}
