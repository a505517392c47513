package repository

import (
	"context"
	"errors"

	"fornopos/internal/cache"
	"fornopos/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingRepository interface {
	// Get returns the value for key, or "" when the key does not exist.
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

type settingRepo struct {
	db *gorm.DB
	qc *cache.QueryCache
}

func NewSettingRepository(db *gorm.DB, qc *cache.QueryCache) SettingRepository {
	return &settingRepo{db: db, qc: qc}
}

func (r *settingRepo) Get(ctx context.Context, key string) (string, error) {
	const op = "Setting.Get"
	if v, ok := r.qc.Get(op, key); ok {
		return v.(string), nil
	}
	var s model.Setting
	err := r.db.WithContext(ctx).First(&s, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	r.qc.Set(op, s.Value, cache.TagSetting, key)
	return s.Value, nil
}

func (r *settingRepo) Set(ctx context.Context, key, value string) error {
	s := model.Setting{Key: key, Value: value}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&s).Error
	if err != nil {
		return err
	}
	r.qc.InvalidateTag(cache.TagSetting)
	return nil
}
