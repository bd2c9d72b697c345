package repositories

import (
	"context"
	"errors"
	"time"

	"quickly.link/configs/configslog"
	"quickly.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IAnalyticsRepository tıklama ve görüntülenme kayıtları için arayüz.
type IAnalyticsRepository interface {
	InsertClick(ctx context.Context, click *models.LinkClick) error
	InsertView(ctx context.Context, view *models.PageView) error
	FindClicksSince(ctx context.Context, userID uint, since time.Time) ([]models.LinkClick, error)
	FindViewsSince(ctx context.Context, userID uint, since time.Time) ([]models.PageView, error)
}

// AnalyticsRepository IAnalyticsRepository arayüzünü uygular.
type AnalyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository verilen bağlantı ile AnalyticsRepository oluşturur.
func NewAnalyticsRepository(db *gorm.DB) IAnalyticsRepository {
	return &AnalyticsRepository{db: db}
}

func (r *AnalyticsRepository) InsertClick(ctx context.Context, click *models.LinkClick) error {
	if click == nil {
		return errors.New("kaydedilecek tıklama nil olamaz")
	}
	return r.db.WithContext(ctx).Create(click).Error
}

func (r *AnalyticsRepository) InsertView(ctx context.Context, view *models.PageView) error {
	if view == nil {
		return errors.New("kaydedilecek görüntülenme nil olamaz")
	}
	return r.db.WithContext(ctx).Create(view).Error
}

// FindClicksSince kullanıcının linklerine verilen tarihten sonra gelen
// tıklamaları link bilgisiyle birlikte döndürür.
func (r *AnalyticsRepository) FindClicksSince(ctx context.Context, userID uint, since time.Time) ([]models.LinkClick, error) {
	var clicks []models.LinkClick
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND clicked_at >= ?", userID, since).
		Order("clicked_at DESC").
		Preload("Link").
		Find(&clicks).Error
	if err != nil {
		configslog.Log.Error("AnalyticsRepository.FindClicksSince: DB error", zap.Uint("user_id", userID), zap.Error(err))
		return nil, err
	}
	return clicks, nil
}

// FindViewsSince profil sayfasının verilen tarihten sonraki görüntülenmelerini döndürür.
func (r *AnalyticsRepository) FindViewsSince(ctx context.Context, userID uint, since time.Time) ([]models.PageView, error) {
	var views []models.PageView
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND viewed_at >= ?", userID, since).
		Order("viewed_at DESC").
		Find(&views).Error
	if err != nil {
		configslog.Log.Error("AnalyticsRepository.FindViewsSince: DB error", zap.Uint("user_id", userID), zap.Error(err))
		return nil, err
	}
	return views, nil
}

// Arayüz uyumluluğu kontrolü
var _ IAnalyticsRepository = (*AnalyticsRepository)(nil)
