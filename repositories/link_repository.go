package repositories

import (
	"context"
	"errors"

	"quickly.link/configs/configslog"
	"quickly.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ILinkRepository link veritabanı işlemleri için arayüz. Mutasyonların
// tamamı (id, user_id) çifti ile sahibine skopludur; başka kullanıcının
// linki hiçbir koşulda değişmez.
type ILinkRepository interface {
	Create(ctx context.Context, link *models.Link) error
	FindByID(ctx context.Context, id uint) (*models.Link, error)
	FindByIDForUser(ctx context.Context, id uint, userID uint) (*models.Link, error)
	FindAllByUser(ctx context.Context, userID uint) ([]models.Link, error)
	FindActiveByUser(ctx context.Context, userID uint) ([]models.Link, error)
	MaxSortOrder(ctx context.Context, userID uint) (int, error)
	UpdateScoped(ctx context.Context, id uint, userID uint, data map[string]interface{}) (int64, error)
	DeleteScoped(ctx context.Context, id uint, userID uint) (int64, error)
}

// LinkRepository ILinkRepository arayüzünü uygular.
type LinkRepository struct {
	db *gorm.DB
}

// NewLinkRepository verilen bağlantı ile LinkRepository oluşturur.
func NewLinkRepository(db *gorm.DB) ILinkRepository {
	return &LinkRepository{db: db}
}

func (r *LinkRepository) Create(ctx context.Context, link *models.Link) error {
	if link == nil {
		return errors.New("oluşturulacak link nil olamaz")
	}
	return r.db.WithContext(ctx).Create(link).Error
}

// FindByID linki sahibine bakmadan bulur (tıklama takibi gibi public akışlar için).
func (r *LinkRepository) FindByID(ctx context.Context, id uint) (*models.Link, error) {
	if id == 0 {
		return nil, errors.New("geçersiz link ID")
	}
	var link models.Link
	err := r.db.WithContext(ctx).First(&link, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		configslog.Log.Error("LinkRepository.FindByID: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &link, nil
}

// FindByIDForUser linki sahibi skopunda bulur. Kayıt başka kullanıcıya
// aitse de yoksa da ErrNotFound döner.
func (r *LinkRepository) FindByIDForUser(ctx context.Context, id uint, userID uint) (*models.Link, error) {
	if id == 0 || userID == 0 {
		return nil, errors.New("geçersiz link veya kullanıcı ID")
	}
	var link models.Link
	err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&link).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		configslog.Log.Error("LinkRepository.FindByIDForUser: DB error", zap.Uint("id", id), zap.Uint("user_id", userID), zap.Error(err))
		return nil, err
	}
	return &link, nil
}

// FindAllByUser kullanıcının tüm linklerini görüntüleme sırasıyla döndürür.
func (r *LinkRepository) FindAllByUser(ctx context.Context, userID uint) ([]models.Link, error) {
	var links []models.Link
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("sort_order ASC").
		Find(&links).Error
	return links, err
}

// FindActiveByUser public profilde görünen aktif linkleri döndürür.
func (r *LinkRepository) FindActiveByUser(ctx context.Context, userID uint) ([]models.Link, error) {
	var links []models.Link
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("sort_order ASC").
		Find(&links).Error
	return links, err
}

// MaxSortOrder kullanıcının en büyük sort_order değerini döndürür.
// Hiç link yoksa -1 döner; yeni link max+1 = 0'a yerleşir.
func (r *LinkRepository) MaxSortOrder(ctx context.Context, userID uint) (int, error) {
	var max *int
	err := r.db.WithContext(ctx).
		Model(&models.Link{}).
		Where("user_id = ?", userID).
		Select("MAX(sort_order)").
		Scan(&max).Error
	if err != nil {
		return -1, err
	}
	if max == nil {
		return -1, nil
	}
	return *max, nil
}

// UpdateScoped (id, user_id) skopunda günceller ve etkilenen satır sayısını
// döndürür. Sıfır satır etkilendiğinde hata DÖNMEZ; sahip olmayan çağrının
// sessiz no-op kalması bilinçli korunan bir davranıştır.
func (r *LinkRepository) UpdateScoped(ctx context.Context, id uint, userID uint, data map[string]interface{}) (int64, error) {
	if id == 0 || userID == 0 {
		return 0, errors.New("geçersiz link veya kullanıcı ID")
	}
	if len(data) == 0 {
		return 0, errors.New("güncellenecek veri boş olamaz")
	}
	result := r.db.WithContext(ctx).
		Model(&models.Link{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(data)
	if result.Error != nil {
		configslog.Log.Error("LinkRepository.UpdateScoped: DB error", zap.Uint("id", id), zap.Uint("user_id", userID), zap.Error(result.Error))
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// DeleteScoped linki sahibi skopunda siler.
func (r *LinkRepository) DeleteScoped(ctx context.Context, id uint, userID uint) (int64, error) {
	if id == 0 || userID == 0 {
		return 0, errors.New("geçersiz link veya kullanıcı ID")
	}
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Link{})
	if result.Error != nil {
		configslog.Log.Error("LinkRepository.DeleteScoped: DB error", zap.Uint("id", id), zap.Uint("user_id", userID), zap.Error(result.Error))
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// Arayüz uyumluluğu kontrolü
var _ ILinkRepository = (*LinkRepository)(nil)
