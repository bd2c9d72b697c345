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

// ICardActivationRepository aktivasyon biletleri için arayüz.
type ICardActivationRepository interface {
	Create(ctx context.Context, activation *models.CardActivation) error
	FindUnusedByCode(ctx context.Context, code string) (*models.CardActivation, error)
	MarkUsed(ctx context.Context, id uint, userID uint, usedAt time.Time) error
}

// CardActivationRepository ICardActivationRepository arayüzünü uygular.
type CardActivationRepository struct {
	db *gorm.DB
}

// NewCardActivationRepository verilen bağlantı ile repository oluşturur.
func NewCardActivationRepository(db *gorm.DB) ICardActivationRepository {
	return &CardActivationRepository{db: db}
}

func (r *CardActivationRepository) Create(ctx context.Context, activation *models.CardActivation) error {
	if activation == nil {
		return errors.New("oluşturulacak aktivasyon nil olamaz")
	}
	return r.db.WithContext(ctx).Create(activation).Error
}

// FindUnusedByCode kodu eşleşen ve henüz kullanılmamış aktivasyonu bulur.
// Kod hiç yoksa da kullanılmışsa da aynı şekilde ErrNotFound döner; ayrım
// bilerek yapılmaz ki hangi kodların var olduğu dışarı sızmasın.
func (r *CardActivationRepository) FindUnusedByCode(ctx context.Context, code string) (*models.CardActivation, error) {
	if code == "" {
		return nil, ErrNotFound
	}
	var activation models.CardActivation
	err := r.db.WithContext(ctx).
		Where("activation_code = ? AND is_used = ?", code, false).
		First(&activation).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		configslog.Log.Error("CardActivationRepository.FindUnusedByCode: DB error", zap.Error(err))
		return nil, err
	}
	return &activation, nil
}

// MarkUsed bileti kullanıldı olarak işaretler. Bu yazmadan sonra kayıt
// bir daha değiştirilmez.
func (r *CardActivationRepository) MarkUsed(ctx context.Context, id uint, userID uint, usedAt time.Time) error {
	if id == 0 || userID == 0 {
		return errors.New("geçersiz aktivasyon veya kullanıcı ID")
	}
	result := r.db.WithContext(ctx).
		Model(&models.CardActivation{}).
		Where("id = ? AND is_used = ?", id, false).
		Updates(map[string]interface{}{
			"is_used": true,
			"user_id": userID,
			"used_at": usedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Arayüz uyumluluğu kontrolü
var _ ICardActivationRepository = (*CardActivationRepository)(nil)
