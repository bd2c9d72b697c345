package repositories

import (
	"context"
	"errors"
	"strings"

	"quickly.link/configs/configslog"
	"quickly.link/models"
	"quickly.link/pkg/queryparams"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ICardRepository kart envanteri veritabanı işlemleri için arayüz.
type ICardRepository interface {
	Create(ctx context.Context, card *models.Card) error
	FindByID(ctx context.Context, id uint) (*models.Card, error)
	FindByUID(ctx context.Context, cardUID string) (*models.Card, error)
	FindAssignedToUser(ctx context.Context, userID uint) ([]models.Card, error)
	UpdateFields(ctx context.Context, id uint, data map[string]interface{}) error
	FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Card, int64, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
}

// CardRepository ICardRepository arayüzünü uygular.
type CardRepository struct {
	base *BaseRepository[models.Card]
	db   *gorm.DB
}

// NewCardRepository verilen bağlantı ile CardRepository oluşturur.
func NewCardRepository(db *gorm.DB) ICardRepository {
	base := NewBaseRepository[models.Card](db)
	base.SetAllowedSortColumns([]string{"id", "created_at", "status", "card_uid", "activated_at"})
	return &CardRepository{base: base, db: db}
}

func (r *CardRepository) Create(ctx context.Context, card *models.Card) error {
	return r.base.Create(ctx, card)
}

func (r *CardRepository) FindByID(ctx context.Context, id uint) (*models.Card, error) {
	return r.base.FindByID(ctx, id)
}

// FindByUID karta basılı public UID ile kaydı bulur.
func (r *CardRepository) FindByUID(ctx context.Context, cardUID string) (*models.Card, error) {
	if cardUID == "" {
		return nil, errors.New("aranacak kart UID'si boş olamaz")
	}
	var card models.Card
	err := r.db.WithContext(ctx).Where("card_uid = ?", cardUID).First(&card).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		configslog.Log.Error("CardRepository.FindByUID: DB error", zap.String("card_uid", cardUID), zap.Error(err))
		return nil, err
	}
	return &card, nil
}

// FindAssignedToUser kullanıcıya atanmış kartları aktivasyon tarihine göre listeler.
func (r *CardRepository) FindAssignedToUser(ctx context.Context, userID uint) ([]models.Card, error) {
	if userID == 0 {
		return nil, errors.New("geçersiz kullanıcı ID")
	}
	var cards []models.Card
	err := r.db.WithContext(ctx).
		Where("assigned_to = ?", userID).
		Order("activated_at DESC").
		Find(&cards).Error
	if err != nil {
		configslog.Log.Error("CardRepository.FindAssignedToUser: DB error", zap.Uint("user_id", userID), zap.Error(err))
		return nil, err
	}
	return cards, nil
}

// UpdateFields kart alanlarını map ile günceller. Aktivasyon iş akışının
// adım A'sı ve telafi yazması bu metottan geçer; bilerek kilitsizdir.
func (r *CardRepository) UpdateFields(ctx context.Context, id uint, data map[string]interface{}) error {
	if id == 0 {
		return errors.New("güncellenecek kart ID'si geçersiz")
	}
	return r.base.Update(ctx, id, data)
}

// FindAllPaginated envanterdeki kartları sayfalayarak listeler (yönetim paneli).
func (r *CardRepository) FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Card, int64, error) {
	var results []models.Card
	var totalCount int64

	query := r.db.WithContext(ctx).Model(&models.Card{})

	if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}
	if params.Search != "" {
		query = query.Where("card_uid ILIKE ?", "%"+strings.TrimSpace(params.Search)+"%")
	}

	if err := query.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}
	if totalCount == 0 {
		return results, 0, nil
	}

	sortBy := params.SortBy
	if !r.base.IsSortColumnAllowed(sortBy) {
		sortBy = "created_at"
	}
	orderBy := strings.ToLower(params.OrderBy)
	if orderBy != "asc" && orderBy != "desc" {
		orderBy = queryparams.DefaultOrderBy
	}

	err := query.
		Order(sortBy + " " + orderBy).
		Limit(params.PerPage).
		Offset(params.CalculateOffset()).
		Preload("Owner").
		Find(&results).Error
	return results, totalCount, err
}

// CountByStatus belirli durumdaki kart sayısını döndürür.
func (r *CardRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Card{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

// Arayüz uyumluluğu kontrolü
var _ ICardRepository = (*CardRepository)(nil)

// NewCardRepositoryTx transaction içinde çalışan bir CardRepository döndürür.
func NewCardRepositoryTx(tx *gorm.DB) ICardRepository {
	return NewCardRepository(tx)
}
