package repositories

import (
	"context"
	"errors"
	"strings"

	"quickly.link/models"
	"quickly.link/pkg/queryparams"

	"gorm.io/gorm"
)

// IOrderRepository sipariş veritabanı işlemleri için arayüz.
type IOrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	FindByID(ctx context.Context, id uint) (*models.Order, error)
	FindAllByUser(ctx context.Context, userID uint) ([]models.Order, error)
	FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Order, int64, error)
	UpdateStatus(ctx context.Context, id uint, status string) error
}

// OrderRepository IOrderRepository arayüzünü uygular.
type OrderRepository struct {
	base *BaseRepository[models.Order]
	db   *gorm.DB
}

// NewOrderRepository verilen bağlantı ile OrderRepository oluşturur.
func NewOrderRepository(db *gorm.DB) IOrderRepository {
	base := NewBaseRepository[models.Order](db)
	base.SetAllowedSortColumns([]string{"id", "created_at", "status", "amount"})
	return &OrderRepository{base: base, db: db}
}

func (r *OrderRepository) Create(ctx context.Context, order *models.Order) error {
	if order == nil {
		return errors.New("oluşturulacak sipariş nil olamaz")
	}
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *OrderRepository) FindByID(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).Preload("Product").First(&order, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepository) FindAllByUser(ctx context.Context, userID uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Preload("Product").
		Find(&orders).Error
	return orders, err
}

// FindAllPaginated tüm siparişleri sayfalayarak listeler (yönetim paneli).
func (r *OrderRepository) FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Order, int64, error) {
	var results []models.Order
	var totalCount int64

	query := r.db.WithContext(ctx).Model(&models.Order{})
	if params.Status != "" {
		query = query.Where("status = ?", params.Status)
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
		Preload("Product").
		Preload("User").
		Find(&results).Error
	return results, totalCount, err
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	return r.base.Update(ctx, id, map[string]interface{}{"status": status})
}

// Arayüz uyumluluğu kontrolü
var _ IOrderRepository = (*OrderRepository)(nil)
