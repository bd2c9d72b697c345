package repositories

import (
	"context"

	"quickly.link/models"

	"gorm.io/gorm"
)

// IProductRepository ürün kataloğu için arayüz.
type IProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	FindByID(ctx context.Context, id uint) (*models.Product, error)
	FindAllActive(ctx context.Context) ([]models.Product, error)
}

// ProductRepository IProductRepository arayüzünü uygular.
type ProductRepository struct {
	base *BaseRepository[models.Product]
	db   *gorm.DB
}

// NewProductRepository verilen bağlantı ile ProductRepository oluşturur.
func NewProductRepository(db *gorm.DB) IProductRepository {
	return &ProductRepository{base: NewBaseRepository[models.Product](db), db: db}
}

func (r *ProductRepository) Create(ctx context.Context, product *models.Product) error {
	return r.base.Create(ctx, product)
}

func (r *ProductRepository) FindByID(ctx context.Context, id uint) (*models.Product, error) {
	return r.base.FindByID(ctx, id)
}

func (r *ProductRepository) FindAllActive(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at ASC").
		Find(&products).Error
	return products, err
}

// Arayüz uyumluluğu kontrolü
var _ IProductRepository = (*ProductRepository)(nil)
