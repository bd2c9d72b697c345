package services

import (
	"context"
	"errors"

	"quickly.link/configs/configslog"
	"quickly.link/models"
	"quickly.link/pkg/queryparams"
	"quickly.link/repositories"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// OrderServiceError özel servis hataları
type OrderServiceError string

func (e OrderServiceError) Error() string { return string(e) }

const (
	ErrOrderProductNotFound  OrderServiceError = "ürün satışta değil"
	ErrOrderQuantityInvalid  OrderServiceError = "adet 1 ile 10 arasında olmalıdır"
	ErrOrderAddressTooShort  OrderServiceError = "lütfen eksiksiz bir teslimat adresi girin"
	ErrOrderPaymentInvalid   OrderServiceError = "geçersiz ödeme yöntemi"
	ErrOrderCreationFailed   OrderServiceError = "sipariş oluşturulamadı"
	ErrOrderNotFound         OrderServiceError = "sipariş bulunamadı"
	ErrOrderStatusInvalid    OrderServiceError = "geçersiz sipariş durumu"
)

// OrderInput checkout formunun girdisidir.
type OrderInput struct {
	ProductID       uint   `json:"product_id" form:"product_id"`
	Quantity        int    `json:"quantity" form:"quantity"`
	ShippingAddress string `json:"shipping_address" form:"shipping_address"`
	PaymentMethod   string `json:"payment_method" form:"payment_method"`
}

// IOrderService sipariş işlemleri için arayüz.
type IOrderService interface {
	CreateOrder(ctx context.Context, userID uint, input OrderInput) (*models.Order, error)
	GetOrdersForUser(ctx context.Context, userID uint) ([]models.Order, error)
	GetOrdersPaginated(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error)
	UpdateOrderStatus(ctx context.Context, adminUserID uint, orderID uint, status string) error
	GetActiveProducts(ctx context.Context) ([]models.Product, error)
}

// OrderService IOrderService arayüzünü uygular.
type OrderService struct {
	repo        repositories.IOrderRepository
	productRepo repositories.IProductRepository
}

// NewOrderService bağımlılıkları enjekte ederek servis oluşturur.
func NewOrderService(db *gorm.DB) IOrderService {
	return &OrderService{
		repo:        repositories.NewOrderRepository(db),
		productRepo: repositories.NewProductRepository(db),
	}
}

var validOrderStatuses = map[string]bool{
	models.OrderStatusPending:   true,
	models.OrderStatusPaid:      true,
	models.OrderStatusShipped:   true,
	models.OrderStatusCompleted: true,
	models.OrderStatusCancelled: true,
}

// CreateOrder ürünü doğrular ve sipariş anındaki fiyattan tutarı sabitleyerek kaydeder.
func (s *OrderService) CreateOrder(ctx context.Context, userID uint, input OrderInput) (*models.Order, error) {
	product, err := s.productRepo.FindByID(ctx, input.ProductID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrOrderProductNotFound
		}
		return nil, err
	}
	if !product.IsActive {
		return nil, ErrOrderProductNotFound
	}

	if input.Quantity < 1 || input.Quantity > 10 {
		return nil, ErrOrderQuantityInvalid
	}
	if len(input.ShippingAddress) < 10 {
		return nil, ErrOrderAddressTooShort
	}
	if input.PaymentMethod != models.PaymentMethodCOD && input.PaymentMethod != models.PaymentMethodWhatsApp {
		return nil, ErrOrderPaymentInvalid
	}

	order := &models.Order{
		OrderNo:         uuid.NewString(),
		UserID:          userID,
		ProductID:       product.ID,
		Quantity:        input.Quantity,
		Amount:          product.Price * int64(input.Quantity),
		ShippingAddress: input.ShippingAddress,
		PaymentMethod:   input.PaymentMethod,
		Status:          models.OrderStatusPending,
	}

	ctxWithUser := context.WithValue(ctx, models.ContextUserIDKey, userID)
	if err := s.repo.Create(ctxWithUser, order); err != nil {
		configslog.Log.Error("CreateOrder: kayıt başarısız", zap.Uint("user_id", userID), zap.Error(err))
		return nil, ErrOrderCreationFailed
	}

	configslog.SLog.Infof("Sipariş oluşturuldu: %s (kullanıcı: %d, tutar: %d)", order.OrderNo, userID, order.Amount)
	return order, nil
}

// GetOrdersForUser kullanıcının siparişlerini listeler.
func (s *OrderService) GetOrdersForUser(ctx context.Context, userID uint) ([]models.Order, error) {
	return s.repo.FindAllByUser(ctx, userID)
}

// GetOrdersPaginated tüm siparişleri sayfalayarak listeler (yönetim paneli).
func (s *OrderService) GetOrdersPaginated(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	params.Validate()
	if params.SortBy == "" {
		params.SortBy = "created_at"
	}

	orders, totalCount, err := s.repo.FindAllPaginated(ctx, params)
	if err != nil {
		configslog.Log.Error("GetOrdersPaginated: listeleme başarısız", zap.Error(err))
		return nil, err
	}

	return &queryparams.PaginatedResult{
		Data: orders,
		Meta: queryparams.PaginationMeta{
			CurrentPage: params.Page,
			PerPage:     params.PerPage,
			TotalItems:  totalCount,
			TotalPages:  queryparams.CalculateTotalPages(totalCount, params.PerPage),
		},
	}, nil
}

// UpdateOrderStatus sipariş durumunu yönetici yetkisiyle günceller.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, adminUserID uint, orderID uint, status string) error {
	if !validOrderStatuses[status] {
		return ErrOrderStatusInvalid
	}

	ctxWithUser := context.WithValue(ctx, models.ContextUserIDKey, adminUserID)
	if err := s.repo.UpdateStatus(ctxWithUser, orderID, status); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrOrderNotFound
		}
		configslog.Log.Error("UpdateOrderStatus: güncelleme başarısız", zap.Uint("order_id", orderID), zap.Error(err))
		return err
	}
	configslog.SLog.Infof("Sipariş durumu güncellendi: %d -> %s (yönetici: %d)", orderID, status, adminUserID)
	return nil
}

// GetActiveProducts satıştaki ürünleri listeler.
func (s *OrderService) GetActiveProducts(ctx context.Context) ([]models.Product, error) {
	return s.productRepo.FindAllActive(ctx)
}

// Arayüz uyumluluğu kontrolü
var _ IOrderService = (*OrderService)(nil)
