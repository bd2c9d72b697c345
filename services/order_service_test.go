package services

import (
	"context"
	"testing"

	"quickly.link/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)


func TestCreateOrder_AmountLockedAtOrderTime(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "siparis@example.com")
	product := &models.Product{Name: "Standart Kart", Price: 49900, IsActive: true}
	require.NoError(t, db.Create(product).Error)

	svc := NewOrderService(db)
	order, err := svc.CreateOrder(context.Background(), user.ID, OrderInput{
		ProductID:       product.ID,
		Quantity:        3,
		ShippingAddress: "Örnek Mah. Deneme Sk. No:1 İstanbul",
		PaymentMethod:   models.PaymentMethodCOD,
	})
	require.NoError(t, err)
	assert.EqualValues(t, 149700, order.Amount)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.NotEmpty(t, order.OrderNo)

	// Fiyat sonradan değişse de sipariş tutarı sabit kalır.
	require.NoError(t, db.Model(product).Update("price", 99900).Error)
	var stored models.Order
	require.NoError(t, db.First(&stored, order.ID).Error)
	assert.EqualValues(t, 149700, stored.Amount)
}

func TestCreateOrder_Validation(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "dogrulama@example.com")
	product := &models.Product{Name: "Metal Kart", Price: 129900, IsActive: true}
	require.NoError(t, db.Create(product).Error)
	passive := &models.Product{Name: "Eski Kart", Price: 10000, IsActive: false}
	require.NoError(t, db.Create(passive).Error)

	svc := NewOrderService(db)
	validAddr := "Örnek Mah. Deneme Sk. No:1 İstanbul"

	_, err := svc.CreateOrder(context.Background(), user.ID, OrderInput{ProductID: 9999, Quantity: 1, ShippingAddress: validAddr, PaymentMethod: models.PaymentMethodCOD})
	assert.ErrorIs(t, err, ErrOrderProductNotFound)

	_, err = svc.CreateOrder(context.Background(), user.ID, OrderInput{ProductID: passive.ID, Quantity: 1, ShippingAddress: validAddr, PaymentMethod: models.PaymentMethodCOD})
	assert.ErrorIs(t, err, ErrOrderProductNotFound)

	_, err = svc.CreateOrder(context.Background(), user.ID, OrderInput{ProductID: product.ID, Quantity: 0, ShippingAddress: validAddr, PaymentMethod: models.PaymentMethodCOD})
	assert.ErrorIs(t, err, ErrOrderQuantityInvalid)

	_, err = svc.CreateOrder(context.Background(), user.ID, OrderInput{ProductID: product.ID, Quantity: 11, ShippingAddress: validAddr, PaymentMethod: models.PaymentMethodCOD})
	assert.ErrorIs(t, err, ErrOrderQuantityInvalid)

	_, err = svc.CreateOrder(context.Background(), user.ID, OrderInput{ProductID: product.ID, Quantity: 1, ShippingAddress: "kısa", PaymentMethod: models.PaymentMethodCOD})
	assert.ErrorIs(t, err, ErrOrderAddressTooShort)

	_, err = svc.CreateOrder(context.Background(), user.ID, OrderInput{ProductID: product.ID, Quantity: 1, ShippingAddress: validAddr, PaymentMethod: "kredi_karti"})
	assert.ErrorIs(t, err, ErrOrderPaymentInvalid)
}

func TestUpdateOrderStatus(t *testing.T) {
	db := newTestDB(t)
	admin := createTestUser(t, db, "siparisadmin@example.com")
	user := createTestUser(t, db, "musteri@example.com")
	product := &models.Product{Name: "Bambu Kart", Price: 89900, IsActive: true}
	require.NoError(t, db.Create(product).Error)

	svc := NewOrderService(db)
	order, err := svc.CreateOrder(context.Background(), user.ID, OrderInput{
		ProductID:       product.ID,
		Quantity:        1,
		ShippingAddress: "Örnek Mah. Deneme Sk. No:1 İstanbul",
		PaymentMethod:   models.PaymentMethodWhatsApp,
	})
	require.NoError(t, err)

	require.NoError(t, svc.UpdateOrderStatus(context.Background(), admin.ID, order.ID, models.OrderStatusShipped))
	var stored models.Order
	require.NoError(t, db.First(&stored, order.ID).Error)
	assert.Equal(t, models.OrderStatusShipped, stored.Status)

	err = svc.UpdateOrderStatus(context.Background(), admin.ID, order.ID, "kargoda_gibi")
	assert.ErrorIs(t, err, ErrOrderStatusInvalid)
}
