package handlers // handlers/panel paketi

import (
	"errors"

	"quickly.link/configs/configslog"
	"quickly.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// PanelOrderHandler kullanıcının kart siparişleri için handler.
type PanelOrderHandler struct {
	service services.IOrderService
}

// NewPanelOrderHandler bağımlılıkları enjekte ederek handler oluşturur.
func NewPanelOrderHandler(db *gorm.DB) *PanelOrderHandler {
	return &PanelOrderHandler{service: services.NewOrderService(db)}
}

// ListProducts satıştaki ürünleri listeler.
func (h *PanelOrderHandler) ListProducts(c *fiber.Ctx) error {
	products, err := h.service.GetActiveProducts(c.UserContext())
	if err != nil {
		configslog.Log.Error("Panel - ListProducts Error", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Ürünler listelenemedi"})
	}
	return c.JSON(fiber.Map{"success": true, "products": products})
}

// ListOrders kullanıcının geçmiş siparişlerini döner.
func (h *PanelOrderHandler) ListOrders(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Oturum açmanız gerekiyor"})
	}

	orders, err := h.service.GetOrdersForUser(c.UserContext(), userID)
	if err != nil {
		configslog.Log.Error("Panel - ListOrders Error", zap.Uint("userID", userID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Siparişler listelenemedi"})
	}
	return c.JSON(fiber.Map{"success": true, "orders": orders})
}

// CreateOrder yeni sipariş oluşturur.
func (h *PanelOrderHandler) CreateOrder(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Oturum açmanız gerekiyor"})
	}

	var input services.OrderInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz istek gövdesi"})
	}

	order, err := h.service.CreateOrder(c.UserContext(), userID, input)
	if err != nil {
		var svcErr services.OrderServiceError
		if errors.As(err, &svcErr) {
			status := fiber.StatusUnprocessableEntity
			if errors.Is(err, services.ErrOrderProductNotFound) {
				status = fiber.StatusNotFound
			}
			return c.Status(status).JSON(fiber.Map{"error": svcErr.Error()})
		}
		configslog.Log.Error("Panel - CreateOrder Error", zap.Uint("userID", userID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": services.ErrOrderCreationFailed.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "order_no": order.OrderNo, "amount": order.Amount})
}
