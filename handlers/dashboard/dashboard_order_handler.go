package handlers // handlers/dashboard paketi

import (
	"errors"

	"quickly.link/configs/configslog"
	"quickly.link/pkg/queryparams"
	"quickly.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DashboardOrderHandler sipariş yönetim uç noktaları.
type DashboardOrderHandler struct {
	service services.IOrderService
}

// NewDashboardOrderHandler bağımlılıkları enjekte ederek handler oluşturur.
func NewDashboardOrderHandler(db *gorm.DB) *DashboardOrderHandler {
	return &DashboardOrderHandler{service: services.NewOrderService(db)}
}

// ListOrders tüm siparişleri sayfalayarak listeler.
func (h *DashboardOrderHandler) ListOrders(c *fiber.Ctx) error {
	var params queryparams.ListParams
	if err := c.QueryParser(&params); err != nil {
		configslog.Log.Warn("Dashboard ListOrders: query parse hatası", zap.Error(err))
		params = queryparams.ListParams{}
	}

	result, err := h.service.GetOrdersPaginated(c.UserContext(), params)
	if err != nil {
		configslog.Log.Error("Dashboard - ListOrders Error", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Siparişler listelenemedi"})
	}
	return c.JSON(fiber.Map{"success": true, "result": result})
}

// UpdateOrderStatus sipariş durumunu ilerletir.
func (h *DashboardOrderHandler) UpdateOrderStatus(c *fiber.Ctx) error {
	adminID, ok := c.Locals("userID").(uint)
	if !ok || adminID == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Oturum açmanız gerekiyor"})
	}

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz sipariş ID"})
	}

	var input struct {
		Status string `json:"status" form:"status"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz istek gövdesi"})
	}

	if err := h.service.UpdateOrderStatus(c.UserContext(), adminID, uint(id), input.Status); err != nil {
		var svcErr services.OrderServiceError
		if errors.As(err, &svcErr) {
			status := fiber.StatusUnprocessableEntity
			if errors.Is(err, services.ErrOrderNotFound) {
				status = fiber.StatusNotFound
			}
			return c.Status(status).JSON(fiber.Map{"error": svcErr.Error()})
		}
		configslog.Log.Error("Dashboard - UpdateOrderStatus Error", zap.Int("orderID", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Sipariş durumu güncellenemedi"})
	}
	return c.JSON(fiber.Map{"success": true})
}
