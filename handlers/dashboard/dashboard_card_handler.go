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

// DashboardCardHandler kart envanteri yönetim uç noktaları.
type DashboardCardHandler struct {
	service services.ICardInventoryService
}

// NewDashboardCardHandler bağımlılıkları enjekte ederek handler oluşturur.
func NewDashboardCardHandler(db *gorm.DB) *DashboardCardHandler {
	return &DashboardCardHandler{service: services.NewCardInventoryService(db)}
}

// ListCards tüm envanteri sayfalayarak listeler.
func (h *DashboardCardHandler) ListCards(c *fiber.Ctx) error {
	var params queryparams.ListParams
	if err := c.QueryParser(&params); err != nil {
		configslog.Log.Warn("Dashboard ListCards: query parse hatası", zap.Error(err))
		params = queryparams.ListParams{}
	}

	result, err := h.service.GetCardsPaginated(c.UserContext(), params)
	if err != nil {
		configslog.Log.Error("Dashboard - ListCards Error", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Envanter listelenemedi"})
	}
	return c.JSON(fiber.Map{"success": true, "result": result})
}

// ProvisionCards yeni kart partisi üretir; UID ve aktivasyon kodlarını döner.
func (h *DashboardCardHandler) ProvisionCards(c *fiber.Ctx) error {
	adminID, ok := c.Locals("userID").(uint)
	if !ok || adminID == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Oturum açmanız gerekiyor"})
	}

	var input struct {
		Count int `json:"count" form:"count"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz istek gövdesi"})
	}

	cards, err := h.service.ProvisionCards(c.UserContext(), adminID, input.Count)
	if err != nil {
		var svcErr services.InventoryServiceError
		if errors.As(err, &svcErr) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": svcErr.Error()})
		}
		configslog.Log.Error("Dashboard - ProvisionCards Error", zap.Uint("adminID", adminID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Kartlar üretilemedi"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "cards": cards})
}

// SetCardStatus kartı satışa açar veya devre dışı bırakır.
func (h *DashboardCardHandler) SetCardStatus(c *fiber.Ctx) error {
	adminID, ok := c.Locals("userID").(uint)
	if !ok || adminID == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Oturum açmanız gerekiyor"})
	}

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz kart ID"})
	}

	var input struct {
		Status string `json:"status" form:"status"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz istek gövdesi"})
	}

	if err := h.service.SetCardStatus(c.UserContext(), adminID, uint(id), input.Status); err != nil {
		var svcErr services.InventoryServiceError
		if errors.As(err, &svcErr) {
			status := fiber.StatusUnprocessableEntity
			if errors.Is(err, services.ErrInvCardNotFound) {
				status = fiber.StatusNotFound
			}
			return c.Status(status).JSON(fiber.Map{"error": svcErr.Error()})
		}
		configslog.Log.Error("Dashboard - SetCardStatus Error", zap.Int("cardID", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Kart durumu güncellenemedi"})
	}
	return c.JSON(fiber.Map{"success": true})
}
