package handlers // handlers/panel paketi

import (
	"quickly.link/configs/configslog"
	"quickly.link/services"

	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// PanelAnalyticsHandler tıklama/görüntülenme özetini sunar.
type PanelAnalyticsHandler struct {
	service services.IAnalyticsService
}

// NewPanelAnalyticsHandler bağımlılıkları enjekte ederek handler oluşturur.
func NewPanelAnalyticsHandler(db *gorm.DB, client *asynq.Client) *PanelAnalyticsHandler {
	return &PanelAnalyticsHandler{service: services.NewAnalyticsService(db, client)}
}

// GetAnalytics seçilen aralık için özet döner. Geçersiz aralık 7 güne düşer.
func (h *PanelAnalyticsHandler) GetAnalytics(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Oturum açmanız gerekiyor"})
	}

	rangeDays := 7
	switch c.Query("range", "7d") {
	case "30d":
		rangeDays = 30
	case "90d":
		rangeDays = 90
	}

	summary, err := h.service.GetAnalytics(c.UserContext(), userID, rangeDays)
	if err != nil {
		configslog.Log.Error("Panel - GetAnalytics Error", zap.Uint("userID", userID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "İstatistikler yüklenemedi"})
	}
	return c.JSON(fiber.Map{"success": true, "analytics": summary})
}
