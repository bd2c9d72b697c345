package handlers // handlers/panel paketi

import (
	"errors"

	"quickly.link/configs/configslog"
	"quickly.link/pkg/pagecache"
	"quickly.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// PanelCardHandler kullanıcının kart aktivasyonu ve kart listesi için handler.
type PanelCardHandler struct {
	service services.ICardService
}

// NewPanelCardHandler bağımlılıkları enjekte ederek handler oluşturur.
func NewPanelCardHandler(db *gorm.DB, cache pagecache.Invalidator) *PanelCardHandler {
	return &PanelCardHandler{service: services.NewCardService(db, cache)}
}

// ActivateCard aktivasyon kodunu kullanıp kartı oturum sahibine bağlar.
func (h *PanelCardHandler) ActivateCard(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": services.ErrCardNotAuthenticated.Error()})
	}

	var input struct {
		Code string `json:"code" form:"code"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz istek gövdesi"})
	}

	cardUID, err := h.service.ActivateCard(c.UserContext(), userID, input.Code)
	if err != nil {
		var svcErr services.CardServiceError
		if errors.As(err, &svcErr) {
			status := fiber.StatusUnprocessableEntity
			switch {
			case errors.Is(err, services.ErrInvalidOrUsedCode):
				status = fiber.StatusNotFound
			case errors.Is(err, services.ErrCardNotAvailable):
				status = fiber.StatusConflict
			case errors.Is(err, services.ErrCardAssignFailed), errors.Is(err, services.ErrActivationFailed):
				status = fiber.StatusInternalServerError
			}
			return c.Status(status).JSON(fiber.Map{"error": svcErr.Error()})
		}
		configslog.Log.Error("Panel - ActivateCard Error", zap.Uint("userID", userID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": services.ErrActivationFailed.Error()})
	}

	return c.JSON(fiber.Map{"success": true, "card_uid": cardUID})
}

// ListCards kullanıcının kendi kartlarını listeler.
func (h *PanelCardHandler) ListCards(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Oturum açmanız gerekiyor"})
	}

	cards, err := h.service.GetUserCards(c.UserContext(), userID)
	if err != nil {
		configslog.Log.Error("Panel - ListCards Error", zap.Uint("userID", userID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Kartlar listelenemedi"})
	}
	return c.JSON(fiber.Map{"success": true, "cards": cards})
}
