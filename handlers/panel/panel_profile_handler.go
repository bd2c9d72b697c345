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

// PanelProfileHandler profil görüntüleme ve düzenleme uç noktaları.
type PanelProfileHandler struct {
	service services.IProfileService
}

// NewPanelProfileHandler bağımlılıkları enjekte ederek handler oluşturur.
func NewPanelProfileHandler(db *gorm.DB, cache pagecache.Invalidator) *PanelProfileHandler {
	return &PanelProfileHandler{service: services.NewProfileService(db, cache)}
}

// GetProfile oturum sahibinin profilini döner.
func (h *PanelProfileHandler) GetProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Oturum açmanız gerekiyor"})
	}

	profile, err := h.service.GetProfileForUser(c.UserContext(), userID)
	if err != nil {
		configslog.Log.Error("Panel - GetProfile Error", zap.Uint("userID", userID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Profil yüklenemedi"})
	}
	return c.JSON(fiber.Map{"success": true, "profile": profile})
}

// UpdateProfile profil alanlarını günceller.
func (h *PanelProfileHandler) UpdateProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Oturum açmanız gerekiyor"})
	}

	var input services.ProfileInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz istek gövdesi"})
	}

	if err := h.service.UpdateProfile(c.UserContext(), userID, input); err != nil {
		var svcErr services.ProfileServiceError
		if errors.As(err, &svcErr) {
			status := fiber.StatusUnprocessableEntity
			if errors.Is(err, services.ErrUsernameTaken) {
				status = fiber.StatusConflict
			}
			return c.Status(status).JSON(fiber.Map{"error": svcErr.Error()})
		}
		configslog.Log.Error("Panel - UpdateProfile Error", zap.Uint("userID", userID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Profil güncellenemedi"})
	}
	return c.JSON(fiber.Map{"success": true})
}

// CheckUsername kullanıcı adının müsait olup olmadığını döner.
func (h *PanelProfileHandler) CheckUsername(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Oturum açmanız gerekiyor"})
	}

	username := c.Query("username")
	available, message := h.service.CheckUsernameAvailability(c.UserContext(), userID, username)
	return c.JSON(fiber.Map{"available": available, "message": message})
}
