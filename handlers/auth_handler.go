package handlers

import (
	"errors"

	"quickly.link/configs/configslog"
	"quickly.link/configs/configssession"
	"quickly.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AuthHandler kayıt, giriş ve çıkış uç noktalarını yönetir.
type AuthHandler struct {
	service services.IAuthService
}

// NewAuthHandler bağımlılıkları enjekte ederek handler oluşturur.
func NewAuthHandler(db *gorm.DB) *AuthHandler {
	return &AuthHandler{service: services.NewAuthService(db)}
}

// Register yeni hesap oluşturur ve oturum başlatır.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input services.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz istek gövdesi"})
	}

	user, err := h.service.Register(c.UserContext(), input)
	if err != nil {
		var svcErr services.AuthServiceError
		if errors.As(err, &svcErr) {
			status := fiber.StatusUnprocessableEntity
			if errors.Is(err, services.ErrAuthEmailTaken) {
				status = fiber.StatusConflict
			}
			return c.Status(status).JSON(fiber.Map{"error": svcErr.Error()})
		}
		configslog.Log.Error("Register handler hatası", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Kayıt tamamlanamadı"})
	}

	if err := h.startSession(c, user.ID, user.IsSystem, user.FullName); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Oturum başlatılamadı"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "user_id": user.ID})
}

// Login e-posta/şifre ile oturum açar.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input struct {
		Email    string `json:"email" form:"email"`
		Password string `json:"password" form:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz istek gövdesi"})
	}

	user, err := h.service.Authenticate(c.UserContext(), input.Email, input.Password)
	if err != nil {
		var svcErr services.AuthServiceError
		if errors.As(err, &svcErr) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": svcErr.Error()})
		}
		configslog.Log.Error("Login handler hatası", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Giriş yapılamadı"})
	}

	if err := h.startSession(c, user.ID, user.IsSystem, user.FullName); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Oturum başlatılamadı"})
	}
	return c.JSON(fiber.Map{"success": true, "user_id": user.ID, "is_system": user.IsSystem})
}

// Logout oturumu sonlandırır.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sess, err := configssession.Get(c)
	if err == nil {
		if destroyErr := sess.Destroy(); destroyErr != nil {
			configslog.Log.Warn("Logout: oturum kapatılamadı", zap.Error(destroyErr))
		}
	}
	return c.JSON(fiber.Map{"success": true})
}

// Me oturum sahibinin temel bilgilerini döner.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Oturum açmanız gerekiyor"})
	}
	user, err := h.service.GetUserByID(c.UserContext(), userID)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Oturum geçersiz"})
	}
	return c.JSON(fiber.Map{
		"user_id":   user.ID,
		"email":     user.Email,
		"full_name": user.FullName,
		"is_system": user.IsSystem,
	})
}

func (h *AuthHandler) startSession(c *fiber.Ctx, userID uint, isSystem bool, name string) error {
	sess, err := configssession.Get(c)
	if err != nil {
		configslog.Log.Error("startSession: oturum alınamadı", zap.Error(err))
		return err
	}
	if err := sess.Regenerate(); err != nil {
		configslog.Log.Warn("startSession: oturum yenilenemedi", zap.Error(err))
	}
	sess.Set("user_id", userID)
	sess.Set("is_system", isSystem)
	sess.Set("user_name", name)
	if err := sess.Save(); err != nil {
		configslog.Log.Error("startSession: oturum kaydedilemedi", zap.Error(err))
		return err
	}
	return nil
}
