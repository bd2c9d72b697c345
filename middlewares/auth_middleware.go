package middlewares

import (
	"quickly.link/configs/configslog"
	"quickly.link/configs/configssession"
	"quickly.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// SessionLocals oturumdaki kimlik bilgilerini her istekte locals'a taşır.
// Oturum yoksa veya bozuksa istek anonim olarak devam eder.
func SessionLocals() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := configssession.Get(c)
		if err != nil {
			return c.Next()
		}
		if userID, ok := sess.Get("user_id").(uint); ok && userID > 0 {
			c.Locals("userID", userID)
		}
		if isSystem, ok := sess.Get("is_system").(bool); ok {
			c.Locals("isSystem", isSystem)
		}
		if name, ok := sess.Get("user_name").(string); ok {
			c.Locals("userName", name)
		}
		return c.Next()
	}
}

// AuthMiddleware giriş yapmamış istekleri reddeder.
func AuthMiddleware(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Oturum açmanız gerekiyor"})
	}
	return c.Next()
}

// GuestMiddleware giriş yapmış kullanıcıları auth sayfalarından uzak tutar.
func GuestMiddleware(c *fiber.Ctx) error {
	if userID, ok := c.Locals("userID").(uint); ok && userID > 0 {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Zaten oturum açık"})
	}
	return c.Next()
}

// StatusMiddleware hesabın hâlâ aktif olduğunu doğrular. Pasifleştirilen
// hesapların mevcut oturumları da geçersizleşir.
func StatusMiddleware(authService services.IAuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := c.Locals("userID").(uint)
		if !ok || userID == 0 {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Oturum açmanız gerekiyor"})
		}
		user, err := authService.GetUserByID(c.UserContext(), userID)
		if err != nil {
			configslog.Log.Warn("StatusMiddleware: kullanıcı çözülemedi", zap.Uint("user_id", userID), zap.Error(err))
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Oturum geçersiz"})
		}
		if !user.IsActive {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Hesabınız pasif durumda"})
		}
		c.Locals("isSystem", user.IsSystem)
		return c.Next()
	}
}

// RequireUser yalnızca normal kullanıcıların geçmesine izin verir.
func RequireUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if isSystem, ok := c.Locals("isSystem").(bool); ok && isSystem {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Bu alan kullanıcı hesapları içindir"})
		}
		return c.Next()
	}
}

// RequireSystem yalnızca sistem yöneticilerinin geçmesine izin verir.
func RequireSystem() fiber.Handler {
	return func(c *fiber.Ctx) error {
		isSystem, ok := c.Locals("isSystem").(bool)
		if !ok || !isSystem {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Bu alan yöneticilere özeldir"})
		}
		return c.Next()
	}
}
