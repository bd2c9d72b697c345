package configssession

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// store uygulama genelinde paylaşılan session deposudur.
var store *session.Store

// InitSession fiber session store'unu başlatır.
// Oturum çerezi 7 gün geçerlidir.
func InitSession() {
	store = session.New(session.Config{
		Expiration:     7 * 24 * time.Hour,
		KeyLookup:      "cookie:quickly_session",
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	})
}

// Get mevcut isteğe ait session'ı döndürür.
func Get(c *fiber.Ctx) (*session.Session, error) {
	return store.Get(c)
}
