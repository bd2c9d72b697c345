package handlers // handlers/public paketi

import (
	"errors"

	"quickly.link/configs/configslog"
	"quickly.link/pkg/pagecache"
	"quickly.link/services"

	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// PublicHandler NFC/QR çözümleme, herkese açık profil ve tıklama takibi.
type PublicHandler struct {
	cardService      services.ICardService
	profileService   services.IProfileService
	analyticsService services.IAnalyticsService
}

// NewPublicHandler bağımlılıkları enjekte ederek handler oluşturur.
func NewPublicHandler(db *gorm.DB, cache pagecache.Invalidator, client *asynq.Client) *PublicHandler {
	return &PublicHandler{
		cardService:      services.NewCardService(db, cache),
		profileService:   services.NewProfileService(db, cache),
		analyticsService: services.NewAnalyticsService(db, client),
	}
}

// ResolveCard kart UID'sini sahibin profil adresine çözer. NFC okutma ve
// QR tarama bu uç noktaya düşer.
func (h *PublicHandler) ResolveCard(c *fiber.Ctx) error {
	cardUID := c.Params("uid")
	if cardUID == "" {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": services.ErrCardNotFound.Error()})
	}

	username, err := h.cardService.ResolveCardUID(c.UserContext(), cardUID)
	if err != nil {
		var svcErr services.CardServiceError
		if errors.As(err, &svcErr) {
			status := fiber.StatusNotFound
			if errors.Is(err, services.ErrProfileNotSetup) {
				status = fiber.StatusConflict
			}
			return c.Status(status).JSON(fiber.Map{"error": svcErr.Error()})
		}
		configslog.Log.Error("Public - ResolveCard Error", zap.String("cardUID", cardUID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Kart çözümlenemedi"})
	}

	return c.Redirect("/u/"+username, fiber.StatusFound)
}

// PublicProfile kullanıcı adına göre profili ve aktif bağlantıları döner.
// Görüntülenme kaydı isteği bekletmeden kuyruğa atılır.
func (h *PublicHandler) PublicProfile(c *fiber.Ctx) error {
	username := c.Params("username")

	profile, links, err := h.profileService.GetPublicProfile(c.UserContext(), username)
	if err != nil {
		var svcErr services.ProfileServiceError
		if errors.As(err, &svcErr) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": svcErr.Error()})
		}
		configslog.Log.Error("Public - PublicProfile Error", zap.String("username", username), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Profil yüklenemedi"})
	}

	h.analyticsService.RecordPageView(c.UserContext(), profile.UserID, c.Get("Referer"))

	return c.JSON(fiber.Map{"success": true, "profile": profile, "links": links})
}

// TrackClick ziyaretçi tıklamasını kaydeder. Takip hatası ziyaretçiye
// yansıtılmaz; yönlendirme her durumda başarılı sayılır.
func (h *PublicHandler) TrackClick(c *fiber.Ctx) error {
	var input struct {
		LinkID uint `json:"link_id" form:"link_id"`
	}
	if err := c.BodyParser(&input); err != nil || input.LinkID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz istek gövdesi"})
	}

	if err := h.analyticsService.TrackLinkClick(c.UserContext(), input.LinkID, c.Get("Referer")); err != nil {
		configslog.Log.Warn("Public - TrackClick kaydedilemedi", zap.Uint("linkID", input.LinkID), zap.Error(err))
	}
	return c.JSON(fiber.Map{"success": true})
}
