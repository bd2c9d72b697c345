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

// PanelLinkHandler profil bağlantılarının CRUD ve sıralama uç noktaları.
type PanelLinkHandler struct {
	service services.ILinkService
}

// NewPanelLinkHandler bağımlılıkları enjekte ederek handler oluşturur.
func NewPanelLinkHandler(db *gorm.DB, cache pagecache.Invalidator) *PanelLinkHandler {
	return &PanelLinkHandler{service: services.NewLinkService(db, cache)}
}

func (h *PanelLinkHandler) userID(c *fiber.Ctx) (uint, bool) {
	userID, ok := c.Locals("userID").(uint)
	return userID, ok && userID > 0
}

// ListLinks kullanıcının tüm bağlantılarını sıralı döner.
func (h *PanelLinkHandler) ListLinks(c *fiber.Ctx) error {
	userID, ok := h.userID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Oturum açmanız gerekiyor"})
	}
	links, err := h.service.GetLinksForUser(c.UserContext(), userID)
	if err != nil {
		configslog.Log.Error("Panel - ListLinks Error", zap.Uint("userID", userID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Bağlantılar listelenemedi"})
	}
	return c.JSON(fiber.Map{"success": true, "links": links})
}

// CreateLink yeni bağlantıyı listenin sonuna ekler.
func (h *PanelLinkHandler) CreateLink(c *fiber.Ctx) error {
	userID, ok := h.userID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Oturum açmanız gerekiyor"})
	}

	var input services.LinkInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz istek gövdesi"})
	}

	link, err := h.service.CreateLink(c.UserContext(), userID, input)
	if err != nil {
		return h.mapLinkError(c, userID, "CreateLink", err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "link": link})
}

// UpdateLink bağlantıyı günceller; sahip olunmayan kayıt sessizce atlanır.
func (h *PanelLinkHandler) UpdateLink(c *fiber.Ctx) error {
	userID, ok := h.userID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Oturum açmanız gerekiyor"})
	}
	linkID, err := h.paramID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz bağlantı ID"})
	}

	var input services.LinkInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz istek gövdesi"})
	}

	if err := h.service.UpdateLink(c.UserContext(), userID, linkID, input); err != nil {
		return h.mapLinkError(c, userID, "UpdateLink", err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// ToggleLink görünürlüğü tersine çevirir.
func (h *PanelLinkHandler) ToggleLink(c *fiber.Ctx) error {
	userID, ok := h.userID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Oturum açmanız gerekiyor"})
	}
	linkID, err := h.paramID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz bağlantı ID"})
	}

	if err := h.service.ToggleLink(c.UserContext(), userID, linkID); err != nil {
		return h.mapLinkError(c, userID, "ToggleLink", err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// DeleteLink bağlantıyı siler; sahip olunmayan kayıt sessizce atlanır.
func (h *PanelLinkHandler) DeleteLink(c *fiber.Ctx) error {
	userID, ok := h.userID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Oturum açmanız gerekiyor"})
	}
	linkID, err := h.paramID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz bağlantı ID"})
	}

	if err := h.service.DeleteLink(c.UserContext(), userID, linkID); err != nil {
		return h.mapLinkError(c, userID, "DeleteLink", err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// ReorderLinks sürükle-bırak sonrası yeni sırayı uygular.
func (h *PanelLinkHandler) ReorderLinks(c *fiber.Ctx) error {
	userID, ok := h.userID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Oturum açmanız gerekiyor"})
	}

	var input struct {
		LinkIDs []uint `json:"link_ids" form:"link_ids"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz istek gövdesi"})
	}

	if err := h.service.ReorderLinks(c.UserContext(), userID, input.LinkIDs); err != nil {
		return h.mapLinkError(c, userID, "ReorderLinks", err)
	}
	return c.JSON(fiber.Map{"success": true})
}

func (h *PanelLinkHandler) paramID(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, fiber.ErrBadRequest
	}
	return uint(id), nil
}

func (h *PanelLinkHandler) mapLinkError(c *fiber.Ctx, userID uint, op string, err error) error {
	var svcErr services.LinkServiceError
	if errors.As(err, &svcErr) {
		status := fiber.StatusUnprocessableEntity
		if errors.Is(err, services.ErrLinkNotFound) {
			status = fiber.StatusNotFound
		}
		return c.Status(status).JSON(fiber.Map{"error": svcErr.Error()})
	}
	configslog.Log.Error("Panel - "+op+" Error", zap.Uint("userID", userID), zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "İşlem tamamlanamadı"})
}
