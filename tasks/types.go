package tasks

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

// Görev tipleri.
const (
	TypeLinkClick = "analytics:link_click"
	TypePageView  = "analytics:page_view"
)

// LinkClickPayload bir tıklama kaydının kuyruk verisidir.
type LinkClickPayload struct {
	LinkID    uint      `json:"link_id"`
	OwnerID   uint      `json:"owner_id"`
	Referrer  string    `json:"referrer"`
	ClickedAt time.Time `json:"clicked_at"`
}

// NewLinkClickTask tıklama kaydı görevini oluşturur.
func NewLinkClickTask(payload LinkClickPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeLinkClick, data), nil
}

// PageViewPayload bir profil görüntülenmesinin kuyruk verisidir.
type PageViewPayload struct {
	OwnerID  uint      `json:"owner_id"`
	Referrer string    `json:"referrer"`
	ViewedAt time.Time `json:"viewed_at"`
}

// NewPageViewTask görüntülenme kaydı görevini oluşturur.
func NewPageViewTask(payload PageViewPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypePageView, data), nil
}
