package models

// Sipariş durumları.
const (
	OrderStatusPending   = "pending"
	OrderStatusPaid      = "paid"
	OrderStatusShipped   = "shipped"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

// Ödeme yöntemleri: kapıda ödeme veya WhatsApp üzerinden anlaşma.
const (
	PaymentMethodCOD      = "cod"
	PaymentMethodWhatsApp = "whatsapp"
)

// Order bir kullanıcının fiziksel kart siparişidir. Amount sipariş anındaki
// birim fiyat x adet olarak sabitlenir, ürün fiyatı sonradan değişse de oynamaz.
type Order struct {
	BaseModel
	OrderNo         string `gorm:"type:varchar(36);uniqueIndex;not null"`
	UserID          uint   `gorm:"index;not null"`
	ProductID       uint   `gorm:"index;not null"`
	Quantity        int    `gorm:"not null"`
	Amount          int64  `gorm:"not null"`
	ShippingAddress string `gorm:"type:text;not null"`
	PaymentMethod   string `gorm:"type:varchar(20);not null"`
	Status          string `gorm:"type:varchar(20);default:pending;index"`

	User    User    `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	Product Product `gorm:"foreignKey:ProductID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
}
