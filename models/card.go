package models

import "time"

// Kart durumları. Invariant: AssignedTo yalnızca StatusAssigned iken doludur.
const (
	CardStatusInStock  = "in_stock"
	CardStatusAssigned = "assigned"
	CardStatusDisabled = "disabled"
)

// Card fiziksel NFC/QR kartın ana kaydıdır. CardUID karta basılan kalıcı
// public tanımlayıcıdır ve atandıktan sonra asla değişmez.
type Card struct {
	BaseModel
	CardUID     string `gorm:"type:varchar(20);uniqueIndex;not null"`
	Status      string `gorm:"type:varchar(20);default:in_stock;index"`
	AssignedTo  *uint  `gorm:"index"`
	ActivatedAt *time.Time

	Owner *User `gorm:"foreignKey:AssignedTo;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
}
