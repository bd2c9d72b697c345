package models

// User platform hesabıdır. IsSystem=true olanlar yönetim paneline erişir.
type User struct {
	BaseModel
	Email        string `gorm:"type:varchar(100);uniqueIndex;not null"`
	PasswordHash string `gorm:"type:varchar(100);not null"`
	FullName     string `gorm:"type:varchar(100)"`
	IsSystem     bool   `gorm:"default:false;index"`
	IsActive     bool   `gorm:"default:true;index"`
}
