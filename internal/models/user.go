package models

type User struct {
	BaseModel
	Name         string   `gorm:"not null" json:"name"`
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"not null" json:"-"`
	Role         UserRole `gorm:"type:varchar(20);not null;default:'user'" json:"role"`
	// Status is the active flag: false means blocked by an admin.
	Status bool    `gorm:"not null;default:true" json:"status"`
	Avatar *string `json:"avatar"`
	Bio    *string `json:"bio"`
	// RefreshToken is the single active refresh token, overwritten on
	// every login. No multi-session tracking.
	RefreshToken string `json:"-"`
}
