package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	TierFree    = "free"
	TierPremium = "premium"
)

type User struct {
	ID                 uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Email              string    `gorm:"uniqueIndex;not null;column:email" json:"email"`
	Name               string    `gorm:"not null;column:name" json:"name"`
	SubscriptionStatus string    `gorm:"not null;default:'free';column:subscription_status" json:"subscription_status"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (User) TableName() string { return "user" }

func (u *User) IsPremium() bool { return u.SubscriptionStatus == TierPremium }
func (u *User) IsFree() bool    { return u.SubscriptionStatus == TierFree }

type UserProfile struct {
	ID                 uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID             uuid.UUID      `gorm:"type:uuid;uniqueIndex;not null;column:user_id" json:"user_id"`
	Avatar             string         `gorm:"column:avatar" json:"avatar"`
	Bio                string         `gorm:"column:bio" json:"bio"`
	PreferredNiches    datatypes.JSON `gorm:"column:preferred_niches" json:"preferred_niches"`
	ContentPreferences datatypes.JSON `gorm:"column:content_preferences" json:"content_preferences"`
	Timezone           string         `gorm:"column:timezone" json:"timezone"`
	Language           string         `gorm:"column:language" json:"language"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (UserProfile) TableName() string { return "user_profile" }
