package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	ContentStatusActive   = "active"
	ContentStatusArchived = "archived"

	ContentTypeVideoScript = "video_script"
	ContentTypeBlogPost    = "blog_post"
	ContentTypeSocialMedia = "social_media"
)

// Content is a generated piece owned by a user and derived from a trend.
// archived_at is non-null exactly when status is archived.
type Content struct {
	ID              uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID          uuid.UUID      `gorm:"type:uuid;not null;index;column:user_id" json:"user_id"`
	TrendID         uuid.UUID      `gorm:"type:uuid;not null;index;column:trend_id" json:"trend_id"`
	Title           string         `gorm:"not null;column:title" json:"title"`
	Description     string         `gorm:"column:description" json:"description"`
	ContentType     string         `gorm:"not null;column:content_type" json:"content_type"`
	ScriptStructure datatypes.JSON `gorm:"column:script_structure" json:"script_structure"`
	SEOData         datatypes.JSON `gorm:"column:seo_data" json:"seo_data"`
	Status          string         `gorm:"not null;default:'active';column:status" json:"status"`
	ArchivedAt      *time.Time     `gorm:"column:archived_at" json:"archived_at,omitempty"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`

	Trend *Trend `gorm:"foreignKey:TrendID" json:"trend,omitempty"`
}

func (Content) TableName() string { return "content" }

func ValidContentType(contentType string) bool {
	switch contentType {
	case ContentTypeVideoScript, ContentTypeBlogPost, ContentTypeSocialMedia:
		return true
	}
	return false
}
