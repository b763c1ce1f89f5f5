package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	TrendSourceYouTube = "youtube"
	TrendSourceMock    = "mock_data"
)

// Trend is a fetched trending topic. (title, niche) is the natural key the
// ingestion pipeline upserts on; the synthetic id is stable across refreshes.
type Trend struct {
	ID              uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Title           string         `gorm:"not null;uniqueIndex:idx_trend_title_niche;column:title" json:"title"`
	Niche           string         `gorm:"not null;uniqueIndex:idx_trend_title_niche;column:niche" json:"niche"`
	Description     string         `gorm:"column:description" json:"description"`
	RelatedKeywords datatypes.JSON `gorm:"column:related_keywords" json:"related_keywords"`
	PopularityScore int            `gorm:"not null;default:0;column:popularity_score" json:"popularity_score"`
	Source          string         `gorm:"not null;default:'youtube';column:source" json:"source"`
	Metadata        datatypes.JSON `gorm:"column:metadata" json:"metadata"`
	FetchedAt       time.Time      `gorm:"not null;column:fetched_at" json:"fetched_at"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Trend) TableName() string { return "trend" }

// Keywords decodes related_keywords; a malformed or empty column yields nil.
func (t *Trend) Keywords() []string {
	if len(t.RelatedKeywords) == 0 {
		return nil
	}
	var out []string
	if err := json.Unmarshal(t.RelatedKeywords, &out); err != nil {
		return nil
	}
	return out
}

// TrendCandidate is a normalized trend before persistence, produced by the
// source adapter and the fallback catalog.
type TrendCandidate struct {
	Title           string         `json:"title"`
	Description     string         `json:"description"`
	Keywords        []string       `json:"keywords"`
	PopularityScore int            `json:"popularity_score"`
	Metadata        map[string]any `json:"metadata"`
}

// ToTrend builds the persistable record for a candidate fetched for a niche.
func (c TrendCandidate) ToTrend(niche, source string, fetchedAt time.Time) *Trend {
	keywords, _ := json.Marshal(c.Keywords)
	metadata, _ := json.Marshal(c.Metadata)
	return &Trend{
		Title:           c.Title,
		Niche:           niche,
		Description:     c.Description,
		RelatedKeywords: datatypes.JSON(keywords),
		PopularityScore: c.PopularityScore,
		Source:          source,
		Metadata:        datatypes.JSON(metadata),
		FetchedAt:       fetchedAt,
	}
}
