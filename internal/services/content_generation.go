package services

import (
	"context"
	"strings"

	"github.com/trendforge/trendforge-backend/internal/clients/cohere"
	types "github.com/trendforge/trendforge-backend/internal/domain"
	"github.com/trendforge/trendforge-backend/internal/pkg/logger"
)

// GeneratedContent is the structured output of a generation run, before the
// content record is persisted.
type GeneratedContent struct {
	Title           string
	Description     string
	ScriptStructure map[string]any
	SEOData         map[string]any
}

// ContentGenerationService produces structured content for a trend. It always
// succeeds: when the AI backend is unavailable or fails, deterministic
// defaults built from the trend are returned instead.
type ContentGenerationService interface {
	Generate(ctx context.Context, trend *types.Trend, contentType string, preferences map[string]any) *GeneratedContent
}

type contentGenerationService struct {
	log *logger.Logger
	ai  cohere.Client // nil when no API key is configured
}

func NewContentGenerationService(log *logger.Logger, ai cohere.Client) ContentGenerationService {
	return &contentGenerationService{
		log: log.With("service", "ContentGenerationService"),
		ai:  ai,
	}
}

func (s *contentGenerationService) Generate(ctx context.Context, trend *types.Trend, contentType string, preferences map[string]any) *GeneratedContent {
	if s.ai == nil {
		return defaultContent(trend, contentType)
	}

	prompt := preparePrompt(trend, contentType, preferences)
	text, err := s.ai.Generate(ctx, prompt)
	if err != nil {
		s.log.Warn("AI generation failed, using defaults",
			"trend_id", trend.ID,
			"content_type", contentType,
			"error", err,
		)
		return defaultContent(trend, contentType)
	}
	return parseGeneration(text, trend, contentType)
}

// parseGeneration maps paragraphs of generated text onto the structure for
// the content type by position. Missing paragraphs get trend-derived
// fallbacks so the structure is always complete.
func parseGeneration(text string, trend *types.Trend, contentType string) *GeneratedContent {
	sections := strings.Split(text, "\n\n")

	result := &GeneratedContent{
		Title:       "Generated Content: " + trend.Title,
		Description: "Content about " + trend.Title + " in the " + trend.Niche + " niche.",
		SEOData:     seoData(trend),
	}

	switch contentType {
	case types.ContentTypeVideoScript:
		result.ScriptStructure = map[string]any{
			"introduction": sectionOr(sections, 0, "Introduction to "+trend.Title),
			"main_points": map[string]any{
				"point_1": sectionOr(sections, 1, "Main point 1 about "+trend.Title),
				"point_2": sectionOr(sections, 2, "Main point 2 about "+trend.Title),
				"point_3": sectionOr(sections, 3, "Main point 3 about "+trend.Title),
			},
			"conclusion":     sectionOr(sections, 4, "Conclusion about "+trend.Title),
			"call_to_action": sectionOr(sections, 5, "Like and subscribe for more content!"),
		}
	case types.ContentTypeBlogPost:
		result.ScriptStructure = map[string]any{
			"introduction": sectionOr(sections, 0, "Introduction to "+trend.Title),
			"main_content": map[string]any{
				"section_1": map[string]any{
					"heading": "Understanding " + trend.Title,
					"content": sectionOr(sections, 1, "Content about understanding "+trend.Title),
				},
				"section_2": map[string]any{
					"heading": "Key Aspects of " + trend.Title,
					"content": sectionOr(sections, 2, "Content about key aspects of "+trend.Title),
				},
				"section_3": map[string]any{
					"heading": "Benefits of " + trend.Title,
					"content": sectionOr(sections, 3, "Content about benefits of "+trend.Title),
				},
			},
			"conclusion":     sectionOr(sections, 4, "Conclusion about "+trend.Title),
			"call_to_action": sectionOr(sections, 5, "Share this post if you found it helpful!"),
		}
	case types.ContentTypeSocialMedia:
		result.ScriptStructure = map[string]any{
			"twitter": sectionOr(sections, 0, "Tweet about "+trend.Title),
			"instagram": map[string]any{
				"caption":  sectionOr(sections, 1, "Instagram caption about "+trend.Title),
				"hashtags": hashtags(trend),
			},
			"linkedin": sectionOr(sections, 2, "LinkedIn post about "+trend.Title),
			"facebook": sectionOr(sections, 3, "Facebook post about "+trend.Title),
		}
	}

	return result
}

// defaultContent is the fully deterministic fallback used when no AI text is
// available at all.
func defaultContent(trend *types.Trend, contentType string) *GeneratedContent {
	result := &GeneratedContent{
		Title:       "Content about " + trend.Title,
		Description: "This content is about " + trend.Title + " in the " + trend.Niche + " niche.",
		SEOData:     seoData(trend),
	}

	switch contentType {
	case types.ContentTypeVideoScript:
		result.ScriptStructure = map[string]any{
			"introduction": "Introduction to " + trend.Title,
			"main_points": map[string]any{
				"point_1": "Main point 1 about " + trend.Title,
				"point_2": "Main point 2 about " + trend.Title,
				"point_3": "Main point 3 about " + trend.Title,
			},
			"conclusion":     "Conclusion about " + trend.Title,
			"call_to_action": "Like and subscribe for more content!",
		}
	case types.ContentTypeBlogPost:
		result.ScriptStructure = map[string]any{
			"introduction": "Introduction to " + trend.Title,
			"main_content": map[string]any{
				"section_1": map[string]any{
					"heading": "Understanding " + trend.Title,
					"content": "Content about understanding " + trend.Title,
				},
				"section_2": map[string]any{
					"heading": "Key Aspects of " + trend.Title,
					"content": "Content about key aspects of " + trend.Title,
				},
				"section_3": map[string]any{
					"heading": "Benefits of " + trend.Title,
					"content": "Content about benefits of " + trend.Title,
				},
			},
			"conclusion":     "Conclusion about " + trend.Title,
			"call_to_action": "Share this post if you found it helpful!",
		}
	case types.ContentTypeSocialMedia:
		result.ScriptStructure = map[string]any{
			"twitter": "Tweet about " + trend.Title,
			"instagram": map[string]any{
				"caption":  "Instagram caption about " + trend.Title,
				"hashtags": hashtags(trend),
			},
			"linkedin": "LinkedIn post about " + trend.Title,
			"facebook": "Facebook post about " + trend.Title,
		}
	}

	return result
}

func seoData(trend *types.Trend) map[string]any {
	keywords := trend.Keywords()
	if keywords == nil {
		keywords = []string{}
	}
	return map[string]any{
		"keywords":         keywords,
		"meta_description": "Learn about " + trend.Title + " in this comprehensive content.",
		"tags":             keywords,
	}
}

func hashtags(trend *types.Trend) []string {
	return []string{
		"#" + strings.ReplaceAll(trend.Title, " ", ""),
		"#" + trend.Niche,
		"#trending",
	}
}

func sectionOr(sections []string, i int, fallback string) string {
	if i < len(sections) && strings.TrimSpace(sections[i]) != "" {
		return sections[i]
	}
	return fallback
}
