package services

import (
	"fmt"
	"strings"

	types "github.com/trendforge/trendforge-backend/internal/domain"
)

// preparePrompt renders the generation prompt for a trend and content type.
// Tone and style come from the user's content preferences when present.
func preparePrompt(trend *types.Trend, contentType string, preferences map[string]any) string {
	tone := stringPreference(preferences, "tone", "professional")
	style := stringPreference(preferences, "style", "informative")

	var b strings.Builder
	fmt.Fprintf(&b, "Create a %s about %s.\n\n", contentType, trend.Title)
	fmt.Fprintf(&b, "Niche: %s\n", trend.Niche)
	fmt.Fprintf(&b, "Keywords: %s\n", strings.Join(trend.Keywords(), ", "))
	fmt.Fprintf(&b, "Tone: %s\n", tone)
	fmt.Fprintf(&b, "Style: %s\n\n", style)

	switch contentType {
	case types.ContentTypeVideoScript:
		b.WriteString("Create a structured video script with the following sections:\n")
		b.WriteString("1. Introduction (hook the viewer)\n")
		b.WriteString("2. Main points (3-5 key points)\n")
		b.WriteString("3. Conclusion\n")
		b.WriteString("4. Call to action\n\n")
		b.WriteString("Also include SEO-friendly title, description, and tags.\n")
	case types.ContentTypeBlogPost:
		b.WriteString("Create a structured blog post with the following sections:\n")
		b.WriteString("1. Introduction\n")
		b.WriteString("2. Main content (with subheadings)\n")
		b.WriteString("3. Conclusion\n")
		b.WriteString("4. Call to action\n\n")
		b.WriteString("Also include SEO-friendly title, meta description, and keywords.\n")
	case types.ContentTypeSocialMedia:
		b.WriteString("Create a set of social media posts for different platforms:\n")
		b.WriteString("1. Twitter (280 characters)\n")
		b.WriteString("2. Instagram (caption with hashtags)\n")
		b.WriteString("3. LinkedIn (professional tone)\n")
		b.WriteString("4. Facebook (engaging post)\n\n")
		b.WriteString("Also include hashtags and engagement questions.\n")
	}

	return b.String()
}

func stringPreference(preferences map[string]any, key, fallback string) string {
	if preferences == nil {
		return fallback
	}
	if v, ok := preferences[key].(string); ok && strings.TrimSpace(v) != "" {
		return v
	}
	return fallback
}
