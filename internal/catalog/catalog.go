// Package catalog holds the built-in trend catalog used when no external
// trend source is available. Entries are static editorial picks per niche.
package catalog

import (
	"strings"

	types "github.com/trendforge/trendforge-backend/internal/domain"
)

// DefaultNiches are the niches the ingestion job refreshes on schedule.
var DefaultNiches = []string{"tech", "gaming", "motivation", "business", "health", "education"}

var byNiche = map[string][]types.TrendCandidate{
	"tech": {
		{
			Title:           "Latest AI Advancements in 2025",
			Description:     "Exploring the cutting-edge developments in artificial intelligence and machine learning.",
			Keywords:        []string{"artificial intelligence", "machine learning", "neural networks", "deep learning", "AI"},
			PopularityScore: 95,
			Metadata: map[string]any{
				"video_id":      "mock_tech_1",
				"channel_title": "Tech Insights",
				"view_count":    1500000,
				"like_count":    75000,
				"comment_count": 12000,
			},
		},
		{
			Title:           "The Future of Quantum Computing",
			Description:     "How quantum computing is revolutionizing data processing and solving complex problems.",
			Keywords:        []string{"quantum computing", "qubits", "superposition", "entanglement", "computing"},
			PopularityScore: 88,
			Metadata: map[string]any{
				"video_id":      "mock_tech_2",
				"channel_title": "Quantum World",
				"view_count":    980000,
				"like_count":    62000,
				"comment_count": 8500,
			},
		},
	},
	"gaming": {
		{
			Title:           "Next-Gen Console Comparison",
			Description:     "Detailed analysis of the latest gaming consoles and their performance capabilities.",
			Keywords:        []string{"gaming", "console", "playstation", "xbox", "nintendo"},
			PopularityScore: 92,
			Metadata: map[string]any{
				"video_id":      "mock_gaming_1",
				"channel_title": "Game Review HQ",
				"view_count":    1200000,
				"like_count":    85000,
				"comment_count": 15000,
			},
		},
		{
			Title:           "Top 10 Open World Games of 2025",
			Description:     "Exploring the most immersive and expansive open world games released this year.",
			Keywords:        []string{"open world", "gaming", "rpg", "adventure", "sandbox"},
			PopularityScore: 87,
			Metadata: map[string]any{
				"video_id":      "mock_gaming_2",
				"channel_title": "Gaming Universe",
				"view_count":    950000,
				"like_count":    72000,
				"comment_count": 9800,
			},
		},
	},
	"motivation": {
		{
			Title:           "Overcoming Adversity: Success Stories",
			Description:     "Inspiring stories of individuals who overcame significant challenges to achieve success.",
			Keywords:        []string{"motivation", "success", "inspiration", "perseverance", "achievement"},
			PopularityScore: 89,
			Metadata: map[string]any{
				"video_id":      "mock_motivation_1",
				"channel_title": "Inspire Daily",
				"view_count":    1100000,
				"like_count":    92000,
				"comment_count": 18000,
			},
		},
		{
			Title:           "Mindfulness Techniques for Productivity",
			Description:     "How practicing mindfulness can significantly boost your productivity and focus.",
			Keywords:        []string{"mindfulness", "productivity", "focus", "meditation", "mental health"},
			PopularityScore: 84,
			Metadata: map[string]any{
				"video_id":      "mock_motivation_2",
				"channel_title": "Mindful Living",
				"view_count":    820000,
				"like_count":    65000,
				"comment_count": 7500,
			},
		},
	},
	"business": {
		{
			Title:           "Sustainable Business Models for 2025",
			Description:     "Exploring eco-friendly and sustainable business practices that are shaping the future.",
			Keywords:        []string{"sustainable business", "eco-friendly", "green economy", "corporate responsibility", "environmental"},
			PopularityScore: 86,
			Metadata: map[string]any{
				"video_id":      "mock_business_1",
				"channel_title": "Business Forward",
				"view_count":    920000,
				"like_count":    58000,
				"comment_count": 8200,
			},
		},
		{
			Title:           "Remote Work Revolution: The New Normal",
			Description:     "How remote work is transforming business operations and employee expectations.",
			Keywords:        []string{"remote work", "work from home", "digital nomad", "flexible work", "business"},
			PopularityScore: 90,
			Metadata: map[string]any{
				"video_id":      "mock_business_2",
				"channel_title": "Future of Work",
				"view_count":    1050000,
				"like_count":    78000,
				"comment_count": 12500,
			},
		},
	},
	"health": {
		{
			Title:           "Holistic Approaches to Mental Wellness",
			Description:     "Comprehensive strategies for maintaining mental health through integrated approaches.",
			Keywords:        []string{"mental health", "wellness", "holistic", "psychology", "self-care"},
			PopularityScore: 93,
			Metadata: map[string]any{
				"video_id":      "mock_health_1",
				"channel_title": "Wellness Journey",
				"view_count":    1300000,
				"like_count":    95000,
				"comment_count": 16000,
			},
		},
		{
			Title:           "Nutrition Science: Latest Discoveries",
			Description:     "Recent breakthroughs in understanding how nutrition affects overall health and longevity.",
			Keywords:        []string{"nutrition", "diet", "health", "food science", "metabolism"},
			PopularityScore: 85,
			Metadata: map[string]any{
				"video_id":      "mock_health_2",
				"channel_title": "Nutrition Facts",
				"view_count":    880000,
				"like_count":    62000,
				"comment_count": 9000,
			},
		},
	},
	"education": {
		{
			Title:           "The Future of Online Learning",
			Description:     "How digital platforms are transforming education and creating new learning opportunities.",
			Keywords:        []string{"online learning", "e-learning", "education", "digital classroom", "remote education"},
			PopularityScore: 91,
			Metadata: map[string]any{
				"video_id":      "mock_education_1",
				"channel_title": "Education Evolution",
				"view_count":    1150000,
				"like_count":    82000,
				"comment_count": 13500,
			},
		},
		{
			Title:           "Personalized Learning: Adapting to Individual Needs",
			Description:     "How customized educational approaches are helping students reach their full potential.",
			Keywords:        []string{"personalized learning", "adaptive education", "individual learning", "education technology", "learning styles"},
			PopularityScore: 83,
			Metadata: map[string]any{
				"video_id":      "mock_education_2",
				"channel_title": "Learning Insights",
				"view_count":    780000,
				"like_count":    56000,
				"comment_count": 7200,
			},
		},
	},
}

// ForNiche returns the catalog entries for a niche. Unknown niches get a
// single generic entry so callers always have at least one candidate.
func ForNiche(niche string) []types.TrendCandidate {
	if entries, ok := byNiche[niche]; ok {
		out := make([]types.TrendCandidate, len(entries))
		copy(out, entries)
		return out
	}
	return []types.TrendCandidate{
		{
			Title:           "Emerging Trends in " + titleCase(niche),
			Description:     "Exploring the latest developments and trends in " + niche + ".",
			Keywords:        []string{niche, "trends", "innovation", "development", "future"},
			PopularityScore: 80,
			Metadata: map[string]any{
				"video_id":      "mock_generic_1",
				"channel_title": "Trend Watchers",
				"view_count":    750000,
				"like_count":    45000,
				"comment_count": 6000,
			},
		},
	}
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
