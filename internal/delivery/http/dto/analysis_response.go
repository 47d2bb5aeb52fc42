package dto

import (
	"time"

	"skill-bridge/internal/usecase"
)

type SkillMatch struct {
	Skill   string  `json:"skill"`
	Type    string  `json:"match_type"`
	Score   float64 `json:"score"`
	Lexical bool    `json:"lexical,omitempty"`
}

type RoadmapStep struct {
	Skill    string `json:"skill"`
	Resource string `json:"resource"`
	Duration string `json:"duration"`
}

type AnalysisResponse struct {
	Role             string             `json:"role"`
	RequiredSkills   []string           `json:"required_skills"`
	MatchPercentage  float64            `json:"match_percentage"`
	Matches          []SkillMatch       `json:"matches"`
	MatchingSkills   []string           `json:"matching_skills"`
	Gaps             []string           `json:"skill_gaps"`
	PredictedMissing []string           `json:"predicted_missing_skills"`
	PredictedDays    int                `json:"predicted_days"`
	PredictedDate    string             `json:"predicted_placement_date"`
	Confidence       float64            `json:"confidence"`
	Roadmap          []RoadmapStep      `json:"roadmap"`
	Explanation      map[string]float64 `json:"explanation"`
	SemanticEnabled  bool               `json:"semantic_enabled"`
}

func NewAnalysisResponse(res usecase.AnalysisResult) AnalysisResponse {
	matches := make([]SkillMatch, 0, len(res.Matches))
	for _, m := range res.Matches {
		matches = append(matches, SkillMatch{
			Skill:   m.Skill,
			Type:    string(m.Type),
			Score:   m.Score,
			Lexical: m.Lexical,
		})
	}

	roadmap := make([]RoadmapStep, 0, len(res.Forecast.Roadmap))
	for _, step := range res.Forecast.Roadmap {
		roadmap = append(roadmap, RoadmapStep{
			Skill:    step.Skill,
			Resource: step.Resource,
			Duration: step.Duration,
		})
	}

	return AnalysisResponse{
		Role:             res.Role,
		RequiredSkills:   res.RequiredSkills,
		MatchPercentage:  res.MatchPercentage,
		Matches:          matches,
		MatchingSkills:   res.MatchingSkills,
		Gaps:             res.Gaps,
		PredictedMissing: res.PredictedMissing,
		PredictedDays:    res.Forecast.PredictedDays,
		PredictedDate:    res.Forecast.PredictedDate.Format(time.DateOnly),
		Confidence:       res.Forecast.Confidence,
		Roadmap:          roadmap,
		Explanation:      res.Forecast.Explanation,
		SemanticEnabled:  res.SemanticEnabled,
	}
}
