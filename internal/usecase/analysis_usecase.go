package usecase

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"skill-bridge/internal/dataset"
	"skill-bridge/internal/domain/forecast"
	"skill-bridge/internal/domain/gnn"
	"skill-bridge/internal/domain/graph"
	"skill-bridge/internal/domain/matching"
	"skill-bridge/internal/domain/normalize"
	"skill-bridge/internal/domain/roles"
	"skill-bridge/internal/domain/taxonomy"
)

type AnalysisParams struct {
	Role             string
	Skills           []string
	ProjectCount     int
	ExperienceMonths int
	Boost            float64
}

type AnalysisResult struct {
	Role             string
	RequiredSkills   []string
	MatchPercentage  float64
	Matches          []matching.MatchResult
	MatchingSkills   []string
	Gaps             []string
	PredictedMissing []string
	Forecast         forecast.Forecast
	SemanticEnabled  bool
}

type AnalysisUsecase interface {
	Analyze(ctx context.Context, p AnalysisParams) (AnalysisResult, error)
}

type Analysis struct {
	engine       *matching.Engine
	predictor    *gnn.Predictor
	forecaster   *forecast.Forecaster
	skillGraph   *graph.Graph
	tax          *taxonomy.Taxonomy
	jobs         []graph.JobRecord
	gnnThreshold float64
	logger       *zap.Logger
}

func NewAnalysisUsecase(
	engine *matching.Engine,
	predictor *gnn.Predictor,
	forecaster *forecast.Forecaster,
	skillGraph *graph.Graph,
	tax *taxonomy.Taxonomy,
	jobs []graph.JobRecord,
	gnnThreshold float64,
	logger *zap.Logger,
) *Analysis {
	if logger == nil {
		logger = zap.NewNop()
	}
	if gnnThreshold <= 0 || gnnThreshold >= 1 {
		gnnThreshold = gnn.DefaultConfidenceThreshold
	}
	return &Analysis{
		engine:       engine,
		predictor:    predictor,
		forecaster:   forecaster,
		skillGraph:   skillGraph,
		tax:          tax,
		jobs:         jobs,
		gnnThreshold: gnnThreshold,
		logger:       logger,
	}
}

func (u *Analysis) Analyze(ctx context.Context, p AnalysisParams) (AnalysisResult, error) {
	roleName := strings.TrimSpace(p.Role)
	if roleName == "" {
		return AnalysisResult{}, ErrInvalidInput
	}
	if u.engine == nil || u.forecaster == nil {
		return AnalysisResult{}, ErrInternal
	}

	skills := normalize.Slice(p.Skills)

	projects := p.ProjectCount
	if projects < 0 {
		projects = 0
	}
	months := p.ExperienceMonths
	if months < 0 {
		months = 0
	}
	boost := p.Boost
	if boost < 0 {
		boost = 0
	}
	if boost > 100 {
		boost = 100
	}

	role := u.resolveRole(roleName)

	results, pct := u.engine.MatchRole(ctx, skills, role.Skills)

	var predicted []string
	if u.predictor != nil && u.skillGraph != nil {
		predicted = u.predictor.PredictMissing(ctx, skills, u.skillGraph, u.tax.Ontology(), u.gnnThreshold)
	}

	fc := u.forecaster.Forecast(forecast.Params{
		Role:             role,
		RoleName:         roleName,
		CandidateSkills:  skills,
		MatchResults:     results,
		MatchPercentage:  pct,
		MissingPredicted: predicted,
		ProjectCount:     projects,
		ExperienceMonths: months,
		Boost:            boost,
	})

	matched := make([]string, 0, len(results))
	for _, r := range results {
		if r.Score >= matching.PartialThreshold {
			matched = append(matched, r.Skill)
		}
	}

	u.logger.Debug("analysis complete",
		zap.String("role", roleName),
		zap.Float64("match_percentage", pct),
		zap.Int("gaps", len(fc.Gaps)),
		zap.Int("predicted_missing", len(predicted)),
	)

	return AnalysisResult{
		Role:             roleName,
		RequiredSkills:   role.Skills,
		MatchPercentage:  pct,
		Matches:          results,
		MatchingSkills:   matched,
		Gaps:             fc.Gaps,
		PredictedMissing: predicted,
		Forecast:         fc,
		SemanticEnabled:  u.engine.Semantic(),
	}, nil
}

// resolveRole prefers the curated requirement tables, then titles from the
// loaded job dataset, then the generic fallback set.
func (u *Analysis) resolveRole(name string) roles.Requirement {
	if req, ok := roles.Lookup(name); ok {
		return req
	}
	if skills, ok := dataset.RoleSkills(u.jobs, name); ok {
		return roles.Requirement{Name: normalize.Normalize(name), Skills: normalize.Slice(skills)}
	}
	return roles.Fallback()
}
