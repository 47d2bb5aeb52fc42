package matching

import (
	"context"
	"strings"

	"skill-bridge/internal/domain/normalize"
	"skill-bridge/internal/embedding"

	"go.uber.org/zap"
)

type MatchType string

const (
	MatchExact    MatchType = "exact"
	MatchStrong   MatchType = "strong"
	MatchSemantic MatchType = "semantic"
	MatchPartial  MatchType = "partial"
	MatchNone     MatchType = "none"
)

// PartialThreshold is the minimum score at which a required skill counts as
// covered. Results below it are gaps.
const PartialThreshold = 0.5

const (
	strongThreshold   = 0.90
	semanticThreshold = 0.75

	// Score assigned to substring matches in lexical degraded mode.
	lexicalPartialScore = 0.6
)

// MatchResult scores one required skill against the candidate's skill set.
// Lexical marks results produced without semantic scoring.
type MatchResult struct {
	Skill   string
	Type    MatchType
	Score   float64
	Lexical bool
}

// Engine matches candidate skills against role requirements. With a nil
// embedder the engine degrades to lexical matching (exact and substring)
// and reports Semantic() == false.
type Engine struct {
	embedder embedding.Embedder
	logger   *zap.Logger
}

func NewEngine(embedder embedding.Embedder, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{embedder: embedder, logger: logger}
}

// Semantic reports whether embedding-based scoring is available.
func (e *Engine) Semantic() bool {
	return e != nil && e.embedder != nil
}

// MatchSkill scores a single required skill. Exact match after
// normalization scores 1.0; otherwise the maximum cosine similarity against
// every candidate skill decides the tier. Scores below 0.5 are excluded
// from aggregates.
func (e *Engine) MatchSkill(ctx context.Context, candidate []string, required string) MatchResult {
	req := normalize.Normalize(required)
	cands := normalize.Slice(candidate)

	for _, c := range cands {
		if c == req {
			return MatchResult{Skill: req, Type: MatchExact, Score: 1.0}
		}
	}

	if !e.Semantic() {
		return e.lexicalMatch(cands, req)
	}

	best := 0.0
	for _, c := range cands {
		sim, err := embedding.Similarity(ctx, e.embedder, req, c)
		if err != nil {
			e.logger.Warn("similarity failed, falling back to lexical",
				zap.String("required", req), zap.String("candidate", c), zap.Error(err))
			return e.lexicalMatch(cands, req)
		}
		if sim > best {
			best = sim
		}
	}

	return MatchResult{Skill: req, Type: tierFor(best), Score: best}
}

// MatchRole scores every required skill and returns the aggregate match
// percentage: 100 * sum(scores >= 0.5) / len(required), or 0 for an empty
// required set.
func (e *Engine) MatchRole(ctx context.Context, candidate, required []string) ([]MatchResult, float64) {
	reqs := normalize.Slice(required)
	results := make([]MatchResult, 0, len(reqs))
	if len(reqs) == 0 {
		return results, 0
	}

	total := 0.0
	for _, req := range reqs {
		res := e.MatchSkill(ctx, candidate, req)
		results = append(results, res)
		if res.Score >= PartialThreshold {
			total += res.Score
		}
	}

	pct := 100 * total / float64(len(reqs))
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	return results, pct
}

func (e *Engine) lexicalMatch(cands []string, req string) MatchResult {
	for _, c := range cands {
		if strings.Contains(c, req) || strings.Contains(req, c) {
			return MatchResult{Skill: req, Type: MatchPartial, Score: lexicalPartialScore, Lexical: true}
		}
	}
	return MatchResult{Skill: req, Type: MatchNone, Score: 0, Lexical: true}
}

func tierFor(score float64) MatchType {
	switch {
	case score >= strongThreshold:
		return MatchStrong
	case score >= semanticThreshold:
		return MatchSemantic
	case score >= PartialThreshold:
		return MatchPartial
	default:
		return MatchNone
	}
}
