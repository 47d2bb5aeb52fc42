package forecast

import (
	"fmt"
	"sort"
	"time"

	"skill-bridge/internal/domain/matching"
	"skill-bridge/internal/domain/normalize"
	"skill-bridge/internal/domain/roles"
	"skill-bridge/internal/domain/taxonomy"

	"go.uber.org/zap"
)

const (
	// MinPredictedDays is a hard floor on any forecast.
	MinPredictedDays = 30

	minConfidence = 0.5
	maxConfidence = 0.95

	// multiplierFloor keeps gap durations positive however many reductions
	// stack up.
	multiplierFloor = 0.1
)

// RoadmapItem is one learning step: the gap skill, a resource suggestion
// and a difficulty/duration label.
type RoadmapItem struct {
	Skill    string
	Resource string
	Duration string
}

// Forecast is the full placement prediction handed to callers. Plain,
// serializable data only.
type Forecast struct {
	PredictedDays   int
	PredictedDate   time.Time
	Confidence      float64
	MatchPercentage float64
	Gaps            []string
	MatchingSkills  []matching.MatchResult
	Roadmap         []RoadmapItem
	Explanation     map[string]float64
}

// Catalog resolves a skill to a learning resource description.
type Catalog interface {
	Resource(skill string) (string, bool)
}

// Params carries the per-request inputs. Match results and predicted
// missing skills come from the matcher and predictor upstream.
type Params struct {
	Role             roles.Requirement
	RoleName         string
	CandidateSkills  []string
	MatchResults     []matching.MatchResult
	MatchPercentage  float64
	MissingPredicted []string
	ProjectCount     int
	ExperienceMonths int
	Boost            float64 // external project-skill boost, 0-100
}

// Forecaster turns match results and gaps into a readiness forecast with a
// learning roadmap.
type Forecaster struct {
	tax       *taxonomy.Taxonomy
	catalog   Catalog
	estimator Estimator
	now       func() time.Time
	logger    *zap.Logger
}

func NewForecaster(tax *taxonomy.Taxonomy, catalog Catalog, estimator Estimator, logger *zap.Logger) *Forecaster {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Forecaster{
		tax:       tax,
		catalog:   catalog,
		estimator: estimator,
		now:       time.Now,
		logger:    logger,
	}
}

// WithClock overrides the time source. Test hook.
func (f *Forecaster) WithClock(now func() time.Time) *Forecaster {
	if now != nil {
		f.now = now
	}
	return f
}

func (f *Forecaster) Forecast(p Params) Forecast {
	// Anchor captured once so the whole computation shares one time base.
	anchor := f.now()

	gaps := f.collectGaps(p)
	mult := f.difficultyMultiplier(p, len(gaps))

	totalDays := 0.0
	weightedDifficulty := 0.0
	roadmap := make([]RoadmapItem, 0, len(gaps))
	for _, gap := range gaps {
		tier, baseWeeks := f.tax.Difficulty(gap)
		weeks := float64(baseWeeks) * mult
		totalDays += weeks * 7
		weightedDifficulty += tierWeight(tier)
		roadmap = append(roadmap, RoadmapItem{
			Skill:    gap,
			Resource: f.resource(gap),
			Duration: fmt.Sprintf("%s (%.1f weeks)", tier, weeks),
		})
	}

	baseline := f.estimator.BaselineDays(len(gaps), p.MatchPercentage, weightedDifficulty)
	adjustments := experienceAdjustment(p.ExperienceMonths) + projectAdjustment(p.ProjectCount)

	days := int(baseline + totalDays - adjustments)
	if days < MinPredictedDays {
		days = MinPredictedDays
	}

	confidence := clamp(minConfidence, maxConfidence,
		0.95-
			0.05*float64(len(gaps))+
			p.MatchPercentage/1000+
			minFloat(float64(p.ProjectCount)*0.05, 0.15)+
			p.Boost/100,
	)

	explanation := f.estimator.Contributions(len(gaps), p.MatchPercentage, weightedDifficulty)
	explanation["project_boost"] = p.Boost / 100

	f.logger.Debug("placement forecast computed",
		zap.String("role", p.RoleName),
		zap.Int("gaps", len(gaps)),
		zap.Int("predicted_days", days),
		zap.Float64("confidence", confidence),
	)

	return Forecast{
		PredictedDays:   days,
		PredictedDate:   anchor.AddDate(0, 0, days),
		Confidence:      confidence,
		MatchPercentage: p.MatchPercentage,
		Gaps:            gaps,
		MatchingSkills:  p.MatchResults,
		Roadmap:         roadmap,
		Explanation:     explanation,
	}
}

// collectGaps unions unmatched required skills with predicted missing
// skills, deduplicated and ordered by priority: role weight, then harder
// tiers first, then name.
func (f *Forecaster) collectGaps(p Params) []string {
	seen := make(map[string]struct{})
	gaps := make([]string, 0)
	add := func(skill string) {
		n := normalize.Normalize(skill)
		if n == "" {
			return
		}
		if _, ok := seen[n]; ok {
			return
		}
		seen[n] = struct{}{}
		gaps = append(gaps, n)
	}

	for _, res := range p.MatchResults {
		if res.Score < matching.PartialThreshold {
			add(res.Skill)
		}
	}
	for _, sk := range p.MissingPredicted {
		add(sk)
	}

	sort.SliceStable(gaps, func(i, j int) bool {
		wi, wj := p.Role.Weight(gaps[i]), p.Role.Weight(gaps[j])
		if wi != wj {
			return wi > wj
		}
		ti, _ := f.tax.Difficulty(gaps[i])
		tj, _ := f.tax.Difficulty(gaps[j])
		if tierWeight(ti) != tierWeight(tj) {
			return tierWeight(ti) > tierWeight(tj)
		}
		return gaps[i] < gaps[j]
	})
	return gaps
}

func (f *Forecaster) difficultyMultiplier(p Params, numGaps int) float64 {
	mult := 1.0
	if numGaps > 3 {
		mult = 1.2
	}
	if roles.MachineLearningHeavy(p.RoleName) {
		mult *= 1.5
	}
	if p.ProjectCount > 2 {
		mult -= 0.2
	}
	mult -= p.Boost / 100
	if mult < multiplierFloor {
		mult = multiplierFloor
	}
	return mult
}

func (f *Forecaster) resource(skill string) string {
	if f.catalog != nil {
		if res, ok := f.catalog.Resource(skill); ok {
			return res
		}
	}
	return "Self-study " + skill
}

func tierWeight(t taxonomy.Tier) float64 {
	switch t {
	case taxonomy.TierHard:
		return 1.0
	case taxonomy.TierMedium:
		return 0.5
	default:
		return 0.2
	}
}

func experienceAdjustment(months int) float64 {
	if months < 0 {
		months = 0
	}
	return minFloat(float64(months)/12*10, 20)
}

func projectAdjustment(projects int) float64 {
	if projects < 0 {
		projects = 0
	}
	return minFloat(float64(projects)*5, 15)
}

func clamp(lo, hi, v float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
