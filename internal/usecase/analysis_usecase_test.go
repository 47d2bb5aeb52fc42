package usecase

import (
	"context"
	"errors"
	"math"
	"testing"

	"skill-bridge/internal/domain/forecast"
	"skill-bridge/internal/domain/graph"
	"skill-bridge/internal/domain/matching"
	"skill-bridge/internal/domain/taxonomy"
)

type stubCatalog struct{}

func (stubCatalog) Resource(string) (string, bool) { return "", false }

func newTestAnalysis(jobs []graph.JobRecord) *Analysis {
	tax := taxonomy.Default()
	engine := matching.NewEngine(nil, nil)
	forecaster := forecast.NewForecaster(tax, stubCatalog{}, forecast.DefaultEstimator(), nil)
	return NewAnalysisUsecase(engine, nil, forecaster, nil, tax, jobs, 0, nil)
}

func TestAnalyze_EmptyRoleRejected(t *testing.T) {
	u := newTestAnalysis(nil)

	_, err := u.Analyze(context.Background(), AnalysisParams{Role: "  ", Skills: []string{"python"}})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAnalyze_KnownRole(t *testing.T) {
	u := newTestAnalysis(nil)

	res, err := u.Analyze(context.Background(), AnalysisParams{
		Role:   "Data Scientist",
		Skills: []string{"Python", "SQL"},
	})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if len(res.RequiredSkills) != 15 {
		t.Fatalf("expected 15 required skills, got %d", len(res.RequiredSkills))
	}
	want := 100.0 * 2 / 15
	if math.Abs(res.MatchPercentage-want) > 1e-9 {
		t.Fatalf("expected match percentage %.4f, got %.4f", want, res.MatchPercentage)
	}
	if len(res.MatchingSkills) != 2 {
		t.Fatalf("expected 2 matching skills, got %v", res.MatchingSkills)
	}
	if len(res.Gaps) != 13 {
		t.Fatalf("expected 13 gaps, got %d", len(res.Gaps))
	}
	if res.Forecast.PredictedDays < 30 {
		t.Fatalf("expected predicted days >= 30, got %d", res.Forecast.PredictedDays)
	}
	if res.SemanticEnabled {
		t.Fatal("expected semantic scoring disabled without an embedder")
	}
	if len(res.PredictedMissing) != 0 {
		t.Fatalf("expected no GNN predictions without a predictor, got %v", res.PredictedMissing)
	}
}

func TestAnalyze_SkillsNormalized(t *testing.T) {
	u := newTestAnalysis(nil)

	res, err := u.Analyze(context.Background(), AnalysisParams{
		Role:   "Machine Learning Engineer",
		Skills: []string{"Py", "  ML  ", "python"},
	})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	found := map[string]bool{}
	for _, s := range res.MatchingSkills {
		found[s] = true
	}
	if !found["python"] || !found["machine learning"] {
		t.Fatalf("expected normalized abbreviations to match, got %v", res.MatchingSkills)
	}
}

func TestAnalyze_UnknownRoleFallsBackToDataset(t *testing.T) {
	jobs := []graph.JobRecord{
		{ID: "j1", Title: "Platform Engineer", Skills: []string{"kubernetes", "terraform", "go"}},
	}
	u := newTestAnalysis(jobs)

	res, err := u.Analyze(context.Background(), AnalysisParams{
		Role:   "Platform Engineer",
		Skills: []string{"kubernetes"},
	})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if len(res.RequiredSkills) != 3 {
		t.Fatalf("expected dataset-derived requirements, got %v", res.RequiredSkills)
	}
}

func TestAnalyze_UnknownRoleGenericFallback(t *testing.T) {
	u := newTestAnalysis(nil)

	res, err := u.Analyze(context.Background(), AnalysisParams{
		Role:   "Astronaut",
		Skills: []string{"python"},
	})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if len(res.RequiredSkills) != 6 {
		t.Fatalf("expected the generic fallback requirement set, got %v", res.RequiredSkills)
	}
}

func TestAnalyze_NegativeInputsClamped(t *testing.T) {
	u := newTestAnalysis(nil)

	res, err := u.Analyze(context.Background(), AnalysisParams{
		Role:             "Data Scientist",
		Skills:           []string{"python"},
		ProjectCount:     -3,
		ExperienceMonths: -12,
		Boost:            -50,
	})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if res.Forecast.Confidence < 0.5 || res.Forecast.Confidence > 0.95 {
		t.Fatalf("confidence out of bounds: %v", res.Forecast.Confidence)
	}
	if res.Forecast.PredictedDays < 30 {
		t.Fatalf("expected predicted days >= 30, got %d", res.Forecast.PredictedDays)
	}
}

func TestListSkillsAndRoles(t *testing.T) {
	u := NewSkillUsecase(taxonomy.Default())

	skills, err := u.ListSkills(context.Background())
	if err != nil {
		t.Fatalf("ListSkills: %v", err)
	}
	if len(skills) == 0 {
		t.Fatal("expected non-empty skill list")
	}

	rolesList, err := u.ListRoles(context.Background())
	if err != nil {
		t.Fatalf("ListRoles: %v", err)
	}
	if len(rolesList) != 6 {
		t.Fatalf("expected 6 known roles, got %d", len(rolesList))
	}

	role, err := u.GetRole(context.Background(), "data scientist")
	if err != nil {
		t.Fatalf("GetRole: %v", err)
	}
	if role.Name != "Data Scientist" {
		t.Fatalf("unexpected role: %+v", role)
	}

	if _, err := u.GetRole(context.Background(), ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty role, got %v", err)
	}
}
