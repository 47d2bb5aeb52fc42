package integration

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"skill-bridge/internal/app"
	"skill-bridge/internal/config"
	"skill-bridge/internal/dataset"
	"skill-bridge/internal/domain/forecast"
	"skill-bridge/internal/domain/graph"
	"skill-bridge/internal/domain/matching"
	"skill-bridge/internal/domain/taxonomy"
	"skill-bridge/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type analysisData struct {
	Role            string            `json:"role"`
	RequiredSkills  []string          `json:"required_skills"`
	MatchPercentage float64           `json:"match_percentage"`
	MatchingSkills  []string          `json:"matching_skills"`
	Gaps            []string          `json:"skill_gaps"`
	PredictedDays   int               `json:"predicted_days"`
	PredictedDate   string            `json:"predicted_placement_date"`
	Confidence      float64           `json:"confidence"`
	Roadmap         []json.RawMessage `json:"roadmap"`
	SemanticEnabled bool              `json:"semantic_enabled"`
}

// newTestApp wires the full HTTP stack without an embedding API key, so the
// engine runs in lexical mode and the test needs no network.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	cfg := config.Config{
		App: config.AppConfig{AppName: "skill-bridge", Environment: "test", HTTPPort: "0"},
	}

	tax := taxonomy.Default()
	jobs := dataset.DefaultJobs()
	skillGraph := graph.NewBuilder(nil, 0.7, nil).Build(t.Context(), jobs)

	engine := matching.NewEngine(nil, nil)
	forecaster := forecast.NewForecaster(tax, dataset.DefaultCatalog(), forecast.DefaultEstimator(), nil)

	analysisUC := usecase.NewAnalysisUsecase(engine, nil, forecaster, skillGraph, tax, jobs, 0, nil)

	container := &app.Container{
		Config:     cfg,
		AnalysisUC: analysisUC,
		SkillUC:    usecase.NewSkillUsecase(tax),
	}
	return app.New(container).Fiber
}

func TestIntegration_AnalysisFlow(t *testing.T) {
	fApp := newTestApp(t)

	body, _ := json.Marshal(map[string]interface{}{
		"role":              "Data Scientist",
		"skills":            []string{"Python", "SQL"},
		"project_count":     2,
		"experience_months": 12,
	})

	req := httptest.NewRequest("POST", "/api/v1/analysis/", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := fApp.Test(req)
	if err != nil {
		t.Fatalf("analysis request error: %v", err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("analysis decode error: %v", err)
	}
	if env.Status != 200 {
		t.Fatalf("analysis: expected status=200, got %d (message=%s)", env.Status, env.Message)
	}

	var data analysisData
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("analysis: data unmarshal error: %v", err)
	}

	if data.Role != "Data Scientist" {
		t.Fatalf("analysis: unexpected role %q", data.Role)
	}
	if data.MatchPercentage <= 0 || data.MatchPercentage > 100 {
		t.Fatalf("analysis: match percentage out of range: %v", data.MatchPercentage)
	}
	if len(data.MatchingSkills) != 2 {
		t.Fatalf("analysis: expected 2 matching skills, got %v", data.MatchingSkills)
	}
	if len(data.Gaps) == 0 {
		t.Fatalf("analysis: expected non-empty gaps")
	}
	if data.PredictedDays < 30 {
		t.Fatalf("analysis: expected predicted days >= 30, got %d", data.PredictedDays)
	}
	if data.Confidence < 0.5 || data.Confidence > 0.95 {
		t.Fatalf("analysis: confidence out of bounds: %v", data.Confidence)
	}
	if len(data.Roadmap) != len(data.Gaps) {
		t.Fatalf("analysis: expected one roadmap step per gap, got %d steps for %d gaps", len(data.Roadmap), len(data.Gaps))
	}
	if data.SemanticEnabled {
		t.Fatalf("analysis: expected lexical mode without an API key")
	}
}

func TestIntegration_AnalysisBadRequest(t *testing.T) {
	fApp := newTestApp(t)

	body, _ := json.Marshal(map[string]interface{}{"skills": []string{"python"}})
	req := httptest.NewRequest("POST", "/api/v1/analysis/", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := fApp.Test(req)
	if err != nil {
		t.Fatalf("analysis request error: %v", err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if env.Status != 400 {
		t.Fatalf("expected status=400 for missing role, got %d", env.Status)
	}
}

func TestIntegration_SkillsRolesHealth(t *testing.T) {
	fApp := newTestApp(t)

	for _, path := range []string{"/health", "/api/v1/skills", "/api/v1/roles", "/api/v1/roles/data%20scientist"} {
		req := httptest.NewRequest("GET", path, nil)
		resp, err := fApp.Test(req)
		if err != nil {
			t.Fatalf("%s request error: %v", path, err)
		}

		var env envelope
		if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
			resp.Body.Close()
			t.Fatalf("%s decode error: %v", path, err)
		}
		resp.Body.Close()

		if env.Status != 200 {
			t.Fatalf("%s: expected status=200, got %d (message=%s)", path, env.Status, env.Message)
		}
	}
}
