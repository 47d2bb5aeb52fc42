package matching

import (
	"context"
	"math"
	"testing"
)

// oneHot assigns each registered text an orthogonal vector, so distinct
// skills have zero similarity unless vectors are set explicitly.
type stubEmbedder struct {
	vectors map[string][]float32
	next    int
	dim     int
}

func newStubEmbedder(dim int) *stubEmbedder {
	return &stubEmbedder{vectors: make(map[string][]float32), dim: dim}
}

func (s *stubEmbedder) set(text string, vec []float32) {
	s.vectors[text] = vec
}

func (s *stubEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	if v, ok := s.vectors[text]; ok {
		return v, nil
	}
	v := make([]float32, s.dim)
	v[s.next%s.dim] = 1
	s.next++
	s.vectors[text] = v
	return v, nil
}

func TestMatchSkill_ExactAfterNormalization(t *testing.T) {
	e := NewEngine(newStubEmbedder(8), nil)

	res := e.MatchSkill(context.Background(), []string{"Py", "SQL"}, "python")
	if res.Type != MatchExact || res.Score != 1.0 {
		t.Fatalf("expected exact/1.0, got %s/%v", res.Type, res.Score)
	}
}

func TestMatchSkill_Tiers(t *testing.T) {
	stub := newStubEmbedder(3)
	stub.set("machine learning", []float32{1, 0, 0})
	stub.set("deep learning", []float32{0.96, 0.28, 0}) // cos 0.96, strong
	stub.set("statistics", []float32{0.8, 0.6, 0})      // cos 0.8, semantic
	stub.set("java", []float32{0.6, 0.8, 0})            // cos 0.6, partial
	stub.set("digital marketing", []float32{0, 0, 1})   // cos 0, none
	e := NewEngine(stub, nil)
	ctx := context.Background()

	cases := []struct {
		candidate string
		wantType  MatchType
	}{
		{"deep learning", MatchStrong},
		{"statistics", MatchSemantic},
		{"java", MatchPartial},
		{"digital marketing", MatchNone},
	}
	for _, tc := range cases {
		res := e.MatchSkill(ctx, []string{tc.candidate}, "machine learning")
		if res.Type != tc.wantType {
			t.Fatalf("candidate %q: expected %s, got %s (score %v)", tc.candidate, tc.wantType, res.Type, res.Score)
		}
		if res.Score < 0 || res.Score > 1 {
			t.Fatalf("candidate %q: score %v out of [0,1]", tc.candidate, res.Score)
		}
	}
}

func TestMatchRole_ScenarioDataScience(t *testing.T) {
	// known = {python, sql} against {python, r, sql, statistics, machine
	// learning} with orthogonal embeddings: exactly the two exact matches
	// count, 40% before any semantic boost.
	e := NewEngine(newStubEmbedder(16), nil)

	results, pct := e.MatchRole(context.Background(),
		[]string{"python", "sql"},
		[]string{"python", "r", "sql", "statistics", "machine learning"},
	)

	if math.Abs(pct-40.0) > 1e-9 {
		t.Fatalf("expected match percentage 40.0, got %v", pct)
	}

	exact := map[string]bool{}
	for _, r := range results {
		if r.Type == MatchExact {
			exact[r.Skill] = true
		}
	}
	if !exact["python"] || !exact["sql"] || len(exact) != 2 {
		t.Fatalf("expected exact matches {python, sql}, got %v", exact)
	}
}

func TestMatchRole_EmptyCandidate(t *testing.T) {
	e := NewEngine(newStubEmbedder(8), nil)

	results, pct := e.MatchRole(context.Background(), nil,
		[]string{"python", "sql", "aws", "react", "git"})

	if pct != 0 {
		t.Fatalf("expected 0%%, got %v", pct)
	}
	if len(results) != 5 {
		t.Fatalf("expected 5 results, got %d", len(results))
	}
	for _, r := range results {
		if r.Type == MatchExact {
			t.Fatalf("unexpected exact match %q with empty candidate set", r.Skill)
		}
	}
}

func TestMatchRole_EmptyRequired(t *testing.T) {
	e := NewEngine(newStubEmbedder(8), nil)

	results, pct := e.MatchRole(context.Background(), []string{"python"}, nil)
	if pct != 0 {
		t.Fatalf("expected 0%% for empty required set, got %v", pct)
	}
	if len(results) != 0 {
		t.Fatalf("expected no results, got %d", len(results))
	}
}

func TestMatchRole_PercentageBounds(t *testing.T) {
	e := NewEngine(newStubEmbedder(8), nil)

	_, pct := e.MatchRole(context.Background(),
		[]string{"python", "sql", "aws"},
		[]string{"python", "sql", "aws"},
	)
	if pct < 0 || pct > 100 {
		t.Fatalf("percentage %v out of [0,100]", pct)
	}
	if math.Abs(pct-100) > 1e-9 {
		t.Fatalf("expected 100%% for full overlap, got %v", pct)
	}
}

func TestMatchSkill_LexicalFallback(t *testing.T) {
	e := NewEngine(nil, nil)

	if e.Semantic() {
		t.Fatalf("expected semantic disabled without embedder")
	}

	res := e.MatchSkill(context.Background(), []string{"python"}, "python")
	if res.Type != MatchExact || res.Score != 1.0 {
		t.Fatalf("lexical exact: expected exact/1.0, got %s/%v", res.Type, res.Score)
	}

	res = e.MatchSkill(context.Background(), []string{"machine learning engineer"}, "machine learning")
	if res.Type != MatchPartial || !res.Lexical {
		t.Fatalf("expected lexical partial, got %s (lexical=%v)", res.Type, res.Lexical)
	}

	res = e.MatchSkill(context.Background(), []string{"cooking"}, "machine learning")
	if res.Type != MatchNone || res.Score != 0 {
		t.Fatalf("expected none/0, got %s/%v", res.Type, res.Score)
	}
}
