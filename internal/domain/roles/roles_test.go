package roles

import "testing"

func TestLookup_CaseInsensitive(t *testing.T) {
	req, ok := Lookup("DATA SCIENTIST")
	if !ok {
		t.Fatalf("expected data scientist role")
	}
	if req.Name != "Data Scientist" {
		t.Fatalf("unexpected name %q", req.Name)
	}
}

func TestResolve_UnknownFallsBack(t *testing.T) {
	req := Resolve("Chief Vibes Officer")
	if req.Name != "Generic" {
		t.Fatalf("expected generic fallback, got %q", req.Name)
	}
	if len(req.Skills) == 0 {
		t.Fatalf("expected fallback skill set")
	}
}

func TestWeight_DefaultsToOne(t *testing.T) {
	req := Resolve("Software Engineer")
	if w := req.Weight("python"); w != 1 {
		t.Fatalf("expected weight 1, got %v", w)
	}
}

func TestMachineLearningHeavy(t *testing.T) {
	cases := map[string]bool{
		"Machine Learning Engineer": true,
		"Data Scientist":            true,
		"Frontend Developer":        false,
	}
	for role, want := range cases {
		if got := MachineLearningHeavy(role); got != want {
			t.Fatalf("MachineLearningHeavy(%q) = %v, want %v", role, got, want)
		}
	}
}
