package taxonomy

import (
	"skill-bridge/internal/domain/normalize"
)

type Tier string

const (
	TierEasy   Tier = "easy"
	TierMedium Tier = "medium"
	TierHard   Tier = "hard"
)

// Skill is a canonical taxonomy entry. Immutable after load.
type Skill struct {
	Name        string
	Category    string
	Subcategory string
	Tier        Tier
	BaseWeeks   int
}

type Subcategory struct {
	Name   string
	Skills []Skill
}

type Category struct {
	Name          string
	Subcategories []Subcategory
}

// Industry holds per-industry skill demand data.
type Industry struct {
	HotSkills       []string
	EmergingSkills  []string
	CategoryWeights map[string]float64
}

// Taxonomy is the read-only skill reference vocabulary. Loaded once per
// process; safe for concurrent reads.
type Taxonomy struct {
	categories []Category
	industries map[string]Industry
	byName     map[string]Skill
	ontology   []string
}

func New(categories []Category, industries map[string]Industry) *Taxonomy {
	t := &Taxonomy{
		categories: categories,
		industries: industries,
		byName:     make(map[string]Skill),
	}
	for _, cat := range categories {
		for _, sub := range cat.Subcategories {
			for _, sk := range sub.Skills {
				key := normalize.Normalize(sk.Name)
				if key == "" {
					continue
				}
				if _, ok := t.byName[key]; ok {
					continue
				}
				t.byName[key] = sk
				t.ontology = append(t.ontology, key)
			}
		}
	}
	return t
}

func (t *Taxonomy) Categories() []Category {
	if t == nil {
		return nil
	}
	return t.categories
}

// Flatten returns every skill in the taxonomy, deduplicated.
func (t *Taxonomy) Flatten() []Skill {
	if t == nil {
		return nil
	}
	out := make([]Skill, 0, len(t.ontology))
	for _, name := range t.ontology {
		out = append(out, t.byName[name])
	}
	return out
}

// Ontology returns the flattened, normalized skill vocabulary. Used as the
// label space for missing-skill prediction and for embedding precompute.
func (t *Taxonomy) Ontology() []string {
	if t == nil {
		return nil
	}
	return t.ontology
}

func (t *Taxonomy) Lookup(name string) (Skill, bool) {
	if t == nil {
		return Skill{}, false
	}
	sk, ok := t.byName[normalize.Normalize(name)]
	return sk, ok
}

const (
	defaultTier  = TierMedium
	defaultWeeks = 4
)

// Difficulty resolves a skill to its learning difficulty. Unknown skills
// fall back to (medium, 4 weeks).
func (t *Taxonomy) Difficulty(name string) (Tier, int) {
	sk, ok := t.Lookup(name)
	if !ok || sk.Tier == "" {
		return defaultTier, defaultWeeks
	}
	weeks := sk.BaseWeeks
	if weeks <= 0 {
		weeks = defaultWeeks
	}
	return sk.Tier, weeks
}

func (t *Taxonomy) Industry(name string) (Industry, bool) {
	if t == nil {
		return Industry{}, false
	}
	ind, ok := t.industries[normalize.Normalize(name)]
	return ind, ok
}
