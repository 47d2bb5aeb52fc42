package usecase

import (
	"context"
	"strings"

	"skill-bridge/internal/domain/roles"
	"skill-bridge/internal/domain/taxonomy"
)

type SkillItem struct {
	Name        string
	Category    string
	Subcategory string
	Tier        string
}

type RoleItem struct {
	Name   string
	Skills []string
}

type SkillUsecase interface {
	ListSkills(ctx context.Context) ([]SkillItem, error)
	ListRoles(ctx context.Context) ([]RoleItem, error)
	GetRole(ctx context.Context, name string) (RoleItem, error)
}

type Skill struct {
	tax *taxonomy.Taxonomy
}

func NewSkillUsecase(tax *taxonomy.Taxonomy) *Skill {
	return &Skill{tax: tax}
}

func (u *Skill) ListSkills(_ context.Context) ([]SkillItem, error) {
	if u.tax == nil {
		return nil, ErrInternal
	}

	items := make([]SkillItem, 0)
	for _, sk := range u.tax.Flatten() {
		items = append(items, SkillItem{
			Name:        sk.Name,
			Category:    sk.Category,
			Subcategory: sk.Subcategory,
			Tier:        string(sk.Tier),
		})
	}
	return items, nil
}

func (u *Skill) ListRoles(_ context.Context) ([]RoleItem, error) {
	names := roles.Names()
	out := make([]RoleItem, 0, len(names))
	for _, name := range names {
		req, ok := roles.Lookup(name)
		if !ok {
			continue
		}
		out = append(out, RoleItem{Name: req.Name, Skills: req.Skills})
	}
	return out, nil
}

func (u *Skill) GetRole(_ context.Context, name string) (RoleItem, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return RoleItem{}, ErrInvalidInput
	}
	req := roles.Resolve(name)
	return RoleItem{Name: req.Name, Skills: req.Skills}, nil
}
