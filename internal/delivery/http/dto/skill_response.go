package dto

import "skill-bridge/internal/usecase"

type SkillResponse struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Subcategory string `json:"subcategory"`
	Tier        string `json:"tier"`
}

type RoleResponse struct {
	Name   string   `json:"name"`
	Skills []string `json:"skills"`
}

func NewSkillResponses(items []usecase.SkillItem) []SkillResponse {
	out := make([]SkillResponse, 0, len(items))
	for _, it := range items {
		out = append(out, SkillResponse{
			Name:        it.Name,
			Category:    it.Category,
			Subcategory: it.Subcategory,
			Tier:        it.Tier,
		})
	}
	return out
}

func NewRoleResponses(items []usecase.RoleItem) []RoleResponse {
	out := make([]RoleResponse, 0, len(items))
	for _, it := range items {
		out = append(out, RoleResponse{Name: it.Name, Skills: it.Skills})
	}
	return out
}
