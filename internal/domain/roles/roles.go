package roles

import (
	"sort"
	"strings"

	"skill-bridge/internal/domain/normalize"
)

// Requirement is a target role with its required skill set. Weights are
// optional per-skill importance values in (0, 1]; skills without a weight
// count as 1.
type Requirement struct {
	Name    string
	Skills  []string
	Weights map[string]float64
}

func (r Requirement) Weight(skill string) float64 {
	if r.Weights == nil {
		return 1
	}
	if w, ok := r.Weights[normalize.Normalize(skill)]; ok && w > 0 {
		return w
	}
	return 1
}

var requirements = map[string]Requirement{
	"software engineer": {
		Name: "Software Engineer",
		Skills: []string{
			"python", "java", "javascript", "git", "data structures", "algorithms",
			"react", "node.js", "sql", "postgresql", "mongodb",
			"docker", "aws", "linux", "rest api", "testing",
		},
	},
	"data scientist": {
		Name: "Data Scientist",
		Skills: []string{
			"python", "r", "sql", "statistics", "machine learning",
			"pandas", "numpy", "scikit-learn", "tensorflow",
			"tableau", "power bi", "excel", "git", "deep learning",
			"natural language processing",
		},
	},
	"frontend developer": {
		Name: "Frontend Developer",
		Skills: []string{
			"html", "css", "javascript", "typescript", "react",
			"vue.js", "angular", "git", "webpack", "responsive design",
			"accessibility", "jest",
		},
	},
	"full stack developer": {
		Name: "Full Stack Developer",
		Skills: []string{
			"html", "css", "javascript", "react", "node.js",
			"python", "java", "mysql", "mongodb", "postgresql",
			"git", "docker", "aws", "rest api", "testing",
		},
	},
	"machine learning engineer": {
		Name: "Machine Learning Engineer",
		Skills: []string{
			"python", "machine learning", "deep learning", "tensorflow",
			"pytorch", "statistics", "sql", "docker", "aws", "git",
			"natural language processing", "computer vision",
		},
	},
	"cyber security analyst": {
		Name: "Cyber Security Analyst",
		Skills: []string{
			"python", "linux", "networking", "cryptography",
			"penetration testing", "ethical hacking", "wireshark", "git",
		},
	},
}

// fallbackSkills is the generic default required set used when a role name
// has no entry.
var fallbackSkills = []string{
	"python", "sql", "machine learning", "aws", "react", "digital marketing",
}

// Lookup resolves a role name case-insensitively.
func Lookup(name string) (Requirement, bool) {
	req, ok := requirements[normalize.Normalize(name)]
	return req, ok
}

// Fallback returns the generic default requirement.
func Fallback() Requirement {
	return Requirement{
		Name:   "Generic",
		Skills: append([]string(nil), fallbackSkills...),
	}
}

// Resolve looks up a role, falling back to the generic default for unknown
// names. Never fails.
func Resolve(name string) Requirement {
	if req, ok := Lookup(name); ok {
		return req
	}
	return Fallback()
}

// Names lists the known role names in deterministic order.
func Names() []string {
	out := make([]string, 0, len(requirements))
	for _, req := range requirements {
		out = append(out, req.Name)
	}
	sort.Strings(out)
	return out
}

// MachineLearningHeavy reports whether the role carries the ML difficulty
// multiplier.
func MachineLearningHeavy(name string) bool {
	n := normalize.Normalize(name)
	return strings.Contains(n, "machine learning") || n == "data scientist"
}
