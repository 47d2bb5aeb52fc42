package taxonomy

// difficulty tiers and base learning durations for well-known skills.
// Anything absent resolves to (medium, 4).
var difficulties = map[string]struct {
	tier  Tier
	weeks int
}{
	"python":                      {TierEasy, 2},
	"sql":                         {TierEasy, 2},
	"html":                        {TierEasy, 2},
	"css":                         {TierEasy, 2},
	"git":                         {TierEasy, 1},
	"excel":                       {TierEasy, 2},
	"java":                        {TierMedium, 4},
	"javascript":                  {TierMedium, 4},
	"typescript":                  {TierMedium, 4},
	"react":                       {TierMedium, 4},
	"angular":                     {TierMedium, 4},
	"django":                      {TierMedium, 4},
	"flask":                       {TierMedium, 3},
	"node.js":                     {TierMedium, 4},
	"statistics":                  {TierMedium, 4},
	"power bi":                    {TierMedium, 4},
	"tableau":                     {TierMedium, 3},
	"digital marketing":           {TierMedium, 4},
	"mysql":                       {TierMedium, 3},
	"postgresql":                  {TierMedium, 3},
	"mongodb":                     {TierMedium, 3},
	"docker":                      {TierMedium, 3},
	"linux":                       {TierMedium, 4},
	"r":                           {TierMedium, 4},
	"c++":                         {TierHard, 8},
	"machine learning":            {TierHard, 8},
	"deep learning":               {TierHard, 8},
	"natural language processing": {TierHard, 8},
	"computer vision":             {TierHard, 8},
	"tensorflow":                  {TierHard, 8},
	"pytorch":                     {TierHard, 8},
	"aws":                         {TierHard, 8},
	"azure":                       {TierHard, 7},
	"kubernetes":                  {TierHard, 8},
	"blockchain":                  {TierHard, 10},
	"cybersecurity":               {TierHard, 10},
}

func skill(name, category, subcategory string) Skill {
	tier, weeks := defaultTier, defaultWeeks
	if d, ok := difficulties[name]; ok {
		tier, weeks = d.tier, d.weeks
	}
	return Skill{Name: name, Category: category, Subcategory: subcategory, Tier: tier, BaseWeeks: weeks}
}

func skills(category, subcategory string, names ...string) []Skill {
	out := make([]Skill, 0, len(names))
	for _, n := range names {
		out = append(out, skill(n, category, subcategory))
	}
	return out
}

// Default returns the built-in reference taxonomy.
func Default() *Taxonomy {
	const (
		technical = "technical"
		domain    = "domain"
		soft      = "soft"
	)

	categories := []Category{
		{
			Name: technical,
			Subcategories: []Subcategory{
				{Name: "languages", Skills: skills(technical, "languages",
					"python", "java", "c++", "javascript", "typescript", "r", "sql", "kotlin")},
				{Name: "frameworks", Skills: skills(technical, "frameworks",
					"react", "angular", "django", "flask", "node.js", "spring boot")},
				{Name: "cloud", Skills: skills(technical, "cloud",
					"aws", "azure", "google cloud", "docker", "kubernetes")},
				{Name: "databases", Skills: skills(technical, "databases",
					"mysql", "postgresql", "mongodb", "redis")},
				{Name: "data science", Skills: skills(technical, "data science",
					"machine learning", "deep learning", "natural language processing",
					"computer vision", "statistics", "tensorflow", "pytorch",
					"tableau", "power bi", "excel")},
				{Name: "tooling", Skills: skills(technical, "tooling",
					"git", "linux", "html", "css")},
			},
		},
		{
			Name: domain,
			Subcategories: []Subcategory{
				{Name: "finance", Skills: skills(domain, "finance",
					"risk management", "financial modeling")},
				{Name: "marketing", Skills: skills(domain, "marketing",
					"seo", "digital marketing")},
				{Name: "security", Skills: skills(domain, "security",
					"cybersecurity", "penetration testing", "cryptography")},
				{Name: "emerging", Skills: skills(domain, "emerging",
					"blockchain", "edge computing")},
			},
		},
		{
			Name: soft,
			Subcategories: []Subcategory{
				{Name: "communication", Skills: skills(soft, "communication",
					"public speaking", "technical writing")},
				{Name: "analytical", Skills: skills(soft, "analytical",
					"problem solving", "critical thinking", "data interpretation")},
			},
		},
	}

	industries := map[string]Industry{
		"technology": {
			HotSkills:      []string{"machine learning", "cloud computing", "cybersecurity", "devops"},
			EmergingSkills: []string{"edge computing", "blockchain", "ar/vr"},
			CategoryWeights: map[string]float64{
				technical: 0.7, soft: 0.2, domain: 0.1,
			},
		},
		"finance": {
			HotSkills:      []string{"fintech", "blockchain", "regtech"},
			EmergingSkills: []string{"defi", "digital payments"},
			CategoryWeights: map[string]float64{
				technical: 0.4, soft: 0.3, domain: 0.3,
			},
		},
	}

	return New(categories, industries)
}
