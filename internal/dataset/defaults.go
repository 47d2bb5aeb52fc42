package dataset

import (
	"github.com/google/uuid"

	"skill-bridge/internal/domain/graph"
)

// DefaultJobs returns the built-in sample job dataset used when no CSV is
// configured. Record IDs are generated per process.
func DefaultJobs() []graph.JobRecord {
	items := []struct {
		Title  string
		Skills []string
	}{
		{Title: "Data Scientist", Skills: []string{"python", "sql", "machine learning", "statistics", "tableau"}},
		{Title: "Machine Learning Engineer", Skills: []string{"python", "machine learning", "deep learning", "tensorflow", "docker"}},
		{Title: "Backend Engineer", Skills: []string{"python", "sql", "postgresql", "docker", "aws"}},
		{Title: "Frontend Developer", Skills: []string{"html", "css", "javascript", "react", "git"}},
		{Title: "Full Stack Developer", Skills: []string{"javascript", "react", "node.js", "mongodb", "git"}},
		{Title: "Cloud Engineer", Skills: []string{"aws", "kubernetes", "docker", "linux", "python"}},
		{Title: "Data Analyst", Skills: []string{"sql", "excel", "power bi", "statistics", "python"}},
		{Title: "Digital Marketing Specialist", Skills: []string{"digital marketing", "seo", "excel"}},
	}

	records := make([]graph.JobRecord, 0, len(items))
	for _, it := range items {
		records = append(records, graph.JobRecord{
			ID:     uuid.NewString(),
			Title:  it.Title,
			Skills: it.Skills,
		})
	}
	return records
}

// DefaultCatalog returns the built-in course catalog fallback.
func DefaultCatalog() *Catalog {
	return NewCatalog([]Course{
		{Skill: "python", Provider: "Coursera", CourseName: "Python for Everybody", DurationWeeks: 4},
		{Skill: "sql", Provider: "Khan Academy", CourseName: "Intro to SQL", DurationWeeks: 2},
		{Skill: "machine learning", Provider: "Coursera", CourseName: "Machine Learning Specialization", DurationWeeks: 10},
		{Skill: "deep learning", Provider: "Coursera", CourseName: "Deep Learning Specialization", DurationWeeks: 12},
		{Skill: "statistics", Provider: "edX", CourseName: "Statistics Fundamentals", DurationWeeks: 6},
		{Skill: "aws", Provider: "AWS Training", CourseName: "Cloud Practitioner Essentials", DurationWeeks: 6},
		{Skill: "react", Provider: "Udemy", CourseName: "React - The Complete Guide", DurationWeeks: 5},
		{Skill: "docker", Provider: "Pluralsight", CourseName: "Docker Deep Dive", DurationWeeks: 3},
		{Skill: "kubernetes", Provider: "Linux Foundation", CourseName: "Kubernetes Fundamentals", DurationWeeks: 6},
		{Skill: "git", Provider: "Udacity", CourseName: "Version Control with Git", DurationWeeks: 1},
		{Skill: "tableau", Provider: "Tableau", CourseName: "Tableau Desktop Fundamentals", DurationWeeks: 3},
		{Skill: "power bi", Provider: "Microsoft Learn", CourseName: "Power BI Data Analyst", DurationWeeks: 4},
		{Skill: "digital marketing", Provider: "Google", CourseName: "Fundamentals of Digital Marketing", DurationWeeks: 4},
		{Skill: "r", Provider: "DataCamp", CourseName: "Introduction to R", DurationWeeks: 3},
		{Skill: "javascript", Provider: "freeCodeCamp", CourseName: "JavaScript Algorithms and Data Structures", DurationWeeks: 5},
	})
}
