package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"skill-bridge/internal/domain/normalize"
)

// Course is one catalog entry mapping a skill to a learning resource.
type Course struct {
	Skill         string
	Provider      string
	CourseName    string
	DurationWeeks int
}

// Catalog looks up learning resources by normalized skill name.
type Catalog struct {
	bySkill map[string]Course
}

func NewCatalog(courses []Course) *Catalog {
	c := &Catalog{bySkill: make(map[string]Course, len(courses))}
	for _, course := range courses {
		key := normalize.Normalize(course.Skill)
		if key == "" {
			continue
		}
		if _, ok := c.bySkill[key]; ok {
			continue
		}
		c.bySkill[key] = course
	}
	return c
}

// Resource returns a "Provider: Course Name" suggestion for the skill.
func (c *Catalog) Resource(skill string) (string, bool) {
	if c == nil {
		return "", false
	}
	course, ok := c.bySkill[normalize.Normalize(skill)]
	if !ok {
		return "", false
	}
	return course.Provider + ": " + course.CourseName, true
}

func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.bySkill)
}

// LoadCatalog reads a course catalog CSV with flexible column names.
func LoadCatalog(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open course catalog: %w", err)
	}
	defer f.Close()
	return ParseCatalog(f)
}

func ParseCatalog(r io.Reader) (*Catalog, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read catalog header: %w", err)
	}
	header = trimHeader(header)

	skillCol := findColumn(header, "skill", "skills", "topic")
	providerCol := findColumn(header, "provider")
	nameCol := findColumn(header, "course_name", "course", "resource")
	weeksCol := findColumn(header, "duration_weeks", "weeks")
	if skillCol < 0 || nameCol < 0 {
		return nil, fmt.Errorf("no skill/course columns found, available: %v", header)
	}

	var courses []Course
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}

		skill := cell(rec, skillCol)
		name := cell(rec, nameCol)
		if skill == "" || name == "" {
			continue
		}
		weeks, _ := strconv.Atoi(cell(rec, weeksCol))
		courses = append(courses, Course{
			Skill:         skill,
			Provider:      cell(rec, providerCol),
			CourseName:    name,
			DurationWeeks: weeks,
		})
	}
	return NewCatalog(courses), nil
}
