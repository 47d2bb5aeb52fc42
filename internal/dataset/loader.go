package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"skill-bridge/internal/domain/graph"
	"skill-bridge/internal/domain/normalize"
)

// findColumn returns the index of the first matching header, tried exact
// first and then case-insensitively. -1 when absent.
func findColumn(header []string, candidates ...string) int {
	for _, c := range candidates {
		for i, h := range header {
			if h == c {
				return i
			}
		}
	}
	for _, c := range candidates {
		for i, h := range header {
			if strings.EqualFold(strings.TrimSpace(h), c) {
				return i
			}
		}
	}
	return -1
}

func trimHeader(header []string) []string {
	out := make([]string, len(header))
	for i, h := range header {
		out[i] = strings.TrimSpace(h)
	}
	return out
}

func cell(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}

// LoadJobs reads a job/skill dataset CSV. Column names are resolved
// flexibly (id/job_id, title/job_title, skills/required_skills/...);
// malformed rows are skipped rather than failing the load.
func LoadJobs(path string) ([]graph.JobRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open jobs dataset: %w", err)
	}
	defer f.Close()
	return ParseJobs(f)
}

func ParseJobs(r io.Reader) ([]graph.JobRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read jobs header: %w", err)
	}
	header = trimHeader(header)

	idCol := findColumn(header, "id", "job_id", "jobId")
	titleCol := findColumn(header, "title", "job_title", "job")
	skillsCol := findColumn(header, "skills", "required_skills", "extracted_skills", "skill_list", "requirements")
	if skillsCol < 0 {
		return nil, fmt.Errorf("no skills column found, available: %s", strings.Join(header, ", "))
	}

	var records []graph.JobRecord
	row := 0
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Skip malformed rows, keep the rest of the dataset usable.
			continue
		}
		row++

		id := cell(rec, idCol)
		if id == "" {
			id = fmt.Sprintf("job_%d", row)
		}
		records = append(records, graph.JobRecord{
			ID:     id,
			Title:  cell(rec, titleCol),
			Skills: normalize.List(cell(rec, skillsCol)),
		})
	}
	return records, nil
}

// RoleSkills resolves a role title to its listed skills within the
// dataset, case-insensitively. Second return is false when the title is
// absent.
func RoleSkills(records []graph.JobRecord, title string) ([]string, bool) {
	want := normalize.Normalize(title)
	for _, rec := range records {
		if normalize.Normalize(rec.Title) == want {
			return rec.Skills, true
		}
	}
	return nil, false
}
