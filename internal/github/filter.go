package github

import (
	"strings"

	"github.com/KhaledELG/portfolio-kelg/internal/models"
)

// FilterByTopics keeps the projects sharing at least one topic with topics,
// compared case-insensitively. An empty or nil filter returns projects
// unchanged. Input order is preserved.
func FilterByTopics(projects []models.Project, topics []string) []models.Project {
	if len(topics) == 0 {
		return projects
	}

	want := make(map[string]struct{}, len(topics))
	for _, t := range topics {
		want[strings.ToLower(t)] = struct{}{}
	}

	var filtered []models.Project
	for _, p := range projects {
		for _, t := range p.Topics {
			if _, ok := want[strings.ToLower(t)]; ok {
				filtered = append(filtered, p)
				break
			}
		}
	}
	return filtered
}

// Truncate returns the first limit projects; limit <= 0 means no cap.
func Truncate(projects []models.Project, limit int) []models.Project {
	if limit <= 0 || limit >= len(projects) {
		return projects
	}
	return projects[:limit]
}
