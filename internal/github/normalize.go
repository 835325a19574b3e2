package github

import (
	"net/url"
	"time"

	"github.com/tidwall/gjson"

	"github.com/KhaledELG/portfolio-kelg/internal/models"
)

// normalizeRecord maps one raw listing record to a Project. It returns false
// for malformed records (missing name or html_url, invalid URL); callers
// skip those instead of failing the whole listing. The readme preview is
// attached separately after validation.
func normalizeRecord(rec gjson.Result) (models.Project, bool) {
	name := rec.Get("name").String()
	htmlURL := rec.Get("html_url").String()
	if name == "" || htmlURL == "" || !validURL(htmlURL) {
		return models.Project{}, false
	}

	// GitHub returns "" rather than omitting an unset homepage.
	homepage := rec.Get("homepage").String()
	if homepage != "" && !validURL(homepage) {
		return models.Project{}, false
	}

	topics := []string{}
	for _, t := range rec.Get("topics").Array() {
		topics = append(topics, t.String())
	}

	var updated time.Time
	if raw := rec.Get("updated_at").String(); raw != "" {
		// RFC 3339 accepts the trailing Z that GitHub emits.
		if ts, err := time.Parse(time.RFC3339, raw); err == nil {
			updated = ts
		}
	}

	return models.Project{
		Name:        name,
		Description: rec.Get("description").String(),
		URL:         htmlURL,
		Homepage:    homepage,
		Topics:      topics,
		Language:    rec.Get("language").String(),
		Stars:       int(rec.Get("stargazers_count").Int()),
		UpdatedAt:   updated,
	}, true
}

func validURL(s string) bool {
	u, err := url.ParseRequestURI(s)
	return err == nil && u.Scheme != "" && u.Host != ""
}
