package github

import (
	"context"
	"time"

	"github.com/apex/log"
	"golang.org/x/sync/singleflight"

	"github.com/KhaledELG/portfolio-kelg/internal/cache"
	"github.com/KhaledELG/portfolio-kelg/internal/models"
)

// Service wraps the client with a single-slot TTL cache. The cache always
// holds the full unfiltered listing; topic filters and limits are applied
// per call, so callers with different filters share one entry.
type Service struct {
	client *Client
	cache  *cache.Slot[[]models.Project]
	ttl    time.Duration
	group  singleflight.Group
}

func NewService(client *Client, ttl time.Duration) *Service {
	return &Service{
		client: client,
		cache:  cache.NewSlot[[]models.Project](),
		ttl:    ttl,
	}
}

// FetchRepos returns the projects for the configured user, optionally
// filtered by topics and truncated to limit (limit <= 0 means all). On a
// cache miss it fetches from GitHub; concurrent misses share a single
// in-flight fetch. Remote failure is reported as ErrRemoteUnavailable.
func (s *Service) FetchRepos(ctx context.Context, topicsFilter []string, limit int) ([]models.Project, error) {
	if cached, ok := s.cache.Get(); ok {
		return Truncate(FilterByTopics(cached, topicsFilter), limit), nil
	}

	v, err, _ := s.group.Do("repos", func() (any, error) {
		return s.refill(ctx)
	})
	if err != nil {
		return nil, err
	}

	projects := v.([]models.Project)
	return Truncate(FilterByTopics(projects, topicsFilter), limit), nil
}

// refill fetches the full listing, normalizes it and stores it in the cache.
func (s *Service) refill(ctx context.Context) ([]models.Project, error) {
	records, err := s.client.ListRepos(ctx)
	if err != nil {
		return nil, err
	}

	projects := make([]models.Project, 0, len(records))
	for _, rec := range records {
		project, ok := normalizeRecord(rec)
		if !ok {
			log.Debugf("skipping malformed repo record: %q", rec.Get("name").String())
			continue
		}
		project.ReadmePreview = s.client.ReadmePreview(ctx, project.Name)
		projects = append(projects, project)
	}

	s.cache.Set(projects, s.ttl)
	log.Infof("cached %d projects for %s", len(projects), s.client.Username)
	return projects, nil
}

// WarmCache populates the cache, swallowing remote failures so a down
// GitHub never blocks startup. A failed warm-up leaves the cache empty and
// the next read fetches on demand.
func (s *Service) WarmCache(ctx context.Context) {
	if _, err := s.FetchRepos(ctx, nil, 0); err != nil {
		log.Warnf("cache warm-up failed: %v", err)
	}
}

// ClearCache drops the cached listing so the next read refetches.
func (s *Service) ClearCache() {
	s.cache.Clear()
}

// RefreshPeriodically clears and repopulates the cache every interval until
// ctx is cancelled, keeping page loads off the GitHub request path. It
// returns silently on cancellation.
func (s *Service) RefreshPeriodically(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.ClearCache()
			s.WarmCache(ctx)
		}
	}
}
