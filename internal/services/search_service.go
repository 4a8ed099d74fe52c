package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/justsurfingit/job-map-search/internal/views"
)

// JobSearcher is the outbound side of a search. AdzunaService implements it.
type JobSearcher interface {
	Search(ctx context.Context, what, where string) (*Jobs, error)
}

type SearchService struct {
	Jobs     JobSearcher
	Maps     *MapService
	Renderer *views.Renderer
}

func NewSearchService(jobs JobSearcher, maps *MapService, renderer *views.Renderer) *SearchService {
	return &SearchService{
		Jobs:     jobs,
		Maps:     maps,
		Renderer: renderer,
	}
}

// SearchResult is everything one search produced. Count is the API total,
// Rendered is how many cards survived the age filter.
type SearchResult struct {
	ID       string
	Count    int
	Rendered int
	ImageURL string
	HTML     string
}

// Search runs one search end to end: fetch, pick the shared map image,
// render. Any failure aborts the whole search; nothing partial is returned.
func (s *SearchService) Search(ctx context.Context, what, where string) (*SearchResult, error) {
	id := uuid.NewString()
	logPrefix := fmt.Sprintf("[Search: %s]", id[:8])
	start := time.Now()

	log.Printf("%s 🔎 START what=%q where=%q", logPrefix, what, where)

	jobs, err := s.Jobs.Search(ctx, what, where)
	if err != nil {
		log.Printf("%s ❌ FAILED: %v", logPrefix, err)
		return nil, err
	}

	imageURL := s.Maps.ImageFor(jobs.Results)

	rendered, err := s.Renderer.RenderResults(jobs.Count, jobs.Results, imageURL)
	if err != nil {
		log.Printf("%s ❌ FAILED: %v", logPrefix, err)
		return nil, err
	}

	log.Printf("%s ✅ DONE count=%d rendered=%d in %s", logPrefix, rendered.Count, rendered.Cards, time.Since(start).Round(time.Millisecond))

	return &SearchResult{
		ID:       id,
		Count:    rendered.Count,
		Rendered: rendered.Cards,
		ImageURL: imageURL,
		HTML:     string(rendered.HTML),
	}, nil
}
