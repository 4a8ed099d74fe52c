package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/justsurfingit/job-map-search/internal/models"
)

const (
	// ResultsPerPage is fixed; only the first page is ever requested.
	ResultsPerPage = 100
	sortByDate     = "date"
)

var (
	ErrRequestFailed    = errors.New("request failed")
	ErrUpstreamStatus   = errors.New("unexpected upstream status")
	ErrMalformedPayload = errors.New("malformed payload")
)

type AdzunaService struct {
	BaseURL string
	Country string
	AppID   string
	AppKey  string
	Client  *http.Client
}

func NewAdzunaService(baseURL, country, appID, appKey string, timeout time.Duration) *AdzunaService {
	return &AdzunaService{
		BaseURL: baseURL,
		Country: country,
		AppID:   appID,
		AppKey:  appKey,
		Client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Jobs is a decoded, validated search page.
type Jobs struct {
	Count   int
	Results []models.Job
}

// Search issues one GET against the search endpoint. There is no retry.
func (s *AdzunaService) Search(ctx context.Context, what, where string) (*Jobs, error) {
	searchURL, err := s.buildSearchURL(what, where)
	if err != nil {
		return nil, fmt.Errorf("build search URL: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: request failed with status code %d", ErrUpstreamStatus, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", ErrRequestFailed, err)
	}

	var payload models.SearchResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	if payload.Count == nil {
		return nil, fmt.Errorf("%w: missing count", ErrMalformedPayload)
	}
	if payload.Results == nil {
		return nil, fmt.Errorf("%w: missing results", ErrMalformedPayload)
	}

	log.Printf("📦 Adzuna: %d listings of %s matches (%s)",
		len(*payload.Results), humanize.Comma(int64(*payload.Count)), humanize.Bytes(uint64(len(body))))

	return &Jobs{
		Count:   *payload.Count,
		Results: *payload.Results,
	}, nil
}

func (s *AdzunaService) buildSearchURL(what, where string) (string, error) {
	u, err := url.Parse(s.BaseURL)
	if err != nil {
		return "", err
	}
	u = u.JoinPath("v1", "api", "jobs", s.Country, "search", "1")

	query := url.Values{}
	query.Set("app_id", s.AppID)
	query.Set("app_key", s.AppKey)
	query.Set("results_per_page", strconv.Itoa(ResultsPerPage))
	query.Set("what", what)
	query.Set("where", where)
	query.Set("sort_by", sortByDate)
	query.Set("content-type", "application/json")

	u.RawQuery = query.Encode()
	return u.String(), nil
}
