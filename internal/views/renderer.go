package views

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/justsurfingit/job-map-search/internal/models"
	"github.com/microcosm-cc/bluemonday"
)

// MaxAgeDays is how far back a listing may have been created and still get a card.
const MaxAgeDays = 10

// createdLayout matches the short Italian date format, e.g. 5/1/2026.
const createdLayout = "2/1/2006"

// listingPolicy keeps the highlight markup Adzuna puts around matched terms
// and strips every other tag.
var listingPolicy = bluemonday.NewPolicy().AllowElements("strong", "b", "em", "i")

func listingHTML(s string) template.HTML {
	return template.HTML(listingPolicy.Sanitize(s))
}

const resultsTemplate = `<div class="job-count"><strong>Results: </strong> {{.Count}} results found.</div>
<div>
{{- range .Cards}}
	<div class="job-card">
		<h2 class="job-title">{{.Title}}</h2>
		<div class="job-created"><strong>Created: </strong> <time datetime="{{.CreatedISO}}">{{.Created}}</time></div>
		<div class="job-desc"><strong>Desc: </strong> {{.Description}}</div>
		<div class="job-grid">
			<div class="job-left">
				<div class="job-comp"><strong>Company: </strong> {{.Company}}</div>
				<div class="job-location"><strong>Location: </strong> {{.Location}}</div>
				<div class="job-cat"><strong>Category: </strong> {{.Category}}</div>
				<div class="job-contract"><strong>Contract: </strong> {{.Contract}}</div>
				<div class="job-sal"><strong>Min-Max: </strong> {{.SalaryMin}} - {{.SalaryMax}}</div>
				<div class="job-link"><a href="{{.ApplyURL}}" target="_blank" rel="noopener">Apply</a></div>
			</div>
			<div class="job-right job-map">
				<img loading="lazy" src="{{$.ImageURL}}" alt="Map">
			</div>
		</div>
	</div>
{{- end}}
</div>
`

type card struct {
	Title       template.HTML
	Created     string
	CreatedISO  string
	Description template.HTML
	Company     string
	Location    string
	Category    string
	Contract    string
	SalaryMin   string
	SalaryMax   string
	ApplyURL    string
}

// Results is one rendered search.
type Results struct {
	HTML  template.HTML
	Count int
	Cards int
}

type Renderer struct {
	tmpl *template.Template
	now  func() time.Time
	loc  *time.Location
}

func NewRenderer() *Renderer {
	return &Renderer{
		tmpl: template.Must(template.New("results").Parse(resultsTemplate)),
		now:  time.Now,
		loc:  time.Local,
	}
}

// WithClock swaps the wall clock used for the age filter.
func (r *Renderer) WithClock(now func() time.Time) *Renderer {
	r.now = now
	return r
}

// WithLocation sets the zone the created date is printed in. The page script
// reprints it in the browser's zone from the datetime attribute.
func (r *Renderer) WithLocation(loc *time.Location) *Renderer {
	r.loc = loc
	return r
}

// RenderResults writes the count header and one card per listing created in
// the last MaxAgeDays days. count is the API total and is printed as given,
// even when some listings are filtered out. Order is kept.
func (r *Renderer) RenderResults(count int, jobs []models.Job, imageURL string) (*Results, error) {
	cutoff := r.now().AddDate(0, 0, -MaxAgeDays)

	cards := make([]card, 0, len(jobs))
	for _, job := range jobs {
		if !job.CreatedAfter(cutoff) {
			continue
		}
		cards = append(cards, card{
			Title:       listingHTML(job.Title),
			Created:     job.Created.In(r.loc).Format(createdLayout),
			CreatedISO:  job.Created.UTC().Format(time.RFC3339),
			Description: listingHTML(job.Description),
			Company:     job.Company.DisplayName,
			Location:    job.Location.DisplayName,
			Category:    job.Category.Label,
			Contract:    job.ContractType,
			SalaryMin:   models.FormatNumber(job.SalaryMin),
			SalaryMax:   models.FormatNumber(job.SalaryMax),
			ApplyURL:    job.RedirectURL,
		})
	}

	var buf bytes.Buffer
	err := r.tmpl.Execute(&buf, struct {
		Count    int
		Cards    []card
		ImageURL string
	}{
		Count:    count,
		Cards:    cards,
		ImageURL: imageURL,
	})
	if err != nil {
		return nil, fmt.Errorf("render results: %w", err)
	}

	return &Results{
		HTML:  template.HTML(buf.String()),
		Count: count,
		Cards: len(cards),
	}, nil
}
