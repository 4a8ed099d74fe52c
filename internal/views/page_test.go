package views

import (
	"bytes"
	"html/template"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/justsurfingit/job-map-search/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPage(t *testing.T) *Page {
	t.Helper()
	page, err := NewPage(DefaultDOM, DefaultReveal, "/api/v1/search")
	require.NoError(t, err)
	return page
}

func renderPage(t *testing.T, page *Page, data PageData) *goquery.Document {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, page.Render(&buf, data))
	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	return doc
}

func TestPageHasEveryElementTheScriptNeeds(t *testing.T) {
	doc := renderPage(t, newTestPage(t), PageData{})

	assert.Equal(t, 1, doc.Find("form").Length())
	for _, class := range []string{
		DefaultDOM.JobInput,
		DefaultDOM.CityInput,
		DefaultDOM.Results,
		DefaultDOM.Loading,
		DefaultDOM.Container,
	} {
		assert.Equal(t, 1, doc.Find("."+class).Length(), class)
	}

	assert.Equal(t, "what", doc.Find("."+DefaultDOM.JobInput).AttrOr("name", ""))
	assert.Equal(t, "where", doc.Find("."+DefaultDOM.CityInput).AttrOr("name", ""))
	assert.Equal(t, "/search", doc.Find("form").AttrOr("action", ""))
	assert.Equal(t, ScriptPath, doc.Find("script").AttrOr("src", ""))
	assert.False(t, doc.Find("."+DefaultDOM.Loading).HasClass(DefaultDOM.ActiveClass))
	assert.Equal(t, 0, doc.Find(".error").Length())
}

func TestPageEmbedsResultsAndError(t *testing.T) {
	res, err := NewRenderer().
		WithClock(func() time.Time { return fixedNow }).
		RenderResults(7, []models.Job{{Title: "Inline", Created: fixedNow}}, PlaceholderPath)
	require.NoError(t, err)

	doc := renderPage(t, newTestPage(t), PageData{Results: res.HTML})
	results := doc.Find("." + DefaultDOM.Results)
	assert.Equal(t, 1, results.Find("."+DefaultDOM.Card).Length())
	assert.Contains(t, results.Find(".job-count").Text(), "7 results found.")

	doc = renderPage(t, newTestPage(t), PageData{Error: "<b>boom</b>", Results: template.HTML("")})
	assert.Equal(t, "<b>boom</b>", doc.Find(".error").Text())
	assert.Equal(t, 0, doc.Find("."+DefaultDOM.Card).Length())
}

func TestScriptEscapesValues(t *testing.T) {
	dom := DefaultDOM
	dom.Results = "results'); alert('x"

	page, err := NewPage(dom, DefaultReveal, "/api")
	require.NoError(t, err)
	assert.False(t, strings.Contains(string(page.Script()), "results'); alert('x"))
}
