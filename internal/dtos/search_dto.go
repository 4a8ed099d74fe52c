package dtos

// SearchRequest carries the two form inputs. Empty values are allowed and
// forwarded to Adzuna as-is.
type SearchRequest struct {
	What  string `form:"what" json:"what"`
	Where string `form:"where" json:"where"`
}

type SearchResponse struct {
	ID       string `json:"id"`
	Count    int    `json:"count"`
	Rendered int    `json:"rendered"`
	ImageURL string `json:"image_url"`
	HTML     string `json:"html"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
