package models

import (
	"strconv"
	"time"
)

// Job is one listing as returned by the Adzuna search endpoint.
// Nothing here is ever stored; a slice of these lives for one search.
type Job struct {
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Company      Company   `json:"company"`
	Location     Location  `json:"location"`
	Category     Category  `json:"category"`
	ContractType string    `json:"contract_type"`
	Created      time.Time `json:"created"`
	Latitude     *float64  `json:"latitude,omitempty"`
	Longitude    *float64  `json:"longitude,omitempty"`
	RedirectURL  string    `json:"redirect_url"`
	SalaryMin    *float64  `json:"salary_min,omitempty"`
	SalaryMax    *float64  `json:"salary_max,omitempty"`
}

type Company struct {
	DisplayName string `json:"display_name"`
}

type Location struct {
	DisplayName string `json:"display_name"`
}

type Category struct {
	Label string `json:"label"`
}

// SearchResponse is the subset of the Adzuna payload we read.
// Both fields are pointers so a payload that omits them can be told apart from an empty one.
type SearchResponse struct {
	Count   *int   `json:"count"`
	Results *[]Job `json:"results"`
}

// Coordinates reports the listing's position. A missing or zero value on
// either axis counts as "no position".
func (j Job) Coordinates() (lng, lat float64, ok bool) {
	if j.Longitude == nil || j.Latitude == nil {
		return 0, 0, false
	}
	if *j.Longitude == 0 || *j.Latitude == 0 {
		return 0, 0, false
	}
	return *j.Longitude, *j.Latitude, true
}

// CreatedAfter is true when the listing was created strictly after t.
func (j Job) CreatedAfter(t time.Time) bool {
	return j.Created.After(t)
}

// MissingNumber is printed in place of an absent salary bound.
const MissingNumber = "undefined"

// FormatNumber prints a salary bound as a raw number, shortest form, no grouping.
func FormatNumber(v *float64) string {
	if v == nil {
		return MissingNumber
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
