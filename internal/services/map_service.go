package services

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/justsurfingit/job-map-search/internal/models"
	"github.com/justsurfingit/job-map-search/internal/views"
)

const mapboxStaticBase = "https://api.mapbox.com/styles/v1/mapbox/streets-v11/static"

// ThumbnailURL builds a 300x200@2x Mapbox static image URL centred on
// lng,lat with no bearing or pitch. No request is made.
func ThumbnailURL(lng, lat float64, zoom int, token string) string {
	return fmt.Sprintf("%s/%s,%s,%d,0/300x200@2x?access_token=%s",
		mapboxStaticBase,
		formatCoord(lng),
		formatCoord(lat),
		zoom,
		url.QueryEscape(token),
	)
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

type MapService struct {
	Token string
	Zoom  int
}

func NewMapService(token string, zoom int) *MapService {
	return &MapService{
		Token: token,
		Zoom:  zoom,
	}
}

// ImageFor picks the one image shared by every card of a search: a
// thumbnail around the first listing, or the placeholder when that listing
// has no usable position (or there is no listing at all).
func (s *MapService) ImageFor(jobs []models.Job) string {
	if len(jobs) == 0 {
		return views.PlaceholderPath
	}
	lng, lat, ok := jobs[0].Coordinates()
	if !ok {
		return views.PlaceholderPath
	}
	return ThumbnailURL(lng, lat, s.Zoom, s.Token)
}
