package geo

import (
	"context"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"strings"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

const (
	DefaultNominatimURL = "https://nominatim.openstreetmap.org"
	DefaultUserAgent    = "DeliveryDispatchTracker/1.0"

	serviceGeocoder = "geocoder"
)

// NominatimGeocoder resolves addresses with the OpenStreetMap Nominatim
// search API and keeps only the first candidate.
type NominatimGeocoder struct {
	baseURL    *url.URL
	userAgent  string
	httpClient *http.Client
}

func NewNominatimGeocoder(baseURL, userAgent string) (*NominatimGeocoder, error) {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultNominatimURL
	}
	parsed, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(userAgent) == "" {
		userAgent = DefaultUserAgent
	}
	return &NominatimGeocoder{
		baseURL:    parsed,
		userAgent:  userAgent,
		httpClient: &http.Client{},
	}, nil
}

type nominatimPlace struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Geocode returns nil without error when the provider has no candidate.
func (g *NominatimGeocoder) Geocode(ctx context.Context, query string) (*kernel.Location, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}

	endpoint := *g.baseURL
	endpoint.Path = path.Join(endpoint.Path, "/search")
	endpoint.RawQuery = url.Values{
		"q":      {query},
		"format": {"json"},
		"limit":  {"1"},
	}.Encode()

	// Nominatim's usage policy rejects requests without an identifying agent.
	header := http.Header{"User-Agent": {g.userAgent}}

	var places []nominatimPlace
	if err := getJSON(ctx, g.httpClient, endpoint.String(), header, &places); err != nil {
		return nil, errs.NewExternalServiceError(serviceGeocoder, err)
	}
	if len(places) == 0 {
		return nil, nil
	}

	lat, err := strconv.ParseFloat(places[0].Lat, 64)
	if err != nil {
		return nil, errs.NewExternalServiceError(serviceGeocoder, err)
	}
	lng, err := strconv.ParseFloat(places[0].Lon, 64)
	if err != nil {
		return nil, errs.NewExternalServiceError(serviceGeocoder, err)
	}

	loc, err := kernel.NewLocation(lat, lng)
	if err != nil {
		return nil, errs.NewExternalServiceError(serviceGeocoder, err)
	}
	return &loc, nil
}
