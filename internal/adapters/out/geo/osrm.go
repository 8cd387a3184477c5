package geo

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"strings"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

const (
	DefaultOSRMURL = "https://router.project-osrm.org"

	serviceRouter = "router"
)

var errNoRoute = errors.New("no drawable route")

// OSRMRouter computes driving routes with the OSRM HTTP API. OSRM speaks
// [lng, lat]; the returned polyline is in (lat, lng) order.
type OSRMRouter struct {
	baseURL    *url.URL
	httpClient *http.Client
}

func NewOSRMRouter(baseURL string) (*OSRMRouter, error) {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultOSRMURL
	}
	parsed, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	return &OSRMRouter{
		baseURL:    parsed,
		httpClient: &http.Client{},
	}, nil
}

type osrmResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Geometry struct {
			Coordinates [][]float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"routes"`
}

func (r *OSRMRouter) Route(ctx context.Context, from, to kernel.Location) (kernel.Polyline, error) {
	coords := lngLat(from) + ";" + lngLat(to)

	endpoint := *r.baseURL
	endpoint.Path = path.Join(endpoint.Path, "/route/v1/driving", coords)
	endpoint.RawQuery = url.Values{
		"overview":   {"full"},
		"geometries": {"geojson"},
		"steps":      {"false"},
	}.Encode()

	var body osrmResponse
	if err := getJSON(ctx, r.httpClient, endpoint.String(), nil, &body); err != nil {
		return nil, errs.NewExternalServiceError(serviceRouter, err)
	}
	if len(body.Routes) == 0 {
		return nil, errs.NewExternalServiceError(serviceRouter, fmt.Errorf("%w: code %q", errNoRoute, body.Code))
	}

	raw := body.Routes[0].Geometry.Coordinates
	pairs := make([][2]float64, 0, len(raw))
	for _, c := range raw {
		if len(c) < 2 {
			return nil, errs.NewExternalServiceError(serviceRouter, fmt.Errorf("malformed coordinate %v", c))
		}
		pairs = append(pairs, [2]float64{c[1], c[0]})
	}

	line, err := kernel.NewPolyline(pairs)
	if err != nil {
		return nil, errs.NewExternalServiceError(serviceRouter, err)
	}
	if !line.IsDrawable() {
		return nil, errs.NewExternalServiceError(serviceRouter, errNoRoute)
	}
	return line, nil
}

func lngLat(l kernel.Location) string {
	return strconv.FormatFloat(l.Lng(), 'f', -1, 64) + "," + strconv.FormatFloat(l.Lat(), 'f', -1, 64)
}
