package pageviews

import "strings"

const DefaultBaseURL = "https://wikimedia.org/api/rest_v1/metrics/pageviews"

// Endpoints holds the URL prefix of each API endpoint. Path segments are
// appended to these with "/".
type Endpoints struct {
	Article string
	Project string
	Top     string
}

func DefaultEndpoints() Endpoints { return EndpointsFor(DefaultBaseURL) }

// EndpointsFor lays the three endpoints out under base the way the public
// API does.
func EndpointsFor(base string) Endpoints {
	base = strings.TrimRight(base, "/")
	return Endpoints{
		Article: base + "/per-article",
		Project: base + "/aggregate",
		Top:     base + "/top",
	}
}
