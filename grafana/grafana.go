// Package grafana builds explore links for PromQL expressions.
package grafana

import "strings"

// The link target is the explore view with a pre-filled query:
// /explore?left={"queries":[{"expr":"<promql>"}]}, with the wrapper
// JSON already percent-encoded in the template.
const (
	explorePrefix = `/explore?left=%7B%22queries%22:%5B%7B%22expr%22:%22`
	exploreSuffix = `%22%7D%5D%7D`
)

// Only these three characters are encoded in the expression itself;
// the rest passes through so the link stays readable.
var exprEscaper = strings.NewReplacer(
	" ", "%20",
	"{", "%7B",
	"}", "%7D",
)

// LinkBuilder builds speculative Grafana explore links. The links are
// never validated against the Grafana instance; no network call is
// made.
type LinkBuilder struct {
	baseURL string
}

// New creates a LinkBuilder for the Grafana instance at baseURL. An
// empty baseURL disables link building.
func New(baseURL string) *LinkBuilder {
	return &LinkBuilder{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
	}
}

// Enabled reports whether a Grafana base URL is configured
func (b *LinkBuilder) Enabled() bool {
	return b != nil && b.baseURL != ""
}

// ExploreURL returns an explore link that visualizes the expression,
// or "" when link building is disabled.
func (b *LinkBuilder) ExploreURL(promql string) string {
	if !b.Enabled() {
		return ""
	}
	return b.baseURL + explorePrefix + exprEscaper.Replace(promql) + exploreSuffix
}
