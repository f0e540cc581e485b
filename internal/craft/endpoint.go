package craft

import (
	"fmt"
	"net/url"
	"regexp"
	"sort"
	"strings"

	"github.com/fennwick/ledgerlens/internal/common"
)

// Collection is one entry of the collections discovery response.
type Collection struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// resourceMarkers are path suffixes that indicate the base URL already
// points below the API root. Checked in this order.
var resourceMarkers = []string{"/collections/", "/collections", "/documents", "/blocks", "/tasks"}

var (
	itemsSuffixRe      = regexp.MustCompile(`/collections/[^/]+/items$`)
	collectionSuffixRe = regexp.MustCompile(`/collections/[^/]+$`)
	collectionAnyRe    = regexp.MustCompile(`/collections/[^/]+(/items)?$`)
)

// BuildCollectionsURL returns the "list collections" URL for the given
// config, asking the API for inclusion-mode document filtering. Returns ""
// when no base URL is configured.
func BuildCollectionsURL(cfg Config) string {
	if cfg.APIBaseURL == "" {
		return ""
	}

	root := apiRoot(cfg.APIBaseURL)
	if root == "" {
		return ""
	}

	u, err := url.Parse(root + "/collections")
	if err != nil {
		return root + "/collections?documentFilterMode=include"
	}

	q := u.Query()
	q.Set("documentFilterMode", "include")
	u.RawQuery = q.Encode()

	return u.String()
}

// apiRoot strips any known resource suffix from the base URL to recover the
// API root.
func apiRoot(baseURL string) string {
	trimmed := strings.TrimRight(baseURL, "/")

	for _, marker := range resourceMarkers {
		if idx := strings.Index(trimmed, marker); idx != -1 {
			return trimmed[:idx]
		}
	}

	return trimmed
}

// BuildItemsURL returns the "list items" URL for the given config. The
// override, when non-empty, takes precedence over the configured collection
// ID. It fails with common.ErrCollectionRequired when no collection can be
// determined from either the config or the URL path itself.
func BuildItemsURL(cfg Config, collectionIDOverride string) (string, error) {
	if cfg.APIBaseURL == "" {
		return "", common.ErrMissingBaseURL
	}

	collectionID := collectionIDOverride
	if collectionID == "" {
		collectionID = cfg.CollectionID
	}

	u, err := url.Parse(cfg.APIBaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		// Not a well-formed absolute URL; fall back to string heuristics.
		return buildItemsURLFromString(cfg.APIBaseURL, collectionID)
	}

	path := strings.TrimRight(u.Path, "/")

	hasCollectionInPath := collectionAnyRe.MatchString(path) || strings.Contains(path, "/collections/")
	if collectionID == "" && !hasCollectionInPath {
		return "", fmt.Errorf("%w: set a collection id or include one in the base URL", common.ErrCollectionRequired)
	}

	switch {
	case itemsSuffixRe.MatchString(path):
		u.Path = path
	case collectionSuffixRe.MatchString(path):
		u.Path = path + "/items"
	case strings.Contains(path, "/collections/"):
		u.Path = path
	default:
		u.Path = path + "/collections/" + collectionID + "/items"
	}

	return u.String(), nil
}

// buildItemsURLFromString applies the same decision table using plain string
// matching. Both paths produce identical output for well-formed input.
func buildItemsURLFromString(baseURL, collectionID string) (string, error) {
	trimmed := strings.TrimRight(baseURL, "/")

	hasCollectionInPath := collectionAnyRe.MatchString(trimmed) || strings.Contains(trimmed, "/collections/")
	if collectionID == "" && !hasCollectionInPath {
		return "", fmt.Errorf("%w: set a collection id or include one in the base URL", common.ErrCollectionRequired)
	}

	switch {
	case strings.HasSuffix(trimmed, "/items"):
		return trimmed, nil
	case collectionSuffixRe.MatchString(trimmed):
		return trimmed + "/items", nil
	case strings.Contains(trimmed, "/collections/"):
		return trimmed, nil
	default:
		return trimmed + "/collections/" + collectionID + "/items", nil
	}
}

// SelectCollectionID picks the collection most likely to hold expense
// records, ranking names by keyword. Best-effort: with no keyword match the
// first collection wins, and an unrelated collection may be chosen silently.
// Returns "" when the list is empty.
func SelectCollectionID(collections []Collection) string {
	if len(collections) == 0 {
		return ""
	}

	ranked := make([]Collection, len(collections))
	copy(ranked, collections)

	sort.SliceStable(ranked, func(i, j int) bool {
		return collectionScore(ranked[i].Name) > collectionScore(ranked[j].Name)
	})

	return ranked[0].ID
}

// collectionScore rates how expense-like a collection name is.
func collectionScore(name string) int {
	if name == "" {
		return 0
	}
	normalized := strings.ToLower(name)

	switch {
	case strings.Contains(normalized, "receipt"):
		return 4
	case strings.Contains(normalized, "expense"):
		return 3
	case strings.Contains(normalized, "transaction"):
		return 2
	case strings.Contains(normalized, "spend"):
		return 1
	}

	return 0
}
