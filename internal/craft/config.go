// Package craft talks to the Craft collections API: it resolves which
// resource URLs to query from a partially-specified configuration and
// fetches raw collection items.
package craft

import (
	"regexp"
	"strings"
)

// Config holds the user-supplied Craft API settings. Empty strings mean
// "unset".
type Config struct {
	APIBaseURL   string `json:"apiBaseUrl"`
	APIKey       string `json:"apiKey"`
	CollectionID string `json:"collectionId"`
}

var bearerPrefixRe = regexp.MustCompile(`(?i)^bearer\s+`)

// Normalize trims all fields, strips trailing slashes from the base URL and
// removes any leading "Bearer " prefix a user may have pasted along with the
// API key.
func (c Config) Normalize() Config {
	return Config{
		APIBaseURL:   strings.TrimRight(strings.TrimSpace(c.APIBaseURL), "/"),
		APIKey:       bearerPrefixRe.ReplaceAllString(strings.TrimSpace(c.APIKey), ""),
		CollectionID: strings.TrimSpace(c.CollectionID),
	}
}
