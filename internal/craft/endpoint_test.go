package craft

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fennwick/ledgerlens/internal/common"
)

func TestNormalizeConfig(t *testing.T) {
	tests := []struct {
		name string
		in   Config
		want Config
	}{
		{
			name: "trailing slashes stripped",
			in:   Config{APIBaseURL: "https://x/api/v1///"},
			want: Config{APIBaseURL: "https://x/api/v1"},
		},
		{
			name: "bearer prefix stripped from key",
			in:   Config{APIKey: "Bearer abc123"},
			want: Config{APIKey: "abc123"},
		},
		{
			name: "bearer prefix case insensitive",
			in:   Config{APIKey: "BEARER   abc123"},
			want: Config{APIKey: "abc123"},
		},
		{
			name: "bearer inside key untouched",
			in:   Config{APIKey: "abcbearer"},
			want: Config{APIKey: "abcbearer"},
		},
		{
			name: "all fields trimmed",
			in:   Config{APIBaseURL: "  https://x/api ", APIKey: " k ", CollectionID: " C1 "},
			want: Config{APIBaseURL: "https://x/api", APIKey: "k", CollectionID: "C1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Normalize())
		})
	}
}

func TestBuildItemsURL(t *testing.T) {
	tests := []struct {
		name         string
		baseURL      string
		collectionID string
		override     string
		want         string
		wantErr      error
	}{
		{
			name:         "appends collection and items",
			baseURL:      "https://x/api/v1",
			collectionID: "C1",
			want:         "https://x/api/v1/collections/C1/items",
		},
		{
			name:    "already an items url",
			baseURL: "https://x/api/v1/collections/C1/items",
			want:    "https://x/api/v1/collections/C1/items",
		},
		{
			name:    "collection url gets items appended",
			baseURL: "https://x/api/v1/collections/C1",
			want:    "https://x/api/v1/collections/C1/items",
		},
		{
			name:    "collection mid-path returned unchanged",
			baseURL: "https://x/api/v1/collections/C1/extra",
			want:    "https://x/api/v1/collections/C1/extra",
		},
		{
			name:     "override wins over config",
			baseURL:  "https://x/api/v1",
			override: "C2",
			want:     "https://x/api/v1/collections/C2/items",
		},
		{
			name:         "trailing slash in path",
			baseURL:      "https://x/api/v1/collections/C1/",
			collectionID: "",
			want:         "https://x/api/v1/collections/C1/items",
		},
		{
			name:    "no collection anywhere",
			baseURL: "https://x/api/v1",
			wantErr: common.ErrCollectionRequired,
		},
		{
			name:    "missing base url",
			baseURL: "",
			wantErr: common.ErrMissingBaseURL,
		},
		{
			name:         "query string preserved",
			baseURL:      "https://x/api/v1?token=abc",
			collectionID: "C1",
			want:         "https://x/api/v1/collections/C1/items?token=abc",
		},
		{
			name:         "scheme-less base uses string fallback",
			baseURL:      "x/api/v1",
			collectionID: "C1",
			want:         "x/api/v1/collections/C1/items",
		},
		{
			name:    "scheme-less items url unchanged",
			baseURL: "x/api/v1/collections/C1/items",
			want:    "x/api/v1/collections/C1/items",
		},
		{
			name:    "scheme-less without collection fails",
			baseURL: "x/api/v1",
			wantErr: common.ErrCollectionRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{APIBaseURL: tt.baseURL, CollectionID: tt.collectionID}
			got, err := BuildItemsURL(cfg, tt.override)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildItemsURLFallbackMatchesStructured(t *testing.T) {
	// For well-formed input both code paths must agree.
	cases := []struct {
		baseURL      string
		collectionID string
	}{
		{"https://x/api/v1", "C1"},
		{"https://x/api/v1/collections/C1", ""},
		{"https://x/api/v1/collections/C1/items", ""},
	}

	for _, tc := range cases {
		structured, err := BuildItemsURL(Config{APIBaseURL: tc.baseURL, CollectionID: tc.collectionID}, "")
		require.NoError(t, err)

		fallback, err := buildItemsURLFromString(tc.baseURL, tc.collectionID)
		require.NoError(t, err)

		assert.Equal(t, structured, fallback, "base %s", tc.baseURL)
	}
}

func TestBuildCollectionsURL(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		want    string
	}{
		{
			name:    "plain api root",
			baseURL: "https://x/api/v1",
			want:    "https://x/api/v1/collections?documentFilterMode=include",
		},
		{
			name:    "strips collections suffix",
			baseURL: "https://x/api/v1/collections/C1/items",
			want:    "https://x/api/v1/collections?documentFilterMode=include",
		},
		{
			name:    "strips documents suffix",
			baseURL: "https://x/api/v1/documents",
			want:    "https://x/api/v1/collections?documentFilterMode=include",
		},
		{
			name:    "strips blocks suffix",
			baseURL: "https://x/api/v1/blocks/B1",
			want:    "https://x/api/v1/collections?documentFilterMode=include",
		},
		{
			name:    "empty base url",
			baseURL: "",
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildCollectionsURL(Config{APIBaseURL: tt.baseURL}))
		})
	}
}

func TestSelectCollectionID(t *testing.T) {
	tests := []struct {
		name        string
		collections []Collection
		want        string
	}{
		{
			name: "receipt outranks everything",
			collections: []Collection{
				{ID: "a", Name: "Misc"},
				{ID: "b", Name: "Receipts"},
			},
			want: "b",
		},
		{
			name: "keyword priority order",
			collections: []Collection{
				{ID: "a", Name: "Spending log"},
				{ID: "b", Name: "Transactions"},
				{ID: "c", Name: "Expenses 2026"},
			},
			want: "c",
		},
		{
			name: "case insensitive",
			collections: []Collection{
				{ID: "a", Name: "Notes"},
				{ID: "b", Name: "RECEIPT archive"},
			},
			want: "b",
		},
		{
			name: "all zero scores picks first",
			collections: []Collection{
				{ID: "a", Name: "Alpha"},
				{ID: "b", Name: "Beta"},
			},
			want: "a",
		},
		{
			name: "tie keeps original order",
			collections: []Collection{
				{ID: "a", Name: "Expenses home"},
				{ID: "b", Name: "Expenses work"},
			},
			want: "a",
		},
		{
			name: "unnamed collections score zero",
			collections: []Collection{
				{ID: "a"},
				{ID: "b", Name: "spend"},
			},
			want: "b",
		},
		{
			name: "empty list",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SelectCollectionID(tt.collections))
		})
	}
}
