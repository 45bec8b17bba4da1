package wikipedia

import (
	"context"
	"flag"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quaverlabs/brainzgap/internal/testhelper"
	"github.com/quaverlabs/brainzgap/pkg/errors"
)

// TestMain handles flag parsing for the -update flag.
func TestMain(m *testing.M) {
	flag.Parse()
	os.Exit(m.Run())
}

// newCategoryServer serves the two-page category fixture, switching to the
// second page once a continuation token arrives.
func newCategoryServer(t *testing.T, requests *[]string) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if requests != nil {
			*requests = append(*requests, r.URL.RawQuery)
		}

		q := r.URL.Query()
		assert.Equal(t, "query", q.Get("action"))
		assert.Equal(t, "categorymembers", q.Get("list"))
		assert.Equal(t, "json", q.Get("format"))

		w.Header().Set("Content-Type", "application/json")
		if q.Get("cmcontinue") != "" {
			_, _ = w.Write(testhelper.LoadTestdata(t, "category_members_page2.json"))
			return
		}
		_, _ = w.Write(testhelper.LoadTestdata(t, "category_members_page1.json"))
	}))
}

func TestCategoryMembers(t *testing.T) {
	var requests []string
	server := newCategoryServer(t, &requests)
	defer server.Close()

	client := New("he", WithBaseURL(server.URL))
	members, err := client.CategoryMembers(context.Background(), "זמרים_ישראלים")
	require.NoError(t, err)

	// Non-article namespaces are dropped, pages are merged in listing order.
	require.Len(t, members, 4)
	assert.Equal(t, "אביב גפן", members[0].Title)
	assert.Equal(t, int64(148645), members[0].PageID)
	assert.Equal(t, "שלמה ארצי", members[1].Title)
	assert.Equal(t, "ריטה", members[2].Title)
	assert.Equal(t, "עידן רייכל", members[3].Title)

	require.Len(t, requests, 2, "continuation should trigger exactly one more request")
	assert.Contains(t, requests[0], "cmlimit=max")
	assert.NotContains(t, requests[0], "cmcontinue")
	assert.Contains(t, requests[1], "cmcontinue")
}

func TestCategoryMembersSinglePage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Category:זמרות_ישראליות", r.URL.Query().Get("cmtitle"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(testhelper.LoadTestdata(t, "category_members_page2.json"))
	}))
	defer server.Close()

	client := New("he", WithBaseURL(server.URL))
	members, err := client.CategoryMembers(context.Background(), "זמרות_ישראליות")
	require.NoError(t, err)
	require.Len(t, members, 2)
}

func TestCategoryMembersInvalidCategory(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(testhelper.LoadTestdata(t, "category_invalid.json"))
	}))
	defer server.Close()

	client := New("he", WithBaseURL(server.URL))
	_, err := client.CategoryMembers(context.Background(), "][")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))

	var notFound *errors.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "category", notFound.Resource)
}

func TestCategoryMembersEmptyName(t *testing.T) {
	client := New("he")
	_, err := client.CategoryMembers(context.Background(), "")
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestCategoryTitle(t *testing.T) {
	tests := []struct {
		name     string
		category string
		want     string
	}{
		{
			name:     "bare name gets English prefix",
			category: "זמרים_ישראלים",
			want:     "Category:זמרים_ישראלים",
		},
		{
			name:     "English prefix kept as is",
			category: "Category:Israeli singers",
			want:     "Category:Israeli singers",
		},
		{
			name:     "localized prefix kept as is",
			category: "קטגוריה:זמרים_ישראלים",
			want:     "קטגוריה:זמרים_ישראלים",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, categoryTitle(tt.category))
		})
	}
}

func TestEntityID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "query", q.Get("action"))
		assert.Equal(t, "pageprops", q.Get("prop"))
		assert.Equal(t, "אביב גפן", q.Get("titles"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(testhelper.LoadTestdata(t, "pageprops_linked.json"))
	}))
	defer server.Close()

	client := New("he", WithBaseURL(server.URL))
	id, err := client.EntityID(context.Background(), "אביב גפן")
	require.NoError(t, err)
	assert.Equal(t, "Q2899357", id)
}

func TestEntityIDUnlinked(t *testing.T) {
	tests := []struct {
		name    string
		fixture string
		title   string
	}{
		{
			name:    "page without wikibase item",
			fixture: "pageprops_unlinked.json",
			title:   "זמר אלמוני",
		},
		{
			name:    "missing page",
			fixture: "pageprops_missing.json",
			title:   "דף שאינו קיים",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write(testhelper.LoadTestdata(t, tt.fixture))
			}))
			defer server.Close()

			client := New("he", WithBaseURL(server.URL))
			_, err := client.EntityID(context.Background(), tt.title)
			require.Error(t, err)
			assert.True(t, errors.IsNotLinked(err))
			assert.Contains(t, err.Error(), tt.title)
		})
	}
}

func TestEntityIDKeyOrder(t *testing.T) {
	// Two pages both carrying an entity ID resolve to the one under the
	// lexicographically smallest page key.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"query": {
				"pages": {
					"200": {"pageid": 200, "ns": 0, "title": "ב", "pageprops": {"wikibase_item": "Q200"}},
					"100": {"pageid": 100, "ns": 0, "title": "א", "pageprops": {"wikibase_item": "Q100"}}
				}
			}
		}`))
	}))
	defer server.Close()

	client := New("he", WithBaseURL(server.URL))
	id, err := client.EntityID(context.Background(), "א")
	require.NoError(t, err)
	assert.Equal(t, "Q100", id)
}

func TestEntityIDEmptyTitle(t *testing.T) {
	client := New("he")
	_, err := client.EntityID(context.Background(), "")
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestEntityIDAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"error": {"code": "ratelimited", "info": "You've exceeded your rate limit."}}`))
	}))
	defer server.Close()

	client := New("he", WithBaseURL(server.URL))
	_, err := client.EntityID(context.Background(), "אביב גפן")
	require.Error(t, err)

	var apiErr *errors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "wikipedia", apiErr.Source)
	assert.Contains(t, apiErr.Message, "ratelimited")
}

func TestNewDefaults(t *testing.T) {
	client := New("he")
	assert.Equal(t, "he", client.Language())
	assert.Equal(t, "https://he.wikipedia.org/w/api.php", client.baseURL)
	assert.Equal(t, "max", client.limit)
}
