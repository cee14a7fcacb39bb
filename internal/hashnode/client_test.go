package hashnode

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rohitlokhande/portfolio/internal/fetch"
	"github.com/rohitlokhande/portfolio/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(url string) *Client {
	c := NewClient("blog.example.com")
	c.Endpoint = url
	return c
}

func postsBody(n int) string {
	edges := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		cover := "null"
		if i%2 == 0 {
			cover = fmt.Sprintf(`{"url":"https://cdn.example.com/%d.png"}`, i)
		}
		edges = append(edges, fmt.Sprintf(`{"node":{
			"id":"post-%d","title":"Title %d","brief":"Brief %d",
			"url":"https://blog.example.com/post-%d",
			"publishedAt":"2025-0%d-10T08:00:00.000Z","readTimeInMinutes":%d,
			"coverImage":%s}}`, i, i, i, i, i, i+2, cover))
	}
	return `{"data":{"publication":{"posts":{"edges":[` + strings.Join(edges, ",") + `]}}}}`
}

func TestLatestPosts_RequestShape(t *testing.T) {
	var got graphQLRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &got)
		_, _ = w.Write([]byte(postsBody(0)))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).LatestPosts(context.Background())
	require.NoError(t, err)
	assert.Contains(t, got.Query, "publication(host: $host)")
	assert.Contains(t, got.Query, "posts(first: $first)")
	assert.Equal(t, "blog.example.com", got.Variables["host"])
	assert.EqualValues(t, DefaultPostCount, got.Variables["first"])
}

func TestLatestPosts_ZeroToFourItems(t *testing.T) {
	for n := 0; n <= 4; n++ {
		t.Run(fmt.Sprintf("%d posts", n), func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(postsBody(n)))
			}))
			defer server.Close()

			posts, err := newTestClient(server.URL).LatestPosts(context.Background())
			require.NoError(t, err)
			require.Len(t, posts, n)
			require.NotNil(t, posts)

			for i, post := range posts {
				idx := i + 1
				assert.Equal(t, fmt.Sprintf("post-%d", idx), post.ID)
				assert.Equal(t, fmt.Sprintf("Title %d", idx), post.Title)
				assert.Equal(t, fmt.Sprintf("Brief %d", idx), post.Summary)
				assert.Equal(t, fmt.Sprintf("https://blog.example.com/post-%d", idx), post.URL)
				assert.Equal(t, fmt.Sprintf("2025-0%d-10T08:00:00.000Z", idx), post.Date)
				assert.Equal(t, fmt.Sprintf("%d min read", idx+2), post.ReadTime)
				if idx%2 == 0 {
					assert.Equal(t, fmt.Sprintf("https://cdn.example.com/%d.png", idx), post.CoverImage)
				} else {
					assert.Empty(t, post.CoverImage)
				}
			}
		})
	}
}

func TestLatestPosts_Failures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"server error", http.StatusInternalServerError, `{"data":null}`},
		{"not found", http.StatusNotFound, ``},
		{"not json", http.StatusOK, `<html>maintenance</html>`},
		{"graphql errors", http.StatusOK, `{"errors":[{"message":"rate limited"}],"data":null}`},
		{"unknown publication", http.StatusOK, `{"data":{"publication":null}}`},
		{"missing edges", http.StatusOK, `{"data":{"publication":{"posts":{}}}}`},
		{"node without url", http.StatusOK, `{"data":{"publication":{"posts":{"edges":[{"node":{"id":"1","title":"t"}}]}}}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			posts, err := newTestClient(server.URL).LatestPosts(context.Background())
			require.Error(t, err)
			assert.Nil(t, posts)
		})
	}
}

func TestLatestPosts_HTTPErrorIsFetchError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).LatestPosts(context.Background())
	var fetchErr *fetch.Error
	assert.ErrorAs(t, err, &fetchErr)
}

func TestLatestPosts_ShapeErrorIsResponseError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"data":{}}`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).LatestPosts(context.Background())
	var respErr *ResponseError
	require.ErrorAs(t, err, &respErr)
	assert.Contains(t, err.Error(), "unexpected response shape")
}

func TestLatestPosts_EmptyHost(t *testing.T) {
	c := NewClient("  ")
	_, err := c.LatestPosts(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "publication host is empty")
}

func TestToBlogPost(t *testing.T) {
	n := postNode{
		ID:                "abc",
		Title:             "Hello",
		Brief:             "World",
		URL:               "https://blog.example.com/hello",
		PublishedAt:       "2024-05-06T07:08:09Z",
		ReadTimeInMinutes: 3,
	}
	assert.Equal(t, types.BlogPost{
		ID:       "abc",
		Title:    "Hello",
		URL:      "https://blog.example.com/hello",
		Summary:  "World",
		Date:     "2024-05-06T07:08:09Z",
		ReadTime: "3 min read",
	}, toBlogPost(n))
}
