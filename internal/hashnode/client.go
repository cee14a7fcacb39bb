// Package hashnode queries the Hashnode GraphQL API for a publication's latest posts.
package hashnode

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rohitlokhande/portfolio/internal/fetch"
	"github.com/rohitlokhande/portfolio/internal/schemas"
	"github.com/rohitlokhande/portfolio/internal/types"
	rootschemas "github.com/rohitlokhande/portfolio/schemas"
)

// DefaultEndpoint is the public Hashnode GraphQL endpoint.
const DefaultEndpoint = "https://gql.hashnode.com"

// DefaultPostCount is how many posts the blog section shows.
const DefaultPostCount = 4

const postsQuery = `query LatestPosts($host: String!, $first: Int!) {
  publication(host: $host) {
    posts(first: $first) {
      edges {
        node {
          id
          title
          brief
          url
          publishedAt
          readTimeInMinutes
          coverImage {
            url
          }
        }
      }
    }
  }
}`

// Client fetches posts for one publication.
type Client struct {
	Endpoint string
	Host     string // Publication host, e.g. blog.example.com
	First    int
	Options  *fetch.Options
}

// NewClient creates a Client for the given publication host using the default endpoint.
func NewClient(host string) *Client {
	return &Client{
		Endpoint: DefaultEndpoint,
		Host:     host,
		First:    DefaultPostCount,
		Options:  fetch.DefaultOptions(),
	}
}

// ResponseError is returned when the API answered but the payload is unusable.
type ResponseError struct {
	Message string
	Cause   error
}

func (e *ResponseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("hashnode response error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("hashnode response error: %s", e.Message)
}

func (e *ResponseError) Unwrap() error {
	return e.Cause
}

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphQLError struct {
	Message string `json:"message"`
}

type postsResponse struct {
	Data struct {
		Publication *struct {
			Posts struct {
				Edges []struct {
					Node postNode `json:"node"`
				} `json:"edges"`
			} `json:"posts"`
		} `json:"publication"`
	} `json:"data"`
	Errors []graphQLError `json:"errors"`
}

type postNode struct {
	ID                string `json:"id"`
	Title             string `json:"title"`
	Brief             string `json:"brief"`
	URL               string `json:"url"`
	PublishedAt       string `json:"publishedAt"`
	ReadTimeInMinutes int    `json:"readTimeInMinutes"`
	CoverImage        *struct {
		URL string `json:"url"`
	} `json:"coverImage"`
}

// LatestPosts returns the publication's most recent posts in API order.
// It succeeds only when the whole response is well formed; there is no partial result.
func (c *Client) LatestPosts(ctx context.Context) ([]types.BlogPost, error) {
	if strings.TrimSpace(c.Host) == "" {
		return nil, &ResponseError{Message: "publication host is empty"}
	}

	endpoint := c.Endpoint
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	first := c.First
	if first <= 0 {
		first = DefaultPostCount
	}

	req := graphQLRequest{
		Query: postsQuery,
		Variables: map[string]any{
			"host":  c.Host,
			"first": first,
		},
	}

	result, err := fetch.PostJSON(ctx, endpoint, req, c.Options)
	if err != nil {
		return nil, err
	}

	return decodePosts(result.Body)
}

// decodePosts checks the payload shape and maps nodes to BlogPosts.
func decodePosts(body []byte) ([]types.BlogPost, error) {
	var resp postsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &ResponseError{Message: "failed to decode response", Cause: err}
	}

	if len(resp.Errors) > 0 {
		messages := make([]string, len(resp.Errors))
		for i, e := range resp.Errors {
			messages[i] = e.Message
		}
		return nil, &ResponseError{Message: "graphql errors: " + strings.Join(messages, "; ")}
	}

	if err := schemas.ValidateEmbedded(rootschemas.HashnodePosts, body); err != nil {
		return nil, &ResponseError{Message: "unexpected response shape", Cause: err}
	}

	edges := resp.Data.Publication.Posts.Edges
	posts := make([]types.BlogPost, 0, len(edges))
	for _, edge := range edges {
		posts = append(posts, toBlogPost(edge.Node))
	}
	return posts, nil
}

func toBlogPost(n postNode) types.BlogPost {
	post := types.BlogPost{
		ID:       n.ID,
		Title:    n.Title,
		URL:      n.URL,
		Summary:  n.Brief,
		Date:     n.PublishedAt,
		ReadTime: FormatReadTime(n.ReadTimeInMinutes),
	}
	if n.CoverImage != nil {
		post.CoverImage = n.CoverImage.URL
	}
	return post
}

// FormatReadTime renders minutes the way the blog cards show them.
func FormatReadTime(minutes int) string {
	return fmt.Sprintf("%d min read", minutes)
}
