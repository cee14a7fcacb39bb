package content

import (
	"context"
	"log"

	"github.com/rohitlokhande/portfolio/internal/types"
)

// BlogSource is anything that can list the latest blog posts.
type BlogSource interface {
	LatestPosts(ctx context.Context) ([]types.BlogPost, error)
}

// Origin records where the blog posts of a build came from.
type Origin string

const (
	OriginRemote   Origin = "remote"
	OriginFallback Origin = "fallback"
)

// BlogFeed is the outcome of one blog fetch.
type BlogFeed struct {
	Posts  []types.BlogPost
	Origin Origin
	Err    error // Why the fallback was used; nil for remote posts
}

// Provider assembles the page content for a build.
type Provider struct {
	Blog   BlogSource
	Logger *log.Logger
}

// NewProvider creates a Provider that reads posts from blog and logs to the standard logger.
func NewProvider(blog BlogSource) *Provider {
	return &Provider{
		Blog:   blog,
		Logger: log.Default(),
	}
}

// BlogPosts returns the latest posts, or the fallback list if they cannot be fetched.
func (p *Provider) BlogPosts(ctx context.Context) []types.BlogPost {
	return p.LoadBlogPosts(ctx).Posts
}

// LoadBlogPosts fetches posts once. Any failure substitutes FallbackBlogPosts in full;
// the error is logged and reported in the feed but never returned.
func (p *Provider) LoadBlogPosts(ctx context.Context) BlogFeed {
	if p.Blog == nil {
		p.logf("Blog source not configured, using fallback posts")
		return BlogFeed{Posts: FallbackBlogPosts(), Origin: OriginFallback, Err: errNoBlogSource}
	}

	posts, err := p.Blog.LatestPosts(ctx)
	if err != nil {
		p.logf("Error fetching blog posts, using fallback posts: %v", err)
		return BlogFeed{Posts: FallbackBlogPosts(), Origin: OriginFallback, Err: err}
	}
	if err := ValidatePosts(posts); err != nil {
		p.logf("Unusable blog post, using fallback posts: %v", err)
		return BlogFeed{Posts: FallbackBlogPosts(), Origin: OriginFallback, Err: err}
	}
	if posts == nil {
		posts = []types.BlogPost{}
	}
	return BlogFeed{Posts: posts, Origin: OriginRemote}
}

// Load resolves every record the page needs.
func (p *Provider) Load(ctx context.Context) (*types.Content, BlogFeed) {
	feed := p.LoadBlogPosts(ctx)
	return &types.Content{
		Profile:      UserProfile(),
		Skills:       Skills(),
		Projects:     Projects(),
		BlogPosts:    feed.Posts,
		Highlights:   Highlights(),
		SocialLinks:  SocialLinks(),
		ContactLinks: ContactLinks(),
		Links:        Links(),
	}, feed
}

func (p *Provider) logf(format string, args ...any) {
	if p.Logger == nil {
		log.Printf(format, args...)
		return
	}
	p.Logger.Printf(format, args...)
}
