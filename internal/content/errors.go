package content

import (
	"errors"
	"fmt"

	"github.com/rohitlokhande/portfolio/internal/types"
)

var errNoBlogSource = errors.New("no blog source configured")

// InvalidContentError reports a static record that fails validation.
type InvalidContentError struct {
	Record string
	Cause  error
}

func (e *InvalidContentError) Error() string {
	return fmt.Sprintf("invalid content %s: %v", e.Record, e.Cause)
}

func (e *InvalidContentError) Unwrap() error {
	return e.Cause
}

// Validate checks every static record in c and returns the first failure.
// Blog posts are checked by the provider, which falls back instead of failing.
func Validate(c *types.Content) error {
	if c == nil {
		return &InvalidContentError{Record: "content", Cause: errors.New("nil content")}
	}
	if c.Profile != nil {
		if err := c.Profile.Validate(); err != nil {
			return &InvalidContentError{Record: "profile", Cause: err}
		}
	}
	for i := range c.Projects {
		if err := c.Projects[i].Validate(); err != nil {
			return &InvalidContentError{Record: fmt.Sprintf("project %q", c.Projects[i].ID), Cause: err}
		}
	}
	for i := range c.Highlights {
		if err := c.Highlights[i].Validate(); err != nil {
			return &InvalidContentError{Record: fmt.Sprintf("highlight %d", i), Cause: err}
		}
	}
	for i := range c.SocialLinks {
		if err := c.SocialLinks[i].Validate(); err != nil {
			return &InvalidContentError{Record: fmt.Sprintf("social link %q", c.SocialLinks[i].Name), Cause: err}
		}
	}
	for i := range c.ContactLinks {
		if err := c.ContactLinks[i].Validate(); err != nil {
			return &InvalidContentError{Record: fmt.Sprintf("contact link %q", c.ContactLinks[i].Name), Cause: err}
		}
	}
	if err := c.Links.Validate(); err != nil {
		return &InvalidContentError{Record: "site links", Cause: err}
	}
	return nil
}

// ValidatePosts checks remote posts and returns the first failure.
func ValidatePosts(posts []types.BlogPost) error {
	for i := range posts {
		if err := posts[i].Validate(); err != nil {
			return &InvalidContentError{Record: fmt.Sprintf("blog post %q", posts[i].ID), Cause: err}
		}
	}
	return nil
}
