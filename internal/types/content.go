// Package types provides type definitions for the content records rendered into the portfolio site.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "github.com/go-playground/validator/v10"

// Project is a portfolio project card.
type Project struct {
	ID          string   `json:"id" validate:"required"`
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Tags        []string `json:"tags" validate:"dive,required"`
	RepoURL     string   `json:"github,omitempty" validate:"omitempty,url"` // Source repository
	LiveURL     string   `json:"link,omitempty" validate:"omitempty,url"`   // Deployed demo
}

// BlogPost is a preview of a published article.
type BlogPost struct {
	ID         string `json:"id" validate:"required"`
	Title      string `json:"title" validate:"required"`
	URL        string `json:"url" validate:"required,url"`
	Summary    string `json:"excerpt"`
	Date       string `json:"date"`     // Publication year ("2025") or RFC 3339 timestamp
	ReadTime   string `json:"readTime"` // e.g. "6 min read"
	CoverImage string `json:"coverImage,omitempty" validate:"omitempty,url"`
}

// Profile holds the site owner's identity and biography.
type Profile struct {
	Name       string `json:"name" validate:"required"`
	Title      string `json:"title" validate:"required"`
	Experience string `json:"experience"`
	Location   string `json:"location"`
	Bio        string `json:"bio"` // Markdown
}

// SkillSet groups skill names into the four fixed categories.
// A nil category means "not provided"; an empty one renders as empty.
type SkillSet struct {
	Frontend []string `json:"frontend"`
	Backend  []string `json:"backend"`
	Cloud    []string `json:"cloud"`
	Tools    []string `json:"tools"`
}

// Highlight is one of the short cards shown next to the biography.
type Highlight struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
}

// Content is everything the renderer needs for one page build.
type Content struct {
	Profile      *Profile
	Skills       *SkillSet
	Projects     []Project
	BlogPosts    []BlogPost
	Highlights   []Highlight
	SocialLinks  []SocialLink
	ContactLinks []ContactLink
	Links        SiteLinks
}

var validate = validator.New()

// Validate validates the Project using the validator.
func (p *Project) Validate() error {
	return validate.Struct(p)
}

// Validate validates the BlogPost using the validator.
func (b *BlogPost) Validate() error {
	return validate.Struct(b)
}

// Validate validates the Profile using the validator.
func (p *Profile) Validate() error {
	return validate.Struct(p)
}

// Validate validates the Highlight using the validator.
func (h *Highlight) Validate() error {
	return validate.Struct(h)
}
