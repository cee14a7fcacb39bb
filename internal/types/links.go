//nolint:revive // types is a standard Go package name pattern
package types

// SocialLink is an icon link shown in the hero section.
type SocialLink struct {
	Name  string `json:"name" validate:"required"`
	URL   string `json:"url" validate:"required,url"`
	Label string `json:"label" validate:"required"`
}

// ContactLink is a row in the contact section.
type ContactLink struct {
	Name  string `json:"name" validate:"required"`
	URL   string `json:"url" validate:"required,url"`
	Label string `json:"label" validate:"required"`
	Value string `json:"value"`
}

// SiteLinks holds the well-known destinations referenced across sections.
type SiteLinks struct {
	Website string `json:"website" validate:"required,url"`
	GitHub  string `json:"github" validate:"required,url"`
	Blog    string `json:"blog" validate:"required,url"`
	Email   string `json:"email" validate:"required,email"`
	Resume  string `json:"resume"` // Site-relative path, asset prefixed at render time
}

// Validate validates the SocialLink using the validator.
func (l *SocialLink) Validate() error {
	return validate.Struct(l)
}

// Validate validates the ContactLink using the validator.
func (l *ContactLink) Validate() error {
	return validate.Struct(l)
}

// Validate validates the SiteLinks using the validator.
func (l *SiteLinks) Validate() error {
	return validate.Struct(l)
}
