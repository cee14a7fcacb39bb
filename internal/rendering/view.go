package rendering

import (
	"html/template"
	"strings"

	"github.com/rohitlokhande/portfolio/internal/types"
)

// Section identifies one page section; the value is also its HTML id and template name.
type Section string

const (
	SectionHero     Section = "home"
	SectionAbout    Section = "about"
	SectionSkills   Section = "skills"
	SectionProjects Section = "projects"
	SectionBlog     Section = "blog"
	SectionContact  Section = "contact"
	SectionFooter   Section = "footer"
)

// Sections returns every section in page order.
func Sections() []Section {
	return []Section{
		SectionHero,
		SectionAbout,
		SectionSkills,
		SectionProjects,
		SectionBlog,
		SectionContact,
		SectionFooter,
	}
}

// PageData is the input to a page render.
type PageData struct {
	Content     *types.Content
	SiteTitle   string
	Description string
	AssetPrefix string // Prepended to site-relative asset paths; empty in development
	HeroImage   string // Site-relative hero background; empty for none
	Year        int    // Copyright year in the footer
}

// pageView is what the templates actually see
type pageView struct {
	SiteTitle   string
	Description string
	Stylesheet  string
	Nav         []navLink
	Hero        heroView
	About       aboutView
	Skills      skillsView
	Projects    projectsView
	Blog        blogView
	Contact     contactView
	Footer      footerView
}

type navLink struct {
	Label string
	Href  string
}

type heroView struct {
	Profile    types.Profile
	Background string
	ResumeURL  string
	Social     []types.SocialLink
}

type aboutView struct {
	Profile    types.Profile
	Bio        template.HTML
	Highlights []types.Highlight
}

type skillsView struct {
	Categories []skillCategory
}

type skillCategory struct {
	Title  string
	Skills []string
}

type projectsView struct {
	Items   []types.Project
	MoreURL string
}

type blogView struct {
	Posts   []blogCard
	BlogURL string
}

type blogCard struct {
	types.BlogPost
	DisplayDate string
}

type contactView struct {
	Links     []types.ContactLink
	EmailLink string
}

type footerView struct {
	Year   int
	Name   string
	Social []types.SocialLink
}

// defaultProfile is shown when the provider could not supply one
var defaultProfile = types.Profile{
	Name:       "Rohit Lokhande",
	Title:      "Software Engineer",
	Experience: "2+ years",
	Location:   "India",
	Bio:        "Passionate Full Stack Developer focused on building end-to-end solutions, optimizing performance, and contributing to innovative projects and open-source communities.",
}

// defaultSkills fills any category the provider left nil
func defaultSkills() types.SkillSet {
	return types.SkillSet{
		Frontend: []string{"React.js", "Next.js", "React Native", "Flutter", "Redux", "React Query", "Tailwind CSS"},
		Backend:  []string{"Node.js", "Express.js", "Socket.io", "REST APIs", "GraphQL"},
		Cloud:    []string{"Docker", "AWS", "Cloudflare", "GitHub Actions", "GitLab CI", "Nginx"},
		Tools:    []string{"Git", "Jira", "NPM", "CI/CD", "Microservices"},
	}
}

func navigation() []navLink {
	return []navLink{
		{Label: "Home", Href: "#home"},
		{Label: "About", Href: "#about"},
		{Label: "Skills", Href: "#skills"},
		{Label: "Projects", Href: "#projects"},
		{Label: "Blog", Href: "#blog"},
		{Label: "Contact", Href: "#contact"},
	}
}

// buildPageView maps content into the per-section view structs
func buildPageView(data *PageData) (*pageView, error) {
	if data == nil {
		data = &PageData{}
	}
	c := data.Content
	if c == nil {
		c = &types.Content{}
	}

	profile := defaultProfile
	if c.Profile != nil {
		profile = *c.Profile
	}

	bio, err := RenderMarkdown(profile.Bio)
	if err != nil {
		return nil, err
	}

	mailto := "mailto:" + c.Links.Email
	if c.Links.Email == "" {
		mailto = ""
	}

	posts := make([]blogCard, len(c.BlogPosts))
	for i, post := range c.BlogPosts {
		posts[i] = blogCard{BlogPost: post, DisplayDate: DisplayDate(post.Date)}
	}

	return &pageView{
		SiteTitle:   data.SiteTitle,
		Description: data.Description,
		Stylesheet:  assetURL(data.AssetPrefix, "/styles.css"),
		Nav:         navigation(),
		Hero: heroView{
			Profile:    profile,
			Background: assetURL(data.AssetPrefix, data.HeroImage),
			ResumeURL:  assetURL(data.AssetPrefix, c.Links.Resume),
			Social:     c.SocialLinks,
		},
		About: aboutView{
			Profile:    profile,
			Bio:        bio,
			Highlights: c.Highlights,
		},
		Skills: skillsView{Categories: skillCategories(c.Skills)},
		Projects: projectsView{
			Items:   c.Projects,
			MoreURL: c.Links.GitHub,
		},
		Blog: blogView{
			Posts:   posts,
			BlogURL: c.Links.Blog,
		},
		Contact: contactView{
			Links:     c.ContactLinks,
			EmailLink: mailto,
		},
		Footer: footerView{
			Year:   data.Year,
			Name:   profile.Name,
			Social: c.SocialLinks,
		},
	}, nil
}

// skillCategories keeps the supplied order; nil input or nil categories use the defaults
func skillCategories(s *types.SkillSet) []skillCategory {
	defaults := defaultSkills()
	set := defaults
	if s != nil {
		set = *s
		if set.Frontend == nil {
			set.Frontend = defaults.Frontend
		}
		if set.Backend == nil {
			set.Backend = defaults.Backend
		}
		if set.Cloud == nil {
			set.Cloud = defaults.Cloud
		}
		if set.Tools == nil {
			set.Tools = defaults.Tools
		}
	}

	return []skillCategory{
		{Title: "Frontend", Skills: set.Frontend},
		{Title: "Backend", Skills: set.Backend},
		{Title: "Cloud & DevOps", Skills: set.Cloud},
		{Title: "Tools & Others", Skills: set.Tools},
	}
}

func assetURL(prefix, path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return strings.TrimSuffix(prefix, "/") + path
}
