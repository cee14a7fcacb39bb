// Package content supplies the records rendered into the portfolio page.
// Everything here is fixed at build time except the blog posts, which are fetched once
// and fall back to a static list when the blog API is unavailable.
package content

import "github.com/rohitlokhande/portfolio/internal/types"

// Well-known destinations.
const (
	WebsiteURL  = "https://rohitlokhande.in"
	GitHubURL   = "https://github.com/rohit-lokhande-dev"
	LinkedInURL = "https://linkedin.rohitlokhande.in"
	BlogURL     = "https://blog.rohitlokhande.in"
	BlogHost    = "blog.rohitlokhande.in"
	Email       = "rohitlokhande6293@gmail.com"
	ResumePath  = "/resume.pdf"
)

// Projects returns the featured project list in display order.
func Projects() []types.Project {
	return []types.Project{
		{
			ID:          "1",
			Title:       "Veterinary Appointment System",
			Description: "Multi-tenant scheduling platform for veterinary hospitals with Zoom integration, AI transcription, and scalable AWS architecture.",
			Tags:        []string{"Node.js", "Express.js", "MySQL", "AWS(EC2,S3)", "Docker", "CI/CD", "Zoom API", "ElevenLabs", "LLM(OpenAI)"},
		},
		{
			ID:          "2",
			Title:       "RAG System for Business Document Q&A",
			Description: "AI-powered natural language search for business documents using Google Apps Script and Gemini API.",
			Tags:        []string{"Google Apps Script", "AppSheet", "Gemini API", "AI/ML", "Document Processing", "LLM(Gemini API)"},
		},
		{
			ID:          "3",
			Title:       "Meal Management Platform",
			Description: "Automated meal tracking system with real-time dashboards and attendance-based automation.",
			Tags:        []string{"Node.js", "MySQL", "Socket.IO", "Real-time", "Automation"},
		},
		{
			ID:          "4",
			Title:       "Student Management System",
			Description: "Modern Next.js platform with dynamic forms, automated workflows, and PDF generation for 500+ users.",
			Tags:        []string{"Next.js", "Node.js", "Tailwind CSS", "Shadcn UI", "Uppy", "PDF Generation(Puppeteer)"},
		},
	}
}

// FallbackBlogPosts is the list shown when the blog API cannot be used.
func FallbackBlogPosts() []types.BlogPost {
	return []types.BlogPost{
		{
			ID:       "1",
			Title:    "Easy Ways to Set Up Your Own Deep Linking System",
			URL:      BlogURL + "/easy-ways-to-set-up-your-own-deep-linking-system",
			Summary:  "Gain complete control over your app's navigation by creating custom deep links for Android and iOS, eliminating the need for Firebase.",
			Date:     "2025",
			ReadTime: "6 min read",
		},
		{
			ID:       "2",
			Title:    "Boosting LLM Performance with RAG",
			URL:      BlogURL + "/boosting-llm-performance-with-rag",
			Summary:  "Explore how Retrieval-Augmented Generation can enhance Large Language Models for more accurate and contextual responses.",
			Date:     "2023",
			ReadTime: "8 min read",
		},
	}
}

// UserProfile returns the site owner's profile.
func UserProfile() *types.Profile {
	return &types.Profile{
		Name:       "Rohit Lokhande",
		Title:      "Software Engineer",
		Experience: "2+ years",
		Location:   "India",
		Bio: "Hi, I'm **Rohit Lokhande**, a Software Engineer with **2+ years of experience** building scalable " +
			"web and mobile applications using React.js, Node.js, and cloud technologies.\n\n" +
			"I enjoy designing clean architectures, crafting efficient APIs, and exploring Docker, CI/CD, " +
			"and AWS for reliable deployments.\n\n" +
			"Currently working on **backend-focused projects** and sharing learnings through blogs and " +
			"open-source contributions.",
	}
}

// Skills returns the skill categories in display order.
func Skills() *types.SkillSet {
	return &types.SkillSet{
		Frontend: []string{"React.js", "Next.js", "React Native", "Flutter", "Redux", "React Query", "Tailwind CSS"},
		Backend:  []string{"Node.js", "Express.js", "Python", "Django", "PostgreSQL", "MongoDB", "Redis"},
		Cloud:    []string{"AWS", "Docker", "Kubernetes", "CI/CD", "Terraform", "CloudFormation"},
		Tools:    []string{"Git", "VS Code", "Figma", "Postman", "Jest", "Cypress", "Webpack"},
	}
}

// Highlights returns the cards shown beside the biography.
func Highlights() []types.Highlight {
	return []types.Highlight{
		{
			Title:       "Full Stack Development",
			Description: "Expert in building modern web applications with React, Node.js, and cutting-edge frameworks.",
		},
		{
			Title:       "Scalable Solutions",
			Description: "Designing clean architectures and efficient APIs for reliable, high-performance systems.",
		},
		{
			Title:       "Cloud & DevOps",
			Description: "Proficient in Docker, CI/CD, AWS, and cloud technologies for seamless deployments.",
		},
	}
}

// SocialLinks returns the hero icon links.
func SocialLinks() []types.SocialLink {
	return []types.SocialLink{
		{Name: "github", URL: GitHubURL, Label: "GitHub Profile"},
		{Name: "linkedin", URL: LinkedInURL, Label: "LinkedIn Profile"},
		{Name: "blog", URL: BlogURL, Label: "Blog"},
	}
}

// ContactLinks returns the rows of the contact section.
func ContactLinks() []types.ContactLink {
	return []types.ContactLink{
		{Name: "github", URL: GitHubURL, Label: "GitHub", Value: "@rohit-lokhande-dev"},
		{Name: "linkedin", URL: LinkedInURL, Label: "LinkedIn", Value: "rohit-lokhande"},
		{Name: "blog", URL: BlogURL, Label: "Blog", Value: BlogHost},
	}
}

// Links returns the destinations shared by several sections.
func Links() types.SiteLinks {
	return types.SiteLinks{
		Website: WebsiteURL,
		GitHub:  GitHubURL,
		Blog:    BlogURL,
		Email:   Email,
		Resume:  ResumePath,
	}
}

// EmailLink builds a mailto link, defaulting to the site owner's address.
func EmailLink(email string) string {
	if email == "" {
		email = Email
	}
	return "mailto:" + email
}
