package portfolio

import "slices"

type SocialLinks struct {
	GitHub    string `json:"github"`
	LinkedIn  string `json:"linkedin"`
	Twitter   string `json:"twitter"`
	Instagram string `json:"instagram"`
}

// ProfileData is the identity block of a domain profile plus every UI string
// the owner can override on the public page.
type ProfileData struct {
	Name      string      `json:"name"`
	Title     string      `json:"title"`
	Tagline   string      `json:"tagline"`
	Bio       string      `json:"bio"`
	Email     string      `json:"email"`
	Phone     string      `json:"phone"`
	Location  string      `json:"location"`
	ResumeURL string      `json:"resumeUrl"`
	Avatar    string      `json:"avatar"`
	Social    SocialLinks `json:"social"`

	// Roles cycle in the hero typing animation.
	Roles []string `json:"roles"`

	Greeting            string `json:"greeting"`
	HeroButtonPrimary   string `json:"heroButtonPrimary"`
	HeroButtonSecondary string `json:"heroButtonSecondary"`
	AvailabilityText    string `json:"availabilityText"`
	HireMeText          string `json:"hireMeText"`
	AboutTitle          string `json:"aboutTitle"`
	SkillsTitle         string `json:"skillsTitle"`
	ProjectsTitle       string `json:"projectsTitle"`
	ExperienceTitle     string `json:"experienceTitle"`
	EducationTitle      string `json:"educationTitle"`
	ContactTitle        string `json:"contactTitle"`
	BlogTitle           string `json:"blogTitle"`
	TestimonialsTitle   string `json:"testimonialsTitle"`
	FooterText          string `json:"footerText"`
}

func (p ProfileData) clone() ProfileData {
	p.Roles = cloneStrings(p.Roles)
	return p
}

type SEOSettings struct {
	MetaTitle       string   `json:"metaTitle"`
	MetaDescription string   `json:"metaDescription"`
	Keywords        []string `json:"keywords"`
	OGImage         string   `json:"ogImage"`
}

func (s SEOSettings) clone() SEOSettings {
	s.Keywords = cloneStrings(s.Keywords)
	return s
}

// CustomLink is an extra navigation entry.
type CustomLink struct {
	ID         string `json:"id"`
	Label      string `json:"label"`
	URL        string `json:"url"`
	IsExternal bool   `json:"isExternal"`
	Icon       string `json:"icon,omitempty"`
}

// cloneStrings never returns nil so cloned documents encode "[]" rather than "null".
func cloneStrings(in []string) []string {
	if in == nil {
		return []string{}
	}
	return slices.Clone(in)
}
