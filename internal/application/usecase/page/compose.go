package page

import (
	"net/url"
	"strings"

	domain "github.com/khoahotran/portfolio/internal/domain/portfolio"
)

const KindCustom = "custom"

// RenderedSection is one entry of the public page in display order.
type RenderedSection struct {
	ID    string `json:"id"`
	Kind  string `json:"kind"`
	Title string `json:"title,omitempty"`
	Data  any    `json:"data"`
}

// Builder produces the payload of one built-in section.
type Builder func(view domain.PortfolioData) (title string, data any)

// Registry maps built-in section kinds to their builders. Kinds without a
// builder are skipped by Compose.
type Registry map[domain.SectionKind]Builder

type AboutData struct {
	Name      string   `json:"name"`
	Title     string   `json:"title"`
	Bio       string   `json:"bio"`
	Avatar    string   `json:"avatar"`
	Location  string   `json:"location"`
	ResumeURL string   `json:"resumeUrl"`
	Roles     []string `json:"roles"`
}

type EducationData struct {
	Education      []domain.Education     `json:"education"`
	Certifications []domain.Certification `json:"certifications"`
}

type GitHubData struct {
	Username   string `json:"username"`
	ProfileURL string `json:"profileUrl"`
}

type ContactData struct {
	Email       string              `json:"email"`
	Phone       string              `json:"phone"`
	Location    string              `json:"location"`
	Social      domain.SocialLinks  `json:"social"`
	CustomLinks []domain.CustomLink `json:"customLinks"`
}

func DefaultRegistry() Registry {
	return Registry{
		domain.SectionAbout: func(v domain.PortfolioData) (string, any) {
			p := v.Profile
			return p.AboutTitle, AboutData{
				Name: p.Name, Title: p.Title, Bio: p.Bio, Avatar: p.Avatar,
				Location: p.Location, ResumeURL: p.ResumeURL, Roles: p.Roles,
			}
		},
		domain.SectionSkills: func(v domain.PortfolioData) (string, any) {
			return v.Profile.SkillsTitle, v.Skills
		},
		domain.SectionProjects: func(v domain.PortfolioData) (string, any) {
			return v.Profile.ProjectsTitle, v.Projects
		},
		domain.SectionExperience: func(v domain.PortfolioData) (string, any) {
			return v.Profile.ExperienceTitle, v.Experience
		},
		domain.SectionEducation: func(v domain.PortfolioData) (string, any) {
			return v.Profile.EducationTitle, EducationData{Education: v.Education, Certifications: v.Certifications}
		},
		domain.SectionStats: func(v domain.PortfolioData) (string, any) {
			return "", v.CustomStats
		},
		domain.SectionGitHubStats: func(v domain.PortfolioData) (string, any) {
			user := GitHubUsername(v.Profile.Social.GitHub)
			if user == "" {
				return "", nil
			}
			return "", GitHubData{Username: user, ProfileURL: "https://github.com/" + user}
		},
		domain.SectionTestimonials: func(v domain.PortfolioData) (string, any) {
			return v.Profile.TestimonialsTitle, v.Testimonials
		},
		domain.SectionBlog: func(v domain.PortfolioData) (string, any) {
			return v.Profile.BlogTitle, v.BlogPosts
		},
		domain.SectionContact: func(v domain.PortfolioData) (string, any) {
			p := v.Profile
			return p.ContactTitle, ContactData{
				Email: p.Email, Phone: p.Phone, Location: p.Location,
				Social: p.Social, CustomLinks: v.CustomLinks,
			}
		},
	}
}

// Compose walks the section order. custom_ ids resolve against the custom
// sections and render only when found and visible; other ids render when
// they name a visible built-in with a registered builder. A builder that
// returns nil data drops its section.
func Compose(view domain.PortfolioData, reg Registry) []RenderedSection {
	out := make([]RenderedSection, 0, len(view.SectionOrder))
	for _, id := range view.SectionOrder {
		if domain.IsCustomSectionID(id) {
			cs, ok := view.FindCustomSection(id)
			if !ok || !cs.IsVisible {
				continue
			}
			out = append(out, RenderedSection{ID: id, Kind: KindCustom, Title: cs.Title, Data: cs})
			continue
		}

		kind, ok := domain.ParseSectionKind(id)
		if !ok || !view.SectionVisibility.Visible(kind) {
			continue
		}
		build, ok := reg[kind]
		if !ok {
			continue
		}
		title, data := build(view)
		if data == nil {
			continue
		}
		out = append(out, RenderedSection{ID: id, Kind: string(kind), Title: title, Data: data})
	}
	return out
}

// GitHubUsername extracts the account name from a GitHub profile URL or a
// bare username.
func GitHubUsername(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if !strings.Contains(raw, "/") {
		return strings.TrimPrefix(raw, "@")
	}
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	if host := u.Hostname(); host != "github.com" && host != "www.github.com" {
		return ""
	}
	user, _, _ := strings.Cut(strings.Trim(u.Path, "/"), "/")
	return user
}
