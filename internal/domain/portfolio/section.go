package portfolio

import (
	"slices"
	"strings"
)

// SectionKind is the closed set of built-in page sections.
type SectionKind string

const (
	SectionAbout        SectionKind = "about"
	SectionSkills       SectionKind = "skills"
	SectionProjects     SectionKind = "projects"
	SectionExperience   SectionKind = "experience"
	SectionEducation    SectionKind = "education"
	SectionTestimonials SectionKind = "testimonials"
	SectionBlog         SectionKind = "blog"
	SectionContact      SectionKind = "contact"
	SectionStats        SectionKind = "stats"
	SectionGitHubStats  SectionKind = "githubStats"
)

// CustomSectionPrefix marks section order entries that reference customSections.
const CustomSectionPrefix = "custom_"

// BuiltinSections lists every built-in kind in the default page order.
var BuiltinSections = []SectionKind{
	SectionAbout,
	SectionSkills,
	SectionProjects,
	SectionExperience,
	SectionEducation,
	SectionStats,
	SectionGitHubStats,
	SectionTestimonials,
	SectionBlog,
	SectionContact,
}

func ParseSectionKind(s string) (SectionKind, bool) {
	k := SectionKind(s)
	return k, slices.Contains(BuiltinSections, k)
}

func IsCustomSectionID(id string) bool {
	return strings.HasPrefix(id, CustomSectionPrefix)
}

func DefaultSectionOrder() []string {
	order := make([]string, len(BuiltinSections))
	for i, k := range BuiltinSections {
		order[i] = string(k)
	}
	return order
}

type SectionVisibility struct {
	About        bool `json:"about"`
	Skills       bool `json:"skills"`
	Projects     bool `json:"projects"`
	Experience   bool `json:"experience"`
	Education    bool `json:"education"`
	Testimonials bool `json:"testimonials"`
	Blog         bool `json:"blog"`
	Contact      bool `json:"contact"`
	Stats        bool `json:"stats"`
	GitHubStats  bool `json:"githubStats"`
}

func AllSectionsVisible() SectionVisibility {
	var v SectionVisibility
	for _, k := range BuiltinSections {
		*v.field(k) = true
	}
	return v
}

func (v SectionVisibility) Visible(k SectionKind) bool {
	f := v.field(k)
	return f != nil && *f
}

// Toggle flips one flag and reports whether k is a known kind.
func (v *SectionVisibility) Toggle(k SectionKind) bool {
	f := v.field(k)
	if f == nil {
		return false
	}
	*f = !*f
	return true
}

func (v *SectionVisibility) field(k SectionKind) *bool {
	switch k {
	case SectionAbout:
		return &v.About
	case SectionSkills:
		return &v.Skills
	case SectionProjects:
		return &v.Projects
	case SectionExperience:
		return &v.Experience
	case SectionEducation:
		return &v.Education
	case SectionTestimonials:
		return &v.Testimonials
	case SectionBlog:
		return &v.Blog
	case SectionContact:
		return &v.Contact
	case SectionStats:
		return &v.Stats
	case SectionGitHubStats:
		return &v.GitHubStats
	}
	return nil
}

// MoveSectionUp swaps id with its predecessor. Unknown ids and the first
// entry leave the order unchanged. The input is never modified.
func MoveSectionUp(order []string, id string) []string {
	out := cloneStrings(order)
	if i := slices.Index(out, id); i > 0 {
		out[i-1], out[i] = out[i], out[i-1]
	}
	return out
}

// MoveSectionDown swaps id with its successor. Unknown ids and the last
// entry leave the order unchanged.
func MoveSectionDown(order []string, id string) []string {
	out := cloneStrings(order)
	if i := slices.Index(out, id); i >= 0 && i < len(out)-1 {
		out[i], out[i+1] = out[i+1], out[i]
	}
	return out
}

func RemoveSectionID(order []string, id string) []string {
	out := make([]string, 0, len(order))
	for _, s := range order {
		if s != id {
			out = append(out, s)
		}
	}
	return out
}
