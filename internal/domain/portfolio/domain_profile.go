package portfolio

// DomainProfile is one complete, independently editable variant of the portfolio.
type DomainProfile struct {
	ID         string `json:"id"`
	DomainName string `json:"domainName"`
	// IsActive mirrors AllProfilesData.ActiveProfileID and is recomputed on every write.
	IsActive bool `json:"isActive"`

	Profile           ProfileData       `json:"profile"`
	Projects          []Project         `json:"projects"`
	Experience        []Experience      `json:"experience"`
	Education         []Education       `json:"education"`
	Skills            []Skill           `json:"skills"`
	Testimonials      []Testimonial     `json:"testimonials"`
	BlogPosts         []BlogPost        `json:"blogPosts"`
	Certifications    []Certification   `json:"certifications"`
	CustomStats       []StatItem        `json:"customStats"`
	CustomSections    []CustomSection   `json:"customSections"`
	SectionVisibility SectionVisibility `json:"sectionVisibility"`
	SectionOrder      []string          `json:"sectionOrder"`
	SEO               SEOSettings       `json:"seo"`
	CustomLinks       []CustomLink      `json:"customLinks"`
	Theme             ThemeSettings     `json:"theme"`
}

// PortfolioData is the flat, read-only projection of the active profile
// consumed by the public page.
type PortfolioData struct {
	Profile           ProfileData       `json:"profile"`
	Projects          []Project         `json:"projects"`
	Experience        []Experience      `json:"experience"`
	Education         []Education       `json:"education"`
	Skills            []Skill           `json:"skills"`
	Testimonials      []Testimonial     `json:"testimonials"`
	BlogPosts         []BlogPost        `json:"blogPosts"`
	Certifications    []Certification   `json:"certifications"`
	CustomStats       []StatItem        `json:"customStats"`
	CustomSections    []CustomSection   `json:"customSections"`
	SectionVisibility SectionVisibility `json:"sectionVisibility"`
	SectionOrder      []string          `json:"sectionOrder"`
	SEO               SEOSettings       `json:"seo"`
	CustomLinks       []CustomLink      `json:"customLinks"`
	Theme             ThemeSettings     `json:"theme"`
}

// AllProfilesData is the persisted document.
type AllProfilesData struct {
	SchemaVersion   int             `json:"schemaVersion"`
	Profiles        []DomainProfile `json:"profiles"`
	ActiveProfileID string          `json:"activeProfileId"`
}

// Clone returns a deep copy. Every slice in the copy is non-nil.
func (p DomainProfile) Clone() DomainProfile {
	p.Profile = p.Profile.clone()
	p.Projects = cloneProjects(p.Projects)
	p.Experience = cloneExperience(p.Experience)
	p.Education = cloneFlat(p.Education)
	p.Skills = cloneSkills(p.Skills)
	p.Testimonials = cloneFlat(p.Testimonials)
	p.BlogPosts = cloneFlat(p.BlogPosts)
	p.Certifications = cloneFlat(p.Certifications)
	p.CustomStats = cloneFlat(p.CustomStats)
	p.CustomSections = cloneCustomSections(p.CustomSections)
	p.SectionOrder = cloneStrings(p.SectionOrder)
	p.SEO = p.SEO.clone()
	p.CustomLinks = cloneFlat(p.CustomLinks)
	return p
}

// View projects the profile into its flat public form.
func (p DomainProfile) View() PortfolioData {
	c := p.Clone()
	return PortfolioData{
		Profile:           c.Profile,
		Projects:          c.Projects,
		Experience:        c.Experience,
		Education:         c.Education,
		Skills:            c.Skills,
		Testimonials:      c.Testimonials,
		BlogPosts:         c.BlogPosts,
		Certifications:    c.Certifications,
		CustomStats:       c.CustomStats,
		CustomSections:    c.CustomSections,
		SectionVisibility: c.SectionVisibility,
		SectionOrder:      c.SectionOrder,
		SEO:               c.SEO,
		CustomLinks:       c.CustomLinks,
		Theme:             c.Theme,
	}
}

// FindCustomSection returns the custom section with the given id.
func (d PortfolioData) FindCustomSection(id string) (CustomSection, bool) {
	for _, s := range d.CustomSections {
		if s.ID == id {
			return s, true
		}
	}
	return CustomSection{}, false
}

func (a AllProfilesData) Clone() AllProfilesData {
	out := AllProfilesData{
		SchemaVersion:   a.SchemaVersion,
		ActiveProfileID: a.ActiveProfileID,
		Profiles:        make([]DomainProfile, len(a.Profiles)),
	}
	for i, p := range a.Profiles {
		out.Profiles[i] = p.Clone()
	}
	return out
}

func (a AllProfilesData) Find(id string) (DomainProfile, bool) {
	for _, p := range a.Profiles {
		if p.ID == id {
			return p, true
		}
	}
	return DomainProfile{}, false
}

// SyncActiveFlags recomputes every profile's IsActive mirror in place.
func (a *AllProfilesData) SyncActiveFlags() {
	for i := range a.Profiles {
		a.Profiles[i].IsActive = a.Profiles[i].ID == a.ActiveProfileID
	}
}
