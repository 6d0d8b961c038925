package portfolio

import "slices"

// Identifiable is implemented by every collection entity keyed by a numeric id.
type Identifiable interface {
	Identity() int64
}

type Project struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Tags        []string `json:"tags"`
	LiveURL     string   `json:"liveUrl"`
	GithubURL   string   `json:"githubUrl"`
	Featured    bool     `json:"featured"`
}

func (p Project) Identity() int64 { return p.ID }

type Experience struct {
	ID           int64    `json:"id"`
	Role         string   `json:"role"`
	Company      string   `json:"company"`
	Location     string   `json:"location"`
	Duration     string   `json:"duration"`
	Description  []string `json:"description"`
	Technologies []string `json:"technologies"`
}

func (e Experience) Identity() int64 { return e.ID }

type Education struct {
	ID             int64  `json:"id"`
	Degree         string `json:"degree"`
	Institution    string `json:"institution"`
	Location       string `json:"location"`
	Duration       string `json:"duration"`
	Description    string `json:"description"`
	GPA            string `json:"gpa,omitempty"`
	CertificateURL string `json:"certificateUrl,omitempty"`
}

func (e Education) Identity() int64 { return e.ID }

type Testimonial struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Role    string `json:"role"`
	Image   string `json:"image"`
	Content string `json:"content"`
	Rating  int    `json:"rating"`
}

func (t Testimonial) Identity() int64 { return t.ID }

type BlogPost struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Excerpt  string `json:"excerpt"`
	Date     string `json:"date"`
	ReadTime string `json:"readTime"`
	Category string `json:"category"`
	Image    string `json:"image"`
	Slug     string `json:"slug"`
	Link     string `json:"link,omitempty"`
}

func (b BlogPost) Identity() int64 { return b.ID }

type Certification struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Date   string `json:"date"`
	URL    string `json:"url"`
}

func (c Certification) Identity() int64 { return c.ID }

type StatItem struct {
	ID     int64   `json:"id"`
	Icon   string  `json:"icon"`
	Value  float64 `json:"value"`
	Suffix string  `json:"suffix"`
	Label  string  `json:"label"`
	// Color is a gradient class pair, e.g. "from-purple-500 to-indigo-500".
	Color string `json:"color"`
}

func (s StatItem) Identity() int64 { return s.ID }

type SkillItem struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
}

// Skill is a category keyed by its name within one profile.
type Skill struct {
	Category string      `json:"category"`
	Items    []SkillItem `json:"items"`
}

// NextSequentialID returns max(existing ids, 0) + 1.
func NextSequentialID[T Identifiable](items []T) int64 {
	var maxID int64
	for _, it := range items {
		if id := it.Identity(); id > maxID {
			maxID = id
		}
	}
	return maxID + 1
}

// RemoveByID drops every element with the given id. The input is not modified.
func RemoveByID[T Identifiable](items []T, id int64) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if it.Identity() != id {
			out = append(out, it)
		}
	}
	return out
}

// ReplaceByID applies fn to every element with the given id and reports
// whether anything matched. The input is not modified.
func ReplaceByID[T Identifiable](items []T, id int64, fn func(T) (T, error)) ([]T, bool, error) {
	out := slices.Clone(items)
	if out == nil {
		out = []T{}
	}
	matched := false
	for i, it := range out {
		if it.Identity() != id {
			continue
		}
		updated, err := fn(it)
		if err != nil {
			return nil, false, err
		}
		out[i] = updated
		matched = true
	}
	return out, matched, nil
}

func cloneProjects(in []Project) []Project {
	out := make([]Project, len(in))
	for i, p := range in {
		p.Tags = cloneStrings(p.Tags)
		out[i] = p
	}
	return out
}

func cloneExperience(in []Experience) []Experience {
	out := make([]Experience, len(in))
	for i, e := range in {
		e.Description = cloneStrings(e.Description)
		e.Technologies = cloneStrings(e.Technologies)
		out[i] = e
	}
	return out
}

func cloneSkills(in []Skill) []Skill {
	out := make([]Skill, len(in))
	for i, s := range in {
		items := slices.Clone(s.Items)
		if items == nil {
			items = []SkillItem{}
		}
		out[i] = Skill{Category: s.Category, Items: items}
	}
	return out
}

// cloneFlat copies slices whose element type holds no reference fields.
func cloneFlat[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	return slices.Clone(in)
}
