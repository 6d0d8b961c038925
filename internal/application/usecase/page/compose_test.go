package page

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/khoahotran/portfolio/internal/domain/portfolio"
)

func TestDefaultRegistry_CoversEveryBuiltin(t *testing.T) {
	reg := DefaultRegistry()
	for _, k := range domain.BuiltinSections {
		assert.Contains(t, reg, k, "no builder for %s", k)
	}
	assert.Len(t, reg, len(domain.BuiltinSections))
}

func TestCompose_DefaultOrder(t *testing.T) {
	view := domain.DefaultProfile().View()

	sections := Compose(view, DefaultRegistry())
	ids := make([]string, len(sections))
	for i, s := range sections {
		ids[i] = s.ID
	}
	assert.Equal(t, view.SectionOrder, ids)
	assert.Equal(t, "My Projects", sections[2].Title)
}

func TestCompose_SkipsHiddenMissingAndUnregistered(t *testing.T) {
	view := domain.DefaultProfile().View()
	view.SectionVisibility.Blog = false
	view.CustomSections = []domain.CustomSection{
		{ID: "custom_shown", Title: "Shown", IsVisible: true, Items: []domain.CustomSectionItem{}},
		{ID: "custom_hidden", Title: "Hidden", IsVisible: false, Items: []domain.CustomSectionItem{}},
	}
	view.SectionOrder = []string{"custom_hidden", "blog", "custom_gone", "custom_shown", "about", "contact"}

	reg := DefaultRegistry()
	delete(reg, domain.SectionContact)

	sections := Compose(view, reg)
	require.Len(t, sections, 2)
	assert.Equal(t, "custom_shown", sections[0].ID)
	assert.Equal(t, KindCustom, sections[0].Kind)
	assert.Equal(t, "Shown", sections[0].Title)
	assert.Equal(t, "about", sections[1].ID)
}

func TestCompose_GitHubWithoutAccountIsDropped(t *testing.T) {
	view := domain.DefaultProfile().View()
	view.SectionOrder = []string{"githubStats"}

	sections := Compose(view, DefaultRegistry())
	require.Len(t, sections, 1)
	assert.Equal(t, GitHubData{Username: "example", ProfileURL: "https://github.com/example"}, sections[0].Data)

	view.Profile.Social.GitHub = ""
	assert.Empty(t, Compose(view, DefaultRegistry()))
}

func TestGitHubUsername(t *testing.T) {
	cases := map[string]string{
		"https://github.com/octocat":      "octocat",
		"https://github.com/octocat/repo": "octocat",
		"github.com/octocat/":             "octocat",
		"@octocat":                        "octocat",
		"octocat":                         "octocat",
		"https://gitlab.com/octocat":      "",
		"":                                "",
	}
	for in, want := range cases {
		assert.Equal(t, want, GitHubUsername(in), in)
	}
}
