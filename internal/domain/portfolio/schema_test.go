package portfolio

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectSchemaVersion(t *testing.T) {
	cases := map[string]struct {
		raw     string
		want    int
		wantErr error
	}{
		"legacy":        {raw: `{"profile":{"name":"A"}}`, want: 0},
		"unversioned":   {raw: `{"profiles":[{"id":"x"}],"activeProfileId":"x"}`, want: 1},
		"current":       {raw: `{"schemaVersion":2,"profiles":[]}`, want: 2},
		"future":        {raw: `{"schemaVersion":9,"profiles":[{}]}`, wantErr: ErrUnsupportedSchema},
		"unknown shape": {raw: `{"foo":1}`, wantErr: ErrUnrecognizedDocument},
		"null profiles": {raw: `{"profiles":null}`, wantErr: ErrUnrecognizedDocument},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := DetectSchemaVersion([]byte(tc.raw))
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDecodeDocument_LegacyProfile(t *testing.T) {
	raw := `{
		"profile": {"name": "Legacy Dev", "email": "legacy@example.com"},
		"projects": [{"id": 7, "title": "Old", "tags": ["go"]}]
	}`

	doc, from, err := DecodeDocument([]byte(raw))
	require.NoError(t, err)
	assert.Equal(t, 0, from)
	assert.Equal(t, CurrentSchemaVersion, doc.SchemaVersion)
	assert.Equal(t, DefaultProfileID, doc.ActiveProfileID)
	require.Len(t, doc.Profiles, 1)

	p := doc.Profiles[0]
	assert.Equal(t, DefaultProfileID, p.ID)
	assert.Equal(t, DefaultDomainName, p.DomainName)
	assert.True(t, p.IsActive)
	assert.Equal(t, "Legacy Dev", p.Profile.Name)
	assert.Equal(t, "legacy@example.com", p.Profile.Email)
	// fields the legacy document never had fall back to defaults
	assert.Equal(t, DefaultProfileData().HireMeText, p.Profile.HireMeText)

	require.Len(t, p.Projects, 1)
	assert.Equal(t, int64(7), p.Projects[0].ID)
	assert.Empty(t, p.Experience)
	assert.NotNil(t, p.Experience)
	assert.Equal(t, DefaultCertifications(), p.Certifications)
	assert.Equal(t, DefaultStats(), p.CustomStats)
	assert.Equal(t, AllSectionsVisible(), p.SectionVisibility)
	assert.Equal(t, DefaultSectionOrder(), p.SectionOrder)
	assert.Equal(t, DefaultTheme(), p.Theme)
	assert.Equal(t, DefaultSEO(), p.SEO)
}

func TestDecodeDocument_FillsUnversionedProfiles(t *testing.T) {
	raw := `{
		"profiles": [
			{"id": "profile_a", "domainName": "Designer", "profile": {"name": "A"}},
			{"profile": {"name": "B"}, "customSections": null}
		],
		"activeProfileId": "profile_a"
	}`

	doc, from, err := DecodeDocument([]byte(raw))
	require.NoError(t, err)
	assert.Equal(t, 1, from)
	require.Len(t, doc.Profiles, 2)

	assert.True(t, doc.Profiles[0].IsActive)
	assert.Equal(t, "Designer", doc.Profiles[0].DomainName)
	assert.Equal(t, DefaultTheme(), doc.Profiles[0].Theme)

	second := doc.Profiles[1]
	assert.Equal(t, "profile_2", second.ID)
	assert.Equal(t, DefaultDomainName, second.DomainName)
	assert.False(t, second.IsActive)
	assert.NotNil(t, second.CustomSections)
	assert.Empty(t, second.CustomSections)
}

func TestDecodeDocument_MissingActiveIDPicksFirst(t *testing.T) {
	doc, _, err := DecodeDocument([]byte(`{"profiles":[{"id":"one"},{"id":"two"}]}`))
	require.NoError(t, err)
	assert.Equal(t, "one", doc.ActiveProfileID)
	assert.True(t, doc.Profiles[0].IsActive)
}

func TestDecodeDocument_IsActiveMirrorsActiveID(t *testing.T) {
	raw := `{"schemaVersion":2,"activeProfileId":"b","profiles":[
		{"id":"a","isActive":true},{"id":"b","isActive":false}]}`

	doc, _, err := DecodeDocument([]byte(raw))
	require.NoError(t, err)
	assert.False(t, doc.Profiles[0].IsActive)
	assert.True(t, doc.Profiles[1].IsActive)
}

func TestDecodeDocument_Rejects(t *testing.T) {
	cases := map[string]struct {
		raw     string
		wantErr error
	}{
		"empty profiles": {raw: `{"profiles":[],"activeProfileId":"x"}`, wantErr: ErrNoProfiles},
		"unknown shape":  {raw: `{"hello":"world"}`, wantErr: ErrUnrecognizedDocument},
		"future version": {raw: `{"schemaVersion":99,"profiles":[{"id":"a"}]}`, wantErr: ErrUnsupportedSchema},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, err := DecodeDocument([]byte(tc.raw))
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}

	_, _, err := DecodeDocument([]byte(`{not json`))
	assert.Error(t, err)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	original := DefaultDocument()
	original.Profiles[0].CustomSections = []CustomSection{{
		ID:     "custom_1",
		Title:  "Services",
		Layout: LayoutCards,
		Items: []CustomSectionItem{
			{ID: 1, Body: CardItem{Title: "Consulting", Description: "Architecture reviews"}},
			{ID: 2, Body: TextItem{Content: "Plain text"}},
		},
		IsVisible: true,
	}}

	raw, err := ExportDocument(original)
	require.NoError(t, err)

	decoded, from, err := DecodeDocument(raw)
	require.NoError(t, err)
	assert.Equal(t, CurrentSchemaVersion, from)
	assert.Equal(t, Normalize(original), decoded)
}

func TestEncodeDocument_StampsVersion(t *testing.T) {
	raw, err := EncodeDocument(DefaultDocument())
	require.NoError(t, err)

	var head struct {
		SchemaVersion int `json:"schemaVersion"`
	}
	require.NoError(t, json.Unmarshal(raw, &head))
	assert.Equal(t, CurrentSchemaVersion, head.SchemaVersion)
}
