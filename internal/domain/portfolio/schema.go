package portfolio

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// CurrentSchemaVersion is stamped on every document this service writes.
//
//	0: legacy single profile {"profile": {...}, "projects": [...], ...}
//	1: {"profiles": [...], "activeProfileId": "..."} without a version stamp
//	2: version 1 with every profile field present and "schemaVersion": 2
const CurrentSchemaVersion = 2

var (
	ErrUnrecognizedDocument = errors.New("document has neither profiles nor profile")
	ErrUnsupportedSchema    = errors.New("unsupported schema version")
	ErrNoProfiles           = errors.New("document contains no profiles")
)

type document map[string]json.RawMessage

type migration func(document) (document, error)

// migrations[v] upgrades a document from version v to v+1.
var migrations = map[int]migration{
	0: wrapLegacyProfile,
	1: fillProfileFields,
}

type fieldDefault struct {
	key      string
	fallback func() any
}

func emptyList() any { return []struct{}{} }

// profileFieldDefaults lists the fields filled when absent or null.
// Content collections default to empty, settings to the built-in values.
var profileFieldDefaults = []fieldDefault{
	{"projects", emptyList},
	{"experience", emptyList},
	{"education", emptyList},
	{"skills", emptyList},
	{"testimonials", emptyList},
	{"blogPosts", emptyList},
	{"certifications", func() any { return DefaultCertifications() }},
	{"customStats", func() any { return DefaultStats() }},
	{"customSections", emptyList},
	{"sectionVisibility", func() any { return AllSectionsVisible() }},
	{"sectionOrder", func() any { return DefaultSectionOrder() }},
	{"seo", func() any { return DefaultSEO() }},
	{"customLinks", emptyList},
	{"theme", func() any { return DefaultTheme() }},
}

// DetectSchemaVersion sniffs the version of a raw document.
func DetectSchemaVersion(raw []byte) (int, error) {
	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return 0, fmt.Errorf("parse document: %w", err)
	}
	return detect(doc)
}

func detect(doc document) (int, error) {
	switch {
	case present(doc["profiles"]):
		if !present(doc["schemaVersion"]) {
			return 1, nil
		}
		var v int
		if err := json.Unmarshal(doc["schemaVersion"], &v); err != nil {
			return 0, fmt.Errorf("%w: %s", ErrUnsupportedSchema, doc["schemaVersion"])
		}
		if v < 1 || v > CurrentSchemaVersion {
			return 0, fmt.Errorf("%w: %d", ErrUnsupportedSchema, v)
		}
		return v, nil
	case present(doc["profile"]):
		return 0, nil
	}
	return 0, ErrUnrecognizedDocument
}

// DecodeDocument parses a document of any known version, runs the migration
// chain up to CurrentSchemaVersion and returns it together with the version
// it was stored in.
func DecodeDocument(raw []byte) (AllProfilesData, int, error) {
	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return AllProfilesData{}, 0, fmt.Errorf("parse document: %w", err)
	}
	from, err := detect(doc)
	if err != nil {
		return AllProfilesData{}, 0, err
	}

	for v := from; v < CurrentSchemaVersion; v++ {
		doc, err = migrations[v](doc)
		if err != nil {
			return AllProfilesData{}, from, fmt.Errorf("migrate schema v%d: %w", v, err)
		}
	}
	doc["schemaVersion"] = json.RawMessage(strconv.Itoa(CurrentSchemaVersion))

	stamped, err := json.Marshal(doc)
	if err != nil {
		return AllProfilesData{}, from, fmt.Errorf("encode migrated document: %w", err)
	}
	var out AllProfilesData
	if err := json.Unmarshal(stamped, &out); err != nil {
		return AllProfilesData{}, from, fmt.Errorf("decode document: %w", err)
	}
	if len(out.Profiles) == 0 {
		return AllProfilesData{}, from, ErrNoProfiles
	}
	return Normalize(out), from, nil
}

// Normalize deep-copies the document, replaces nil slices with empty ones,
// stamps the current version and recomputes the IsActive mirrors.
func Normalize(a AllProfilesData) AllProfilesData {
	out := a.Clone()
	out.SchemaVersion = CurrentSchemaVersion
	out.SyncActiveFlags()
	return out
}

// EncodeDocument is the compact persisted form.
func EncodeDocument(a AllProfilesData) ([]byte, error) {
	return json.Marshal(a)
}

// ExportDocument is the indented form offered for download.
func ExportDocument(a AllProfilesData) ([]byte, error) {
	return json.MarshalIndent(a, "", "  ")
}

func wrapLegacyProfile(legacy document) (document, error) {
	profileData, err := mergeProfileData(legacy["profile"])
	if err != nil {
		return nil, err
	}
	p := document{
		"id":         mustRaw(DefaultProfileID),
		"domainName": mustRaw(DefaultDomainName),
		"isActive":   mustRaw(true),
		"profile":    profileData,
	}
	for _, f := range profileFieldDefaults {
		if v, ok := legacy[f.key]; ok && present(v) {
			p[f.key] = v
		}
	}
	fillMissing(p)

	profiles, err := json.Marshal([]document{p})
	if err != nil {
		return nil, err
	}
	return document{
		"profiles":        profiles,
		"activeProfileId": mustRaw(DefaultProfileID),
	}, nil
}

func fillProfileFields(doc document) (document, error) {
	var profiles []document
	if err := json.Unmarshal(doc["profiles"], &profiles); err != nil {
		return nil, fmt.Errorf("profiles: %w", err)
	}
	for i, p := range profiles {
		if p == nil {
			p = document{}
		}
		if !present(p["id"]) {
			p["id"] = mustRaw(fmt.Sprintf("profile_%d", i+1))
		}
		if !present(p["domainName"]) {
			p["domainName"] = mustRaw(DefaultDomainName)
		}
		profileData, err := mergeProfileData(p["profile"])
		if err != nil {
			return nil, fmt.Errorf("profiles[%d]: %w", i, err)
		}
		p["profile"] = profileData
		fillMissing(p)
		profiles[i] = p
	}

	encoded, err := json.Marshal(profiles)
	if err != nil {
		return nil, err
	}
	doc["profiles"] = encoded

	if !present(doc["activeProfileId"]) && len(profiles) > 0 {
		doc["activeProfileId"] = profiles[0]["id"]
	}
	return doc, nil
}

// mergeProfileData overlays stored profile fields on the default ProfileData
// so fields added in later releases pick up their default UI strings.
func mergeProfileData(raw json.RawMessage) (json.RawMessage, error) {
	fields := document{}
	if err := json.Unmarshal(mustRaw(DefaultProfileData()), &fields); err != nil {
		return nil, err
	}
	if present(raw) {
		var stored document
		if err := json.Unmarshal(raw, &stored); err != nil {
			return nil, fmt.Errorf("profile: %w", err)
		}
		for k, v := range stored {
			fields[k] = v
		}
	}
	return json.Marshal(fields)
}

func fillMissing(p document) {
	for _, f := range profileFieldDefaults {
		if !present(p[f.key]) {
			p[f.key] = mustRaw(f.fallback())
		}
	}
}

func present(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null"))
}

// mustRaw encodes values built in this package; they always marshal.
func mustRaw(v any) json.RawMessage {
	b, err := json.Marshal(v)
	if err != nil {
		panic(fmt.Sprintf("portfolio: encode built-in default: %v", err))
	}
	return b
}
