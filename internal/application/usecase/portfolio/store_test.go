package portfolio

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/khoahotran/portfolio/adapters/persistence"
	"github.com/khoahotran/portfolio/internal/application/service"
	domain "github.com/khoahotran/portfolio/internal/domain/portfolio"
	"github.com/khoahotran/portfolio/pkg/apperror"
	"github.com/khoahotran/portfolio/pkg/logger"
)

var fixedNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

type flakyStorage struct {
	*persistence.MemoryStorage
	failSet atomic.Bool
}

func (f *flakyStorage) Set(ctx context.Context, slot, value string) error {
	if f.failSet.Load() {
		return errors.New("disk full")
	}
	return f.MemoryStorage.Set(ctx, slot, value)
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []service.ChangeEvent
}

func (r *recordingPublisher) Publish(_ context.Context, evt service.ChangeEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, evt)
	return nil
}

func (r *recordingPublisher) Close() error { return nil }

func (r *recordingPublisher) ops() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.events))
	for i, e := range r.events {
		out[i] = e.Op
	}
	return out
}

type StoreTestSuite struct {
	suite.Suite
	ctx       context.Context
	storage   *flakyStorage
	publisher *recordingPublisher
	store     *Store
}

func (s *StoreTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.storage = &flakyStorage{MemoryStorage: persistence.NewMemoryStorage()}
	s.publisher = &recordingPublisher{}
	s.store = s.newStore()
	s.Require().NoError(s.store.Load(s.ctx))
}

func (s *StoreTestSuite) newStore() *Store {
	return NewStore(s.storage, s.publisher, logger.NewNopLogger(), WithClock(func() time.Time { return fixedNow }))
}

func TestStore(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

func (s *StoreTestSuite) persisted() domain.AllProfilesData {
	raw, err := s.storage.Get(s.ctx, domain.SlotAllProfiles)
	s.Require().NoError(err)
	doc, _, err := domain.DecodeDocument([]byte(raw))
	s.Require().NoError(err)
	return doc
}

func (s *StoreTestSuite) Test_Load_Empty_PersistsDefaults() {
	s.Equal(domain.Normalize(domain.DefaultDocument()), s.store.State())
	s.Equal(s.store.State(), s.persisted())
}

func (s *StoreTestSuite) Test_Load_Legacy_Migrates() {
	s.storage = &flakyStorage{MemoryStorage: persistence.NewMemoryStorage()}
	s.Require().NoError(s.storage.Set(s.ctx, domain.SlotLegacy, `{"profile":{"name":"Old Me"},"projects":[]}`))

	store := s.newStore()
	s.Require().NoError(store.Load(s.ctx))

	state := store.State()
	s.Require().Len(state.Profiles, 1)
	s.Equal(domain.DefaultProfileID, state.ActiveProfileID)
	s.Equal("Old Me", state.Profiles[0].Profile.Name)
	s.Equal(state, s.persisted())
}

func (s *StoreTestSuite) Test_Load_Corrupt_Quarantines() {
	s.storage = &flakyStorage{MemoryStorage: persistence.NewMemoryStorage()}
	s.Require().NoError(s.storage.Set(s.ctx, domain.SlotAllProfiles, `{"profiles": [`))

	store := s.newStore()
	s.Require().NoError(store.Load(s.ctx))

	quarantined, err := s.storage.Get(s.ctx, domain.SlotQuarantine)
	s.Require().NoError(err)
	s.Equal(`{"profiles": [`, quarantined)
	s.Equal(domain.Normalize(domain.DefaultDocument()), store.State())
}

func (s *StoreTestSuite) Test_Load_StorageError() {
	s.storage.failSet.Store(true)
	store := s.newStore()
	s.Error(store.Load(s.ctx))
}

func (s *StoreTestSuite) Test_NotLoaded() {
	store := NewStore(persistence.NewMemoryStorage(), nil, logger.NewNopLogger())
	_, err := store.AddProject(s.ctx, domain.Project{Title: "X"})
	s.ErrorIs(err, ErrNotLoaded)
}

func (s *StoreTestSuite) Test_UpdateActive_LeavesOtherProfilesUntouched() {
	second, err := s.store.AddNewProfile(s.ctx, "Designer")
	s.Require().NoError(err)
	before := s.store.State()
	untouched, _ := before.Find(domain.DefaultProfileID)

	s.Require().NoError(s.store.SetActiveProfile(s.ctx, second.ID))
	_, err = s.store.AddProject(s.ctx, domain.Project{Title: "Brand kit"})
	s.Require().NoError(err)
	s.Require().NoError(s.store.ToggleSection(s.ctx, domain.SectionBlog))
	s.Require().NoError(s.store.UpdateTheme(s.ctx, []byte(`{"colorPreset":"ocean"}`)))

	after := s.store.State()
	s.Equal(second.ID, after.ActiveProfileID)
	got, _ := after.Find(domain.DefaultProfileID)
	untouched.IsActive = false
	s.Equal(untouched, got)

	edited, _ := after.Find(second.ID)
	s.Len(edited.Projects, 3)
	s.Equal(domain.PresetOcean, edited.Theme.ColorPreset)
}

func (s *StoreTestSuite) Test_Mutations_DoNotChangeActiveProfile() {
	second, err := s.store.AddNewProfile(s.ctx, "Data")
	s.Require().NoError(err)
	_, err = s.store.DuplicateProfile(s.ctx, domain.DefaultProfileID, "Copy")
	s.Require().NoError(err)
	s.Require().NoError(s.store.UpdateProfileDomainName(s.ctx, second.ID, "Data Science"))

	s.Equal(domain.DefaultProfileID, s.store.ActiveProfileID())
}

func (s *StoreTestSuite) Test_SetActiveProfile_UnknownID() {
	err := s.store.SetActiveProfile(s.ctx, "ghost")
	s.True(errors.Is(err, apperror.ErrNotFound))
	s.Equal(domain.DefaultProfileID, s.store.ActiveProfileID())
}

func (s *StoreTestSuite) Test_IsActiveMirrorsPointer() {
	second, err := s.store.AddNewProfile(s.ctx, "Designer")
	s.Require().NoError(err)
	s.Require().NoError(s.store.SetActiveProfile(s.ctx, second.ID))

	for _, p := range s.store.State().Profiles {
		s.Equal(p.ID == second.ID, p.IsActive, p.ID)
	}
	for _, p := range s.persisted().Profiles {
		s.Equal(p.ID == second.ID, p.IsActive, p.ID)
	}
}

func (s *StoreTestSuite) Test_DeleteProfile_LastIsRefused() {
	s.Require().NoError(s.store.DeleteProfile(s.ctx, domain.DefaultProfileID))
	s.Len(s.store.State().Profiles, 1)
}

func (s *StoreTestSuite) Test_DeleteProfile_ActiveReassignsToFirst() {
	a, err := s.store.AddNewProfile(s.ctx, "A")
	s.Require().NoError(err)
	b, err := s.store.AddNewProfile(s.ctx, "B")
	s.Require().NoError(err)
	s.Require().NoError(s.store.SetActiveProfile(s.ctx, a.ID))

	s.Require().NoError(s.store.DeleteProfile(s.ctx, domain.DefaultProfileID))
	s.Equal(a.ID, s.store.ActiveProfileID())

	s.Require().NoError(s.store.DeleteProfile(s.ctx, a.ID))
	state := s.store.State()
	s.Equal(b.ID, state.ActiveProfileID)
	s.Equal(state.Profiles[0].ID, state.ActiveProfileID)
}

func (s *StoreTestSuite) Test_DuplicateProfile_DeepCopy() {
	dup, err := s.store.DuplicateProfile(s.ctx, domain.DefaultProfileID, "Copy")
	s.Require().NoError(err)
	s.NotEqual(domain.DefaultProfileID, dup.ID)
	s.Contains(dup.ID, "profile_")

	s.Require().NoError(s.store.UpdateProject(s.ctx, 1, []byte(`{"tags":["changed"]}`)))

	state := s.store.State()
	src, _ := state.Find(domain.DefaultProfileID)
	copied, _ := state.Find(dup.ID)
	s.Equal([]string{"changed"}, src.Projects[0].Tags)
	s.Equal(domain.DefaultProfile().Projects[0].Tags, copied.Projects[0].Tags)
	s.False(copied.IsActive)
	s.Equal("Copy", copied.DomainName)

	missing, err := s.store.DuplicateProfile(s.ctx, "ghost", "x")
	s.Require().NoError(err)
	s.Empty(missing.ID)
}

func (s *StoreTestSuite) Test_AddProject_SequentialIDs() {
	p, err := s.store.AddProject(s.ctx, domain.Project{Title: "X"})
	s.Require().NoError(err)
	s.Equal(int64(3), p.ID)

	s.Require().NoError(s.store.DeleteProject(s.ctx, 1))

	p, err = s.store.AddProject(s.ctx, domain.Project{Title: "Y"})
	s.Require().NoError(err)
	s.Equal(int64(4), p.ID)

	ids := []int64{}
	for _, pr := range s.store.ActiveView().Projects {
		ids = append(ids, pr.ID)
	}
	s.Equal([]int64{2, 3, 4}, ids)
}

func (s *StoreTestSuite) Test_Add_EmptyCollectionStartsAtOne() {
	s.Require().NoError(s.store.UpdateExperience(s.ctx, nil))
	e, err := s.store.AddExperience(s.ctx, domain.Experience{Role: "Engineer"})
	s.Require().NoError(err)
	s.Equal(int64(1), e.ID)

	s.Require().NoError(s.store.UpdateEducation(s.ctx, []domain.Education{}))
	ed, err := s.store.AddEducation(s.ctx, domain.Education{Degree: "BSc"})
	s.Require().NoError(err)
	s.Equal(int64(1), ed.ID)

	t, err := s.store.AddTestimonial(s.ctx, domain.Testimonial{Name: "Sam"})
	s.Require().NoError(err)
	s.Equal(int64(2), t.ID)
}

func (s *StoreTestSuite) Test_ClockIDs_NeverCollide() {
	a, err := s.store.AddBlogPost(s.ctx, domain.BlogPost{Title: "a"})
	s.Require().NoError(err)
	b, err := s.store.AddBlogPost(s.ctx, domain.BlogPost{Title: "b"})
	s.Require().NoError(err)
	c, err := s.store.AddCertification(s.ctx, domain.Certification{Name: "c"})
	s.Require().NoError(err)
	st, err := s.store.AddStat(s.ctx, domain.StatItem{Label: "d"})
	s.Require().NoError(err)

	s.Equal(fixedNow.UnixMilli(), a.ID)
	s.Equal(a.ID+1, b.ID)
	s.Equal(b.ID+1, c.ID)
	s.Equal(c.ID+1, st.ID)
}

func (s *StoreTestSuite) Test_UpdateItem_Patch() {
	s.Require().NoError(s.store.UpdateProject(s.ctx, 2, []byte(`{"title":"Renamed","id":99}`)))
	p := s.store.ActiveView().Projects[1]
	s.Equal(int64(2), p.ID)
	s.Equal("Renamed", p.Title)
	s.True(p.Featured)

	err := s.store.UpdateProject(s.ctx, 2, []byte(`[1]`))
	s.True(errors.Is(err, apperror.ErrInvalidInput))

	before := s.store.State()
	s.Require().NoError(s.store.UpdateProject(s.ctx, 404, []byte(`{"title":"nobody"}`)))
	s.Equal(before, s.store.State())
}

func (s *StoreTestSuite) Test_Certifications_And_Stats_CRUD() {
	s.Require().NoError(s.store.UpdateCertification(s.ctx, 1, []byte(`{"issuer":"AWS"}`)))
	s.Require().NoError(s.store.DeleteCertification(s.ctx, 2))
	s.Require().NoError(s.store.UpdateStat(s.ctx, 1, []byte(`{"value":75}`)))
	s.Require().NoError(s.store.DeleteStat(s.ctx, 6))

	view := s.store.ActiveView()
	s.Require().Len(view.Certifications, 1)
	s.Equal("AWS", view.Certifications[0].Issuer)
	s.Len(view.CustomStats, 5)
	s.Equal(float64(75), view.CustomStats[0].Value)
}

func (s *StoreTestSuite) Test_Skills() {
	s.Require().NoError(s.store.AddSkillCategory(s.ctx, "Frontend"))
	s.Require().NoError(s.store.AddSkillCategory(s.ctx, "Frontend"))
	s.Require().NoError(s.store.AddSkillCategory(s.ctx, "DevOps"))

	count := 0
	for _, sk := range s.store.ActiveView().Skills {
		if sk.Category == "Frontend" {
			count++
		}
	}
	s.Equal(1, count)

	s.Require().NoError(s.store.AddSkillItem(s.ctx, "DevOps", "Docker", 70))
	s.Require().NoError(s.store.AddSkillItem(s.ctx, "DevOps", "Docker", 60))
	s.Require().NoError(s.store.AddSkillItem(s.ctx, "DevOps", "K8s", 50))
	s.Require().NoError(s.store.UpdateSkillItem(s.ctx, "DevOps", "Docker", 90))

	devops := s.store.ActiveView().Skills[2]
	s.Equal([]domain.SkillItem{{Name: "Docker", Level: 90}, {Name: "Docker", Level: 90}, {Name: "K8s", Level: 50}}, devops.Items)

	s.Require().NoError(s.store.DeleteSkillItem(s.ctx, "DevOps", "Docker"))
	s.Equal([]domain.SkillItem{{Name: "K8s", Level: 50}}, s.store.ActiveView().Skills[2].Items)

	s.Require().NoError(s.store.DeleteSkillCategory(s.ctx, "DevOps"))
	s.Len(s.store.ActiveView().Skills, 2)
}

func (s *StoreTestSuite) Test_ToggleSection_Twice() {
	original := s.store.ActiveView().SectionVisibility
	s.Require().NoError(s.store.ToggleSection(s.ctx, domain.SectionBlog))
	s.False(s.store.ActiveView().SectionVisibility.Blog)
	s.Require().NoError(s.store.ToggleSection(s.ctx, domain.SectionBlog))
	s.Equal(original, s.store.ActiveView().SectionVisibility)
}

func (s *StoreTestSuite) Test_MoveSection_Boundaries() {
	order := s.store.ActiveView().SectionOrder
	s.Require().NoError(s.store.MoveSectionUp(s.ctx, order[0]))
	s.Require().NoError(s.store.MoveSectionDown(s.ctx, order[len(order)-1]))
	s.Equal(order, s.store.ActiveView().SectionOrder)

	s.Require().NoError(s.store.MoveSectionDown(s.ctx, order[0]))
	s.Equal([]string{order[1], order[0]}, s.store.ActiveView().SectionOrder[:2])
}

func (s *StoreTestSuite) Test_UpdateSectionOrder_RejectsUnknownBuiltin() {
	err := s.store.UpdateSectionOrder(s.ctx, []string{"about", "hero"})
	s.True(errors.Is(err, apperror.ErrInvalidInput))

	s.Require().NoError(s.store.UpdateSectionOrder(s.ctx, []string{"contact", "custom_stale", "about"}))
	s.Equal([]string{"contact", "custom_stale", "about"}, s.store.ActiveView().SectionOrder)
}

func (s *StoreTestSuite) Test_CustomSections() {
	section, err := s.store.AddCustomSection(s.ctx, domain.CustomSection{
		Title:     "Services",
		Layout:    domain.LayoutGrid,
		Columns:   3,
		IsVisible: true,
	})
	s.Require().NoError(err)
	s.True(domain.IsCustomSectionID(section.ID))
	s.Contains(s.store.ActiveView().SectionOrder, section.ID)

	item, err := s.store.AddCustomSectionItem(s.ctx, section.ID, domain.CardItem{Title: "Audit"})
	s.Require().NoError(err)
	s.Require().NoError(s.store.UpdateCustomSectionItem(s.ctx, section.ID, item.ID, []byte(`{"description":"Security audit"}`)))
	s.Require().NoError(s.store.UpdateCustomSection(s.ctx, section.ID, []byte(`{"title":"What I do"}`)))

	got, ok := s.store.ActiveView().FindCustomSection(section.ID)
	s.Require().True(ok)
	s.Equal("What I do", got.Title)
	s.Equal([]domain.CustomSectionItem{{ID: item.ID, Body: domain.CardItem{Title: "Audit", Description: "Security audit"}}}, got.Items)

	s.Require().NoError(s.store.DeleteCustomSectionItem(s.ctx, section.ID, item.ID))
	got, _ = s.store.ActiveView().FindCustomSection(section.ID)
	s.Empty(got.Items)

	s.Require().NoError(s.store.DeleteCustomSection(s.ctx, section.ID))
	view := s.store.ActiveView()
	s.Empty(view.CustomSections)
	s.NotContains(view.SectionOrder, section.ID)
}

func (s *StoreTestSuite) Test_CustomSectionItem_ChangeType() {
	section, err := s.store.AddCustomSection(s.ctx, domain.CustomSection{Title: "Gallery", Layout: domain.LayoutCards})
	s.Require().NoError(err)
	item, err := s.store.AddCustomSectionItem(s.ctx, section.ID, domain.TextItem{Content: "hi"})
	s.Require().NoError(err)

	s.Require().NoError(s.store.UpdateCustomSectionItem(s.ctx, section.ID, item.ID, []byte(`{"type":"image","imageUrl":"/a.png"}`)))
	got, _ := s.store.ActiveView().FindCustomSection(section.ID)
	s.Equal(domain.ImageItem{ImageURL: "/a.png"}, got.Items[0].Body)

	err = s.store.UpdateCustomSectionItem(s.ctx, section.ID, item.ID, []byte(`{"type":"video"}`))
	s.True(errors.Is(err, apperror.ErrInvalidInput))
}

func (s *StoreTestSuite) Test_Settings() {
	seo := domain.DefaultSEO()
	seo.MetaTitle = "Hire me"
	s.Require().NoError(s.store.UpdateSEO(s.ctx, seo))

	data := domain.DefaultProfileData()
	data.Name = "Robin"
	s.Require().NoError(s.store.UpdateProfile(s.ctx, data))

	s.Require().NoError(s.store.UpdateCustomLinks(s.ctx, []domain.CustomLink{{Label: "Docs", URL: "https://docs"}}))

	vis := domain.AllSectionsVisible()
	vis.Contact = false
	s.Require().NoError(s.store.UpdateSectionVisibility(s.ctx, vis))

	view := s.store.ActiveView()
	s.Equal("Hire me", view.SEO.MetaTitle)
	s.Equal("Robin", view.Profile.Name)
	s.Len(view.CustomLinks, 1)
	s.False(view.SectionVisibility.Contact)

	s.True(errors.Is(s.store.UpdateTheme(s.ctx, []byte(`null`)), apperror.ErrInvalidInput))
}

func (s *StoreTestSuite) Test_ExportImport_RoundTrip() {
	_, err := s.store.AddNewProfile(s.ctx, "Designer")
	s.Require().NoError(err)
	_, err = s.store.AddCustomSection(s.ctx, domain.CustomSection{
		Title: "Services",
		Items: []domain.CustomSectionItem{{ID: 1, Body: domain.TextItem{Content: "x"}}},
	})
	s.Require().NoError(err)
	before := s.store.State()

	exported, err := s.store.Export(s.ctx)
	s.Require().NoError(err)
	s.Require().NoError(s.store.ResetToDefault(s.ctx))
	s.Len(s.store.State().Profiles, 1)

	s.True(s.store.Import(s.ctx, exported))
	s.Equal(before, s.store.State())
	s.Equal(before, s.persisted())
}

func (s *StoreTestSuite) Test_Import_Legacy() {
	ok := s.store.Import(s.ctx, `{"profile":{"name":"Legacy"},"projects":[{"id":1,"title":"P"}]}`)
	s.Require().True(ok)

	state := s.store.State()
	s.Require().Len(state.Profiles, 1)
	s.Equal("default", state.Profiles[0].ID)
	s.Equal("default", state.ActiveProfileID)
	s.Empty(state.Profiles[0].Experience)
	s.Equal(domain.DefaultStats(), state.Profiles[0].CustomStats)
}

func (s *StoreTestSuite) Test_Import_Malformed() {
	before := s.store.State()
	s.False(s.store.Import(s.ctx, `{"profiles": [`))
	s.False(s.store.Import(s.ctx, `{"profiles": []}`))
	s.False(s.store.Import(s.ctx, `{"nothing": true}`))
	s.Equal(before, s.store.State())
}

func (s *StoreTestSuite) Test_ActiveView_FallsBackToDefaults() {
	raw := `{"schemaVersion":2,"activeProfileId":"ghost","profiles":[{"id":"real","profile":{"name":"Real"}}]}`
	s.Require().NoError(s.storage.Set(s.ctx, domain.SlotAllProfiles, raw))
	store := s.newStore()
	s.Require().NoError(store.Load(s.ctx))
	s.Equal(domain.DefaultProfile().View(), store.ActiveView())
}

func (s *StoreTestSuite) Test_Import_DanglingActiveIDActivatesFirst() {
	s.Require().True(s.store.Import(s.ctx, `{"profiles":[{"id":"a","profile":{"name":"Ada"}},{"id":"b"}],"activeProfileId":"zzz"}`))
	s.Equal("a", s.store.ActiveProfileID())
	s.Equal("Ada", s.store.ActiveView().Profile.Name)
	s.True(s.store.State().Profiles[0].IsActive)

	before := len(s.store.ActiveProfile().Projects)
	_, err := s.store.AddProject(s.ctx, domain.Project{Title: "Kept"})
	s.Require().NoError(err)
	s.Len(s.store.ActiveProfile().Projects, before+1)
}

func (s *StoreTestSuite) Test_PersistFailure_RollsBack() {
	before := s.store.State()
	s.storage.failSet.Store(true)

	_, err := s.store.AddProject(s.ctx, domain.Project{Title: "lost"})
	s.Error(err)
	s.False(s.store.Import(s.ctx, `{"profile":{}}`))
	s.Error(s.store.ResetToDefault(s.ctx))
	s.Equal(before, s.store.State())

	s.storage.failSet.Store(false)
	p, err := s.store.AddProject(s.ctx, domain.Project{Title: "kept"})
	s.Require().NoError(err)
	s.Equal(int64(3), p.ID)
}

func (s *StoreTestSuite) Test_ReadersGetCopies() {
	view := s.store.ActiveView()
	view.Projects[0].Tags[0] = "mutated"
	view.SectionOrder[0] = "mutated"

	fresh := s.store.ActiveView()
	s.NotEqual("mutated", fresh.Projects[0].Tags[0])
	s.NotEqual("mutated", fresh.SectionOrder[0])
}

func (s *StoreTestSuite) Test_Events_Published() {
	_, err := s.store.AddProject(s.ctx, domain.Project{Title: "X"})
	s.Require().NoError(err)
	s.Require().NoError(s.store.ResetToDefault(s.ctx))
	s.Require().NoError(s.store.DeleteProject(s.ctx, 404))

	s.Eventually(func() bool { return len(s.publisher.ops()) == 2 }, time.Second, 10*time.Millisecond)
	s.ElementsMatch([]string{"add_project", "reset"}, s.publisher.ops())
}

func (s *StoreTestSuite) Test_ListProfiles() {
	_, err := s.store.AddNewProfile(s.ctx, "Second")
	s.Require().NoError(err)

	list := s.store.ListProfiles()
	s.Require().Len(list, 2)
	s.Equal(ProfileSummary{ID: domain.DefaultProfileID, DomainName: domain.DefaultDomainName, IsActive: true}, list[0])
	s.Equal("Second", list[1].DomainName)
	s.False(list[1].IsActive)
}
