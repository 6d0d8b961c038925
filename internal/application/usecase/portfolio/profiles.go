package portfolio

import (
	"context"

	"github.com/khoahotran/portfolio/internal/application/service"
	domain "github.com/khoahotran/portfolio/internal/domain/portfolio"
	"github.com/khoahotran/portfolio/pkg/apperror"
)

// ProfileSummary is the admin list entry for one domain profile.
type ProfileSummary struct {
	ID         string `json:"id"`
	DomainName string `json:"domainName"`
	IsActive   bool   `json:"isActive"`
}

func (s *Store) ListProfiles() []ProfileSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]ProfileSummary, len(s.doc.Profiles))
	for i, p := range s.doc.Profiles {
		out[i] = ProfileSummary{ID: p.ID, DomainName: p.DomainName, IsActive: p.ID == s.doc.ActiveProfileID}
	}
	return out
}

// SetActiveProfile switches the publicly rendered profile. Unknown ids are
// rejected with a not-found error and leave the pointer unchanged.
func (s *Store) SetActiveProfile(ctx context.Context, id string) error {
	found := true
	err := s.commit(ctx, "set_active_profile", service.EventTypeUpdated, func(doc *domain.AllProfilesData) (string, bool) {
		if _, ok := doc.Find(id); !ok {
			found = false
			return id, false
		}
		if doc.ActiveProfileID == id {
			return id, false
		}
		doc.ActiveProfileID = id
		return id, true
	})
	if err != nil {
		return err
	}
	if !found {
		return apperror.NewNotFound("profile", id)
	}
	return nil
}

// AddNewProfile appends a copy of the built-in defaults. The new profile is
// not activated.
func (s *Store) AddNewProfile(ctx context.Context, domainName string) (ProfileSummary, error) {
	var created domain.DomainProfile
	err := s.commit(ctx, "add_profile", service.EventTypeUpdated, func(doc *domain.AllProfilesData) (string, bool) {
		created = domain.DefaultProfile()
		created.ID = s.ids.ProfileID()
		created.DomainName = domainName
		doc.Profiles = append(doc.Profiles, created)
		return created.ID, true
	})
	if err != nil {
		return ProfileSummary{}, err
	}
	return ProfileSummary{ID: created.ID, DomainName: created.DomainName}, nil
}

// DeleteProfile removes a profile. The last remaining profile is never
// deleted. Deleting the active profile activates the new first profile.
func (s *Store) DeleteProfile(ctx context.Context, id string) error {
	return s.commit(ctx, "delete_profile", service.EventTypeUpdated, func(doc *domain.AllProfilesData) (string, bool) {
		if len(doc.Profiles) <= 1 {
			return id, false
		}
		kept := make([]domain.DomainProfile, 0, len(doc.Profiles))
		for _, p := range doc.Profiles {
			if p.ID != id {
				kept = append(kept, p)
			}
		}
		if len(kept) == len(doc.Profiles) {
			return id, false
		}
		doc.Profiles = kept
		if doc.ActiveProfileID == id {
			doc.ActiveProfileID = kept[0].ID
		}
		return id, true
	})
}

func (s *Store) UpdateProfileDomainName(ctx context.Context, id, name string) error {
	return s.commit(ctx, "rename_profile", service.EventTypeUpdated, func(doc *domain.AllProfilesData) (string, bool) {
		changed := false
		for i := range doc.Profiles {
			if doc.Profiles[i].ID == id {
				doc.Profiles[i].DomainName = name
				changed = true
			}
		}
		return id, changed
	})
}

// DuplicateProfile deep-copies the source profile under a new id and name.
// The copy is not activated. An unknown source id is a no-op and returns a
// zero summary.
func (s *Store) DuplicateProfile(ctx context.Context, sourceID, newName string) (ProfileSummary, error) {
	var created domain.DomainProfile
	err := s.commit(ctx, "duplicate_profile", service.EventTypeUpdated, func(doc *domain.AllProfilesData) (string, bool) {
		src, ok := doc.Find(sourceID)
		if !ok {
			return sourceID, false
		}
		created = src.Clone()
		created.ID = s.ids.ProfileID()
		created.DomainName = newName
		doc.Profiles = append(doc.Profiles, created)
		return created.ID, true
	})
	if err != nil || created.ID == "" {
		return ProfileSummary{}, err
	}
	return ProfileSummary{ID: created.ID, DomainName: created.DomainName}, nil
}
