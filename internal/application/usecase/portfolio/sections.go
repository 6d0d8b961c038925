package portfolio

import (
	"context"
	"fmt"
	"slices"

	domain "github.com/khoahotran/portfolio/internal/domain/portfolio"
	"github.com/khoahotran/portfolio/pkg/apperror"
)

// ToggleSection flips the visibility of one built-in section. Unknown kinds
// are a no-op.
func (s *Store) ToggleSection(ctx context.Context, kind domain.SectionKind) error {
	return s.updateActive(ctx, "toggle_section", func(p *domain.DomainProfile) bool {
		return p.SectionVisibility.Toggle(kind)
	})
}

func (s *Store) UpdateSectionVisibility(ctx context.Context, v domain.SectionVisibility) error {
	return s.updateActive(ctx, "update_section_visibility", func(p *domain.DomainProfile) bool {
		p.SectionVisibility = v
		return true
	})
}

// UpdateSectionOrder replaces the order. Entries must be built-in kinds or
// custom_ ids; custom ids are not checked against existing sections.
func (s *Store) UpdateSectionOrder(ctx context.Context, order []string) error {
	for _, id := range order {
		if domain.IsCustomSectionID(id) {
			continue
		}
		if _, ok := domain.ParseSectionKind(id); !ok {
			return apperror.NewInvalidInput(fmt.Sprintf("unknown section %q", id), nil)
		}
	}
	return s.updateActive(ctx, "update_section_order", func(p *domain.DomainProfile) bool {
		p.SectionOrder = slices.Clone(order)
		return true
	})
}

func (s *Store) MoveSectionUp(ctx context.Context, id string) error {
	return s.updateActive(ctx, "move_section_up", func(p *domain.DomainProfile) bool {
		next := domain.MoveSectionUp(p.SectionOrder, id)
		if slices.Equal(next, p.SectionOrder) {
			return false
		}
		p.SectionOrder = next
		return true
	})
}

func (s *Store) MoveSectionDown(ctx context.Context, id string) error {
	return s.updateActive(ctx, "move_section_down", func(p *domain.DomainProfile) bool {
		next := domain.MoveSectionDown(p.SectionOrder, id)
		if slices.Equal(next, p.SectionOrder) {
			return false
		}
		p.SectionOrder = next
		return true
	})
}

func (s *Store) UpdateProfile(ctx context.Context, data domain.ProfileData) error {
	return s.updateActive(ctx, "update_profile", func(p *domain.DomainProfile) bool {
		p.Profile = data
		return true
	})
}

func (s *Store) UpdateSEO(ctx context.Context, seo domain.SEOSettings) error {
	return s.updateActive(ctx, "update_seo", func(p *domain.DomainProfile) bool {
		p.SEO = seo
		return true
	})
}

func (s *Store) UpdateCustomLinks(ctx context.Context, links []domain.CustomLink) error {
	return s.updateActive(ctx, "update_custom_links", func(p *domain.DomainProfile) bool {
		p.CustomLinks = slices.Clone(links)
		return true
	})
}

// UpdateTheme shallow-merges patch into the active theme.
func (s *Store) UpdateTheme(ctx context.Context, patch []byte) error {
	var patchErr error
	err := s.updateActive(ctx, "update_theme", func(p *domain.DomainProfile) bool {
		merged, err := domain.MergePatch(p.Theme, patch)
		if err != nil {
			patchErr = apperror.NewInvalidInput("invalid theme patch", err)
			return false
		}
		p.Theme = merged
		return true
	})
	if err != nil {
		return err
	}
	return patchErr
}
