package portfolio

import (
	"context"

	domain "github.com/khoahotran/portfolio/internal/domain/portfolio"
	"github.com/khoahotran/portfolio/pkg/apperror"
)

// AddCustomSection stores the section under a fresh custom_ id and appends
// that id to the section order in the same write.
func (s *Store) AddCustomSection(ctx context.Context, section domain.CustomSection) (domain.CustomSection, error) {
	if err := section.Validate(); err != nil {
		return domain.CustomSection{}, apperror.NewInvalidInput("invalid custom section", err)
	}
	var created domain.CustomSection
	err := s.updateActive(ctx, "add_custom_section", func(p *domain.DomainProfile) bool {
		created = section
		created.ID = s.ids.CustomSectionID()
		p.CustomSections = append(p.CustomSections, created)
		p.SectionOrder = append(p.SectionOrder, created.ID)
		return true
	})
	if err != nil {
		return domain.CustomSection{}, err
	}
	return created, nil
}

func (s *Store) UpdateCustomSection(ctx context.Context, id string, patch []byte) error {
	var patchErr error
	err := s.updateActive(ctx, "update_custom_section", func(p *domain.DomainProfile) bool {
		changed := false
		for i, cs := range p.CustomSections {
			if cs.ID != id {
				continue
			}
			merged, err := domain.MergePatch(cs, patch)
			if err == nil {
				err = merged.Validate()
			}
			if err != nil {
				patchErr = apperror.NewInvalidInput("invalid custom section patch", err)
				return false
			}
			merged.ID = id
			p.CustomSections[i] = merged
			changed = true
		}
		return changed
	})
	if err != nil {
		return err
	}
	return patchErr
}

// DeleteCustomSection removes the section and strips its id from the
// section order together.
func (s *Store) DeleteCustomSection(ctx context.Context, id string) error {
	return s.updateActive(ctx, "delete_custom_section", func(p *domain.DomainProfile) bool {
		kept := make([]domain.CustomSection, 0, len(p.CustomSections))
		for _, cs := range p.CustomSections {
			if cs.ID != id {
				kept = append(kept, cs)
			}
		}
		order := domain.RemoveSectionID(p.SectionOrder, id)
		if len(kept) == len(p.CustomSections) && len(order) == len(p.SectionOrder) {
			return false
		}
		p.CustomSections = kept
		p.SectionOrder = order
		return true
	})
}

func (s *Store) AddCustomSectionItem(ctx context.Context, sectionID string, body domain.ItemBody) (domain.CustomSectionItem, error) {
	if body == nil {
		return domain.CustomSectionItem{}, apperror.NewInvalidInput("invalid custom section item", domain.ErrEmptyItemBody)
	}
	var created domain.CustomSectionItem
	err := s.updateActive(ctx, "add_custom_section_item", func(p *domain.DomainProfile) bool {
		changed := false
		for i := range p.CustomSections {
			if p.CustomSections[i].ID != sectionID {
				continue
			}
			created = domain.CustomSectionItem{ID: s.ids.Millis(), Body: body}
			p.CustomSections[i].Items = append(p.CustomSections[i].Items, created)
			changed = true
		}
		return changed
	})
	if err != nil {
		return domain.CustomSectionItem{}, err
	}
	return created, nil
}

// UpdateCustomSectionItem merges patch over the item's flat encoding. A patch
// that changes "type" keeps only the fields of the new variant.
func (s *Store) UpdateCustomSectionItem(ctx context.Context, sectionID string, itemID int64, patch []byte) error {
	var patchErr error
	err := s.updateActive(ctx, "update_custom_section_item", func(p *domain.DomainProfile) bool {
		changed := false
		for i := range p.CustomSections {
			if p.CustomSections[i].ID != sectionID {
				continue
			}
			items, matched, err := domain.ReplaceByID(p.CustomSections[i].Items, itemID, func(cur domain.CustomSectionItem) (domain.CustomSectionItem, error) {
				merged, err := domain.MergePatch(cur, patch)
				merged.ID = itemID
				return merged, err
			})
			if err != nil {
				patchErr = apperror.NewInvalidInput("invalid custom section item patch", err)
				return false
			}
			if matched {
				p.CustomSections[i].Items = items
				changed = true
			}
		}
		return changed
	})
	if err != nil {
		return err
	}
	return patchErr
}

func (s *Store) DeleteCustomSectionItem(ctx context.Context, sectionID string, itemID int64) error {
	return s.updateActive(ctx, "delete_custom_section_item", func(p *domain.DomainProfile) bool {
		changed := false
		for i := range p.CustomSections {
			if p.CustomSections[i].ID != sectionID {
				continue
			}
			kept := domain.RemoveByID(p.CustomSections[i].Items, itemID)
			if len(kept) != len(p.CustomSections[i].Items) {
				p.CustomSections[i].Items = kept
				changed = true
			}
		}
		return changed
	})
}
