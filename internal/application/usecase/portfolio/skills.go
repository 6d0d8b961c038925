package portfolio

import (
	"context"
	"slices"

	domain "github.com/khoahotran/portfolio/internal/domain/portfolio"
)

func (s *Store) UpdateSkills(ctx context.Context, skills []domain.Skill) error {
	return s.updateActive(ctx, "replace_skills", func(p *domain.DomainProfile) bool {
		p.Skills = slices.Clone(skills)
		return true
	})
}

// AddSkillCategory appends an empty category. An existing category with the
// exact same name makes this a no-op.
func (s *Store) AddSkillCategory(ctx context.Context, category string) error {
	return s.updateActive(ctx, "add_skill_category", func(p *domain.DomainProfile) bool {
		if slices.ContainsFunc(p.Skills, func(sk domain.Skill) bool { return sk.Category == category }) {
			return false
		}
		p.Skills = append(p.Skills, domain.Skill{Category: category, Items: []domain.SkillItem{}})
		return true
	})
}

func (s *Store) DeleteSkillCategory(ctx context.Context, category string) error {
	return s.updateActive(ctx, "delete_skill_category", func(p *domain.DomainProfile) bool {
		before := len(p.Skills)
		p.Skills = slices.DeleteFunc(p.Skills, func(sk domain.Skill) bool { return sk.Category == category })
		return len(p.Skills) != before
	})
}

func (s *Store) AddSkillItem(ctx context.Context, category, name string, level int) error {
	return s.updateActive(ctx, "add_skill_item", func(p *domain.DomainProfile) bool {
		return editCategory(p, category, func(items []domain.SkillItem) ([]domain.SkillItem, bool) {
			return append(items, domain.SkillItem{Name: name, Level: level}), true
		})
	})
}

// UpdateSkillItem sets the level of every item named name in the category.
func (s *Store) UpdateSkillItem(ctx context.Context, category, name string, level int) error {
	return s.updateActive(ctx, "update_skill_item", func(p *domain.DomainProfile) bool {
		return editCategory(p, category, func(items []domain.SkillItem) ([]domain.SkillItem, bool) {
			changed := false
			for i := range items {
				if items[i].Name == name {
					items[i].Level = level
					changed = true
				}
			}
			return items, changed
		})
	})
}

// DeleteSkillItem removes every item named name from the category.
func (s *Store) DeleteSkillItem(ctx context.Context, category, name string) error {
	return s.updateActive(ctx, "delete_skill_item", func(p *domain.DomainProfile) bool {
		return editCategory(p, category, func(items []domain.SkillItem) ([]domain.SkillItem, bool) {
			before := len(items)
			items = slices.DeleteFunc(items, func(it domain.SkillItem) bool { return it.Name == name })
			return items, len(items) != before
		})
	})
}

// editCategory applies fn to every category with the given name.
func editCategory(p *domain.DomainProfile, category string, fn func([]domain.SkillItem) ([]domain.SkillItem, bool)) bool {
	changed := false
	for i := range p.Skills {
		if p.Skills[i].Category != category {
			continue
		}
		items, ok := fn(p.Skills[i].Items)
		if ok {
			p.Skills[i].Items = items
			changed = true
		}
	}
	return changed
}
