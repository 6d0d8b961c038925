package portfolio

import (
	"context"
	"fmt"

	domain "github.com/khoahotran/portfolio/internal/domain/portfolio"
	"github.com/khoahotran/portfolio/pkg/apperror"
)

type idStrategy int

const (
	// sequentialIDs assigns max(existing ids, 0) + 1.
	sequentialIDs idStrategy = iota
	// clockIDs assigns a monotonic unix millisecond.
	clockIDs
)

// collection describes one numeric-id list on a DomainProfile.
type collection[T domain.Identifiable] struct {
	name   string
	ids    idStrategy
	field  func(p *domain.DomainProfile) *[]T
	withID func(item T, id int64) T
}

var (
	projectsCol = collection[domain.Project]{
		name: "project", ids: sequentialIDs,
		field:  func(p *domain.DomainProfile) *[]domain.Project { return &p.Projects },
		withID: func(v domain.Project, id int64) domain.Project { v.ID = id; return v },
	}
	experienceCol = collection[domain.Experience]{
		name: "experience", ids: sequentialIDs,
		field:  func(p *domain.DomainProfile) *[]domain.Experience { return &p.Experience },
		withID: func(v domain.Experience, id int64) domain.Experience { v.ID = id; return v },
	}
	educationCol = collection[domain.Education]{
		name: "education", ids: sequentialIDs,
		field:  func(p *domain.DomainProfile) *[]domain.Education { return &p.Education },
		withID: func(v domain.Education, id int64) domain.Education { v.ID = id; return v },
	}
	testimonialsCol = collection[domain.Testimonial]{
		name: "testimonial", ids: sequentialIDs,
		field:  func(p *domain.DomainProfile) *[]domain.Testimonial { return &p.Testimonials },
		withID: func(v domain.Testimonial, id int64) domain.Testimonial { v.ID = id; return v },
	}
	blogPostsCol = collection[domain.BlogPost]{
		name: "blog_post", ids: clockIDs,
		field:  func(p *domain.DomainProfile) *[]domain.BlogPost { return &p.BlogPosts },
		withID: func(v domain.BlogPost, id int64) domain.BlogPost { v.ID = id; return v },
	}
	certificationsCol = collection[domain.Certification]{
		name: "certification", ids: clockIDs,
		field:  func(p *domain.DomainProfile) *[]domain.Certification { return &p.Certifications },
		withID: func(v domain.Certification, id int64) domain.Certification { v.ID = id; return v },
	}
	statsCol = collection[domain.StatItem]{
		name: "stat", ids: clockIDs,
		field:  func(p *domain.DomainProfile) *[]domain.StatItem { return &p.CustomStats },
		withID: func(v domain.StatItem, id int64) domain.StatItem { v.ID = id; return v },
	}
)

func addItem[T domain.Identifiable](ctx context.Context, s *Store, c collection[T], item T) (T, error) {
	var created T
	err := s.updateActive(ctx, "add_"+c.name, func(p *domain.DomainProfile) bool {
		items := c.field(p)
		var id int64
		if c.ids == sequentialIDs {
			id = domain.NextSequentialID(*items)
		} else {
			id = s.ids.Millis()
		}
		created = c.withID(item, id)
		*items = append(*items, created)
		return true
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return created, nil
}

// updateItem shallow-merges patch into every item with the given id. The id
// itself cannot be changed through a patch.
func updateItem[T domain.Identifiable](ctx context.Context, s *Store, c collection[T], id int64, patch []byte) error {
	var patchErr error
	err := s.updateActive(ctx, "update_"+c.name, func(p *domain.DomainProfile) bool {
		items := c.field(p)
		updated, matched, err := domain.ReplaceByID(*items, id, func(cur T) (T, error) {
			merged, err := domain.MergePatch(cur, patch)
			if err != nil {
				return cur, err
			}
			return c.withID(merged, id), nil
		})
		if err != nil {
			patchErr = apperror.NewInvalidInput(fmt.Sprintf("invalid %s patch", c.name), err)
			return false
		}
		if !matched {
			return false
		}
		*items = updated
		return true
	})
	if err != nil {
		return err
	}
	return patchErr
}

func deleteItem[T domain.Identifiable](ctx context.Context, s *Store, c collection[T], id int64) error {
	return s.updateActive(ctx, "delete_"+c.name, func(p *domain.DomainProfile) bool {
		items := c.field(p)
		kept := domain.RemoveByID(*items, id)
		if len(kept) == len(*items) {
			return false
		}
		*items = kept
		return true
	})
}

func replaceItems[T domain.Identifiable](ctx context.Context, s *Store, c collection[T], items []T) error {
	return s.updateActive(ctx, "replace_"+c.name, func(p *domain.DomainProfile) bool {
		next := make([]T, len(items))
		copy(next, items)
		*c.field(p) = next
		return true
	})
}

func (s *Store) AddProject(ctx context.Context, v domain.Project) (domain.Project, error) {
	return addItem(ctx, s, projectsCol, v)
}

func (s *Store) UpdateProject(ctx context.Context, id int64, patch []byte) error {
	return updateItem(ctx, s, projectsCol, id, patch)
}

func (s *Store) DeleteProject(ctx context.Context, id int64) error {
	return deleteItem(ctx, s, projectsCol, id)
}

func (s *Store) UpdateProjects(ctx context.Context, v []domain.Project) error {
	return replaceItems(ctx, s, projectsCol, v)
}

func (s *Store) AddExperience(ctx context.Context, v domain.Experience) (domain.Experience, error) {
	return addItem(ctx, s, experienceCol, v)
}

func (s *Store) UpdateExperienceItem(ctx context.Context, id int64, patch []byte) error {
	return updateItem(ctx, s, experienceCol, id, patch)
}

func (s *Store) DeleteExperience(ctx context.Context, id int64) error {
	return deleteItem(ctx, s, experienceCol, id)
}

func (s *Store) UpdateExperience(ctx context.Context, v []domain.Experience) error {
	return replaceItems(ctx, s, experienceCol, v)
}

func (s *Store) AddEducation(ctx context.Context, v domain.Education) (domain.Education, error) {
	return addItem(ctx, s, educationCol, v)
}

func (s *Store) UpdateEducationItem(ctx context.Context, id int64, patch []byte) error {
	return updateItem(ctx, s, educationCol, id, patch)
}

func (s *Store) DeleteEducation(ctx context.Context, id int64) error {
	return deleteItem(ctx, s, educationCol, id)
}

func (s *Store) UpdateEducation(ctx context.Context, v []domain.Education) error {
	return replaceItems(ctx, s, educationCol, v)
}

func (s *Store) AddTestimonial(ctx context.Context, v domain.Testimonial) (domain.Testimonial, error) {
	return addItem(ctx, s, testimonialsCol, v)
}

func (s *Store) UpdateTestimonialItem(ctx context.Context, id int64, patch []byte) error {
	return updateItem(ctx, s, testimonialsCol, id, patch)
}

func (s *Store) DeleteTestimonial(ctx context.Context, id int64) error {
	return deleteItem(ctx, s, testimonialsCol, id)
}

func (s *Store) UpdateTestimonials(ctx context.Context, v []domain.Testimonial) error {
	return replaceItems(ctx, s, testimonialsCol, v)
}

func (s *Store) AddBlogPost(ctx context.Context, v domain.BlogPost) (domain.BlogPost, error) {
	return addItem(ctx, s, blogPostsCol, v)
}

func (s *Store) UpdateBlogPost(ctx context.Context, id int64, patch []byte) error {
	return updateItem(ctx, s, blogPostsCol, id, patch)
}

func (s *Store) DeleteBlogPost(ctx context.Context, id int64) error {
	return deleteItem(ctx, s, blogPostsCol, id)
}

func (s *Store) UpdateBlogPosts(ctx context.Context, v []domain.BlogPost) error {
	return replaceItems(ctx, s, blogPostsCol, v)
}

func (s *Store) AddCertification(ctx context.Context, v domain.Certification) (domain.Certification, error) {
	return addItem(ctx, s, certificationsCol, v)
}

func (s *Store) UpdateCertification(ctx context.Context, id int64, patch []byte) error {
	return updateItem(ctx, s, certificationsCol, id, patch)
}

func (s *Store) DeleteCertification(ctx context.Context, id int64) error {
	return deleteItem(ctx, s, certificationsCol, id)
}

func (s *Store) AddStat(ctx context.Context, v domain.StatItem) (domain.StatItem, error) {
	return addItem(ctx, s, statsCol, v)
}

func (s *Store) UpdateStat(ctx context.Context, id int64, patch []byte) error {
	return updateItem(ctx, s, statsCol, id, patch)
}

func (s *Store) DeleteStat(ctx context.Context, id int64) error {
	return deleteItem(ctx, s, statsCol, id)
}
