package feed

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gorilla/feeds"
	"go.uber.org/zap"

	domain "github.com/khoahotran/portfolio/internal/domain/portfolio"
	"github.com/khoahotran/portfolio/pkg/logger"
)

// ViewSource yields the active profile's public view.
type ViewSource interface {
	ActiveView() domain.PortfolioData
}

type RSSUseCase struct {
	source    ViewSource
	publicURL string
	logger    logger.Logger
}

func NewRSSUseCase(source ViewSource, publicURL string, log logger.Logger) *RSSUseCase {
	return &RSSUseCase{
		source:    source,
		publicURL: strings.TrimRight(publicURL, "/"),
		logger:    log,
	}
}

var blogDateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"January 2, 2006",
	"Jan 2, 2006",
	"2006/01/02",
}

func (uc *RSSUseCase) Execute(ctx context.Context) (*feeds.Feed, error) {
	view := uc.source.ActiveView()
	p := view.Profile

	feed := &feeds.Feed{
		Title:       fmt.Sprintf("%s - %s", p.Name, p.BlogTitle),
		Link:        &feeds.Link{Href: uc.publicURL},
		Description: view.SEO.MetaDescription,
		Author:      &feeds.Author{Name: p.Name, Email: p.Email},
		Created:     time.Now(),
	}

	for _, post := range view.BlogPosts {
		link := post.Link
		if link == "" {
			link = fmt.Sprintf("%s/blog/%s", uc.publicURL, post.Slug)
		}
		description := post.Excerpt
		if post.Category != "" {
			description = fmt.Sprintf("[%s] %s", post.Category, post.Excerpt)
		}
		item := &feeds.Item{
			Id:          fmt.Sprintf("%s#blog-%d", uc.publicURL, post.ID),
			Title:       post.Title,
			Link:        &feeds.Link{Href: link},
			Description: description,
			Created:     parseBlogDate(post.Date),
		}
		if post.Image != "" {
			item.Enclosure = &feeds.Enclosure{Url: post.Image, Type: "image/jpeg", Length: "0"}
		}
		feed.Items = append(feed.Items, item)
	}

	uc.logger.Debug("RSS feed generated", zap.Int("item_count", len(feed.Items)))
	return feed, nil
}

// parseBlogDate accepts the free-form dates admins type. Unparseable dates
// yield the zero time, which the feed omits.
func parseBlogDate(s string) time.Time {
	s = strings.TrimSpace(s)
	for _, layout := range blogDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
