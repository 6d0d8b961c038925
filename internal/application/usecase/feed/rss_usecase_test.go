package feed

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/khoahotran/portfolio/internal/domain/portfolio"
	"github.com/khoahotran/portfolio/pkg/logger"
)

type staticView domain.PortfolioData

func (s staticView) ActiveView() domain.PortfolioData { return domain.PortfolioData(s) }

func TestRSSUseCase_Execute(t *testing.T) {
	view := domain.DefaultProfile().View()
	view.BlogPosts = []domain.BlogPost{
		{ID: 1, Title: "Hello", Excerpt: "First", Category: "Go", Date: "2024-05-01", Slug: "hello"},
		{ID: 2, Title: "External", Date: "sometime", Link: "https://medium.com/x"},
	}

	uc := NewRSSUseCase(staticView(view), "https://me.dev/", logger.NewNopLogger())
	feed, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Alex Morgan - Blog", feed.Title)
	require.Len(t, feed.Items, 2)
	assert.Equal(t, "https://me.dev/blog/hello", feed.Items[0].Link.Href)
	assert.Equal(t, "[Go] First", feed.Items[0].Description)
	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), feed.Items[0].Created)
	assert.Equal(t, "https://medium.com/x", feed.Items[1].Link.Href)
	assert.True(t, feed.Items[1].Created.IsZero())
	assert.Empty(t, feed.Items[1].Description)

	rss, err := feed.ToRss()
	require.NoError(t, err)
	assert.Contains(t, rss, "<title>Hello</title>")
}
