// Package blog serves the hotel's blog posts from its Naver RSS feed, with a
// static set of posts when the feed is not configured or unreachable.
package blog

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/avstrong/stayhotel/internal/logger"
)

const (
	DefaultLimit   = 5
	MaxLimit       = 20
	DefaultFeedURL = "https://rss.blog.naver.com/%s.xml"

	placeholderBlogID = "your_naver_blog_id"
	userAgent         = "Mozilla/5.0 (compatible; HotelWebsite/1.0)"
	defaultTimeout    = 10 * time.Second
)

type Config struct {
	L      *logger.Logger
	BlogID string
	// FeedURL is a format string with a single %s for the blog id.
	FeedURL  string
	Timeout  time.Duration
	CacheTTL time.Duration
	Cache    Cache
	Client   *http.Client
	Now      func() time.Time
}

type Service struct {
	l        *logger.Logger
	blogID   string
	feedURL  string
	timeout  time.Duration
	cacheTTL time.Duration
	cache    Cache
	client   *http.Client
	now      func() time.Time
}

func New(conf Config) *Service {
	if conf.FeedURL == "" {
		conf.FeedURL = DefaultFeedURL
	}

	if conf.Timeout <= 0 {
		conf.Timeout = defaultTimeout
	}

	if conf.Now == nil {
		conf.Now = time.Now
	}

	return &Service{
		l:        conf.L,
		blogID:   strings.TrimSpace(conf.BlogID),
		feedURL:  conf.FeedURL,
		timeout:  conf.Timeout,
		cacheTTL: conf.CacheTTL,
		cache:    conf.Cache,
		client:   conf.Client,
		now:      conf.Now,
	}
}

// ClampLimit maps a requested post count onto 1..MaxLimit, 0 or less meaning
// DefaultLimit.
func ClampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultLimit
	case limit > MaxLimit:
		return MaxLimit
	default:
		return limit
	}
}

func (s *Service) Configured() bool {
	return s.blogID != "" && s.blogID != placeholderBlogID
}

func (s *Service) cacheKey() string {
	return "blog:posts:" + s.blogID
}

// Posts never fails: problems with the feed are reported in the response next
// to the fallback posts.
func (s *Service) Posts(ctx context.Context, limit int) FeedResponse {
	limit = ClampLimit(limit)

	if !s.Configured() {
		return FeedResponse{Success: true, Posts: limitPosts(fallbackPosts(s.now()), limit)}
	}

	if s.cache != nil {
		posts, ok, err := s.cache.Get(ctx, s.cacheKey())
		if err != nil {
			s.l.LogWarnf("Could not read blog cache: %v", err.Error())
		}

		if ok {
			return FeedResponse{Success: true, Posts: limitPosts(posts, limit)}
		}
	}

	posts, err := s.fetchAndStore(ctx)
	if err != nil {
		s.l.LogErrorf("Failed to fetch blog feed: %v", err.Error())

		return FeedResponse{
			Success: false,
			Posts:   limitPosts(fallbackPosts(s.now()), limit),
			Error:   err.Error(),
		}
	}

	return FeedResponse{Success: true, Posts: limitPosts(posts, limit)}
}

// Refresh fetches the feed and overwrites the cached copy.
func (s *Service) Refresh(ctx context.Context) error {
	if !s.Configured() {
		return nil
	}

	posts, err := s.fetchAndStore(ctx)
	if err != nil {
		return err
	}

	s.l.LogInfo("Blog feed refreshed, %d posts cached", len(posts))

	return nil
}

func (s *Service) fetchAndStore(ctx context.Context) ([]Post, error) {
	posts, err := s.fetch(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil && s.cacheTTL > 0 {
		if err := s.cache.Set(ctx, s.cacheKey(), posts, s.cacheTTL); err != nil {
			s.l.LogWarnf("Could not store blog feed in cache: %v", err.Error())
		}
	}

	return posts, nil
}

func (s *Service) fetch(ctx context.Context) ([]Post, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	parser := gofeed.NewParser()
	parser.UserAgent = userAgent

	if s.client != nil {
		parser.Client = s.client
	}

	url := fmt.Sprintf(s.feedURL, s.blogID)

	feed, err := parser.ParseURLWithContext(url, ctx)
	if err != nil {
		return nil, fmt.Errorf("parse feed %v: %w", url, err)
	}

	n := min(len(feed.Items), MaxLimit)
	posts := make([]Post, 0, n)

	for _, item := range feed.Items[:n] {
		posts = append(posts, s.toPost(item))
	}

	return posts, nil
}

func (s *Service) toPost(item *gofeed.Item) Post {
	content := item.Content
	if content == "" {
		content = item.Description
	}

	post := Post{
		Title:          item.Title,
		Link:           item.Link,
		PubDate:        item.Published,
		Content:        content,
		ContentSnippet: Snippet(content),
		Thumbnail:      Thumbnail(content),
	}

	if post.Title == "" {
		post.Title = "Untitled"
	}

	if post.Link == "" {
		post.Link = "#"
	}

	if post.PubDate == "" {
		post.PubDate = s.now().UTC().Format(time.RFC3339)
	}

	if post.Thumbnail == "" && item.Image != nil {
		post.Thumbnail = item.Image.URL
	}

	return post
}
