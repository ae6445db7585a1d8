package panel

import (
	"context"
	"strings"
	"sync"

	"medinfo-be/internal/pkg/logger"
	"medinfo-be/pkg/client"
)

type BlogAPI interface {
	BlogPosts(ctx context.Context) ([]client.BlogPost, error)
	PublishPost(ctx context.Context, title, content string) (uint, error)
}

type BlogState struct {
	Posts   []client.BlogPost
	Loading bool
	Err     string
}

// BlogFeed lists posts and publishes new ones. It needs no session.
type BlogFeed struct {
	api    BlogAPI
	logger logger.ILogger

	mu    sync.Mutex
	state BlogState
}

func NewBlogFeed(api BlogAPI, log logger.ILogger) *BlogFeed {
	return &BlogFeed{api: api, logger: log}
}

func (f *BlogFeed) State() BlogState {
	f.mu.Lock()
	defer f.mu.Unlock()
	s := f.state
	s.Posts = append([]client.BlogPost(nil), f.state.Posts...)
	return s
}

func (f *BlogFeed) List(ctx context.Context) error {
	f.mu.Lock()
	f.state.Loading = true
	f.state.Err = ""
	f.mu.Unlock()

	posts, err := f.api.BlogPosts(ctx)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.Loading = false
	if err != nil {
		f.state.Err = errorText(err)
		return err
	}
	f.state.Posts = posts
	return nil
}

// Publish creates a post and reloads the feed so it includes it.
func (f *BlogFeed) Publish(ctx context.Context, title, content string) error {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(content) == "" {
		f.mu.Lock()
		f.state.Err = "Title and content are required"
		f.mu.Unlock()
		return ErrEmptyPost
	}

	id, err := f.api.PublishPost(ctx, title, content)
	if err != nil {
		f.mu.Lock()
		f.state.Err = errorText(err)
		f.mu.Unlock()
		f.logger.Warn("Blog", "Publish failed", map[string]interface{}{"error": err.Error()})
		return err
	}

	f.logger.Info("Blog", "Post published", map[string]interface{}{"id": id})
	return f.List(ctx)
}
