package impl

import (
	"cmp"
	"context"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"time"

	"telemock/internal/domain/entity"
	domainerrors "telemock/internal/domain/errors"
	"telemock/internal/infra/persistence/memory"
	"telemock/internal/usecase"
	"telemock/internal/util"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

type blogService struct {
	store  *memory.Store
	logger *slog.Logger
	now    func() time.Time
}

// NewBlogService creates the blog service.
func NewBlogService(store *memory.Store, logger *slog.Logger) usecase.BlogUsecase {
	return &blogService{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

func (s *blogService) List(_ context.Context, filter usecase.PostFilter) ([]*entity.BlogPost, error) {
	query := strings.ToLower(strings.TrimSpace(filter.Query))
	matching := s.store.Posts.Filter(func(p *entity.BlogPost) bool {
		if filter.Status != "" && p.Status != filter.Status {
			return false
		}

		return query == "" ||
			containsFold(p.Title, query) ||
			containsFold(p.Excerpt, query) ||
			containsFold(p.Content, query)
	})

	return memory.CloneAll(matching), nil
}

func (s *blogService) Create(ctx context.Context, input usecase.CreatePostInput) (*entity.BlogPost, error) {
	status := entity.PostStatus(input.Status)
	if status == "" {
		status = entity.PostDraft
	}

	now := s.now().UTC()
	id := s.store.Posts.NextID(0)
	post := &entity.BlogPost{
		ID:        id,
		Slug:      util.UniqueSlug(input.Title, id, s.slugTaken),
		Title:     input.Title,
		Excerpt:   input.Excerpt,
		Content:   input.Content,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if status == entity.PostPublished {
		post.PublishedAt = &now
	}
	s.store.Posts.Insert(post)

	loggerFrom(ctx, s.logger).Info("post created", slog.Int("post_id", id), slog.String("slug", post.Slug))

	return post.Clone(), nil
}

// Update merges the patch. Moving a post to published stamps PublishedAt;
// moving it back to draft keeps the original stamp.
func (s *blogService) Update(_ context.Context, patch usecase.PostPatch) (*entity.BlogPost, error) {
	post, ok := s.store.Posts.Find(patch.ID)
	if !ok {
		return nil, errors.WithStack(domainerrors.ErrPostNotFound.WithDetails(strconv.Itoa(patch.ID)))
	}

	now := s.now().UTC()
	set(&post.Title, patch.Title)
	set(&post.Excerpt, patch.Excerpt)
	set(&post.Content, patch.Content)
	if patch.Status != nil {
		next := entity.PostStatus(*patch.Status)
		if next == entity.PostPublished && post.Status != entity.PostPublished {
			post.PublishedAt = &now
		}
		post.Status = next
	}
	post.UpdatedAt = now

	return post.Clone(), nil
}

func (s *blogService) Delete(ctx context.Context, id int) error {
	if !s.store.Posts.Remove(id) {
		return errors.WithStack(domainerrors.ErrPostNotFound.WithDetails(strconv.Itoa(id)))
	}

	loggerFrom(ctx, s.logger).Info("post deleted", slog.Int("post_id", id))

	return nil
}

func (s *blogService) Published(_ context.Context) ([]*entity.BlogPost, error) {
	posts := memory.CloneAll(s.store.Posts.Filter(func(p *entity.BlogPost) bool {
		return p.Status == entity.PostPublished
	}))

	slices.SortStableFunc(posts, func(a, b *entity.BlogPost) int {
		return cmp.Compare(publishedUnix(b), publishedUnix(a))
	})

	return posts, nil
}

func (s *blogService) Read(_ context.Context, slug string) (*entity.BlogPost, error) {
	post, err := s.published(slug)
	if err != nil {
		return nil, err
	}
	post.Views++

	return post.Clone(), nil
}

func (s *blogService) Like(_ context.Context, slug string) (int, error) {
	post, err := s.published(slug)
	if err != nil {
		return 0, err
	}
	post.Likes++

	return post.Likes, nil
}

func (s *blogService) published(slug string) (*entity.BlogPost, error) {
	post, ok := lo.Find(s.store.Posts.All(), func(p *entity.BlogPost) bool {
		return p.Slug == slug && p.Status == entity.PostPublished
	})
	if !ok {
		return nil, errors.WithStack(domainerrors.ErrPostNotFound.WithDetails(slug))
	}

	return post, nil
}

func (s *blogService) slugTaken(slug string) bool {
	return lo.ContainsBy(s.store.Posts.All(), func(p *entity.BlogPost) bool { return p.Slug == slug })
}

func publishedUnix(p *entity.BlogPost) int64 {
	if p.PublishedAt == nil {
		return 0
	}

	return p.PublishedAt.Unix()
}
