package usecase

import (
	"context"

	"telemock/internal/domain/entity"
)

// PostFilter narrows admin listings. Query matches title, excerpt or content,
// case-insensitively.
type PostFilter struct {
	Status entity.PostStatus
	Query  string
}

// CreatePostInput drafts or publishes a post.
type CreatePostInput struct {
	Title   string `mapstructure:"titulo" validate:"required"`
	Excerpt string `mapstructure:"extracto"`
	Content string `mapstructure:"contenido"`
	Status  string `mapstructure:"estado" validate:"omitempty,oneof=borrador publicado"`
}

// PostPatch is a merge-patch on a post. The slug never changes.
type PostPatch struct {
	ID      int     `mapstructure:"id" validate:"required"`
	Title   *string `mapstructure:"titulo" validate:"omitempty,min=1"`
	Excerpt *string `mapstructure:"extracto"`
	Content *string `mapstructure:"contenido"`
	Status  *string `mapstructure:"estado" validate:"omitempty,oneof=borrador publicado"`
}

// BlogUsecase manages posts for admins and readers.
type BlogUsecase interface {
	List(ctx context.Context, filter PostFilter) ([]*entity.BlogPost, error)
	Create(ctx context.Context, input CreatePostInput) (*entity.BlogPost, error)
	Update(ctx context.Context, patch PostPatch) (*entity.BlogPost, error)
	Delete(ctx context.Context, id int) error
	// Published lists posts readers can see, newest first.
	Published(ctx context.Context) ([]*entity.BlogPost, error)
	// Read returns a published post by slug and counts the view.
	Read(ctx context.Context, slug string) (*entity.BlogPost, error)
	// Like counts a like on a published post and returns the new total.
	Like(ctx context.Context, slug string) (int, error)
}
