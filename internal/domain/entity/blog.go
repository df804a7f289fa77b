package entity

import "time"

// PostStatus is the publication state of a blog post.
type PostStatus string

const (
	PostDraft     PostStatus = "borrador"
	PostPublished PostStatus = "publicado"
)

// IsValid checks if the status is one of the listed values.
func (s PostStatus) IsValid() bool {
	return s == PostDraft || s == PostPublished
}

// BlogPost is a health article. Slug is unique across posts.
type BlogPost struct {
	ID          int        `json:"id"`
	Slug        string     `json:"slug"`
	Title       string     `json:"titulo"`
	Excerpt     string     `json:"extracto"`
	Content     string     `json:"contenido"`
	Status      PostStatus `json:"estado"`
	Views       int        `json:"vistas"`
	Likes       int        `json:"likes"`
	CreatedAt   time.Time  `json:"creado_en"`
	UpdatedAt   time.Time  `json:"actualizado_en"`
	PublishedAt *time.Time `json:"publicado_en"`
}

func (p *BlogPost) GetID() int { return p.ID }

func (p *BlogPost) Clone() *BlogPost {
	c := *p
	if p.PublishedAt != nil {
		t := *p.PublishedAt
		c.PublishedAt = &t
	}

	return &c
}
