// Package service contains business logic and the authorization policy.
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"blogwave/internal/cache"
	"blogwave/internal/models"
	"blogwave/internal/observability"
	"blogwave/internal/repository"
	"blogwave/internal/validation"

	"gorm.io/gorm"
)

const (
	maxTitleLen   = 255
	maxExcerptLen = 500

	// publishedPageSize is the row count cached for the published feed's first
	// page. Requests with a smaller limit slice the cached page, so one key
	// serves every limit and invalidation stays a single DEL.
	publishedPageSize = 100
)

type PostService struct {
	postRepo repository.PostRepository
}

func NewPostService(postRepo repository.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

type CreatePostInput struct {
	AuthorID        uint
	Title           string
	Content         string
	Excerpt         string
	Slug            string
	Status          string
	Category        string
	FeaturedImage   string
	Tags            string
	MetaTitle       string
	MetaDescription string
	AllowComments   *bool
}

// UpdatePostInput carries a partial update; nil fields are left untouched.
type UpdatePostInput struct {
	UserID          uint
	PostID          uint
	Title           *string
	Content         *string
	Excerpt         *string
	Slug            *string
	Status          *string
	Category        *string
	FeaturedImage   *string
	Tags            *string
	MetaTitle       *string
	MetaDescription *string
	AllowComments   *bool
}

type ListPostsInput struct {
	AuthorID      *uint
	Status        string
	Limit         int
	Offset        int
	CurrentUserID uint
}

func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	fields := map[string]string{}
	if strings.TrimSpace(in.Title) == "" {
		fields["title"] = "title is required"
	} else if len(in.Title) > maxTitleLen {
		fields["title"] = "title must not exceed 255 characters"
	}
	if strings.TrimSpace(in.Content) == "" {
		fields["content"] = "content is required"
	}
	if len(in.Excerpt) > maxExcerptLen {
		fields["excerpt"] = "excerpt must not exceed 500 characters"
	}
	if err := validation.ValidateSlug(in.Slug); err != nil {
		fields["slug"] = err.Error()
	}

	status := in.Status
	if status == "" {
		status = models.PostStatusDraft
	}
	if !models.ValidPostStatus(status) {
		fields["status"] = "status must be one of draft, published, archived"
	}
	if len(fields) > 0 {
		return nil, models.NewFieldValidationError(fields)
	}

	if err := s.checkSlugAvailable(ctx, in.Slug); err != nil {
		return nil, err
	}

	post := &models.Post{
		Title:           in.Title,
		Content:         in.Content,
		Excerpt:         in.Excerpt,
		Slug:            in.Slug,
		AuthorID:        in.AuthorID,
		Status:          status,
		Category:        in.Category,
		FeaturedImage:   in.FeaturedImage,
		Tags:            in.Tags,
		MetaTitle:       in.MetaTitle,
		MetaDescription: in.MetaDescription,
		AllowComments:   in.AllowComments,
	}
	if status == models.PostStatusPublished {
		now := time.Now()
		post.PublishedAt = &now
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// ListPublished returns published posts newest first. The first page is served
// through the Redis published-list key.
func (s *PostService) ListPublished(ctx context.Context, limit, offset int) ([]*models.Post, error) {
	filter := repository.PostFilter{Status: models.PostStatusPublished}

	if offset == 0 && limit <= publishedPageSize {
		var page []*models.Post
		err := cache.Aside(ctx, cache.PublishedListKey, &page, cache.PublishedListTTL, func() error {
			var fetchErr error
			page, fetchErr = s.postRepo.List(ctx, filter, publishedPageSize, 0)
			return fetchErr
		})
		if err != nil {
			return nil, err
		}
		if limit < len(page) {
			page = page[:limit]
		}
		return page, nil
	}
	return s.postRepo.List(ctx, filter, limit, offset)
}

// ListPosts applies the caller's filters. Anonymous callers only ever see
// published posts regardless of the requested status.
func (s *PostService) ListPosts(ctx context.Context, in ListPostsInput) ([]*models.Post, error) {
	status := in.Status
	if status != "" && !models.ValidPostStatus(status) {
		return nil, models.NewValidationError("status must be one of draft, published, archived")
	}
	if in.CurrentUserID == 0 {
		status = models.PostStatusPublished
	}
	return s.postRepo.List(ctx, repository.PostFilter{AuthorID: in.AuthorID, Status: status}, in.Limit, in.Offset)
}

// GetPost returns the post and records the view. Hidden posts look identical
// to missing ones for anonymous callers.
func (s *PostService) GetPost(ctx context.Context, id uint, currentUserID uint) (*models.Post, error) {
	var post models.Post
	var err error

	if currentUserID == 0 {
		err = cache.Aside(ctx, cache.PostKey(id), &post, cache.PostTTL, func() error {
			p, fetchErr := s.postRepo.GetByID(ctx, id)
			if fetchErr != nil {
				return fetchErr
			}
			post = *p
			return nil
		})
	} else {
		var p *models.Post
		p, err = s.postRepo.GetByID(ctx, id)
		if err == nil {
			post = *p
		}
	}
	if err != nil {
		return nil, err
	}

	if currentUserID == 0 && !post.Published() {
		return nil, models.NewNotFoundError("Post")
	}

	if err := s.postRepo.IncrementViews(ctx, post.ID); err != nil {
		return nil, err
	}
	observability.PostViews.WithLabelValues("detail").Inc()
	return &post, nil
}

// GetPostBySlug mirrors GetPost for slug lookups.
func (s *PostService) GetPostBySlug(ctx context.Context, slug string, currentUserID uint) (*models.Post, error) {
	var post models.Post
	var err error

	if currentUserID == 0 {
		err = cache.Aside(ctx, cache.PostSlugKey(slug), &post, cache.PostTTL, func() error {
			p, fetchErr := s.postRepo.GetBySlug(ctx, slug)
			if fetchErr != nil {
				return fetchErr
			}
			post = *p
			return nil
		})
	} else {
		var p *models.Post
		p, err = s.postRepo.GetBySlug(ctx, slug)
		if err == nil {
			post = *p
		}
	}
	if err != nil {
		return nil, err
	}

	if currentUserID == 0 && !post.Published() {
		return nil, models.NewNotFoundError("Post")
	}

	if err := s.postRepo.IncrementViews(ctx, post.ID); err != nil {
		return nil, err
	}
	observability.PostViews.WithLabelValues("slug").Inc()
	return &post, nil
}

func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return nil, err
	}
	if post.AuthorID != in.UserID {
		return nil, models.NewForbiddenError("You can only update your own posts")
	}

	fields := map[string]string{}
	if in.Title != nil {
		if strings.TrimSpace(*in.Title) == "" {
			fields["title"] = "title cannot be empty"
		} else if len(*in.Title) > maxTitleLen {
			fields["title"] = "title must not exceed 255 characters"
		}
	}
	if in.Content != nil && strings.TrimSpace(*in.Content) == "" {
		fields["content"] = "content cannot be empty"
	}
	if in.Excerpt != nil && len(*in.Excerpt) > maxExcerptLen {
		fields["excerpt"] = "excerpt must not exceed 500 characters"
	}
	if in.Slug != nil {
		if err := validation.ValidateSlug(*in.Slug); err != nil {
			fields["slug"] = err.Error()
		}
	}
	if in.Status != nil && !models.ValidPostStatus(*in.Status) {
		fields["status"] = "status must be one of draft, published, archived"
	}
	if len(fields) > 0 {
		return nil, models.NewFieldValidationError(fields)
	}

	if in.Slug != nil && *in.Slug != post.Slug {
		if err := s.checkSlugAvailable(ctx, *in.Slug); err != nil {
			return nil, err
		}
		post.Slug = *in.Slug
	}
	if in.Title != nil {
		post.Title = *in.Title
	}
	if in.Content != nil {
		post.Content = *in.Content
	}
	if in.Excerpt != nil {
		post.Excerpt = *in.Excerpt
	}
	if in.Category != nil {
		post.Category = *in.Category
	}
	if in.FeaturedImage != nil {
		post.FeaturedImage = *in.FeaturedImage
	}
	if in.Tags != nil {
		post.Tags = *in.Tags
	}
	if in.MetaTitle != nil {
		post.MetaTitle = *in.MetaTitle
	}
	if in.MetaDescription != nil {
		post.MetaDescription = *in.MetaDescription
	}
	if in.AllowComments != nil {
		post.AllowComments = in.AllowComments
	}
	if in.Status != nil {
		// publishedAt is stamped on the first transition to published and
		// kept on later status changes.
		if *in.Status == models.PostStatusPublished && post.PublishedAt == nil {
			now := time.Now()
			post.PublishedAt = &now
		}
		post.Status = *in.Status
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *PostService) DeletePost(ctx context.Context, userID, postID uint) error {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.AuthorID != userID {
		return models.NewForbiddenError("You can only delete your own posts")
	}
	return s.postRepo.Delete(ctx, postID)
}

// RecordView increments the view counter without any auth check.
func (s *PostService) RecordView(ctx context.Context, postID uint) error {
	if err := s.postRepo.IncrementViews(ctx, postID); err != nil {
		return err
	}
	observability.PostViews.WithLabelValues("endpoint").Inc()
	return nil
}

func (s *PostService) checkSlugAvailable(ctx context.Context, slug string) error {
	_, err := s.postRepo.GetBySlug(ctx, slug)
	if err == nil {
		return models.NewConflictError("A post with this slug already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}
