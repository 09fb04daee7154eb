package server

import (
	"blogwave/internal/models"
	"blogwave/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetAllPosts handles GET /api/posts/all: the public published feed.
func (s *Server) GetAllPosts(c *fiber.Ctx) error {
	p := parsePagination(c, 50)

	posts, err := s.postService.ListPublished(c.Context(), p.Limit, p.Offset)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(posts)
}

// GetPosts handles GET /api/posts with authorId/status filters.
// Anonymous callers only see published posts.
func (s *Server) GetPosts(c *fiber.Ctx) error {
	p := parsePagination(c, 10)
	userID, _ := s.optionalUserID(c)

	var authorID *uint
	if v := c.QueryInt("authorId", 0); v > 0 {
		id := uint(v)
		authorID = &id
	}

	posts, err := s.postService.ListPosts(c.Context(), service.ListPostsInput{
		AuthorID:      authorID,
		Status:        c.Query("status"),
		Limit:         p.Limit,
		Offset:        p.Offset,
		CurrentUserID: userID,
	})
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(posts)
}

// GetPost handles GET /api/posts/:id
func (s *Server) GetPost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	userID, _ := s.optionalUserID(c)

	post, svcErr := s.postService.GetPost(c.Context(), id, userID)
	if svcErr != nil {
		return models.RespondWithAppError(c, svcErr)
	}
	return c.JSON(post)
}

// GetPostBySlug handles GET /api/posts/slug/:slug
func (s *Server) GetPostBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")
	userID, _ := s.optionalUserID(c)

	post, err := s.postService.GetPostBySlug(c.Context(), slug, userID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(post)
}

type postPayload struct {
	Title           string `json:"title"`
	Content         string `json:"content"`
	Excerpt         string `json:"excerpt"`
	Slug            string `json:"slug"`
	Status          string `json:"status"`
	Category        string `json:"category"`
	FeaturedImage   string `json:"featuredImage"`
	Tags            string `json:"tags"`
	MetaTitle       string `json:"metaTitle"`
	MetaDescription string `json:"metaDescription"`
	AllowComments   *bool  `json:"allowComments"`
}

// CreatePost handles POST /api/posts
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req postPayload
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.CreatePost(c.Context(), service.CreatePostInput{
		AuthorID:        currentUserID(c),
		Title:           req.Title,
		Content:         req.Content,
		Excerpt:         req.Excerpt,
		Slug:            req.Slug,
		Status:          req.Status,
		Category:        req.Category,
		FeaturedImage:   req.FeaturedImage,
		Tags:            req.Tags,
		MetaTitle:       req.MetaTitle,
		MetaDescription: req.MetaDescription,
		AllowComments:   req.AllowComments,
	})
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

type updatePostPayload struct {
	Title           *string `json:"title"`
	Content         *string `json:"content"`
	Excerpt         *string `json:"excerpt"`
	Slug            *string `json:"slug"`
	Status          *string `json:"status"`
	Category        *string `json:"category"`
	FeaturedImage   *string `json:"featuredImage"`
	Tags            *string `json:"tags"`
	MetaTitle       *string `json:"metaTitle"`
	MetaDescription *string `json:"metaDescription"`
	AllowComments   *bool   `json:"allowComments"`
}

// UpdatePost handles PUT /api/posts/:id with partial-merge semantics.
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req updatePostPayload
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, svcErr := s.postService.UpdatePost(c.Context(), service.UpdatePostInput{
		UserID:          currentUserID(c),
		PostID:          id,
		Title:           req.Title,
		Content:         req.Content,
		Excerpt:         req.Excerpt,
		Slug:            req.Slug,
		Status:          req.Status,
		Category:        req.Category,
		FeaturedImage:   req.FeaturedImage,
		Tags:            req.Tags,
		MetaTitle:       req.MetaTitle,
		MetaDescription: req.MetaDescription,
		AllowComments:   req.AllowComments,
	})
	if svcErr != nil {
		return models.RespondWithAppError(c, svcErr)
	}
	return c.JSON(post)
}

// DeletePost handles DELETE /api/posts/:id
func (s *Server) DeletePost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if svcErr := s.postService.DeletePost(c.Context(), currentUserID(c), id); svcErr != nil {
		return models.RespondWithAppError(c, svcErr)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// RecordPostView handles POST /api/posts/:id/view
func (s *Server) RecordPostView(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if svcErr := s.postService.RecordView(c.Context(), id); svcErr != nil {
		return models.RespondWithAppError(c, svcErr)
	}
	return c.JSON(fiber.Map{"success": true})
}
