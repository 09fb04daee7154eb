package server

import (
	"net/http"
	"testing"

	"blogwave/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetComments_Visibility(t *testing.T) {
	s, mocks := newTestServer()
	app := fiber.New()
	app.Get("/api/posts/:id/comments", s.GetComments)

	post := &models.Post{ID: 1, AuthorID: 10, Status: models.PostStatusPublished}
	mocks.postRepo.On("GetByID", mock.Anything, uint(1)).Return(post, nil)

	approvedOnly := []*models.Comment{
		{ID: 1, PostID: 1, AuthorID: 3, Content: "Great read", Status: models.CommentStatusApproved},
	}
	everything := append(approvedOnly, &models.Comment{
		ID: 2, PostID: 1, AuthorID: 4, Content: "spammy", Status: models.CommentStatusPending,
	})
	mocks.commentRepo.On("ListByPost", mock.Anything, uint(1), models.CommentStatusApproved).
		Return(approvedOnly, nil)
	mocks.commentRepo.On("ListByPost", mock.Anything, uint(1), "").
		Return(everything, nil)

	t.Run("anonymous readers see approved only", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(t, http.MethodGet, "/api/posts/1/comments", nil, ""))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var comments []models.Comment
		decodeBody(t, resp, &comments)
		require.Len(t, comments, 1)
		assert.Equal(t, models.CommentStatusApproved, comments[0].Status)
	})

	t.Run("post author sees every status", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(t, http.MethodGet, "/api/posts/1/comments", nil,
			bearerFor(t, s, 10, "owner")))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var comments []models.Comment
		decodeBody(t, resp, &comments)
		assert.Len(t, comments, 2)
	})

	t.Run("other authenticated users see approved only", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(t, http.MethodGet, "/api/posts/1/comments", nil,
			bearerFor(t, s, 3, "reader")))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var comments []models.Comment
		decodeBody(t, resp, &comments)
		assert.Len(t, comments, 1)
	})
}

func TestCreateComment(t *testing.T) {
	s, mocks := newTestServer()
	app := fiber.New()
	app.Post("/api/posts/:id/comments", s.AuthRequired(), s.CreateComment)
	token := bearerFor(t, s, 3, "reader")

	open := &models.Post{ID: 1, AuthorID: 10, Status: models.PostStatusPublished}
	closed := false
	noComments := &models.Post{ID: 2, AuthorID: 10, Status: models.PostStatusPublished, AllowComments: &closed}
	mocks.postRepo.On("GetByID", mock.Anything, uint(1)).Return(open, nil)
	mocks.postRepo.On("GetByID", mock.Anything, uint(2)).Return(noComments, nil)

	mocks.commentRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Comment")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*models.Comment).ID = 42
		}).
		Return(nil)
	mocks.commentRepo.On("GetByID", mock.Anything, uint(42)).
		Return(&models.Comment{
			ID: 42, PostID: 1, AuthorID: 3,
			Content: "Nice post", Status: models.CommentStatusPending,
			Author: &models.User{ID: 3, Username: "reader"},
		}, nil)

	t.Run("requires authentication", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/posts/1/comments",
			fiber.Map{"content": "Nice post"}, ""))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("comments disabled is 403", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/posts/2/comments",
			fiber.Map{"content": "Nice post"}, token))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})

	t.Run("blank content is 400", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/posts/1/comments",
			fiber.Map{"content": "   "}, token))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("new comments start pending", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/posts/1/comments",
			fiber.Map{"content": "Nice post"}, token))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

		var comment models.Comment
		decodeBody(t, resp, &comment)
		assert.Equal(t, uint(42), comment.ID)
		assert.Equal(t, models.CommentStatusPending, comment.Status)
		require.NotNil(t, comment.Author)
		assert.Equal(t, "reader", comment.Author.Username)
	})
}

func TestUpdateCommentStatus(t *testing.T) {
	s, mocks := newTestServer()
	app := fiber.New()
	app.Put("/api/comments/:id/status", s.AuthRequired(), s.UpdateCommentStatus)

	comment := &models.Comment{ID: 7, PostID: 1, AuthorID: 3, Status: models.CommentStatusPending}
	post := &models.Post{ID: 1, AuthorID: 10, Status: models.PostStatusPublished}
	mocks.commentRepo.On("GetByID", mock.Anything, uint(7)).Return(comment, nil)
	mocks.postRepo.On("GetByID", mock.Anything, uint(1)).Return(post, nil)
	mocks.commentRepo.On("UpdateStatus", mock.Anything, uint(7), models.CommentStatusApproved).
		Return(&models.Comment{ID: 7, PostID: 1, AuthorID: 3, Status: models.CommentStatusApproved}, nil)

	ownerToken := bearerFor(t, s, 10, "owner")

	t.Run("invalid status is 400", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(t, http.MethodPut, "/api/comments/7/status",
			fiber.Map{"status": "deleted"}, ownerToken))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("comment author cannot moderate", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(t, http.MethodPut, "/api/comments/7/status",
			fiber.Map{"status": "approved"}, bearerFor(t, s, 3, "reader")))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})

	t.Run("post author approves", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(t, http.MethodPut, "/api/comments/7/status",
			fiber.Map{"status": "approved"}, ownerToken))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var updated models.Comment
		decodeBody(t, resp, &updated)
		assert.Equal(t, models.CommentStatusApproved, updated.Status)
	})
}

func TestDeleteComment(t *testing.T) {
	s, mocks := newTestServer()
	app := fiber.New()
	app.Delete("/api/comments/:id", s.AuthRequired(), s.DeleteComment)

	comment := &models.Comment{ID: 7, PostID: 1, AuthorID: 3, Status: models.CommentStatusApproved}
	post := &models.Post{ID: 1, AuthorID: 10, Status: models.PostStatusPublished}
	mocks.commentRepo.On("GetByID", mock.Anything, uint(7)).Return(comment, nil)
	mocks.postRepo.On("GetByID", mock.Anything, uint(1)).Return(post, nil)
	mocks.commentRepo.On("Delete", mock.Anything, uint(7)).Return(nil)

	t.Run("stranger is 403", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(t, http.MethodDelete, "/api/comments/7", nil,
			bearerFor(t, s, 4, "stranger")))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
		mocks.commentRepo.AssertNotCalled(t, "Delete", mock.Anything, uint(7))
	})

	t.Run("comment author is 204", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(t, http.MethodDelete, "/api/comments/7", nil,
			bearerFor(t, s, 3, "reader")))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	})

	t.Run("post author is 204", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(t, http.MethodDelete, "/api/comments/7", nil,
			bearerFor(t, s, 10, "owner")))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	})
}

func TestGetUserComments(t *testing.T) {
	s, mocks := newTestServer()
	app := fiber.New()
	app.Get("/api/user/comments", s.AuthRequired(), s.GetUserComments)

	mocks.commentRepo.On("ListByAuthor", mock.Anything, uint(3)).
		Return([]*models.Comment{{ID: 1, AuthorID: 3, Content: "mine"}}, nil)

	resp, err := app.Test(jsonRequest(t, http.MethodGet, "/api/user/comments", nil,
		bearerFor(t, s, 3, "reader")))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var comments []models.Comment
	decodeBody(t, resp, &comments)
	require.Len(t, comments, 1)
	assert.Equal(t, uint(3), comments[0].AuthorID)
}
