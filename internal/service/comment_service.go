package service

import (
	"context"
	"strings"

	"blogwave/internal/models"
	"blogwave/internal/observability"
	"blogwave/internal/repository"
)

const maxCommentLen = 10000

type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
}

func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

type CreateCommentInput struct {
	UserID   uint
	PostID   uint
	Content  string
	ParentID *uint
}

func (s *CommentService) CreateComment(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return nil, err
	}
	if !post.CommentsAllowed() {
		return nil, models.NewForbiddenError("Comments are disabled for this post")
	}

	if strings.TrimSpace(in.Content) == "" {
		return nil, models.NewValidationError("Comment content is required")
	}
	if len(in.Content) > maxCommentLen {
		return nil, models.NewValidationError("Comment too long (max 10000 characters)")
	}

	if in.ParentID != nil {
		parent, err := s.commentRepo.GetByID(ctx, *in.ParentID)
		if err != nil {
			return nil, models.NewValidationError("Parent comment not found")
		}
		if parent.PostID != in.PostID {
			return nil, models.NewValidationError("Parent comment belongs to a different post")
		}
	}

	comment := &models.Comment{
		Content:  in.Content,
		PostID:   in.PostID,
		AuthorID: in.UserID,
		Status:   models.CommentStatusPending,
		ParentID: in.ParentID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return s.commentRepo.GetByID(ctx, comment.ID)
}

// ListComments returns a post's comments. The post author sees every status;
// everyone else sees approved comments only.
func (s *CommentService) ListComments(ctx context.Context, postID uint, currentUserID uint) ([]*models.Comment, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	status := models.CommentStatusApproved
	if currentUserID != 0 && currentUserID == post.AuthorID {
		status = ""
	}
	return s.commentRepo.ListByPost(ctx, postID, status)
}

type UpdateCommentStatusInput struct {
	UserID    uint
	CommentID uint
	Status    string
}

// UpdateCommentStatus moderates a comment. Only the parent post's author may
// change a comment's status.
func (s *CommentService) UpdateCommentStatus(ctx context.Context, in UpdateCommentStatusInput) (*models.Comment, error) {
	if !models.ValidCommentStatus(in.Status) {
		return nil, models.NewValidationError("status must be one of pending, approved, rejected, spam")
	}

	comment, err := s.commentRepo.GetByID(ctx, in.CommentID)
	if err != nil {
		return nil, err
	}
	post, err := s.postRepo.GetByID(ctx, comment.PostID)
	if err != nil {
		return nil, err
	}
	if post.AuthorID != in.UserID {
		return nil, models.NewForbiddenError("Only the post author can moderate comments")
	}

	updated, err := s.commentRepo.UpdateStatus(ctx, in.CommentID, in.Status)
	if err != nil {
		return nil, err
	}
	observability.CommentModerations.WithLabelValues(in.Status).Inc()
	return updated, nil
}

// DeleteComment removes a comment. Allowed for the parent post's author and
// for the comment's own author.
func (s *CommentService) DeleteComment(ctx context.Context, userID, commentID uint) error {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	post, err := s.postRepo.GetByID(ctx, comment.PostID)
	if err != nil {
		return err
	}
	if userID != comment.AuthorID && userID != post.AuthorID {
		return models.NewForbiddenError("You cannot delete this comment")
	}
	return s.commentRepo.Delete(ctx, commentID)
}

// ListUserComments returns every comment the user has written, newest first.
func (s *CommentService) ListUserComments(ctx context.Context, userID uint) ([]*models.Comment, error) {
	return s.commentRepo.ListByAuthor(ctx, userID)
}
