package serializers

import (
	"context"

	"fireside/internal/models"
	"fireside/internal/repository"
)

// CommentIn is the inbound comment representation. UserComment is read-only;
// the author is always the authenticated caller. Post names the parent post.
type CommentIn struct {
	Text        string `json:"text" validate:"required,max=100"`
	UserComment uint   `json:"userComment"`
	Post        uint   `json:"post" validate:"required"`
}

// CommentRep is the outbound comment representation.
type CommentRep struct {
	ID          uint   `json:"id"`
	Text        string `json:"text"`
	UserComment uint   `json:"userComment"`
	Post        uint   `json:"post"`
}

// CommentSerializer maps comments to and from their external representation.
type CommentSerializer struct {
	repo repository.CommentRepository
}

// NewCommentSerializer returns a serializer backed by the given repository.
func NewCommentSerializer(repo repository.CommentRepository) *CommentSerializer {
	return &CommentSerializer{repo: repo}
}

// Inbound validates and persists a new comment authored by the caller. A
// missing parent post surfaces as a constraint violation from storage.
func (s *CommentSerializer) Inbound(ctx context.Context, callerID uint, in CommentIn) (*models.Comment, error) {
	if err := validateInbound(in); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		Text:      in.Text,
		AccountID: callerID,
		PostID:    in.Post,
	}

	if err := s.repo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// Outbound derives the external representation of a stored comment.
func (s *CommentSerializer) Outbound(comment *models.Comment) CommentRep {
	return CommentRep{
		ID:          comment.ID,
		Text:        comment.Text,
		UserComment: comment.AccountID,
		Post:        comment.PostID,
	}
}
