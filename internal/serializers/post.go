package serializers

import (
	"context"

	"fireside/internal/models"
	"fireside/internal/repository"
)

// PostIn is the inbound post representation. UserPost is read-only; the
// author is always the authenticated caller.
type PostIn struct {
	Title    string `json:"title" validate:"required,max=100"`
	UserPost uint   `json:"userPost"`
	Img      string `json:"img"`
}

// PostRep is the outbound post representation. Liked enumerates the IDs of
// the accounts that liked the post.
type PostRep struct {
	ID        uint   `json:"id"`
	Title     string `json:"title"`
	UserPost  uint   `json:"userPost"`
	CreatedOn string `json:"created_on"`
	Img       string `json:"img"`
	Liked     []uint `json:"liked"`
}

// PostSerializer maps posts to and from their external representation.
type PostSerializer struct {
	repo repository.PostRepository
}

// NewPostSerializer returns a serializer backed by the given repository.
func NewPostSerializer(repo repository.PostRepository) *PostSerializer {
	return &PostSerializer{repo: repo}
}

// Inbound validates and persists a new post authored by the caller. Any
// caller-supplied userPost value is ignored.
func (s *PostSerializer) Inbound(ctx context.Context, callerID uint, in PostIn) (*models.Post, error) {
	if err := validateInbound(in); err != nil {
		return nil, err
	}

	post := &models.Post{
		Title:     in.Title,
		AccountID: callerID,
	}
	if PostFields.Writable("img") {
		post.Img = in.Img
	}

	if err := s.repo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// Update validates and applies writable fields to an existing post. Only the
// author may update; ownership is checked against the caller.
func (s *PostSerializer) Update(ctx context.Context, callerID, postID uint, in PostIn) (*models.Post, error) {
	if err := validateInbound(in); err != nil {
		return nil, err
	}

	post, err := s.repo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.AccountID != callerID {
		return nil, models.NewUnauthorizedError("Only the author can modify this post")
	}

	post.Title = in.Title
	if PostFields.Writable("img") && in.Img != "" {
		post.Img = in.Img
	}

	if err := s.repo.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// Outbound derives the external representation of a stored post.
func (s *PostSerializer) Outbound(post *models.Post) PostRep {
	liked := make([]uint, 0, len(post.Liked))
	for _, account := range post.Liked {
		liked = append(liked, account.ID)
	}

	return PostRep{
		ID:        post.ID,
		Title:     post.Title,
		UserPost:  post.AccountID,
		CreatedOn: post.CreatedOn.Format(dateLayout),
		Img:       post.Img,
		Liked:     liked,
	}
}
