package server

import (
	"fireside/internal/models"
	"fireside/internal/serializers"
	"fireside/internal/storage"

	"github.com/gofiber/fiber/v2"
)

// CreatePost handles POST /api/posts
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req serializers.PostIn
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postSerializer.Inbound(c.Context(), callerID(c), req)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.Status(fiber.StatusCreated).JSON(s.postSerializer.Outbound(post))
}

// GetPosts handles GET /api/posts
func (s *Server) GetPosts(c *fiber.Ctx) error {
	page := parsePagination(c, 20)

	posts, err := s.postRepo.List(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	reps := make([]serializers.PostRep, 0, len(posts))
	for _, post := range posts {
		reps = append(reps, s.postSerializer.Outbound(post))
	}
	return c.JSON(reps)
}

// GetPost handles GET /api/posts/:id
func (s *Server) GetPost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postRepo.GetByID(c.Context(), id)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.JSON(s.postSerializer.Outbound(post))
}

// GetAccountPosts handles GET /api/accounts/:id/posts
func (s *Server) GetAccountPosts(c *fiber.Ctx) error {
	accountID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	page := parsePagination(c, 20)

	posts, err := s.postRepo.ListByAccount(c.Context(), accountID, page.Limit, page.Offset)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	reps := make([]serializers.PostRep, 0, len(posts))
	for _, post := range posts {
		reps = append(reps, s.postSerializer.Outbound(post))
	}
	return c.JSON(reps)
}

// UpdatePost handles PUT /api/posts/:id
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req serializers.PostIn
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postSerializer.Update(c.Context(), callerID(c), postID, req)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.JSON(s.postSerializer.Outbound(post))
}

// DeletePost handles DELETE /api/posts/:id. Comments on the post are
// cascade-deleted by the storage engine; the author account is untouched.
func (s *Server) DeletePost(c *fiber.Ctx) error {
	ctx := c.Context()
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}
	if post.AccountID != callerID(c) {
		return models.RespondWithError(c, fiber.StatusForbidden,
			models.NewUnauthorizedError("Only the author can delete this post"))
	}

	if err := s.postRepo.Delete(ctx, postID); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// LikePost handles POST /api/posts/:id/like
func (s *Server) LikePost(c *fiber.Ctx) error {
	ctx := c.Context()
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	if err := s.postRepo.Like(ctx, postID, callerID(c)); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}
	return c.JSON(s.postSerializer.Outbound(post))
}

// UnlikePost handles DELETE /api/posts/:id/like
func (s *Server) UnlikePost(c *fiber.Ctx) error {
	ctx := c.Context()
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.postRepo.Unlike(ctx, postID, callerID(c)); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}
	return c.JSON(s.postSerializer.Outbound(post))
}

// UploadPostImage handles POST /api/posts/:id/image. The storage path is
// derived from the post's ID and title plus the original file extension.
func (s *Server) UploadPostImage(c *fiber.Ctx) error {
	ctx := c.Context()
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}
	if post.AccountID != callerID(c) {
		return models.RespondWithError(c, fiber.StatusForbidden,
			models.NewUnauthorizedError("Only the author can modify this post"))
	}

	fileHeader, err := c.FormFile("img")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Image file is required", "img"))
	}

	src, err := fileHeader.Open()
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Cannot read uploaded file", "img"))
	}
	defer src.Close()

	path := storage.PostImagePath(post.ID, post.Title, fileHeader.Filename)
	if err := s.media.Save(ctx, path, src, fileHeader.Size, fileHeader.Header.Get("Content-Type")); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	post.Img = path
	if err := s.postRepo.Update(ctx, post); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(s.postSerializer.Outbound(post))
}
