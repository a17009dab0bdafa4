package server

import (
	"fireside/internal/models"
	"fireside/internal/serializers"
	"fireside/internal/storage"

	"github.com/gofiber/fiber/v2"
)

// CreateProfile handles POST /api/profiles
func (s *Server) CreateProfile(c *fiber.Ctx) error {
	var req serializers.ProfileIn
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	profile, err := s.profileSerializer.Inbound(c.Context(), callerID(c), req)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.Status(fiber.StatusCreated).JSON(s.profileSerializer.Outbound(profile))
}

// GetMyProfile handles GET /api/profiles/me
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	profile, err := s.profileRepo.GetByAccountID(c.Context(), callerID(c))
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.JSON(s.profileSerializer.Outbound(profile))
}

// UpdateMyProfile handles PUT /api/profiles/me
func (s *Server) UpdateMyProfile(c *fiber.Ctx) error {
	var req serializers.ProfileIn
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	profile, err := s.profileSerializer.Update(c.Context(), callerID(c), req)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.JSON(s.profileSerializer.Outbound(profile))
}

// GetProfiles handles GET /api/profiles
func (s *Server) GetProfiles(c *fiber.Ctx) error {
	page := parsePagination(c, 20)

	profiles, err := s.profileRepo.List(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	reps := make([]serializers.ProfileRep, 0, len(profiles))
	for i := range profiles {
		reps = append(reps, s.profileSerializer.Outbound(&profiles[i]))
	}
	return c.JSON(reps)
}

// UploadAvatar handles POST /api/profiles/me/avatar. The storage path is
// derived from the owning account's ID and the profile nickname plus the
// original file extension; a repeated upload overwrites the previous file.
func (s *Server) UploadAvatar(c *fiber.Ctx) error {
	ctx := c.Context()
	caller := callerID(c)

	profile, err := s.profileRepo.GetByAccountID(ctx, caller)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
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

	path := storage.AvatarPath(profile.AccountID, profile.NickName, fileHeader.Filename)
	if err := s.media.Save(ctx, path, src, fileHeader.Size, fileHeader.Header.Get("Content-Type")); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	profile.Img = path
	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(s.profileSerializer.Outbound(profile))
}
