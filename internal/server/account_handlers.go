package server

import (
	"fireside/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetMyAccount handles GET /api/accounts/me
func (s *Server) GetMyAccount(c *fiber.Ctx) error {
	account, err := s.accountRepo.GetByID(c.Context(), callerID(c))
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.JSON(s.accountSerializer.Outbound(account))
}

// DeleteMyAccount handles DELETE /api/accounts/me. The storage engine
// cascades the delete to the profile, posts and comments owned by the
// account, and removes its like rows.
func (s *Server) DeleteMyAccount(c *fiber.Ctx) error {
	if err := s.accountRepo.Delete(c.Context(), callerID(c)); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
