package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/enescc00/b2bsitesibitmis-sub001/internal/application/dto"
	"github.com/enescc00/b2bsitesibitmis-sub001/internal/application/settings"
)

// SettingsHandler serves the system settings singleton (admin only).
type SettingsHandler struct {
	uc *settings.UseCase
}

func NewSettingsHandler(uc *settings.UseCase) *SettingsHandler {
	return &SettingsHandler{uc: uc}
}

func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get()
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return writeNotFound(c, "settings not configured yet")
	}
	return c.JSON(out)
}

func (h *SettingsHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSettingsRequest
	if err := c.BodyParser(&in); err != nil {
		return writeBadBody(c)
	}
	if ok, resp := checkBody(c, in); !ok {
		return resp
	}
	out, err := h.uc.Update(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
