package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/enescc00/b2bsitesibitmis-sub001/internal/application/dto"
	"github.com/enescc00/b2bsitesibitmis-sub001/internal/application/pricelist"
)

// PriceListHandler serves price list administration (admin only).
type PriceListHandler struct {
	uc *pricelist.UseCase
}

func NewPriceListHandler(uc *pricelist.UseCase) *PriceListHandler {
	return &PriceListHandler{uc: uc}
}

func (h *PriceListHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePriceListRequest
	if err := c.BodyParser(&in); err != nil {
		return writeBadBody(c)
	}
	if ok, resp := checkBody(c, in); !ok {
		return resp
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *PriceListHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return writeNotFound(c, "price list not found")
	}
	return c.JSON(out)
}

func (h *PriceListHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return writeBadBody(c)
	}
	page.DefaultPage()
	out, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h *PriceListHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePriceListRequest
	if err := c.BodyParser(&in); err != nil {
		return writeBadBody(c)
	}
	if ok, resp := checkBody(c, in); !ok {
		return resp
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return writeNotFound(c, "price list not found")
	}
	return c.JSON(out)
}

// SetDefault marks the list as the system-wide fallback.
func (h *PriceListHandler) SetDefault(c *fiber.Ctx) error {
	if err := h.uc.SetDefault(c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *PriceListHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
