package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/enescc00/b2bsitesibitmis-sub001/internal/application/costing"
	"github.com/enescc00/b2bsitesibitmis-sub001/internal/application/dto"
)

// CostingHandler serves manufacturing cost estimation (admin only).
type CostingHandler struct {
	uc *costing.UseCase
}

func NewCostingHandler(uc *costing.UseCase) *CostingHandler {
	return &CostingHandler{uc: uc}
}

func (h *CostingHandler) Estimate(c *fiber.Ctx) error {
	var in dto.EstimateCostRequest
	if err := c.BodyParser(&in); err != nil {
		return writeBadBody(c)
	}
	if ok, resp := checkBody(c, in); !ok {
		return resp
	}
	out, err := h.uc.Estimate(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
