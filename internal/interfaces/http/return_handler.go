package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/enescc00/b2bsitesibitmis-sub001/internal/application/dto"
	"github.com/enescc00/b2bsitesibitmis-sub001/internal/application/returns"
	"github.com/enescc00/b2bsitesibitmis-sub001/internal/domain/entity"
)

// ReturnHandler serves refund requests against delivered orders.
type ReturnHandler struct {
	uc *returns.UseCase
}

func NewReturnHandler(uc *returns.UseCase) *ReturnHandler {
	return &ReturnHandler{uc: uc}
}

// Create opens a return for one of the caller's delivered orders.
func (h *ReturnHandler) Create(c *fiber.Ctx) error {
	customerID := GetCustomerID(c)
	if customerID == "" {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "only customer accounts open returns"})
	}
	var in dto.CreateReturnRequest
	if err := c.BodyParser(&in); err != nil {
		return writeBadBody(c)
	}
	if ok, resp := checkBody(c, in); !ok {
		return resp
	}
	out, err := h.uc.Create(customerID, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *ReturnHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"), h.scope(c))
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return writeNotFound(c, "return not found")
	}
	return c.JSON(out)
}

func (h *ReturnHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return writeBadBody(c)
	}
	page.DefaultPage()
	out, err := h.uc.List(h.scope(c), page.Limit, page.Offset)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// UpdateStatus approves, rejects or completes a return (staff only,
// enforced in the router). Approval credits the customer's ledger.
func (h *ReturnHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateReturnStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return writeBadBody(c)
	}
	if ok, resp := checkBody(c, in); !ok {
		return resp
	}
	out, err := h.uc.UpdateStatus(c.Context(), c.Params("id"), in.Status)
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return writeNotFound(c, "return not found")
	}
	return c.JSON(out)
}

func (h *ReturnHandler) scope(c *fiber.Ctx) string {
	if GetRole(c) == entity.RoleCustomer {
		return GetCustomerID(c)
	}
	return ""
}
