package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/enescc00/b2bsitesibitmis-sub001/internal/application/dto"
	"github.com/enescc00/b2bsitesibitmis-sub001/internal/application/orders"
	"github.com/enescc00/b2bsitesibitmis-sub001/internal/domain/entity"
)

// OrderHandler serves order placement and lifecycle. Customers see only
// their own orders; staff see all.
type OrderHandler struct {
	createUC *orders.CreateOrderUseCase
	uc       *orders.UseCase
}

func NewOrderHandler(createUC *orders.CreateOrderUseCase, uc *orders.UseCase) *OrderHandler {
	return &OrderHandler{createUC: createUC, uc: uc}
}

// Create places an order for the calling customer. Unit prices come from
// the pricing engine, never from the request.
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	customerID := GetCustomerID(c)
	if customerID == "" {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "only customer accounts place orders"})
	}
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return writeBadBody(c)
	}
	if ok, resp := checkBody(c, in); !ok {
		return resp
	}
	out, err := h.createUC.Create(c.Context(), customerID, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"), h.scope(c))
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return writeNotFound(c, "order not found")
	}
	return c.JSON(out)
}

func (h *OrderHandler) List(c *fiber.Ctx) error {
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

// UpdateStatus moves the order through its lifecycle (staff only,
// enforced in the router). Cancelling restocks and credits the ledger.
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateOrderStatusRequest
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
		return writeNotFound(c, "order not found")
	}
	return c.JSON(out)
}

// scope returns the customer id listings are restricted to: the caller's
// own account for customer tokens, unrestricted for staff.
func (h *OrderHandler) scope(c *fiber.Ctx) string {
	if GetRole(c) == entity.RoleCustomer {
		return GetCustomerID(c)
	}
	return ""
}
