package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/enescc00/b2bsitesibitmis-sub001/internal/application/customers"
	"github.com/enescc00/b2bsitesibitmis-sub001/internal/application/dto"
	"github.com/enescc00/b2bsitesibitmis-sub001/internal/application/ledger"
	"github.com/enescc00/b2bsitesibitmis-sub001/internal/domain/entity"
)

// CustomerHandler serves customer accounts and their ledgers. Sales reps
// see only their assigned portfolio; customers reach only their own
// record and statement.
type CustomerHandler struct {
	uc       *customers.UseCase
	ledgerUC *ledger.UseCase
}

func NewCustomerHandler(uc *customers.UseCase, ledgerUC *ledger.UseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc, ledgerUC: ledgerUC}
}

func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if denied, resp := h.denyForeign(c, id); denied {
		return resp
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return writeNotFound(c, "customer not found")
	}
	return c.JSON(out)
}

func (h *CustomerHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return writeBadBody(c)
	}
	page.DefaultPage()
	salesRepID := ""
	if GetRole(c) == entity.RoleSalesRep {
		salesRepID = GetUserID(c)
	}
	out, err := h.uc.List(salesRepID, page.Limit, page.Offset)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update changes commercial data (price list, payment terms, sales rep).
// Admin only, enforced in the router.
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCustomerRequest
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
		return writeNotFound(c, "customer not found")
	}
	return c.JSON(out)
}

// Ledger returns the customer's statement: running balance plus entries.
func (h *CustomerHandler) Ledger(c *fiber.Ctx) error {
	id := c.Params("id")
	if denied, resp := h.denyForeign(c, id); denied {
		return resp
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return writeBadBody(c)
	}
	page.DefaultPage()
	out, err := h.ledgerUC.Statement(id, page.Limit, page.Offset)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// RecordPayment credits a received payment to the customer's account.
// Admin only, enforced in the router.
func (h *CustomerHandler) RecordPayment(c *fiber.Ctx) error {
	var in dto.RecordPaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return writeBadBody(c)
	}
	if ok, resp := checkBody(c, in); !ok {
		return resp
	}
	out, err := h.ledgerUC.RecordPayment(c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// denyForeign blocks customer-role callers from other customers' records.
func (h *CustomerHandler) denyForeign(c *fiber.Ctx, id string) (bool, error) {
	if GetRole(c) == entity.RoleCustomer && GetCustomerID(c) != id {
		return true, c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "not your account"})
	}
	return false, nil
}
