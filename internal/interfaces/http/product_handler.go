package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/enescc00/b2bsitesibitmis-sub001/internal/application/catalog"
	"github.com/enescc00/b2bsitesibitmis-sub001/internal/application/dto"
	"github.com/enescc00/b2bsitesibitmis-sub001/internal/domain/entity"
	"github.com/enescc00/b2bsitesibitmis-sub001/internal/domain/repository"
)

// ProductHandler serves the catalog. Reads are open to every
// authenticated role; customer callers get prices resolved for their
// account. Writes are admin-only (enforced in the router).
type ProductHandler struct {
	uc *catalog.ProductUseCase
}

func NewProductHandler(uc *catalog.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
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

func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"), h.priceFor(c))
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return writeNotFound(c, "product not found")
	}
	return c.JSON(out)
}

func (h *ProductHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return writeBadBody(c)
	}
	page.DefaultPage()
	filter := repository.ProductFilter{
		CategoryID: c.Query("category_id"),
		Search:     c.Query("search"),
		OnlyActive: GetRole(c) == entity.RoleCustomer || c.QueryBool("only_active", false),
		Limit:      page.Limit,
		Offset:     page.Offset,
	}
	out, err := h.uc.List(filter, h.priceFor(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
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
		return writeNotFound(c, "product not found")
	}
	return c.JSON(out)
}

func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// priceFor returns the customer id whose pricing applies to the request:
// the caller's own account for customer-role tokens, none for staff.
func (h *ProductHandler) priceFor(c *fiber.Ctx) string {
	if GetRole(c) == entity.RoleCustomer {
		return GetCustomerID(c)
	}
	return ""
}
