package handler

import (
	"errors"

	"go-productos-api/internal/repository"
	"go-productos-api/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ProductHandler maps store outcomes to transport statuses. The mapping is
// deliberately asymmetric and must stay that way: create/update report store
// failure as 400 (client-caused), get/delete as 500, and an absent record is
// always 404 no matter which operation hit it.
type ProductHandler struct {
	service service.ProductService
}

func NewProductHandler(s service.ProductService) *ProductHandler {
	return &ProductHandler{service: s}
}

// getUserID extracts the authenticated caller's id set by RequireAuth.
func getUserID(c *fiber.Ctx) string {
	userID := c.Locals("user_id")
	if userID == nil {
		return ""
	}
	return userID.(string)
}

// CreateProduct handles POST /productos. The owner comes from the token, so
// any ownerId in the body is ignored. All store failures here are treated as
// malformed input.
func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	var req service.CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid JSON"})
	}

	product, err := h.service.CreateProduct(&req, getUserID(c))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"message": err.Error()})
	}

	return c.Status(201).JSON(product)
}

// GetAllProductsUser handles GET /productos/:ownerId. An owner with no
// products gets 200 and an empty list, never 404.
func (h *ProductHandler) GetAllProductsUser(c *fiber.Ctx) error {
	ownerID := c.Params("ownerId")

	products, err := h.service.GetAllProductsUser(ownerID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"message": err.Error()})
	}

	return c.JSON(products)
}

// GetProductById handles GET /producto/:id. There is no ownership filter:
// any authenticated caller can read any product by id. Carried over from the
// base design on purpose; see DESIGN.md before changing it.
func (h *ProductHandler) GetProductById(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		// An unparseable id cannot name a stored record
		return c.Status(404).JSON(fiber.Map{"message": "Product not found"})
	}

	product, err := h.service.GetProductByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return c.Status(404).JSON(fiber.Map{"message": "Product not found"})
		}
		return c.Status(500).JSON(fiber.Map{"message": err.Error()})
	}

	return c.JSON(product)
}

// UpdateProduct handles PUT /productos/:id. A missing record is 404; a
// rejected patch is 400. The store keeps those two outcomes distinguishable.
func (h *ProductHandler) UpdateProduct(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid product ID"})
	}

	var patch service.UpdateProductRequest
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid JSON"})
	}

	updated, err := h.service.UpdateProduct(id, &patch)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return c.Status(404).JSON(fiber.Map{"message": "Product not found"})
		}
		return c.Status(400).JSON(fiber.Map{"message": err.Error()})
	}

	return c.JSON(updated)
}

// DeleteProduct handles DELETE /productos/:id and returns the removed record
// so clients can show a confirmation. A repeat delete of the same id is 404.
func (h *ProductHandler) DeleteProduct(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"message": "Product not found"})
	}

	removed, err := h.service.DeleteProduct(id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return c.Status(404).JSON(fiber.Map{"message": "Product not found"})
		}
		return c.Status(500).JSON(fiber.Map{"message": err.Error()})
	}

	return c.JSON(removed)
}
