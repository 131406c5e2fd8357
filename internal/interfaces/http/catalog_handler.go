package http

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/comanda-eventos/internal/application/dto"
	"github.com/jhoicas/comanda-eventos/internal/application/usecase"
)

// CatalogHandler productos y categorías.
type CatalogHandler struct {
	uc *usecase.CatalogUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// ListProducts godoc
// @Summary      Listar productos
// @Tags         catalog
// @Produce      json
// @Param        category  query  string  false  "Categoría (vacío o Todos = todas)"
// @Success      200  {array}  entity.Product
// @Router       /api/products [get]
func (h *CatalogHandler) ListProducts(c *fiber.Ctx) error {
	return c.JSON(h.uc.ListProducts(c.Query("category")))
}

// CreateProduct godoc
// @Summary      Crear producto
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProductRequest  true  "Datos del producto"
// @Success      201   {object}  entity.Product
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *CatalogHandler) CreateProduct(c *fiber.Ctx) error {
	var in dto.ProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CreateProduct(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateProduct godoc
// @Summary      Actualizar producto
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.ProductRequest  true  "Datos del producto"
// @Success      200   {object}  entity.Product
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id} [put]
func (h *CatalogHandler) UpdateProduct(c *fiber.Ctx) error {
	var in dto.ProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateProduct(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// DeleteProduct godoc
// @Summary      Eliminar producto
// @Tags         catalog
// @Param        id       path   string  true  "ID del producto"
// @Param        confirm  query  bool    true  "Confirmación"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      428  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [delete]
func (h *CatalogHandler) DeleteProduct(c *fiber.Ctx) error {
	if err := h.uc.DeleteProduct(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListCategories godoc
// @Summary      Listar categorías
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  string
// @Router       /api/categories [get]
func (h *CatalogHandler) ListCategories(c *fiber.Ctx) error {
	return c.JSON(h.uc.ListCategories())
}

// CreateCategory godoc
// @Summary      Crear categoría
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CategoryRequest  true  "Nombre"
// @Success      201   {array}   string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/categories [post]
func (h *CatalogHandler) CreateCategory(c *fiber.Ctx) error {
	var in dto.CategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if _, err := h.uc.CreateCategory(c.UserContext(), in.Name); err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(h.uc.ListCategories())
}

// DeleteCategory godoc
// @Summary      Eliminar categoría sin productos
// @Tags         catalog
// @Param        name     path   string  true  "Nombre de la categoría"
// @Param        confirm  query  bool    true  "Confirmación"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      428  {object}  dto.ErrorResponse
// @Router       /api/categories/{name} [delete]
func (h *CatalogHandler) DeleteCategory(c *fiber.Ctx) error {
	name, err := url.PathUnescape(c.Params("name"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre inválido"})
	}
	if err := h.uc.DeleteCategory(c.UserContext(), name); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
