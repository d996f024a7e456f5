package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"finance-tracker/internal/dto"
	apperrors "finance-tracker/internal/errors"
	"finance-tracker/internal/repositories"
	"finance-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// CategoryHandler handles category-related HTTP requests
type CategoryHandler struct {
	categoryService services.CategoryServiceInterface
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(categoryService services.CategoryServiceInterface) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
	}
}

// CreateCategory creates a new spending category
// @Summary Create category
// @Description Create a category with an optional monthly budget. The name is normalized before storage and must be unique.
// @Tags Categories
// @Accept json
// @Produce json
// @Param request body dto.CreateCategoryRequest true "Category payload"
// @Success 201 {object} dto.CategoryResponse "Created category"
// @Failure 409 {object} errors.ErrorResponse "CATEGORY_002 - Name already in use"
// @Failure 422 {object} errors.ErrorResponse "VALIDATION_* - Invalid payload"
// @Router /categories/ [post]
func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	var req dto.CreateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apperrors.ValidationInvalidFormat, apperrors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(&req); err != nil {
		return SendError(c, apperrors.ValidationGeneral, apperrors.WithDetails(formatValidationDetails(err)...))
	}

	category, err := h.categoryService.Create(req)
	if err != nil {
		return h.sendCategoryError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.NewCategoryResponse(category))
}

// ListCategories returns all categories
// @Summary List categories
// @Tags Categories
// @Produce json
// @Success 200 {array} dto.CategoryResponse "All categories"
// @Router /categories/ [get]
func (h *CategoryHandler) ListCategories(c echo.Context) error {
	categories, err := h.categoryService.GetAll()
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewCategoryResponseList(categories))
}

// GetCategory returns a single category by ID
// @Summary Get category
// @Tags Categories
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} dto.CategoryResponse "Category"
// @Failure 404 {object} errors.ErrorResponse "CATEGORY_001 - Category not found"
// @Router /categories/{id} [get]
func (h *CategoryHandler) GetCategory(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return SendError(c, apperrors.ValidationInvalidFormat, apperrors.WithDetails("Invalid category ID"))
	}

	category, err := h.categoryService.GetByID(id)
	if err != nil {
		return h.sendCategoryError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewCategoryResponse(category))
}

// UpdateCategory partially updates a category
// @Summary Update category
// @Description Apply a partial update. Omitted fields are untouched; budget may be set to null, name may not.
// @Tags Categories
// @Accept json
// @Produce json
// @Param id path int true "Category ID"
// @Param request body dto.UpdateCategoryRequest true "Fields to update"
// @Success 200 {object} dto.CategoryResponse "Updated category"
// @Failure 404 {object} errors.ErrorResponse "CATEGORY_001 - Category not found"
// @Failure 409 {object} errors.ErrorResponse "CATEGORY_002 - Name already in use"
// @Failure 422 {object} errors.ErrorResponse "CATEGORY_003 - Name cannot be null"
// @Router /categories/{id} [patch]
func (h *CategoryHandler) UpdateCategory(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return SendError(c, apperrors.ValidationInvalidFormat, apperrors.WithDetails("Invalid category ID"))
	}

	var req dto.UpdateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apperrors.ValidationInvalidFormat, apperrors.WithDetails("Invalid request body"))
	}

	category, err := h.categoryService.Update(id, req)
	if err != nil {
		return h.sendCategoryError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewCategoryResponse(category))
}

// DeleteCategory removes a category and untags its transactions
// @Summary Delete category
// @Tags Categories
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} dto.DeleteResponse "Deletion confirmation"
// @Failure 404 {object} errors.ErrorResponse "CATEGORY_001 - Category not found"
// @Router /categories/{id} [delete]
func (h *CategoryHandler) DeleteCategory(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return SendError(c, apperrors.ValidationInvalidFormat, apperrors.WithDetails("Invalid category ID"))
	}

	if err := h.categoryService.Delete(id); err != nil {
		return h.sendCategoryError(c, err)
	}

	return c.JSON(http.StatusOK, dto.DeleteResponse{
		Detail: fmt.Sprintf("Category with ID %d deleted successfully", id),
	})
}

// sendCategoryError maps category service errors to API responses
func (h *CategoryHandler) sendCategoryError(c echo.Context, err error) error {
	var dup *services.DuplicateCategoryNameError
	switch {
	case errors.Is(err, repositories.ErrCategoryNotFound):
		return SendError(c, apperrors.CategoryNotFound, apperrors.WithMessage("Category not found"))

	case errors.As(err, &dup):
		return SendError(c, apperrors.CategoryNameConflict, apperrors.WithMessage(dup.Error()))

	case errors.Is(err, services.ErrCategoryNameNull):
		return SendError(c, apperrors.CategoryNameRequired, apperrors.WithDetails(err.Error()))
	}

	if handled, resp := sendDomainValidationError(c, err); handled {
		return resp
	}

	return SendSystemError(c, err)
}

// parseIDParam parses the numeric id path parameter
func parseIDParam(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
