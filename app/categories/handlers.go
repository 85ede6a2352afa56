package categories

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/joefazee/catalog/app/api"
	"github.com/joefazee/catalog/internal/logger"
	"github.com/joefazee/catalog/internal/sanitizer"
	"github.com/joefazee/catalog/internal/validator"
	"github.com/joefazee/catalog/models"
)

// Handler handles HTTP requests for categories
type Handler struct {
	service   Service
	sanitizer sanitizer.HTMLStripperer
	logger    logger.Logger
}

// NewHandler creates a new category handler
func NewHandler(service Service, sanitizer sanitizer.HTMLStripperer, logger logger.Logger) *Handler {
	return &Handler{
		service:   service,
		sanitizer: sanitizer,
		logger:    logger,
	}
}

// CreateCategory godoc
// @Summary Create a category
// @Description Create a category; it is placed after every existing category
// @Tags categories
// @Accept json
// @Produce json
// @Param request body CreateCategoryRequest true "Category creation request"
// @Success 201 {object} api.Response{data=CategoryResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 409 {object} api.Response{error=api.ErrorInfo}
// @Failure 500 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/categories [post]
func (h *Handler) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.ValidationErrorResponse(c, err.Error())
		return
	}

	v := validator.New()
	req.SanitizeAndValidate(v, h.sanitizer)
	if !v.Valid() {
		api.ValidationErrorResponse(c, validator.NewValidationError("Validation failed", v.Errors))
		return
	}

	category, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err, "CreateCategory", logger.Fields{"category_name": req.CategoryName})
		return
	}

	api.CreatedResponse(c, "Category created successfully", category)
}

// DeleteCategory godoc
// @Summary Delete a category
// @Description Delete a category that no item belongs to
// @Tags categories
// @Produce json
// @Param categoryId path string true "Category ID"
// @Success 200 {object} api.Response{data=DeleteResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 500 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/categories/{categoryId} [delete]
func (h *Handler) DeleteCategory(c *gin.Context) {
	id, ok := h.categoryID(c)
	if !ok {
		return
	}

	result, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err, "DeleteCategory", logger.Fields{"category_id": id.String()})
		return
	}

	api.SuccessResponse(c, http.StatusOK, "Category deleted successfully", result)
}

// GetCategories godoc
// @Summary List categories
// @Description Page through categories. With priority set, returns the single category at that position of the page.
// @Tags categories
// @Produce json
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page"
// @Param sort_by query string false "Sort field" Enums(category_name, priority, status, created_at, updated_at)
// @Param sort_type query string false "Sort direction" Enums(asc, desc)
// @Param status query string false "Status filter" Enums(ACTIVE, INACTIVE)
// @Param priority query int false "0-based position within the page"
// @Success 200 {object} api.Response{data=[]CategoryResponse,meta=api.PaginationMeta}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 500 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/categories [get]
func (h *Handler) GetCategories(c *gin.Context) {
	var query ListCategoriesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		api.ValidationErrorResponse(c, err.Error())
		return
	}

	v := validator.New()
	query.SanitizeAndValidate(v, h.sanitizer)
	if !v.Valid() {
		api.ValidationErrorResponse(c, validator.NewValidationError("Validation failed", v.Errors))
		return
	}

	result, err := h.service.GetList(c.Request.Context(), &query)
	if err != nil {
		h.handleError(c, err, "GetCategories", nil)
		return
	}

	if query.Priority != nil {
		api.SuccessResponse(c, http.StatusOK, "Category retrieved successfully", result.Selected)
		return
	}

	page := result.Page
	api.PaginatedResponse(c, "Categories retrieved successfully", page.Docs,
		api.NewPaginationMeta(page.Page, page.Limit, page.TotalDocs))
}

// GetCategoryByName godoc
// @Summary Get a category by name
// @Description Returns the category or null when no category has that name
// @Tags categories
// @Produce json
// @Param categoryName path string true "Category name"
// @Success 200 {object} api.Response{data=CategoryResponse}
// @Failure 500 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/categories/name/{categoryName} [get]
func (h *Handler) GetCategoryByName(c *gin.Context) {
	name := h.sanitizer.StripHTML(c.Param("categoryName"))

	category, err := h.service.GetCategory(c.Request.Context(), name)
	if err != nil {
		h.handleError(c, err, "GetCategoryByName", logger.Fields{"category_name": name})
		return
	}

	api.SuccessResponse(c, http.StatusOK, "Category retrieved successfully", category)
}

// GetCategoryByID godoc
// @Summary Get a category
// @Tags categories
// @Produce json
// @Param categoryId path string true "Category ID"
// @Success 200 {object} api.Response{data=CategoryResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 404 {object} api.Response{error=api.ErrorInfo}
// @Failure 500 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/categories/{categoryId} [get]
func (h *Handler) GetCategoryByID(c *gin.Context) {
	id, ok := h.categoryID(c)
	if !ok {
		return
	}

	category, err := h.service.GetCategoryByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err, "GetCategoryByID", logger.Fields{"category_id": id.String()})
		return
	}

	api.SuccessResponse(c, http.StatusOK, "Category retrieved successfully", category)
}

// UpdateCategory godoc
// @Summary Update a category
// @Description Partially update a category. A new name is applied to every item of the category. Priority is the 1-based position among active categories. Requests without a name or priority change nothing and return null.
// @Tags categories
// @Accept json
// @Produce json
// @Param categoryId path string true "Category ID"
// @Param request body UpdateCategoryRequest true "Category update request"
// @Success 200 {object} api.Response{data=CategoryResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 404 {object} api.Response{error=api.ErrorInfo}
// @Failure 409 {object} api.Response{error=api.ErrorInfo}
// @Failure 500 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/categories/{categoryId} [patch]
func (h *Handler) UpdateCategory(c *gin.Context) {
	id, ok := h.categoryID(c)
	if !ok {
		return
	}

	var req UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.ValidationErrorResponse(c, err.Error())
		return
	}

	v := validator.New()
	req.SanitizeAndValidate(v, h.sanitizer)
	if !v.Valid() {
		api.ValidationErrorResponse(c, validator.NewValidationError("Validation failed", v.Errors))
		return
	}

	category, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleError(c, err, "UpdateCategory", logger.Fields{"category_id": id.String()})
		return
	}

	api.UpdatedResponse(c, "Category updated successfully", category)
}

func (h *Handler) categoryID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("categoryId"))
	if err != nil {
		api.BadRequestResponse(c, "Invalid category ID format")
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) handleError(c *gin.Context, err error, handler string, fields logger.Fields) {
	switch {
	case errors.Is(err, models.ErrCategoryHasItems), errors.Is(err, models.ErrPriorityAlreadyFirst):
		api.BusinessRuleResponse(c, err)
	case errors.Is(err, models.ErrCategoryNameTaken):
		api.ConflictResponse(c, err.Error())
	case errors.Is(err, models.ErrRecordNotFound):
		api.NotFoundResponse(c, "Category")
	case errors.Is(err, models.ErrInvalidCategoryName),
		errors.Is(err, models.ErrInvalidCategoryImage),
		errors.Is(err, models.ErrInvalidCategoryStatus):
		api.ValidationErrorResponse(c, err.Error())
	default:
		if fields == nil {
			fields = logger.Fields{}
		}
		fields["handler"] = handler
		h.logger.Error(err, fields)
		api.InternalErrorResponse(c, "Failed to process category request")
	}
}
