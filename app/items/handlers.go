package items

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/joefazee/catalog/app/api"
	"github.com/joefazee/catalog/internal/logger"
	"github.com/joefazee/catalog/internal/sanitizer"
	"github.com/joefazee/catalog/internal/validator"
	"github.com/joefazee/catalog/models"
)

// Handler handles HTTP requests for items
type Handler struct {
	service   Service
	sanitizer sanitizer.HTMLStripperer
	logger    logger.Logger
}

// NewHandler creates a new item handler
func NewHandler(service Service, sanitizer sanitizer.HTMLStripperer, logger logger.Logger) *Handler {
	return &Handler{service: service, sanitizer: sanitizer, logger: logger}
}

// CreateItem godoc
// @Summary Create an item
// @Description Create an item inside an existing category
// @Tags items
// @Accept json
// @Produce json
// @Param request body CreateItemRequest true "Item creation request"
// @Success 201 {object} api.Response{data=ItemResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 404 {object} api.Response{error=api.ErrorInfo}
// @Failure 500 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/items [post]
func (h *Handler) CreateItem(c *gin.Context) {
	var req CreateItemRequest
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

	item, err := h.service.CreateItem(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrRecordNotFound):
			api.NotFoundResponse(c, "Category")
		case errors.Is(err, models.ErrInvalidItemName), errors.Is(err, models.ErrInvalidCategoryID):
			api.ValidationErrorResponse(c, err.Error())
		default:
			h.logger.Error(err, logger.Fields{"handler": "CreateItem", "category_id": req.CategoryID})
			api.InternalErrorResponse(c, "Failed to create item")
		}
		return
	}

	api.CreatedResponse(c, "Item created successfully", item)
}

// ListItems godoc
// @Summary List items
// @Description List items, optionally filtered by category id or category name
// @Tags items
// @Produce json
// @Param category_id query string false "Category ID"
// @Param category_name query string false "Category name"
// @Success 200 {object} api.Response{data=[]ItemResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 500 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/items [get]
func (h *Handler) ListItems(c *gin.Context) {
	var query ListItemsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		api.BadRequestResponse(c, err.Error())
		return
	}

	v := validator.New()
	query.SanitizeAndValidate(v, h.sanitizer)
	if !v.Valid() {
		api.ValidationErrorResponse(c, validator.NewValidationError("Validation failed", v.Errors))
		return
	}

	items, err := h.service.ListItems(c.Request.Context(), &query)
	if err != nil {
		h.logger.Error(err, logger.Fields{"handler": "ListItems"})
		api.InternalErrorResponse(c, "Failed to fetch items")
		return
	}

	api.ListResponse(c, "Items retrieved successfully", items, len(items))
}
