package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/quickdesk-io/quickdesk/internal/application/category/usecases"
	"github.com/quickdesk-io/quickdesk/internal/shared/errors"
	"github.com/quickdesk-io/quickdesk/internal/shared/logger"
	"github.com/quickdesk-io/quickdesk/internal/shared/utils"
)

type CategoryHandler struct {
	createCategoryUC usecases.CreateCategoryExecutor
	updateCategoryUC usecases.UpdateCategoryExecutor
	listCategoriesUC usecases.ListCategoriesExecutor
	deleteCategoryUC usecases.DeleteCategoryExecutor
	logger           logger.Interface
}

func NewCategoryHandler(
	createCategoryUC usecases.CreateCategoryExecutor,
	updateCategoryUC usecases.UpdateCategoryExecutor,
	listCategoriesUC usecases.ListCategoriesExecutor,
	deleteCategoryUC usecases.DeleteCategoryExecutor,
	logger logger.Interface,
) *CategoryHandler {
	return &CategoryHandler{
		createCategoryUC: createCategoryUC,
		updateCategoryUC: updateCategoryUC,
		listCategoriesUC: listCategoriesUC,
		deleteCategoryUC: deleteCategoryUC,
		logger:           logger,
	}
}

type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description" binding:"max=500"`
}

type UpdateCategoryRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=100"`
	Description *string `json:"description" binding:"omitempty,max=500"`
}

// ListCategories handles GET /categories
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	result, err := h.listCategoriesUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// CreateCategory handles POST /categories
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create category", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	_, role, err := CurrentUser(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.CreateCategoryCommand{
		Name:          req.Name,
		Description:   req.Description,
		RequesterRole: role,
	}

	result, err := h.createCategoryUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Category created successfully")
}

// UpdateCategory handles PUT /categories/:id
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	categoryID, err := parseCategoryID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	_, role, err := CurrentUser(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.UpdateCategoryCommand{
		CategoryID:    categoryID,
		Name:          req.Name,
		Description:   req.Description,
		RequesterRole: role,
	}

	result, err := h.updateCategoryUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Category updated successfully", result)
}

// DeleteCategory handles DELETE /categories/:id
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	categoryID, err := parseCategoryID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	_, role, err := CurrentUser(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.DeleteCategoryCommand{
		CategoryID:    categoryID,
		RequesterRole: role,
	}

	if _, err := h.deleteCategoryUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func parseCategoryID(c *gin.Context) (uint, error) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid category ID")
	}
	return uint(id), nil
}
