package handlers

import (
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"api-playground/internal/api/errors"
	"api-playground/internal/api/middleware"
	"api-playground/internal/api/v1/dto"
)

// ItemHandler serves the query and body demos under /items
type ItemHandler struct{}

// NewItemHandler creates a new item handler
func NewItemHandler() *ItemHandler {
	return &ItemHandler{}
}

// Create handles POST /items/:item_id
// Merges the body fields with the item id and the optional q value.
//
// @Summary Create an item
// @Tags items
// @Accept json
// @Produce json
// @Param item_id path int true "Item ID"
// @Param q query string false "Optional query string"
// @Param item body dto.Item true "Item"
// @Success 200 {object} map[string]interface{}
// @Failure 422 {object} errors.APIError "Validation error"
// @Router /items/{item_id} [post]
func (h *ItemHandler) Create(c *gin.Context) {
	var (
		path  dto.ItemPath
		query dto.OptionalQuery
		item  dto.Item
	)
	if err := errors.Merge(
		middleware.BindURI(c, &path),
		middleware.BindQuery(c, &query),
		middleware.BindJSON(c, &item),
	); err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ItemResponse(path.ItemID, item, query.Q))
}

// Search handles GET /items/search
// Echoes the repeated q values, or the defaults when none are given.
//
// @Summary Echo query values
// @Tags items
// @Produce json
// @Param q query []string false "Query string for the items to search" collectionFormat(multi)
// @Success 200 {object} dto.SearchResponse
// @Router /items/search [get]
func (h *ItemHandler) Search(c *gin.Context) {
	q := c.QueryArray("q")
	c.JSON(http.StatusOK, dto.SearchResponse{
		Q: lo.Ternary(len(q) > 0, q, slices.Clone(dto.DefaultSearchQuery)),
	})
}

// Get handles GET /items/:item_id
// The item id must lie in [10, 20] and q must be supplied.
//
// @Summary Read an item with a ranged id
// @Tags items
// @Produce json
// @Param item_id path int true "Item ID" minimum(10) maximum(20)
// @Param q query string true "Required query string"
// @Success 200 {object} map[string]interface{}
// @Failure 422 {object} errors.APIError "Validation error"
// @Router /items/{item_id} [get]
func (h *ItemHandler) Get(c *gin.Context) {
	var (
		path  dto.RangedItemPath
		query dto.RequiredQuery
	)
	if err := errors.Merge(
		middleware.BindURI(c, &path),
		middleware.BindQuery(c, &query),
	); err != nil {
		middleware.HandleError(c, err)
		return
	}

	result := gin.H{"item_id": path.ItemID}
	if *query.Q != "" {
		result["q"] = *query.Q
	}
	c.JSON(http.StatusOK, result)
}

// List handles GET /items
// Binds the whole query string to FilterParams; unknown keys are rejected.
//
// @Summary Filter items
// @Tags items
// @Produce json
// @Param limit query int false "Page size" default(10) minimum(1) maximum(100)
// @Param offset query int false "Offset" default(0) minimum(0)
// @Param order_by query string false "Order field" default(created_at) Enums(created_at,updated_at)
// @Param tags query []string false "Tags" collectionFormat(multi)
// @Success 200 {object} dto.FilterParams
// @Failure 422 {object} errors.APIError "Validation error"
// @Router /items [get]
func (h *ItemHandler) List(c *gin.Context) {
	var params dto.FilterParams
	if err := middleware.BindQueryStrict(c, &params); err != nil {
		middleware.HandleError(c, err)
		return
	}
	params.Normalize()

	c.JSON(http.StatusOK, params)
}

// Update handles PUT /items/:item_id
// The body carries an item and a user, validated together.
//
// @Summary Update an item
// @Tags items
// @Accept json
// @Produce json
// @Param item_id path int true "Item ID"
// @Param body body dto.UpdateItemRequest true "Item and user"
// @Success 200 {object} map[string]interface{}
// @Failure 422 {object} errors.APIError "Validation error"
// @Router /items/{item_id} [put]
func (h *ItemHandler) Update(c *gin.Context) {
	var (
		path dto.ItemPath
		req  dto.UpdateItemRequest
	)
	if err := errors.Merge(
		middleware.BindURI(c, &path),
		middleware.BindJSON(c, &req),
	); err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"item_id": path.ItemID,
		"item":    req.Item,
		"user":    req.User,
	})
}
