package api

import (
	"errors"
	"net/http"

	"lendhub/internal/domain/comment"
	"lendhub/internal/domain/item"
	reqdto "lendhub/internal/handler/dto/request"
	resdto "lendhub/internal/handler/dto/response"
	"lendhub/internal/handler/middleware"
	"lendhub/internal/usecase/commands"
	"lendhub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ItemHandler struct {
	itemCommands    commands.ItemCommands
	commentCommands commands.CommentCommands
	itemQueries     queries.ItemQueries
}

func NewItemHandler(itemCommands commands.ItemCommands, commentCommands commands.CommentCommands, itemQueries queries.ItemQueries) *ItemHandler {
	return &ItemHandler{
		itemCommands:    itemCommands,
		commentCommands: commentCommands,
		itemQueries:     itemQueries,
	}
}

// @Summary Create item
// @Description List a new item for lending
// @Tags items
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header string true "Acting user id"
// @Param request body reqdto.CreateItemRequest true "Item"
// @Success 201 {object} resdto.ItemSummaryResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /items [post]
func (h *ItemHandler) CreateItem(c *gin.Context) {
	ownerID, ok := middleware.GetSharerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.CreateItemRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	summary, err := h.itemCommands.Create(c.Request.Context(), ownerID, req.Name, req.Description, *req.Available)
	if err != nil {
		h.respondItemError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromItemSummary(summary))
}

// @Summary Update item
// @Description Patch name, description or availability of an owned item
// @Tags items
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header string true "Acting user id"
// @Param itemId path string true "Item ID"
// @Param request body reqdto.UpdateItemRequest true "Partial item"
// @Success 200 {object} resdto.ItemSummaryResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /items/{itemId} [patch]
func (h *ItemHandler) UpdateItem(c *gin.Context) {
	actorID, ok := middleware.GetSharerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item ID format"})
		return
	}

	var req reqdto.UpdateItemRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	summary, err := h.itemCommands.Update(c.Request.Context(), itemID, actorID, req.ToPatch())
	if err != nil {
		h.respondItemError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromItemSummary(summary))
}

// @Summary Get item
// @Description Get an item with comments; owners also see booking annotations
// @Tags items
// @Produce json
// @Param X-Sharer-User-Id header string true "Acting user id"
// @Param itemId path string true "Item ID"
// @Success 200 {object} resdto.ItemResponse
// @Failure 404 {object} map[string]string
// @Router /items/{itemId} [get]
func (h *ItemHandler) GetItem(c *gin.Context) {
	viewerID, ok := middleware.GetSharerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item ID format"})
		return
	}

	view, err := h.itemQueries.GetByID(c.Request.Context(), itemID, viewerID)
	if err != nil {
		h.respondItemError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromItemView(view))
}

// @Summary List own items
// @Description List the acting user's items with booking annotations
// @Tags items
// @Produce json
// @Param X-Sharer-User-Id header string true "Acting user id"
// @Param from query int false "Offset"
// @Param size query int false "Page size"
// @Success 200 {array} resdto.ItemResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /items [get]
func (h *ItemHandler) ListOwnItems(c *gin.Context) {
	ownerID, ok := middleware.GetSharerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	p, err := parsePage(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pagination parameters"})
		return
	}

	views, err := h.itemQueries.ListByOwner(c.Request.Context(), ownerID, p)
	if err != nil {
		h.respondItemError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromItemViews(views))
}

// @Summary Search items
// @Description Search available items by name or description
// @Tags items
// @Produce json
// @Param X-Sharer-User-Id header string true "Acting user id"
// @Param text query string true "Search text"
// @Param from query int false "Offset"
// @Param size query int false "Page size"
// @Success 200 {array} resdto.ItemSummaryResponse
// @Failure 400 {object} map[string]string
// @Router /items/search [get]
func (h *ItemHandler) SearchItems(c *gin.Context) {
	p, err := parsePage(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pagination parameters"})
		return
	}

	summaries, err := h.itemQueries.Search(c.Request.Context(), c.Query("text"), p)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromItemSummaries(summaries))
}

// @Summary Comment on item
// @Description Post a comment after a completed rental
// @Tags items
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header string true "Acting user id"
// @Param itemId path string true "Item ID"
// @Param request body reqdto.CreateCommentRequest true "Comment"
// @Success 201 {object} resdto.CommentResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /items/{itemId}/comment [post]
func (h *ItemHandler) CreateComment(c *gin.Context) {
	authorID, ok := middleware.GetSharerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item ID format"})
		return
	}

	var req reqdto.CreateCommentRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.commentCommands.Create(c.Request.Context(), itemID, authorID, req.Text)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrItemNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		case errors.Is(err, commands.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		case errors.Is(err, comment.ErrNoBookingHistory),
			errors.Is(err, comment.ErrBookingNotCompleted):
			c.JSON(http.StatusBadRequest, gin.H{"error": "No completed booking qualifies for a comment"})
		case errors.Is(err, comment.ErrEmptyText),
			errors.Is(err, comment.ErrTextTooLong):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid comment text"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCommentView(view))
}

func (h *ItemHandler) respondItemError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrItemNotFound), errors.Is(err, queries.ErrItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
	case errors.Is(err, commands.ErrUserNotFound), errors.Is(err, queries.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
	case errors.Is(err, item.ErrEmptyName), errors.Is(err, item.ErrEmptyDescription):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Item name and description are required"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
