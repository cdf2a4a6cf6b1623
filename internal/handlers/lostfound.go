package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hackoverflow/hostel-management-api/internal/dto"
	apierrors "github.com/hackoverflow/hostel-management-api/internal/errors"
	"github.com/hackoverflow/hostel-management-api/internal/middleware"
	"github.com/hackoverflow/hostel-management-api/internal/services"
	"github.com/hackoverflow/hostel-management-api/internal/storage"
	"github.com/hackoverflow/hostel-management-api/internal/utils"
)

// LostFoundHandler serves the lost-and-found board.
type LostFoundHandler struct {
	lostFoundService *services.LostFoundService
	uploads          *storage.Uploads
}

// NewLostFoundHandler creates a new LostFoundHandler.
func NewLostFoundHandler(lostFoundService *services.LostFoundService, uploads *storage.Uploads) *LostFoundHandler {
	return &LostFoundHandler{
		lostFoundService: lostFoundService,
		uploads:          uploads,
	}
}

// List returns board items, newest first.
func (h *LostFoundHandler) List(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	items, total, err := h.lostFoundService.ListItems(params)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch items")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items": dto.ToLostFoundDTOs(items),
		"pagination": utils.PaginationResponse{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	})
}

// Post creates a board item from the multipart form.
func (h *LostFoundHandler) Post(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	type PostItemRequest struct {
		ItemName    string `form:"item_name" binding:"required"`
		Description string `form:"description"`
		Location    string `form:"location"`
		Status      string `form:"status"`
	}

	var req PostItemRequest
	if err := c.ShouldBind(&req); err != nil {
		apierrors.BadRequest(c, "item_name is required")
		return
	}

	imagePath := ""
	if file, err := c.FormFile("item_image"); err == nil && file.Filename != "" {
		imagePath, err = h.uploads.SaveItemImage(file)
		if err != nil {
			apierrors.InternalError(c, "Failed to store image")
			return
		}
	}

	item, err := h.lostFoundService.PostItem(services.PostItemInput{
		UserID:      userID,
		ItemName:    req.ItemName,
		Description: req.Description,
		Location:    req.Location,
		Status:      req.Status,
		ImagePath:   imagePath,
	})
	if err != nil {
		if errors.Is(err, services.ErrItemNameRequired) {
			apierrors.BadRequest(c, err.Error())
			return
		}
		apierrors.InternalError(c, "Internal server error")
		return
	}

	c.JSON(http.StatusCreated, dto.ToLostFoundDTO(*item))
}
