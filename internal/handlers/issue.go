package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hackoverflow/hostel-management-api/internal/dto"
	apierrors "github.com/hackoverflow/hostel-management-api/internal/errors"
	"github.com/hackoverflow/hostel-management-api/internal/middleware"
	"github.com/hackoverflow/hostel-management-api/internal/services"
	"github.com/hackoverflow/hostel-management-api/internal/storage"
)

// IssueHandler coordinates issue lifecycle HTTP handlers.
type IssueHandler struct {
	issueService *services.IssueService
	uploads      *storage.Uploads
}

// NewIssueHandler creates a new IssueHandler.
func NewIssueHandler(issueService *services.IssueService, uploads *storage.Uploads) *IssueHandler {
	return &IssueHandler{
		issueService: issueService,
		uploads:      uploads,
	}
}

// ReportForm returns the metadata the report form is built from.
func (h *IssueHandler) ReportForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"categories": []string{"Electrical", "Plumbing", "Carpentry", "Cleaning", "Internet"},
		"priorities": []string{"Low", "Medium", "High"},
	})
}

// Report creates an issue from the multipart report form.
func (h *IssueHandler) Report(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	type ReportRequest struct {
		Title       string `form:"title" binding:"required"`
		Category    string `form:"category" binding:"required"`
		Priority    string `form:"priority"`
		Description string `form:"description"`
	}

	var req ReportRequest
	if err := c.ShouldBind(&req); err != nil {
		apierrors.BadRequest(c, "title and category are required")
		return
	}

	// Checkbox semantics: present means public.
	_, isPublic := c.GetPostForm("is_public")

	imagePath := ""
	if file, err := c.FormFile("item_image"); err == nil && file.Filename != "" {
		imagePath, err = h.uploads.SaveIssueImage(file)
		if err != nil {
			apierrors.InternalError(c, "Failed to store image")
			return
		}
	}

	issue, err := h.issueService.ReportIssue(services.ReportIssueInput{
		StudentID:   userID,
		Title:       req.Title,
		Category:    req.Category,
		Priority:    req.Priority,
		Description: req.Description,
		ImagePath:   imagePath,
		IsPublic:    isPublic,
	})
	if err != nil {
		respondIssueError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToIssueDTO(*issue))
}

// UpdateStatus handles the worker-facing status transition.
func (h *IssueHandler) UpdateStatus(c *gin.Context) {
	issueID, ok := issueIDParam(c)
	if !ok {
		return
	}

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}
	role, _ := middleware.GetRole(c)

	newStatus := c.PostForm("new_status")

	issue, err := h.issueService.UpdateStatus(services.UpdateStatusInput{
		IssueID:   issueID,
		ActorID:   userID,
		ActorRole: role,
		NewStatus: newStatus,
	})
	if err != nil {
		respondIssueError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToIssueDTO(*issue))
}

// SolveIssue moves an issue to the terminal Solved state.
func (h *IssueHandler) SolveIssue(c *gin.Context) {
	issueID, ok := issueIDParam(c)
	if !ok {
		return
	}

	issue, err := h.issueService.SolveIssue(issueID)
	if err != nil {
		respondIssueError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToIssueDTO(*issue))
}

func issueIDParam(c *gin.Context) (uint64, bool) {
	issueID, err := strconv.ParseUint(c.Param("issue_id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid issue ID")
		return 0, false
	}
	return issueID, true
}

func respondIssueError(c *gin.Context, err error) {
	var dup *services.DuplicateActiveIssueError
	switch {
	case errors.As(err, &dup):
		apierrors.DuplicateActiveIssue(c, dup.Error())
	case errors.Is(err, services.ErrIssueNotFound),
		errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrNotIssueWorker):
		apierrors.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrTitleRequired),
		errors.Is(err, services.ErrCategoryRequired),
		errors.Is(err, services.ErrStatusRequired):
		apierrors.BadRequest(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
