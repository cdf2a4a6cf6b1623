package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hackoverflow/hostel-management-api/internal/dto"
	apierrors "github.com/hackoverflow/hostel-management-api/internal/errors"
	"github.com/hackoverflow/hostel-management-api/internal/services"
)

// AdminHandler covers the management-only mutations.
type AdminHandler struct {
	staffService *services.StaffService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(staffService *services.StaffService) *AdminHandler {
	return &AdminHandler{
		staffService: staffService,
	}
}

// PostCircular publishes a new circular.
func (h *AdminHandler) PostCircular(c *gin.Context) {
	type CircularRequest struct {
		Title   string `form:"title" binding:"required"`
		Content string `form:"content" binding:"required"`
	}

	var req CircularRequest
	if err := c.ShouldBind(&req); err != nil {
		apierrors.BadRequest(c, "title and content are required")
		return
	}

	circular, err := h.staffService.PostCircular(req.Title, req.Content)
	if err != nil {
		respondStaffError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Circular published successfully",
		"circular": dto.ToCircularDTO(*circular),
	})
}

// AddWorker hires a new worker for a specialty.
func (h *AdminHandler) AddWorker(c *gin.Context) {
	type AddWorkerRequest struct {
		WorkerName string `form:"worker_name" binding:"required"`
		Password   string `form:"password" binding:"required"`
		Specialty  string `form:"specialty" binding:"required"`
	}

	var req AddWorkerRequest
	if err := c.ShouldBind(&req); err != nil {
		apierrors.BadRequest(c, "worker_name, password and specialty are required")
		return
	}

	worker, err := h.staffService.AddWorker(services.AddWorkerInput{
		Username:  req.WorkerName,
		Password:  req.Password,
		Specialty: req.Specialty,
	})
	if err != nil {
		respondStaffError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Worker " + worker.Username + " added successfully for " + worker.Specialty,
		"worker":  dto.ToUserDTO(*worker),
	})
}

func respondStaffError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrUsernameTaken):
		apierrors.Conflict(c, err.Error())
	case errors.Is(err, services.ErrWorkerNameRequired),
		errors.Is(err, services.ErrSpecialtyRequired),
		errors.Is(err, services.ErrPasswordTooShort),
		errors.Is(err, services.ErrCircularIncomplete):
		apierrors.BadRequest(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
