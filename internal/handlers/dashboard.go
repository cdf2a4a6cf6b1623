package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hackoverflow/hostel-management-api/internal/dto"
	apierrors "github.com/hackoverflow/hostel-management-api/internal/errors"
	"github.com/hackoverflow/hostel-management-api/internal/middleware"
	"github.com/hackoverflow/hostel-management-api/internal/services"
	"github.com/hackoverflow/hostel-management-api/internal/utils"
)

// DashboardHandler serves the per-role aggregate views.
type DashboardHandler struct {
	dashboardService *services.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// StudentDashboard returns the student landing view.
func (h *DashboardHandler) StudentDashboard(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	dashboard, err := h.dashboardService.ForStudent(userID)
	if err != nil {
		respondDashboardError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToStudentDashboardResponse(dashboard))
}

// WorkerDashboard returns the worker task list and workload.
func (h *DashboardHandler) WorkerDashboard(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	dashboard, err := h.dashboardService.ForWorker(userID)
	if err != nil {
		respondDashboardError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToWorkerDashboardResponse(dashboard))
}

// AdminDashboard returns the management overview. The issue table is
// paginated; counts and the overdue list always cover everything.
func (h *DashboardHandler) AdminDashboard(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	dashboard, err := h.dashboardService.ForAdmin(params.Page, params.Limit)
	if err != nil {
		respondDashboardError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAdminDashboardResponse(dashboard))
}

func respondDashboardError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
