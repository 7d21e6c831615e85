// internal/handlers/admin/admin_handler.go
package admin

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sawaidbasit2/aixosFire-backend/internal/pkg/response"
	service "github.com/sawaidbasit2/aixosFire-backend/internal/service/admin"
)

type AdminHandler struct {
	adminService *service.AdminService
}

func NewAdminHandler(adminService *service.AdminService) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
	}
}

// ListAgents supports ?status=Pending style filtering; no filter means all.
func (h *AdminHandler) ListAgents(c *gin.Context) {
	agents, err := h.adminService.ListAgents(c.Request.Context(), c.Query("status"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "DB Error", err)
		return
	}

	response.JSON(c, http.StatusOK, agents)
}

func (h *AdminHandler) ApproveAgent(c *gin.Context) {
	id, err := agentIDParam(c)
	if err != nil {
		return
	}

	if err := h.adminService.ApproveAgent(c.Request.Context(), id); err != nil {
		response.FromError(c, "DB update failed", err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{"message": "Agent approved successfully"})
}

func (h *AdminHandler) RejectAgent(c *gin.Context) {
	id, err := agentIDParam(c)
	if err != nil {
		return
	}

	if err := h.adminService.RejectAgent(c.Request.Context(), id); err != nil {
		response.FromError(c, "DB update failed", err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{"message": "Agent rejected"})
}

func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.adminService.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to fetch stats", err)
		return
	}

	response.JSON(c, http.StatusOK, stats)
}

func (h *AdminHandler) ListCustomers(c *gin.Context) {
	customers, err := h.adminService.ListCustomers(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "DB Error", err)
		return
	}

	response.JSON(c, http.StatusOK, customers)
}

// MapData feeds the global map: active agents plus all customers, with
// coordinates exactly as stored.
func (h *AdminHandler) MapData(c *gin.Context) {
	data, err := h.adminService.MapData(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to load map data", err)
		return
	}

	response.JSON(c, http.StatusOK, data)
}

func agentIDParam(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid agent ID", err)
		return 0, err
	}
	return id, nil
}
