// internal/handlers/servicereq/service_handler.go
package servicereq

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sawaidbasit2/aixosFire-backend/internal/domain/servicereq"
	"github.com/sawaidbasit2/aixosFire-backend/internal/pkg/response"
	service "github.com/sawaidbasit2/aixosFire-backend/internal/service/servicereq"
)

type ServiceHandler struct {
	serviceRequests *service.ServiceRequestService
}

func NewServiceHandler(serviceRequests *service.ServiceRequestService) *ServiceHandler {
	return &ServiceHandler{
		serviceRequests: serviceRequests,
	}
}

// List returns every service request with customer and agent names joined.
func (h *ServiceHandler) List(c *gin.Context) {
	services, err := h.serviceRequests.ListAll(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Error fetching services", err)
		return
	}

	response.JSON(c, http.StatusOK, services)
}

func (h *ServiceHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid service ID", err)
		return
	}

	var req servicereq.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid status data", err)
		return
	}

	if err := h.serviceRequests.UpdateStatus(c.Request.Context(), id, &req); err != nil {
		response.FromError(c, "failed to update service", err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{"message": "Service updated"})
}
