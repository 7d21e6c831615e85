// internal/handlers/customer/customer_handler.go
package customer

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domcustomer "github.com/sawaidbasit2/aixosFire-backend/internal/domain/customer"
	"github.com/sawaidbasit2/aixosFire-backend/internal/domain/inventory"
	"github.com/sawaidbasit2/aixosFire-backend/internal/domain/servicereq"
	"github.com/sawaidbasit2/aixosFire-backend/internal/pkg/response"
	customerservice "github.com/sawaidbasit2/aixosFire-backend/internal/service/customer"
	servicereqservice "github.com/sawaidbasit2/aixosFire-backend/internal/service/servicereq"
)

type CustomerHandler struct {
	customerService *customerservice.CustomerService
	serviceRequests *servicereqservice.ServiceRequestService
}

func NewCustomerHandler(
	customerService *customerservice.CustomerService,
	serviceRequests *servicereqservice.ServiceRequestService,
) *CustomerHandler {
	return &CustomerHandler{
		customerService: customerService,
		serviceRequests: serviceRequests,
	}
}

// Dashboard bundles the customer's inventory and recent service requests.
func (h *CustomerHandler) Dashboard(c *gin.Context) {
	customerID, err := customerIDParam(c)
	if err != nil {
		return
	}

	data, err := h.customerService.Dashboard(c.Request.Context(), customerID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Error fetching dashboard data", err)
		return
	}

	response.JSON(c, http.StatusOK, data)
}

func (h *CustomerHandler) Inventory(c *gin.Context) {
	customerID, err := customerIDParam(c)
	if err != nil {
		return
	}

	items, err := h.customerService.Inventory(c.Request.Context(), customerID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Error fetching inventory", err)
		return
	}

	response.JSON(c, http.StatusOK, items)
}

func (h *CustomerHandler) History(c *gin.Context) {
	customerID, err := customerIDParam(c)
	if err != nil {
		return
	}

	services, err := h.customerService.History(c.Request.Context(), customerID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Error fetching history", err)
		return
	}

	response.JSON(c, http.StatusOK, services)
}

func (h *CustomerHandler) BookService(c *gin.Context) {
	var req servicereq.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid booking data", err)
		return
	}

	sr, err := h.serviceRequests.Book(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, "failed to book service", err)
		return
	}

	response.JSON(c, http.StatusCreated, gin.H{
		"message": "Service booked successfully",
		"id":      sr.ID,
	})
}

func (h *CustomerHandler) AddExtinguisher(c *gin.Context) {
	var req inventory.AddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid extinguisher data", err)
		return
	}

	id, err := h.customerService.AddExtinguisher(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, "failed to add extinguisher", err)
		return
	}

	response.JSON(c, http.StatusCreated, gin.H{
		"message": "Extinguisher added",
		"id":      id,
	})
}

func (h *CustomerHandler) UpdateLocation(c *gin.Context) {
	var req domcustomer.UpdateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid location data", err)
		return
	}

	if err := h.customerService.UpdateLocation(c.Request.Context(), req.ID, req.Lat, req.Lng); err != nil {
		response.FromError(c, "DB Error", err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{"message": "Location updated"})
}

func customerIDParam(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid customer ID", err)
		return 0, err
	}
	return id, nil
}
