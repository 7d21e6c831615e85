// internal/handlers/agent/agent_handler.go
package agent

import (
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	domagent "github.com/sawaidbasit2/aixosFire-backend/internal/domain/agent"
	"github.com/sawaidbasit2/aixosFire-backend/internal/domain/visit"
	"github.com/sawaidbasit2/aixosFire-backend/internal/pkg/response"
	agentservice "github.com/sawaidbasit2/aixosFire-backend/internal/service/agent"
	customerservice "github.com/sawaidbasit2/aixosFire-backend/internal/service/customer"
	visitservice "github.com/sawaidbasit2/aixosFire-backend/internal/service/visit"
	"github.com/sawaidbasit2/aixosFire-backend/internal/storage"
)

// AgentHandler serves the field app: customer lookup, visit logging, and
// the agent's own dashboard.
type AgentHandler struct {
	agentService    *agentservice.AgentService
	visitService    *visitservice.VisitService
	customerService *customerservice.CustomerService
	blobs           storage.BlobStore
}

func NewAgentHandler(
	agentService *agentservice.AgentService,
	visitService *visitservice.VisitService,
	customerService *customerservice.CustomerService,
	blobs storage.BlobStore,
) *AgentHandler {
	return &AgentHandler{
		agentService:    agentService,
		visitService:    visitService,
		customerService: customerService,
		blobs:           blobs,
	}
}

// SearchCustomers powers the autocomplete on the visit form. An empty query
// returns an empty list rather than an error.
func (h *AgentHandler) SearchCustomers(c *gin.Context) {
	customers, err := h.customerService.Search(c.Request.Context(), c.Query("query"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "DB Error", err)
		return
	}

	response.JSON(c, http.StatusOK, customers)
}

// LogVisit accepts the multipart visit form. Photo uploads are stored
// before the visit is recorded; a failed upload aborts the whole call.
func (h *AgentHandler) LogVisit(c *gin.Context) {
	var req visit.LogRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid visit data", err)
		return
	}

	photoURLs, err := h.savePhotos(c)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to log visit", err)
		return
	}

	result, err := h.visitService.LogVisit(c.Request.Context(), &req, photoURLs)
	if err != nil {
		response.FromError(c, "Failed to log visit", err)
		return
	}

	response.JSON(c, http.StatusCreated, gin.H{
		"message": "Visit logged successfully",
		"visitId": result.VisitID,
	})
}

func (h *AgentHandler) Stats(c *gin.Context) {
	agentID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid agent ID", err)
		return
	}

	stats, err := h.agentService.Stats(c.Request.Context(), agentID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to load stats", err)
		return
	}

	response.JSON(c, http.StatusOK, stats)
}

func (h *AgentHandler) MyCustomers(c *gin.Context) {
	agentID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid agent ID", err)
		return
	}

	customers, err := h.agentService.MyCustomers(c.Request.Context(), agentID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to load customers", err)
		return
	}

	response.JSON(c, http.StatusOK, customers)
}

func (h *AgentHandler) UpdateLocation(c *gin.Context) {
	var req domagent.UpdateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid location data", err)
		return
	}

	if err := h.agentService.UpdateLocation(c.Request.Context(), req.ID, req.Lat, req.Lng); err != nil {
		response.FromError(c, "DB Error", err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{"message": "Location updated"})
}

// savePhotos stores every file in the "photos" field and returns the public
// URLs in submission order.
func (h *AgentHandler) savePhotos(c *gin.Context) ([]string, error) {
	form, err := c.MultipartForm()
	if err != nil {
		// Plain form posts carry no photos.
		return nil, nil
	}

	files := form.File["photos"]
	urls := make([]string, 0, len(files))

	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			return nil, err
		}

		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, err
		}

		objectPath := fmt.Sprintf("visits/visit-%d-%d%s",
			time.Now().UnixMilli(), rand.Intn(1_000_000_000), filepath.Ext(fh.Filename))

		url, err := h.blobs.Save(c.Request.Context(), objectPath, data)
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}

	return urls, nil
}
