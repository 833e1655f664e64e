package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Thelma101/RideChecka-sub001/internal/modules/catalog"
)

type CatalogHandler struct {
	catalog *catalog.Catalog
}

func NewCatalogHandler(cat *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: cat}
}

type serviceResp struct {
	ServiceID    string   `json:"serviceId"`
	Name         string   `json:"name"`
	ServiceType  string   `json:"serviceType"`
	VehicleTypes []string `json:"vehicleTypes"`
	IsBidBased   bool     `json:"isBidBased,omitempty"`
}

// List exposes display metadata only; rates stay server-side.
func (h *CatalogHandler) List(c *gin.Context) {
	models := h.catalog.All()
	out := make([]serviceResp, 0, len(models))
	for _, m := range models {
		vehicles := make([]string, 0, len(m.VehicleTypes))
		for _, v := range m.VehicleTypes {
			vehicles = append(vehicles, v.Type)
		}
		out = append(out, serviceResp{
			ServiceID:    m.ServiceID,
			Name:         m.Name,
			ServiceType:  string(m.ServiceType),
			VehicleTypes: vehicles,
			IsBidBased:   m.IsBidBased,
		})
	}
	c.JSON(http.StatusOK, gin.H{"services": out})
}
