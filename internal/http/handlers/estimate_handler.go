package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Thelma101/RideChecka-sub001/internal/modules/estimate"
	"github.com/Thelma101/RideChecka-sub001/internal/types"
)

type EstimateHandler struct {
	estimate *estimate.Service
}

func NewEstimateHandler(svc *estimate.Service) *EstimateHandler {
	return &EstimateHandler{estimate: svc}
}

type locationReq struct {
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

func (l locationReq) toLocation() types.Location {
	return types.Location{Address: l.Address, Point: types.Point{Lat: l.Lat, Lng: l.Lng}}
}

type estimateReq struct {
	Pickup      locationReq `json:"pickup"`
	Destination locationReq `json:"destination"`
}

func (h *EstimateHandler) Create(c *gin.Context) {
	var req estimateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	res, err := h.estimate.Estimate(c.Request.Context(), req.Pickup.toLocation(), req.Destination.toLocation())
	if err != nil {
		writeEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
