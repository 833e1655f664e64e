package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Thelma101/RideChecka-sub001/internal/modules/estimate"
)

type ReportHandler struct {
	estimate *estimate.Service
}

func NewReportHandler(svc *estimate.Service) *ReportHandler {
	return &ReportHandler{estimate: svc}
}

type reportReq struct {
	ServiceID     string      `json:"serviceId"`
	Pickup        locationReq `json:"pickup"`
	Destination   locationReq `json:"destination"`
	ActualFare    float64     `json:"actualFare"`
	EstimatedFare float64     `json:"estimatedFare"`
	Note          string      `json:"note"`
}

func (h *ReportHandler) Create(c *gin.Context) {
	var req reportReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if req.ServiceID == "" {
		writeError(c, http.StatusBadRequest, "serviceId is required")
		return
	}
	err := h.estimate.SubmitFareReport(
		c.Request.Context(),
		req.ServiceID,
		req.Pickup.toLocation(), req.Destination.toLocation(),
		req.ActualFare, req.EstimatedFare,
		req.Note,
	)
	if err != nil {
		writeEngineError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "recorded"})
}
