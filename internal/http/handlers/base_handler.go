// Package handlers maps the HTTP surface onto the engine's two entry points.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Thelma101/RideChecka-sub001/internal/modules/catalog"
	"github.com/Thelma101/RideChecka-sub001/internal/modules/estimate"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(c *gin.Context, status int, msg string) {
	c.JSON(status, errorResponse{Error: msg})
}

func writeEngineError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, estimate.ErrBadRequest):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, catalog.ErrNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}
