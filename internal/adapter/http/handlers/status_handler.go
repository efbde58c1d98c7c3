package handlers

import (
	"net/http"

	response "atelier_couture/internal/adapter/http/dto/response"
	"atelier_couture/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

// StatusHandler serves the static status taxonomy and size suggestions the
// client forms render from.
type StatusHandler struct{}

func NewStatusHandler() *StatusHandler {
	return &StatusHandler{}
}

func (h *StatusHandler) ListStatuses(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromStatuses(entities.AllStatuses()))
}

func (h *StatusHandler) ListFormStatuses(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromStatuses(entities.FormStatuses()))
}

func (h *StatusHandler) ListSizes(c *gin.Context) {
	c.JSON(http.StatusOK, entities.SuggestedSizes())
}
