package controllers

import (
	"io"
	"net/http"

	"naijafit/services"

	"github.com/gin-gonic/gin"
)

type PortabilityController struct {
	Port *services.PortabilityService
}

func NewPortabilityController(port *services.PortabilityService) *PortabilityController {
	return &PortabilityController{Port: port}
}

func (pc *PortabilityController) Export(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	bundle, err := pc.Port.Export(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, bundle)
}

func (pc *PortabilityController) Import(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	data, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable body"})
		return
	}

	added, err := pc.Port.Import(userID, data)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"meals_imported": added})
}
