package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const serviceName = "Magic Sketchbook Backend"

// Status always answers ok, even when the service is misconfigured.
func Status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": serviceName,
	})
}
