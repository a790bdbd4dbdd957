package router

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/magic-sketchbook/backend/controller"
)

func SetRouter(server *gin.Engine, sketch *controller.SketchController) {
	server.GET("/", controller.Status)

	api := server.Group("/")
	api.Use(gzip.Gzip(gzip.DefaultCompression))
	{
		api.POST("/generate-image", sketch.GenerateImage)
		api.POST("/chat-to-draw", sketch.ChatToDraw)
	}
}
