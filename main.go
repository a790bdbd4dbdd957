package main

import (
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/magic-sketchbook/backend/common/config"
	"github.com/magic-sketchbook/backend/common/logger"
	"github.com/magic-sketchbook/backend/controller"
	"github.com/magic-sketchbook/backend/middleware"
	"github.com/magic-sketchbook/backend/pipeline"
	"github.com/magic-sketchbook/backend/router"
)

func main() {
	_ = godotenv.Load()
	logger.SetupLogger()

	cfg := config.Load()
	if cfg.ProjectID == "" {
		logger.SysLog("GOOGLE_CLOUD_PROJECT not set, AI and storage calls will fail")
	} else {
		logger.SysLogf("using project %s @ %s", cfg.ProjectID, cfg.Location)
	}
	if cfg.AgentID == "" {
		logger.SysLog("DIALOGFLOW_AGENT_ID not set, chat agent is disabled")
	}

	if cfg.DebugEnabled {
		logger.SysLog("running in debug mode")
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	server := gin.New()
	server.Use(middleware.PanicRecover(), middleware.RequestId(), middleware.CORS())
	middleware.SetUpLogger(server)

	pipe := pipeline.New(cfg)
	router.SetRouter(server, controller.NewSketchController(pipe))

	logger.SysLogf("server started on http://localhost:%s", cfg.Port)
	if err := server.Run(":" + cfg.Port); err != nil {
		logger.FatalLog("failed to start HTTP server: " + err.Error())
	}
}
