package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ptit-dev/qldsv-api/internal/middleware"
	"github.com/ptit-dev/qldsv-api/internal/models"
)

func currentSession(c *gin.Context) *models.Session {
	return middleware.SessionFromContext(c)
}
