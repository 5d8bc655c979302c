// Package router provides teamrequest module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	accountRepository "github.com/crewmatch/staffing/internal/account/repository"
	"github.com/crewmatch/staffing/internal/teamrequest/handler"
	"github.com/crewmatch/staffing/internal/teamrequest/repository"
	"github.com/crewmatch/staffing/internal/teamrequest/service"
)

// RegisterRoutes registers teamrequest module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db)
	accounts := accountRepository.New(db)
	svc := service.New(repo, accounts, db, logger)
	h := handler.New(svc, logger)

	r.POST("/demand/create", h.CreateDemand)
	r.GET("/demand/get", h.GetDemand)
	r.GET("/demand/roles", h.GetRoleSummary)
}
