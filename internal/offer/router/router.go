// Package router provides offer module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	accountRepository "github.com/crewmatch/staffing/internal/account/repository"
	"github.com/crewmatch/staffing/internal/notification"
	"github.com/crewmatch/staffing/internal/offer/handler"
	"github.com/crewmatch/staffing/internal/offer/repository"
	"github.com/crewmatch/staffing/internal/offer/service"
	teamrequestRepository "github.com/crewmatch/staffing/internal/teamrequest/repository"
)

// RegisterRoutes registers offer module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger, notifier notification.Notifier) {
	repo := repository.New(db)
	requests := teamrequestRepository.New(db)
	accounts := accountRepository.New(db)
	svc := service.New(repo, requests, accounts, db, logger, notifier)
	h := handler.New(svc, logger)

	r.POST("/offer/send", h.SendOffers)
	r.POST("/offer/accept", h.AcceptOffer)
	r.GET("/offer/list", h.ListOffers)
	r.GET("/worker/summary", h.GetWorkerSummary)
}
