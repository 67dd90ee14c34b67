package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/company-registry/app/responses"
	"github.com/company-registry/app/services"
)

// AdminController các endpoint vận hành
type AdminController struct {
	service *services.CompanyService
	logger  *zap.Logger
}

// NewAdminController tạo mới AdminController
func NewAdminController(service *services.CompanyService, logger *zap.Logger) *AdminController {
	return &AdminController{service: service, logger: logger}
}

// GetStats GET /v1/admin/stats
func (ctrl *AdminController) GetStats(c *gin.Context) {
	cacheStats, err := ctrl.service.GetCacheStats(c.Request.Context())
	if err != nil {
		ctrl.logger.Warn("Không thể lấy thống kê cache", zap.Error(err))
	}

	c.JSON(http.StatusOK, responses.AdminStatsResponse{
		IndexSize:    ctrl.service.IndexSize(),
		IndexDropped: ctrl.service.IndexDropped(),
		Requests:     ctrl.service.GetStats(),
		Cache:        cacheStats,
		Uptime:       time.Since(ctrl.service.GetStartTime()).String(),
	})
}

// InvalidateCache POST /v1/admin/cache/invalidate
func (ctrl *AdminController) InvalidateCache(c *gin.Context) {
	if err := ctrl.service.InvalidateCache(c.Request.Context()); err != nil {
		ctrl.logger.Error("Lỗi xóa cache", zap.Error(err))
		c.JSON(http.StatusInternalServerError, responses.ErrorResponse{
			Error:     "CACHE_CLEAR_FAILED",
			Message:   "Không thể xóa cache",
			Timestamp: time.Now().Format(time.RFC3339),
			RequestID: c.GetString("request_id"),
		})
		return
	}

	ctrl.logger.Info("Đã xóa toàn bộ cache kết quả")
	c.JSON(http.StatusOK, gin.H{
		"message":   "Đã xóa cache",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
