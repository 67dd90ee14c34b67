package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/company-registry/app/controllers"
	"github.com/company-registry/helpers/utils"
)

// SetupAllRoutes đăng ký middleware và toàn bộ route của service
func SetupAllRoutes(router *gin.Engine, companyController *controllers.CompanyController, adminController *controllers.AdminController) {
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	router.Use(requestIDMiddleware())

	// health probes
	router.GET("/health", companyController.HealthCheck)
	router.GET("/ready", companyController.HealthCheck)
	router.GET("/live", companyController.HealthCheck)

	v1 := router.Group("/v1")
	{
		companies := v1.Group("/companies")
		{
			companies.POST("/check-name", companyController.CheckName)
			companies.GET("/search", companyController.SearchCompanies)
			companies.POST("/suggest-name", companyController.SuggestNames)
		}

		admin := v1.Group("/admin")
		{
			admin.GET("/stats", adminController.GetStats)
			admin.POST("/cache/invalidate", adminController.InvalidateCache)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":     "NOT_FOUND",
			"message":   "Endpoint không tồn tại",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})
}

// requestIDMiddleware gắn request id vào context và header trả về,
// ưu tiên id client gửi lên
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = utils.GenerateUUID()
		}
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}
