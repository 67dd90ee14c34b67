package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/company-registry/app/requests"
	"github.com/company-registry/app/responses"
	"github.com/company-registry/app/services"
)

const serviceVersion = "1.0.0"

// CompanyController xử lý các endpoint kiểm tra, tìm kiếm và gợi ý tên
type CompanyController struct {
	service *services.CompanyService
	logger  *zap.Logger
}

// NewCompanyController tạo mới CompanyController
func NewCompanyController(service *services.CompanyService, logger *zap.Logger) *CompanyController {
	return &CompanyController{service: service, logger: logger}
}

// CheckName POST /v1/companies/check-name
func (ctrl *CompanyController) CheckName(c *gin.Context) {
	start := time.Now()

	var req requests.CheckNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Error:     "INVALID_REQUEST",
			Message:   "Thiếu trường company_name",
			Timestamp: time.Now().Format(time.RFC3339),
			RequestID: c.GetString("request_id"),
		})
		return
	}

	result, cacheHit, err := ctrl.service.CheckName(c.Request.Context(), req.CompanyName)
	if err != nil {
		if errors.Is(err, services.ErrNameTooShort) {
			c.JSON(http.StatusBadRequest, responses.ErrorResponse{
				Error:     "NAME_TOO_SHORT",
				Message:   err.Error(),
				Timestamp: time.Now().Format(time.RFC3339),
				RequestID: c.GetString("request_id"),
			})
			return
		}
		ctrl.logger.Error("Lỗi kiểm tra tên", zap.Error(err))
		c.JSON(http.StatusInternalServerError, responses.ErrorResponse{
			Error:     "INTERNAL_ERROR",
			Message:   "Đã xảy ra lỗi trong quá trình xử lý",
			Timestamp: time.Now().Format(time.RFC3339),
			RequestID: c.GetString("request_id"),
		})
		return
	}

	c.JSON(http.StatusOK, responses.CheckNameResponse{
		Status:           result.Status,
		Message:          result.Message,
		Details:          result.Details,
		ProcessingTimeMs: float64(time.Since(start).Microseconds()) / 1000.0,
		CacheHit:         cacheHit,
	})
}

// SearchCompanies GET /v1/companies/search?q=
func (ctrl *CompanyController) SearchCompanies(c *gin.Context) {
	start := time.Now()

	query := c.Query("q")
	entries, cacheHit := ctrl.service.SearchCompanies(c.Request.Context(), query)

	c.JSON(http.StatusOK, responses.CompanySearchResponse{
		Results:          entries,
		Total:            len(entries),
		ProcessingTimeMs: float64(time.Since(start).Microseconds()) / 1000.0,
		CacheHit:         cacheHit,
	})
}

// SuggestNames POST /v1/companies/suggest-name
func (ctrl *CompanyController) SuggestNames(c *gin.Context) {
	start := time.Now()

	var req requests.SuggestNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Error:     "INVALID_REQUEST",
			Message:   "Thiếu trường keyword",
			Timestamp: time.Now().Format(time.RFC3339),
			RequestID: c.GetString("request_id"),
		})
		return
	}

	suggestions := ctrl.service.SuggestNames(req.Keyword)

	c.JSON(http.StatusOK, responses.SuggestNameResponse{
		Suggestions:      suggestions,
		ProcessingTimeMs: float64(time.Since(start).Microseconds()) / 1000.0,
	})
}

// HealthCheck GET /health
func (ctrl *CompanyController) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, responses.HealthCheckResponse{
		Status:    "healthy",
		Timestamp: time.Now().Format(time.RFC3339),
		Uptime:    time.Since(ctrl.service.GetStartTime()).String(),
		Version:   serviceVersion,
		Services: map[string]string{
			"index": "ready",
		},
	})
}
