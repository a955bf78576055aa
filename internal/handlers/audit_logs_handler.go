package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/service-on-wheel/internal/httperr"
	"github.com/BruksfildServices01/service-on-wheel/internal/httpresp"
	"github.com/BruksfildServices01/service-on-wheel/internal/middleware"
	"github.com/BruksfildServices01/service-on-wheel/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct{}

func NewAuditLogsHandler() *AuditLogsHandler {
	return &AuditLogsHandler{}
}

type AuditLogsPage struct {
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
	Total int64             `json:"total"`
	Logs  []models.AuditLog `json:"logs"`
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		httperr.Unauthorized(c, middleware.MsgInvalidToken)
		return
	}

	action := c.Query("action")
	entity := c.Query("entity")
	fromStr := c.Query("from")
	toStr := c.Query("to")

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	offset := (page - 1) * limit

	conn, err := middleware.Scope(c).DB()
	if err != nil {
		httperr.Respond(c, httperr.ErrInternal(httperr.MsgDatabaseFailure, err))
		return
	}

	// --------------------------------------------------
	// Base query, always restricted to the caller
	// --------------------------------------------------

	q := conn.WithContext(c.Request.Context()).
		Model(&models.AuditLog{}).
		Where("user_id = ?", userID)

	if action != "" {
		q = q.Where("action = ?", action)
	}

	if entity != "" {
		q = q.Where("entity = ?", entity)
	}

	if fromStr != "" {
		if from, err := time.Parse("2006-01-02", fromStr); err == nil {
			q = q.Where("created_at >= ?", from)
		}
	}

	if toStr != "" {
		if to, err := time.Parse("2006-01-02", toStr); err == nil {
			q = q.Where("created_at < ?", to.Add(24*time.Hour))
		}
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		httperr.Respond(c, httperr.ErrInternal(httperr.MsgDatabaseFailure, err))
		return
	}

	logs := []models.AuditLog{}
	if err := q.
		Order("id DESC").
		Limit(limit).
		Offset(offset).
		Find(&logs).Error; err != nil {

		httperr.Respond(c, httperr.ErrInternal(httperr.MsgDatabaseFailure, err))
		return
	}

	httpresp.OK(c, AuditLogsPage{
		Page:  page,
		Limit: limit,
		Total: total,
		Logs:  logs,
	})
}
