package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/pro-booking/internal/httperr"
	"github.com/BruksfildServices01/pro-booking/internal/middleware"
	"github.com/BruksfildServices01/pro-booking/internal/models"
	"github.com/BruksfildServices01/pro-booking/internal/timezone"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	db  *gorm.DB
	loc *time.Location
}

func NewAuditLogsHandler(db *gorm.DB, loc *time.Location) *AuditLogsHandler {
	return &AuditLogsHandler{db: db, loc: loc}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	professionalID := c.MustGet(middleware.ContextUserID).(uint)

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

	// --------------------------------------------------
	// Query base (sempre restrita ao profissional)
	// --------------------------------------------------

	q := h.db.
		WithContext(c.Request.Context()).
		Model(&models.AuditLog{}).
		Where("professional_id = ?", professionalID)

	// --------------------------------------------------
	// Filtros opcionais
	// --------------------------------------------------

	if action != "" {
		q = q.Where("action = ?", action)
	}

	if entity != "" {
		q = q.Where("entity = ?", entity)
	}

	if fromStr != "" {
		from, err := timezone.ParseDate(fromStr, h.loc)
		if err != nil {
			httperr.BadRequest(c, "invalid_from", "Data inicial inválida.")
			return
		}
		q = q.Where("created_at >= ?", from.UTC())
	}

	if toStr != "" {
		to, err := timezone.ParseDate(toStr, h.loc)
		if err != nil {
			httperr.BadRequest(c, "invalid_to", "Data final inválida.")
			return
		}
		q = q.Where("created_at < ?", to.AddDate(0, 0, 1).UTC())
	}

	// --------------------------------------------------
	// Total
	// --------------------------------------------------

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		httperr.Internal(c, "audit_count_failed", "Erro ao contar logs.")
		return
	}

	// --------------------------------------------------
	// Listagem
	// --------------------------------------------------

	var logs []models.AuditLog
	if err := q.
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&logs).Error; err != nil {

		httperr.Internal(c, "audit_list_failed", "Erro ao listar logs.")
		return
	}

	c.JSON(200, gin.H{
		"page":  page,
		"limit": limit,
		"total": total,
		"logs":  logs,
	})
}
