package services

import (
	"log/slog"
	"strings"

	"github.com/legalmatch/legalmatch-backend/internal/models"
	"gorm.io/gorm"
)

const (
	LoginSuccess = "success"
	LoginFailure = "failure"

	SourceMaster  = "master"
	SourceRegular = "regular"
)

// LoginMeta carries the caller's network origin for audit purposes.
type LoginMeta struct {
	IP        string
	UserAgent string
}

type AuditService struct {
	db *gorm.DB
}

func NewAuditService(db *gorm.DB) *AuditService {
	return &AuditService{db: db}
}

// RecordLogin appends one audit row for a credential attempt. Audit storage
// problems must never surface to the authentication decision, so failures are
// logged and dropped.
func (s *AuditService) RecordLogin(identity, role, status, source string, meta LoginMeta) {
	entry := models.LoginAudit{
		Identity:      truncate(orUnknown(identity), 255),
		RoleAttempted: truncate(orUnknown(role), 50),
		Status:        status,
		Source:        source,
		IPAddress:     truncate(meta.IP, 45),
		UserAgent:     truncate(meta.UserAgent, 512),
	}
	if err := s.db.Create(&entry).Error; err != nil {
		slog.Error("login audit write failed", "actor", entry.Identity, "action", "login_audit", "error", err)
	}
}

// AuditPage is one page of login audit entries for the admin monitoring API.
type AuditPage struct {
	Items   []models.LoginAudit `json:"items"`
	Total   int64               `json:"total"`
	Page    int                 `json:"page"`
	PerPage int                 `json:"per_page"`
	Sort    string              `json:"sort"`
}

// ListLoginAudit returns a page of audit entries ordered by creation time.
// Page starts at 1, perPage is clamped to 1..100, sort is asc or desc. A
// store failure on this read path degrades to an empty page.
func (s *AuditService) ListLoginAudit(page, perPage int, sort string) AuditPage {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 25
	}
	if perPage > 100 {
		perPage = 100
	}
	dir := "DESC"
	if strings.EqualFold(sort, "asc") {
		dir = "ASC"
		sort = "asc"
	} else {
		sort = "desc"
	}

	out := AuditPage{Items: []models.LoginAudit{}, Page: page, PerPage: perPage, Sort: sort}

	if err := s.db.Model(&models.LoginAudit{}).Count(&out.Total).Error; err != nil {
		slog.Error("login audit count failed", "error", err)
		return out
	}
	err := s.db.
		Order("created_at " + dir).Order("id " + dir).
		Limit(perPage).Offset((page - 1) * perPage).
		Find(&out.Items).Error
	if err != nil {
		slog.Error("login audit listing failed", "error", err)
		out.Items = []models.LoginAudit{}
	}
	return out
}

func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
