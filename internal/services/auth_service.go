package services

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/legalmatch/legalmatch-backend/internal/config"
	"github.com/legalmatch/legalmatch-backend/internal/dto"
	"github.com/legalmatch/legalmatch-backend/internal/models"
	"github.com/legalmatch/legalmatch-backend/internal/validation"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	// ErrDenied covers every failed attempt; the audit trail carries the detail.
	ErrDenied     = errors.New("invalid email or password")
	ErrEmailTaken = errors.New("email already registered")
)

// Principal is the authenticated identity plus the role granted for the
// session. A master principal is role-scoped to the requested role and is not
// backed by an Account row.
type Principal struct {
	AccountID *uuid.UUID
	Email     string
	Name      string
	Role      string
	IsMaster  bool
}

// verifyResult is one strategy's view of an attempt. recognized means the
// identity belongs to this strategy's store, whether or not the secret
// verified.
type verifyResult struct {
	principal  *Principal
	recognized bool
}

type verifyStrategy interface {
	source() string
	verify(email, secret, role string) verifyResult
}

// AuthService composes the credential stores into one role-scoped
// verification decision and emits an audit entry per attempt.
type AuthService struct {
	db         *gorm.DB
	cfg        *config.Config
	audit      *AuditService
	strategies []verifyStrategy
}

func NewAuthService(db *gorm.DB, cfg *config.Config, audit *AuditService) *AuthService {
	return &AuthService{
		db:    db,
		cfg:   cfg,
		audit: audit,
		strategies: []verifyStrategy{
			&accountStrategy{db: db},
			&masterStrategy{db: db},
		},
	}
}

// Authenticate runs the verification chain in order, first grant wins. Every
// attempt produces exactly one audit entry; a failed attempt is tagged with
// the source of the last strategy that recognized the identity.
func (s *AuthService) Authenticate(identity, secret, role string, meta LoginMeta) (*Principal, error) {
	email := strings.ToLower(strings.TrimSpace(identity))
	source := SourceRegular

	if email != "" && secret != "" {
		for _, st := range s.strategies {
			res := st.verify(email, secret, role)
			if res.recognized {
				source = st.source()
			}
			if res.principal != nil {
				s.audit.RecordLogin(email, role, LoginSuccess, st.source(), meta)
				return res.principal, nil
			}
		}
	}

	s.audit.RecordLogin(email, role, LoginFailure, source, meta)
	return nil, ErrDenied
}

func (s *AuthService) Register(req *dto.RegisterRequest) (*Principal, error) {
	name := validation.Sanitize(req.Name)
	email := strings.ToLower(validation.Sanitize(req.Email))

	if name == "" {
		return nil, &ValidationError{Field: "name", Message: "is required"}
	}
	if !validation.ValidEmail(email) {
		return nil, &ValidationError{Field: "email", Message: "must be a valid email address"}
	}
	if len(req.Password) < 8 {
		return nil, &ValidationError{Field: "password", Message: "must be at least 8 characters"}
	}

	var existing models.User
	if err := s.db.Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Phone:        validation.NormalizePhone(validation.Sanitize(req.Phone)),
		Role:         models.RoleUser,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	id := user.ID
	return &Principal{AccountID: &id, Email: user.Email, Name: user.Name, Role: user.Role}, nil
}

// EnsureMasterIdentity reseeds the break-glass credential from configuration
// on every startup. Existing rows get their hash and role flags rewritten.
func (s *AuthService) EnsureMasterIdentity() error {
	if s.cfg.MasterEmail == "" || s.cfg.MasterPassword == "" {
		slog.Warn("master identity not configured, seeding skipped")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(s.cfg.MasterPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash master password: %w", err)
	}

	record := models.MasterIdentity{
		Email:        s.cfg.MasterEmail,
		PasswordHash: string(hash),
		CanAdmin:     true,
		CanUser:      true,
		IsActive:     true,
	}
	err = s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{"password_hash", "can_admin", "can_user", "is_active", "updated_at"}),
	}).Create(&record).Error
	if err != nil {
		return fmt.Errorf("failed to seed master identity: %w", err)
	}
	return nil
}

// accountStrategy verifies against primary Account rows.
type accountStrategy struct {
	db *gorm.DB
}

func (st *accountStrategy) source() string { return SourceRegular }

func (st *accountStrategy) verify(email, secret, role string) verifyResult {
	var user models.User
	if err := st.db.Where("email = ?", email).First(&user).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			slog.Error("account lookup failed", "action", "authenticate", "error", err)
		}
		return verifyResult{}
	}

	res := verifyResult{recognized: true}
	if role != "" && user.Role != role {
		return res
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(secret)) != nil {
		return res
	}

	granted := user.Role
	if granted == "" {
		granted = models.RoleUser
	}
	id := user.ID
	res.principal = &Principal{AccountID: &id, Email: user.Email, Name: user.Name, Role: granted}
	return res
}

// masterStrategy verifies against the break-glass identity. A grant is scoped
// to exactly the requested role for the session.
type masterStrategy struct {
	db *gorm.DB
}

func (st *masterStrategy) source() string { return SourceMaster }

func (st *masterStrategy) verify(email, secret, role string) verifyResult {
	var master models.MasterIdentity
	if err := st.db.Where("email = ?", email).First(&master).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			slog.Error("master identity lookup failed", "action", "authenticate", "error", err)
		}
		return verifyResult{}
	}

	res := verifyResult{recognized: true}
	if !master.IsActive {
		return res
	}
	switch role {
	case models.RoleAdmin:
		if !master.CanAdmin {
			return res
		}
	case models.RoleUser, "":
		if !master.CanUser {
			return res
		}
	default:
		return res
	}
	if bcrypt.CompareHashAndPassword([]byte(master.PasswordHash), []byte(secret)) != nil {
		return res
	}

	granted := role
	if granted == "" {
		granted = models.RoleUser
	}
	res.principal = &Principal{Email: master.Email, Role: granted, IsMaster: true}
	return res
}
