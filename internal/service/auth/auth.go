// internal/service/auth/auth.go
package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math/rand"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/sawaidbasit2/aixosFire-backend/internal/domain/admin"
	"github.com/sawaidbasit2/aixosFire-backend/internal/domain/agent"
	"github.com/sawaidbasit2/aixosFire-backend/internal/domain/customer"
	xerrors "github.com/sawaidbasit2/aixosFire-backend/internal/pkg/errors"
	"github.com/sawaidbasit2/aixosFire-backend/internal/pkg/jwt"
	"github.com/sawaidbasit2/aixosFire-backend/internal/pkg/session"
	"github.com/sawaidbasit2/aixosFire-backend/internal/service/email"
	"github.com/sawaidbasit2/aixosFire-backend/internal/storage"
)

// Principal roles accepted by the login and password-reset endpoints.
const (
	RoleAgent    = "agent"
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

// Upload is a file received from a multipart form, already read into memory.
type Upload struct {
	Filename string
	Data     []byte
}

// QRAttacher generates and stores a QR asset for a customer record.
type QRAttacher interface {
	AttachQRCode(ctx context.Context, customerID int64, businessName string) (string, error)
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

// LoginResponse mirrors what the mobile and web clients expect: a bearer
// token plus the full principal record.
type LoginResponse struct {
	Auth  bool        `json:"auth"`
	Token string      `json:"token"`
	User  interface{} `json:"user"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role" binding:"required"`
}

type ResetPasswordRequest struct {
	Email       string `json:"email" binding:"required,email"`
	OTP         string `json:"otp" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
	Role        string `json:"role" binding:"required"`
}

// AuthService handles registration for both principal kinds, the shared
// login endpoint, and the OTP-based password reset flow.
type AuthService struct {
	agentRepo    agent.Repository
	customerRepo customer.Repository
	adminRepo    admin.Repository
	blobs        storage.BlobStore
	qr           QRAttacher
	tokens       *jwt.Manager
	limiter      *session.RateLimiter
	otp          *session.OTPStore
	mailer       *email.EmailSender
	logger       *zap.Logger
}

func NewAuthService(
	agentRepo agent.Repository,
	customerRepo customer.Repository,
	adminRepo admin.Repository,
	blobs storage.BlobStore,
	qr QRAttacher,
	tokens *jwt.Manager,
	limiter *session.RateLimiter,
	otp *session.OTPStore,
	mailer *email.EmailSender,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		agentRepo:    agentRepo,
		customerRepo: customerRepo,
		adminRepo:    adminRepo,
		blobs:        blobs,
		qr:           qr,
		tokens:       tokens,
		limiter:      limiter,
		otp:          otp,
		mailer:       mailer,
		logger:       logger,
	}
}

// RegisterAgent creates a Pending agent record. Both document uploads are
// optional; a failed upload aborts registration since the admin needs the
// documents to approve.
func (s *AuthService) RegisterAgent(ctx context.Context, req *agent.RegisterRequest, profilePhoto, cnicDocument *Upload) (*agent.Agent, error) {
	passwordHash, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	phone := strings.TrimSpace(req.Phone)
	if !strings.HasPrefix(phone, "+") {
		phone = "+92" + phone
	}

	a := &agent.Agent{
		Name:          req.Name,
		Email:         strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash:  passwordHash,
		Phone:         nullString(phone),
		CNIC:          nullString(req.CNIC),
		Territory:     nullString(req.Territory),
		Status:        agent.StatusPending,
		TermsAccepted: req.TermsAccepted,
	}

	if profilePhoto != nil {
		url, err := s.saveUpload(ctx, "agents", a.Email+"-profile", profilePhoto)
		if err != nil {
			return nil, fmt.Errorf("failed to store profile photo: %w", err)
		}
		a.ProfilePhoto = nullString(url)
	}

	if cnicDocument != nil {
		url, err := s.saveUpload(ctx, "cnic_documents", a.Email+"-cnic", cnicDocument)
		if err != nil {
			return nil, fmt.Errorf("failed to store cnic document: %w", err)
		}
		a.CNICDocument = nullString(url)
	}

	if err := s.agentRepo.Create(ctx, a); err != nil {
		s.logger.Error("failed to register agent", zap.String("email", a.Email), zap.Error(err))
		return nil, err
	}

	s.logger.Info("agent registered", zap.Int64("agent_id", a.ID), zap.String("email", a.Email))
	return a, nil
}

// RegisterCustomer creates an Active customer. A missing email gets a
// placeholder so the unique constraint holds. QR attachment is best-effort;
// the returned url is empty when it failed.
func (s *AuthService) RegisterCustomer(ctx context.Context, req *customer.RegisterRequest) (*customer.Customer, string, error) {
	passwordHash, err := hashPassword(req.Password)
	if err != nil {
		return nil, "", err
	}

	emailAddr := strings.TrimSpace(req.Email)
	if emailAddr == "" {
		emailAddr = customer.PlaceholderEmail()
	}

	c := &customer.Customer{
		BusinessName: req.BusinessName,
		OwnerName:    nullString(req.OwnerName),
		Email:        strings.ToLower(emailAddr),
		PasswordHash: passwordHash,
		Phone:        nullString(req.Phone),
		Address:      nullString(req.Address),
		BusinessType: nullString(req.BusinessType),
		Status:       customer.StatusActive,
	}

	if err := s.customerRepo.Create(ctx, c); err != nil {
		s.logger.Error("failed to register customer", zap.String("business_name", req.BusinessName), zap.Error(err))
		return nil, "", err
	}

	qrURL, err := s.qr.AttachQRCode(ctx, c.ID, c.BusinessName)
	if err != nil {
		s.logger.Warn("qr code attachment failed for customer",
			zap.Int64("customer_id", c.ID),
			zap.Error(err),
		)
		qrURL = ""
	}

	s.logger.Info("customer registered", zap.Int64("customer_id", c.ID))
	return c, qrURL, nil
}

// Login authenticates against the table matching the requested role. All
// credential failures collapse into ErrInvalidCredentials; only an approved
// but unapproved agent is told apart, via ErrAccountNotActive.
func (s *AuthService) Login(ctx context.Context, ip string, req *LoginRequest) (*LoginResponse, error) {
	emailAddr := strings.ToLower(strings.TrimSpace(req.Email))

	if s.limiter != nil {
		allowed, err := s.limiter.CheckLoginAttempt(ctx, ip, emailAddr)
		if err != nil {
			s.logger.Warn("login rate limiter unavailable", zap.Error(err))
		} else if !allowed {
			return nil, xerrors.ErrRateLimited
		}
	}

	var (
		userID int64
		user   interface{}
	)

	switch req.Role {
	case RoleAgent:
		a, err := s.agentRepo.FindByEmail(ctx, emailAddr)
		if err != nil {
			return nil, loginError(err)
		}
		if !passwordMatches(a.PasswordHash, req.Password) {
			return nil, xerrors.ErrInvalidCredentials
		}
		if a.Status != agent.StatusActive {
			return nil, xerrors.ErrAccountNotActive
		}
		userID, user = a.ID, a

	case RoleCustomer:
		c, err := s.customerRepo.FindByEmail(ctx, emailAddr)
		if err != nil {
			return nil, loginError(err)
		}
		if !passwordMatches(c.PasswordHash, req.Password) {
			return nil, xerrors.ErrInvalidCredentials
		}
		userID, user = c.ID, c

	case RoleAdmin:
		adm, err := s.adminRepo.FindByEmail(ctx, emailAddr)
		if err != nil {
			return nil, loginError(err)
		}
		if !passwordMatches(adm.PasswordHash, req.Password) {
			return nil, xerrors.ErrInvalidCredentials
		}
		userID, user = adm.ID, adm

	default:
		return nil, xerrors.Wrap(xerrors.ErrInvalidInput, "invalid role")
	}

	token, err := s.tokens.Generate(userID, req.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	if s.limiter != nil {
		s.limiter.ResetLoginAttempts(ctx, ip, emailAddr)
	}

	s.logger.Info("login succeeded", zap.Int64("user_id", userID), zap.String("role", req.Role))
	return &LoginResponse{Auth: true, Token: token, User: user}, nil
}

// ForgotPassword issues a one-time reset code by email. Whether the account
// exists is not revealed to the caller; an unknown address is a silent no-op.
func (s *AuthService) ForgotPassword(ctx context.Context, req *ForgotPasswordRequest) error {
	if !validRole(req.Role) {
		return xerrors.Wrap(xerrors.ErrInvalidInput, "invalid role")
	}
	if s.otp == nil || s.mailer == nil {
		return xerrors.Wrap(xerrors.ErrInternal, "password reset is not configured")
	}

	emailAddr := strings.ToLower(strings.TrimSpace(req.Email))

	if !s.principalExists(ctx, req.Role, emailAddr) {
		s.logger.Info("password reset requested for unknown account",
			zap.String("role", req.Role),
		)
		return nil
	}

	code := fmt.Sprintf("%06d", rand.Intn(1000000))
	if err := s.otp.Put(ctx, req.Role, emailAddr, code); err != nil {
		return fmt.Errorf("failed to store reset code: %w", err)
	}

	if err := s.mailer.SendPasswordResetOTP(emailAddr, code); err != nil {
		s.logger.Error("failed to send reset code", zap.Error(err))
		return fmt.Errorf("failed to send reset code: %w", err)
	}

	s.logger.Info("password reset code sent", zap.String("role", req.Role))
	return nil
}

// ResetPassword consumes the OTP and replaces the stored credential.
func (s *AuthService) ResetPassword(ctx context.Context, req *ResetPasswordRequest) error {
	if !validRole(req.Role) {
		return xerrors.Wrap(xerrors.ErrInvalidInput, "invalid role")
	}
	if s.otp == nil {
		return xerrors.Wrap(xerrors.ErrInternal, "password reset is not configured")
	}

	emailAddr := strings.ToLower(strings.TrimSpace(req.Email))

	if err := s.otp.Verify(ctx, req.Role, emailAddr, req.OTP); err != nil {
		return err
	}

	passwordHash, err := hashPassword(req.NewPassword)
	if err != nil {
		return err
	}

	switch req.Role {
	case RoleAgent:
		err = s.agentRepo.UpdatePassword(ctx, emailAddr, passwordHash)
	case RoleCustomer:
		err = s.customerRepo.UpdatePassword(ctx, emailAddr, passwordHash)
	case RoleAdmin:
		err = s.adminRepo.UpdatePassword(ctx, emailAddr, passwordHash)
	}
	if err != nil {
		return err
	}

	s.logger.Info("password reset completed", zap.String("role", req.Role))
	return nil
}

// ValidateToken parses and verifies a bearer token.
func (s *AuthService) ValidateToken(token string) (*jwt.Claims, error) {
	return s.tokens.Verify(token)
}

// EnsureSuperAdminExists seeds the initial back-office account on boot when
// the admins table has no row for the configured email.
func (s *AuthService) EnsureSuperAdminExists(ctx context.Context, emailAddr, password, name string) error {
	emailAddr = strings.ToLower(strings.TrimSpace(emailAddr))
	if emailAddr == "" || password == "" {
		return nil
	}

	_, err := s.adminRepo.FindByEmail(ctx, emailAddr)
	if err == nil {
		return nil
	}
	if !errors.Is(err, xerrors.ErrNotFound) {
		return err
	}

	passwordHash, err := hashPassword(password)
	if err != nil {
		return err
	}

	adm := &admin.Admin{Email: emailAddr, PasswordHash: passwordHash, Name: nullString(name)}
	if err := s.adminRepo.Create(ctx, adm); err != nil {
		return fmt.Errorf("failed to seed admin account: %w", err)
	}

	s.logger.Info("super admin seeded", zap.Int64("admin_id", adm.ID))
	return nil
}

func (s *AuthService) principalExists(ctx context.Context, role, emailAddr string) bool {
	var err error
	switch role {
	case RoleAgent:
		_, err = s.agentRepo.FindByEmail(ctx, emailAddr)
	case RoleCustomer:
		_, err = s.customerRepo.FindByEmail(ctx, emailAddr)
	case RoleAdmin:
		_, err = s.adminRepo.FindByEmail(ctx, emailAddr)
	}
	return err == nil
}

func (s *AuthService) saveUpload(ctx context.Context, dir, prefix string, u *Upload) (string, error) {
	ext := filepath.Ext(u.Filename)
	objectPath := fmt.Sprintf("%s/%s-%d%s", dir, prefix, time.Now().UnixMilli(), ext)
	return s.blobs.Save(ctx, objectPath, u.Data)
}

func validRole(role string) bool {
	return role == RoleAgent || role == RoleCustomer || role == RoleAdmin
}

func loginError(err error) error {
	if errors.Is(err, xerrors.ErrNotFound) {
		return xerrors.ErrInvalidCredentials
	}
	return err
}

func hashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

func passwordMatches(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
