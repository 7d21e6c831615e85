// internal/app/server.go
package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sawaidbasit2/aixosFire-backend/internal/config"
	"github.com/sawaidbasit2/aixosFire-backend/internal/db"
	adminHandler "github.com/sawaidbasit2/aixosFire-backend/internal/handlers/admin"
	agentHandler "github.com/sawaidbasit2/aixosFire-backend/internal/handlers/agent"
	authHandler "github.com/sawaidbasit2/aixosFire-backend/internal/handlers/auth"
	customerHandler "github.com/sawaidbasit2/aixosFire-backend/internal/handlers/customer"
	servicereqHandler "github.com/sawaidbasit2/aixosFire-backend/internal/handlers/servicereq"
	"github.com/sawaidbasit2/aixosFire-backend/internal/middleware"
	"github.com/sawaidbasit2/aixosFire-backend/internal/pkg/jwt"
	"github.com/sawaidbasit2/aixosFire-backend/internal/pkg/session"
	"github.com/sawaidbasit2/aixosFire-backend/internal/repository/postgres"
	adminsvc "github.com/sawaidbasit2/aixosFire-backend/internal/service/admin"
	agentsvc "github.com/sawaidbasit2/aixosFire-backend/internal/service/agent"
	authsvc "github.com/sawaidbasit2/aixosFire-backend/internal/service/auth"
	customersvc "github.com/sawaidbasit2/aixosFire-backend/internal/service/customer"
	"github.com/sawaidbasit2/aixosFire-backend/internal/service/email"
	servicereqsvc "github.com/sawaidbasit2/aixosFire-backend/internal/service/servicereq"
	visitsvc "github.com/sawaidbasit2/aixosFire-backend/internal/service/visit"
	"github.com/sawaidbasit2/aixosFire-backend/internal/storage"
)

type Server struct {
	cfg         config.AppConfig
	engine      *gin.Engine
	logger      *zap.Logger
	authService *authsvc.AuthService
}

func NewServer() *Server {
	cfg := config.Load()
	engine := gin.New()
	return &Server{cfg: cfg, engine: engine}
}

func (s *Server) Start() error {
	ctx := context.Background()

	// ----- Logger -----
	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer logger.Sync()
	s.logger = logger

	// ----- PostgreSQL -----
	pool, err := db.ConnectDB(ctx, s.cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}

	// ----- Redis (optional: rate limiting and OTP storage) -----
	var (
		rateLimiter *session.RateLimiter
		otpStore    *session.OTPStore
	)
	if s.cfg.RedisAddr != "" {
		redisClient, err := db.NewRedisClient(db.RedisConfig{
			Addr:     s.cfg.RedisAddr,
			Password: s.cfg.RedisPass,
			DB:       0,
			PoolSize: 10,
		})
		if err != nil {
			return fmt.Errorf("failed to connect to Redis: %w", err)
		}
		rateLimiter = session.NewRateLimiter(redisClient)
		otpStore = session.NewOTPStore(redisClient)
		log.Println("[REDIS] connected")
	} else {
		logger.Warn("REDIS_ADDR not set, login rate limiting and password reset are disabled")
	}

	// ----- JWT Manager -----
	jwtManager, err := jwt.NewManager(s.cfg.JWT)
	if err != nil {
		return fmt.Errorf("failed to build JWT manager: %w", err)
	}

	// ----- Blob storage -----
	blobs := storage.NewLocalStore(s.cfg.UploadDir, s.cfg.UploadBaseURL)

	// ----- Email -----
	var mailer *email.EmailSender
	if s.cfg.SMTPHost != "" {
		mailer = email.NewEmailSender(
			s.cfg.SMTPHost,
			s.cfg.SMTPPort,
			s.cfg.SMTPUser,
			s.cfg.SMTPPass,
			s.cfg.SMTPFromName,
			s.cfg.SMTPSecure,
		)
	} else {
		logger.Warn("SMTP_HOST not set, outgoing email is disabled")
	}

	// ----- Repositories -----
	agentRepo := postgres.NewAgentRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	visitRepo := postgres.NewVisitRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)
	serviceRepo := postgres.NewServiceRepository(pool)
	adminRepo := postgres.NewAdminRepository(pool)

	// ----- Services -----
	customerService := customersvc.NewCustomerService(
		customerRepo, inventoryRepo, serviceRepo, blobs, s.cfg.DeepLinkBase, logger,
	)
	visitService := visitsvc.NewVisitService(visitRepo, inventoryRepo, customerService, logger)
	agentService := agentsvc.NewAgentService(agentRepo, visitRepo, logger)
	serviceRequestService := servicereqsvc.NewServiceRequestService(serviceRepo, logger)
	adminService := adminsvc.NewAdminService(agentRepo, customerRepo, serviceRepo, logger)
	authService := authsvc.NewAuthService(
		agentRepo, customerRepo, adminRepo,
		blobs, customerService, jwtManager,
		rateLimiter, otpStore, mailer, logger,
	)
	s.authService = authService

	// ----- Super admin seed -----
	if err := s.initializeSuperAdmin(ctx); err != nil {
		logger.Error("failed to initialize super admin", zap.Error(err))
	}

	// ----- Handlers -----
	authHandlerInst := authHandler.NewAuthHandler(authService)
	agentHandlerInst := agentHandler.NewAgentHandler(agentService, visitService, customerService, blobs)
	customerHandlerInst := customerHandler.NewCustomerHandler(customerService, serviceRequestService)
	serviceHandlerInst := servicereqHandler.NewServiceHandler(serviceRequestService)
	adminHandlerInst := adminHandler.NewAdminHandler(adminService)

	// ----- Middlewares -----
	authMiddleware := middleware.NewAuthMiddleware(authService)

	s.engine.Use(
		middleware.RecoveryMiddleware(logger),
		middleware.LoggingMiddleware(logger),
		middleware.CORSMiddleware(),
	)

	// ----- Router -----
	handlers := &Handlers{
		AuthHandler:     authHandlerInst,
		AgentHandler:    agentHandlerInst,
		CustomerHandler: customerHandlerInst,
		ServiceHandler:  serviceHandlerInst,
		AdminHandler:    adminHandlerInst,
		AuthMiddleware:  authMiddleware,
	}
	SetupRouter(s.engine, s.cfg.UploadDir, handlers)

	// ----- Start HTTP -----
	log.Printf("Server running on %s", s.cfg.HTTPAddr)
	return s.engine.Run(s.cfg.HTTPAddr)
}

// initializeSuperAdmin creates the back-office account if it doesn't exist.
func (s *Server) initializeSuperAdmin(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	email := s.cfg.SuperAdminEmail
	password := s.cfg.SuperAdminPassword
	name := s.cfg.SuperAdminName

	if password == "" {
		s.logger.Warn("SUPER_ADMIN_PASSWORD not set, skipping super admin seed")
		return nil
	}
	if len(password) < 8 {
		return fmt.Errorf("super admin password must be at least 8 characters")
	}

	return s.authService.EnsureSuperAdminExists(ctx, email, password, name)
}
