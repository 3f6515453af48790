package app

import (
	"context"

	"pengelola-cuti/internal/accrual"
	"pengelola-cuti/internal/auth"
	"pengelola-cuti/internal/config"
	"pengelola-cuti/internal/employee"
	"pengelola-cuti/internal/leave"
	"pengelola-cuti/internal/leavebalance"
	"pengelola-cuti/internal/messaging/kafka"
	"pengelola-cuti/internal/middleware"
	"pengelola-cuti/internal/notification"
	"pengelola-cuti/internal/position"
	"pengelola-cuti/internal/rbac"
	"pengelola-cuti/internal/rbac/infra"
	"pengelola-cuti/internal/rbac/rbac_http"
	"pengelola-cuti/internal/setting"
	"pengelola-cuti/internal/shared/counter"
	"pengelola-cuti/internal/specialleave"
	"pengelola-cuti/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Modules holds the services other processes (and tests) need after wiring.
type Modules struct {
	Auth auth.Service
	RBAC rbac.Service
}

func registerModules(
	ctx context.Context,
	router *gin.Engine,
	cfg *config.Config,
	gormDB *gorm.DB,
	rdb *redis.Client,
	sender notification.Sender,
	logger *zap.Logger,
) (*Modules, error) {
	policy, err := leavebalance.ParseNegativePolicy(cfg.NegativeBalancePolicy)
	if err != nil {
		return nil, err
	}

	// --- Repositories ---
	rbacRepo := rbac.NewRepository(gormDB)
	authRepo := auth.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	ledgerRepo := leavebalance.NewRepository(gormDB)
	accrualRepo := accrual.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	specialLeaveRepo := specialleave.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(gormDB)
	positionRepo := position.NewRepository(gormDB)
	settingRepo := setting.NewRepository(gormDB)
	userRepo := user.NewRepository(gormDB)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return nil, err
	}
	rbacService, err := rbac.NewService(ctx, rbacRepo, enforcer, logger)
	if err != nil {
		return nil, err
	}

	// --- Services ---
	ledger := leavebalance.NewLedger(gormDB, ledgerRepo, policy, logger)
	scheduler := accrual.NewScheduler(accrualRepo, ledger, logger)
	notifier := notification.NewNotifier(notification.NewDirectory(gormDB), sender, logger)

	authService := auth.NewService(authRepo, auth.NewRedisRefreshStore(rdb), auth.TokenConfig{
		Secret:     cfg.JWTSecret,
		AccessTTL:  cfg.AccessTokenTTL,
		RefreshTTL: cfg.RefreshTokenTTL,
	}, logger)
	employeeService := employee.NewService(gormDB, employeeRepo, counterRepo, scheduler, ledger, outboxRepo, rdb, logger)
	leaveService := leave.NewService(gormDB, leaveRepo, ledger, outboxRepo, notifier, logger)
	specialLeaveService := specialleave.NewService(gormDB, specialLeaveRepo, outboxRepo, notifier, logger)
	positionService := position.NewService(gormDB, positionRepo, rdb, logger)
	settingService := setting.NewService(settingRepo, rdb, logger)
	userService := user.NewService(userRepo, logger)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, auth.CookieConfig{
		Secure:     cfg.IsProduction(),
		AccessTTL:  cfg.AccessTokenTTL,
		RefreshTTL: cfg.RefreshTokenTTL,
	})
	employeeHandler := employee.NewHandler(employeeService, logger)
	balanceHandler := leavebalance.NewHandler(ledger, logger)
	leaveHandler := leave.NewHandler(leaveService, logger)
	specialLeaveHandler := specialleave.NewHandler(specialLeaveService, logger)
	positionHandler := position.NewHandler(positionService)
	settingHandler := setting.NewHandler(settingService)
	rbacHandler := rbac.NewHandler(rbacService)
	userHandler := user.NewHandler(userService, logger)

	// --- Routes Registration ---
	authMW := middleware.AuthMiddleware(cfg.JWTSecret)
	idempotency := middleware.Idempotency(rdb, logger)

	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler, rbacService, authMW)
		employee.RegisterRoutes(api, employeeHandler, rbacService, authMW, idempotency, logger)
		leavebalance.RegisterRoutes(api, balanceHandler, rbacService, authMW)
		leave.RegisterRoutes(api, leaveHandler, rbacService, authMW, idempotency)
		specialleave.RegisterRoutes(api, specialLeaveHandler, rbacService, authMW, idempotency)
		position.RegisterRoutes(api, positionHandler, rbacService, authMW)
		setting.RegisterRoutes(api, settingHandler, rbacService, authMW)
		rbac_http.RegisterRoutes(api, rbacHandler, rbacService, authMW)
		user.RegisterRoutes(api, userHandler, rbacService, authMW, logger)
	}

	return &Modules{Auth: authService, RBAC: rbacService}, nil
}
