package app

import (
	"database/sql"
	"net/http"

	"go-hrms/internal/config"
	"go-hrms/internal/domain"
	"go-hrms/internal/employee"
	"go-hrms/internal/leave"
	"go-hrms/internal/messaging/kafka"
	"go-hrms/internal/metrics"
	"go-hrms/internal/middleware"
	"go-hrms/internal/rbac"
	"go-hrms/internal/rbac/infra"
	"go-hrms/internal/request"
	"go-hrms/internal/requesttype"
	"go-hrms/internal/shared/counter"
	"go-hrms/internal/shared/storage"
	"go-hrms/internal/timesheet"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

type modules struct {
	db     *sql.DB
	gormDB *gorm.DB
	rdb    *redis.Client
	files  storage.AttachmentStorage
	logger *zap.Logger
}

func registerModules(router *gin.Engine, cfg *config.Config, m modules) error {
	router.Use(
		middleware.RequestID(),
		middleware.Metrics(),
		middleware.ContextLogger(m.logger),
	)

	metricsHandler := metrics.Handler()
	router.GET("/metrics", func(c *gin.Context) {
		_ = metrics.UpdateDatabaseConnections(m.gormDB)
		metricsHandler.ServeHTTP(c.Writer, c.Request)
	})
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// --- Repositories ---
	typeRepo := requesttype.NewRepository(m.gormDB)
	employeeRepo := employee.NewRepository(m.gormDB)
	requestRepo := request.NewRepository(m.gormDB)
	leaveRepo := leave.NewRepository(m.gormDB)
	timesheetRepo := timesheet.NewRepository(m.gormDB)
	counterRepo := counter.NewRepository(m.gormDB)
	outboxRepo := kafka.NewOutboxRepository(m.db)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService, err := rbac.NewService(enforcer, m.logger)
	if err != nil {
		return err
	}

	// --- Services ---
	typeService := requesttype.NewService(typeRepo, m.rdb, m.logger)
	directory := employee.NewDirectory(employeeRepo, m.logger)
	ledger := leave.NewLedger(leaveRepo, m.logger)
	requestService := request.NewService(m.db, requestRepo, typeService,
		request.WithBalanceChecker(ledger),
		request.WithManagerLookup(directory),
		request.WithCounter(counterRepo),
		request.WithOutbox(outboxRepo),
		request.WithLogger(m.logger),
	)
	timeOffService := leave.NewTimeOffService(requestService, typeService, ledger, m.files, m.logger)
	timesheetService := timesheet.NewService(m.db, timesheetRepo, requestRepo, requestService, typeService,
		timesheet.WithOutbox(outboxRepo),
		timesheet.WithTypeCode(cfg.Workflow.TimesheetTypeCode),
		timesheet.WithAutoApproveRoles(parseRoles(cfg.Workflow.AutoApproveRoles, m.logger)),
		timesheet.WithLogger(m.logger),
	)

	// --- Handlers ---
	typeHandler := requesttype.NewHandler(typeService, m.logger)
	employeeHandler := employee.NewHandler(directory, m.logger)
	requestHandler := request.NewHandler(requestService, m.logger)
	leaveHandler := leave.NewHandler(timeOffService, m.logger)
	timesheetHandler := timesheet.NewHandler(timesheetService, m.logger)
	rbacHandler := rbac.NewHandler(rbacService, m.logger)

	auth := middleware.AuthMiddleware(cfg.JWT.Secret)
	guards := middleware.WriteGuards{
		RateLimit:   middleware.RateLimitByUser(rate.Limit(cfg.Server.RateLimit), cfg.Server.RateBurst),
		Idempotency: middleware.Idempotency(m.rdb, m.logger),
	}

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		requesttype.RegisterRoutes(api, typeHandler, auth, rbacService)
		employee.RegisterRoutes(api, employeeHandler, auth, rbacService)
		request.RegisterRoutes(api, requestHandler, auth, rbacService, guards)
		leave.RegisterRoutes(api, leaveHandler, auth, rbacService, guards)
		timesheet.RegisterRoutes(api, timesheetHandler, auth, rbacService, guards)
		rbac.RegisterRoutes(api, rbacHandler, auth)
	}

	return nil
}

func parseRoles(values []string, logger *zap.Logger) []domain.Role {
	roles := make([]domain.Role, 0, len(values))
	for _, v := range values {
		role, ok := domain.ParseRole(v)
		if !ok {
			logger.Warn("ignoring unknown auto-approve role", zap.String("role", v))
			continue
		}
		roles = append(roles, role)
	}
	return roles
}
