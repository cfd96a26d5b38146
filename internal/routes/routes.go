package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/attendance-tracker/internal/audit"
	"github.com/BruksfildServices01/attendance-tracker/internal/config"
	"github.com/BruksfildServices01/attendance-tracker/internal/handlers"
	infraRepo "github.com/BruksfildServices01/attendance-tracker/internal/infra/repository"
	"github.com/BruksfildServices01/attendance-tracker/internal/middleware"
	"github.com/BruksfildServices01/attendance-tracker/internal/policycache"
	ucAttendance "github.com/BruksfildServices01/attendance-tracker/internal/usecase/attendance"
	ucMembership "github.com/BruksfildServices01/attendance-tracker/internal/usecase/membership"
	ucPolicy "github.com/BruksfildServices01/attendance-tracker/internal/usecase/policy"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, cache *policycache.Cache) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	attendanceRepo := infraRepo.NewAttendanceGormRepository(db)
	settingsRepo := infraRepo.NewSettingsGormRepository(db)
	membershipRepo := infraRepo.NewMembershipGormRepository(db)

	auditDispatcher := audit.NewDispatcher(db)

	// ======================================================
	// 🧠 USE CASES
	// ======================================================
	authorizer := ucMembership.NewAuthorizer(membershipRepo)
	policyResolver := ucPolicy.NewResolver(settingsRepo, cache)

	enrollUC := ucAttendance.NewEnroll(attendanceRepo, authorizer, auditDispatcher)
	checkInUC := ucAttendance.NewRecordCheckIn(attendanceRepo, policyResolver, authorizer)
	checkOutUC := ucAttendance.NewRecordCheckOut(attendanceRepo, policyResolver, authorizer)
	fileExcuseUC := ucAttendance.NewFileExcuse(attendanceRepo, policyResolver, authorizer)
	reviewExcuseUC := ucAttendance.NewReviewExcuse(attendanceRepo, policyResolver, authorizer)
	overrideUC := ucAttendance.NewManualOverride(attendanceRepo, policyResolver, authorizer)
	lockUC := ucAttendance.NewSetLock(attendanceRepo, authorizer)
	sweepUC := ucAttendance.NewSweepAbsences(attendanceRepo, policyResolver, authorizer)

	inviteUC := ucMembership.NewInviteMember(membershipRepo, authorizer, auditDispatcher)
	acceptUC := ucMembership.NewAcceptInvite(membershipRepo, auditDispatcher)
	setStatusUC := ucMembership.NewSetStatus(membershipRepo, authorizer, auditDispatcher)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	attendanceHandler := handlers.NewAttendanceHandler(
		db,
		authorizer,
		enrollUC,
		checkInUC,
		checkOutUC,
		fileExcuseUC,
		reviewExcuseUC,
		overrideUC,
		lockUC,
		sweepUC,
	)

	settingsHandler := handlers.NewSettingsHandler(settingsRepo, membershipRepo, authorizer, auditDispatcher)
	policyHandler := handlers.NewPolicyHandler(policyResolver, authorizer)
	membershipHandler := handlers.NewMembershipHandler(inviteUC, acceptUC, setStatusUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(db, authorizer)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			// ------------------------------
			// ATTENDANCE
			// ------------------------------
			secured.POST("/me/events/:id/enroll", attendanceHandler.Enroll)
			secured.POST("/me/events/:id/sweep-absences", attendanceHandler.SweepAbsences)

			secured.GET("/me/records/:id", attendanceHandler.GetRecord)
			secured.POST("/me/records/:id/check-in", attendanceHandler.CheckIn)
			secured.POST("/me/records/:id/check-out", attendanceHandler.CheckOut)
			secured.POST("/me/records/:id/excuse", attendanceHandler.FileExcuse)
			secured.PATCH("/me/records/:id/excuse/review", attendanceHandler.ReviewExcuse)
			secured.PATCH("/me/records/:id/override", attendanceHandler.Override)
			secured.PATCH("/me/records/:id/lock", attendanceHandler.Lock)
			secured.PATCH("/me/records/:id/unlock", attendanceHandler.Unlock)

			// ------------------------------
			// SETTINGS & POLICY
			// ------------------------------
			secured.GET("/me/settings/:entityType/:entityId", settingsHandler.Get)
			secured.PUT("/me/settings/:entityType/:entityId", settingsHandler.Put)
			secured.GET("/me/policy/events/:id", policyHandler.GetForEvent)

			// ------------------------------
			// MEMBERSHIPS
			// ------------------------------
			secured.POST("/me/memberships", membershipHandler.Invite)
			secured.POST("/memberships/accept", membershipHandler.Accept)
			secured.PATCH("/me/memberships/:id/status", membershipHandler.SetStatus)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
