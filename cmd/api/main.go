package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/worksight/worksight-backend-go/internal/config"
	appHTTP "github.com/worksight/worksight-backend-go/internal/handler/http"
	"github.com/worksight/worksight-backend-go/internal/pkg/clock"
	"github.com/worksight/worksight-backend-go/internal/pkg/cron"
	"github.com/worksight/worksight-backend-go/internal/pkg/database"
	"github.com/worksight/worksight-backend-go/internal/pkg/jwt"
	"github.com/worksight/worksight-backend-go/internal/pkg/oauth"
	"github.com/worksight/worksight-backend-go/internal/repository/postgresql"
	analyticsService "github.com/worksight/worksight-backend-go/internal/service/analytics"
	attendanceService "github.com/worksight/worksight-backend-go/internal/service/attendance"
	authService "github.com/worksight/worksight-backend-go/internal/service/auth"
	"github.com/worksight/worksight-backend-go/internal/service/directory"
	"github.com/worksight/worksight-backend-go/internal/service/reconcile"
	userService "github.com/worksight/worksight-backend-go/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	locationRepo := postgresql.NewLocationRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	analyticsRepo := postgresql.NewAnalyticsRepository(db)
	refreshTokenRepo := postgresql.NewRefreshTokenRepository(db)
	txManager := postgresql.NewTxManager(db)

	clk := clock.New(cfg.Attendance.Timezone)

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	googleSvc := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)

	reconcileSvc := reconcile.NewService(attendanceRepo, userRepo, txManager, clk, cfg.Attendance.AbsentCutoffHour)
	attendanceSvc := attendanceService.NewService(attendanceRepo, userRepo, locationRepo, shiftRepo, clk)
	analyticsSvc := analyticsService.NewService(analyticsRepo, userRepo, locationRepo, reconcileSvc, clk)
	authSvc := authService.NewService(userRepo, refreshTokenRepo, jwtSvc, googleSvc, clk)
	userSvc := userService.NewService(userRepo, locationRepo, departmentRepo)
	directorySvc := directory.NewService(locationRepo, departmentRepo, shiftRepo)

	scheduler := cron.NewScheduler()
	scheduler.AddJob("attendance-backfill", 15*time.Minute, reconcileSvc.ReconcileToday)
	scheduler.AddJob("absent-sweep", 30*time.Minute, reconcileSvc.AutoMarkAbsentAfterHours)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(appHTTP.RouterDeps{
		JWTService: jwtSvc,
		Auth:       appHTTP.NewAuthHandler(authSvc, googleSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Analytics:  appHTTP.NewAnalyticsHandler(analyticsSvc),
		Directory:  appHTTP.NewDirectoryHandler(directorySvc, directorySvc.Departments(), directorySvc.Shifts()),
		Users:      appHTTP.NewUserHandler(userSvc),

		AppName:        "worksight",
		AppEnv:         cfg.App.Env,
		AllowedOrigins: []string{cfg.App.FrontendURL},
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
