package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mkoval/agenda/internal/config"
	"github.com/mkoval/agenda/internal/database"
	"github.com/mkoval/agenda/internal/database/analytics"
	"github.com/mkoval/agenda/internal/database/courses"
	"github.com/mkoval/agenda/internal/database/enrollments"
	"github.com/mkoval/agenda/internal/database/programs"
	"github.com/mkoval/agenda/internal/database/students"
	"github.com/mkoval/agenda/internal/database/teachers"
	http_controllers "github.com/mkoval/agenda/internal/http"
)

func Serve(router *gin.Engine, cfg *config.Config) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting Agenda v%s", version)

	// Initialize database
	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	// Build router configuration with all dependencies
	routerCfg := http_controllers.RouterConfig{
		Database:      db,
		Teachers:      teachers.NewRepository(db.DB),
		Courses:       courses.NewRepository(db.DB),
		Programs:      programs.NewRepository(db.DB),
		Students:      students.NewRepository(db.DB),
		Enrollments:   enrollments.NewRepository(db.DB),
		Analytics:     analytics.NewRepository(db.DB),
		TemplatesPath: cfg.UI.TemplatesPath,
		StaticPath:    cfg.UI.StaticPath,
		Version:       version,
	}

	router := http_controllers.NewRouter(routerCfg)

	Serve(router, cfg)
}
