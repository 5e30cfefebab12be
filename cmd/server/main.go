// cmd/server/main.go
package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/joho/godotenv"

	assignmentv1 "github.com/ekaraca/taskshare/api/proto/assignment/v1/generated"
	authv1 "github.com/ekaraca/taskshare/api/proto/auth/v1/generated"
	notificationv1 "github.com/ekaraca/taskshare/api/proto/notification/v1/generated"
	todov1 "github.com/ekaraca/taskshare/api/proto/todo/v1/generated"
	ent "github.com/ekaraca/taskshare/ent/generated"
	"github.com/ekaraca/taskshare/ent/generated/migrate"
	"github.com/ekaraca/taskshare/internal/config"
	"github.com/ekaraca/taskshare/internal/database"
	"github.com/ekaraca/taskshare/internal/middleware"
	"github.com/ekaraca/taskshare/internal/service"
	"github.com/ekaraca/taskshare/pkg/auth"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := cfg.ValidateConfig(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Connect to database with Ent
	log.Println("Connecting to PostgreSQL with Ent...")
	entClient, err := database.NewEntClient(database.Config{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
		Debug:    cfg.IsDevelopment(),
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if err := entClient.Close(); err != nil {
			log.Printf("Failed to close database connection: %v", err)
		}
	}()

	if cfg.Server.AutoMigrate {
		if err := runAutoMigration(context.Background(), entClient); err != nil {
			log.Fatalf("Failed to run auto migration: %v", err)
		}
	}

	tokenManager := auth.NewTokenManager(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessTokenDuration,
		cfg.JWT.RefreshTokenDuration,
	)

	// Initialize services
	notifier := service.NewEntNotifier()
	assignmentService := service.NewAssignmentService(entClient, notifier)
	todoService := service.NewTodoService(entClient, assignmentService)
	notificationService := service.NewNotificationService(entClient)
	authService := service.NewAuthService(entClient, tokenManager)

	// Initialize middleware
	authInterceptor := middleware.NewAuthInterceptor(tokenManager)

	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			authInterceptor.Unary(),
			loggingInterceptor,
		),
		grpc.ChainStreamInterceptor(
			authInterceptor.Stream(),
		),
	)

	// Register services
	authv1.RegisterAuthServiceServer(grpcServer, authService)
	todov1.RegisterTodoServiceServer(grpcServer, todoService)
	assignmentv1.RegisterAssignmentServiceServer(grpcServer, assignmentService)
	notificationv1.RegisterNotificationServiceServer(grpcServer, notificationService)

	// Register health check
	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("auth.v1.AuthService", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus("todo.v1.TodoService", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus("assignment.v1.AssignmentService", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus("notification.v1.NotificationService", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)

	if cfg.Server.EnableReflection {
		reflection.Register(grpcServer)
		log.Println("gRPC reflection enabled (disable in production)")
	}

	listener, err := net.Listen("tcp", fmt.Sprintf(":%s", cfg.Server.GRPCPort))
	if err != nil {
		log.Fatalf("Failed to listen: %v", err)
	}

	go func() {
		log.Printf("TaskShare gRPC server listening on port %s", cfg.Server.GRPCPort)
		if err := grpcServer.Serve(listener); err != nil {
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	grpcServer.GracefulStop()
	log.Println("Server shutdown complete")
}

// runAutoMigration runs the auto migration
func runAutoMigration(ctx context.Context, client *ent.Client) error {
	log.Println("Running auto migration...")
	err := client.Schema.Create(
		ctx,
		migrate.WithDropIndex(true),
		migrate.WithDropColumn(true),
		migrate.WithForeignKeys(true),
	)
	if err != nil {
		return fmt.Errorf("run auto migration: %w", err)
	}
	log.Println("Auto migration completed")
	return nil
}

// loggingInterceptor logs incoming requests
func loggingInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	duration := time.Since(start)

	username, _ := middleware.GetUsernameFromContext(ctx)
	logLevel := "INFO"
	if err != nil {
		logLevel = "ERROR"
	}
	log.Printf("[%s] %s completed in %v (user: %s)", logLevel, info.FullMethod, duration, username)
	if err != nil {
		log.Printf("[ERROR] %s error: %v", info.FullMethod, err)
	}
	return resp, err
}
