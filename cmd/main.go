package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"google.golang.org/grpc/health"

	grpchealth "github.com/nicodelloro-arg/Employees/internal/api/grpc/health"
	grpcrouter "github.com/nicodelloro-arg/Employees/internal/api/grpc/router"
	grpcserver "github.com/nicodelloro-arg/Employees/internal/api/grpc/server"
	httpcontext "github.com/nicodelloro-arg/Employees/internal/api/http/context"
	httprouter "github.com/nicodelloro-arg/Employees/internal/api/http/router"
	httpserver "github.com/nicodelloro-arg/Employees/internal/api/http/server"
	"github.com/nicodelloro-arg/Employees/internal/config"
	"github.com/nicodelloro-arg/Employees/internal/logger"
	"github.com/nicodelloro-arg/Employees/internal/model"
	"github.com/nicodelloro-arg/Employees/internal/repository/jsonfile"
	"github.com/nicodelloro-arg/Employees/internal/server"
	"github.com/nicodelloro-arg/Employees/internal/service"
	storage "github.com/nicodelloro-arg/Employees/internal/storage/minio"
	"github.com/nicodelloro-arg/Employees/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	var storeOpts []jsonfile.StoreOption
	if cfg.Storage.Enabled() {
		storageClient, err := storage.New(ctx, storage.Options{
			Endpoint:  cfg.Storage.Endpoint,
			AccessKey: cfg.Storage.AccessKey,
			SecretKey: cfg.Storage.SecretKey,
			Bucket:    cfg.Storage.Bucket,
			UseSSL:    cfg.Storage.UseSSL,
		})
		if err != nil {
			logger.Fatal("failed to initialize storage client", "error", err)
		}
		storeOpts = append(storeOpts, jsonfile.WithMirror(storageClient, cfg.Storage.Prefix))
		logger.Info("directory snapshots mirrored", "bucket", cfg.Storage.Bucket)
	}

	store := jsonfile.NewStore(cfg.Database.Path, logger, storeOpts...)
	if _, err := store.Load(ctx); err != nil {
		logger.Warn("directory document not readable at startup", "path", store.Path(), "error", err.Error())
	}

	employeeRepo := jsonfile.NewEmployeeRepository(store, nil, logger)
	credentialRepo := jsonfile.NewCredentialRepository(store)
	tokenManager := token.NewJWT(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Audience, cfg.JWT.Expiration())

	employeeService := service.NewEmployee(employeeRepo, logger)
	authService := service.NewAuth(credentialRepo, tokenManager, logger)

	handler, err := httprouter.New(
		employeeService,
		authService,
		authService,
		store,
		httpcontext.NewManager(),
		httprouter.Options{
			RequestTimeout:     cfg.HTTP.RequestTimeout,
			CORSAllowedOrigins: cfg.HTTP.CORSAllowedOrigins,
			LoginRateLimit:     cfg.HTTP.LoginRateLimit,
			SecureHeadersDev:   cfg.HTTP.SecureHeadersDev,
		},
		logger,
	).Register()
	if err != nil {
		logger.Fatal("failed to build HTTP router", "error", err)
	}

	servers := []model.Server{
		httpserver.NewHTTPServer(handler, fmt.Sprintf(":%s", cfg.HTTP.Port), cfg.HTTP.ReadTimeout, cfg.HTTP.WriteTimeout),
	}
	if cfg.GRPC.Enabled {
		servers = append(servers, registerGRPCServer(ctx, logger, store, cfg.GRPC.HealthInterval, fmt.Sprintf(":%s", cfg.GRPC.Port)))
	}

	sl := server.NewSecurityLayer(cfg.HTTP.EnableHTTPS, cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)

	var wg sync.WaitGroup
	for _, s := range servers {
		wg.Add(1)
		go func(s model.Server) {
			defer wg.Done()
			logger.Info("Starting server on", "address", s.Address())
			if err := s.Start(sl); err != nil {
				logger.Error("failed to start server", "error", err, "address", s.Address())
				stop()
			}
		}(s)
	}

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	for _, s := range servers {
		if err := s.Stop(shutdownCtx); err != nil {
			logger.Error("error during server shutdown", "error", err, "address", s.Address())
		}
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}

func registerGRPCServer(
	ctx context.Context,
	logger *logger.Logger,
	store model.DirectoryStore,
	interval time.Duration,
	addr string,
) *grpcserver.GRPCServer {
	healthServer := health.NewServer()
	go grpchealth.NewProber(store, healthServer, interval, logger).Run(ctx)

	s := grpcrouter.New(healthServer, logger).Register()

	return grpcserver.NewGRPCServer(s, addr)
}
