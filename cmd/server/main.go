package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rideadmin/internal/config"
	handlers "rideadmin/internal/handlers/admin"
	"rideadmin/internal/middleware"
	"rideadmin/internal/repositories"
	"rideadmin/internal/services"
	"rideadmin/pkg/cache"
	"rideadmin/pkg/database"
	"rideadmin/pkg/logger"
	"rideadmin/pkg/push"
	"rideadmin/pkg/sms"
	"rideadmin/pkg/websocket"
	"rideadmin/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger, err := logger.NewLogger(&logger.Config{
		Level:   logger.LogLevel(cfg.App.LogLevel),
		Format:  cfg.App.LogFormat,
		Output:  cfg.App.LogOutput,
		AppName: cfg.App.Name,
		Version: cfg.App.Version,
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, appLogger); err != nil {
		appLogger.WithError(err).Fatal("Server exited with error")
	}
}

func run(ctx context.Context, cfg *config.Config, appLogger *logger.Logger) error {
	var fb *database.Firebase
	if cfg.Database.Driver == config.StoreDriverFirestore || cfg.Push.FCM.EmergencyTopic != "" {
		var err error
		fb, err = database.NewFirebase(ctx, &database.FirebaseConfig{
			ProjectID:       cfg.Database.Firebase.ProjectID,
			CredentialsFile: cfg.Database.Firebase.CredentialsFile,
		})
		if err != nil {
			return err
		}
	}

	store, err := repositories.NewDocumentStore(ctx, cfg.Database, fb)
	if err != nil {
		return err
	}
	defer store.Close()
	appLogger.WithField("driver", cfg.Database.Driver).Info("Document store ready")

	var resolverCache services.ResolverCache
	if cfg.Redis.Enabled {
		redisCache, err := cache.NewRedisCache(&cache.RedisConfig{
			Host:         cfg.Redis.Host,
			Port:         cfg.Redis.Port,
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			PoolSize:     cfg.Redis.PoolSize,
			MinIdleConns: cfg.Redis.MinIdleConns,
			DialTimeout:  cfg.Redis.DialTimeout,
			ReadTimeout:  cfg.Redis.ReadTimeout,
			WriteTimeout: cfg.Redis.WriteTimeout,
		})
		if err != nil {
			appLogger.WithError(err).Warn("Redis unavailable, resolver cache disabled")
		} else {
			defer redisCache.Close()
			resolverCache = redisCache
		}
	}

	loc := cfg.App.Location()
	audit := logger.NewAuditLogger(appLogger)

	// Services
	resolver := services.NewResolverService(store, resolverCache, cfg.Redis.ResolverTTL, loc, appLogger)
	userService := services.NewUserService(store, resolver, audit, appLogger)
	rideService := services.NewRideService(store, loc, appLogger)
	emergencyService := services.NewEmergencyService(store, resolver, loc, appLogger)
	fraudService := services.NewFraudService(store, resolver, loc, appLogger)
	fareControlService := services.NewFareControlService(store, cfg.FareControls.DocumentID, audit, appLogger)

	// Real-time channel
	hub := websocket.NewHub(appLogger)
	go hub.Run(ctx)

	sinks, err := emergencySinks(ctx, cfg, fb, hub, appLogger)
	if err != nil {
		return err
	}
	notifier := services.NewEmergencyBroadcaster(appLogger, sinks...)

	if cfg.Poller.Enabled {
		poller := services.NewEmergencyPoller(store, emergencyService, notifier, cfg.Poller.Interval, appLogger)
		go poller.Run(ctx)
	}

	// HTTP
	if cfg.App.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	if err := router.SetTrustedProxies(cfg.Security.TrustedProxies); err != nil {
		return fmt.Errorf("invalid trusted proxies: %w", err)
	}

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware(appLogger))
	router.Use(middleware.CORSMiddleware(cfg.Security.CORSAllowedOrigins))

	routes.SetupAdminRoutes(router, &routes.AdminHandlers{
		Users:        handlers.NewUserHandler(userService, appLogger),
		Rides:        handlers.NewRideHandler(rideService, appLogger),
		Emergencies:  handlers.NewEmergencyHandler(emergencyService, appLogger),
		Frauds:       handlers.NewFraudHandler(fraudService, appLogger),
		FareControls: handlers.NewFareControlHandler(fareControlService, appLogger),
		Health:       handlers.NewHealthHandler(cfg.App.Version),
		WebSocket: websocket.NewHandler(hub, &websocket.Config{
			ReadBufferSize:  cfg.WebSocket.ReadBufferSize,
			WriteBufferSize: cfg.WebSocket.WriteBufferSize,
			PingInterval:    cfg.WebSocket.PingInterval,
			PongTimeout:     cfg.WebSocket.PongTimeout,
			WriteTimeout:    cfg.WebSocket.WriteTimeout,
			SendBufferSize:  cfg.WebSocket.SendBufferSize,
			AllowedOrigins:  cfg.WebSocket.AllowedOrigins,
		}),
	}, routes.RouteOptions{
		JWTSecret:     cfg.Security.JWTSecret,
		WebSocketPath: cfg.WebSocket.Path,
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.App.Host, cfg.App.Port),
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		appLogger.Infof("Server is running on http://localhost:%d", cfg.App.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	appLogger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func emergencySinks(
	ctx context.Context,
	cfg *config.Config,
	fb *database.Firebase,
	hub *websocket.Hub,
	appLogger *logger.Logger,
) ([]services.EmergencySink, error) {
	sinks := []services.EmergencySink{services.NewWebSocketSink(hub)}

	if topic := cfg.Push.FCM.EmergencyTopic; topic != "" {
		fcm, err := push.NewFCMProvider(ctx, fb.App)
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, services.NewPushSink(fcm, topic))
		appLogger.WithField("topic", topic).Info("FCM emergency alerts enabled")
	}

	if recipients := cfg.SMS.AlertRecipients; len(recipients) > 0 {
		var provider sms.SMSProvider
		switch cfg.SMS.Provider {
		case config.SMSProviderAWS:
			snsProvider, err := sms.NewAWSSNSProvider(ctx, cfg.SMS.AWS.Region)
			if err != nil {
				return nil, err
			}
			provider = snsProvider
		case config.SMSProviderTwilio:
			provider = sms.NewTwilioProvider(cfg.SMS.Twilio.AccountSID, cfg.SMS.Twilio.AuthToken, cfg.SMS.Twilio.FromNumber)
		default:
			return nil, fmt.Errorf("unknown sms provider %q", cfg.SMS.Provider)
		}
		sinks = append(sinks, services.NewSMSSink(provider, recipients))
		appLogger.WithFields(map[string]interface{}{
			"provider":   cfg.SMS.Provider,
			"recipients": len(recipients),
		}).Info("SMS emergency alerts enabled")
	}

	return sinks, nil
}
