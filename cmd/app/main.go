package main

import (
	"BloggerPlatform/internal/config"
	"BloggerPlatform/pkg/bcrypt"
	"BloggerPlatform/pkg/log"
	"BloggerPlatform/pkg/metrics"
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func main() {
	logger := log.NewLogger()
	env := config.LoadEnv(logger)

	fiberApp := config.NewFiber(logger)
	validator, err := config.NewValidator()
	if err != nil {
		logger.Fatalf("Error creating validator: %v", err)
	}

	server, err := config.NewServer(
		config.WithFiber(fiberApp),
		config.WithLogger(logger),
		config.WithEnv(env),
		config.WithValidator(validator),
		config.WithDatabase(),
		config.WithMetrics(metrics.New()),
		config.WithBcryptUtils(bcrypt.New()),
		config.WithMiddleware(),
		config.WithUtils(),
	)
	if err != nil {
		logger.Fatal(err)
	}

	server.RegisterHandler()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.Run(); err != nil {
			logger.Fatalf("Error starting server: %v", err)
		}
	}()

	log.Info(log.Fields{
		"port":    env.AppPort,
		"app_env": env.AppEnv,
	}, "Server started successfully")

	<-sigChan
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error(log.Fields{"error": err.Error()}, "Graceful shutdown failed")
	}
}
