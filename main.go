package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mood-playlist/infrastructure/cache"
	geminiclient "mood-playlist/infrastructure/clients/gemini"
	youtubeclient "mood-playlist/infrastructure/clients/youtube"
	"mood-playlist/infrastructure/configuration"
	"mood-playlist/infrastructure/logger"
	"mood-playlist/infrastructure/persistence"
	httpHandler "mood-playlist/interfaces/http"
	"mood-playlist/server"
	"mood-playlist/usecase"

	"golang.org/x/sync/errgroup"
)

func recoverPanic() {
	if err := recover(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Application panic recovered")
	}
}

func main() {
	defer recoverPanic()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	g, ctx := errgroup.WithContext(ctx)

	// Load env from files (non-destructive; OS env still has precedence)
	configuration.LoadEnvFromFile("config.env", ".env")

	psqlDb, err := persistence.NewPostgreSQLDB()
	if err != nil {
		logger.GetLogger().WithField("error", err).Fatal("PostgreSQL initialization failed")
	}
	if err := persistence.EnsureSearchCacheSchema(psqlDb); err != nil {
		logger.GetLogger().WithField("error", err).Fatal("Search cache schema setup failed")
	}

	mysqlDb, err := persistence.NewMySQLDB()
	if err != nil {
		logger.GetLogger().WithField("error", err).Fatal("MySQL initialization failed")
	}
	logger.GetLogger().Info("Databases connected.")

	redisClient, err := cache.NewCache(
		ctx,
		fmt.Sprintf("%s:%s", configuration.C.RedisClient.Host, configuration.C.RedisClient.Port),
		configuration.C.RedisClient.Username,
		configuration.C.RedisClient.Password,
	)
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("Redis not available - save limits will not be enforced")
		redisClient = nil
	}

	youtubeConfig := configuration.GetYouTubeConfig()
	videoSearch, err := youtubeclient.NewSearchClient(ctx, &youtubeclient.Config{
		APIKey:       youtubeConfig.APIKey,
		ClientID:     youtubeConfig.ClientID,
		ClientSecret: youtubeConfig.ClientSecret,
		AccessToken:  os.Getenv("YOUTUBE_ACCESS_TOKEN"),
		RefreshToken: os.Getenv("YOUTUBE_REFRESH_TOKEN"),
	})
	if err != nil {
		logger.GetLogger().WithField("error", err).Fatal("YouTube search client initialization failed")
	}

	geminiConfig := configuration.GetGeminiConfig()
	analyzer, err := geminiclient.NewAnalyzer(ctx, geminiConfig.APIKey, geminiConfig.Model)
	if err != nil {
		logger.GetLogger().WithField("error", err).Fatal("Gemini analyzer initialization failed")
	}
	defer func() { _ = analyzer.Close() }()

	searchCache := persistence.NewSearchCacheRepository(psqlDb)
	savedMoods := persistence.NewSavedMoodRepository(mysqlDb)
	userRepository := persistence.NewUserRepository(psqlDb)
	saveQuota := cache.NewSaveQuota(redisClient)

	moodUseCase := usecase.NewMoodUseCase(analyzer, videoSearch, searchCache)
	savedMoodUseCase := usecase.NewSavedMoodUseCase(savedMoods, searchCache, saveQuota, configuration.C.Mood.DailySaveLimit)
	moodHandler := httpHandler.NewMoodHandler(moodUseCase, savedMoodUseCase)

	router := server.InitiateRouter(moodHandler, userRepository)

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", configuration.C.App.Port),
		Handler: router,
	}

	g.Go(func() error {
		logger.GetLogger().WithField("port", configuration.C.App.Port).Info("HTTP server starting")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		select {
		case <-interrupt:
			logger.GetLogger().Info("Shutdown signal received")
		case <-ctx.Done():
		}
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Server terminated with error")
	}
}
