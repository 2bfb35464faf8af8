package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/gogame-backend/internal/config"
	"github.com/rocketscienceinc/gogame-backend/internal/repository"
	"github.com/rocketscienceinc/gogame-backend/internal/repository/storage"
	"github.com/rocketscienceinc/gogame-backend/internal/service"
	"github.com/rocketscienceinc/gogame-backend/internal/usecase"
	"github.com/rocketscienceinc/gogame-backend/pkg/handlers"
	"github.com/rocketscienceinc/gogame-backend/transport/rest"
	"github.com/rocketscienceinc/gogame-backend/transport/websocket"
)

var (
	ErrAddrNotFound   = errors.New("redis address string is empty")
	ErrUnknownStorage = errors.New("unknown storage backend")
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	gameRepo, playerRepo, health, closeStorage, err := openStorage(ctx, logger, conf)
	if err != nil {
		return err
	}
	defer closeStorage()

	leaderboard := service.NewLeaderboardService(playerRepo)
	gameManager := usecase.NewGameManager(logger, gameRepo, leaderboard)

	limit := min(max(conf.Leaderboard.Limit, 1), service.MaxTop)

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		httpServer := rest.New(logger, gameManager, health, limit, conf.ShutdownTimeout)
		httpErrCh <- httpServer.Start(ctx, conf.HTTPPort)
	}()

	// run Websocket server
	wsErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)
		wsServer := websocket.New(logger, gameManager, limit, conf.ShutdownTimeout)
		wsErrCh <- wsServer.Start(ctx, conf.SocketPort)
	}()

	var httpErr, wsErr error
	select {
	case httpErr = <-httpErrCh:
		cancel()
		wsErr = <-wsErrCh
	case wsErr = <-wsErrCh:
		cancel()
		httpErr = <-httpErrCh
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		httpErr, wsErr = <-httpErrCh, <-wsErrCh
	}

	if httpErr != nil {
		httpErr = fmt.Errorf("HTTP server error: %w", httpErr)
	}

	if wsErr != nil {
		wsErr = fmt.Errorf("WebSocket server error: %w", wsErr)
	}

	return errors.Join(httpErr, wsErr)
}

type closer func()

func openStorage(
	ctx context.Context,
	logger *slog.Logger,
	conf *config.Config,
) (repository.GameRepository, repository.PlayerRepository, handlers.HealthCheck, closer, error) {
	log := logger.With("component", "app")

	switch conf.Storage {
	case config.StorageMemory:
		log.Warn("using in-memory storage, state is lost on restart")
		store := repository.NewMemoryStorage()

		return store, store, nil, func() {}, nil
	case config.StorageRedis:
		redisAddrString := conf.Redis.GetRedisAddr()
		if redisAddrString == "" {
			return nil, nil, nil, nil, ErrAddrNotFound
		}

		redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString, conf.Redis.Password, conf.Redis.DB)
		if err != nil {
			return nil, nil, nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		closeRedis := func() {
			if err := redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}

		return repository.NewGameRepository(logger, redisStorage.Connection),
			repository.NewPlayerRepository(logger, redisStorage.Connection),
			redisStorage.Ping,
			closeRedis,
			nil
	default:
		return nil, nil, nil, nil, fmt.Errorf("%w: %q", ErrUnknownStorage, conf.Storage)
	}
}
