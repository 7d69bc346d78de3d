package http

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	http_router "github.com/lintang-b-s/citynet/pkg/http/router"
	"github.com/lintang-b-s/citynet/pkg/http/router/controllers"
	http_server "github.com/lintang-b-s/citynet/pkg/http/server"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Server struct {
	Log *zap.Logger
	g   *errgroup.Group
}

func NewServer(log *zap.Logger) *Server {
	return &Server{Log: log}
}

func (s *Server) Use(
	ctx context.Context,
	log *zap.Logger,

	useRateLimit bool,
	cityService controllers.CityService,

) (*Server, error) {
	viper.SetDefault("API_PORT", 6060)
	viper.SetDefault("API_TIMEOUT", "30s")
	viper.SetDefault("API_SHUTDOWN_TIMEOUT", "10s")

	config := http_server.Config{
		Port:            viper.GetInt("API_PORT"),
		Timeout:         viper.GetDuration("API_TIMEOUT"),
		ShutdownTimeout: viper.GetDuration("API_SHUTDOWN_TIMEOUT"),
	}

	server := http_router.NewAPI(log)

	g, gctx := errgroup.WithContext(ctx)
	s.g = g

	g.Go(func() error {
		return server.Run(
			gctx, config,
			useRateLimit, cityService,
		)
	})

	return s, nil
}

// Wait blocks until the api goroutines return.
func (s *Server) Wait() error {
	if s.g == nil {
		return nil
	}
	return s.g.Wait()
}

func GracefulShutdown() os.Signal {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	return <-quit
}
