package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	consul "github.com/hashicorp/consul/api"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
)

const serviceName = "shortlink"

// start запускает HTTP сервер и, если настроено, gRPC health сервер.
// При отмене ctx серверы останавливаются с ожиданием активных запросов.
func (a *App) start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              a.config.ServerAddress.String(),
		Handler:           a.router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       time.Minute,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.logger.Info("Starting server", zap.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		a.logger.Info("Shutting down server")
		return srv.Shutdown(shutdownCtx)
	})

	if a.config.GRPCAddress != "" {
		grpcServer := newHealthServer()
		g.Go(func() error {
			lis, err := net.Listen("tcp", a.config.GRPCAddress)
			if err != nil {
				return fmt.Errorf("failed to listen on %s: %w", a.config.GRPCAddress, err)
			}
			a.logger.Info("Starting gRPC health server", zap.String("address", a.config.GRPCAddress))
			return serveGRPC(grpcServer, lis)
		})
		g.Go(func() error {
			<-gctx.Done()
			grpcServer.GracefulStop()
			return nil
		})
	}

	if a.config.ConsulAddress != "" {
		deregister, err := a.registerInConsul()
		if err != nil {
			a.logger.Warn("consul registration failed", zap.Error(err))
		} else {
			defer deregister()
		}
	}

	return g.Wait()
}

// newHealthServer создает gRPC сервер со стандартным health сервисом
func newHealthServer() *grpc.Server {
	grpcServer := grpc.NewServer()
	healthServer := health.NewServer()
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(serviceName, grpc_health_v1.HealthCheckResponse_SERVING)
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	return grpcServer
}

// serveGRPC обслуживает lis до остановки сервера. Остановка до Serve
// (GracefulStop при быстром завершении) не считается ошибкой.
func serveGRPC(srv *grpc.Server, lis net.Listener) error {
	if err := srv.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("grpc server failed: %w", err)
	}
	return nil
}

// registerInConsul регистрирует HTTP сервис с проверкой GET /health
func (a *App) registerInConsul() (func(), error) {
	client, err := consul.NewClient(&consul.Config{Address: a.config.ConsulAddress})
	if err != nil {
		return nil, fmt.Errorf("failed to create consul client: %w", err)
	}

	registration := serviceRegistration(a.config.ServerAddress.Host, a.config.ServerAddress.Port)
	if err := client.Agent().ServiceRegister(registration); err != nil {
		return nil, fmt.Errorf("failed to register service: %w", err)
	}
	a.logger.Info("Registered in consul", zap.String("service_id", registration.ID))

	return func() {
		if err := client.Agent().ServiceDeregister(registration.ID); err != nil {
			a.logger.Warn("consul deregistration failed", zap.Error(err))
		}
	}, nil
}

func serviceRegistration(host string, port int) *consul.AgentServiceRegistration {
	if host == "" {
		host = "localhost"
	}
	address := net.JoinHostPort(host, fmt.Sprint(port))

	return &consul.AgentServiceRegistration{
		ID:      serviceName + "-" + address,
		Name:    serviceName,
		Address: host,
		Port:    port,
		Tags:    []string{"http"},
		Check: &consul.AgentServiceCheck{
			HTTP:                           "http://" + address + "/health",
			Interval:                       "10s",
			Timeout:                        "2s",
			DeregisterCriticalServiceAfter: "1m",
		},
	}
}
