package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/Domenick1991/airportdesk/api"
	"github.com/Domenick1991/airportdesk/config"
	storeapi "github.com/Domenick1991/airportdesk/internal/api/store_service_api"
	"github.com/Domenick1991/airportdesk/internal/service/airports"
	"github.com/Domenick1991/airportdesk/internal/service/booking"
	"github.com/Domenick1991/airportdesk/internal/service/flights"
	"github.com/gin-gonic/gin"
	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type Services struct {
	Airports airports.AirportUseCase
	Flights  flights.FlightUseCase
	Bookings booking.BookingUseCase
}

type Servers struct {
	grpcServer  *grpc.Server
	httpServer  *http.Server
	health      *health.Server
	gatewayConn *grpc.ClientConn
}

// Run starts the gRPC server and the HTTP server (gin routes, swagger and the
// gateway health endpoint) and blocks until ctx is canceled or a server fails.
func Run(ctx context.Context, cfg *config.Config, logger *slog.Logger, svc Services) error {
	lis, err := net.Listen("tcp", cfg.GRPC.Address)
	if err != nil {
		return fmt.Errorf("listen gRPC %s: %w", cfg.GRPC.Address, err)
	}

	s, err := newServers(cfg, svc, lis.Addr().String())
	if err != nil {
		lis.Close()
		return err
	}

	errCh := make(chan error, 2)

	go func() { errCh <- s.grpcServer.Serve(lis) }()
	go func() { errCh <- s.httpServer.ListenAndServe() }()

	logger.Info("servers started", "http", cfg.HTTP.Address, "grpc", lis.Addr().String())

	select {
	case err := <-errCh:
		s.stop()
		return err
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

func newServers(cfg *config.Config, svc Services, grpcTarget string) (*Servers, error) {
	grpcSrv := grpc.NewServer()

	storeapi.RegisterStoreServiceServer(grpcSrv, storeapi.NewServer(svc.Airports, svc.Flights, svc.Bookings))

	healthSrv := health.NewServer()
	healthSrv.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	healthSrv.SetServingStatus(storeapi.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(grpcSrv, healthSrv)

	conn, err := grpc.NewClient("passthrough:///"+grpcTarget, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("dial gRPC for gateway: %w", err)
	}
	gwmux := runtime.NewServeMux(runtime.WithHealthzEndpoint(healthpb.NewHealthClient(conn)))

	opts := []api.RouterOption{api.WithHealth(gwmux)}
	if cfg.HTTP.SwaggerEnabled {
		opts = append(opts, api.WithSwagger())
	}

	gin.SetMode(gin.ReleaseMode)
	router, err := api.NewRouter(api.Handlers{
		Airports: api.NewAirportHandler(svc.Airports),
		Flights:  api.NewFlightHandler(svc.Flights),
		Bookings: api.NewBookingHandler(svc.Bookings),
	}, opts...)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("build router: %w", err)
	}

	httpSrv := &http.Server{
		Addr:              cfg.HTTP.Address,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return &Servers{
		grpcServer:  grpcSrv,
		httpServer:  httpSrv,
		health:      healthSrv,
		gatewayConn: conn,
	}, nil
}

func (s *Servers) shutdown(ctx context.Context) error {
	s.health.Shutdown()
	err := s.httpServer.Shutdown(ctx)
	s.gatewayConn.Close()
	s.grpcServer.GracefulStop()
	return err
}

func (s *Servers) stop() {
	s.health.Shutdown()
	s.httpServer.Close()
	s.grpcServer.Stop()
	s.gatewayConn.Close()
}
