package grpc

import (
	"fmt"
	"github.com/cockroachdb/errors"
	"github.com/litetable/versiontable/pkg/api"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
	grpc2 "google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/reflection"
	"net"
	"time"
)

//go:generate mockgen -destination=grpc_mock.go -package=grpc -source=grpc.go

type grpcServer interface {
	Serve(lis net.Listener) error
	GracefulStop()
}

// Server implements the app.Dependency interface for the VersionTable gRPC server
type Server struct {
	address  string
	server   grpcServer
	port     int
	listener net.Listener
}

type Config struct {
	Address string
	Port    int
	Store   tableStore
	// RateLimit is the number of requests per second the server admits. Zero disables limiting.
	RateLimit float64
	RateBurst int
	// Listener replaces the TCP listener built from Address and Port.
	Listener net.Listener
	// CertFile and KeyFile enable TLS when both are set.
	CertFile string
	KeyFile  string
}

func (c *Config) validate() error {
	var errGrp []error
	if c.Listener == nil {
		if c.Address == "" {
			errGrp = append(errGrp, errors.New("address required"))
		}
		if c.Port <= 0 {
			errGrp = append(errGrp, errors.New("port required"))
		}
	}
	if c.Store == nil {
		errGrp = append(errGrp, errors.New("store required"))
	}
	if c.RateLimit < 0 {
		errGrp = append(errGrp, errors.New("rate limit cannot be negative"))
	}
	if c.RateBurst < 0 {
		errGrp = append(errGrp, errors.New("rate burst cannot be negative"))
	}
	if (c.CertFile == "") != (c.KeyFile == "") {
		errGrp = append(errGrp, errors.New("certificate and key must be set together"))
	}

	return errors.Join(errGrp...)
}

// NewServer creates a new gRPC server instance
func NewServer(cfg *Config) (*Server, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	var limiter *rate.Limiter
	if cfg.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), max(cfg.RateBurst, 1))
	}

	opts := []grpc2.ServerOption{
		grpc2.ChainUnaryInterceptor(
			loggingInterceptor,
			rateLimitInterceptor(limiter),
		),
	}
	if cfg.CertFile != "" {
		creds, err := credentials.NewServerTLSFromFile(cfg.CertFile, cfg.KeyFile)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load TLS certificate")
		}
		opts = append(opts, grpc2.Creds(creds))
	}

	srv := grpc2.NewServer(opts...)
	api.RegisterVersionTableServer(srv, &versionTable{store: cfg.Store})
	reflection.Register(srv)

	lis := cfg.Listener
	if lis == nil {
		var err error
		lis, err = net.Listen("tcp", fmt.Sprintf("%s:%d", cfg.Address, cfg.Port))
		if err != nil {
			return nil, errors.Wrapf(err, "failed to create listener on port %d", cfg.Port)
		}
	}

	return &Server{
		address:  cfg.Address,
		server:   srv,
		port:     cfg.Port,
		listener: lis,
	}, nil
}

// Addr is the address the server accepts connections on.
func (s *Server) Addr() net.Addr {
	return s.listener.Addr()
}

func (s *Server) Start() error {
	log.Info().Str("address", s.listener.Addr().String()).Msg("gRPC server listening")

	errCh := make(chan error, 1)

	go func() {
		if err := s.server.Serve(s.listener); err != nil {
			errCh <- err
			log.Error().Err(err).Msg("gRPC server failed")
			return
		}
		errCh <- nil
	}()

	// Block briefly for error or nil return
	select {
	case err := <-errCh:
		return err
	case <-time.After(500 * time.Millisecond):
		return nil
	}
}

func (s *Server) Stop() error {
	log.Info().Msg("Stopping gRPC server")
	s.server.GracefulStop()
	return nil
}

func (s *Server) Name() string {
	return "gRPC Server"
}
