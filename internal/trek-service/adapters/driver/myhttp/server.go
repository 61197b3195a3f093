package myhttp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"trek-tango/internal/config"
	"trek-tango/internal/mylogger"
	"trek-tango/internal/trek-service/adapters/driven/bm"
	"trek-tango/internal/trek-service/adapters/driven/db"
	"trek-tango/internal/trek-service/adapters/driven/maps"
	"trek-tango/internal/trek-service/adapters/driver/myhttp/handle"
	"trek-tango/internal/trek-service/adapters/driver/myhttp/middleware"
	"trek-tango/internal/trek-service/adapters/driver/myhttp/ws"
	"trek-tango/internal/trek-service/core/ports"
	"trek-tango/internal/trek-service/core/services"
)

var ErrServerClosed = errors.New("server closed")

const WaitTime = 10

type Server struct {
	mux    *http.ServeMux
	cfg    *config.Config
	srv    *http.Server
	mylog  mylogger.Logger
	db     *db.DB
	mb     ports.ISessionBroker
	ctx    context.Context
	appCtx context.Context
	mu     sync.Mutex
	wg     sync.WaitGroup
}

func NewServer(ctx, appCtx context.Context, mylog mylogger.Logger, cfg *config.Config) *Server {
	return &Server{
		ctx:    ctx,
		appCtx: appCtx,
		cfg:    cfg,
		mylog:  mylog,
		mux:    http.NewServeMux(),
	}
}

// Run initializes the adapters, wires routes and starts listening. It
// returns when the server stops.
func (s *Server) Run() error {
	mylog := s.mylog.Action("server_started")

	database, err := db.New(s.ctx, s.cfg.DB, mylog)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	s.db = database
	mylog.Info("Successful database connection")

	mb, err := bm.New(s.appCtx, *s.cfg.RabbitMq, s.mylog)
	if err != nil {
		return fmt.Errorf("failed to connect to rabbitmq: %w", err)
	}
	s.mb = mb
	mylog.Info("Successful message broker connection")

	s.Configure()

	s.mu.Lock()
	s.srv = &http.Server{
		Addr:    fmt.Sprintf(":%v", s.cfg.Srv.TrekServicePort),
		Handler: s.mux,
	}
	s.mu.Unlock()

	mylog = mylog.WithGroup("details").With("port", s.cfg.Srv.TrekServicePort)
	mylog.Info("server is running")
	return s.startHTTPServer()
}

// Stop provides a programmatic shutdown. Accepts a context for timeout control.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.mylog.Info("Shutting down HTTP server...")

	s.wg.Wait()

	if s.srv != nil {
		shutdownCtx, cancel := context.WithTimeout(ctx, WaitTime*time.Second)
		defer cancel()

		if err := s.srv.Shutdown(shutdownCtx); err != nil {
			s.mylog.Error("Failed to shut down HTTP server gracefully", err)
			return fmt.Errorf("http server shutdown: %w", err)
		}
	}

	if s.mb != nil {
		if err := s.mb.Close(); err != nil {
			s.mylog.Error("Failed to close message broker", err)
		}
	}

	if s.db != nil {
		if err := s.db.Close(); err != nil {
			s.mylog.Error("Failed to close database", err)
			return fmt.Errorf("db close: %w", err)
		}
		s.mylog.Info("Database closed")
	}

	s.mylog.Info("HTTP server shut down gracefully")
	return nil
}

func (s *Server) startHTTPServer() error {
	errCh := make(chan error, 1)

	go func() {
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		} else {
			errCh <- nil
		}
	}()

	select {
	case <-s.ctx.Done():
		return nil
	case err := <-errCh:
		return err
	}
}

// Configure wires repositories, services and handlers onto the mux.
func (s *Server) Configure() {
	// repositories and driven adapters
	sessionRepo := db.NewSessionRepo(s.db)
	distanceProvider := maps.New(s.cfg.Maps, s.mylog)

	dispatcher := ws.NewDispatcher(s.mylog, s.cfg.App.PublicJwtSecret)

	// services
	sequencerService := services.NewSequencerService(s.mylog, distanceProvider)
	sessionService := services.NewSessionService(s.mylog, sessionRepo, s.mb, dispatcher)

	// handlers
	orderHandler := handle.NewOrderHandler(sequencerService, s.mylog)
	sessionHandler := handle.NewSessionHandler(sessionService, s.mylog)

	authMiddleware := middleware.NewAuthMiddleware(s.cfg.App.PublicJwtSecret)

	// destination ordering
	s.mux.Handle("POST /api/destinationOrder/orderCurrLoc", authMiddleware.Wrap(orderHandler.OrderFromPoint()))
	s.mux.Handle("POST /api/destinationOrder/orderListPlace", authMiddleware.Wrap(orderHandler.OrderFromAnchor()))

	// session lifecycle
	s.mux.Handle("POST /api/session/createSession", authMiddleware.Wrap(sessionHandler.CreateSession()))
	s.mux.Handle("GET /api/session/saveSession/{username}", authMiddleware.Wrap(sessionHandler.FindActiveSession()))
	s.mux.Handle("PUT /api/session/isCompleted", authMiddleware.Wrap(sessionHandler.MarkCompleted()))
	s.mux.Handle("PUT /api/session/complete", authMiddleware.Wrap(sessionHandler.CompleteSession()))

	// websocket progress stream, token checked during the upgrade
	s.mux.Handle("GET /ws/sessions/{username}", dispatcher.WsHandler())
}
