// Package rest exposes the authentication and task operations over HTTP.
// It is a thin dispatcher: handlers bind validated inputs, pull the
// authenticated user from the request context and call the services.
package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/taskvault/internal/logging"
	"github.com/dmitrijs2005/taskvault/internal/server/services"
	"github.com/gin-gonic/gin"
)

type Server struct {
	address   string
	logger    logging.Logger
	auth      *services.AuthService
	tasks     *services.TaskService
	jwtSecret []byte
	engine    *gin.Engine
}

func NewServer(a string, l logging.Logger, as *services.AuthService, ts *services.TaskService, secretKey string) *Server {
	s := &Server{
		address:   a,
		logger:    l.With("module", "rest_server"),
		auth:      as,
		tasks:     ts,
		jwtSecret: []byte(secretKey),
	}
	s.engine = s.buildRouter()
	return s
}

func (s *Server) buildRouter() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogMiddleware())

	api := r.Group("/api")
	api.GET("/ping", s.ping)
	api.POST("/auth/signup", s.signUp)
	api.POST("/auth/signin", s.signIn)

	tasks := api.Group("/tasks")
	tasks.Use(s.accessTokenMiddleware())
	tasks.POST("", s.createTask)
	tasks.GET("", s.listTasks)
	tasks.GET("/:id", s.getTask)
	tasks.PATCH("/:id/status", s.updateTaskStatus)
	tasks.DELETE("/:id", s.deleteTask)

	return r
}

// Handler returns the HTTP handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.engine,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
