// Package api serves the verb extraction over HTTP.
package api

import (
	"context"
	"net/http"

	"github.com/czcorpus/cnc-gokit/logging"
	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"github.com/rs/zerolog/log"

	"github.com/revelaction/vclause/cnf"
)

type Server struct {
	conf    *cnf.Conf
	actions *Actions
	server  *http.Server
}

func NewServer(conf *cnf.Conf, actions *Actions) *Server {
	return &Server{conf: conf, actions: actions}
}

// Handler returns the routes wrapped by the CORS handler.
func (s *Server) Handler() http.Handler {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(logging.GinMiddleware())
	engine.Use(uniresp.AlwaysJSONContentType())
	engine.NoMethod(uniresp.NoMethodHandler)
	engine.NoRoute(uniresp.NotFoundHandler)

	engine.GET("/", s.actions.Root)
	engine.GET("/tagset", s.actions.Tagset)
	engine.POST("/extract", s.actions.Extract)
	engine.GET("/doc/:docId/sentence/:sentId", s.actions.Sentence)

	c := cors.New(cors.Options{
		AllowedOrigins: s.conf.CorsAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	})

	return c.Handler(engine)
}

func (s *Server) Start(ctx context.Context) {
	if !s.conf.IsDebugMode() {
		gin.SetMode(gin.ReleaseMode)
	}

	log.Info().Msgf("starting to listen at %s", s.conf.Addr())
	s.server = &http.Server{
		Handler:      s.Handler(),
		Addr:         s.conf.Addr(),
		WriteTimeout: s.conf.WriteTimeout(),
		ReadTimeout:  s.conf.ReadTimeout(),
	}
	go func() {
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()
}

func (s *Server) Stop(ctx context.Context) error {
	log.Warn().Msg("shutting down vclause HTTP API server")
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}
