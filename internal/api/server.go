package api

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/hopfield/habitrabbit/internal/service"
)

type Server struct {
	mx             *chi.Mux
	habitsService  service.HabitsServiceI
	entriesService service.EntriesServiceI
}

type ServicesList struct {
	HabitsService  service.HabitsServiceI
	EntriesService service.EntriesServiceI
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:             chi.NewMux(),
		habitsService:  servicesOptions.HabitsService,
		entriesService: servicesOptions.EntriesService,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	// The dashboard may be served from anywhere, mirror an allow-all CORS policy
	s.mx.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	}))
	s.mx.Use(s.RequestIDMiddleware)
	s.mx.Use(s.SettingUpLoggerMiddleware)

	s.mx.Get("/", s.Root)
	s.mx.Route("/habits", func(r chi.Router) {
		r.Get("/", s.GetHabits)
		r.Post("/", s.CreateHabit)
		r.Get("/today", s.GetTodayStatus)
		r.Post("/{id}/complete", s.ToggleCompletion)
		r.Delete("/{id}", s.DeleteHabit)
		r.Get("/{id}/history", s.GetHistory)
	})
}

// Run serves the API on address until an error or a termination signal. On
// SIGINT/SIGTERM the server drains in-flight requests before returning, so
// cleanup jobs run after the listener stops.
func (s *Server) Run(address string) error {
	srv := &http.Server{
		Addr:    address,
		Handler: s.mx,
	}
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return err
	case <-stop:
		ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
		defer cancel()
		return srv.Shutdown(ctx)
	}
}

// Handler exposes the routed mux, used by httptest.
func (s *Server) Handler() http.Handler {
	return s.mx
}
