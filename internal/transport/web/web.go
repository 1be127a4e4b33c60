package web

import (
	"context"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/avstrong/stayhotel/internal/blog"
	"github.com/avstrong/stayhotel/internal/booking"
	"github.com/avstrong/stayhotel/internal/cms"
	"github.com/avstrong/stayhotel/internal/logger"
)

const maxBodyBytes = 1 << 20

// adapterSource hands out the process-wide CMS adapter.
type adapterSource interface {
	Adapter() cms.Adapter
}

// probeCache reports the last background connectivity probe; ok is false
// before the first one.
type probeCache interface {
	Connected() (connected, ok bool)
}

type Server struct {
	srv      *http.Server
	router   *http.ServeMux
	l        *logger.Logger
	conf     Conf
	bManager *booking.Manager
	adapters adapterSource
	blog     *blog.Service
	probe    probeCache
}

type Conf struct {
	L                 *logger.Logger
	ServerLogger      *log.Logger
	Host              string
	Port              string
	ReadHeaderTimeout time.Duration
	LivenessEndpoint  string
	ReadinessEndpoint string
}

func New(
	ctx context.Context,
	conf Conf,
	bookingManager *booking.Manager,
	adapters adapterSource,
	blogService *blog.Service,
	probe probeCache,
) (*Server, error) {
	mux := http.NewServeMux()

	if conf.LivenessEndpoint == "" {
		conf.LivenessEndpoint = "/liveness"
	}

	if conf.ReadinessEndpoint == "" {
		conf.ReadinessEndpoint = "/readiness"
	}

	//nolint:exhaustruct
	srv := &http.Server{
		Addr:              net.JoinHostPort(conf.Host, conf.Port),
		ReadHeaderTimeout: conf.ReadHeaderTimeout,
		ErrorLog:          conf.ServerLogger,
		Handler:           mux,
		BaseContext: func(listener net.Listener) context.Context {
			return ctx
		},
	}

	server := &Server{
		srv:      srv,
		router:   mux,
		l:        conf.L,
		conf:     conf,
		bManager: bookingManager,
		adapters: adapters,
		blog:     blogService,
		probe:    probe,
	}

	server.addRoutes(mux)

	return server, nil
}

func (s *Server) Srv() *http.Server {
	return s.srv
}

// Handler exposes the routed mux, mostly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}
