package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/avstrong/stayhotel/internal/blog"
	"github.com/avstrong/stayhotel/internal/booking"
	"github.com/avstrong/stayhotel/internal/cms"
	"github.com/avstrong/stayhotel/internal/config"
	"github.com/avstrong/stayhotel/internal/jobs"
	"github.com/avstrong/stayhotel/internal/logger"
	"github.com/avstrong/stayhotel/internal/migration"
	"github.com/avstrong/stayhotel/internal/transport/web"
)

const redisPingTimeout = 3 * time.Second

func Run(l *logger.Logger) error {
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGHUP,
	)
	defer cancel()

	if err := config.LoadDotEnv(); err != nil {
		l.LogWarnf("No .env loaded: %v", err.Error())
	}

	conf, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	provider := cms.NewProvider(cms.FactoryConfig{
		L:           l,
		UseMock:     conf.CMS.UseMock,
		APIURL:      conf.CMS.APIURL,
		APIKey:      conf.CMS.APIKey,
		Timeout:     conf.CMS.Timeout,
		MockLatency: conf.CMS.MockLatency,
	})

	if conf.CMS.SeedDemo && provider.UsingMock() {
		if err := migration.Up(ctx, l, provider.Adapter(), time.Now()); err != nil {
			return fmt.Errorf("seed demo bookings: %w", err)
		}

		l.LogInfo("Demo bookings have been seeded")
	}

	bookManager := booking.New(l, provider.Backend)

	cache, closeCache := newBlogCache(ctx, l, conf.Redis)
	defer closeCache()

	blogService := blog.New(blog.Config{
		L:        l,
		BlogID:   conf.Blog.NaverID,
		FeedURL:  conf.Blog.FeedURL,
		CacheTTL: conf.Blog.CacheTTL,
		Cache:    cache,
	})

	scheduler, err := jobs.New(jobs.Config{
		L:             l,
		BlogSchedule:  conf.Blog.RefreshSchedule,
		ProbeSchedule: conf.BackendProbeSchedule,
		Blog:          blogService,
		Backend:       func() jobs.ConnectivityChecker { return provider.Adapter() },
		BaseContext:   ctx,
	})
	if err != nil {
		return fmt.Errorf("init jobs: %w", err)
	}

	scheduler.Start()

	webConf := web.Conf{
		L:                 l,
		ServerLogger:      log.Default(),
		Host:              conf.HTTP.Host,
		Port:              conf.HTTP.Port,
		ReadHeaderTimeout: conf.HTTP.ReadHeaderTimeout,
		LivenessEndpoint:  "/liveness",
		ReadinessEndpoint: "/readiness",
	}

	srv, err := web.New(ctx, webConf, bookManager, provider, blogService, scheduler)
	if err != nil {
		return fmt.Errorf("init http server: %w", err)
	}

	//nolint:contextcheck
	go func() {
		<-ctx.Done()

		ctx, cancel := context.WithTimeout(context.Background(), time.Second*4) //nolint:gomnd
		defer cancel()

		scheduler.Stop(ctx)

		if err := srv.Srv().Shutdown(ctx); err != nil {
			l.LogErrorf("Failed to stop http server: %v", err.Error())
		}
	}()

	l.LogInfo("Application is running on %v:%v...", webConf.Host, webConf.Port)

	if err := srv.Srv().ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		l.LogErrorf("Failed to run http server: %v", err.Error())

		cancel()
	}

	l.LogInfo("Application stopped gracefully")

	return nil
}

// newBlogCache prefers Redis when an address is configured and answers a ping;
// otherwise posts are cached in process.
func newBlogCache(ctx context.Context, l *logger.Logger, conf config.Redis) (blog.Cache, func()) {
	if conf.Addr == "" {
		return blog.NewMemoryCache(time.Now), func() {}
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     conf.Addr,
		Username: conf.Username,
		Password: conf.Password,
	})

	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()

	if err := rdb.Ping(pingCtx).Err(); err != nil {
		l.LogWarnf("Redis at %v is unavailable, caching blog posts in memory: %v", conf.Addr, err.Error())

		if cerr := rdb.Close(); cerr != nil {
			l.LogErrorf("Failed to close redis client: %v", cerr.Error())
		}

		return blog.NewMemoryCache(time.Now), func() {}
	}

	l.LogInfo("Caching blog posts in redis at %v", conf.Addr)

	return blog.NewRedisCache(rdb), func() {
		if err := rdb.Close(); err != nil {
			l.LogErrorf("Failed to close redis client: %v", err.Error())
		}
	}
}
