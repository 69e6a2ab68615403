package app

import (
	"context"
	"net/http"
	"time"

	"github.com/Kr0n4k/blog-project/internal/blog"
	"github.com/Kr0n4k/blog-project/internal/config"
	"github.com/Kr0n4k/blog-project/internal/event"
	"github.com/Kr0n4k/blog-project/internal/graph"
	"github.com/Kr0n4k/blog-project/internal/middleware"
	"github.com/Kr0n4k/blog-project/internal/session"
	"github.com/Kr0n4k/blog-project/internal/user"

	"github.com/gin-gonic/gin"
)

func setupHTTP(ctx context.Context, cfg config.Config) (*gin.Engine, func() error, error) {

	infra, err := setupInfra(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	// ----------------------------
	// Dependencies
	// ----------------------------

	sessionStore := session.NewRedisStore(infra.Redis, cfg.SessionPrefix, cfg.SessionMaxAge)
	cookieOpts := session.CookieOptionsFor(
		cfg.SessionName,
		cfg.SessionDomain,
		cfg.SessionMaxAge,
		cfg.IsProduction(),
	)

	userStore := user.NewStore(infra.DB)
	sessionService := session.NewService(userStore, sessionStore, cookieOpts)

	// One bus for the whole process; every publisher and subscriber gets
	// this instance.
	bus := event.NewBus()

	blogService := blog.NewService(blog.NewSQLStore(infra.DB), bus)

	resolver := graph.NewResolver(sessionService, userStore, blogService, bus)
	graphqlHandler, err := graph.NewHandler(resolver)
	if err != nil {
		return nil, nil, err
	}

	sessionMiddleware := middleware.GinSession(
		middleware.NewSessionMiddleware(sessionStore, cfg.SessionName),
	)

	// ----------------------------
	// Router
	// ----------------------------

	router := gin.New()
	router.Use(gin.Recovery())

	startedAt := time.Now()
	router.GET("/health", func(c *gin.Context) {
		begin := time.Now()

		status := http.StatusOK
		databaseStatus := "connected"
		redisStatus := "connected"

		if err := infra.DB.PingContext(c.Request.Context()); err != nil {
			databaseStatus = "disconnected"
			status = http.StatusServiceUnavailable
		}
		if err := infra.Redis.Ping(c.Request.Context()); err != nil {
			redisStatus = "disconnected"
			status = http.StatusServiceUnavailable
		}

		overall := "ok"
		if status != http.StatusOK {
			overall = "error"
		}

		c.JSON(status, gin.H{
			"status":       overall,
			"timestamp":    time.Now().UTC().Format(time.RFC3339),
			"uptime":       time.Since(startedAt).Seconds(),
			"database":     databaseStatus,
			"redis":        redisStatus,
			"responseTime": time.Since(begin).Milliseconds(),
		})
	})

	// Queries and mutations arrive over POST; GET carries the websocket
	// upgrade for subscriptions.
	router.POST(cfg.GraphQLPath, sessionMiddleware, gin.WrapH(graphqlHandler))
	router.GET(cfg.GraphQLPath, sessionMiddleware, gin.WrapH(graphqlHandler))

	// ----------------------------
	// Cleanup
	// ----------------------------

	return router, func() error {
		bus.Close()
		if err := infra.Redis.Close(); err != nil {
			return err
		}
		return infra.DB.Close()
	}, nil
}
