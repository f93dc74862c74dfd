package web

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"thirdcoast.systems/studio/cmd/web/auth"
	"thirdcoast.systems/studio/cmd/web/handlers/api/studio_api"
	"thirdcoast.systems/studio/cmd/web/handlers/content"
	staticpkg "thirdcoast.systems/studio/cmd/web/internal/web/utils/static"
	"thirdcoast.systems/studio/internal/studio"
	"thirdcoast.systems/studio/static"
)

type Webserver struct {
	*echo.Echo
	sessionManager *auth.SessionManager
	svc            *studio.Service
	staticCache    *staticpkg.StaticCache
}

func NewWebserver(svc *studio.Service, sessionManager *auth.SessionManager) (*Webserver, error) {
	e := echo.New()

	staticCache, err := staticpkg.NewStaticCache(static.FS)
	if err != nil {
		return nil, err
	}

	webserver := &Webserver{
		Echo:           e,
		sessionManager: sessionManager,
		svc:            svc,
		staticCache:    staticCache,
	}

	if err = webserver.registerRoutes(); err != nil {
		return nil, err
	}

	if err = webserver.setupMiddleware(); err != nil {
		return nil, err
	}

	return webserver, nil
}

func (s *Webserver) setupMiddleware() error {
	s.HideBanner = true
	s.HidePort = true
	s.Use(middleware.BodyLimit("2M"))
	s.Use(middleware.Recover())
	s.Use(middleware.RequestID())
	s.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Level: 5,
		// Compressed SSE responses are buffered until the stream ends.
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/api/studio/:id/preview/stream"
		},
	}))
	s.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		Skipper: func(c echo.Context) bool {
			switch c.Path() {
			case "/api/studio/:id/preview/stream", "/healthz", "/static/*":
				return true
			default:
				return false
			}
		},
		LogURI:       true,
		LogMethod:    true,
		LogStatus:    true,
		LogLatency:   true,
		LogRemoteIP:  true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  false,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
				"remote_ip", v.RemoteIP,
				"request_id", v.RequestID,
			}
			if v.Error != nil {
				fields = append(fields, "error", v.Error)
				slog.Warn("request", fields...)
				return nil
			}
			slog.Info("request", fields...)
			return nil
		},
	}))

	return nil
}

func (s *Webserver) registerRoutes() error {
	apiGroup := s.Group("/api/studio/:id")
	apiGroup.DELETE("", studio_api.HandleDelete(s.svc))
	apiGroup.GET("/descriptor", studio_api.HandleDescriptor(s.svc))
	apiGroup.PUT("/descriptor", studio_api.HandleDescriptorReplace(s.svc))
	apiGroup.GET("/preview/stream", studio_api.HandlePreviewStream(s.svc))

	apiGroup.POST("/panels/:panel/fields/:key", studio_api.HandleFieldUpdate(s.svc))
	apiGroup.POST("/panels/:panel/groups/:group/reset", studio_api.HandleGroupReset(s.svc))
	apiGroup.POST("/panels/:panel/reset", studio_api.HandlePanelReset(s.svc))

	apiGroup.POST("/overlays/add/:kind", studio_api.HandleOverlayAdd(s.sessionManager, s.svc))
	apiGroup.POST("/overlays/reset", studio_api.HandleOverlayReset(s.sessionManager, s.svc))
	apiGroup.POST("/overlays/:item/fields/:key", studio_api.HandleOverlayField(s.sessionManager, s.svc))
	apiGroup.DELETE("/overlays/:item", studio_api.HandleOverlayRemove(s.sessionManager, s.svc))

	// Health check
	s.GET("/healthz", func(c echo.Context) error {
		return c.String(200, "ok")
	})

	s.GET("/static/*", s.staticCache.ServeStaticFile("/static/"))

	s.GET("/studio/:id", content.HandleStudioPage(s.sessionManager, s.svc))
	s.POST("/workspaces", content.HandleWorkspaceCreate(s.svc))
	s.GET("/", content.HandleHomePage(s.svc))

	return nil
}
