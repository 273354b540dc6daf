package core

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	AssetRoute = "/system.css"

	contentTypeHTML = "text/html; charset=utf-8"
	contentTypeCSS  = "text/css; charset=utf-8"
)

type RuntimeContext struct {
	Env string

	// Reloader is set in dev mode only. Pages then carry the reload script
	// and LiveReloadRoute is registered.
	Reloader LiveReloaderInterface
}

// Router dispatches requests to the page and asset handlers. The route table
// is fixed once NewRouter returns.
type Router struct {
	config  Config
	store   *TemplateStore
	logger  *slog.Logger
	runtime RuntimeContext
	engine  *gin.Engine
}

var NewRouter = func(config Config, store *TemplateStore, logger *slog.Logger, rt RuntimeContext) *Router {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	engine := gin.New()
	engine.Use(RequestLogger(logger), gin.Recovery())

	r := &Router{
		config:  config,
		store:   store,
		logger:  logger,
		runtime: rt,
		engine:  engine,
	}

	for _, page := range Pages {
		engine.GET(page.Path, r.servePage(page))
	}
	engine.GET(AssetRoute, r.serveAsset)

	if rt.Reloader != nil {
		engine.GET(LiveReloadRoute, gin.WrapF(rt.Reloader.Handler))
	}

	return r
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.engine.ServeHTTP(w, req)
}

func (r *Router) Routes() gin.RoutesInfo {
	return r.engine.Routes()
}

func (r *Router) servePage(page Page) gin.HandlerFunc {
	return func(c *gin.Context) {
		layout := Layout{
			Title:      page.Title,
			Page:       page.Template,
			Nav:        navFor(page.Path),
			LiveReload: r.runtime.Reloader != nil,
		}

		body := []byte(r.store.RenderPage(c.Request.Context(), page.Template, page.Data(), layout))

		if r.config.Minify {
			if out, err := MinifyHTML(body); err == nil {
				body = out
			} else {
				r.logger.DebugContext(c.Request.Context(), "html minify failed", "template", page.Template, "err", err)
			}
		}

		if r.config.DebugHeaders {
			c.Header("X-Site-Template", page.Template)
		}
		c.Data(http.StatusOK, contentTypeHTML, body)
	}
}

func (r *Router) serveAsset(c *gin.Context) {
	data, err := ReadAsset(r.config.AssetPath, r.config.Minify)
	if err != nil {
		r.logger.DebugContext(c.Request.Context(), "asset unreadable", "path", r.config.AssetPath, "err", err)
		c.AbortWithStatus(http.StatusNotFound)
		return
	}
	c.Data(http.StatusOK, contentTypeCSS, data)
}
