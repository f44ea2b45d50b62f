package gateway

import (
	"encoding/json"
	"net/http"
	"net/http/httputil"
	"net/url"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/blogsite/blog-platform/internal/api"
	"github.com/blogsite/blog-platform/internal/token"
)

// Gateway holds the route table, the token codec and one reverse proxy per
// internal backend.
type Gateway struct {
	table   *RouteTable
	codec   *token.Codec
	proxies map[string]*httputil.ReverseProxy
	log     zerolog.Logger
}

// New builds the gateway. authTarget and blogTarget are the base URLs of the
// internal services.
func New(table *RouteTable, codec *token.Codec, authTarget, blogTarget *url.URL, log zerolog.Logger) *Gateway {
	g := &Gateway{
		table: table,
		codec: codec,
		log:   log,
	}
	g.proxies = map[string]*httputil.ReverseProxy{
		BackendAuth: g.newProxy(authTarget),
		BackendBlog: g.newProxy(blogTarget),
	}
	return g
}

func (g *Gateway) newProxy(target *url.URL) *httputil.ReverseProxy {
	proxy := httputil.NewSingleHostReverseProxy(target)
	proxy.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
		g.log.Error().Err(err).Str("path", r.URL.Path).Str("backend", target.Host).Msg("backend unreachable")
		w.Header().Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		w.WriteHeader(http.StatusBadGateway)
		_ = json.NewEncoder(w).Encode(api.NewErrorResponse(http.StatusBadGateway, "upstream unavailable"))
	}
	return proxy
}

// Proxy forwards the (already filtered) request to the backend chosen by the
// matched route rule.
func (g *Gateway) Proxy(c echo.Context) error {
	rule, ok := c.Get(ruleContextKey).(Rule)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "route not found")
	}
	g.proxies[rule.Backend].ServeHTTP(c.Response(), c.Request())
	return nil
}
