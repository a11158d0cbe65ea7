package web

import (
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/deemkeen/keytan/util"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

const xmlContentType = "application/xml; charset=utf-8"

// NewRouter wires the feed export routes on top of store.
func NewRouter(conf *util.AppConfig, store NoteStore) *gin.Engine {
	g := gin.Default()
	g.Use(gzip.Gzip(gzip.DefaultCompression))

	// 10 requests per second per IP, burst of 20
	g.Use(RateLimitMiddleware(NewRateLimiter(rate.Limit(10), 20)))

	g.GET("/healthz", func(c *gin.Context) {
		count, err := store.CountNotes()
		if err != nil {
			log.Error("Health check failed", "err", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "notes": count, "version": util.GetVersion()})
	})

	g.GET("/feed", func(c *gin.Context) {
		renderFeed(c, func() (string, error) { return GetRSS(conf, store) })
	})

	g.GET("/feed/atom", func(c *gin.Context) {
		renderFeed(c, func() (string, error) { return GetAtom(conf, store) })
	})

	g.GET("/feed/:id", func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.Header("Content-Type", xmlContentType)
			c.Render(http.StatusNotFound, render.String{Format: ""})
			return
		}
		renderFeed(c, func() (string, error) { return GetRSSItem(conf, store, id) })
	})

	return g
}

func renderFeed(c *gin.Context, build func() (string, error)) {
	c.Header("Content-Type", xmlContentType)
	body, err := build()
	if err != nil {
		log.Warn("Could not build feed", "path", c.Request.URL.Path, "err", err)
		c.Render(http.StatusNotFound, render.String{Format: ""})
		return
	}
	c.Render(http.StatusOK, render.String{Format: "%s", Data: []any{body}})
}

// NewServer returns the feed export server, bound to the configured host
// and HTTP port. The caller owns ListenAndServe and Shutdown.
func NewServer(conf *util.AppConfig, store NoteStore) *http.Server {
	return &http.Server{
		Addr:              fmt.Sprintf("%s:%d", conf.Conf.Host, conf.Conf.HttpPort),
		Handler:           NewRouter(conf, store),
		ReadHeaderTimeout: 10 * time.Second,
	}
}
