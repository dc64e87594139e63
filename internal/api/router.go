// Package api exposes the latest news and esports snapshots to the
// presentation layer, plus the batch article-rewrite endpoint consumed by the
// enrichment client.
package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"gamepulse/internal/aggregate"
	"gamepulse/internal/enrich"
	"gamepulse/internal/storage"
)

// NewsProvider serves the most recent aggregation snapshot and accepts
// refresh requests.
type NewsProvider interface {
	Latest() *aggregate.Result
	RequestRefresh()
}

type Server struct {
	news      NewsProvider
	store     *storage.SnapshotStore // optional snapshot fallback + matches
	rewriter  enrich.Rewriter        // nil disables /process-articles
	batchSize int

	liveStale     time.Duration
	upcomingStale time.Duration
}

type Options struct {
	News          NewsProvider
	Store         *storage.SnapshotStore
	Rewriter      enrich.Rewriter
	BatchSize     int
	LiveStale     time.Duration
	UpcomingStale time.Duration
}

func NewServer(opts Options) *Server {
	return &Server{
		news:          opts.News,
		store:         opts.Store,
		rewriter:      opts.Rewriter,
		batchSize:     opts.BatchSize,
		liveStale:     opts.LiveStale,
		upcomingStale: opts.UpcomingStale,
	}
}

func (s *Server) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", s.health)

	v1 := r.Group("/api/v1")
	{
		v1.GET("/news", s.getNews)
		v1.POST("/news/refresh", s.refreshNews)
		v1.GET("/esports/live", s.getMatches(storage.QueryLiveMatches))
		v1.GET("/esports/upcoming", s.getMatches(storage.QueryUpcomingMatches))
		v1.POST("/process-articles", s.processArticles)
	}
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) getNews(c *gin.Context) {
	var res *aggregate.Result
	if s.news != nil {
		res = s.news.Latest()
	}
	if res == nil && s.store != nil {
		cached, err := s.store.LatestNews(c.Request.Context())
		if err == nil {
			res = cached
		}
	}
	if res == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"code":    "not_ready",
			"message": "no aggregation cycle has completed yet",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"code":    "ok",
		"message": "success",
		"data":    res,
	})
}

func (s *Server) refreshNews(c *gin.Context) {
	if s.news == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"code": "unavailable"})
		return
	}
	s.news.RequestRefresh()
	c.JSON(http.StatusAccepted, gin.H{"code": "ok", "message": "refresh scheduled"})
}

func (s *Server) getMatches(query string) gin.HandlerFunc {
	window := s.liveStale
	if query == storage.QueryUpcomingMatches {
		window = s.upcomingStale
	}
	return func(c *gin.Context) {
		if s.store == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"code": "unavailable"})
			return
		}
		matches, fetchedAt, err := s.store.Matches(c.Request.Context(), query)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"code":    "internal_error",
				"message": "internal server error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"code":    "ok",
			"message": "success",
			"data": gin.H{
				"matches":   matches,
				"fetchedAt": fetchedAt,
				"stale":     !storage.IsFresh(fetchedAt, window),
			},
		})
	}
}

type processRequest struct {
	Articles []enrich.ArticleInput `json:"articles"`
}

func (s *Server) processArticles(c *gin.Context) {
	if s.rewriter == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "article rewriting is not configured"})
		return
	}
	var req processRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Articles) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No articles provided"})
		return
	}
	processed := enrich.ProcessBatch(c.Request.Context(), s.rewriter, req.Articles, s.batchSize)
	c.JSON(http.StatusOK, gin.H{"processedArticles": processed})
}
