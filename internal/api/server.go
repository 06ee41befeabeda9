package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/samber/do"
	"github.com/samber/lo"
	"github.com/zhulik/tally/internal/core"
	"github.com/zhulik/tally/internal/election"
	"github.com/zhulik/tally/internal/httpserver"
	"github.com/zhulik/tally/internal/identity"
)

type Server struct {
	*httpserver.Server

	election *election.Election
	clock    core.Clock
	source   core.IdentitySource
	gatherer prometheus.Gatherer
	health   func() map[string]error
}

// NewServer creates a new Server instance.
func NewServer(injector *do.Injector) (*Server, error) {
	server, err := httpserver.NewServer(injector, "api.Server")
	if err != nil {
		return nil, fmt.Errorf("failed to create a new http server: %w", err)
	}

	elect, err := do.Invoke[*election.Election](injector)
	if err != nil {
		return nil, err
	}

	clock, err := do.Invoke[core.Clock](injector)
	if err != nil {
		return nil, err
	}

	source, err := do.Invoke[core.IdentitySource](injector)
	if err != nil {
		return nil, err
	}

	registry, err := do.Invoke[*prometheus.Registry](injector)
	if err != nil {
		return nil, err
	}

	return New(server, elect, clock, source, registry, injector.HealthCheck), nil
}

// New wires the election routes into an existing server. health may be nil.
func New(server *httpserver.Server, elect *election.Election, clock core.Clock, source core.IdentitySource,
	gatherer prometheus.Gatherer, health func() map[string]error,
) *Server {
	srv := &Server{
		Server:   server,
		election: elect,
		clock:    clock,
		source:   source,
		gatherer: gatherer,
		health:   health,
	}

	srv.Router.GET("/healthz", srv.HealthHandler)
	srv.Router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	group := srv.Router.Group("/election")
	group.GET("", srv.SnapshotHandler)
	group.GET("/voters/:index", srv.VoterHandler)
	group.GET("/votes/:identity", srv.VoteLookupHandler)

	authenticated := group.Group("", identity.Middleware(source))
	authenticated.POST("/votes", srv.VoteHandler)
	authenticated.POST("/votes/a", srv.VoteForHandler(core.CandidateA))
	authenticated.POST("/votes/b", srv.VoteForHandler(core.CandidateB))
	authenticated.PUT("/candidates/:which", srv.CandidateNameHandler)
	authenticated.POST("/reset", srv.ResetHandler)
	authenticated.POST("/reconfigure", srv.ReconfigureHandler)

	srv.Router.POST("/clock/advance", identity.Middleware(source), srv.AdvanceClockHandler)

	return srv
}

func (s *Server) HealthHandler(c *gin.Context) {
	if s.health == nil {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})

		return
	}

	failed := lo.PickBy(s.health(), func(_ string, err error) bool {
		return err != nil
	})

	if len(failed) > 0 {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unhealthy",
			"errors": lo.MapValues(failed, func(err error, _ string) string { return err.Error() }),
		})

		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// abortWithError answers domain errors with their status and hands everything else to the error handler.
func abortWithError(c *gin.Context, err error) {
	status := StatusFor(err)
	if status == 0 {
		c.Error(err) //nolint:errcheck
		c.Abort()

		return
	}

	c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}
