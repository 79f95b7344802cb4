//go:build e2e

package e2e

import (
	"testing"

	"salon-booking/cmd/bootstrap"
	"salon-booking/cmd/bootstrap/components"
	"salon-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

// ------------------------------------------------------------
// E2E application: the production fx graph with the test config
// ------------------------------------------------------------
func buildE2EApp(t *testing.T, cfg config.Config) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var router *gin.Engine

	testConfigModule := fx.Module("testconfig",
		fx.Provide(func() config.Config { return cfg }),
	)

	app := fxtest.New(t,
		testConfigModule,
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		components.StoreModule,
		components.UseCaseModule,
		components.HandlerModule,

		fx.Populate(&router),

		// start without fx's own lifecycle logs
		fx.NopLogger,
	)
	app.RequireStart()
	t.Cleanup(app.RequireStop)

	require.NotNil(t, router, "router was not populated by the fx app")
	return router
}

// ------------------------------------------------------------
// Shared setup for the E2E suites
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	Config config.Config
}

// Rebuild starts a fresh app, and with it a fresh in-memory store, using
// the test config adjusted by mutate.
func (s *SharedSuite) Rebuild(mutate ...func(*config.Config)) {
	cfg := config.NewTestConfig()
	for _, m := range mutate {
		m(&cfg)
	}
	s.Config = cfg
	s.Router = buildE2EApp(s.T(), cfg)
}

func (s *SharedSuite) SetupSuite() {
	s.Rebuild()
}

func (s *SharedSuite) SetupSubTest() {
	// every subtest starts from the seeded state
	s.Rebuild()
}
