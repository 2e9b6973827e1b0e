//go:build integration

package testutils

import (
	"context"
	"time"

	"github.com/amirasaad/aliasregistry/infra"
	infrarepo "github.com/amirasaad/aliasregistry/infra/repository"
	"github.com/amirasaad/aliasregistry/pkg/repository"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// E2ETestSuite runs the API tests against a real Postgres database using
// Testcontainers. Tables are truncated before every test.
type E2ETestSuite struct {
	APITestSuite
	pgContainer *tcpostgres.PostgresContainer
	db          *gorm.DB
}

// startPostgresContainer starts a Postgres container using Testcontainers
func (s *E2ETestSuite) startPostgresContainer(ctx context.Context) (*tcpostgres.PostgresContainer, error) {
	return tcpostgres.Run(
		ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(30*time.Second),
		),
	)
}

// SetupSuite initializes the test suite with a real Postgres database
func (s *E2ETestSuite) SetupSuite() {
	ctx := context.Background()

	pg, err := s.startPostgresContainer(ctx)
	s.Require().NoError(err)
	s.pgContainer = pg

	dsn, err := pg.ConnectionString(ctx, "sslmode=disable")
	s.Require().NoError(err)

	s.db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	s.Require().NoError(err)
	s.Require().NoError(infra.Migrate(s.db, infra.DriverPostgres))

	s.Cfg = TestConfig()
	s.NewUoW = func() repository.UnitOfWork {
		s.Require().NoError(s.db.Exec("TRUNCATE registry_config, aliases, alias_owners").Error)
		return infrarepo.NewUoW(s.db)
	}
}

// TearDownSuite cleans up the test suite resources
func (s *E2ETestSuite) TearDownSuite() {
	if s.pgContainer != nil {
		_ = s.pgContainer.Terminate(context.Background())
	}
}
