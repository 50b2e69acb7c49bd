package persistence

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/khoahotran/portfolio-showcase/internal/domain/kv"
	"github.com/khoahotran/portfolio-showcase/internal/domain/profile"
	"github.com/khoahotran/portfolio-showcase/pkg/logger"
)

// KVIntegrationTestSuite runs the same contract against the networked backends.
type KVIntegrationTestSuite struct {
	suite.Suite
	pgContainer    *postgres.PostgresContainer
	redisContainer testcontainers.Container
	stores         map[string]kv.Store
}

func TestKVIntegration(t *testing.T) {
	if os.Getenv("INTEGRATION_TESTS") == "" {
		t.Skip("Skipping integration tests. Set INTEGRATION_TESTS=1 to run.")
	}
	suite.Run(t, new(KVIntegrationTestSuite))
}

func (s *KVIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()
	s.stores = make(map[string]kv.Store)

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(1*time.Minute),
		),
	)
	if err != nil {
		s.T().Fatalf("Failed to start postgres container: %s", err)
	}
	s.pgContainer = pgContainer

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		s.T().Fatalf("Failed to get connection string: %s", err)
	}

	m, err := migrate.New("file://../../migrations", dsn)
	if err != nil {
		s.T().Fatalf("Failed to create migrate instance: %s", err)
	}
	if err := m.Up(); err != nil {
		s.T().Fatalf("Failed to run migrations: %s", err)
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		s.T().Fatalf("Failed to create pgxpool: %s", err)
	}
	s.stores["postgres"] = NewPostgresKVStore(pool)

	redisContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections"),
		},
		Started: true,
	})
	if err != nil {
		s.T().Fatalf("Failed to start redis container: %s", err)
	}
	s.redisContainer = redisContainer

	host, err := redisContainer.Host(ctx)
	if err != nil {
		s.T().Fatalf("Failed to get redis host: %s", err)
	}
	port, err := redisContainer.MappedPort(ctx, "6379")
	if err != nil {
		s.T().Fatalf("Failed to get redis port: %s", err)
	}
	rdb := redis.NewClient(&redis.Options{Addr: fmt.Sprintf("%s:%s", host, port.Port())})
	s.stores["redis"] = NewRedisKVStore(rdb)
}

func (s *KVIntegrationTestSuite) TearDownSuite() {
	ctx := context.Background()
	for _, store := range s.stores {
		store.Close()
	}
	if s.pgContainer != nil {
		s.pgContainer.Terminate(ctx)
	}
	if s.redisContainer != nil {
		s.redisContainer.Terminate(ctx)
	}
}

func (s *KVIntegrationTestSuite) Test_StoreContract() {
	ctx := context.Background()
	for name, store := range s.stores {
		s.Run(name, func() {
			_, found, err := store.Get(ctx, "contract:missing")
			s.Require().NoError(err)
			s.False(found)

			s.Require().NoError(store.Set(ctx, "contract:a", "1"))
			s.Require().NoError(store.Set(ctx, "contract:a", "2"))
			val, found, err := store.Get(ctx, "contract:a")
			s.Require().NoError(err)
			s.True(found)
			s.Equal("2", val)

			batcher, ok := store.(kv.Batcher)
			s.Require().True(ok)
			s.Require().NoError(batcher.SetMany(ctx, map[string]string{"contract:b": "x", "contract:c": "y"}))

			s.Require().NoError(store.Remove(ctx, "contract:a", "contract:b", "contract:c"))
			_, found, err = store.Get(ctx, "contract:b")
			s.Require().NoError(err)
			s.False(found)
		})
	}
}

func (s *KVIntegrationTestSuite) Test_ProfileRoundTrip() {
	ctx := context.Background()
	for name, store := range s.stores {
		s.Run(name, func() {
			repo := NewKVProfileRepo(store, true, logger.NewNop())
			s.Require().NoError(repo.Save(ctx, profile.Default()))

			got, state := repo.Load(ctx)
			s.Equal(profile.LoadFound, state)
			s.Equal(profile.Default(), got)

			s.Require().NoError(repo.Clear(ctx))
			_, state = repo.Load(ctx)
			s.Equal(profile.LoadEmpty, state)
		})
	}
}
