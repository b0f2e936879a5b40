package entdb

import (
	"context"
	"testing"
	"time"

	"markfy/ent"
	"markfy/internal/bookmarks/domain"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"

	_ "github.com/lib/pq"
)

// IntegrationTestSuite runs the repository against real PostgreSQL and Redis
// instances using testcontainers.
type IntegrationTestSuite struct {
	suite.Suite
	ctx            context.Context
	pgContainer    *postgres.PostgresContainer
	redisContainer *tcredis.RedisContainer
	entClient      *ent.Client
	redisClient    *redis.Client
	repo           *BookmarkRepository
}

func (s *IntegrationTestSuite) SetupSuite() {
	s.ctx = context.Background()

	pgContainer, err := postgres.Run(s.ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(s.T(), err)
	s.pgContainer = pgContainer

	redisContainer, err := tcredis.Run(s.ctx,
		"redis:7-alpine",
		testcontainers.WithWaitStrategy(
			wait.ForLog("Ready to accept connections").
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(s.T(), err)
	s.redisContainer = redisContainer

	pgConnStr, err := pgContainer.ConnectionString(s.ctx, "sslmode=disable")
	require.NoError(s.T(), err)

	redisEndpoint, err := redisContainer.Endpoint(s.ctx, "")
	require.NoError(s.T(), err)

	s.entClient, err = ent.Open("postgres", pgConnStr)
	require.NoError(s.T(), err)

	err = s.entClient.Schema.Create(s.ctx)
	require.NoError(s.T(), err)

	s.redisClient = redis.NewClient(&redis.Options{Addr: redisEndpoint})

	cache := NewBookmarkCache(s.redisClient, zap.NewNop())
	s.repo = NewBookmarkRepository(s.entClient, cache, zap.NewNop())
}

func (s *IntegrationTestSuite) TearDownSuite() {
	if s.entClient != nil {
		s.entClient.Close()
	}
	if s.redisClient != nil {
		s.redisClient.Close()
	}
	if s.pgContainer != nil {
		_ = s.pgContainer.Terminate(s.ctx)
	}
	if s.redisContainer != nil {
		_ = s.redisContainer.Terminate(s.ctx)
	}
}

func (s *IntegrationTestSuite) TearDownTest() {
	s.entClient.Bookmark.Delete().ExecX(s.ctx)
	s.redisClient.FlushAll(s.ctx)
}

func TestIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}
	suite.Run(t, new(IntegrationTestSuite))
}

func (s *IntegrationTestSuite) TestCreateAndFindByID() {
	// Arrange & Act
	created, err := s.repo.Create(s.ctx, domain.CreateInput{
		Title:       "Go Documentation",
		URL:         "https://go.dev/doc/",
		Description: "The official docs",
	})

	// Assert
	require.NoError(s.T(), err)
	assert.NotEmpty(s.T(), created.ID)

	found, err := s.repo.FindByID(s.ctx, created.ID)
	require.NoError(s.T(), err)
	require.NotNil(s.T(), found)
	assert.Equal(s.T(), "Go Documentation", found.Title)
}

func (s *IntegrationTestSuite) TestCreate_DuplicateURL() {
	// Arrange
	_, err := s.repo.Create(s.ctx, domain.CreateInput{Title: "First", URL: "https://go.dev"})
	require.NoError(s.T(), err)

	// Act
	_, err = s.repo.Create(s.ctx, domain.CreateInput{Title: "Second", URL: "https://go.dev"})

	// Assert
	assert.ErrorIs(s.T(), err, domain.ErrDuplicateURL)
}

func (s *IntegrationTestSuite) TestFindByID_UsesCache() {
	// Arrange
	created, err := s.repo.Create(s.ctx, domain.CreateInput{Title: "Cached", URL: "https://cached.example.com"})
	require.NoError(s.T(), err)

	// First read populates the cache
	first, err := s.repo.FindByID(s.ctx, created.ID)
	require.NoError(s.T(), err)
	require.NotNil(s.T(), first)

	// Delete from the database directly so only the cache can answer
	s.entClient.Bookmark.DeleteOneID(created.ID).ExecX(s.ctx)

	// Act
	second, err := s.repo.FindByID(s.ctx, created.ID)

	// Assert
	require.NoError(s.T(), err)
	require.NotNil(s.T(), second)
	assert.Equal(s.T(), "Cached", second.Title)
}

func (s *IntegrationTestSuite) TestCacheInvalidation_OnUpdate() {
	// Arrange
	created, err := s.repo.Create(s.ctx, domain.CreateInput{Title: "Before", URL: "https://update.example.com"})
	require.NoError(s.T(), err)

	// Populate the cache
	_, err = s.repo.FindByID(s.ctx, created.ID)
	require.NoError(s.T(), err)

	// Act
	newTitle := "After"
	_, err = s.repo.Update(s.ctx, created.ID, domain.UpdateInput{Title: &newTitle})
	require.NoError(s.T(), err)

	// Assert
	found, err := s.repo.FindByID(s.ctx, created.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "After", found.Title)
}

func (s *IntegrationTestSuite) TestCacheInvalidation_OnDelete() {
	// Arrange
	created, err := s.repo.Create(s.ctx, domain.CreateInput{Title: "Doomed", URL: "https://doomed.example.com"})
	require.NoError(s.T(), err)

	// Populate the cache
	_, err = s.repo.FindByID(s.ctx, created.ID)
	require.NoError(s.T(), err)

	// Act
	err = s.repo.Delete(s.ctx, created.ID)
	require.NoError(s.T(), err)

	// Assert
	found, err := s.repo.FindByID(s.ctx, created.ID)
	require.NoError(s.T(), err)
	assert.Nil(s.T(), found)
}

func (s *IntegrationTestSuite) TestCacheInvalidation_OnToggleFavorite() {
	// Arrange
	created, err := s.repo.Create(s.ctx, domain.CreateInput{Title: "Flip", URL: "https://flip.example.com"})
	require.NoError(s.T(), err)

	// Populate the cache with is_favorite = false
	_, err = s.repo.FindByID(s.ctx, created.ID)
	require.NoError(s.T(), err)

	// Act
	toggled, err := s.repo.ToggleFavorite(s.ctx, created.ID)
	require.NoError(s.T(), err)

	// Assert
	assert.True(s.T(), toggled.IsFavorite)
	found, err := s.repo.FindByID(s.ctx, created.ID)
	require.NoError(s.T(), err)
	assert.True(s.T(), found.IsFavorite)
}

func (s *IntegrationTestSuite) TestFindByQuery_SearchAndPagination() {
	// Arrange
	for _, in := range []domain.CreateInput{
		{Title: "Go Documentation", URL: "https://go.dev/doc/"},
		{Title: "Redis Docs", URL: "https://redis.io/docs/"},
		{Title: "Chi Router", URL: "https://go-chi.io"},
	} {
		_, err := s.repo.Create(s.ctx, in)
		require.NoError(s.T(), err)
	}

	// Act
	result, err := s.repo.FindByQuery(s.ctx, domain.Query{Page: 1, Limit: 2, Search: "docs", Sort: domain.SortNewest})

	// Assert
	require.NoError(s.T(), err)
	assert.Len(s.T(), result.Items, 2)
	assert.Equal(s.T(), 2, result.Total)
}
