package tokenstore_test

import (
	"context"
	"testing"
	"time"

	"haulix/internal/adapters/out/tokenstore"
	"haulix/internal/core/domain/model/account"
	"haulix/internal/core/domain/model/kernel"
	"haulix/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// TokenStoreIntegrationTestSuite provides integration tests for the
// token store using PostgreSQL containers.
type TokenStoreIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	store     *tokenstore.GormTokenStore
}

func (suite *TokenStoreIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&tokenstore.TokenDTO{}))
}

func (suite *TokenStoreIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE tokens").Error)
	suite.store = tokenstore.NewGormTokenStore(suite.db, time.Hour)
}

func (suite *TokenStoreIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *TokenStoreIntegrationTestSuite) TestIssueAndResolve() {
	ctx := context.Background()
	accountID := kernel.NewUUID()

	token, err := suite.store.Issue(ctx, accountID, account.RoleAdmin)
	suite.Require().NoError(err)
	suite.Len(token, 64)

	resolvedID, role, err := suite.store.Resolve(ctx, token)
	suite.Require().NoError(err)
	suite.True(resolvedID.IsEqual(accountID))
	suite.Equal(account.RoleAdmin, role)
}

func (suite *TokenStoreIntegrationTestSuite) TestIssue_TokensAreUnique() {
	ctx := context.Background()
	accountID := kernel.NewUUID()

	first, err := suite.store.Issue(ctx, accountID, account.RoleCustomer)
	suite.Require().NoError(err)
	second, err := suite.store.Issue(ctx, accountID, account.RoleCustomer)
	suite.Require().NoError(err)

	suite.NotEqual(first, second)
}

func (suite *TokenStoreIntegrationTestSuite) TestResolve_UnknownToken() {
	_, _, err := suite.store.Resolve(context.Background(), "deadbeef")
	suite.Require().ErrorIs(err, errs.ErrUnauthorized)
}

func (suite *TokenStoreIntegrationTestSuite) TestResolve_EmptyToken() {
	_, _, err := suite.store.Resolve(context.Background(), "")
	suite.Require().ErrorIs(err, errs.ErrUnauthorized)
}

func (suite *TokenStoreIntegrationTestSuite) TestResolve_ExpiredTokenIsRejectedAndRemoved() {
	ctx := context.Background()
	expiring := tokenstore.NewGormTokenStore(suite.db, -time.Minute)

	token, err := expiring.Issue(ctx, kernel.NewUUID(), account.RoleCustomer)
	suite.Require().NoError(err)

	_, _, err = expiring.Resolve(ctx, token)
	suite.Require().ErrorIs(err, errs.ErrUnauthorized)

	var count int64
	suite.Require().NoError(suite.db.Model(&tokenstore.TokenDTO{}).Where("token = ?", token).Count(&count).Error)
	suite.Equal(int64(0), count)
}

func (suite *TokenStoreIntegrationTestSuite) TestPurgeExpired() {
	ctx := context.Background()
	expiring := tokenstore.NewGormTokenStore(suite.db, -time.Minute)

	_, err := expiring.Issue(ctx, kernel.NewUUID(), account.RoleCustomer)
	suite.Require().NoError(err)
	live, err := suite.store.Issue(ctx, kernel.NewUUID(), account.RoleCustomer)
	suite.Require().NoError(err)

	purged, err := suite.store.PurgeExpired(ctx, time.Now().UTC())
	suite.Require().NoError(err)
	suite.Equal(int64(1), purged)

	_, _, err = suite.store.Resolve(ctx, live)
	suite.Require().NoError(err)
}

func TestTokenStoreIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(TokenStoreIntegrationTestSuite))
}
