package commands_test

import (
	"testing"
	"time"

	"haulix/internal/core/application/usecases/commands"
	"haulix/internal/core/domain/model/account"
	"haulix/internal/core/domain/model/kernel"
	"haulix/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func credentialedAccount(t *testing.T, password string, verified bool) *account.Account {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	a, err := account.RestoreAccount(
		kernel.NewUUID(),
		"alice@example.com", string(hash), "Alice", "Smith", "+15550102030",
		account.RoleCustomer, verified, nil, time.Now(), time.Now(),
	)
	require.NoError(t, err)
	return a
}

func loginUoW(t *testing.T, target *account.Account) (*MockAccountUoWFactory, *MockAccountRepository) {
	t.Helper()

	repo := new(MockAccountRepository)
	repo.On("GetByEmail", mock.Anything, "alice@example.com").Return(target, nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", mock.Anything).Return(nil).Once()
	uow.On("AccountRepository").Return(repo).Once()
	uow.On("Commit", mock.Anything).Return(nil).Maybe()
	uow.On("Rollback", mock.Anything).Return(nil).Once()

	factory := new(MockAccountUoWFactory)
	factory.On("Create").Return(uow).Once()
	return factory, repo
}

func TestLoginCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	target := credentialedAccount(t, "s3cret-pass", true)
	factory, _ := loginUoW(t, target)

	tokens := new(MockTokenIssuer)
	tokens.On("Issue", mock.Anything, target.ID(), account.RoleCustomer).Return("tok-abc", nil).Once()

	cmd, err := commands.NewLoginCommand("Alice@Example.com", "s3cret-pass")
	require.NoError(t, err)

	h := commands.NewLoginCommandHandler(factory, tokens)

	session, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, "tok-abc", session.Token)
	assert.Equal(t, target.ID().String(), session.AccountID)
	assert.Equal(t, account.RoleCustomer, session.Role)
	assert.Equal(t, "alice@example.com", session.Email)

	tokens.AssertExpectations(t)
}

func TestLoginCommandHandler_Handle_WrongPassword(t *testing.T) {
	ctx := t.Context()
	factory, _ := loginUoW(t, credentialedAccount(t, "s3cret-pass", true))

	cmd, err := commands.NewLoginCommand("alice@example.com", "wrong-pass")
	require.NoError(t, err)

	h := commands.NewLoginCommandHandler(factory, new(MockTokenIssuer))

	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrUnauthorized)
}

func TestLoginCommandHandler_Handle_UnverifiedAccount(t *testing.T) {
	ctx := t.Context()
	factory, _ := loginUoW(t, credentialedAccount(t, "s3cret-pass", false))

	cmd, err := commands.NewLoginCommand("alice@example.com", "s3cret-pass")
	require.NoError(t, err)

	h := commands.NewLoginCommandHandler(factory, new(MockTokenIssuer))

	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrUnauthorized)
}

func TestLoginCommandHandler_Handle_UnknownEmail(t *testing.T) {
	ctx := t.Context()

	repo := new(MockAccountRepository)
	repo.On("GetByEmail", mock.Anything, "ghost@example.com").
		Return(nil, errs.NewObjectNotFoundError("email", "ghost@example.com")).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("AccountRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockAccountUoWFactory)
	factory.On("Create").Return(uow).Once()

	cmd, err := commands.NewLoginCommand("ghost@example.com", "whatever-pass")
	require.NoError(t, err)

	h := commands.NewLoginCommandHandler(factory, new(MockTokenIssuer))

	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrUnauthorized,
		"unknown emails must be indistinguishable from wrong passwords")
}
