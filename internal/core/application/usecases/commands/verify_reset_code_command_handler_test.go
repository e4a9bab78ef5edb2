package commands_test

import (
	"testing"
	"time"

	"haulix/internal/core/application/usecases/commands"
	"haulix/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestVerifyResetCodeCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	target := verifiedAccount(t)
	require.NoError(t, target.IssueResetCode("777777", time.Now().UTC().Add(-time.Minute)))

	cmd, err := commands.NewVerifyResetCodeCommand("Alice@Example.com", "777777")
	require.NoError(t, err)

	repo := new(MockAccountRepository)
	repo.On("GetByEmail", mock.Anything, "alice@example.com").Return(target, nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("AccountRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockAccountUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewVerifyResetCodeCommandHandler(factory)

	require.NoError(t, h.Handle(ctx, cmd))

	require.NotNil(t, target.Code(), "the check must not consume the code")
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	repo.AssertExpectations(t)
}

func TestVerifyResetCodeCommandHandler_Handle_WrongCode(t *testing.T) {
	ctx := t.Context()
	target := verifiedAccount(t)
	require.NoError(t, target.IssueResetCode("777777", time.Now().UTC()))

	cmd, err := commands.NewVerifyResetCodeCommand("alice@example.com", "111111")
	require.NoError(t, err)

	repo := new(MockAccountRepository)
	repo.On("GetByEmail", mock.Anything, "alice@example.com").Return(target, nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("AccountRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockAccountUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewVerifyResetCodeCommandHandler(factory)

	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrValueIsInvalid)
}

func TestVerifyResetCodeCommandHandler_Handle_ExpiredCode(t *testing.T) {
	ctx := t.Context()
	target := verifiedAccount(t)
	require.NoError(t, target.IssueResetCode("777777", time.Now().UTC().Add(-2*time.Hour)))

	cmd, err := commands.NewVerifyResetCodeCommand("alice@example.com", "777777")
	require.NoError(t, err)

	repo := new(MockAccountRepository)
	repo.On("GetByEmail", mock.Anything, "alice@example.com").Return(target, nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("AccountRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockAccountUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewVerifyResetCodeCommandHandler(factory)

	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrValueIsInvalid)
}

func TestVerifyResetCodeCommandHandler_Handle_UnknownEmailLooksLikeBadCode(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewVerifyResetCodeCommand("ghost@example.com", "777777")
	require.NoError(t, err)

	repo := new(MockAccountRepository)
	repo.On("GetByEmail", mock.Anything, "ghost@example.com").
		Return(nil, errs.NewObjectNotFoundError("email", "ghost@example.com")).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("AccountRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockAccountUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewVerifyResetCodeCommandHandler(factory)

	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrValueIsInvalid)
}

func TestNewVerifyResetCodeCommand_Invalid(t *testing.T) {
	_, err := commands.NewVerifyResetCodeCommand("", "777777")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewVerifyResetCodeCommand("alice@example.com", "")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	var zero commands.VerifyResetCodeCommand
	assert.ErrorIs(t, zero.Validate(), commands.ErrVerifyResetCodeCommandIsNotConstructed)
}
