package commands_test

import (
	"testing"
	"time"

	"haulix/internal/core/application/usecases/commands"
	"haulix/internal/core/domain/model/account"
	"haulix/internal/core/domain/model/kernel"
	"haulix/internal/core/domain/model/order"
	"haulix/internal/core/ports"
	"haulix/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testAdminEmail = "admin@haulix.test"

func validContactInput(name, email string) commands.ContactInput {
	return commands.ContactInput{
		Name:    name,
		Email:   email,
		Phone:   "+1 (555) 010-2030",
		Street:  "1 Main St",
		City:    "Springfield",
		State:   "IL",
		ZipCode: "62701",
		Country: "US",
	}
}

func validPackageInput() commands.PackageInput {
	return commands.PackageInput{
		WeightGrams:   2500,
		LengthCm:      30,
		WidthCm:       20,
		HeightCm:      10,
		Description:   "ceramic vase",
		DeclaredValue: 12000,
		Category:      "gifts",
	}
}

func ownerAccount(t *testing.T, id kernel.UUID) *account.Account {
	t.Helper()
	owner, err := account.RestoreAccount(
		id, "alice@example.com", "$2a$12$fakehash", "Alice", "Smith", "+15550102030",
		account.RoleCustomer, true, nil, time.Now(), time.Now(),
	)
	require.NoError(t, err)
	return owner
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	ownerID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		ownerID,
		validContactInput("Alice Smith", "alice@example.com"),
		validContactInput("Bob Jones", "bob@example.com"),
		validPackageInput(),
		"express",
	)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	accountRepo := new(MockAccountRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AccountRepository").Return(accountRepo).Once(),
		accountRepo.On("Get", mock.Anything, ownerID).Return(ownerAccount(t, ownerID), nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotifier)
	notifier.On("Notify", mock.Anything, ports.NotificationOrderConfirmation, "alice@example.com", mock.Anything).
		Return(nil).Once()
	notifier.On("Notify", mock.Anything, ports.NotificationAdminNewOrder, testAdminEmail, mock.Anything).
		Return(nil).Once()

	h := commands.NewCreateOrderCommandHandler(
		factory,
		&stubTrackingNumbers{numbers: []string{"HLX1234567890"}},
		notifier, testAdminEmail, discardLogger(),
	)

	created, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, "HLX1234567890", created.TrackingNumber())
	assert.Equal(t, order.StatusPending, created.Status())
	assert.Equal(t, int64(13500), created.Shipping().Cost(), "2500g express bills three units at 4500 cents")
	require.Len(t, created.History(), 1)

	orderRepo.AssertExpectations(t)
	accountRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_RetriesOnTrackingNumberConflict(t *testing.T) {
	ctx := t.Context()
	ownerID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		ownerID,
		validContactInput("Alice Smith", "alice@example.com"),
		validContactInput("Bob Jones", "bob@example.com"),
		validPackageInput(),
		"standard",
	)
	require.NoError(t, err)

	owner := ownerAccount(t, ownerID)

	orderRepo := new(MockOrderRepository)
	accountRepo := new(MockAccountRepository)
	accountRepo.On("Get", mock.Anything, ownerID).Return(owner, nil).Twice()
	orderRepo.On("Add", mock.Anything, mock.MatchedBy(func(o *order.Order) bool {
		return o.TrackingNumber() == "HLX0000000001"
	})).Return(errs.NewConflictError("trackingNumber")).Once()
	orderRepo.On("Add", mock.Anything, mock.MatchedBy(func(o *order.Order) bool {
		return o.TrackingNumber() == "HLX0000000002"
	})).Return(nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Twice()
	uow.On("AccountRepository").Return(accountRepo).Twice()
	uow.On("OrderRepository").Return(orderRepo).Twice()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Twice()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Twice()

	notifier := new(MockNotifier)
	notifier.On("Notify", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Twice()

	h := commands.NewCreateOrderCommandHandler(
		factory,
		&stubTrackingNumbers{numbers: []string{"HLX0000000001", "HLX0000000002"}},
		notifier, testAdminEmail, discardLogger(),
	)

	created, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, "HLX0000000002", created.TrackingNumber())

	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_GivesUpAfterRepeatedConflicts(t *testing.T) {
	ctx := t.Context()
	ownerID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		ownerID,
		validContactInput("Alice Smith", "alice@example.com"),
		validContactInput("Bob Jones", "bob@example.com"),
		validPackageInput(),
		"priority",
	)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	accountRepo := new(MockAccountRepository)
	accountRepo.On("Get", mock.Anything, ownerID).Return(ownerAccount(t, ownerID), nil).Times(3)
	orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
		Return(errs.NewConflictError("trackingNumber")).Times(3)

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Times(3)
	uow.On("AccountRepository").Return(accountRepo).Times(3)
	uow.On("OrderRepository").Return(orderRepo).Times(3)
	uow.On("Rollback", ctx).Return(nil).Times(3)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Times(3)

	h := commands.NewCreateOrderCommandHandler(
		factory,
		&stubTrackingNumbers{numbers: []string{"HLX0000000001"}},
		new(MockNotifier), testAdminEmail, discardLogger(),
	)

	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrConflict)

	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_NotificationFailureDoesNotFail(t *testing.T) {
	ctx := t.Context()
	ownerID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		ownerID,
		validContactInput("Alice Smith", "alice@example.com"),
		validContactInput("Bob Jones", "bob@example.com"),
		validPackageInput(),
		"standard",
	)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	accountRepo := new(MockAccountRepository)
	accountRepo.On("Get", mock.Anything, ownerID).Return(ownerAccount(t, ownerID), nil).Once()
	orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("AccountRepository").Return(accountRepo).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotifier)
	notifier.On("Notify", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(assert.AnError).Twice()

	h := commands.NewCreateOrderCommandHandler(
		factory,
		&stubTrackingNumbers{numbers: []string{"HLX1234567890"}},
		notifier, testAdminEmail, discardLogger(),
	)

	created, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NotNil(t, created)

	notifier.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	h := commands.NewCreateOrderCommandHandler(
		new(MockUoWFactory), &stubTrackingNumbers{numbers: []string{"HLX1234567890"}},
		new(MockNotifier), testAdminEmail, discardLogger(),
	)

	_, err := h.Handle(t.Context(), commands.CreateOrderCommand{})
	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
}

func TestNewCreateOrderCommand_Invalid(t *testing.T) {
	ownerID := kernel.NewUUID()

	t.Run("rejects bad tier", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			ownerID,
			validContactInput("Alice Smith", "alice@example.com"),
			validContactInput("Bob Jones", "bob@example.com"),
			validPackageInput(),
			"overnight",
		)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects bad sender email", func(t *testing.T) {
		sender := validContactInput("Alice Smith", "not-an-email")
		_, err := commands.NewCreateOrderCommand(
			ownerID, sender,
			validContactInput("Bob Jones", "bob@example.com"),
			validPackageInput(),
			"standard",
		)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects zero weight", func(t *testing.T) {
		pkg := validPackageInput()
		pkg.WeightGrams = 0
		_, err := commands.NewCreateOrderCommand(
			ownerID,
			validContactInput("Alice Smith", "alice@example.com"),
			validContactInput("Bob Jones", "bob@example.com"),
			pkg,
			"standard",
		)
		require.Error(t, err)
	})
}
