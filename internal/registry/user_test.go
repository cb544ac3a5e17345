package registry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Deibormi/Neighborhood-Security-Network/internal/models"
)

func TestRegisterUser_Success(t *testing.T) {
	// Подготовка
	reg, pub := newTestRegistry(t)
	ctx := context.Background()

	pub.EXPECT().Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event models.Event) error {
			assert.Equal(t, models.EventUserRegistered, event.Type)
			assert.Equal(t, aliceAddr, event.Actor)
			return nil
		})

	// Действие
	user, err := reg.RegisterUser(ctx, aliceAddr, "alice@example.com")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, aliceAddr, user.Address)
	assert.True(t, user.IsRegistered)
	assert.False(t, user.IsVerified)
	assert.False(t, user.IsFirstResponder)
	assert.Equal(t, int64(MinReputation), user.ReputationScore)
	assert.Zero(t, user.AlertsReported)
	assert.Zero(t, user.AlertsResponded)
	assert.False(t, user.RegisteredAt.IsZero())
}

func TestRegisterUser_Duplicate(t *testing.T) {
	reg, pub := newTestRegistry(t)
	allowEvents(pub)
	ctx := context.Background()

	_, err := reg.RegisterUser(ctx, aliceAddr, "alice@example.com")
	require.NoError(t, err)

	_, err = reg.RegisterUser(ctx, aliceAddr, "alice-again@example.com")

	assert.ErrorIs(t, err, ErrConflict)
}

func TestRegisterUser_EmptyContactInfo(t *testing.T) {
	reg, _ := newTestRegistry(t)

	_, err := reg.RegisterUser(context.Background(), aliceAddr, "")

	assert.ErrorIs(t, err, ErrValidation)
}

func TestVerifyUser_Success(t *testing.T) {
	// Подготовка
	reg, pub := newTestRegistry(t)
	ctx := context.Background()
	seedUser(reg, aliceAddr, MinReputation, false, false)

	pub.EXPECT().Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event models.Event) error {
			assert.Equal(t, models.EventUserVerified, event.Type)
			assert.Equal(t, aliceAddr, event.Payload["address"])
			return nil
		})

	// Действие
	err := reg.VerifyUser(ctx, ownerAddr, aliceAddr)

	// Проверки: флаг установлен, бонус начислен
	require.NoError(t, err)
	user, err := reg.GetUserProfile(ctx, aliceAddr)
	require.NoError(t, err)
	assert.True(t, user.IsVerified)
	assert.Equal(t, int64(MinReputation+VerificationBonus), user.ReputationScore)
}

func TestVerifyUser_NonOwner(t *testing.T) {
	reg, _ := newTestRegistry(t)
	seedUser(reg, aliceAddr, MinReputation, false, false)
	seedUser(reg, bobAddr, MinReputation, false, false)

	err := reg.VerifyUser(context.Background(), bobAddr, aliceAddr)

	assert.ErrorIs(t, err, ErrAuthorization)
}

func TestVerifyUser_NotRegistered(t *testing.T) {
	reg, _ := newTestRegistry(t)

	err := reg.VerifyUser(context.Background(), ownerAddr, aliceAddr)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestVerifyUser_AlreadyVerified(t *testing.T) {
	// Подготовка
	reg, _ := newTestRegistry(t)
	seedUser(reg, aliceAddr, MinReputation, true, false)

	err := reg.VerifyUser(context.Background(), ownerAddr, aliceAddr)

	// Повторная верификация не должна начислять бонус повторно
	assert.ErrorIs(t, err, ErrConflict)
	user, uerr := reg.GetUserProfile(context.Background(), aliceAddr)
	require.NoError(t, uerr)
	assert.Equal(t, int64(MinReputation), user.ReputationScore)
}

func TestSetFirstResponder_Success(t *testing.T) {
	// Подготовка
	reg, _ := newTestRegistry(t)
	ctx := context.Background()
	seedUser(reg, aliceAddr, MinReputation, true, false)

	// Действие: включаем и затем выключаем флаг
	require.NoError(t, reg.SetFirstResponder(ctx, ownerAddr, aliceAddr, true))
	user, err := reg.GetUserProfile(ctx, aliceAddr)
	require.NoError(t, err)
	assert.True(t, user.IsFirstResponder)

	require.NoError(t, reg.SetFirstResponder(ctx, ownerAddr, aliceAddr, false))
	user, err = reg.GetUserProfile(ctx, aliceAddr)
	require.NoError(t, err)
	assert.False(t, user.IsFirstResponder)
}

func TestSetFirstResponder_RequiresVerifiedUser(t *testing.T) {
	reg, _ := newTestRegistry(t)
	seedUser(reg, aliceAddr, MinReputation, false, false)

	err := reg.SetFirstResponder(context.Background(), ownerAddr, aliceAddr, true)

	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestSetFirstResponder_NonOwner(t *testing.T) {
	reg, _ := newTestRegistry(t)
	seedUser(reg, aliceAddr, MinReputation, true, false)

	err := reg.SetFirstResponder(context.Background(), aliceAddr, aliceAddr, true)

	assert.ErrorIs(t, err, ErrAuthorization)
}

func TestAddEmergencyService_OwnerOnly(t *testing.T) {
	reg, _ := newTestRegistry(t)
	seedUser(reg, aliceAddr, MinReputation, false, false)

	err := reg.AddEmergencyService(context.Background(), aliceAddr, "0xDispatch")

	assert.ErrorIs(t, err, ErrAuthorization)
}

func TestAddEmergencyService_Idempotent(t *testing.T) {
	reg, _ := newTestRegistry(t)
	ctx := context.Background()

	require.NoError(t, reg.AddEmergencyService(ctx, ownerAddr, "0xDispatch"))
	require.NoError(t, reg.AddEmergencyService(ctx, ownerAddr, "0xDispatch"))
}

func TestGetUserProfile_NotFound(t *testing.T) {
	reg, _ := newTestRegistry(t)

	_, err := reg.GetUserProfile(context.Background(), aliceAddr)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetUserProfile_ReturnsCopy(t *testing.T) {
	// Подготовка
	reg, _ := newTestRegistry(t)
	ctx := context.Background()
	seedUser(reg, aliceAddr, MinReputation, false, false)

	// Действие: мутируем возвращенную копию
	user, err := reg.GetUserProfile(ctx, aliceAddr)
	require.NoError(t, err)
	user.ReputationScore = 9000
	user.IsVerified = true

	// Проверки
	fresh, err := reg.GetUserProfile(ctx, aliceAddr)
	require.NoError(t, err)
	assert.Equal(t, int64(MinReputation), fresh.ReputationScore)
	assert.False(t, fresh.IsVerified)
}
