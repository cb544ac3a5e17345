package registry

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Deibormi/Neighborhood-Security-Network/internal/models"
	"github.com/Deibormi/Neighborhood-Security-Network/internal/notify/mocks"
)

const (
	ownerAddr = "0xOwner"
	aliceAddr = "0xAlice"
	bobAddr   = "0xBob"
	carolAddr = "0xCarol"
)

// newTestRegistry — вспомогательная функция для создания реестра с мок-издателем.
func newTestRegistry(t *testing.T) (*Registry, *mocks.MockEventPublisher) {
	ctrl := gomock.NewController(t)
	pub := mocks.NewMockEventPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	reg := NewRegistry(NewStore(), ownerAddr, logger, pub)
	return reg, pub
}

// allowEvents разрешает любое количество публикаций для сценарных тестов
func allowEvents(pub *mocks.MockEventPublisher) {
	pub.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

// seedUser кладет пользователя прямо в хранилище, минуя операции реестра
func seedUser(reg *Registry, address string, reputation int64, verified, firstResponder bool) {
	reg.store.Users[address] = &models.User{
		Address:          address,
		IsRegistered:     true,
		IsVerified:       verified,
		IsFirstResponder: firstResponder,
		ReputationScore:  reputation,
		ContactInfo:      "seeded",
	}
}

// seedActiveAlert кладет активную тревогу прямо в хранилище
func seedActiveAlert(reg *Registry, reporter string) uint64 {
	id := reg.store.allocAlertID()
	reg.store.Alerts[id] = &models.Alert{
		ID:           id,
		Reporter:     reporter,
		Type:         models.AlertTypeSuspicious,
		Status:       models.AlertStatusActive,
		Location:     "Main St",
		Description:  "seeded alert",
		RadiusMeters: 500,
	}
	return id
}

func TestGetStats(t *testing.T) {
	// Подготовка
	reg, pub := newTestRegistry(t)
	allowEvents(pub)
	ctx := context.Background()
	seedUser(reg, aliceAddr, MinReputation, true, false)
	seedUser(reg, bobAddr, MinReputation, false, false)
	first := seedActiveAlert(reg, aliceAddr)
	seedActiveAlert(reg, aliceAddr)

	require.NoError(t, reg.ResolveAlert(ctx, aliceAddr, first, models.AlertStatusResolved))
	require.NoError(t, reg.CreateNeighborhood(ctx, aliceAddr, &models.Neighborhood{Name: "Old Town", RadiusMeters: 1000}))

	// Действие
	stats, err := reg.GetStats(ctx)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, uint64(2), stats.TotalAlerts)
	assert.Equal(t, uint64(1), stats.ActiveAlerts)
	assert.Equal(t, uint64(1), stats.TotalNeighborhoods)
	assert.Equal(t, uint64(2), stats.TotalUsers)
}

func TestSnapshotRoundTrip(t *testing.T) {
	// Подготовка: наполняем реестр и прогоняем состояние через JSON,
	// как это делает хранилище снапшотов
	reg, pub := newTestRegistry(t)
	allowEvents(pub)
	ctx := context.Background()

	_, err := reg.RegisterUser(ctx, aliceAddr, "signal:alice")
	require.NoError(t, err)
	require.NoError(t, reg.VerifyUser(ctx, ownerAddr, aliceAddr))
	alert := &models.Alert{
		Type:         models.AlertTypeTraffic,
		Location:     "5th Ave",
		Description:  "Road blocked",
		RadiusMeters: 200,
	}
	require.NoError(t, reg.CreateAlert(ctx, aliceAddr, alert))

	raw, err := json.Marshal(reg.ExportState())
	require.NoError(t, err)

	restored := NewStore()
	require.NoError(t, json.Unmarshal(raw, restored))

	reg2, pub2 := newTestRegistry(t)
	allowEvents(pub2)
	reg2.RestoreState(restored)

	// Проверки: данные и счетчики id пережили перезапуск
	user, err := reg2.GetUserProfile(ctx, aliceAddr)
	require.NoError(t, err)
	assert.True(t, user.IsVerified)

	got, err := reg2.GetAlert(ctx, alert.ID)
	require.NoError(t, err)
	assert.Equal(t, models.AlertStatusActive, got.Status)

	next := &models.Alert{
		Type:         models.AlertTypeUtility,
		Location:     "Substation 7",
		Description:  "Power outage",
		RadiusMeters: 900,
	}
	require.NoError(t, reg2.CreateAlert(ctx, aliceAddr, next))
	assert.Equal(t, alert.ID+1, next.ID)
}

// Сценарий жизненного цикла репутации: регистрация дает ровно пороговые 50,
// этого достаточно для создания тревоги; отклик и закрытие начисляют награды.
func TestReputationLifecycleScenario(t *testing.T) {
	reg, pub := newTestRegistry(t)
	allowEvents(pub)
	ctx := context.Background()

	userA, err := reg.RegisterUser(ctx, aliceAddr, "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, int64(MinReputation), userA.ReputationScore)

	_, err = reg.RegisterUser(ctx, bobAddr, "b@example.com")
	require.NoError(t, err)

	alert := &models.Alert{
		Type:         models.AlertTypeSuspicious,
		Location:     "Corner shop",
		Description:  "Broken window",
		RadiusMeters: 100,
	}
	// Ровно MinReputation - граница проходима
	require.NoError(t, reg.CreateAlert(ctx, aliceAddr, alert))

	_, err = reg.RespondToAlert(ctx, bobAddr, alert.ID)
	require.NoError(t, err)
	userB, err := reg.GetUserProfile(ctx, bobAddr)
	require.NoError(t, err)
	assert.Equal(t, int64(60), userB.ReputationScore)

	require.NoError(t, reg.ResolveAlert(ctx, aliceAddr, alert.ID, models.AlertStatusResolved))
	userA, err = reg.GetUserProfile(ctx, aliceAddr)
	require.NoError(t, err)
	assert.Equal(t, int64(60), userA.ReputationScore)
}
