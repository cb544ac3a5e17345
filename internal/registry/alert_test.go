package registry

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Deibormi/Neighborhood-Security-Network/internal/models"
)

func TestCreateAlert_Success(t *testing.T) {
	// Подготовка
	reg, pub := newTestRegistry(t)
	ctx := context.Background()
	seedUser(reg, aliceAddr, MinReputation, true, false)

	pub.EXPECT().Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event models.Event) error {
			assert.Equal(t, models.EventAlertCreated, event.Type)
			assert.Equal(t, aliceAddr, event.Actor)
			assert.Equal(t, uint64(1), event.Payload["alert_id"])
			return nil
		})

	alert := &models.Alert{
		Type:         models.AlertTypeWeather,
		Location:     "River bank",
		Description:  "Water level rising",
		Latitude:     55751244,
		Longitude:    37618423,
		RadiusMeters: 1500,
	}

	// Действие
	err := reg.CreateAlert(ctx, aliceAddr, alert)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, uint64(1), alert.ID)
	assert.Equal(t, aliceAddr, alert.Reporter)
	assert.Equal(t, models.AlertStatusActive, alert.Status)
	assert.True(t, alert.Verified)
	assert.Empty(t, alert.Responders)

	user, err := reg.GetUserProfile(ctx, aliceAddr)
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.AlertsReported)
}

func TestCreateAlert_UnregisteredCaller(t *testing.T) {
	reg, _ := newTestRegistry(t)

	err := reg.CreateAlert(context.Background(), aliceAddr, &models.Alert{
		Type:         models.AlertTypeTraffic,
		Location:     "Bridge",
		Description:  "Accident",
		RadiusMeters: 300,
	})

	assert.ErrorIs(t, err, ErrAuthorization)
}

func TestCreateAlert_ReputationBelowThreshold(t *testing.T) {
	// Подготовка: репутация на единицу ниже порога
	reg, _ := newTestRegistry(t)
	seedUser(reg, aliceAddr, MinReputation-1, false, false)

	err := reg.CreateAlert(context.Background(), aliceAddr, &models.Alert{
		Type:         models.AlertTypeTraffic,
		Location:     "Bridge",
		Description:  "Accident",
		RadiusMeters: 300,
	})

	assert.ErrorIs(t, err, ErrAuthorization)
}

func TestCreateAlert_Validation(t *testing.T) {
	reg, _ := newTestRegistry(t)
	seedUser(reg, aliceAddr, MinReputation, false, false)
	ctx := context.Background()

	testCases := []struct {
		name  string
		alert *models.Alert
	}{
		{
			name:  "unknown type",
			alert: &models.Alert{Type: "EARTHQUAKE", Location: "Park", Description: "Shaking", RadiusMeters: 100},
		},
		{
			name:  "empty location",
			alert: &models.Alert{Type: models.AlertTypeWeather, Description: "Storm", RadiusMeters: 100},
		},
		{
			name:  "empty description",
			alert: &models.Alert{Type: models.AlertTypeWeather, Location: "Park", RadiusMeters: 100},
		},
		{
			name:  "radius below minimum",
			alert: &models.Alert{Type: models.AlertTypeWeather, Location: "Park", Description: "Storm", RadiusMeters: 0},
		},
		{
			name:  "radius above maximum",
			alert: &models.Alert{Type: models.AlertTypeWeather, Location: "Park", Description: "Storm", RadiusMeters: MaxAlertRadius + 1},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := reg.CreateAlert(ctx, aliceAddr, tc.alert)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestCreateAlert_EmergencyFromFirstResponderIsVerified(t *testing.T) {
	// Подготовка: первый реагирующий сам не верифицирован
	reg, pub := newTestRegistry(t)
	allowEvents(pub)
	seedUser(reg, bobAddr, MinReputation, false, true)

	alert := &models.Alert{
		Type:         models.AlertTypeEmergency,
		Location:     "Warehouse",
		Description:  "Fire",
		RadiusMeters: 2000,
	}
	require.NoError(t, reg.CreateAlert(context.Background(), bobAddr, alert))

	// Экстренная тревога от первого реагирующего помечается подтвержденной
	assert.True(t, alert.Verified)
}

func TestCreateAlert_UnverifiedReporterAlertNotVerified(t *testing.T) {
	reg, pub := newTestRegistry(t)
	allowEvents(pub)
	seedUser(reg, bobAddr, MinReputation, false, false)

	alert := &models.Alert{
		Type:         models.AlertTypeEmergency,
		Location:     "Warehouse",
		Description:  "Fire",
		RadiusMeters: 2000,
	}
	require.NoError(t, reg.CreateAlert(context.Background(), bobAddr, alert))

	assert.False(t, alert.Verified)
}

func TestRespondToAlert_Success(t *testing.T) {
	// Подготовка
	reg, pub := newTestRegistry(t)
	ctx := context.Background()
	seedUser(reg, aliceAddr, MinReputation, false, false)
	seedUser(reg, bobAddr, MinReputation, false, false)
	alertID := seedActiveAlert(reg, aliceAddr)

	pub.EXPECT().Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event models.Event) error {
			assert.Equal(t, models.EventAlertResponded, event.Type)
			assert.Equal(t, bobAddr, event.Payload["responder"])
			return nil
		})

	// Действие
	alert, err := reg.RespondToAlert(ctx, bobAddr, alertID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, []string{bobAddr}, alert.Responders)

	user, err := reg.GetUserProfile(ctx, bobAddr)
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.AlertsResponded)
	assert.Equal(t, int64(MinReputation+ResponseReward), user.ReputationScore)
}

func TestRespondToAlert_DuplicateRejected(t *testing.T) {
	// Подготовка
	reg, pub := newTestRegistry(t)
	allowEvents(pub)
	ctx := context.Background()
	seedUser(reg, aliceAddr, MinReputation, false, false)
	seedUser(reg, bobAddr, MinReputation, false, false)
	alertID := seedActiveAlert(reg, aliceAddr)

	_, err := reg.RespondToAlert(ctx, bobAddr, alertID)
	require.NoError(t, err)

	// Действие: повторный отклик того же адреса
	_, err = reg.RespondToAlert(ctx, bobAddr, alertID)

	// Проверки: конфликт, список откликнувшихся не изменился,
	// повторная награда не начислена
	assert.ErrorIs(t, err, ErrConflict)

	responders, err := reg.GetAlertResponders(ctx, alertID)
	require.NoError(t, err)
	assert.Equal(t, []string{bobAddr}, responders)

	user, err := reg.GetUserProfile(ctx, bobAddr)
	require.NoError(t, err)
	assert.Equal(t, int64(MinReputation+ResponseReward), user.ReputationScore)
}

func TestRespondToAlert_NotFound(t *testing.T) {
	reg, _ := newTestRegistry(t)
	seedUser(reg, bobAddr, MinReputation, false, false)

	_, err := reg.RespondToAlert(context.Background(), bobAddr, 404)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRespondToAlert_ResolvedAlertRejected(t *testing.T) {
	// Подготовка: тревога уже закрыта
	reg, pub := newTestRegistry(t)
	allowEvents(pub)
	ctx := context.Background()
	seedUser(reg, aliceAddr, MinReputation, false, false)
	seedUser(reg, bobAddr, MinReputation, false, false)
	alertID := seedActiveAlert(reg, aliceAddr)
	require.NoError(t, reg.ResolveAlert(ctx, aliceAddr, alertID, models.AlertStatusResolved))

	_, err := reg.RespondToAlert(ctx, bobAddr, alertID)

	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestResolveAlert_ResolvedRewardsReporter(t *testing.T) {
	// Подготовка
	reg, pub := newTestRegistry(t)
	ctx := context.Background()
	seedUser(reg, aliceAddr, MinReputation, false, false)
	alertID := seedActiveAlert(reg, aliceAddr)

	pub.EXPECT().Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event models.Event) error {
			assert.Equal(t, models.EventAlertResolved, event.Type)
			assert.Equal(t, models.AlertStatusResolved, event.Payload["status"])
			return nil
		})

	// Действие
	err := reg.ResolveAlert(ctx, aliceAddr, alertID, models.AlertStatusResolved)

	// Проверки
	require.NoError(t, err)
	alert, err := reg.GetAlert(ctx, alertID)
	require.NoError(t, err)
	assert.Equal(t, models.AlertStatusResolved, alert.Status)

	reporter, err := reg.GetUserProfile(ctx, aliceAddr)
	require.NoError(t, err)
	assert.Equal(t, int64(MinReputation+ResolveReward), reporter.ReputationScore)
}

func TestResolveAlert_FalseAlarmClampsReputationAtZero(t *testing.T) {
	// Подготовка: репутация репортера меньше размера штрафа
	reg, pub := newTestRegistry(t)
	allowEvents(pub)
	ctx := context.Background()
	seedUser(reg, aliceAddr, 10, false, false)
	alertID := seedActiveAlert(reg, aliceAddr)

	// Действие: владелец закрывает тревогу как ложную
	err := reg.ResolveAlert(ctx, ownerAddr, alertID, models.AlertStatusFalseAlarm)

	// Проверки: репутация не уходит ниже нуля
	require.NoError(t, err)
	reporter, err := reg.GetUserProfile(ctx, aliceAddr)
	require.NoError(t, err)
	assert.Equal(t, int64(0), reporter.ReputationScore)
}

func TestResolveAlert_ActiveStatusRejected(t *testing.T) {
	reg, _ := newTestRegistry(t)
	seedUser(reg, aliceAddr, MinReputation, false, false)
	alertID := seedActiveAlert(reg, aliceAddr)

	err := reg.ResolveAlert(context.Background(), aliceAddr, alertID, models.AlertStatusActive)

	assert.ErrorIs(t, err, ErrValidation)
}

func TestResolveAlert_SecondResolutionRejected(t *testing.T) {
	// Подготовка
	reg, pub := newTestRegistry(t)
	allowEvents(pub)
	ctx := context.Background()
	seedUser(reg, aliceAddr, MinReputation, false, false)
	alertID := seedActiveAlert(reg, aliceAddr)
	require.NoError(t, reg.ResolveAlert(ctx, aliceAddr, alertID, models.AlertStatusResolved))

	// Действие: попытка переписать конечный статус
	err := reg.ResolveAlert(ctx, aliceAddr, alertID, models.AlertStatusFalseAlarm)

	// Проверки: отказ, статус и репутация без повторных изменений
	assert.ErrorIs(t, err, ErrInvalidState)

	alert, err := reg.GetAlert(ctx, alertID)
	require.NoError(t, err)
	assert.Equal(t, models.AlertStatusResolved, alert.Status)

	reporter, err := reg.GetUserProfile(ctx, aliceAddr)
	require.NoError(t, err)
	assert.Equal(t, int64(MinReputation+ResolveReward), reporter.ReputationScore)
}

func TestResolveAlert_Authorization(t *testing.T) {
	// Подготовка: по одной тревоге на каждый сценарий доступа
	reg, pub := newTestRegistry(t)
	allowEvents(pub)
	ctx := context.Background()
	seedUser(reg, aliceAddr, MinReputation, false, false)
	seedUser(reg, bobAddr, MinReputation, false, false)
	seedUser(reg, carolAddr, MinReputation, true, true)
	require.NoError(t, reg.AddEmergencyService(ctx, ownerAddr, "0xDispatch"))

	testCases := []struct {
		name    string
		caller  string
		wantErr error
	}{
		{name: "reporter may resolve", caller: aliceAddr},
		{name: "owner may resolve", caller: ownerAddr},
		{name: "first responder may resolve", caller: carolAddr},
		{name: "emergency service may resolve", caller: "0xDispatch"},
		{name: "bystander may not resolve", caller: bobAddr, wantErr: ErrAuthorization},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			alertID := seedActiveAlert(reg, aliceAddr)
			err := reg.ResolveAlert(ctx, tc.caller, alertID, models.AlertStatusResolved)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestGetActiveAlerts_AscendingOrderAfterResolution(t *testing.T) {
	// Подготовка: три активные тревоги, средняя закрывается
	reg, pub := newTestRegistry(t)
	allowEvents(pub)
	ctx := context.Background()
	seedUser(reg, aliceAddr, MinReputation, false, false)

	var ids []uint64
	for i := 0; i < 3; i++ {
		alert := &models.Alert{
			Type:         models.AlertTypeSuspicious,
			Location:     fmt.Sprintf("Block %d", i+1),
			Description:  "Suspicious activity",
			RadiusMeters: 250,
		}
		require.NoError(t, reg.CreateAlert(ctx, aliceAddr, alert))
		ids = append(ids, alert.ID)
	}
	require.NoError(t, reg.ResolveAlert(ctx, aliceAddr, ids[1], models.AlertStatusFalseAlarm))

	// Действие
	active, err := reg.GetActiveAlerts(ctx)

	// Проверки: закрытая тревога исключена, порядок по возрастанию id
	require.NoError(t, err)
	assert.Equal(t, []uint64{ids[0], ids[2]}, active)
}

func TestGetAlert_ReturnsCopy(t *testing.T) {
	// Подготовка
	reg, _ := newTestRegistry(t)
	ctx := context.Background()
	seedUser(reg, aliceAddr, MinReputation, false, false)
	alertID := seedActiveAlert(reg, aliceAddr)

	// Действие: мутируем возвращенную копию
	alert, err := reg.GetAlert(ctx, alertID)
	require.NoError(t, err)
	alert.Status = models.AlertStatusFalseAlarm
	alert.Responders = append(alert.Responders, "0xIntruder")

	// Проверки: состояние реестра не затронуто
	fresh, err := reg.GetAlert(ctx, alertID)
	require.NoError(t, err)
	assert.Equal(t, models.AlertStatusActive, fresh.Status)
	assert.Empty(t, fresh.Responders)
}

func TestGetAlertResponders_NotFound(t *testing.T) {
	reg, _ := newTestRegistry(t)

	_, err := reg.GetAlertResponders(context.Background(), 404)

	assert.ErrorIs(t, err, ErrNotFound)
}
