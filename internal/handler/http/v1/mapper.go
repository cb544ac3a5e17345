package v1

import "github.com/Deibormi/Neighborhood-Security-Network/internal/models"

// DTOToAlertModel преобразует DTO создания тревоги в доменную модель.
// Репортера, id и статус присваивает сервис.
func DTOToAlertModel(dto CreateAlertRequest) *models.Alert {
	return &models.Alert{
		Type:         models.AlertType(dto.Type),
		Location:     dto.Location,
		Description:  dto.Description,
		Latitude:     dto.Latitude,
		Longitude:    dto.Longitude,
		RadiusMeters: dto.RadiusMeters,
	}
}

// DTOToNeighborhoodModel преобразует DTO создания района в доменную модель
func DTOToNeighborhoodModel(dto CreateNeighborhoodRequest) *models.Neighborhood {
	return &models.Neighborhood{
		Name:         dto.Name,
		CenterLat:    dto.CenterLat,
		CenterLng:    dto.CenterLng,
		RadiusMeters: dto.RadiusMeters,
	}
}

// ModelToAlertResponse преобразует доменную модель тревоги в DTO для ответа
func ModelToAlertResponse(model *models.Alert) *AlertResponse {
	responders := model.Responders
	if responders == nil {
		responders = []string{}
	}
	return &AlertResponse{
		ID:           model.ID,
		Reporter:     model.Reporter,
		Type:         string(model.Type),
		Status:       string(model.Status),
		Location:     model.Location,
		Description:  model.Description,
		Latitude:     model.Latitude,
		Longitude:    model.Longitude,
		RadiusMeters: model.RadiusMeters,
		Responders:   responders,
		Verified:     model.Verified,
		CreatedAt:    model.CreatedAt,
	}
}

// ModelToUserResponse преобразует доменную модель пользователя в DTO для ответа
func ModelToUserResponse(model *models.User) *UserResponse {
	return &UserResponse{
		Address:          model.Address,
		IsRegistered:     model.IsRegistered,
		IsVerified:       model.IsVerified,
		IsFirstResponder: model.IsFirstResponder,
		ReputationScore:  model.ReputationScore,
		AlertsReported:   model.AlertsReported,
		AlertsResponded:  model.AlertsResponded,
		ContactInfo:      model.ContactInfo,
		RegisteredAt:     model.RegisteredAt,
	}
}

// ModelToNeighborhoodResponse преобразует доменную модель района в DTO для ответа
func ModelToNeighborhoodResponse(model *models.Neighborhood) *NeighborhoodResponse {
	return &NeighborhoodResponse{
		ID:           model.ID,
		Name:         model.Name,
		CenterLat:    model.CenterLat,
		CenterLng:    model.CenterLng,
		RadiusMeters: model.RadiusMeters,
		Residents:    model.Residents,
		Moderator:    model.Moderator,
		IsActive:     model.IsActive,
		CreatedAt:    model.CreatedAt,
	}
}

// ModelsToEventResponses преобразует слайс событий в слайс DTO
func ModelsToEventResponses(events []*models.Event) []*EventResponse {
	responses := make([]*EventResponse, len(events))
	for i, event := range events {
		responses[i] = &EventResponse{
			ID:         event.ID,
			Type:       string(event.Type),
			Actor:      event.Actor,
			OccurredAt: event.OccurredAt,
			Payload:    event.Payload,
		}
	}
	return responses
}
