package v1

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/Deibormi/Neighborhood-Security-Network/internal/config"
	"github.com/Deibormi/Neighborhood-Security-Network/internal/models"
	"github.com/Deibormi/Neighborhood-Security-Network/internal/registry"
)

// EventFeed определяет контракт чтения журнала событий
type EventFeed interface {
	ListEvents(ctx context.Context, page, pageSize int) ([]*models.Event, error)
}

type Handler struct {
	registryService registry.Service
	events          EventFeed
	logger          *logrus.Logger
	validate        *validator.Validate
	cfg             *config.Config
}

func NewHandler(registryService registry.Service, events EventFeed, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		registryService: registryService,
		events:          events,
		logger:          logger,
		validate:        validator.New(),
		cfg:             cfg,
	}
}

// respondRegistryError сопоставляет класс ошибки реестра с HTTP-статусом
func (h *Handler) respondRegistryError(c *gin.Context, log *logrus.Entry, err error) {
	switch {
	case errors.Is(err, registry.ErrValidation):
		log.WithError(err).Warn("Registry rejected input")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, registry.ErrAuthorization):
		log.WithError(err).Warn("Registry rejected caller")
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, registry.ErrNotFound):
		log.WithError(err).Warn("Registry record not found")
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, registry.ErrConflict):
		log.WithError(err).Warn("Registry rejected duplicate")
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, registry.ErrInvalidState):
		log.WithError(err).Warn("Registry record in wrong state")
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		log.WithError(err).Error("Registry operation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// requireCaller достает адрес вызывающего или завершает запрос 401
func (h *Handler) requireCaller(c *gin.Context) (string, bool) {
	caller, ok := callerAddress(c)
	if !ok {
		h.logger.Warn("Caller address missing from request")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "X-Caller-Address header required"})
		return "", false
	}
	return caller, true
}

// @Summary Register the calling user
// @Description Register the caller as a community member. Requires API key and caller address.
// @Tags Users
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param user body RegisterUserRequest true "User registration request"
// @Success 201 {object} UserResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Already registered"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /users/register [post]
func (h *Handler) registerUser(c *gin.Context) {
	log := h.logger.WithField("method", "registerUser")
	caller, ok := h.requireCaller(c)
	if !ok {
		return
	}

	var input RegisterUserRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.registryService.RegisterUser(c.Request.Context(), caller, input.ContactInfo)
	if err != nil {
		h.respondRegistryError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToUserResponse(user))
}

// @Summary Get user profile
// @Description Get a registered user's profile by address. Requires API key.
// @Tags Users
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param address path string true "User address"
// @Success 200 {object} UserResponse
// @Failure 400 {object} map[string]string "Invalid user address"
// @Failure 404 {object} map[string]string "User not found"
// @Router /users/{address} [get]
func (h *Handler) getUserProfile(c *gin.Context) {
	raw := c.Param("address")
	if !ethcommon.IsHexAddress(raw) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user address"})
		return
	}
	address := ethcommon.HexToAddress(raw).Hex()
	log := h.logger.WithField("method", "getUserProfile").WithField("address", address)

	user, err := h.registryService.GetUserProfile(c.Request.Context(), address)
	if err != nil {
		h.respondRegistryError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToUserResponse(user))
}

// @Summary Verify a user
// @Description Mark a registered user as verified. Owner only.
// @Tags Users
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param address path string true "User address"
// @Success 200 "OK"
// @Failure 403 {object} map[string]string "Caller is not the owner"
// @Failure 404 {object} map[string]string "User not found"
// @Failure 409 {object} map[string]string "Already verified"
// @Router /users/{address}/verify [post]
func (h *Handler) verifyUser(c *gin.Context) {
	log := h.logger.WithField("method", "verifyUser")
	caller, ok := h.requireCaller(c)
	if !ok {
		return
	}

	raw := c.Param("address")
	if !ethcommon.IsHexAddress(raw) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user address"})
		return
	}
	target := ethcommon.HexToAddress(raw).Hex()

	if err := h.registryService.VerifyUser(c.Request.Context(), caller, target); err != nil {
		h.respondRegistryError(c, log.WithField("target", target), err)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Toggle first responder flag
// @Description Set or clear the first responder flag on a verified user. Owner only.
// @Tags Users
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param address path string true "User address"
// @Param flag body SetFirstResponderRequest true "First responder flag"
// @Success 200 "OK"
// @Failure 403 {object} map[string]string "Caller is not the owner"
// @Failure 422 {object} map[string]string "User is not verified"
// @Router /users/{address}/first-responder [post]
func (h *Handler) setFirstResponder(c *gin.Context) {
	log := h.logger.WithField("method", "setFirstResponder")
	caller, ok := h.requireCaller(c)
	if !ok {
		return
	}

	raw := c.Param("address")
	if !ethcommon.IsHexAddress(raw) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user address"})
		return
	}
	target := ethcommon.HexToAddress(raw).Hex()

	var input SetFirstResponderRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.registryService.SetFirstResponder(c.Request.Context(), caller, target, *input.Enabled); err != nil {
		h.respondRegistryError(c, log.WithField("target", target), err)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Add emergency service
// @Description Designate an address as an authorized emergency service. Owner only, idempotent.
// @Tags Users
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param service body AddEmergencyServiceRequest true "Emergency service address"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid address"
// @Failure 403 {object} map[string]string "Caller is not the owner"
// @Router /emergency-services [post]
func (h *Handler) addEmergencyService(c *gin.Context) {
	log := h.logger.WithField("method", "addEmergencyService")
	caller, ok := h.requireCaller(c)
	if !ok {
		return
	}

	var input AddEmergencyServiceRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !ethcommon.IsHexAddress(input.Address) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid service address"})
		return
	}
	identity := ethcommon.HexToAddress(input.Address).Hex()

	if err := h.registryService.AddEmergencyService(c.Request.Context(), caller, identity); err != nil {
		h.respondRegistryError(c, log.WithField("identity", identity), err)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Create a new alert
// @Description Report a new location-tagged alert. Requires registration and sufficient reputation.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param alert body CreateAlertRequest true "Alert creation request"
// @Success 201 {object} AlertResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 403 {object} map[string]string "Caller not registered or reputation too low"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alerts [post]
func (h *Handler) createAlert(c *gin.Context) {
	log := h.logger.WithField("method", "createAlert")
	caller, ok := h.requireCaller(c)
	if !ok {
		return
	}

	var input CreateAlertRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := DTOToAlertModel(input)
	if err := h.registryService.CreateAlert(c.Request.Context(), caller, model); err != nil {
		h.respondRegistryError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToAlertResponse(model))
}

// @Summary Get alert by ID
// @Description Get a single alert by its sequential ID. Requires API key.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Alert ID"
// @Success 200 {object} AlertResponse
// @Failure 400 {object} map[string]string "Invalid alert ID"
// @Failure 404 {object} map[string]string "Alert not found"
// @Router /alerts/{id} [get]
func (h *Handler) getAlert(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid alert ID"})
		return
	}
	log := h.logger.WithField("method", "getAlert").WithField("alert_id", id)

	alert, err := h.registryService.GetAlert(c.Request.Context(), id)
	if err != nil {
		h.respondRegistryError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToAlertResponse(alert))
}

// @Summary Get alert responders
// @Description Get the responders of an alert in insertion order. Requires API key.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Alert ID"
// @Success 200 {object} RespondersResponse
// @Failure 404 {object} map[string]string "Alert not found"
// @Router /alerts/{id}/responders [get]
func (h *Handler) getAlertResponders(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid alert ID"})
		return
	}
	log := h.logger.WithField("method", "getAlertResponders").WithField("alert_id", id)

	responders, err := h.registryService.GetAlertResponders(c.Request.Context(), id)
	if err != nil {
		h.respondRegistryError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, RespondersResponse{AlertID: id, Responders: responders})
}

// @Summary List active alerts
// @Description Get the IDs of all currently active alerts in ascending order. Requires API key.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} ActiveAlertsResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alerts/active [get]
func (h *Handler) getActiveAlerts(c *gin.Context) {
	log := h.logger.WithField("method", "getActiveAlerts")

	ids, err := h.registryService.GetActiveAlerts(c.Request.Context())
	if err != nil {
		h.respondRegistryError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ActiveAlertsResponse{ActiveAlerts: ids})
}

// @Summary Respond to an alert
// @Description Volunteer as a responder to an active alert. Requires registration.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Alert ID"
// @Success 200 {object} AlertResponse
// @Failure 404 {object} map[string]string "Alert not found"
// @Failure 409 {object} map[string]string "Already responded"
// @Failure 422 {object} map[string]string "Alert is not active"
// @Router /alerts/{id}/respond [post]
func (h *Handler) respondToAlert(c *gin.Context) {
	log := h.logger.WithField("method", "respondToAlert")
	caller, ok := h.requireCaller(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid alert ID"})
		return
	}

	alert, err := h.registryService.RespondToAlert(c.Request.Context(), caller, id)
	if err != nil {
		h.respondRegistryError(c, log.WithField("alert_id", id), err)
		return
	}
	c.JSON(http.StatusOK, ModelToAlertResponse(alert))
}

// @Summary Resolve an alert
// @Description Move an active alert to RESOLVED or FALSE_ALARM. Reporter, first responders, emergency services and the owner may resolve.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Alert ID"
// @Param resolution body ResolveAlertRequest true "Resolution status"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid resolution status"
// @Failure 403 {object} map[string]string "Caller may not resolve this alert"
// @Failure 422 {object} map[string]string "Alert already resolved"
// @Router /alerts/{id}/resolve [post]
func (h *Handler) resolveAlert(c *gin.Context) {
	log := h.logger.WithField("method", "resolveAlert")
	caller, ok := h.requireCaller(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid alert ID"})
		return
	}

	var input ResolveAlertRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.registryService.ResolveAlert(c.Request.Context(), caller, id, models.AlertStatus(input.Status)); err != nil {
		h.respondRegistryError(c, log.WithField("alert_id", id), err)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Create a neighborhood
// @Description Create a neighborhood watch area. Verified users only; the creator becomes moderator and first resident.
// @Tags Neighborhoods
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param neighborhood body CreateNeighborhoodRequest true "Neighborhood creation request"
// @Success 201 {object} NeighborhoodResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 403 {object} map[string]string "Caller is not verified"
// @Router /neighborhoods [post]
func (h *Handler) createNeighborhood(c *gin.Context) {
	log := h.logger.WithField("method", "createNeighborhood")
	caller, ok := h.requireCaller(c)
	if !ok {
		return
	}

	var input CreateNeighborhoodRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := DTOToNeighborhoodModel(input)
	if err := h.registryService.CreateNeighborhood(c.Request.Context(), caller, model); err != nil {
		h.respondRegistryError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToNeighborhoodResponse(model))
}

// @Summary Get neighborhood by ID
// @Description Get a single neighborhood by its sequential ID. Requires API key.
// @Tags Neighborhoods
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Neighborhood ID"
// @Success 200 {object} NeighborhoodResponse
// @Failure 404 {object} map[string]string "Neighborhood not found"
// @Router /neighborhoods/{id} [get]
func (h *Handler) getNeighborhood(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid neighborhood ID"})
		return
	}
	log := h.logger.WithField("method", "getNeighborhood").WithField("neighborhood_id", id)

	n, err := h.registryService.GetNeighborhood(c.Request.Context(), id)
	if err != nil {
		h.respondRegistryError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToNeighborhoodResponse(n))
}

// @Summary Join a neighborhood
// @Description Join an active neighborhood as a resident. Requires registration.
// @Tags Neighborhoods
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Neighborhood ID"
// @Success 200 "OK"
// @Failure 404 {object} map[string]string "Neighborhood not found"
// @Failure 422 {object} map[string]string "Neighborhood is not active"
// @Router /neighborhoods/{id}/join [post]
func (h *Handler) joinNeighborhood(c *gin.Context) {
	log := h.logger.WithField("method", "joinNeighborhood")
	caller, ok := h.requireCaller(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid neighborhood ID"})
		return
	}

	if err := h.registryService.JoinNeighborhood(c.Request.Context(), caller, id); err != nil {
		h.respondRegistryError(c, log.WithField("neighborhood_id", id), err)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Get registry statistics
// @Description Get aggregate counters of the registry. Requires API key.
// @Tags Admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} StatsResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /stats [get]
func (h *Handler) getStats(c *gin.Context) {
	log := h.logger.WithField("method", "getStats")

	stats, err := h.registryService.GetStats(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to get stats from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, StatsResponse{
		TotalAlerts:        stats.TotalAlerts,
		ActiveAlerts:       stats.ActiveAlerts,
		TotalNeighborhoods: stats.TotalNeighborhoods,
		TotalUsers:         stats.TotalUsers,
	})
}

// @Summary List journal events
// @Description Get a paginated feed of registry events, newest first. Requires API key.
// @Tags Events
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(20)
// @Success 200 {array} EventResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /events [get]
func (h *Handler) listEvents(c *gin.Context) {
	log := h.logger.WithField("method", "listEvents")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	events, err := h.events.ListEvents(c.Request.Context(), page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list events from journal")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelsToEventResponses(events))
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
