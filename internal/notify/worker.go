package notify

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/Deibormi/Neighborhood-Security-Network/internal/config"
	"github.com/Deibormi/Neighborhood-Security-Network/internal/models"
)

// EventJournal - приемник событий для долговременного журнала
type EventJournal interface {
	Append(ctx context.Context, event models.Event) error
}

// DeliveryWorker разбирает очередь событий: пишет каждое событие в журнал
// и доставляет его на настроенный вебхук
type DeliveryWorker struct {
	redisClient *redis.Client
	journal     EventJournal
	logger      *logrus.Logger
	cfg         *config.Config
	httpClient  *http.Client
}

// NewDeliveryWorker создает новый DeliveryWorker
func NewDeliveryWorker(redisClient *redis.Client, journal EventJournal, logger *logrus.Logger, cfg *config.Config) *DeliveryWorker {
	return &DeliveryWorker{
		redisClient: redisClient,
		journal:     journal,
		logger:      logger,
		cfg:         cfg,
		httpClient: &http.Client{
			Timeout: cfg.WebhookTimeout,
		},
	}
}

// Start запускает горутину обработки очереди событий
func (w *DeliveryWorker) Start(ctx context.Context) {
	w.logger.Info("Starting event delivery worker...")
	go func() {
		for {
			select {
			case <-ctx.Done():
				w.logger.Info("Stopping event delivery worker.")
				return
			default:
				// BRPOP с нулевым таймаутом - бесконечное ожидание
				result, err := w.redisClient.BRPop(ctx, 0, eventQueueKey).Result()
				if err != nil {
					if errors.Is(err, context.Canceled) {
						continue
					}
					w.logger.WithError(err).Error("Failed to pop registry event from Redis")
					time.Sleep(w.cfg.WebhookTimeout)
					continue
				}

				// result[0] - ключ, result[1] - значение
				payload := result[1]
				var event models.Event
				if err := json.Unmarshal([]byte(payload), &event); err != nil {
					w.logger.WithError(err).Error("Failed to unmarshal registry event from Redis")
					continue
				}

				w.processEvent(ctx, event, payload)
			}
		}
	}()
}

func (w *DeliveryWorker) processEvent(ctx context.Context, event models.Event, rawPayload string) {
	log := w.logger.WithField("event_id", event.ID).WithField("event_type", event.Type)
	log.Debug("Processing registry event...")

	if err := w.journal.Append(ctx, event); err != nil {
		log.WithError(err).Error("Failed to append event to journal")
	}

	if w.cfg.WebhookURL == "" {
		log.Debug("Webhook URL is not configured. Skipping webhook delivery.")
		return
	}

	maxRetries := w.cfg.WebhookMaxRetries
	baseDelay := w.cfg.WebhookBaseDelay

	for i := 0; i < maxRetries; i++ {
		req, err := http.NewRequestWithContext(ctx, "POST", w.cfg.WebhookURL, bytes.NewBufferString(rawPayload))
		if err != nil {
			log.WithError(err).Errorf("Failed to create webhook request. Retries left: %d", maxRetries-1-i)
			continue
		}

		req.Header.Set("Content-Type", "application/json")

		// HMAC подпись, если WEBHOOK_SECRET задан
		if w.cfg.WebhookSecret != "" {
			signature := generateHMACSHA256(rawPayload, w.cfg.WebhookSecret)
			req.Header.Set("X-Webhook-Signature", signature)
		}

		resp, err := w.httpClient.Do(req)
		if err != nil {
			log.WithError(err).Warnf("Failed to send webhook. Retrying in %v. Retries left: %d", baseDelay, maxRetries-1-i)
			time.Sleep(baseDelay)
			baseDelay *= 2
			continue
		}
		resp.Body.Close()

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			log.Info("Webhook delivered successfully.")
			return
		}

		log.Warnf("Webhook delivery failed with status code %d. Retrying in %v. Retries left: %d", resp.StatusCode, baseDelay, maxRetries-1-i)
		time.Sleep(baseDelay)
		baseDelay *= 2
	}

	log.Errorf("Failed to deliver webhook after %d retries.", maxRetries)
}

// generateHMACSHA256 генерирует HMAC-SHA256 подпись для данных
func generateHMACSHA256(data, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}
