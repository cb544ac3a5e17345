package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Deibormi/Neighborhood-Security-Network/internal/models"
)

// PostgresJournal - долговременный журнал событий реестра поверх PostgreSQL.
// Журнал только дописывается, записи никогда не изменяются.
type PostgresJournal struct {
	db *pgxpool.Pool
}

func NewPostgresJournal(db *pgxpool.Pool) *PostgresJournal {
	return &PostgresJournal{db: db}
}

// Append дописывает событие в журнал
func (j *PostgresJournal) Append(ctx context.Context, event models.Event) error {
	payload, err := json.Marshal(event.Payload)
	if err != nil {
		return fmt.Errorf("failed to marshal event payload: %w", err)
	}

	query := `
		INSERT INTO events (id, type, actor, occurred_at, payload)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err = j.db.Exec(ctx, query,
		event.ID,
		string(event.Type),
		event.Actor,
		event.OccurredAt,
		payload,
	)
	if err != nil {
		return fmt.Errorf("failed to append event to journal: %w", err)
	}
	return nil
}

// ListEvents возвращает события журнала с пагинацией, новые первыми
func (j *PostgresJournal) ListEvents(ctx context.Context, page, pageSize int) ([]*models.Event, error) {
	// рассчитываем смещение
	offset := (page - 1) * pageSize

	query := `
		SELECT id, type, actor, occurred_at, payload
		FROM events
		ORDER BY occurred_at DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := j.db.Query(ctx, query, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer rows.Close()

	events := make([]*models.Event, 0)
	for rows.Next() {
		event := &models.Event{}
		var payload []byte
		err := rows.Scan(
			&event.ID,
			&event.Type,
			&event.Actor,
			&event.OccurredAt,
			&payload,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event row: %w", err)
		}
		if len(payload) > 0 {
			if err := json.Unmarshal(payload, &event.Payload); err != nil {
				return nil, fmt.Errorf("failed to unmarshal event payload: %w", err)
			}
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return events, nil
}
