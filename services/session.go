package services

import (
	"context"
	"encoding/json"
	"fmt"

	"restaurant-telegram/db"
	"restaurant-telegram/models"
)

// GetSession loads the session for a chat. A missing row yields a fresh
// session, so callers never need to distinguish "new user" from "returning".
func GetSession(ctx context.Context, chatID int64) (*models.Session, error) {
	var stateJSON []byte
	err := db.Pool.QueryRow(ctx, `
		SELECT state FROM sessions WHERE chat_id = $1`,
		chatID,
	).Scan(&stateJSON)
	if err != nil {
		return models.NewSession(), nil
	}

	s := models.NewSession()
	if len(stateJSON) > 0 {
		if err := json.Unmarshal(stateJSON, s); err != nil {
			return nil, fmt.Errorf("failed to unmarshal session state: %w", err)
		}
	}
	if s.Step == "" {
		s.Step = models.StepInit
	}
	return s, nil
}

func SaveSession(ctx context.Context, chatID int64, s *models.Session) error {
	stateJSON, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal session state: %w", err)
	}

	_, err = db.Pool.Exec(ctx, `
		INSERT INTO sessions (chat_id, state, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (chat_id) DO UPDATE SET
			state = $2,
			updated_at = now()`,
		chatID, stateJSON,
	)
	return err
}

func DeleteSession(ctx context.Context, chatID int64) error {
	_, err := db.Pool.Exec(ctx, `DELETE FROM sessions WHERE chat_id = $1`, chatID)
	return err
}
