package repository

import (
	"context"
	"database/sql"
	"time"

	"event-admin-api/core/logger"
	"event-admin-api/modules/auth/entity"
)

func (r *AuthRepository) SaveOAuthState(ctx context.Context, state string, expiresAt time.Time) error {
	query := `INSERT INTO oauth_states (state, expires_at) VALUES ($1, $2)`

	err := r.DB.ExecContext(ctx, query, state, expiresAt)
	if err != nil {
		logger.Error("AuthRepository:SaveOAuthState", err)
		return err
	}

	return nil
}

// GetOAuthState returns the state row only while it is still valid.
func (r *AuthRepository) GetOAuthState(ctx context.Context, state string) (*entity.OAuthState, error) {
	query := `
		SELECT state, expires_at, created_at
		FROM oauth_states
		WHERE state = $1 AND expires_at > NOW()
	`

	var row entity.OAuthState
	err := r.DB.GetContext(ctx, &row, query, state)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("AuthRepository:GetOAuthState", err)
		return nil, err
	}

	return &row, nil
}

func (r *AuthRepository) DeleteOAuthState(ctx context.Context, state string) error {
	query := `DELETE FROM oauth_states WHERE state = $1`

	err := r.DB.ExecContext(ctx, query, state)
	if err != nil {
		logger.Error("AuthRepository:DeleteOAuthState", err)
		return err
	}

	return nil
}

func (r *AuthRepository) CleanupExpiredOAuthStates(ctx context.Context) error {
	query := `DELETE FROM oauth_states WHERE expires_at <= NOW()`

	err := r.DB.ExecContext(ctx, query)
	if err != nil {
		logger.Error("AuthRepository:CleanupExpiredOAuthStates", err)
		return err
	}

	return nil
}
