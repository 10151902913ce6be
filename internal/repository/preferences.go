package repository

import (
	"context"
	"errors"
)

type preferenceRepository struct {
	q Querier
}

func NewPreferenceRepository(q Querier) PreferenceRepository {
	return &preferenceRepository{q: q}
}

func (r *preferenceRepository) Get(ctx context.Context, userID int64, name string) (string, bool, error) {
	var data string
	err := r.q.QueryRowContext(ctx, `
		SELECT data FROM preferences
		WHERE user_id = $1 AND name = $2`, userID, name).Scan(&data)
	if errors.Is(notFound(err), ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return data, true, nil
}
