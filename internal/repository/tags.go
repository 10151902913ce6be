package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ledgerfox/backend/internal/models"
	"github.com/lib/pq"
)

type tagRepository struct {
	q Querier
}

func NewTagRepository(q Querier) TagRepository {
	return &tagRepository{q: q}
}

func (r *tagRepository) FindOrCreate(ctx context.Context, userID int64, name string) (*models.Tag, error) {
	var tag models.Tag
	err := r.q.QueryRowContext(ctx, `
		INSERT INTO tags (user_id, tag, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id, tag) DO UPDATE SET tag = EXCLUDED.tag
		RETURNING id, user_id, tag`,
		userID, name).Scan(&tag.ID, &tag.UserID, &tag.Name)
	if err != nil {
		return nil, fmt.Errorf("find or create tag %q: %w", name, err)
	}
	return &tag, nil
}

func (r *tagRepository) DetachAllExcept(ctx context.Context, journalID int64, keep []int64) (int64, error) {
	var (
		res sql.Result
		err error
	)
	if len(keep) == 0 {
		res, err = r.q.ExecContext(ctx, `
			DELETE FROM tag_transaction_journal
			WHERE transaction_journal_id = $1`, journalID)
	} else {
		res, err = r.q.ExecContext(ctx, `
			DELETE FROM tag_transaction_journal
			WHERE transaction_journal_id = $1 AND NOT (tag_id = ANY($2))`, journalID, pq.Array(keep))
	}
	if err != nil {
		return 0, fmt.Errorf("detach tags from journal %d: %w", journalID, err)
	}
	return res.RowsAffected()
}

func (r *tagRepository) Connect(ctx context.Context, journalID, tagID int64) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO tag_transaction_journal (tag_id, transaction_journal_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING`, tagID, journalID)
	if err != nil {
		return fmt.Errorf("connect tag %d to journal %d: %w", tagID, journalID, err)
	}
	return nil
}
