package services

import (
	"context"
	"slices"
	"strings"

	"github.com/ledgerfox/backend/internal/models"
	"github.com/ledgerfox/backend/internal/repository"
	"github.com/rs/zerolog"
)

type TagReconciler struct {
	tags repository.TagRepository
	log  zerolog.Logger
}

func NewTagReconciler(tags repository.TagRepository, log zerolog.Logger) *TagReconciler {
	return &TagReconciler{tags: tags, log: log}
}

// SyncTags makes the journal's tag set equal to names. Blank names are
// ignored, missing tags are created for the journal's owner, stale links are
// removed and only missing links are added, so repeated calls with the same
// names change nothing.
func (t *TagReconciler) SyncTags(ctx context.Context, journal *models.TransactionJournal, names []string) error {
	var (
		ids    []int64
		linked []string
	)
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		tag, err := t.tags.FindOrCreate(ctx, journal.UserID, name)
		if err != nil {
			return persistence("find or create tag", err)
		}
		if slices.Contains(ids, tag.ID) {
			continue
		}
		ids = append(ids, tag.ID)
		linked = append(linked, tag.Name)
	}

	removed, err := t.tags.DetachAllExcept(ctx, journal.ID, ids)
	if err != nil {
		return persistence("detach tags", err)
	}

	for _, id := range ids {
		t.log.Debug().Int64("tag_id", id).Int64("journal_id", journal.ID).Msg("[TAGS] Connecting tag to journal")
		if err := t.tags.Connect(ctx, journal.ID, id); err != nil {
			return persistence("connect tag", err)
		}
	}

	slices.Sort(linked)
	if linked == nil {
		linked = []string{}
	}
	journal.Tags = linked

	t.log.Debug().Int64("journal_id", journal.ID).Int("tags", len(ids)).Int64("removed", removed).
		Msg("[TAGS] Journal tags synced")
	return nil
}
