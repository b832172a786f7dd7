package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"movie-storefront/internal/data/entity"
	"movie-storefront/pkg/utils"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// ErrDraftsDisabled is returned when Redis was unreachable at startup and
// the draft store runs disabled.
var ErrDraftsDisabled = fmt.Errorf("booking drafts are disabled")

type DraftRepository interface {
	Save(ctx context.Context, draft *entity.BookingDraft) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.BookingDraft, error)
	Delete(ctx context.Context, id uuid.UUID) error
	TTL() time.Duration
}

type draftRepository struct {
	rdb *redis.Client
	ttl time.Duration
	log *zap.Logger
}

// NewDraftRepository stores booking drafts in Redis under draft:<id> with a
// TTL. rdb boleh nil; semua operasi lalu mengembalikan ErrDraftsDisabled.
func NewDraftRepository(rdb *redis.Client, config utils.RedisConfig, log *zap.Logger) DraftRepository {
	ttl := time.Duration(config.DraftTTLMinutes) * time.Minute
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}

	return &draftRepository{
		rdb: rdb,
		ttl: ttl,
		log: log.With(zap.String("repository", "draft")),
	}
}

func draftKey(id uuid.UUID) string {
	return "draft:" + id.String()
}

func (r *draftRepository) TTL() time.Duration {
	return r.ttl
}

func (r *draftRepository) Save(ctx context.Context, draft *entity.BookingDraft) error {
	if r.rdb == nil {
		return ErrDraftsDisabled
	}

	payload, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("marshal draft %s: %w", draft.ID.String(), err)
	}

	if err := r.rdb.Set(ctx, draftKey(draft.ID), payload, r.ttl).Err(); err != nil {
		r.log.Error("Failed to save draft",
			zap.Error(err),
			zap.String("draft_id", draft.ID.String()),
		)
		return fmt.Errorf("save draft %s: %w", draft.ID.String(), err)
	}

	return nil
}

func (r *draftRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.BookingDraft, error) {
	if r.rdb == nil {
		return nil, ErrDraftsDisabled
	}

	payload, err := r.rdb.Get(ctx, draftKey(id)).Bytes()
	if err == redis.Nil {
		// Expired atau tidak pernah ada
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find draft",
			zap.Error(err),
			zap.String("draft_id", id.String()),
		)
		return nil, fmt.Errorf("find draft %s: %w", id.String(), err)
	}

	var draft entity.BookingDraft
	if err := json.Unmarshal(payload, &draft); err != nil {
		r.log.Error("Failed to decode draft",
			zap.Error(err),
			zap.String("draft_id", id.String()),
		)
		return nil, fmt.Errorf("decode draft %s: %w", id.String(), err)
	}

	return &draft, nil
}

func (r *draftRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if r.rdb == nil {
		return ErrDraftsDisabled
	}

	if err := r.rdb.Del(ctx, draftKey(id)).Err(); err != nil {
		r.log.Error("Failed to delete draft",
			zap.Error(err),
			zap.String("draft_id", id.String()),
		)
		return fmt.Errorf("delete draft %s: %w", id.String(), err)
	}

	return nil
}
