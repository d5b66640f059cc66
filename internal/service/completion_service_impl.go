package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/paceboard/internal/db"
	"github.com/alexanderramin/paceboard/internal/domain"
	"github.com/alexanderramin/paceboard/internal/repository"
)

type completionService struct {
	completions repository.CompletionRepo
	uow         db.UnitOfWork
	observer    UseCaseObserver
}

func NewCompletionService(completions repository.CompletionRepo, uow db.UnitOfWork, observers ...UseCaseObserver) CompletionService {
	return &completionService{
		completions: completions,
		uow:         uow,
		observer:    useCaseObserverOrNoop(observers),
	}
}

func (s *completionService) Record(ctx context.Context, r *domain.CompletionRecord) (err error) {
	startedAt := time.Now().UTC()
	defer func() {
		observe(ctx, s.observer, "record-completion", startedAt, err, map[string]any{
			"student":  r.StudentID,
			"activity": r.ActivityID,
			"complete": r.FullyComplete,
		}, nil)
	}()

	if err = validateRecord(r); err != nil {
		return err
	}
	return s.completions.Upsert(ctx, r)
}

func (s *completionService) Sync(ctx context.Context, records []*domain.CompletionRecord) (written int, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		observe(ctx, s.observer, "sync-completions", startedAt, err, map[string]any{
			"records": len(records),
			"written": written,
		}, nil)
	}()

	for i, r := range records {
		if err = validateRecord(r); err != nil {
			return 0, fmt.Errorf("record %d: %w", i, err)
		}
	}

	syncedAt := time.Now().UTC()
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txCompletions := repository.NewSQLiteCompletionRepo(tx)
		// Copies, so a rolled-back batch leaves the caller's records as given.
		for _, r := range records {
			rec := *r
			if rec.SyncedAt.IsZero() {
				rec.SyncedAt = syncedAt
			}
			if err := txCompletions.Upsert(ctx, &rec); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(records), nil
}

func validateRecord(r *domain.CompletionRecord) error {
	if r.StudentID == "" {
		return fmt.Errorf("completion record needs a student")
	}
	if r.ActivityID == "" {
		return fmt.Errorf("completion record needs an activity")
	}
	return nil
}
