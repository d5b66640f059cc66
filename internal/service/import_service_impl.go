package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/paceboard/internal/contract"
	"github.com/alexanderramin/paceboard/internal/db"
	"github.com/alexanderramin/paceboard/internal/importer"
	"github.com/alexanderramin/paceboard/internal/repository"
)

type importService struct {
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewImportService(uow db.UnitOfWork, observers ...UseCaseObserver) ImportService {
	return &importService{
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *importService) Import(ctx context.Context, filePath string) (result *contract.ImportResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"file": filePath}
	defer func() {
		observe(ctx, s.observer, "import-class", startedAt, err, fields, nil)
	}()

	var schema *importer.ImportSchema
	schema, err = importer.LoadImportSchema(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}
	result, err = s.importSchema(ctx, schema)
	if result != nil {
		fields["class"] = result.ClassID
		fields["activities"] = result.ActivityCount
	}
	return result, err
}

func (s *importService) importSchema(ctx context.Context, schema *importer.ImportSchema) (*contract.ImportResult, error) {
	if errs := importer.ValidateImportSchema(schema); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	bundle, err := importer.Convert(schema)
	if err != nil {
		return nil, fmt.Errorf("converting import schema: %w", err)
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteClassRepo(tx).Upsert(ctx, bundle.Class); err != nil {
			return fmt.Errorf("saving class: %w", err)
		}
		txStudents := repository.NewSQLiteStudentRepo(tx)
		for _, st := range bundle.Students {
			if err := txStudents.Upsert(ctx, st); err != nil {
				return fmt.Errorf("saving student %q: %w", st.Name, err)
			}
		}
		txSchedules := repository.NewSQLiteScheduleRepo(tx)
		for _, sched := range bundle.Schedules {
			if err := txSchedules.Save(ctx, sched); err != nil {
				return fmt.Errorf("saving unit %d schedule: %w", sched.UnitNumber, err)
			}
		}
		txCatalog := repository.NewSQLiteCatalogRepo(tx)
		for _, l := range bundle.Catalog {
			if err := txCatalog.Upsert(ctx, l); err != nil {
				return err
			}
		}
		txAssignments := repository.NewSQLiteAssignmentRepo(tx)
		for _, a := range bundle.Assignments {
			if err := txAssignments.Upsert(ctx, a); err != nil {
				return err
			}
		}
		txCompletions := repository.NewSQLiteCompletionRepo(tx)
		for _, r := range bundle.Completions {
			if err := txCompletions.Upsert(ctx, r); err != nil {
				return fmt.Errorf("saving completion %s/%s: %w", r.StudentID, r.ActivityID, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &contract.ImportResult{
		ClassID:         bundle.Class.ID,
		StudentCount:    len(bundle.Students),
		UnitCount:       len(bundle.Schedules),
		LessonCount:     len(bundle.Catalog),
		ActivityCount:   len(bundle.Assignments),
		CompletionCount: len(bundle.Completions),
	}, nil
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("import validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}
