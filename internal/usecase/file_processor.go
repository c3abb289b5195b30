package usecase

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"navdb-service/internal/domain/entity"
	"navdb-service/internal/domain/repository"
	"navdb-service/pkg/logger"
	"navdb-service/pkg/metrics"
	"navdb-service/pkg/xmlutil"
)

// FileProcessor drives one uploaded file through its status machine:
// PENDING -> PROCESSING -> COMPLETED or FAILED. It is the single place a
// pipeline error becomes a persisted failure payload.
type FileProcessor struct {
	fileRepo repository.ArincFileRepository
	resolver *CycleResolver
	pipeline *ImportPipeline
	metrics  *metrics.Metrics
	log      logger.Logger
}

// NewFileProcessor creates a new file processor
func NewFileProcessor(
	fileRepo repository.ArincFileRepository,
	resolver *CycleResolver,
	pipeline *ImportPipeline,
	m *metrics.Metrics,
	log logger.Logger,
) *FileProcessor {
	return &FileProcessor{
		fileRepo: fileRepo,
		resolver: resolver,
		pipeline: pipeline,
		metrics:  m,
		log:      log,
	}
}

// Process imports one uploaded file by ID. The file record must exist.
// Redelivery of a file already in a terminal state is a no-op, so
// at-least-once queue delivery is safe.
func (p *FileProcessor) Process(ctx context.Context, fileID uint) error {
	start := time.Now()

	file, err := p.fileRepo.GetByID(ctx, fileID)
	if err != nil {
		p.log.Error("File record not found", "fileID", fileID, "error", err)
		return err
	}

	if entity.IsTerminal(file.Status) {
		p.log.Warn("Ignoring redelivery of finished file", "fileID", fileID, "status", file.Status)
		return nil
	}

	if err := file.TransitionTo(entity.StatusProcessing); err != nil {
		return err
	}
	if err := p.fileRepo.Update(ctx, file); err != nil {
		return err
	}
	p.log.Info("Processing ARINC file", "fileID", fileID, "fileName", file.FileName)

	if err := p.runImport(ctx, file); err != nil {
		return p.fail(ctx, file, err)
	}

	if err := file.TransitionTo(entity.StatusCompleted); err != nil {
		return err
	}
	if err := p.fileRepo.Update(ctx, file); err != nil {
		return err
	}

	if p.metrics != nil {
		p.metrics.FilesProcessed.WithLabelValues(string(entity.StatusCompleted)).Inc()
		p.metrics.ImportDuration.Observe(time.Since(start).Seconds())
	}
	p.log.Info("Successfully processed file", "fileID", fileID, "fileName", file.FileName)
	return nil
}

func (p *FileProcessor) runImport(ctx context.Context, file *entity.ArincFile) error {
	data, err := os.ReadFile(file.FilePath)
	if err != nil {
		return entity.NewImportError(entity.KindMalformedInput, err, "reading file '%s'", file.FileName)
	}

	root, err := xmlutil.Parse(data)
	if err != nil {
		return entity.NewImportError(entity.KindMalformedInput, err, "parsing XML document")
	}

	cycle, err := p.resolver.Resolve(ctx, root)
	if err != nil {
		return err
	}

	file.CycleID = &cycle.CycleID
	if err := p.fileRepo.Update(ctx, file); err != nil {
		return entity.NewImportError(entity.KindPersistenceFailure, err, "attaching cycle '%s'", cycle.CycleID)
	}

	return p.pipeline.Run(ctx, cycle, root)
}

// fail records the FAILED status with a structured error payload and returns
// the cause so the queue observes the failure.
func (p *FileProcessor) fail(ctx context.Context, file *entity.ArincFile, cause error) error {
	kind := entity.KindOf(cause)
	payload, merr := json.Marshal(map[string]string{
		"kind":  string(kind),
		"error": cause.Error(),
	})
	if merr == nil {
		s := string(payload)
		file.ProcessingErrors = &s
	}

	if terr := file.TransitionTo(entity.StatusFailed); terr != nil {
		p.log.Error("Cannot mark file failed", "fileID", file.ID, "error", terr)
	} else if uerr := p.fileRepo.Update(ctx, file); uerr != nil {
		p.log.Error("Failed to persist failure status", "fileID", file.ID, "error", uerr)
	}

	if p.metrics != nil {
		p.metrics.FilesProcessed.WithLabelValues(string(entity.StatusFailed)).Inc()
		p.metrics.ImportErrors.WithLabelValues(string(kind)).Inc()
	}
	p.log.Error("Error processing file", "fileID", file.ID, "kind", kind, "error", cause)
	return cause
}
