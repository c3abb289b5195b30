package usecase

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"navdb-service/internal/domain/entity"
	"navdb-service/internal/domain/repository"
	gormrepo "navdb-service/internal/interface/repository"
	"navdb-service/pkg/logger"
)

type processorEnv struct {
	*testEnv
	fileRepo  repository.ArincFileRepository
	processor *FileProcessor
	dir       string
}

func newProcessorEnv(t *testing.T) *processorEnv {
	t.Helper()
	env := newTestEnv(t)
	fileRepo := gormrepo.NewGormArincFileRepository(env.db)
	return &processorEnv{
		testEnv:   env,
		fileRepo:  fileRepo,
		processor: NewFileProcessor(fileRepo, env.resolver, env.pipeline, nil, logger.NewNop()),
		dir:       t.TempDir(),
	}
}

// uploadFile writes the document to disk and registers a PENDING record.
func (e *processorEnv) uploadFile(t *testing.T, name, doc string) *entity.ArincFile {
	t.Helper()
	path := filepath.Join(e.dir, name)
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	file := &entity.ArincFile{
		FileName: name,
		FilePath: path,
		Status:   entity.StatusPending,
	}
	require.NoError(t, e.fileRepo.Create(context.Background(), file))
	return file
}

func TestProcess_CompletesAndAttachesCycle(t *testing.T) {
	env := newProcessorEnv(t)
	file := env.uploadFile(t, "cycle_2401.xml", docHeader+`<AIRPORTS>`+airportKJFK+`</AIRPORTS></ARINC424>`)

	require.NoError(t, env.processor.Process(context.Background(), file.ID))

	stored, err := env.fileRepo.GetByID(context.Background(), file.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCompleted, stored.Status)
	assert.Nil(t, stored.ProcessingErrors)
	require.NotNil(t, stored.CycleID)
	assert.Equal(t, "2401", *stored.CycleID)

	airports, err := env.repo.ListAirports(context.Background(), "2401")
	require.NoError(t, err)
	assert.Len(t, airports, 1)
}

func TestProcess_MissingEffectiveDateFails(t *testing.T) {
	env := newProcessorEnv(t)
	file := env.uploadFile(t, "no_date.xml", `<ARINC424 cycle="2401"><AIRPORTS>`+airportKJFK+`</AIRPORTS></ARINC424>`)

	err := env.processor.Process(context.Background(), file.ID)
	require.Error(t, err)
	assert.Equal(t, entity.KindMalformedInput, entity.KindOf(err))

	stored, gerr := env.fileRepo.GetByID(context.Background(), file.ID)
	require.NoError(t, gerr)
	assert.Equal(t, entity.StatusFailed, stored.Status)
	require.NotNil(t, stored.ProcessingErrors)
	assert.Contains(t, *stored.ProcessingErrors, string(entity.KindMalformedInput))
	assert.Contains(t, *stored.ProcessingErrors, "effective_date")
	assert.Nil(t, stored.CycleID)
}

func TestProcess_UnparsableDocumentFails(t *testing.T) {
	env := newProcessorEnv(t)
	file := env.uploadFile(t, "broken.xml", "<ARINC424><unclosed>")

	err := env.processor.Process(context.Background(), file.ID)
	require.Error(t, err)
	assert.Equal(t, entity.KindMalformedInput, entity.KindOf(err))

	stored, gerr := env.fileRepo.GetByID(context.Background(), file.ID)
	require.NoError(t, gerr)
	assert.Equal(t, entity.StatusFailed, stored.Status)
}

func TestProcess_UnknownFileIDErrors(t *testing.T) {
	env := newProcessorEnv(t)
	assert.Error(t, env.processor.Process(context.Background(), 9999))
}

func TestProcess_TerminalRedeliveryIsNoop(t *testing.T) {
	env := newProcessorEnv(t)
	file := env.uploadFile(t, "done.xml", docHeader+`</ARINC424>`)
	require.NoError(t, env.processor.Process(context.Background(), file.ID))

	// Redelivering a finished file must not reprocess or error.
	require.NoError(t, env.processor.Process(context.Background(), file.ID))

	stored, err := env.fileRepo.GetByID(context.Background(), file.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCompleted, stored.Status)
}

func TestProcess_UnresolvedProcedureAirportStillCompletes(t *testing.T) {
	env := newProcessorEnv(t)
	doc := docHeader + `<PROCEDURES><APPROACH>
		<AIRPORT_IDENTIFIER>ZZZZ</AIRPORT_IDENTIFIER>
		<PROCEDURE_IDENTIFIER>I09R</PROCEDURE_IDENTIFIER>
	</APPROACH></PROCEDURES></ARINC424>`
	file := env.uploadFile(t, "orphan_proc.xml", doc)

	require.NoError(t, env.processor.Process(context.Background(), file.ID))

	stored, err := env.fileRepo.GetByID(context.Background(), file.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCompleted, stored.Status)

	procedures, err := env.repo.ListProcedures(context.Background(), "2401")
	require.NoError(t, err)
	assert.Empty(t, procedures)
}
