package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"navdb-service/internal/domain/entity"
	"navdb-service/internal/domain/repository"
	"navdb-service/internal/infrastructure/persistence"
	gormrepo "navdb-service/internal/interface/repository"
	"navdb-service/pkg/logger"
)

// recordingQueue captures enqueued file IDs without processing anything.
type recordingQueue struct {
	enqueued []uint
}

func (q *recordingQueue) Enqueue(ctx context.Context, fileID uint) error {
	q.enqueued = append(q.enqueued, fileID)
	return nil
}

type restEnv struct {
	navRepo  repository.NavigationRepository
	fileRepo repository.ArincFileRepository
	queue    *recordingQueue
	router   chi.Router
	dir      string
}

func newRestEnv(t *testing.T) *restEnv {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "navdb_test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, persistence.Migrate(db))

	env := &restEnv{
		navRepo:  gormrepo.NewGormNavigationRepository(db),
		fileRepo: gormrepo.NewGormArincFileRepository(db),
		queue:    &recordingQueue{},
		dir:      t.TempDir(),
	}
	handler := NewHandler(env.fileRepo, env.navRepo, env.queue, env.dir, logger.NewNop())
	env.router = chi.NewRouter()
	handler.Routes(env.router)
	return env
}

func (e *restEnv) get(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func (e *restEnv) seedCycle(t *testing.T, cycleID string, effective time.Time) {
	t.Helper()
	_, _, err := e.navRepo.GetOrCreateDataCycle(context.Background(), &entity.DataCycle{
		CycleID:       cycleID,
		EffectiveDate: effective,
		ExpiryDate:    effective.AddDate(0, 0, entity.CycleValidityDays),
		Source:        "TEST",
	})
	require.NoError(t, err)
}

func (e *restEnv) seedAirport(t *testing.T, cycleID, airportID string) *entity.Airport {
	t.Helper()
	airport, _, err := e.navRepo.UpsertAirport(context.Background(), &entity.Airport{
		CycleID:   cycleID,
		AirportID: airportID,
	})
	require.NoError(t, err)
	return airport
}

func decodeList(t *testing.T, rec *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestUploadFile_CreatesPendingRecordAndEnqueues(t *testing.T) {
	env := newRestEnv(t)

	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	part, err := form.CreateFormFile("file", "cycle_2401.xml")
	require.NoError(t, err)
	_, err = part.Write([]byte(`<ARINC424 cycle="2401" effective_date="2024-01-25"/>`))
	require.NoError(t, err)
	require.NoError(t, form.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/files", &body)
	req.Header.Set("Content-Type", form.FormDataContentType())
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var file entity.ArincFile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &file))
	assert.Equal(t, entity.StatusPending, file.Status)
	assert.Equal(t, "cycle_2401.xml", file.FileName)
	assert.NotZero(t, file.ID)

	require.Len(t, env.queue.enqueued, 1)
	assert.Equal(t, file.ID, env.queue.enqueued[0])

	// The upload is stored on disk under a generated name.
	stored, err := env.fileRepo.GetByID(context.Background(), file.ID)
	require.NoError(t, err)
	data, err := os.ReadFile(stored.FilePath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "2024-01-25")
}

func TestUploadFile_MissingFileField(t *testing.T) {
	env := newRestEnv(t)

	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	require.NoError(t, form.WriteField("name", "not-a-file"))
	require.NoError(t, form.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/files", &body)
	req.Header.Set("Content-Type", form.FormDataContentType())
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, env.queue.enqueued)
}

func TestListAirports_EmptyStore(t *testing.T) {
	env := newRestEnv(t)
	rec := env.get(t, "/api/v1/airports")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]\n", rec.Body.String())
}

func TestListAirports_ScopedToLatestCycle(t *testing.T) {
	env := newRestEnv(t)
	env.seedCycle(t, "2401", time.Date(2024, 1, 25, 0, 0, 0, 0, time.UTC))
	env.seedCycle(t, "2402", time.Date(2024, 2, 22, 0, 0, 0, 0, time.UTC))
	env.seedAirport(t, "2401", "KJFK")
	env.seedAirport(t, "2402", "KBOS")
	env.seedAirport(t, "2402", "KLAX")

	rec := env.get(t, "/api/v1/airports")
	require.Equal(t, http.StatusOK, rec.Code)

	airports := decodeList(t, rec)
	require.Len(t, airports, 2)
	for _, a := range airports {
		assert.Equal(t, "2402", a["cycle_id"])
	}
}

func TestGetAirport_NotFound(t *testing.T) {
	env := newRestEnv(t)
	rec := env.get(t, "/api/v1/airports/42")
	require.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Not found.", body["detail"])
}

func TestAirportProcedures_EmptyIs404(t *testing.T) {
	env := newRestEnv(t)
	env.seedCycle(t, "2401", time.Date(2024, 1, 25, 0, 0, 0, 0, time.UTC))
	airport := env.seedAirport(t, "2401", "KJFK")

	rec := env.get(t, "/api/v1/airports/"+itoa(airport.ID)+"/procedures")
	require.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "No procedures found for this airport.", body["detail"])
}

func TestListCycles_NewestFirst(t *testing.T) {
	env := newRestEnv(t)
	env.seedCycle(t, "2401", time.Date(2024, 1, 25, 0, 0, 0, 0, time.UTC))
	env.seedCycle(t, "2402", time.Date(2024, 2, 22, 0, 0, 0, 0, time.UTC))

	rec := env.get(t, "/api/v1/cycles")
	require.Equal(t, http.StatusOK, rec.Code)

	cycles := decodeList(t, rec)
	require.Len(t, cycles, 2)
	assert.Equal(t, "2402", cycles[0]["cycle_id"])
	assert.Equal(t, "2401", cycles[1]["cycle_id"])
}

func TestListFiles_EmptyStore(t *testing.T) {
	env := newRestEnv(t)
	rec := env.get(t, "/api/v1/files")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]\n", rec.Body.String())
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
