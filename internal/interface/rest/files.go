package rest

import (
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"navdb-service/internal/domain/entity"
)

const maxUploadBytes = 64 << 20

// UploadFile accepts a multipart ARINC 424 XML upload, stores it, creates a
// PENDING file record and enqueues it for asynchronous import. Processing
// errors are never reported here; clients poll the record's status.
func (h *Handler) UploadFile(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		h.respondDetail(w, http.StatusBadRequest, "Invalid multipart request.")
		return
	}
	upload, header, err := r.FormFile("file")
	if err != nil {
		h.respondDetail(w, http.StatusBadRequest, "Missing 'file' field.")
		return
	}
	defer upload.Close()

	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		h.respondError(w, err)
		return
	}
	storedName := uuid.NewString() + filepath.Ext(header.Filename)
	storedPath := filepath.Join(h.uploadDir, storedName)

	dst, err := os.Create(storedPath)
	if err != nil {
		h.respondError(w, err)
		return
	}
	if _, err := io.Copy(dst, upload); err != nil {
		dst.Close()
		h.respondError(w, err)
		return
	}
	if err := dst.Close(); err != nil {
		h.respondError(w, err)
		return
	}

	file := &entity.ArincFile{
		FileName: header.Filename,
		FilePath: storedPath,
		Status:   entity.StatusPending,
	}
	if err := h.fileRepo.Create(r.Context(), file); err != nil {
		h.respondError(w, err)
		return
	}

	if err := h.queue.Enqueue(r.Context(), file.ID); err != nil {
		h.respondError(w, err)
		return
	}

	h.log.Info("Accepted ARINC file upload", "fileID", file.ID, "fileName", file.FileName)
	h.respondJSON(w, http.StatusCreated, file)
}

// ListFiles returns all uploaded file records, newest first.
func (h *Handler) ListFiles(w http.ResponseWriter, r *http.Request) {
	files, err := h.fileRepo.List(r.Context())
	if err != nil {
		h.respondError(w, err)
		return
	}
	if files == nil {
		files = []entity.ArincFile{}
	}
	h.respondJSON(w, http.StatusOK, files)
}

// GetFile returns one uploaded file record, including its status and any
// processing error payload.
func (h *Handler) GetFile(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.respondDetail(w, http.StatusNotFound, "Not found.")
		return
	}
	file, err := h.fileRepo.GetByID(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, file)
}

// ListCycles returns all data cycles, most recent effective date first.
func (h *Handler) ListCycles(w http.ResponseWriter, r *http.Request) {
	cycles, err := h.navRepo.ListDataCycles(r.Context())
	if err != nil {
		h.respondError(w, err)
		return
	}
	if cycles == nil {
		cycles = []entity.DataCycle{}
	}
	h.respondJSON(w, http.StatusOK, cycles)
}
