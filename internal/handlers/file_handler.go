package handlers

import (
	"errors"
	"io"
	"net/http"

	"itemstore-backend/internal/dto"
	"itemstore-backend/internal/services"
	"itemstore-backend/utils/response"
)

// MaxUploadSize caps a single uploaded file at 10 MiB.
const MaxUploadSize = 10 << 20

type FileHandler struct {
	service *services.FileService
}

func NewFileHandler(service *services.FileService) *FileHandler {
	return &FileHandler{service: service}
}

func (h *FileHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		response.Error(w, http.StatusBadRequest, "failed to parse multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "'file' field is required")
		return
	}
	defer file.Close()

	// Read one byte past the ceiling so an exactly-10MiB file passes
	// and anything larger is rejected.
	data, err := io.ReadAll(io.LimitReader(file, MaxUploadSize+1))
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "failed to read file")
		return
	}
	if len(data) > MaxUploadSize {
		response.Error(w, http.StatusBadRequest, "file size exceeds the 10MB limit")
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	path, err := h.service.Save(header.Filename, data)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "failed to save file")
		return
	}

	response.JSON(w, http.StatusOK, dto.UploadResponse{
		Filename:    header.Filename,
		Size:        int64(len(data)),
		ContentType: contentType,
		Path:        path,
	})
}

func (h *FileHandler) List(w http.ResponseWriter, r *http.Request) {
	files, err := h.service.List()
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "failed to list files")
		return
	}

	response.JSON(w, http.StatusOK, dto.FileListResponse{Files: files})
}

func (h *FileHandler) Download(w http.ResponseWriter, r *http.Request) {
	path, err := h.service.Path(r.PathValue("name"))
	if err != nil {
		if errors.Is(err, services.ErrFileNotFound) {
			response.Error(w, http.StatusNotFound, "file not found")
			return
		}
		response.Error(w, http.StatusInternalServerError, "failed to locate file")
		return
	}

	http.ServeFile(w, r, path)
}
