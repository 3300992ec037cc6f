// Package handlers is the HTTP transport adapter: it decodes requests,
// invokes the matching resource service and encodes the result or error.
package handlers

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"intranet/internal/apperr"
	"intranet/internal/service"
	"intranet/internal/storage"
	"intranet/models"
)

// UserService is the slice of the user resource the transport needs.
type UserService interface {
	Create(ctx context.Context, in service.CreateUserInput) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Get(ctx context.Context, id uint64) (*models.User, error)
	Update(ctx context.Context, id uint64, in service.UpdateUserInput) (*models.User, error)
}

// ProfileService backs both the companies and the associates routes.
type ProfileService interface {
	Create(ctx context.Context, in service.CreateProfileInput) (*models.Profile, error)
	List(ctx context.Context) ([]models.Profile, error)
	Get(ctx context.Context, id uint64) (*models.Profile, error)
	Update(ctx context.Context, id uint64, in service.UpdateProfileInput) (*models.Profile, error)
	Delete(ctx context.Context, id uint64) error
}

type EventService interface {
	Create(ctx context.Context, in service.CreateEventInput) (*models.Event, error)
	List(ctx context.Context) ([]models.Event, error)
	Get(ctx context.Context, id uint64) (*models.Event, error)
	Update(ctx context.Context, id uint64, in service.UpdateEventInput) (*models.Event, error)
	Delete(ctx context.Context, id uint64) error
}

const maxUploadMemory = 32 << 20

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, err error) {
	status := apperr.Status(err)
	if status == http.StatusInternalServerError {
		log.Printf("request failed: %v", err)
	}
	respondJSON(w, status, map[string]string{"error": apperr.Message(err)})
}

// pathID parses the {id} route parameter. A non-numeric id behaves like a
// row that does not exist.
func pathID(r *http.Request) (uint64, bool) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil
}

// formValue distinguishes an absent multipart field from an empty one.
func formValue(form *multipart.Form, key string) *string {
	values, ok := form.Value[key]
	if !ok || len(values) == 0 {
		return nil
	}
	return &values[0]
}

// readUpload buffers one uploaded file.
func readUpload(fh *multipart.FileHeader) (*storage.Upload, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return &storage.Upload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

func readUploads(fhs []*multipart.FileHeader) ([]storage.Upload, error) {
	uploads := make([]storage.Upload, 0, len(fhs))
	for _, fh := range fhs {
		up, err := readUpload(fh)
		if err != nil {
			return nil, err
		}
		uploads = append(uploads, *up)
	}
	return uploads, nil
}
