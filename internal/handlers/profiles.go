package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"intranet/internal/apperr"
	"intranet/internal/service"
)

// ProfileHandler serves one of the two profile-shaped resources; the
// singular label only feeds response messages.
type ProfileHandler struct {
	profiles ProfileService
	singular string
}

func NewProfileHandler(profiles ProfileService, singular string) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, singular: singular}
}

func (h *ProfileHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
	return r
}

func (h *ProfileHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		respondError(w, apperr.E(apperr.Validation, "Invalid multipart form"))
		return
	}
	form := r.MultipartForm

	in := service.CreateProfileInput{}
	if v := formValue(form, "name"); v != nil {
		in.Name = *v
	}
	if v := formValue(form, "description"); v != nil {
		in.Description = *v
	}
	if fhs := form.File["image_path"]; len(fhs) > 0 {
		up, err := readUpload(fhs[0])
		if err != nil {
			respondError(w, apperr.Wrap(apperr.Internal, "read upload", err))
			return
		}
		in.Image = up
	}

	row, err := h.profiles.Create(r.Context(), in)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, row)
}

func (h *ProfileHandler) List(w http.ResponseWriter, r *http.Request) {
	rows, err := h.profiles.List(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, rows)
}

func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, apperr.E(apperr.NotFound, h.singular+" not found"))
		return
	}

	row, err := h.profiles.Get(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, row)
}

func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, apperr.E(apperr.NotFound, h.singular+" not found"))
		return
	}

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		respondError(w, apperr.E(apperr.Validation, "Invalid multipart form"))
		return
	}
	form := r.MultipartForm

	in := service.UpdateProfileInput{
		Name:        formValue(form, "name"),
		Description: formValue(form, "description"),
	}
	if fhs := form.File["newImage_path"]; len(fhs) > 0 {
		up, err := readUpload(fhs[0])
		if err != nil {
			respondError(w, apperr.Wrap(apperr.Internal, "read upload", err))
			return
		}
		in.Image = up
	}

	row, err := h.profiles.Update(r.Context(), id, in)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, row)
}

func (h *ProfileHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, apperr.E(apperr.NotFound, h.singular+" not found"))
		return
	}

	if err := h.profiles.Delete(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": h.singular + " deleted successfully"})
}
