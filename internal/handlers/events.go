package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"intranet/internal/apperr"
	"intranet/internal/service"
)

type EventHandler struct {
	events EventService
}

func NewEventHandler(events EventService) *EventHandler {
	return &EventHandler{events: events}
}

func (h *EventHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
	return r
}

func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		respondError(w, apperr.E(apperr.Validation, "Invalid multipart form"))
		return
	}
	form := r.MultipartForm

	in := service.CreateEventInput{}
	if v := formValue(form, "name"); v != nil {
		in.Name = *v
	}
	if v := formValue(form, "description"); v != nil {
		in.Description = *v
	}
	uploads, err := readUploads(form.File["event_images"])
	if err != nil {
		respondError(w, apperr.Wrap(apperr.Internal, "read uploads", err))
		return
	}
	in.Images = uploads

	event, err := h.events.Create(r.Context(), in)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, event)
}

func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	events, err := h.events.List(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, events)
}

func (h *EventHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, apperr.E(apperr.NotFound, "Event not found"))
		return
	}

	event, err := h.events.Get(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, event)
}

func (h *EventHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, apperr.E(apperr.NotFound, "Event not found"))
		return
	}

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		respondError(w, apperr.E(apperr.Validation, "Invalid multipart form"))
		return
	}
	form := r.MultipartForm

	in := service.UpdateEventInput{
		Name:        formValue(form, "name"),
		Description: formValue(form, "description"),
	}
	uploads, err := readUploads(form.File["newEvent_Images"])
	if err != nil {
		respondError(w, apperr.Wrap(apperr.Internal, "read uploads", err))
		return
	}
	in.Images = uploads

	event, err := h.events.Update(r.Context(), id, in)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, event)
}

func (h *EventHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, apperr.E(apperr.NotFound, "Event not found"))
		return
	}

	if err := h.events.Delete(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Event deleted successfully"})
}
