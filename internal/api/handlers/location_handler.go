package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/megahand-az/megahand-be/internal/httpx"
	"github.com/megahand-az/megahand-be/internal/services"
	"github.com/rs/zerolog/log"
)

// LocationHandler handles HTTP requests for store locations.
type LocationHandler struct {
	service services.LocationServiceProvider
}

// NewLocationHandler creates a new LocationHandler.
func NewLocationHandler(service services.LocationServiceProvider) *LocationHandler {
	return &LocationHandler{service: service}
}

// CreateLocationPayload defines the structure for location creation requests.
type CreateLocationPayload struct {
	Name             string  `json:"name" validate:"required"`
	Address          string  `json:"address" validate:"required"`
	ZipCode          *string `json:"zipCode"`
	Description      string  `json:"description" validate:"required"`
	ImageURL         *string `json:"imageUrl"`
	PhoneNumber      *string `json:"phoneNumber"`
	InstagramAccount *string `json:"instagramAccount"`
	WhatsappNumber   *string `json:"whatsappNumber"`
	Latitude         *string `json:"latitude"`
	Longitude        *string `json:"longitude"`
	Status           string  `json:"status" validate:"omitempty,oneof=active inactive"`
}

// UpdateLocationPayload defines a partial update; absent fields are untouched.
type UpdateLocationPayload struct {
	Name             *string `json:"name" validate:"omitempty,min=1"`
	Address          *string `json:"address" validate:"omitempty,min=1"`
	ZipCode          *string `json:"zipCode"`
	Description      *string `json:"description"`
	ImageURL         *string `json:"imageUrl"`
	PhoneNumber      *string `json:"phoneNumber"`
	InstagramAccount *string `json:"instagramAccount"`
	WhatsappNumber   *string `json:"whatsappNumber"`
	Latitude         *string `json:"latitude"`
	Longitude        *string `json:"longitude"`
	Status           *string `json:"status" validate:"omitempty,oneof=active inactive"`
}

// GetAll handles the request to list all locations.
func (h *LocationHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	locations, err := h.service.GetAllLocations()
	if err != nil {
		log.Error().Err(err).Msg("Failed to retrieve locations")
		httpx.Error(w, http.StatusInternalServerError, "Failed to fetch locations")
		return
	}
	httpx.Respond(w, http.StatusOK, locations)
}

// Get handles the request to get a single location by its ID.
func (h *LocationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid location ID")
		return
	}

	location, err := h.service.GetLocationByID(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			httpx.Error(w, http.StatusNotFound, "Location not found")
			return
		}
		log.Error().Err(err).Int64("location_id", id).Msg("Failed to retrieve location")
		httpx.Error(w, http.StatusInternalServerError, "Failed to fetch location")
		return
	}
	httpx.Respond(w, http.StatusOK, location)
}

// Create handles the request to create a new location.
func (h *LocationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload CreateLocationPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := httpx.Validate(payload); err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	location, err := h.service.CreateLocation(services.LocationInput{
		Name:             payload.Name,
		Address:          payload.Address,
		ZipCode:          payload.ZipCode,
		Description:      payload.Description,
		ImageURL:         payload.ImageURL,
		PhoneNumber:      payload.PhoneNumber,
		InstagramAccount: payload.InstagramAccount,
		WhatsappNumber:   payload.WhatsappNumber,
		Latitude:         payload.Latitude,
		Longitude:        payload.Longitude,
		Status:           payload.Status,
	})
	if err != nil {
		log.Error().Err(err).Msg("Failed to create location")
		httpx.Error(w, http.StatusInternalServerError, "Failed to create location")
		return
	}
	httpx.Respond(w, http.StatusCreated, location)
}

// Update handles a partial update of an existing location.
func (h *LocationHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid location ID")
		return
	}

	var payload UpdateLocationPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := httpx.Validate(payload); err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	location, err := h.service.UpdateLocation(id, services.LocationUpdate{
		Name:             payload.Name,
		Address:          payload.Address,
		ZipCode:          payload.ZipCode,
		Description:      payload.Description,
		ImageURL:         payload.ImageURL,
		PhoneNumber:      payload.PhoneNumber,
		InstagramAccount: payload.InstagramAccount,
		WhatsappNumber:   payload.WhatsappNumber,
		Latitude:         payload.Latitude,
		Longitude:        payload.Longitude,
		Status:           payload.Status,
	})
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			httpx.Error(w, http.StatusNotFound, "Location not found")
			return
		}
		log.Error().Err(err).Int64("location_id", id).Msg("Failed to update location")
		httpx.Error(w, http.StatusInternalServerError, "Failed to update location")
		return
	}
	httpx.Respond(w, http.StatusOK, location)
}

// Delete handles the request to delete a location.
func (h *LocationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid location ID")
		return
	}

	if err := h.service.DeleteLocation(id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			httpx.Error(w, http.StatusNotFound, "Location not found")
			return
		}
		log.Error().Err(err).Int64("location_id", id).Msg("Failed to delete location")
		httpx.Error(w, http.StatusInternalServerError, "Failed to delete location")
		return
	}
	httpx.Respond(w, http.StatusOK, map[string]string{"message": "Location deleted successfully"})
}
