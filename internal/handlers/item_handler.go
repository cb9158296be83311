package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"itemstore-backend/internal/dto"
	"itemstore-backend/internal/middleware"
	"itemstore-backend/internal/services"
	"itemstore-backend/utils/response"
)

type ItemHandler struct {
	service *services.ItemService
}

func NewItemHandler(service *services.ItemService) *ItemHandler {
	return &ItemHandler{service: service}
}

func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	skip := 0
	if v := r.URL.Query().Get("skip"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			response.Error(w, http.StatusBadRequest, "skip must be a non-negative integer")
			return
		}
		skip = n
	}

	limit := 10
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 100 {
			response.Error(w, http.StatusBadRequest, "limit must be between 1 and 100")
			return
		}
		limit = n
	}

	items, err := h.service.List(r.Context(), skip, limit, r.URL.Query().Get("search"))
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "failed to list items")
		return
	}

	response.JSON(w, http.StatusOK, items)
}

func (h *ItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(w, r)
	if !ok {
		return
	}

	item, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			response.Error(w, http.StatusNotFound, "item not found")
			return
		}
		response.Error(w, http.StatusInternalServerError, "failed to get item")
		return
	}

	response.JSON(w, http.StatusOK, item)
}

func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeItem(w, r)
	if !ok {
		return
	}

	user := middleware.GetUserFromContext(r.Context())
	if user == nil {
		response.Error(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	item, err := h.service.Create(r.Context(), req, user.ID)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "failed to create item")
		return
	}

	response.JSON(w, http.StatusCreated, item)
}

func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(w, r)
	if !ok {
		return
	}
	req, ok := decodeItem(w, r)
	if !ok {
		return
	}

	user := middleware.GetUserFromContext(r.Context())
	if user == nil {
		response.Error(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	item, err := h.service.Update(r.Context(), id, req, user.ID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrItemNotFound):
			response.Error(w, http.StatusNotFound, "item not found")
		case errors.Is(err, services.ErrItemForbidden):
			response.Error(w, http.StatusForbidden, "item belongs to another user")
		default:
			response.Error(w, http.StatusInternalServerError, "failed to update item")
		}
		return
	}

	response.JSON(w, http.StatusOK, item)
}

func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(w, r)
	if !ok {
		return
	}

	user := middleware.GetUserFromContext(r.Context())
	if user == nil {
		response.Error(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	if err := h.service.Delete(r.Context(), id, user.ID); err != nil {
		switch {
		case errors.Is(err, services.ErrItemNotFound):
			response.Error(w, http.StatusNotFound, "item not found")
		case errors.Is(err, services.ErrItemForbidden):
			response.Error(w, http.StatusForbidden, "item belongs to another user")
		default:
			response.Error(w, http.StatusInternalServerError, "failed to delete item")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func itemID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid item id")
		return 0, false
	}
	return id, true
}

func decodeItem(w http.ResponseWriter, r *http.Request) (*dto.ItemRequest, bool) {
	var req dto.ItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return nil, false
	}
	if req.Name == "" {
		response.Error(w, http.StatusBadRequest, "name is required")
		return nil, false
	}
	if req.Price == nil {
		response.Error(w, http.StatusBadRequest, "price is required")
		return nil, false
	}
	return &req, true
}
