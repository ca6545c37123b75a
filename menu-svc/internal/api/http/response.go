package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"

	"restaurant-ordering/menu-svc/internal/domain"
	"restaurant-ordering/menu-svc/internal/service"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
)

var ErrInvalidForm = errors.New("invalid form")

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrCategoryNotFound),
		errors.Is(err, domain.ErrDishNotFound),
		errors.Is(err, domain.ErrOrderNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidStatus),
		errors.Is(err, domain.ErrUnsupportedMedia),
		errors.Is(err, ErrInvalidForm),
		errors.Is(err, service.ErrInvalidCategory),
		errors.Is(err, service.ErrInvalidDish),
		errors.Is(err, service.ErrInvalidOrder),
		errors.Is(err, service.ErrEmptyCart):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrInvalidTransition):
		status = http.StatusConflict
	default:
		log.Printf("[menu-svc] request failed: %v", err)
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func pathID(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)[name])
	if err != nil || id <= 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid " + name})
		return 0, false
	}
	return id, true
}

// parseCatalogForm parses a multipart or urlencoded form and returns the
// optional "image" file.
func parseCatalogForm(r *http.Request) (*service.Upload, error) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidForm, err)
	}

	file, header, err := r.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: error retrieving the image file", ErrInvalidForm)
	}
	return &service.Upload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Body:        file,
	}, nil
}

func closeUpload(image *service.Upload) {
	if image == nil {
		return
	}
	if closer, ok := image.Body.(io.Closer); ok {
		closer.Close()
	}
}

func dishFromForm(r *http.Request) (domain.Dish, error) {
	dish := domain.Dish{
		Name:        r.FormValue("name"),
		Description: r.FormValue("description"),
	}

	price, err := decimal.NewFromString(r.FormValue("price"))
	if err != nil {
		return dish, fmt.Errorf("%w: price must be a number", service.ErrInvalidDish)
	}
	dish.Price = price

	categoryID, err := strconv.Atoi(r.FormValue("category"))
	if err != nil {
		return dish, fmt.Errorf("%w: category is required", service.ErrInvalidDish)
	}
	dish.CategoryID = categoryID
	return dish, nil
}
