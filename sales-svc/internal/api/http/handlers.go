package httpapi

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"restaurant-ordering/sales-svc/internal/service"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

type Handler struct {
	Sales service.SalesServiceInterface
}

func NewHandler(svc service.SalesServiceInterface) *Handler {
	return &Handler{Sales: svc}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")
	r.HandleFunc("/api/sales/today", h.getToday).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "healthy",
		"service": "sales-svc",
	})
}

func (h *Handler) getToday(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	data, err := h.Sales.Today(r.Context(), limit)
	w.Header().Set("Content-Type", "application/json")
	if err != nil {
		log.Printf("[sales-svc] failed to read daily sales: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
		return
	}
	json.NewEncoder(w).Encode(data)
}

func NewRouter(handler *Handler) http.Handler {
	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	return cors.Default().Handler(r)
}
