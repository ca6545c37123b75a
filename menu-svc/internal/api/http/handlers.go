package httpapi

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"restaurant-ordering/menu-svc/internal/domain"
	"restaurant-ordering/menu-svc/internal/service"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
)

const maxUploadSize = 10 << 20

type Handler struct {
	Categories service.CategoryServiceInterface
	Dishes     service.DishServiceInterface
	Orders     service.OrderServiceInterface
	Statistics service.StatisticsServiceInterface
	Carts      service.CartServiceInterface
}

func NewHandler(
	categorySvc service.CategoryServiceInterface,
	dishSvc service.DishServiceInterface,
	orderSvc service.OrderServiceInterface,
	statsSvc service.StatisticsServiceInterface,
	cartSvc service.CartServiceInterface,
) *Handler {
	return &Handler{
		Categories: categorySvc,
		Dishes:     dishSvc,
		Orders:     orderSvc,
		Statistics: statsSvc,
		Carts:      cartSvc,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/categories", h.getCategories).Methods("GET")
	r.HandleFunc("/api/categories", h.createCategory).Methods("POST")
	r.HandleFunc("/api/categories/{id}", h.getCategory).Methods("GET")
	r.HandleFunc("/api/categories/{id}", h.updateCategory).Methods("PUT")
	r.HandleFunc("/api/categories/{id}", h.deleteCategory).Methods("DELETE")

	r.HandleFunc("/api/dishes", h.getDishes).Methods("GET")
	r.HandleFunc("/api/dishes", h.createDish).Methods("POST")
	r.HandleFunc("/api/dishes/{id}", h.getDish).Methods("GET")
	r.HandleFunc("/api/dishes/{id}", h.updateDish).Methods("PUT")
	r.HandleFunc("/api/dishes/{id}", h.deleteDish).Methods("DELETE")

	r.HandleFunc("/api/orders", h.getOrders).Methods("GET")
	r.HandleFunc("/api/orders", h.createOrder).Methods("POST")
	r.HandleFunc("/api/orders/{id}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/orders/{id}/status", h.updateOrderStatus).Methods("PUT")
	r.HandleFunc("/api/orders/{id}/qrcode", h.getOrderQRCode).Methods("GET")

	r.HandleFunc("/api/statistics", h.getStatistics).Methods("GET")

	r.HandleFunc("/api/carts/{cartId}", h.getCart).Methods("GET")
	r.HandleFunc("/api/carts/{cartId}/items", h.addCartItem).Methods("POST")
	r.HandleFunc("/api/carts/{cartId}/items/{dishId}", h.updateCartItem).Methods("PUT")
	r.HandleFunc("/api/carts/{cartId}/items/{dishId}", h.removeCartItem).Methods("DELETE")
	r.HandleFunc("/api/carts/{cartId}/favorites/{dishId}", h.toggleFavorite).Methods("POST")
	r.HandleFunc("/api/carts/{cartId}/checkout", h.checkout).Methods("POST")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "menu-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) getCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Categories.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

func (h *Handler) getCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	category, err := h.Categories.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, category)
}

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	image, err := parseCatalogForm(r)
	if err != nil {
		writeError(w, err)
		return
	}
	defer closeUpload(image)
	category := domain.Category{Name: r.FormValue("name")}
	if err := h.Categories.Create(r.Context(), &category, image); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, category)
}

func (h *Handler) updateCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	image, err := parseCatalogForm(r)
	if err != nil {
		writeError(w, err)
		return
	}
	defer closeUpload(image)
	category := domain.Category{ID: id, Name: r.FormValue("name")}
	if err := h.Categories.Update(r.Context(), &category, image); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, category)
}

func (h *Handler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.Categories.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Category deleted"})
}

func (h *Handler) getDishes(w http.ResponseWriter, r *http.Request) {
	categoryID := 0
	if raw := r.URL.Query().Get("category"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid category id"})
			return
		}
		categoryID = id
	}
	dishes, err := h.Dishes.List(r.Context(), categoryID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dishes)
}

func (h *Handler) getDish(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	dish, err := h.Dishes.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dish)
}

func (h *Handler) createDish(w http.ResponseWriter, r *http.Request) {
	h.saveDish(w, r, 0)
}

func (h *Handler) updateDish(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	h.saveDish(w, r, id)
}

func (h *Handler) saveDish(w http.ResponseWriter, r *http.Request, id int) {
	image, err := parseCatalogForm(r)
	if err != nil {
		writeError(w, err)
		return
	}
	defer closeUpload(image)

	dish, err := dishFromForm(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if id == 0 {
		err = h.Dishes.Create(r.Context(), &dish, image)
	} else {
		dish.ID = id
		err = h.Dishes.Update(r.Context(), &dish, image)
	}
	if err != nil {
		writeError(w, err)
		return
	}

	status := http.StatusOK
	if id == 0 {
		status = http.StatusCreated
	}
	writeJSON(w, status, dish)
}

func (h *Handler) deleteDish(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.Dishes.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Dish deleted"})
}

func (h *Handler) getOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Orders.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	order, err := h.Orders.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	order.QRCode = h.Orders.QRLink(order.ID)
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var order domain.Order
	if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	if err := h.Orders.Create(r.Context(), &order); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	order, err := h.Orders.SetStatus(r.Context(), id, body.Status)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	qrCode, err := h.Orders.GetQRCode(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	if len(qrCode) == 0 {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "QR code not found"})
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(qrCode)
}

func (h *Handler) getStatistics(w http.ResponseWriter, r *http.Request) {
	report, err := h.Statistics.Report(r.Context(), r.URL.Query().Get("period"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

type cartView struct {
	*domain.Cart
	Total     decimal.Decimal `json:"total"`
	ItemCount int             `json:"item_count"`
}

func newCartView(cart *domain.Cart) cartView {
	return cartView{Cart: cart, Total: cart.TotalPrice(), ItemCount: cart.ItemCount()}
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	cart, err := h.Carts.Get(r.Context(), mux.Vars(r)["cartId"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newCartView(cart))
}

func (h *Handler) addCartItem(w http.ResponseWriter, r *http.Request) {
	var body struct {
		DishID int `json:"dish_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	cart, err := h.Carts.AddDish(r.Context(), mux.Vars(r)["cartId"], body.DishID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newCartView(cart))
}

func (h *Handler) updateCartItem(w http.ResponseWriter, r *http.Request) {
	dishID, ok := pathID(w, r, "dishId")
	if !ok {
		return
	}
	var body struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	cart, err := h.Carts.UpdateQuantity(r.Context(), mux.Vars(r)["cartId"], dishID, body.Quantity)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newCartView(cart))
}

func (h *Handler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	dishID, ok := pathID(w, r, "dishId")
	if !ok {
		return
	}
	cart, err := h.Carts.RemoveDish(r.Context(), mux.Vars(r)["cartId"], dishID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newCartView(cart))
}

func (h *Handler) toggleFavorite(w http.ResponseWriter, r *http.Request) {
	dishID, ok := pathID(w, r, "dishId")
	if !ok {
		return
	}
	cart, err := h.Carts.ToggleFavorite(r.Context(), mux.Vars(r)["cartId"], dishID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newCartView(cart))
}

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	order, err := h.Carts.Checkout(r.Context(), mux.Vars(r)["cartId"])
	if err != nil && order == nil {
		writeError(w, err)
		return
	}
	if err != nil {
		log.Printf("[menu-svc] WARNING: %v", err)
	}
	writeJSON(w, http.StatusCreated, order)
}
