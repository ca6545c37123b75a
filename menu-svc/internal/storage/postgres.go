package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"restaurant-ordering/menu-svc/internal/domain"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) CreateCategory(ctx context.Context, category *domain.Category) error {
	return r.DB.QueryRowContext(ctx,
		"INSERT INTO categories (name, image_url) VALUES ($1, NULLIF($2, '')) RETURNING id, created_at",
		category.Name, category.ImageURL,
	).Scan(&category.ID, &category.CreatedAt)
}

func (r *PostgresRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, name, COALESCE(image_url, ''), created_at
		FROM categories
		ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.ImageURL, &c.CreatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *PostgresRepository) GetCategory(ctx context.Context, id int) (*domain.Category, error) {
	var c domain.Category
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, name, COALESCE(image_url, ''), created_at
		FROM categories
		WHERE id = $1`, id).
		Scan(&c.ID, &c.Name, &c.ImageURL, &c.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrCategoryNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *PostgresRepository) UpdateCategory(ctx context.Context, category *domain.Category) error {
	err := r.DB.QueryRowContext(ctx, `
		UPDATE categories
		SET name = $1, image_url = COALESCE(NULLIF($2, ''), image_url)
		WHERE id = $3
		RETURNING COALESCE(image_url, ''), created_at`,
		category.Name, category.ImageURL, category.ID).
		Scan(&category.ImageURL, &category.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrCategoryNotFound
	}
	return err
}

// DeleteCategory removes the category and every dish filed under it in one
// transaction. It returns the number of categories removed.
func (r *PostgresRepository) DeleteCategory(ctx context.Context, id int) (int64, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM dishes WHERE category_id = $1", id); err != nil {
		return 0, fmt.Errorf("delete dishes of category %d: %w", id, err)
	}
	result, err := tx.ExecContext(ctx, "DELETE FROM categories WHERE id = $1", id)
	if err != nil {
		return 0, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}
	return affected, tx.Commit()
}

const dishColumns = `
	SELECT d.id, d.category_id, d.name, COALESCE(d.description, ''), d.price, COALESCE(d.image_url, ''), d.created_at,
	       c.id, c.name, COALESCE(c.image_url, ''), c.created_at
	FROM dishes d
	JOIN categories c ON c.id = d.category_id`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDish(row rowScanner) (domain.Dish, error) {
	var (
		dish     domain.Dish
		category domain.Category
	)
	err := row.Scan(&dish.ID, &dish.CategoryID, &dish.Name, &dish.Description, &dish.Price, &dish.ImageURL, &dish.CreatedAt,
		&category.ID, &category.Name, &category.ImageURL, &category.CreatedAt)
	if err != nil {
		return dish, err
	}
	dish.Category = &category
	return dish, nil
}

func (r *PostgresRepository) CreateDish(ctx context.Context, dish *domain.Dish) error {
	return r.DB.QueryRowContext(ctx, `
		INSERT INTO dishes (category_id, name, description, price, image_url)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''))
		RETURNING id, created_at`,
		dish.CategoryID, dish.Name, dish.Description, dish.Price, dish.ImageURL).
		Scan(&dish.ID, &dish.CreatedAt)
}

// ListDishes returns every dish when categoryID is 0.
func (r *PostgresRepository) ListDishes(ctx context.Context, categoryID int) ([]domain.Dish, error) {
	rows, err := r.DB.QueryContext(ctx, dishColumns+`
		WHERE $1 = 0 OR d.category_id = $1
		ORDER BY d.created_at, d.id`, categoryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	dishes := []domain.Dish{}
	for rows.Next() {
		dish, err := scanDish(rows)
		if err != nil {
			return nil, err
		}
		dishes = append(dishes, dish)
	}
	return dishes, rows.Err()
}

func (r *PostgresRepository) GetDish(ctx context.Context, id int) (*domain.Dish, error) {
	dish, err := scanDish(r.DB.QueryRowContext(ctx, dishColumns+" WHERE d.id = $1", id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrDishNotFound
	}
	if err != nil {
		return nil, err
	}
	return &dish, nil
}

func (r *PostgresRepository) UpdateDish(ctx context.Context, dish *domain.Dish) error {
	err := r.DB.QueryRowContext(ctx, `
		UPDATE dishes
		SET name = $1, description = $2, price = $3, category_id = $4, image_url = COALESCE(NULLIF($5, ''), image_url)
		WHERE id = $6
		RETURNING COALESCE(image_url, ''), created_at`,
		dish.Name, dish.Description, dish.Price, dish.CategoryID, dish.ImageURL, dish.ID).
		Scan(&dish.ImageURL, &dish.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrDishNotFound
	}
	return err
}

func (r *PostgresRepository) DeleteDish(ctx context.Context, id int) (int64, error) {
	result, err := r.DB.ExecContext(ctx, "DELETE FROM dishes WHERE id = $1", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) CreateOrder(ctx context.Context, order *domain.Order) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := tx.QueryRowContext(ctx, `
		INSERT INTO orders (total, status)
		VALUES ($1, $2)
		RETURNING id, created_at
	`, order.Total, order.Status).Scan(&order.ID, &order.CreatedAt); err != nil {
		return err
	}

	for _, item := range order.Items {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO order_items (order_id, dish_id, quantity, price)
			VALUES ($1, $2, $3, $4)
		`, order.ID, item.DishID, item.Quantity, item.Price); err != nil {
			return fmt.Errorf("insert item for dish %d: %w", item.DishID, err)
		}
	}

	return tx.Commit()
}

func (r *PostgresRepository) GetOrder(ctx context.Context, id int) (*domain.Order, error) {
	var order domain.Order
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, total, status, created_at
		FROM orders WHERE id = $1
	`, id).Scan(&order.ID, &order.Total, &order.Status, &order.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	orders := []domain.Order{order}
	if err := r.attachItems(ctx, orders); err != nil {
		return nil, err
	}
	return &orders[0], nil
}

// ListOrders returns every order, newest first.
func (r *PostgresRepository) ListOrders(ctx context.Context) ([]domain.Order, error) {
	return r.queryOrders(ctx, `
		SELECT id, total, status, created_at
		FROM orders
		ORDER BY created_at DESC, id DESC`)
}

// OrdersCreatedSince returns orders created at or after since, oldest first.
func (r *PostgresRepository) OrdersCreatedSince(ctx context.Context, since time.Time) ([]domain.Order, error) {
	return r.queryOrders(ctx, `
		SELECT id, total, status, created_at
		FROM orders
		WHERE created_at >= $1
		ORDER BY created_at, id`, since)
}

func (r *PostgresRepository) queryOrders(ctx context.Context, query string, args ...any) ([]domain.Order, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		var order domain.Order
		if err := rows.Scan(&order.ID, &order.Total, &order.Status, &order.CreatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachItems(ctx, orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// attachItems loads the items of all orders in one query. Items whose dish
// was deleted come back with DishDeleted set and no name.
func (r *PostgresRepository) attachItems(ctx context.Context, orders []domain.Order) error {
	if len(orders) == 0 {
		return nil
	}

	ids := make([]int64, len(orders))
	position := make(map[int]int, len(orders))
	for i := range orders {
		ids[i] = int64(orders[i].ID)
		position[orders[i].ID] = i
		orders[i].Items = []domain.OrderItem{}
	}

	rows, err := r.DB.QueryContext(ctx, `
		SELECT oi.order_id, oi.dish_id, COALESCE(d.name, ''), d.id IS NULL, oi.quantity, oi.price
		FROM order_items oi
		LEFT JOIN dishes d ON d.id = oi.dish_id
		WHERE oi.order_id = ANY($1)
		ORDER BY oi.order_id, oi.id
	`, pq.Array(ids))
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			orderID int
			item    domain.OrderItem
		)
		if err := rows.Scan(&orderID, &item.DishID, &item.DishName, &item.DishDeleted, &item.Quantity, &item.Price); err != nil {
			return err
		}
		if i, ok := position[orderID]; ok {
			orders[i].Items = append(orders[i].Items, item)
		}
	}
	return rows.Err()
}

func (r *PostgresRepository) UpdateOrderStatus(ctx context.Context, id int, status domain.OrderStatus) error {
	result, err := r.DB.ExecContext(ctx, "UPDATE orders SET status = $1 WHERE id = $2", status, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

func (r *PostgresRepository) SaveQRCode(ctx context.Context, orderID int, qr []byte) error {
	_, err := r.DB.ExecContext(ctx, `UPDATE orders SET qr_code = $1 WHERE id = $2`, qr, orderID)
	return err
}

func (r *PostgresRepository) GetQRCode(ctx context.Context, orderID int) ([]byte, error) {
	var qrCode []byte
	err := r.DB.QueryRowContext(ctx, "SELECT qr_code FROM orders WHERE id = $1", orderID).Scan(&qrCode)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return qrCode, nil
}

func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS categories (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			image_url TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS dishes (
			id SERIAL PRIMARY KEY,
			category_id INTEGER NOT NULL REFERENCES categories(id),
			name TEXT NOT NULL,
			description TEXT,
			price NUMERIC(10, 2) NOT NULL CHECK (price >= 0),
			image_url TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id SERIAL PRIMARY KEY,
			total NUMERIC(10, 2) NOT NULL,
			status TEXT NOT NULL DEFAULT 'pending',
			qr_code BYTEA,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS order_items (
			id SERIAL PRIMARY KEY,
			order_id INTEGER NOT NULL REFERENCES orders(id),
			dish_id INTEGER NOT NULL,
			quantity INTEGER NOT NULL CHECK (quantity > 0),
			price NUMERIC(10, 2) NOT NULL
		)`,
		"CREATE INDEX IF NOT EXISTS orders_created_at_idx ON orders (created_at)",
		"CREATE INDEX IF NOT EXISTS dishes_category_id_idx ON dishes (category_id)",
	}
	for _, stmt := range statements {
		if _, err := r.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema `%s`: %w", stmt, err)
		}
	}
	return nil
}
