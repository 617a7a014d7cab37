package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/devansh6012/online-store-test/internal/domain/errors"
	"github.com/devansh6012/online-store-test/internal/domain/model"
	"github.com/devansh6012/online-store-test/internal/domain/repository"
)

// pgxPool is the subset of pgxpool.Pool the storage layer relies on.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type userRepository struct {
	storage *Storage
}

type categoryRepository struct {
	storage *Storage
}

type productRepository struct {
	storage *Storage
}

type orderRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) Categories() repository.CategoryRepository {
	return &categoryRepository{storage: s}
}

func (s *Storage) Products() repository.ProductRepository {
	return &productRepository{storage: s}
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id SERIAL PRIMARY KEY,
            email TEXT UNIQUE NOT NULL,
            password_hash TEXT NOT NULL,
            first_name TEXT NOT NULL DEFAULT '',
            last_name TEXT NOT NULL DEFAULT '',
            role TEXT NOT NULL DEFAULT 'customer',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS categories (
            id SERIAL PRIMARY KEY,
            name TEXT NOT NULL,
            description TEXT NOT NULL DEFAULT '',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS products (
            id SERIAL PRIMARY KEY,
            name TEXT NOT NULL,
            description TEXT NOT NULL DEFAULT '',
            price DOUBLE PRECISION NOT NULL,
            category_id BIGINT REFERENCES categories(id),
            stock INTEGER NOT NULL DEFAULT 0,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS product_images (
            id SERIAL PRIMARY KEY,
            product_id BIGINT NOT NULL REFERENCES products(id),
            filename TEXT UNIQUE NOT NULL,
            filepath TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id SERIAL PRIMARY KEY,
            user_id BIGINT NOT NULL REFERENCES users(id),
            total_amount DOUBLE PRECISION NOT NULL,
            status TEXT NOT NULL,
            shipping_address TEXT NOT NULL,
            shipping_city TEXT NOT NULL,
            shipping_postal_code TEXT NOT NULL,
            shipping_phone TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS order_items (
            id SERIAL PRIMARY KEY,
            order_id BIGINT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
            product_id BIGINT NOT NULL REFERENCES products(id),
            quantity INTEGER NOT NULL,
            price DOUBLE PRECISION NOT NULL
        )`,
		`CREATE INDEX IF NOT EXISTS idx_products_category ON products(category_id)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_user ON orders(user_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_order_items_order ON order_items(order_id)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// --- UserRepository implementation ---

const userColumns = `id, email, password_hash, first_name, last_name, role, created_at`

func scanUser(row pgx.Row) (*model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName, &u.Role, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) Create(ctx context.Context, email, passwordHash, firstName, lastName string) (*model.User, error) {
	const query = `INSERT INTO users (email, password_hash, first_name, last_name)
                   VALUES ($1, $2, $3, $4) RETURNING id, role, created_at`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, email, passwordHash, firstName, lastName).Scan(&u.ID, &u.Role, &u.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	u.Email = email
	u.PasswordHash = passwordHash
	u.FirstName = firstName
	u.LastName = lastName
	return &u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE email=$1`
	return scanUser(r.storage.pool.QueryRow(ctx, query, email))
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE id=$1`
	return scanUser(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *userRepository) UpdateProfile(ctx context.Context, id int64, upd repository.ProfileUpdate) (*model.User, error) {
	const query = `UPDATE users SET
                       first_name = COALESCE($1, first_name),
                       last_name = COALESCE($2, last_name),
                       password_hash = COALESCE($3, password_hash)
                   WHERE id=$4
                   RETURNING ` + userColumns
	return scanUser(r.storage.pool.QueryRow(ctx, query, upd.FirstName, upd.LastName, upd.PasswordHash, id))
}

func (r *userRepository) UpdateRole(ctx context.Context, id int64, role model.Role) error {
	const query = `UPDATE users SET role=$1 WHERE id=$2`
	tag, err := r.storage.pool.Exec(ctx, query, role, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *userRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM users WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *userRepository) List(ctx context.Context) ([]model.UserSummary, error) {
	const query = `SELECT u.id, u.email, u.first_name, u.last_name, u.role, u.created_at, COUNT(o.id)
                   FROM users u
                   LEFT JOIN orders o ON o.user_id = u.id
                   GROUP BY u.id
                   ORDER BY u.created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.UserSummary
	for rows.Next() {
		var u model.UserSummary
		if err := rows.Scan(&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.Role, &u.CreatedAt, &u.OrderCount); err != nil {
			return nil, err
		}
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// --- CategoryRepository implementation ---

func (r *categoryRepository) Create(ctx context.Context, name, description string) (*model.Category, error) {
	const query = `INSERT INTO categories (name, description) VALUES ($1, $2) RETURNING id, created_at`
	var c model.Category
	if err := r.storage.pool.QueryRow(ctx, query, name, description).Scan(&c.ID, &c.CreatedAt); err != nil {
		return nil, err
	}
	c.Name = name
	c.Description = description
	return &c, nil
}

func (r *categoryRepository) GetByID(ctx context.Context, id int64) (*model.Category, error) {
	const query = `SELECT c.id, c.name, c.description, c.created_at, COUNT(p.id)
                   FROM categories c
                   LEFT JOIN products p ON p.category_id = c.id
                   WHERE c.id=$1
                   GROUP BY c.id`
	var c model.Category
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt, &c.ProductCount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *categoryRepository) List(ctx context.Context) ([]model.Category, error) {
	const query = `SELECT c.id, c.name, c.description, c.created_at, COUNT(p.id)
                   FROM categories c
                   LEFT JOIN products p ON p.category_id = c.id
                   GROUP BY c.id
                   ORDER BY c.name`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Category
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt, &c.ProductCount); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *categoryRepository) Update(ctx context.Context, id int64, name, description string) (*model.Category, error) {
	const query = `UPDATE categories SET name=$1, description=$2 WHERE id=$3 RETURNING created_at`
	var c model.Category
	err := r.storage.pool.QueryRow(ctx, query, name, description, id).Scan(&c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	c.ID = id
	c.Name = name
	c.Description = description
	return &c, nil
}

func (r *categoryRepository) Delete(ctx context.Context, id int64) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const countQuery = `SELECT COUNT(*) FROM products WHERE category_id=$1`
		var count int64
		if err := tx.QueryRow(ctx, countQuery, id).Scan(&count); err != nil {
			return err
		}
		if count > 0 {
			return domainErrors.ErrConflict
		}

		tag, err := tx.Exec(ctx, `DELETE FROM categories WHERE id=$1`, id)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return domainErrors.ErrNotFound
		}
		return nil
	})
}

func (r *categoryRepository) Products(ctx context.Context, id int64) ([]model.Product, error) {
	rows, err := r.storage.pool.Query(ctx, productSelect+` WHERE p.category_id=$1 GROUP BY p.id, c.name ORDER BY p.created_at DESC`, id)
	if err != nil {
		return nil, err
	}
	return collectProducts(rows)
}

// --- ProductRepository implementation ---

const productSelect = `SELECT p.id, p.name, p.description, p.price, p.category_id, COALESCE(c.name, ''), p.stock, string_agg(pi.filename, ','), p.created_at
                       FROM products p
                       LEFT JOIN categories c ON c.id = p.category_id
                       LEFT JOIN product_images pi ON pi.product_id = p.id`

func collectProducts(rows pgx.Rows) ([]model.Product, error) {
	defer rows.Close()

	var result []model.Product
	for rows.Next() {
		var (
			p      model.Product
			images *string
		)
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.CategoryID, &p.CategoryName, &p.Stock, &images, &p.CreatedAt); err != nil {
			return nil, err
		}
		if images != nil && *images != "" {
			p.Images = strings.Split(*images, ",")
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *productRepository) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	rows, err := r.storage.pool.Query(ctx, productSelect+` WHERE p.id=$1 GROUP BY p.id, c.name`, id)
	if err != nil {
		return nil, err
	}
	products, err := collectProducts(rows)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, domainErrors.ErrNotFound
	}
	return &products[0], nil
}

func (r *productRepository) List(ctx context.Context, filter model.ProductFilter) ([]model.Product, int64, error) {
	var (
		conditions []string
		args       []any
	)
	if filter.CategoryID != nil {
		args = append(args, *filter.CategoryID)
		conditions = append(conditions, fmt.Sprintf("p.category_id = $%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		conditions = append(conditions, fmt.Sprintf("p.name ILIKE $%d", len(args)))
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	if err := r.storage.pool.QueryRow(ctx, `SELECT COUNT(*) FROM products p`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := productSelect + where + " GROUP BY p.id, c.name ORDER BY p.created_at DESC"
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
		args = append(args, filter.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	products, err := collectProducts(rows)
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func insertImagesTx(ctx context.Context, tx pgx.Tx, productID int64, images []repository.ImageUpload) error {
	const query = `INSERT INTO product_images (product_id, filename, filepath) VALUES ($1, $2, $3)`
	for _, img := range images {
		if _, err := tx.Exec(ctx, query, productID, img.Filename, img.Filepath); err != nil {
			return err
		}
	}
	return nil
}

func (r *productRepository) Create(ctx context.Context, in repository.ProductInput, images []repository.ImageUpload) (*model.Product, error) {
	var productID int64
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const query = `INSERT INTO products (name, description, price, category_id, stock)
                       VALUES ($1, $2, $3, $4, $5) RETURNING id`
		if err := tx.QueryRow(ctx, query, in.Name, in.Description, in.Price, in.CategoryID, in.Stock).Scan(&productID); err != nil {
			return err
		}
		return insertImagesTx(ctx, tx, productID, images)
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, productID)
}

func (r *productRepository) Update(ctx context.Context, id int64, in repository.ProductInput, images []repository.ImageUpload) (*model.Product, error) {
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const query = `UPDATE products SET name=$1, description=$2, price=$3, category_id=$4, stock=$5 WHERE id=$6`
		tag, err := tx.Exec(ctx, query, in.Name, in.Description, in.Price, in.CategoryID, in.Stock, id)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return domainErrors.ErrNotFound
		}
		return insertImagesTx(ctx, tx, id, images)
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *productRepository) Delete(ctx context.Context, id int64) ([]string, error) {
	var filepaths []string
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		paths, err := selectImagePathsTx(ctx, tx, id)
		if err != nil {
			return err
		}
		filepaths = paths

		if _, err := tx.Exec(ctx, `DELETE FROM product_images WHERE product_id=$1`, id); err != nil {
			return err
		}
		tag, err := tx.Exec(ctx, `DELETE FROM products WHERE id=$1`, id)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return domainErrors.ErrNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return filepaths, nil
}

func (r *productRepository) ReplaceImages(ctx context.Context, productID int64, images []repository.ImageUpload) ([]string, error) {
	var removed []string
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		paths, err := selectImagePathsTx(ctx, tx, productID)
		if err != nil {
			return err
		}
		removed = paths

		if _, err := tx.Exec(ctx, `DELETE FROM product_images WHERE product_id=$1`, productID); err != nil {
			return err
		}
		return insertImagesTx(ctx, tx, productID, images)
	})
	if err != nil {
		return nil, err
	}
	return removed, nil
}

func selectImagePathsTx(ctx context.Context, tx pgx.Tx, productID int64) ([]string, error) {
	rows, err := tx.Query(ctx, `SELECT filepath FROM product_images WHERE product_id=$1`, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var paths []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, err
		}
		paths = append(paths, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return paths, nil
}

func (r *productRepository) GetImage(ctx context.Context, productID, imageID int64) (*model.ProductImage, error) {
	const query = `SELECT id, product_id, filename, filepath, created_at FROM product_images WHERE id=$1 AND product_id=$2`
	var img model.ProductImage
	err := r.storage.pool.QueryRow(ctx, query, imageID, productID).Scan(&img.ID, &img.ProductID, &img.Filename, &img.Filepath, &img.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &img, nil
}

func (r *productRepository) DeleteImage(ctx context.Context, imageID int64) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM product_images WHERE id=$1`, imageID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- OrderRepository implementation ---

// Create commits the order row, its items and the stock decrements as one
// atomic unit. A line whose product lacks sufficient stock (or does not
// exist) aborts the whole unit with ErrInsufficientStock.
func (r *orderRepository) Create(ctx context.Context, userID int64, lines []model.OrderLine, total float64, shipping model.ShippingDetails) (int64, error) {
	var orderID int64
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const insertOrder = `INSERT INTO orders (user_id, total_amount, status, shipping_address, shipping_city, shipping_postal_code, shipping_phone)
                             VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
		err := tx.QueryRow(ctx, insertOrder, userID, total, model.OrderStatusPending,
			shipping.Address, shipping.City, shipping.PostalCode, shipping.Phone).Scan(&orderID)
		if err != nil {
			return err
		}

		const decrementStock = `UPDATE products SET stock = stock - $1 WHERE id = $2 AND stock >= $1`
		const insertItem = `INSERT INTO order_items (order_id, product_id, quantity, price) VALUES ($1, $2, $3, $4)`
		for _, line := range lines {
			tag, err := tx.Exec(ctx, decrementStock, line.Quantity, line.ProductID)
			if err != nil {
				return err
			}
			if tag.RowsAffected() == 0 {
				return fmt.Errorf("product %d: %w", line.ProductID, domainErrors.ErrInsufficientStock)
			}
			if _, err := tx.Exec(ctx, insertItem, orderID, line.ProductID, line.Quantity, line.Price); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return orderID, nil
}

// UpdateStatus writes the requested status and, when the order transitions
// into cancelled, restores the stock its items decremented at creation.
// Restoration runs at most once: a cancelled order stays cancelled without
// further inventory effect.
func (r *orderRepository) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		var previous model.OrderStatus
		err := tx.QueryRow(ctx, `SELECT status FROM orders WHERE id=$1 FOR UPDATE`, orderID).Scan(&previous)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrNotFound
			}
			return err
		}

		if _, err := tx.Exec(ctx, `UPDATE orders SET status=$1, updated_at=NOW() WHERE id=$2`, status, orderID); err != nil {
			return err
		}

		if status != model.OrderStatusCancelled || previous == model.OrderStatusCancelled {
			return nil
		}

		rows, err := tx.Query(ctx, `SELECT product_id, quantity FROM order_items WHERE order_id=$1`, orderID)
		if err != nil {
			return err
		}
		type restoration struct {
			productID int64
			quantity  int
		}
		var restorations []restoration
		for rows.Next() {
			var item restoration
			if err := rows.Scan(&item.productID, &item.quantity); err != nil {
				rows.Close()
				return err
			}
			restorations = append(restorations, item)
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return err
		}

		const restoreStock = `UPDATE products SET stock = stock + $1 WHERE id = $2`
		for _, item := range restorations {
			if _, err := tx.Exec(ctx, restoreStock, item.quantity, item.productID); err != nil {
				return err
			}
		}
		return nil
	})
}

const orderAggregateSelect = `SELECT o.id, o.user_id, o.total_amount, o.status,
                                     o.shipping_address, o.shipping_city, o.shipping_postal_code, o.shipping_phone,
                                     o.created_at, o.updated_at,
                                     COUNT(oi.id), COALESCE(string_agg(p.name, ','), '')
                              FROM orders o
                              LEFT JOIN order_items oi ON oi.order_id = o.id
                              LEFT JOIN products p ON p.id = oi.product_id`

func scanOrderAggregate(rows pgx.Rows, o *model.Order) error {
	return rows.Scan(&o.ID, &o.UserID, &o.TotalAmount, &o.Status,
		&o.Shipping.Address, &o.Shipping.City, &o.Shipping.PostalCode, &o.Shipping.Phone,
		&o.CreatedAt, &o.UpdatedAt, &o.ItemCount, &o.ProductNames)
}

func (r *orderRepository) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	query := orderAggregateSelect + ` WHERE o.user_id=$1 GROUP BY o.id ORDER BY o.created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		var o model.Order
		if err := scanOrderAggregate(rows, &o); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) ListAll(ctx context.Context) ([]model.Order, error) {
	const query = `SELECT o.id, o.user_id, o.total_amount, o.status,
                          o.shipping_address, o.shipping_city, o.shipping_postal_code, o.shipping_phone,
                          o.created_at, o.updated_at,
                          COUNT(oi.id), COALESCE(string_agg(DISTINCT p.name, ','), ''),
                          u.email, u.first_name || ' ' || u.last_name
                   FROM orders o
                   LEFT JOIN users u ON u.id = o.user_id
                   LEFT JOIN order_items oi ON oi.order_id = o.id
                   LEFT JOIN products p ON p.id = oi.product_id
                   GROUP BY o.id, u.email, u.first_name, u.last_name
                   ORDER BY o.created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		var o model.Order
		err := rows.Scan(&o.ID, &o.UserID, &o.TotalAmount, &o.Status,
			&o.Shipping.Address, &o.Shipping.City, &o.Shipping.PostalCode, &o.Shipping.Phone,
			&o.CreatedAt, &o.UpdatedAt, &o.ItemCount, &o.ProductNames,
			&o.CustomerEmail, &o.CustomerName)
		if err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

const orderRowSelect = `SELECT o.id, o.user_id, o.total_amount, o.status,
                               o.shipping_address, o.shipping_city, o.shipping_postal_code, o.shipping_phone,
                               o.created_at, o.updated_at,
                               u.email, u.first_name || ' ' || u.last_name
                        FROM orders o
                        LEFT JOIN users u ON u.id = o.user_id`

func (r *orderRepository) scanOrderRow(row pgx.Row) (*model.Order, error) {
	var o model.Order
	err := row.Scan(&o.ID, &o.UserID, &o.TotalAmount, &o.Status,
		&o.Shipping.Address, &o.Shipping.City, &o.Shipping.PostalCode, &o.Shipping.Phone,
		&o.CreatedAt, &o.UpdatedAt, &o.CustomerEmail, &o.CustomerName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

func (r *orderRepository) loadItems(ctx context.Context, order *model.Order) error {
	const query = `SELECT oi.id, oi.order_id, oi.product_id, oi.quantity, oi.price,
                          COALESCE(p.name, ''),
                          COALESCE((SELECT pi.filename FROM product_images pi WHERE pi.product_id = p.id ORDER BY pi.id LIMIT 1), '')
                   FROM order_items oi
                   LEFT JOIN products p ON p.id = oi.product_id
                   WHERE oi.order_id=$1
                   ORDER BY oi.id`
	rows, err := r.storage.pool.Query(ctx, query, order.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var item model.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Quantity, &item.Price, &item.ProductName, &item.ProductImage); err != nil {
			return err
		}
		order.Items = append(order.Items, item)
	}
	return rows.Err()
}

func (r *orderRepository) GetByUser(ctx context.Context, orderID, userID int64) (*model.Order, error) {
	order, err := r.scanOrderRow(r.storage.pool.QueryRow(ctx, orderRowSelect+` WHERE o.id=$1 AND o.user_id=$2`, orderID, userID))
	if err != nil {
		return nil, err
	}
	if err := r.loadItems(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) Get(ctx context.Context, orderID int64) (*model.Order, error) {
	order, err := r.scanOrderRow(r.storage.pool.QueryRow(ctx, orderRowSelect+` WHERE o.id=$1`, orderID))
	if err != nil {
		return nil, err
	}
	if err := r.loadItems(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) CountByUser(ctx context.Context, userID int64) (int64, error) {
	var count int64
	if err := r.storage.pool.QueryRow(ctx, `SELECT COUNT(*) FROM orders WHERE user_id=$1`, userID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *orderRepository) Stats(ctx context.Context) (*model.StoreStats, error) {
	var stats model.StoreStats

	if err := r.storage.pool.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&stats.Products); err != nil {
		return nil, err
	}
	if err := r.storage.pool.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&stats.Users); err != nil {
		return nil, err
	}
	if err := r.storage.pool.QueryRow(ctx, `SELECT COUNT(*) FROM orders`).Scan(&stats.Orders); err != nil {
		return nil, err
	}
	if err := r.storage.pool.QueryRow(ctx, `SELECT COALESCE(SUM(total_amount), 0) FROM orders WHERE status='delivered'`).Scan(&stats.Revenue); err != nil {
		return nil, err
	}

	const statusQuery = `SELECT
                             COUNT(*) FILTER (WHERE status='pending'),
                             COUNT(*) FILTER (WHERE status='processing'),
                             COUNT(*) FILTER (WHERE status='shipped'),
                             COUNT(*) FILTER (WHERE status='delivered'),
                             COUNT(*) FILTER (WHERE status='cancelled')
                         FROM orders`
	err := r.storage.pool.QueryRow(ctx, statusQuery).Scan(
		&stats.ByStatus.Pending, &stats.ByStatus.Processing, &stats.ByStatus.Shipped,
		&stats.ByStatus.Delivered, &stats.ByStatus.Cancelled)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
