package product

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a new PostgreSQL product repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

// Create inserts the product and all its images inside a single transaction.
func (r *postgresRepo) Create(ctx context.Context, p *Product) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO products
		  (id, name, description, category, price_per_sqft, negotiable, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		p.ID, p.Name, p.Description, p.Category, p.PricePerSqft,
		p.Negotiable, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}

	if err := insertImages(ctx, tx, p.ID, p.Images); err != nil {
		return err
	}
	return tx.Commit()
}

// Update overwrites the product row and replaces its full image set in one
// transaction. Old images are deleted before the new list is attached.
func (r *postgresRepo) Update(ctx context.Context, p *Product) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		UPDATE products
		SET name=$1, description=$2, category=$3, price_per_sqft=$4,
		    negotiable=$5, updated_at=$6
		WHERE id=$7`,
		p.Name, p.Description, p.Category, p.PricePerSqft,
		p.Negotiable, p.UpdatedAt, p.ID)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM product_images WHERE product_id=$1`, p.ID); err != nil {
		return fmt.Errorf("clear product images: %w", err)
	}
	if err := insertImages(ctx, tx, p.ID, p.Images); err != nil {
		return err
	}
	return tx.Commit()
}

// Delete removes the product and cascades removal of its images.
func (r *postgresRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM product_images WHERE product_id=$1`, id); err != nil {
		return fmt.Errorf("delete product images: %w", err)
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM products WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return tx.Commit()
}

func (r *postgresRepo) GetByID(ctx context.Context, id uuid.UUID) (*Product, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id,name,description,category,price_per_sqft,negotiable,created_at,updated_at
		FROM products WHERE id=$1`, id)
	p, err := scanProduct(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	images, err := r.loadImages(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Images = images[id]
	return p, nil
}

func (r *postgresRepo) List(ctx context.Context) ([]*Product, error) {
	return r.queryProducts(ctx, `
		SELECT id,name,description,category,price_per_sqft,negotiable,created_at,updated_at
		FROM products ORDER BY created_at, id`)
}

func (r *postgresRepo) Search(ctx context.Context, f Filter) ([]*Product, error) {
	query := `SELECT id,name,description,category,price_per_sqft,negotiable,created_at,updated_at
	          FROM products WHERE 1=1`
	args := []interface{}{}
	n := 1
	if f.Category != nil {
		query += fmt.Sprintf(` AND category=$%d`, n)
		args = append(args, *f.Category)
		n++
	}
	if f.Query != "" {
		query += fmt.Sprintf(` AND (name ILIKE $%d OR description ILIKE $%d)`, n, n)
		args = append(args, "%"+f.Query+"%")
		n++
	}
	if f.MinPrice != nil {
		query += fmt.Sprintf(` AND price_per_sqft >= $%d`, n)
		args = append(args, *f.MinPrice)
		n++
	}
	if f.MaxPrice != nil {
		query += fmt.Sprintf(` AND price_per_sqft <= $%d`, n)
		args = append(args, *f.MaxPrice)
		n++
	}
	query += ` ORDER BY created_at, id`
	return r.queryProducts(ctx, query, args...)
}

func (r *postgresRepo) CountByCategory(ctx context.Context, c Category) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM products WHERE category=$1`, c).Scan(&count)
	return count, err
}

func (r *postgresRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&count)
	return count, err
}

// ── helpers ──────────────────────────────────────────────────────────────────

func scanProduct(scan func(...interface{}) error) (*Product, error) {
	p := &Product{}
	err := scan(&p.ID, &p.Name, &p.Description, &p.Category, &p.PricePerSqft,
		&p.Negotiable, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *postgresRepo) queryProducts(ctx context.Context, query string, args ...interface{}) ([]*Product, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*Product
	var ids []uuid.UUID
	for rows.Next() {
		p, err := scanProduct(rows.Scan)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
		ids = append(ids, p.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return products, nil
	}

	images, err := r.loadImages(ctx, ids...)
	if err != nil {
		return nil, err
	}
	for _, p := range products {
		p.Images = images[p.ID]
	}
	return products, nil
}

// loadImages fetches the images for all given products in one query, keyed
// by owning product and ordered ascending.
func (r *postgresRepo) loadImages(ctx context.Context, ids ...uuid.UUID) (map[uuid.UUID][]Image, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, product_id, url, alt_text, ordering
		FROM product_images
		WHERE product_id = ANY($1)
		ORDER BY ordering, id`, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("load product images: %w", err)
	}
	defer rows.Close()

	images := make(map[uuid.UUID][]Image)
	for rows.Next() {
		var img Image
		var productID uuid.UUID
		var altText sql.NullString
		if err := rows.Scan(&img.ID, &productID, &img.URL, &altText, &img.Ordering); err != nil {
			return nil, err
		}
		img.AltText = altText.String
		images[productID] = append(images[productID], img)
	}
	return images, rows.Err()
}

func insertImages(ctx context.Context, tx *sql.Tx, productID uuid.UUID, images []Image) error {
	for _, img := range images {
		var altText interface{}
		if img.AltText != "" {
			altText = img.AltText
		}
		_, err := tx.ExecContext(ctx, `
			INSERT INTO product_images (id, product_id, url, alt_text, ordering)
			VALUES ($1,$2,$3,$4,$5)`,
			img.ID, productID, img.URL, altText, img.Ordering)
		if err != nil {
			return fmt.Errorf("insert product_image: %w", err)
		}
	}
	return nil
}
