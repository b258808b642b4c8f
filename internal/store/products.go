package store

import (
	"strings"
	"time"

	"chaicraft_back_end/internal/models"

	"github.com/gocql/gocql"
)

func (s *Store) CreateProduct(p *models.Product) error {
	session, err := s.db.ProductsSession()
	if err != nil {
		return err
	}

	if p.ID == (gocql.UUID{}) {
		p.ID = gocql.TimeUUID()
	}
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	return session.Query(`INSERT INTO ks_products.products
		(product_id, name, hindi_name, description, price, category, image_url, ingredients, weight, stock, is_best_seller, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Name, p.HindiName, p.Description, p.Price, p.Category, p.ImageURL,
		p.Ingredients, p.Weight, p.Stock, p.IsBestSeller, p.CreatedAt, p.UpdatedAt).Exec()
}

func (s *Store) GetProduct(id gocql.UUID) (*models.Product, error) {
	session, err := s.db.ProductsSession()
	if err != nil {
		return nil, err
	}

	var p models.Product
	if err := session.Query(`SELECT product_id, name, hindi_name, description, price, category, image_url, ingredients, weight, stock, is_best_seller, created_at, updated_at
		FROM ks_products.products WHERE product_id = ?`, id).Scan(
		&p.ID, &p.Name, &p.HindiName, &p.Description, &p.Price, &p.Category, &p.ImageURL,
		&p.Ingredients, &p.Weight, &p.Stock, &p.IsBestSeller, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}

func (s *Store) GetProducts() ([]models.Product, error) {
	session, err := s.db.ProductsSession()
	if err != nil {
		return nil, err
	}

	iter := session.Query(`SELECT product_id, name, hindi_name, description, price, category, image_url, ingredients, weight, stock, is_best_seller, created_at, updated_at
		FROM ks_products.products`).Iter()

	var products []models.Product
	var p models.Product
	for iter.Scan(&p.ID, &p.Name, &p.HindiName, &p.Description, &p.Price, &p.Category, &p.ImageURL,
		&p.Ingredients, &p.Weight, &p.Stock, &p.IsBestSeller, &p.CreatedAt, &p.UpdatedAt) {
		products = append(products, p)
		p = models.Product{}
	}
	if err := iter.Close(); err != nil {
		return nil, err
	}
	return products, nil
}

// GetProductsByID loads the catalog rows for the given ids. A missing id is
// simply absent from the result map; the checkout layer decides to reject.
func (s *Store) GetProductsByID(ids []gocql.UUID) (map[gocql.UUID]models.Product, error) {
	catalog := make(map[gocql.UUID]models.Product, len(ids))
	for _, id := range ids {
		p, err := s.GetProduct(id)
		if err != nil {
			if err == ErrNotFound {
				continue
			}
			return nil, err
		}
		catalog[id] = *p
	}
	return catalog, nil
}

// SearchProducts is the fallback when Elasticsearch is unavailable. It scans
// the catalog and matches the query against name, hindi name, description and
// ingredients, case-insensitively.
func (s *Store) SearchProducts(query string) ([]models.Product, error) {
	products, err := s.GetProducts()
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(query)
	matches := make([]models.Product, 0)
	for _, p := range products {
		haystack := strings.ToLower(p.Name + " " + p.HindiName + " " + p.Description + " " + p.Ingredients)
		if strings.Contains(haystack, q) {
			matches = append(matches, p)
		}
	}
	return matches, nil
}

// UpdateProduct overwrites the full row; partial updates are resolved against
// the current row by the handler before calling.
func (s *Store) UpdateProduct(p *models.Product) error {
	session, err := s.db.ProductsSession()
	if err != nil {
		return err
	}

	p.UpdatedAt = time.Now()
	return session.Query(`UPDATE ks_products.products SET
		name = ?, hindi_name = ?, description = ?, price = ?, category = ?, image_url = ?,
		ingredients = ?, weight = ?, stock = ?, is_best_seller = ?, updated_at = ?
		WHERE product_id = ?`,
		p.Name, p.HindiName, p.Description, p.Price, p.Category, p.ImageURL,
		p.Ingredients, p.Weight, p.Stock, p.IsBestSeller, p.UpdatedAt, p.ID).Exec()
}

// DeleteProduct is a hard delete; historical order items keep their snapshot.
func (s *Store) DeleteProduct(id gocql.UUID) error {
	session, err := s.db.ProductsSession()
	if err != nil {
		return err
	}
	return session.Query(`DELETE FROM ks_products.products WHERE product_id = ?`, id).Exec()
}
