package store

import (
	"time"

	"chaicraft_back_end/internal/models"

	"github.com/gocql/gocql"
)

func (s *Store) CreateReview(r *models.Review) error {
	session, err := s.db.ProductsSession()
	if err != nil {
		return err
	}

	r.ID = gocql.TimeUUID()
	r.CreatedAt = time.Now()

	return session.Query(`INSERT INTO ks_products.reviews_by_product (product_id, created_at, review_id, user_id, user_name, rating, comment)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.ProductID, r.CreatedAt, r.ID, r.UserID, r.UserName, r.Rating, r.Comment).Exec()
}

// GetReviewsByProduct returns reviews newest first (clustering order).
func (s *Store) GetReviewsByProduct(productID gocql.UUID) ([]models.Review, error) {
	session, err := s.db.ProductsSession()
	if err != nil {
		return nil, err
	}

	iter := session.Query(`SELECT product_id, created_at, review_id, user_id, user_name, rating, comment
		FROM ks_products.reviews_by_product WHERE product_id = ?`, productID).Iter()

	var reviews []models.Review
	var r models.Review
	for iter.Scan(&r.ProductID, &r.CreatedAt, &r.ID, &r.UserID, &r.UserName, &r.Rating, &r.Comment) {
		reviews = append(reviews, r)
		r = models.Review{}
	}
	if err := iter.Close(); err != nil {
		return nil, err
	}
	return reviews, nil
}
