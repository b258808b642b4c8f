package store

import (
	"time"

	"chaicraft_back_end/internal/models"

	"github.com/gocql/gocql"
)

// CreateUser inserts a user. The caller hashes the password.
func (s *Store) CreateUser(u *models.User) error {
	session, err := s.db.UsersSession()
	if err != nil {
		return err
	}

	if u.ID == (gocql.UUID{}) {
		u.ID = gocql.TimeUUID()
	}
	u.CreatedAt = time.Now()

	// Dual write: users by id and a lookup row by username.
	batch := session.NewBatch(gocql.LoggedBatch)
	batch.Query(`INSERT INTO ks_users.users (user_id, username, password, role, name, phone, address, profile_photo_url, created_at)
	             VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.Username, u.Password, u.Role, u.Name, u.Phone, u.Address, u.ProfilePhotoURL, u.CreatedAt)
	batch.Query(`INSERT INTO ks_users.users_by_username (username, user_id) VALUES (?, ?)`,
		u.Username, u.ID)

	return session.ExecuteBatch(batch)
}

// GetUserByUsername resolves the username lookup row, then the user itself.
func (s *Store) GetUserByUsername(username string) (*models.User, error) {
	session, err := s.db.UsersSession()
	if err != nil {
		return nil, err
	}

	var userID gocql.UUID
	if err := session.Query(`SELECT user_id FROM ks_users.users_by_username WHERE username = ?`,
		username).Scan(&userID); err != nil {
		return nil, notFound(err)
	}

	return s.GetUser(userID)
}

func (s *Store) GetUser(id gocql.UUID) (*models.User, error) {
	session, err := s.db.UsersSession()
	if err != nil {
		return nil, err
	}

	var u models.User
	if err := session.Query(`SELECT user_id, username, password, role, name, phone, address, profile_photo_url, created_at
	                         FROM ks_users.users WHERE user_id = ?`, id).Scan(
		&u.ID, &u.Username, &u.Password, &u.Role, &u.Name, &u.Phone, &u.Address, &u.ProfilePhotoURL, &u.CreatedAt); err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}
