package services

import (
	"database/sql"
	"errors"

	"github.com/megahand-az/megahand-be/internal/models"
)

// ErrInvalidCredentials signals a failed login attempt. Whether the username
// or the password was wrong is deliberately not distinguished.
var ErrInvalidCredentials = errors.New("invalid credentials")

// UserServiceProvider defines the interface for user services.
type UserServiceProvider interface {
	GetUserByID(id int64) (models.User, error)
	GetUserByUsername(username string) (models.User, error)
	CreateUser(username, password string) (models.User, error)
	Authenticate(username, password string) (models.User, error)
}

// UserService provides business logic for admin accounts.
type UserService struct {
	db *sql.DB
}

// NewUserService creates a new UserService.
func NewUserService(db *sql.DB) *UserService {
	return &UserService{db: db}
}

// GetUserByID retrieves a single user by their ID.
func (s *UserService) GetUserByID(id int64) (models.User, error) {
	var user models.User
	row := s.db.QueryRow("SELECT id, username, password FROM users WHERE id = ?", id)
	err := row.Scan(&user.ID, &user.Username, &user.Password)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

// GetUserByUsername retrieves a single user by their username.
func (s *UserService) GetUserByUsername(username string) (models.User, error) {
	var user models.User
	row := s.db.QueryRow("SELECT id, username, password FROM users WHERE username = ?", username)
	err := row.Scan(&user.ID, &user.Username, &user.Password)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

// CreateUser inserts a new admin account. Only the seeder calls this; there is
// no registration endpoint.
func (s *UserService) CreateUser(username, password string) (models.User, error) {
	stmt, err := s.db.Prepare("INSERT INTO users(username, password) VALUES(?, ?)")
	if err != nil {
		return models.User{}, err
	}
	defer stmt.Close()

	res, err := stmt.Exec(username, password)
	if err != nil {
		return models.User{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.User{}, err
	}
	return s.GetUserByID(id)
}

// Authenticate verifies a username/password pair.
//
// Passwords are stored and compared in plaintext, reproducing the legacy
// data. This is a known security defect.
// TODO: migrate the users table to salted password hashes and compare with a
// constant-time check.
func (s *UserService) Authenticate(username, password string) (models.User, error) {
	user, err := s.GetUserByUsername(username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return models.User{}, ErrInvalidCredentials
		}
		return models.User{}, err
	}
	if user.Password != password {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}
