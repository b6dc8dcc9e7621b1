package repository

import (
	"database/sql"
	"fmt"

	"github.com/StavanShah1402/Music-Recommendation-System/model"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	CreateUser(user *model.User) (int64, error)
	GetUserByID(id int64) (*model.User, error)
	GetUserByEmail(email string) (*model.User, error)
}

// mysqlUserRepository implements UserRepository for MySQL.
type mysqlUserRepository struct {
	db *sql.DB
}

// NewMySQLUserRepository creates a new mysqlUserRepository.
func NewMySQLUserRepository(db *sql.DB) UserRepository {
	return &mysqlUserRepository{db: db}
}

// CreateUser adds a new user to the database. Returns ErrDuplicateUser
// when the email is already taken.
func (r *mysqlUserRepository) CreateUser(user *model.User) (int64, error) {
	query := "INSERT INTO users (username, email, password_hash, gender, age) VALUES (?, ?, ?, ?, ?)"
	stmt, err := r.db.Prepare(query)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare create user statement: %w", err)
	}
	defer stmt.Close()

	res, err := stmt.Exec(user.Username, user.Email, user.PasswordHash, user.Gender, user.Age)
	if err != nil {
		if isDuplicateEntry(err) {
			return 0, fmt.Errorf("email %s: %w", user.Email, ErrDuplicateUser)
		}
		return 0, fmt.Errorf("failed to execute create user statement: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get last insert ID for user: %w", err)
	}
	return id, nil
}

// GetUserByID retrieves a user by their ID.
func (r *mysqlUserRepository) GetUserByID(id int64) (*model.User, error) {
	query := "SELECT id, username, email, password_hash, gender, age, created_at, updated_at FROM users WHERE id = ?"
	row := r.db.QueryRow(query, id)
	return scanUser(row, fmt.Sprintf("ID %d", id))
}

// GetUserByEmail retrieves a user by their email address.
func (r *mysqlUserRepository) GetUserByEmail(email string) (*model.User, error) {
	query := "SELECT id, username, email, password_hash, gender, age, created_at, updated_at FROM users WHERE email = ?"
	row := r.db.QueryRow(query, email)
	return scanUser(row, fmt.Sprintf("email %s", email))
}

func scanUser(row *sql.Row, desc string) (*model.User, error) {
	user := &model.User{}
	var gender sql.NullString
	var age sql.NullInt64
	err := row.Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &gender, &age, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // User not found
		}
		return nil, fmt.Errorf("failed to scan user row for %s: %w", desc, err)
	}
	if gender.Valid {
		user.Gender = gender.String
	}
	if age.Valid {
		user.Age = int(age.Int64)
	}
	return user, nil
}
