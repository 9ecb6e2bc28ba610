package repository

import (
	"database/sql"

	"github.com/Baibhabsarkar41/Stocks-Analyzer/internal/model"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindByUsername(username string) (*model.User, error) {
	var u model.User
	err := r.db.QueryRow(`
		SELECT id, username, email, hashed_password, created_at
		FROM users
		WHERE username = $1
	`, username).Scan(&u.ID, &u.Username, &u.Email, &u.HashedPassword, &u.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return &u, nil
}

func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	var u model.User
	err := r.db.QueryRow(`
		SELECT id, username, email, hashed_password, created_at
		FROM users
		WHERE email = $1
	`, email).Scan(&u.ID, &u.Username, &u.Email, &u.HashedPassword, &u.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return &u, nil
}

func (r *UserRepository) Create(user *model.User) error {
	return r.db.QueryRow(`
		INSERT INTO users(username, email, hashed_password)
		VALUES($1, $2, $3)
		RETURNING id, created_at
	`, user.Username, user.Email, user.HashedPassword).Scan(&user.ID, &user.CreatedAt)
}
