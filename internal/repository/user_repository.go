package repository

import (
	"database/sql"
	"finbrief/internal/model"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByEmail(email string) (*model.User, error) {
	var u model.User
	var nickname sql.NullString
	err := r.db.QueryRow(`
		SELECT id, email, hashed_password, nickname, created_at
		FROM users
		WHERE email = $1
	`, email).Scan(&u.ID, &u.Email, &u.HashedPassword, &nickname, &u.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	u.Nickname = nickname.String
	return &u, nil
}

func (r *UserRepository) Create(user *model.User) error {
	return r.db.QueryRow(`
		INSERT INTO users(email, hashed_password, nickname)
		VALUES($1, $2, $3)
		RETURNING id, created_at
	`, user.Email, user.HashedPassword, user.Nickname).Scan(&user.ID, &user.CreatedAt)
}
