package repository

import (
	"database/sql"
	"finbrief/internal/model"
)

type InterestRepository struct {
	db *sql.DB
}

func NewInterestRepository(db *sql.DB) *InterestRepository {
	return &InterestRepository{db: db}
}

// Save inserts a watchlist entry. Returns false when the user already tracks
// the ticker.
func (r *InterestRepository) Save(interest *model.Interest) (bool, error) {
	err := r.db.QueryRow(`
		INSERT INTO user_interests(user_id, ticker, category)
		VALUES($1, $2, $3)
		ON CONFLICT (user_id, ticker) DO NOTHING
		RETURNING id, created_at
	`, interest.UserID, interest.Ticker, interest.Category).Scan(&interest.ID, &interest.CreatedAt)

	if err == sql.ErrNoRows {
		return false, nil
	}

	if err != nil {
		return false, err
	}

	return true, nil
}

func (r *InterestRepository) ListByUser(userID int64) ([]model.Interest, error) {
	rows, err := r.db.Query(`
		SELECT id, user_id, ticker, category, created_at
		FROM user_interests
		WHERE user_id = $1
		ORDER BY created_at ASC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var interests []model.Interest
	for rows.Next() {
		var i model.Interest
		if err := rows.Scan(&i.ID, &i.UserID, &i.Ticker, &i.Category, &i.CreatedAt); err != nil {
			return nil, err
		}
		interests = append(interests, i)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return interests, nil
}

// Delete removes a tracked ticker. Returns false when the entry did not
// exist.
func (r *InterestRepository) Delete(userID int64, ticker string) (bool, error) {
	res, err := r.db.Exec(`
		DELETE FROM user_interests WHERE user_id = $1 AND ticker = $2
	`, userID, ticker)
	if err != nil {
		return false, err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
