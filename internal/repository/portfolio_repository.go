package repository

import (
	"database/sql"
	"finbrief/internal/model"
)

type PortfolioRepository struct {
	db *sql.DB
}

func NewPortfolioRepository(db *sql.DB) *PortfolioRepository {
	return &PortfolioRepository{db: db}
}

func (r *PortfolioRepository) Save(position *model.Position) error {
	return r.db.QueryRow(`
		INSERT INTO portfolios(owner_id, ticker, avg_price, quantity)
		VALUES($1, $2, $3, $4)
		RETURNING id
	`, position.OwnerID, position.Ticker, position.AvgPrice, position.Quantity).Scan(&position.ID)
}

func (r *PortfolioRepository) ListByOwner(ownerID int64) ([]model.Position, error) {
	rows, err := r.db.Query(`
		SELECT id, owner_id, ticker, avg_price, quantity
		FROM portfolios
		WHERE owner_id = $1
		ORDER BY id ASC
	`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var positions []model.Position
	for rows.Next() {
		var p model.Position
		if err := rows.Scan(&p.ID, &p.OwnerID, &p.Ticker, &p.AvgPrice, &p.Quantity); err != nil {
			return nil, err
		}
		positions = append(positions, p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return positions, nil
}

// Delete removes a position owned by the given user. Returns false when no
// such position exists.
func (r *PortfolioRepository) Delete(ownerID, id int64) (bool, error) {
	res, err := r.db.Exec(`
		DELETE FROM portfolios WHERE owner_id = $1 AND id = $2
	`, ownerID, id)
	if err != nil {
		return false, err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
