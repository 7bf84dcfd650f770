package model

import "time"

const DefaultInterestCategory = "stock"

type User struct {
	ID             int64
	Email          string
	HashedPassword string
	Nickname       string
	CreatedAt      time.Time
}

// Interest is one watchlist entry. (user_id, ticker) is unique.
type Interest struct {
	ID        int64
	UserID    int64
	Ticker    string
	Category  string
	CreatedAt time.Time
}

// Position is one portfolio holding. Quantity is fractional to allow
// fractional-share brokers.
type Position struct {
	ID       int64
	OwnerID  int64
	Ticker   string
	AvgPrice float64
	Quantity float64
}
