package handler

import (
	"time"

	"finbrief/internal/model"
	"finbrief/pkg/market"
)

type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Nickname string `json:"nickname"`
}

type UserResponse struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	Nickname  string `json:"nickname,omitempty"`
	CreatedAt string `json:"created_at"`
}

func newUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Nickname:  u.Nickname,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}

// LoginRequest follows the OAuth2 password form: the email travels in the
// username field. JSON bodies are accepted too.
type LoginRequest struct {
	Username string `form:"username" json:"username" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Nickname    string `json:"nickname"`
}

type InterestRequest struct {
	Ticker   string `json:"ticker" binding:"required"`
	Category string `json:"category"`
}

type InterestResponse struct {
	ID       int64  `json:"id"`
	Ticker   string `json:"ticker"`
	Category string `json:"category"`
	UserID   int64  `json:"user_id"`
}

type PositionRequest struct {
	Ticker   string  `json:"ticker" binding:"required"`
	AvgPrice float64 `json:"avg_price"`
	Quantity float64 `json:"quantity"`
}

type PositionResponse struct {
	ID       int64   `json:"id"`
	Ticker   string  `json:"ticker"`
	AvgPrice float64 `json:"avg_price"`
	Quantity float64 `json:"quantity"`
}

type HistoryResponse struct {
	Ticker  string                `json:"ticker"`
	History []market.HistoryPoint `json:"history"`
}

type BriefingResponse struct {
	Ticker   string `json:"ticker"`
	Briefing string `json:"briefing"`
}
