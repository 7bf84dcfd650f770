package handler

import (
	"log/slog"
	"net/http"

	"finbrief/internal/auth"
	"finbrief/internal/model"

	"github.com/gin-gonic/gin"
)

type InterestStore interface {
	Save(interest *model.Interest) (bool, error)
	ListByUser(userID int64) ([]model.Interest, error)
	Delete(userID int64, ticker string) (bool, error)
}

type InterestHandler struct {
	repository InterestStore
}

func NewInterestHandler(repository InterestStore) *InterestHandler {
	return &InterestHandler{repository: repository}
}

func (h *InterestHandler) Create(c *gin.Context) {
	var req InterestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	category := req.Category
	if category == "" {
		category = model.DefaultInterestCategory
	}

	interest := &model.Interest{
		UserID:   auth.CurrentUser(c).ID,
		Ticker:   req.Ticker,
		Category: category,
	}

	saved, err := h.repository.Save(interest)
	if err != nil {
		slog.Error("error saving interest", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if !saved {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Ticker already in interests"})
		return
	}

	c.JSON(http.StatusCreated, InterestResponse{
		ID:       interest.ID,
		Ticker:   interest.Ticker,
		Category: interest.Category,
		UserID:   interest.UserID,
	})
}

func (h *InterestHandler) List(c *gin.Context) {
	interests, err := h.repository.ListByUser(auth.CurrentUser(c).ID)
	if err != nil {
		slog.Error("error fetching interests", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	res := make([]InterestResponse, 0, len(interests))
	for _, i := range interests {
		res = append(res, InterestResponse{
			ID:       i.ID,
			Ticker:   i.Ticker,
			Category: i.Category,
			UserID:   i.UserID,
		})
	}

	c.JSON(http.StatusOK, res)
}

func (h *InterestHandler) Delete(c *gin.Context) {
	ticker := c.Param("ticker")

	deleted, err := h.repository.Delete(auth.CurrentUser(c).ID, ticker)
	if err != nil {
		slog.Error("error deleting interest", "ticker", ticker, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Ticker not in interests"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": ticker + " removed"})
}
