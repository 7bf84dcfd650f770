package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"finbrief/internal/auth"
	"finbrief/internal/model"

	"github.com/gin-gonic/gin"
)

type PositionStore interface {
	Save(position *model.Position) error
	ListByOwner(ownerID int64) ([]model.Position, error)
	Delete(ownerID, id int64) (bool, error)
}

type PortfolioHandler struct {
	repository PositionStore
}

func NewPortfolioHandler(repository PositionStore) *PortfolioHandler {
	return &PortfolioHandler{repository: repository}
}

func (h *PortfolioHandler) Create(c *gin.Context) {
	var req PositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	position := &model.Position{
		OwnerID:  auth.CurrentUser(c).ID,
		Ticker:   req.Ticker,
		AvgPrice: req.AvgPrice,
		Quantity: req.Quantity,
	}

	if err := h.repository.Save(position); err != nil {
		slog.Error("error saving position", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusCreated, PositionResponse{
		ID:       position.ID,
		Ticker:   position.Ticker,
		AvgPrice: position.AvgPrice,
		Quantity: position.Quantity,
	})
}

func (h *PortfolioHandler) List(c *gin.Context) {
	positions, err := h.repository.ListByOwner(auth.CurrentUser(c).ID)
	if err != nil {
		slog.Error("error fetching portfolio", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	res := make([]PositionResponse, 0, len(positions))
	for _, p := range positions {
		res = append(res, PositionResponse{
			ID:       p.ID,
			Ticker:   p.Ticker,
			AvgPrice: p.AvgPrice,
			Quantity: p.Quantity,
		})
	}

	c.JSON(http.StatusOK, res)
}

func (h *PortfolioHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid position id"})
		return
	}

	deleted, err := h.repository.Delete(auth.CurrentUser(c).ID, id)
	if err != nil {
		slog.Error("error deleting position", "position_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Position not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "position removed"})
}
