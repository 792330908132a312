package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"nutrilife/models"
	"nutrilife/services"
)

// GetConnections lists every request the caller sent or received, newest
// first, each tagged with its direction.
func GetConnections(c *gin.Context) {
	userID := c.GetString("userId")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	list, err := connectionService.ListForUser(ctx, userID)
	if err != nil {
		log.Printf("[GetConnections] Failed to list connections: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch connections"})
		return
	}
	if list == nil {
		list = []models.ConnectionRequest{}
	}

	c.JSON(http.StatusOK, list)
}

type CreateConnectionRequest struct {
	ToUserID string `json:"toUserId" binding:"required"`
	Message  string `json:"message"`
}

// CreateConnection opens a pending connection request from the caller.
func CreateConnection(c *gin.Context) {
	var req CreateConnectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "toUserId is required"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	created, err := connectionService.Create(ctx, c.GetString("userId"), req.ToUserID, req.Message)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSelfRequest):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot send request to yourself"})
		case errors.Is(err, services.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		case errors.Is(err, services.ErrRequestPending):
			c.JSON(http.StatusConflict, gin.H{"error": "Connection request already sent"})
		case errors.Is(err, services.ErrAlreadyConnected):
			c.JSON(http.StatusConflict, gin.H{"error": "Already connected"})
		default:
			log.Printf("[CreateConnection] Failed to create connection: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create connection request"})
		}
		return
	}

	c.JSON(http.StatusCreated, created)
}

type RespondConnectionRequest struct {
	Status models.ConnectionStatus `json:"status" binding:"required"`
}

// RespondConnection lets the recipient accept or reject a pending request.
func RespondConnection(c *gin.Context) {
	var req RespondConnectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status must be accepted or rejected"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	updated, err := connectionService.Respond(ctx, c.Param("id"), c.GetString("userId"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidDecision):
			c.JSON(http.StatusBadRequest, gin.H{"error": "status must be accepted or rejected"})
		case errors.Is(err, services.ErrRequestNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Connection request not found"})
		case errors.Is(err, services.ErrNotRecipient):
			c.JSON(http.StatusForbidden, gin.H{"error": "Only the recipient can respond"})
		case errors.Is(err, services.ErrAlreadyHandled):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Request already handled"})
		default:
			log.Printf("[RespondConnection] Failed to respond: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update connection request"})
		}
		return
	}

	c.JSON(http.StatusOK, updated)
}
