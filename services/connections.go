// Package services holds the pieces of business logic that sit between the
// HTTP handlers and MongoDB: the connection-request state machine and the
// shelter geo index.
package services

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"nutrilife/models"
)

// Errors the connection state machine can return. Handlers map these onto
// HTTP statuses (400/403/404/409).
var (
	ErrSelfRequest      = errors.New("cannot send request to yourself")
	ErrUserNotFound     = errors.New("user not found")
	ErrRequestPending   = errors.New("connection request already sent")
	ErrAlreadyConnected = errors.New("already connected")
	ErrRequestNotFound  = errors.New("connection request not found")
	ErrAlreadyHandled   = errors.New("request already handled")
	ErrInvalidDecision  = errors.New("status must be accepted or rejected")
	ErrNotRecipient     = errors.New("only the recipient can respond")
)

// ConnectionStore is the persistence collaborator for connection requests.
type ConnectionStore interface {
	// FindActiveByPair returns the pending or accepted request for the
	// ordered (from, to) pair, or nil when none exists. Rejected requests
	// are never returned: they do not block a retry.
	FindActiveByPair(ctx context.Context, fromUserID, toUserID string) (*models.ConnectionRequest, error)
	Insert(ctx context.Context, req *models.ConnectionRequest) error
	FindByID(ctx context.Context, id string) (*models.ConnectionRequest, error)
	SetStatus(ctx context.Context, id string, status models.ConnectionStatus, respondedAt int64) error
	// ListInvolving returns every request where the user is sender or
	// receiver, in any order.
	ListInvolving(ctx context.Context, userID string) ([]models.ConnectionRequest, error)
}

// UserChecker answers whether a user id exists.
type UserChecker interface {
	UserExists(ctx context.Context, userID string) (bool, error)
}

type ConnectionService struct {
	store ConnectionStore
	users UserChecker
}

func NewConnectionService(store ConnectionStore, users UserChecker) *ConnectionService {
	return &ConnectionService{store: store, users: users}
}

// Create opens a new pending request from one user to another.
//
// Fails on self-requests, on unknown users, and when a pending or accepted
// request already exists for the same ordered pair. A previously rejected
// request never blocks a new one. The message is trimmed and silently
// truncated to 500 characters.
func (s *ConnectionService) Create(ctx context.Context, fromUserID, toUserID, message string) (*models.ConnectionRequest, error) {
	if fromUserID == toUserID {
		return nil, ErrSelfRequest
	}

	for _, id := range []string{fromUserID, toUserID} {
		exists, err := s.users.UserExists(ctx, id)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, ErrUserNotFound
		}
	}

	existing, err := s.store.FindActiveByPair(ctx, fromUserID, toUserID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if existing.Status == models.ConnectionAccepted {
			return nil, ErrAlreadyConnected
		}
		return nil, ErrRequestPending
	}

	message = strings.TrimSpace(message)
	if runes := []rune(message); len(runes) > models.MaxConnectionMessageLen {
		message = string(runes[:models.MaxConnectionMessageLen])
	}

	req := &models.ConnectionRequest{
		Message:   message,
		Status:    models.ConnectionPending,
		CreatedAt: time.Now().Unix(),
	}
	if err := setPairIDs(req, fromUserID, toUserID); err != nil {
		return nil, err
	}
	if err := s.store.Insert(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

// Respond resolves a pending request. Only the recipient may respond, the
// only valid decisions are accepted and rejected, and a request can be
// resolved exactly once.
func (s *ConnectionService) Respond(ctx context.Context, requestID, responderID string, decision models.ConnectionStatus) (*models.ConnectionRequest, error) {
	// Invalid decisions are rejected before any lookup.
	if decision != models.ConnectionAccepted && decision != models.ConnectionRejected {
		return nil, ErrInvalidDecision
	}

	req, err := s.store.FindByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, ErrRequestNotFound
	}
	if req.ToUserID.Hex() != responderID {
		return nil, ErrNotRecipient
	}
	if req.Status != models.ConnectionPending {
		return nil, ErrAlreadyHandled
	}

	respondedAt := time.Now().Unix()
	if err := s.store.SetStatus(ctx, requestID, decision, respondedAt); err != nil {
		return nil, err
	}

	req.Status = decision
	req.RespondedAt = &respondedAt
	return req, nil
}

// ListForUser returns every request the user sent or received, tagged with
// its direction and ordered newest first.
func (s *ConnectionService) ListForUser(ctx context.Context, userID string) ([]models.ConnectionRequest, error) {
	list, err := s.store.ListInvolving(ctx, userID)
	if err != nil {
		return nil, err
	}

	for i := range list {
		if list[i].FromUserID.Hex() == userID {
			list[i].Direction = models.DirectionSent
		} else {
			list[i].Direction = models.DirectionReceived
		}
	}

	sort.SliceStable(list, func(i, j int) bool {
		return list[i].CreatedAt > list[j].CreatedAt
	})
	return list, nil
}

func setPairIDs(req *models.ConnectionRequest, fromUserID, toUserID string) error {
	from, err := primitive.ObjectIDFromHex(fromUserID)
	if err != nil {
		return ErrUserNotFound
	}
	to, err := primitive.ObjectIDFromHex(toUserID)
	if err != nil {
		return ErrUserNotFound
	}
	req.FromUserID = from
	req.ToUserID = to
	return nil
}
