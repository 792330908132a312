package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"nutrilife/models"
)

// fakeConnectionStore keeps requests in memory, mirroring the Mongo store's
// behavior closely enough for the state machine.
type fakeConnectionStore struct {
	requests []*models.ConnectionRequest
}

func (f *fakeConnectionStore) FindActiveByPair(ctx context.Context, fromUserID, toUserID string) (*models.ConnectionRequest, error) {
	for _, req := range f.requests {
		if req.FromUserID.Hex() == fromUserID && req.ToUserID.Hex() == toUserID &&
			(req.Status == models.ConnectionPending || req.Status == models.ConnectionAccepted) {
			copy := *req
			return &copy, nil
		}
	}
	return nil, nil
}

func (f *fakeConnectionStore) Insert(ctx context.Context, req *models.ConnectionRequest) error {
	if req.ID.IsZero() {
		req.ID = primitive.NewObjectID()
	}
	stored := *req
	f.requests = append(f.requests, &stored)
	return nil
}

func (f *fakeConnectionStore) FindByID(ctx context.Context, id string) (*models.ConnectionRequest, error) {
	for _, req := range f.requests {
		if req.ID.Hex() == id {
			copy := *req
			return &copy, nil
		}
	}
	return nil, nil
}

func (f *fakeConnectionStore) SetStatus(ctx context.Context, id string, status models.ConnectionStatus, respondedAt int64) error {
	for _, req := range f.requests {
		if req.ID.Hex() == id {
			req.Status = status
			req.RespondedAt = &respondedAt
			return nil
		}
	}
	return ErrRequestNotFound
}

func (f *fakeConnectionStore) ListInvolving(ctx context.Context, userID string) ([]models.ConnectionRequest, error) {
	var list []models.ConnectionRequest
	for _, req := range f.requests {
		if req.FromUserID.Hex() == userID || req.ToUserID.Hex() == userID {
			list = append(list, *req)
		}
	}
	return list, nil
}

type fakeUserChecker struct {
	users map[string]bool
}

func (f *fakeUserChecker) UserExists(ctx context.Context, userID string) (bool, error) {
	return f.users[userID], nil
}

func newTestService(userIDs ...string) (*ConnectionService, *fakeConnectionStore) {
	users := make(map[string]bool, len(userIDs))
	for _, id := range userIDs {
		users[id] = true
	}
	store := &fakeConnectionStore{}
	return NewConnectionService(store, &fakeUserChecker{users: users}), store
}

func TestCreateConnection(t *testing.T) {
	ctx := context.Background()
	alice := primitive.NewObjectID().Hex()
	bob := primitive.NewObjectID().Hex()
	svc, _ := newTestService(alice, bob)

	req, err := svc.Create(ctx, alice, bob, "  hi  ")
	require.NoError(t, err)

	assert.Equal(t, models.ConnectionPending, req.Status)
	assert.Equal(t, alice, req.FromUserID.Hex())
	assert.Equal(t, bob, req.ToUserID.Hex())
	assert.Equal(t, "hi", req.Message)
	assert.NotZero(t, req.CreatedAt)
	assert.Nil(t, req.RespondedAt)
}

func TestCreateConnectionSelfRequest(t *testing.T) {
	ctx := context.Background()
	alice := primitive.NewObjectID().Hex()
	svc, _ := newTestService(alice)

	_, err := svc.Create(ctx, alice, alice, "hello me")
	assert.ErrorIs(t, err, ErrSelfRequest)
}

func TestCreateConnectionUnknownUser(t *testing.T) {
	ctx := context.Background()
	alice := primitive.NewObjectID().Hex()
	stranger := primitive.NewObjectID().Hex()
	svc, _ := newTestService(alice)

	_, err := svc.Create(ctx, alice, stranger, "")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = svc.Create(ctx, stranger, alice, "")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestCreateConnectionDuplicatePending(t *testing.T) {
	ctx := context.Background()
	alice := primitive.NewObjectID().Hex()
	bob := primitive.NewObjectID().Hex()
	svc, _ := newTestService(alice, bob)

	_, err := svc.Create(ctx, alice, bob, "first")
	require.NoError(t, err)

	_, err = svc.Create(ctx, alice, bob, "second")
	assert.ErrorIs(t, err, ErrRequestPending)
}

func TestCreateConnectionAlreadyConnected(t *testing.T) {
	ctx := context.Background()
	alice := primitive.NewObjectID().Hex()
	bob := primitive.NewObjectID().Hex()
	svc, _ := newTestService(alice, bob)

	req, err := svc.Create(ctx, alice, bob, "hi")
	require.NoError(t, err)

	_, err = svc.Respond(ctx, req.ID.Hex(), bob, models.ConnectionAccepted)
	require.NoError(t, err)

	_, err = svc.Create(ctx, alice, bob, "hi again")
	assert.ErrorIs(t, err, ErrAlreadyConnected)
}

func TestCreateConnectionAllowedAfterRejection(t *testing.T) {
	ctx := context.Background()
	alice := primitive.NewObjectID().Hex()
	bob := primitive.NewObjectID().Hex()
	svc, _ := newTestService(alice, bob)

	req, err := svc.Create(ctx, alice, bob, "hi")
	require.NoError(t, err)

	_, err = svc.Respond(ctx, req.ID.Hex(), bob, models.ConnectionRejected)
	require.NoError(t, err)

	// A rejected request never blocks a retry.
	retry, err := svc.Create(ctx, alice, bob, "hi again")
	require.NoError(t, err)
	assert.Equal(t, models.ConnectionPending, retry.Status)
}

func TestCreateConnectionReverseDirectionNotBlocked(t *testing.T) {
	ctx := context.Background()
	alice := primitive.NewObjectID().Hex()
	bob := primitive.NewObjectID().Hex()
	svc, _ := newTestService(alice, bob)

	_, err := svc.Create(ctx, alice, bob, "")
	require.NoError(t, err)

	// The duplicate check is on the ordered pair only.
	_, err = svc.Create(ctx, bob, alice, "")
	require.NoError(t, err)
}

func TestCreateConnectionTruncatesMessage(t *testing.T) {
	ctx := context.Background()
	alice := primitive.NewObjectID().Hex()
	bob := primitive.NewObjectID().Hex()
	svc, _ := newTestService(alice, bob)

	long := strings.Repeat("x", 600)
	req, err := svc.Create(ctx, alice, bob, long)
	require.NoError(t, err)
	assert.Len(t, req.Message, models.MaxConnectionMessageLen)
}

func TestRespondInvalidDecision(t *testing.T) {
	ctx := context.Background()
	alice := primitive.NewObjectID().Hex()
	bob := primitive.NewObjectID().Hex()
	svc, _ := newTestService(alice, bob)

	req, err := svc.Create(ctx, alice, bob, "")
	require.NoError(t, err)

	_, err = svc.Respond(ctx, req.ID.Hex(), bob, models.ConnectionPending)
	assert.ErrorIs(t, err, ErrInvalidDecision)

	_, err = svc.Respond(ctx, req.ID.Hex(), bob, models.ConnectionStatus("maybe"))
	assert.ErrorIs(t, err, ErrInvalidDecision)
}

func TestRespondUnknownRequest(t *testing.T) {
	ctx := context.Background()
	alice := primitive.NewObjectID().Hex()
	svc, _ := newTestService(alice)

	_, err := svc.Respond(ctx, primitive.NewObjectID().Hex(), alice, models.ConnectionAccepted)
	assert.ErrorIs(t, err, ErrRequestNotFound)
}

func TestRespondOnlyRecipient(t *testing.T) {
	ctx := context.Background()
	alice := primitive.NewObjectID().Hex()
	bob := primitive.NewObjectID().Hex()
	svc, _ := newTestService(alice, bob)

	req, err := svc.Create(ctx, alice, bob, "")
	require.NoError(t, err)

	// The sender cannot resolve their own request.
	_, err = svc.Respond(ctx, req.ID.Hex(), alice, models.ConnectionAccepted)
	assert.ErrorIs(t, err, ErrNotRecipient)
}

func TestRespondIsTerminal(t *testing.T) {
	ctx := context.Background()
	alice := primitive.NewObjectID().Hex()
	bob := primitive.NewObjectID().Hex()
	svc, _ := newTestService(alice, bob)

	req, err := svc.Create(ctx, alice, bob, "")
	require.NoError(t, err)

	updated, err := svc.Respond(ctx, req.ID.Hex(), bob, models.ConnectionAccepted)
	require.NoError(t, err)
	assert.Equal(t, models.ConnectionAccepted, updated.Status)
	require.NotNil(t, updated.RespondedAt)

	// A second respond always fails, whatever the decision.
	_, err = svc.Respond(ctx, req.ID.Hex(), bob, models.ConnectionAccepted)
	assert.ErrorIs(t, err, ErrAlreadyHandled)

	_, err = svc.Respond(ctx, req.ID.Hex(), bob, models.ConnectionRejected)
	assert.ErrorIs(t, err, ErrAlreadyHandled)
}

func TestListForUserDirectionAndOrder(t *testing.T) {
	ctx := context.Background()
	alice := primitive.NewObjectID().Hex()
	bob := primitive.NewObjectID().Hex()
	carol := primitive.NewObjectID().Hex()
	svc, store := newTestService(alice, bob, carol)

	first, err := svc.Create(ctx, alice, bob, "to bob")
	require.NoError(t, err)
	second, err := svc.Create(ctx, carol, alice, "to alice")
	require.NoError(t, err)

	// Force distinct creation times so the ordering is deterministic.
	store.requests[0].CreatedAt = 100
	store.requests[1].CreatedAt = 200

	list, err := svc.ListForUser(ctx, alice)
	require.NoError(t, err)
	require.Len(t, list, 2)

	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, models.DirectionReceived, list[0].Direction)
	assert.Equal(t, first.ID, list[1].ID)
	assert.Equal(t, models.DirectionSent, list[1].Direction)

	// Bob only sees the request addressed to him.
	bobList, err := svc.ListForUser(ctx, bob)
	require.NoError(t, err)
	require.Len(t, bobList, 1)
	assert.Equal(t, models.DirectionReceived, bobList[0].Direction)
}

func TestFullScenario(t *testing.T) {
	// A sends to B, B accepts, A tries again and gets "already connected".
	ctx := context.Background()
	alice := primitive.NewObjectID().Hex()
	bob := primitive.NewObjectID().Hex()
	svc, _ := newTestService(alice, bob)

	req, err := svc.Create(ctx, alice, bob, "hi")
	require.NoError(t, err)

	_, err = svc.Respond(ctx, req.ID.Hex(), bob, models.ConnectionAccepted)
	require.NoError(t, err)

	_, err = svc.Create(ctx, alice, bob, "hi again")
	assert.ErrorIs(t, err, ErrAlreadyConnected)
}
