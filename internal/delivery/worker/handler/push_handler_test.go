package handler

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tracker/config"
	"tracker/internal/domain/constants"
	"tracker/internal/domain/entity"
	"tracker/internal/domain/service"
	mockSvc "tracker/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

var testMilestoneID = uuid.MustParse("6f1c2a8e-0b7e-4d1a-9a55-3a1c0e3f5b21")

func newTestPushHandler(t *testing.T) (*PushHandler, *mockSvc.MockSnapshotStore) {
	t.Helper()

	store := mockSvc.NewMockSnapshotStore(t)
	h := &PushHandler{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		store:  store,
	}

	return h, store
}

func stopCompletedEvent(progress *entity.DeliveryProgress) *service.MilestoneEvent {
	return &service.MilestoneEvent{
		MilestoneID: testMilestoneID.String(),
		Type:        entity.MilestoneStopCompleted,
		DeliveryID:  "delivery-1",
		Timestamp:   "2024-03-01T09:05:00Z",
		Payload:     entity.StopCompletedPayload{StopIndex: 0, TotalStops: 3},
		Progress:    progress,
	}
}

func pushBody(t *testing.T, data []byte, attributes map[string]string) []byte {
	t.Helper()

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = attributes
	msg.Message.MessageID = "msg-1"
	msg.Subscription = "projects/test/subscriptions/milestones"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return body
}

func eventBody(t *testing.T, event *service.MilestoneEvent) []byte {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	return pushBody(t, data, nil)
}

func doPush(h *PushHandler, body []byte, header http.Header) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestNewPushHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("requires a store", func(t *testing.T) {
		_, err := NewPushHandler(PushHandlerParams{Config: &config.Config{}, Logger: logger})
		assert.Error(t, err)
	})

	t.Run("verifies tokens for google outside develop", func(t *testing.T) {
		cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
		cfg.Env.Env = constants.EnvProduction

		h, err := NewPushHandler(PushHandlerParams{Config: cfg, Logger: logger, Store: mockSvc.NewMockSnapshotStore(t)})
		require.NoError(t, err)
		assert.True(t, h.verifyPushAuth)
	})

	t.Run("skips verification in develop", func(t *testing.T) {
		cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
		cfg.Env.Env = constants.EnvDevelop

		h, err := NewPushHandler(PushHandlerParams{Config: cfg, Logger: logger, Store: mockSvc.NewMockSnapshotStore(t)})
		require.NoError(t, err)
		assert.False(t, h.verifyPushAuth)
	})
}

func TestPushHandler_StoresMilestoneAndProgress(t *testing.T) {
	h, store := newTestPushHandler(t)
	progress := &entity.DeliveryProgress{DeliveryID: "delivery-1", RouteID: "route-1", CurrentStopIndex: 1, TotalStops: 3}

	store.EXPECT().AppendMilestone(mock.Anything, mock.MatchedBy(func(m entity.DeliveryMilestone) bool {
		return m.ID == testMilestoneID &&
			m.DeliveryID == "delivery-1" &&
			m.Timestamp.Equal(time.Date(2024, 3, 1, 9, 5, 0, 0, time.UTC)) &&
			m.Payload == entity.StopCompletedPayload{StopIndex: 0, TotalStops: 3}
	})).Return(nil).Once()
	store.EXPECT().SaveProgress(mock.Anything, mock.MatchedBy(func(p *entity.DeliveryProgress) bool {
		return p.DeliveryID == "delivery-1" && p.CurrentStopIndex == 1
	})).Return(nil).Once()

	rec := doPush(h, eventBody(t, stopCompletedEvent(progress)), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_WithoutProgress(t *testing.T) {
	h, store := newTestPushHandler(t)
	store.EXPECT().AppendMilestone(mock.Anything, mock.Anything).Return(nil).Once()

	rec := doPush(h, eventBody(t, stopCompletedEvent(nil)), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	store.AssertNotCalled(t, "SaveProgress", mock.Anything, mock.Anything)
}

func TestPushHandler_StoreFailureIsRetried(t *testing.T) {
	tests := []struct {
		name  string
		setup func(store *mockSvc.MockSnapshotStore)
	}{
		{
			name: "append fails",
			setup: func(store *mockSvc.MockSnapshotStore) {
				store.EXPECT().AppendMilestone(mock.Anything, mock.Anything).Return(errors.New("redis down")).Once()
			},
		},
		{
			name: "save progress fails",
			setup: func(store *mockSvc.MockSnapshotStore) {
				store.EXPECT().AppendMilestone(mock.Anything, mock.Anything).Return(nil).Once()
				store.EXPECT().SaveProgress(mock.Anything, mock.Anything).Return(errors.New("redis down")).Once()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, store := newTestPushHandler(t)
			tt.setup(store)

			progress := &entity.DeliveryProgress{DeliveryID: "delivery-1"}
			rec := doPush(h, eventBody(t, stopCompletedEvent(progress)), nil)

			assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		})
	}
}

func TestPushHandler_MalformedMessages(t *testing.T) {
	tests := []struct {
		name       string
		body       func(t *testing.T) []byte
		wantStatus int
	}{
		{
			name:       "not json",
			body:       func(t *testing.T) []byte { return []byte("{") },
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "data not base64",
			body: func(t *testing.T) []byte {
				return []byte(`{"message":{"data":"%%%","messageId":"msg-1"}}`)
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "unknown milestone type is acked",
			body: func(t *testing.T) []byte {
				return pushBody(t, []byte(`{"milestone_id":"x","type":"teleported","payload":{}}`), nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "invalid milestone id is acked",
			body: func(t *testing.T) []byte {
				event := stopCompletedEvent(nil)
				event.MilestoneID = "not-a-uuid"

				return eventBody(t, event)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "invalid timestamp is acked",
			body: func(t *testing.T) []byte {
				event := stopCompletedEvent(nil)
				event.Timestamp = "yesterday"

				return eventBody(t, event)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, store := newTestPushHandler(t)

			rec := doPush(h, tt.body(t), nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
			store.AssertNotCalled(t, "AppendMilestone", mock.Anything, mock.Anything)
		})
	}
}

func TestPushHandler_RequestID(t *testing.T) {
	h, _ := newTestPushHandler(t)
	event := stopCompletedEvent(nil)

	var msg PubSubMessage
	msg.Message.Attributes = map[string]string{"request_id": "req-9"}
	assert.Equal(t, "req-9", h.extractRequestID(context.Background(), &msg, event))

	msg.Message.Attributes = nil
	assert.Equal(t, testMilestoneID.String(), h.extractRequestID(context.Background(), &msg, event))
}

func TestPushHandler_VerifyPushAuth(t *testing.T) {
	validPayload := func(ctx context.Context, token, audience string) (*idtoken.Payload, error) {
		if token != "good-token" {
			return nil, errors.New("bad signature")
		}
		if audience != "http://example.com/push" {
			return nil, errors.Errorf("unexpected audience %s", audience)
		}

		return &idtoken.Payload{
			Issuer: "https://accounts.google.com",
			Claims: map[string]any{"email_verified": true},
		}, nil
	}

	tests := []struct {
		name       string
		header     http.Header
		validator  tokenValidator
		wantStatus int
	}{
		{
			name:       "missing header",
			validator:  validPayload,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "not a bearer token",
			header:     http.Header{"Authorization": {"Basic abc"}},
			validator:  validPayload,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "invalid token",
			header:     http.Header{"Authorization": {"Bearer forged"}},
			validator:  validPayload,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "wrong issuer",
			header: http.Header{"Authorization": {"Bearer good-token"}},
			validator: func(ctx context.Context, token, audience string) (*idtoken.Payload, error) {
				return &idtoken.Payload{Issuer: "https://evil.example.com"}, nil
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "unverified email",
			header: http.Header{"Authorization": {"Bearer good-token"}},
			validator: func(ctx context.Context, token, audience string) (*idtoken.Payload, error) {
				return &idtoken.Payload{
					Issuer: "accounts.google.com",
					Claims: map[string]any{"email_verified": false},
				}, nil
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "valid token",
			header:     http.Header{"Authorization": {"Bearer good-token"}},
			validator:  validPayload,
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, store := newTestPushHandler(t)
			h.verifyPushAuth = true
			h.validateToken = tt.validator
			if tt.wantStatus == http.StatusOK {
				store.EXPECT().AppendMilestone(mock.Anything, mock.Anything).Return(nil).Once()
			}

			rec := doPush(h, eventBody(t, stopCompletedEvent(nil)), tt.header)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
