package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"tracker/config"
	deliverycontext "tracker/internal/delivery/context"
	"tracker/internal/domain/constants"
	"tracker/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
		OrderingKey string            `json:"orderingKey,omitempty"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

func newRetryableError(err error) error {
	return &retryableError{err: err}
}

func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// tokenValidator checks a Google-signed push token for audience
type tokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler persists milestones pushed by Pub/Sub into the snapshot store
type PushHandler struct {
	verifyPushAuth bool
	validateToken  tokenValidator
	logger         *slog.Logger
	store          service.SnapshotStore
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Store  service.SnapshotStore
}

// NewPushHandler creates a new Pub/Sub push handler. The worker has nothing to
// do without a snapshot store, so one is required.
func NewPushHandler(params PushHandlerParams) (*PushHandler, error) {
	if params.Store == nil {
		return nil, errors.New("redis is required for the milestone worker")
	}

	// Only real Google push requests carry a signed token
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		validateToken:  idtoken.Validate,
		logger:         params.Logger,
		store:          params.Store,
	}, nil
}

// HandlePush handles incoming Pub/Sub push messages. Pub/Sub retries on any
// non-2xx answer, so only transient failures answer 503.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()
	logger := deliverycontext.Logger(ctx, h.logger)

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.MilestoneEvent
	if err := json.Unmarshal(data, &event); err != nil {
		// a malformed event never becomes valid; ack it
		logger.Error("[Worker] Failed to parse milestone event",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusOK)
	}

	requestID := h.extractRequestID(ctx, &pushMsg, &event)
	ctx, reqLogger := deliverycontext.Scope(ctx, requestID, h.logger)

	reqLogger.Info("[Worker] Processing milestone",
		slog.String("milestone_id", event.MilestoneID),
		slog.String("type", string(event.Type)),
		slog.String("delivery_id", event.DeliveryID),
	)

	if err := h.processMilestone(ctx, &event); err != nil {
		reqLogger.Error("[Worker] Failed to process milestone",
			slog.String("milestone_id", event.MilestoneID),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	return c.NoContent(http.StatusOK)
}

// extractRequestID prefers the message attribute, then the request header, then the milestone ID
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.MilestoneEvent) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if requestID := deliverycontext.RequestIDFrom(ctx); requestID != "" {
		return requestID
	}

	return event.MilestoneID
}

func (h *PushHandler) processMilestone(ctx context.Context, event *service.MilestoneEvent) error {
	milestone, err := event.Milestone()
	if err != nil {
		return err
	}

	if err := h.store.AppendMilestone(ctx, milestone); err != nil {
		return newRetryableError(err)
	}

	if event.Progress == nil {
		return nil
	}

	if err := h.store.SaveProgress(ctx, event.Progress); err != nil {
		return newRetryableError(err)
	}

	return nil
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience is the URL of this endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := h.validateToken(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
