package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"matchclient/internal/entities"
	retrierconfig "matchclient/pkg/retrier"
	"matchclient/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "marketplace-backend"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 1 * time.Second
	maxElapsedTime  = 3 * time.Second
	randomization   = 0.5
	multiplier      = 2.0

	limiterPollStep = 50 * time.Millisecond
)

var ErrUnsupportedRole = errors.New("role has no request buckets")

// Gateway — единственная точка выхода клиента в HTTP-контракт бэкенда:
// таймаут на запрос, Authorization, нормализация ошибок, ретраи, метрики.
type Gateway struct {
	httpClient httpDoer
	baseURL    string
	token      string
	retrier    retrier
	limiter    limiter
}

type Options struct {
	BaseURL        string
	Token          string
	RequestTimeout time.Duration
	Limiter        limiter
}

func New(opts Options) *Gateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryableError,
	}

	return &Gateway{
		httpClient: &http.Client{Timeout: opts.RequestTimeout},
		baseURL:    opts.BaseURL,
		token:      opts.Token,
		retrier:    backoff_adapter.New(retryConfig),
		limiter:    opts.Limiter,
	}
}

// NewWithDoer используется в тестах и в wire для подмены транспорта.
func NewWithDoer(client httpDoer, opts Options) *Gateway {
	gw := New(opts)
	gw.httpClient = client
	return gw
}

// DeferPush просит бэкенд отложить пуш по заявке/офферу на время ожидания
// в приложении. Возвращает push_defer_until, если сервер его назначил.
func (g *Gateway) DeferPush(ctx context.Context, role entities.Role, subjectID string, seconds int) (*time.Time, error) {
	var path string
	if role == entities.RoleDriver {
		path = fmt.Sprintf("/offers/%s/defer-push", subjectID)
	} else {
		path = fmt.Sprintf("/requests/%s/defer-push", subjectID)
	}

	var resp deferPushResponse
	err := g.call(ctx, "DeferPush", http.MethodPost, path, nil, deferPushRequest{Seconds: seconds}, &resp)
	if err != nil {
		return nil, fmt.Errorf("gateway backend, defer push: %s: %w", subjectID, err)
	}
	return resp.PushDeferUntil, nil
}

func (g *Gateway) RequestMatchStatus(ctx context.Context, requestID string) (entities.MatchStatusReply, error) {
	var resp matchStatusResponse
	err := g.call(ctx, "RequestMatchStatus", http.MethodGet, fmt.Sprintf("/requests/%s/match-status", requestID), nil, nil, &resp)
	if err != nil {
		return entities.MatchStatusReply{}, fmt.Errorf("gateway backend, request match status: %s: %w", requestID, err)
	}
	return toMatchReply(&resp), nil
}

func (g *Gateway) OfferMatchStatus(ctx context.Context, offerID string) (entities.MatchStatusReply, error) {
	var resp matchStatusResponse
	err := g.call(ctx, "OfferMatchStatus", http.MethodGet, fmt.Sprintf("/offers/%s/match-status", offerID), nil, nil, &resp)
	if err != nil {
		return entities.MatchStatusReply{}, fmt.Errorf("gateway backend, offer match status: %s: %w", offerID, err)
	}
	return toMatchReply(&resp), nil
}

// ListOwnRequests отдает заявки владельца по UI-корзине.
// Терминальная корзина у sender называется delivered, у rider — completed,
// шлюз принимает оба имени и подставляет правильное для роли.
func (g *Gateway) ListOwnRequests(ctx context.Context, role entities.Role, bucket entities.RequestBucket, limit, offset int) ([]entities.RequestRow, error) {
	var base string
	switch role {
	case entities.RoleSender:
		base = "/sender/requests"
		if bucket == entities.BucketCompleted {
			bucket = entities.BucketDelivered
		}
	case entities.RoleRider:
		base = "/rider/requests"
		if bucket == entities.BucketDelivered {
			bucket = entities.BucketCompleted
		}
	default:
		return nil, fmt.Errorf("gateway backend, list requests: %s: %w", role, ErrUnsupportedRole)
	}

	query := url.Values{}
	query.Set("status", bucket.String())
	query.Set("limit", strconv.Itoa(limit))
	query.Set("offset", strconv.Itoa(offset))

	var resp []requestRowResponse
	err := g.call(ctx, "ListOwnRequests", http.MethodGet, base, query, nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("gateway backend, list requests: %w", err)
	}
	return toRequestRowList(resp), nil
}

func (g *Gateway) ListOwnOffers(ctx context.Context, status entities.OfferStatus, limit, offset int) ([]entities.OfferRow, error) {
	query := url.Values{}
	if status != "" {
		query.Set("status", status.String())
	}
	query.Set("limit", strconv.Itoa(limit))
	query.Set("offset", strconv.Itoa(offset))

	var resp []offerRowResponse
	err := g.call(ctx, "ListOwnOffers", http.MethodGet, "/offers", query, nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("gateway backend, list offers: %w", err)
	}
	return toOfferRowList(resp), nil
}

func (g *Gateway) AssignmentByID(ctx context.Context, assignmentID string) (*entities.AssignmentDetail, error) {
	var resp assignmentDetailResponse
	err := g.call(ctx, "AssignmentByID", http.MethodGet, fmt.Sprintf("/assignments/%s", assignmentID), nil, nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("gateway backend, assignment: %s: %w", assignmentID, err)
	}
	return toAssignmentDetail(&resp), nil
}

// AssignmentByRequest отвечает 404, пока заявка не сматчена.
func (g *Gateway) AssignmentByRequest(ctx context.Context, requestID string) (*entities.AssignmentDetail, error) {
	var resp assignmentDetailResponse
	err := g.call(ctx, "AssignmentByRequest", http.MethodGet, fmt.Sprintf("/requests/%s/assignment", requestID), nil, nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("gateway backend, assignment by request: %s: %w", requestID, err)
	}
	return toAssignmentDetail(&resp), nil
}

func (g *Gateway) UpdateAssignmentStatus(ctx context.Context, assignmentID string, status entities.AssignmentStatus) (*entities.AssignmentDetail, error) {
	var resp assignmentDetailResponse
	err := g.call(ctx, "UpdateAssignmentStatus", http.MethodPatch, fmt.Sprintf("/assignments/%s/status", assignmentID), nil, updateStatusRequest{Status: status.String()}, &resp)
	if err != nil {
		return nil, fmt.Errorf("gateway backend, update status: %s -> %s: %w", assignmentID, status, err)
	}
	return toAssignmentDetail(&resp), nil
}

func (g *Gateway) TriggerClearing(ctx context.Context, now time.Time) (entities.ClearingResult, error) {
	var resp clearingResponse
	err := g.call(ctx, "TriggerClearing", http.MethodPost, "/auction/clear", nil, clearingRequest{NowTS: now.Unix()}, &resp)
	if err != nil {
		return entities.ClearingResult{}, fmt.Errorf("gateway backend, trigger clearing: %w", err)
	}
	return toClearingResult(&resp), nil
}

func (g *Gateway) call(ctx context.Context, method, httpMethod, path string, query url.Values, body, out interface{}) error {
	if err := g.waitForSlot(ctx); err != nil {
		return err
	}

	return g.executeWithMetrics(ctx, method, func(ctx context.Context) error {
		return g.doRequest(ctx, httpMethod, path, query, body, out)
	})
}

func (g *Gateway) doRequest(ctx context.Context, httpMethod, path string, query url.Values, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	fullURL := g.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, httpMethod, fullURL, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if g.token != "" {
		req.Header.Set("Authorization", "Bearer "+g.token)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return normalizeError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response body: %w", err)
	}
	return nil
}

// normalizeError вычитывает структурированное тело {detail} и сохраняет
// его дословно: терминальные пути показывают эту строку пользователю.
func normalizeError(resp *http.Response) error {
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return &APIError{StatusCode: resp.StatusCode, Detail: resp.Status}
	}

	var body errorResponse
	if err := json.Unmarshal(raw, &body); err != nil || body.Detail == "" {
		detail := string(bytes.TrimSpace(raw))
		if detail == "" {
			detail = resp.Status
		}
		return &APIError{StatusCode: resp.StatusCode, Detail: detail}
	}
	return &APIError{StatusCode: resp.StatusCode, Detail: body.Detail}
}

// waitForSlot притормаживает исходящий запрос, пока token bucket пуст.
func (g *Gateway) waitForSlot(ctx context.Context) error {
	if g.limiter == nil {
		return nil
	}
	for !g.limiter.Allow() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(limiterPollStep):
		}
	}
	return nil
}

func (g *Gateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	code := statusLabel(err)
	BackendRequestDuration.WithLabelValues(serviceName, method, code).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		BackendRetriesTotal.WithLabelValues(serviceName, method, code).Inc()
	}

	return err
}

func statusLabel(err error) string {
	if err == nil {
		return "200"
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return strconv.Itoa(apiErr.StatusCode)
	}
	return "transport"
}
