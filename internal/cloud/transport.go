package cloud

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/http/httpguts"

	"github.com/shaiso/cloudctl/internal/apierr"
)

// TransportConfig — параметры Transport.
type TransportConfig struct {
	// BaseURL — адрес сервиса без завершающего "/".
	BaseURL string

	// HTTPClient — клиент для запросов. Если nil, создаётся клиент с таймаутом 30s.
	HTTPClient *http.Client

	// Authorization — значение заголовка Authorization; пустое — не отправлять.
	Authorization string

	// Logger — логгер; если nil, используется slog.Default().
	Logger *slog.Logger
}

// Transport — общий HTTP-слой всех клиентов ресурсов.
//
// Любую ошибку возвращает как *apierr.BackendError своего семейства.
// Повторов не делает: таймауты и сетевые ошибки уходят наверх как RequestFailure.
type Transport struct {
	baseURL       string
	httpClient    *http.Client
	authorization string
	logger        *slog.Logger
}

// NewTransport создаёт Transport.
func NewTransport(cfg TransportConfig) *Transport {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Transport{
		baseURL:       strings.TrimRight(cfg.BaseURL, "/"),
		httpClient:    httpClient,
		authorization: cfg.Authorization,
		logger:        logger,
	}
}

// request — описание одного вызова API.
type request struct {
	family apierr.Family
	method string
	path   string
	query  url.Values

	body any       // JSON-тело
	raw  io.Reader // бинарное тело (application/octet-stream)
}

// --- HTTP helpers ---

func (t *Transport) get(ctx context.Context, f apierr.Family, path string, query url.Values, result any) error {
	return t.do(ctx, request{family: f, method: http.MethodGet, path: path, query: query}, result)
}

func (t *Transport) post(ctx context.Context, f apierr.Family, path string, body any, result any) error {
	return t.do(ctx, request{family: f, method: http.MethodPost, path: path, body: body}, result)
}

func (t *Transport) put(ctx context.Context, f apierr.Family, path string, body any, result any) error {
	return t.do(ctx, request{family: f, method: http.MethodPut, path: path, body: body}, result)
}

func (t *Transport) delete(ctx context.Context, f apierr.Family, path string, query url.Values, result any) error {
	return t.do(ctx, request{family: f, method: http.MethodDelete, path: path, query: query}, result)
}

func (t *Transport) do(ctx context.Context, r request, result any) error {
	target := t.baseURL + r.path
	if len(r.query) > 0 {
		target = target + "?" + r.query.Encode()
	}

	var bodyReader io.Reader
	contentType := ""
	switch {
	case r.raw != nil:
		bodyReader = r.raw
		contentType = "application/octet-stream"
	case r.body != nil:
		data, err := json.Marshal(r.body)
		if err != nil {
			return apierr.RequestFailure(r.family, fmt.Errorf("failed to marshal request: %w", err))
		}
		bodyReader = bytes.NewReader(data)
		contentType = "application/json"
	}

	req, err := http.NewRequestWithContext(ctx, r.method, target, bodyReader)
	if err != nil {
		return apierr.RequestFailure(r.family, fmt.Errorf("failed to create request: %w", err))
	}

	if t.authorization != "" {
		if !httpguts.ValidHeaderFieldValue(t.authorization) {
			return apierr.InvalidHeader(r.family, fmt.Errorf("%w: Authorization", apierr.ErrInvalidHeaderValue))
		}
		req.Header.Set("Authorization", t.authorization)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := t.httpClient.Do(req)
	if err != nil {
		t.logger.Debug("http request failed",
			"family", r.family, "method", r.method, "path", r.path, "error", err)
		return apierr.RequestFailure(r.family, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return apierr.RequestFailure(r.family, fmt.Errorf("failed to read response: %w", err))
	}

	t.logger.Debug("http request",
		"family", r.family,
		"method", r.method,
		"path", r.path,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	if !apierr.IsSuccess(resp.StatusCode) {
		return apierr.Decode(r.family, resp.StatusCode, data)
	}

	// 204 No Content
	if result == nil || len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, result); err != nil {
		return apierr.RequestFailure(r.family, fmt.Errorf("failed to decode response: %w", err))
	}
	return nil
}

// segment экранирует элемент пути.
func segment(s string) string {
	return url.PathEscape(s)
}
