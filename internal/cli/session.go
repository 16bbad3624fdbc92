package cli

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/shaiso/cloudctl/internal/apierr"
	"github.com/shaiso/cloudctl/internal/auth"
	"github.com/shaiso/cloudctl/internal/cloud"
	"github.com/shaiso/cloudctl/internal/config"
	"github.com/shaiso/cloudctl/internal/domain"
	"github.com/shaiso/cloudctl/internal/resolve"
	"github.com/shaiso/cloudctl/internal/telemetry"
)

// Session — зависимости одной команды: учётные данные, клиенты и Resolver.
type Session struct {
	Auth     *auth.Context
	Clients  cloud.Clients
	Resolver *resolve.Resolver
}

// SessionFunc лениво создаёт Session после разбора флагов.
type SessionFunc func(ctx context.Context) (*Session, error)

// ErrNoCredentials — не задан ни файл токена, ни секрет.
var ErrNoCredentials = apierr.Errorf("No credentials: set CLOUD_TOKEN_FILE or CLOUD_TOKEN_SECRET")

// NewSession собирает Session по конфигурации.
//
// Токен берётся из CLOUD_TOKEN_FILE, либо по CLOUD_TOKEN_SECRET запрашиваются
// его метаданные через login.
func NewSession(ctx context.Context, cfg config.Config, metrics *telemetry.Metrics, logger *slog.Logger) (*Session, error) {
	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}
	if metrics != nil {
		httpClient.Transport = metrics.RoundTripper(nil)
	}

	token, err := loadToken(ctx, cfg, cloud.NewLogin(cfg.CloudURL, httpClient, logger))
	if err != nil {
		return nil, err
	}
	authCtx, err := auth.New(token)
	if err != nil {
		return nil, apierr.Errorf("Invalid credentials: %v", err)
	}

	newTransport := func(baseURL string) *cloud.Transport {
		return cloud.NewTransport(cloud.TransportConfig{
			BaseURL:       baseURL,
			HTTPClient:    httpClient,
			Authorization: authCtx.Header(),
			Logger:        logger,
		})
	}
	clients := cloud.NewClients(newTransport(cfg.CloudURL), newTransport(cfg.GatewayBaseURL()))

	logger.Debug("session opened", "account_id", authCtx.AccountID(), "cloud_url", cfg.CloudURL)

	return &Session{
		Auth:     authCtx,
		Clients:  clients,
		Resolver: resolve.New(clients.Projects, clients.Components, logger),
	}, nil
}

func loadToken(ctx context.Context, cfg config.Config, login cloud.LoginClient) (domain.UnsafeToken, error) {
	switch {
	case cfg.TokenFile != "":
		token, err := auth.ReadTokenFile(cfg.TokenFile)
		if err != nil {
			return domain.UnsafeToken{}, apierr.Errorf("Invalid credentials: %v", err)
		}
		return token, nil

	case cfg.TokenSecret != "":
		secret := domain.TokenSecret{Value: cfg.TokenSecret}
		token, err := login.CurrentToken(ctx, secret)
		if err != nil {
			return domain.UnsafeToken{}, apierr.Normalize(err)
		}
		return domain.UnsafeToken{Data: *token, Secret: secret}, nil

	default:
		return domain.UnsafeToken{}, ErrNoCredentials
	}
}
