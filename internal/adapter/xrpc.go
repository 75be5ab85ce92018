// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/koji-m/Bluedog/internal/config"
	"github.com/koji-m/Bluedog/internal/logger"
	"github.com/koji-m/Bluedog/internal/utils"
	"github.com/koji-m/Bluedog/models"
	"golang.org/x/time/rate"
)

const (
	xrpcPrefix = "/xrpc/"

	// refreshWindow is how long before access-token expiry a call refreshes
	// the session up front.
	refreshWindow = 30 * time.Second

	nsidCreateSession  = "com.atproto.server.createSession"
	nsidRefreshSession = "com.atproto.server.refreshSession"
	nsidGetSession     = "com.atproto.server.getSession"
)

type xrpcAdapter struct {
	client  *utils.HTTPClient
	limiter *rate.Limiter
	ids     *utils.UUIDGenerator

	mu         sync.RWMutex
	session    models.Session
	hasSession bool

	listener TokenListener
	now      func() time.Time

	logger *logger.Logger
}

// NewXRPCAdapter returns an unauthenticated adapter for the service at
// cfg.ServiceURL. listener may be nil.
func NewXRPCAdapter(cfg config.ClientAdapter, listener TokenListener, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.ServiceURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter service url: %w", err)
	}

	limit := rate.Inf
	if cfg.RateLimit > 0 {
		limit = rate.Limit(cfg.RateLimit)
	}
	burst := cfg.RateBurst
	if burst < 1 {
		burst = 1
	}

	return &xrpcAdapter{
		client:   utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		limiter:  rate.NewLimiter(limit, burst),
		ids:      utils.NewUUIDGenerator(),
		listener: listener,
		now:      time.Now,
		logger:   logger,
	}, nil
}

// NewXRPCFactory returns a [Factory] building adapters from cfg.
// Construction errors surface on first use as the configuration was already
// validated.
func NewXRPCFactory(cfg config.ClientAdapter, logger *logger.Logger) (Factory, error) {
	if _, err := normalizeBaseURL(cfg.ServiceURL); err != nil {
		return nil, fmt.Errorf("invalid adapter service url: %w", err)
	}

	return func(listener TokenListener) ServerAdapter {
		a, _ := NewXRPCAdapter(cfg, listener, logger)
		return a
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// ── session ─────────────────────────────────────────────────────────────────

func (x *xrpcAdapter) Session() (models.Session, bool) {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return x.session, x.hasSession
}

func (x *xrpcAdapter) install(s models.Session) {
	x.mu.Lock()
	x.session = s
	x.hasSession = true
	x.mu.Unlock()
}

func (x *xrpcAdapter) clear() {
	x.mu.Lock()
	x.session = models.Session{}
	x.hasSession = false
	x.mu.Unlock()
}

func (x *xrpcAdapter) notify(event models.SessionEvent, s models.Session) error {
	if x.listener == nil {
		return nil
	}
	if err := x.listener.OnTokenChanged(event, s); err != nil {
		x.logger.Err(err).Str("event", string(event)).Msg("token listener failed")
		return fmt.Errorf("token listener (%s): %w", event, err)
	}
	return nil
}

func (x *xrpcAdapter) CreateSession(ctx context.Context, identifier, password string) (models.Session, error) {
	var out models.SessionResponse
	err := x.call(ctx, http.MethodPost, nsidCreateSession, "", func(r *resty.Request) {
		r.SetBody(models.CreateSessionRequest{Identifier: identifier, Password: password})
	}, &out)
	if err != nil {
		return models.Session{}, err
	}

	s := models.Session{
		DID:        out.DID,
		Handle:     out.Handle,
		AccessJWT:  out.AccessJWT,
		RefreshJWT: out.RefreshJWT,
		Service:    x.client.BaseURL,
	}
	x.install(s)

	x.logger.Info().Str("did", s.DID).Str("handle", s.Handle).Msg("session created")

	return s, x.notify(models.SessionCreate, s)
}

func (x *xrpcAdapter) ResumeSession(ctx context.Context, s models.Session) (models.Session, error) {
	if s.DID == "" || s.RefreshJWT == "" {
		return models.Session{}, ErrNoSession
	}
	x.install(s)

	var out models.SessionResponse
	if err := x.authed(ctx, http.MethodGet, nsidGetSession, nil, &out); err != nil {
		x.clear()
		return models.Session{}, err
	}

	current, _ := x.Session()
	if out.Handle != "" {
		current.Handle = out.Handle
	}
	x.install(current)

	x.logger.Info().Str("did", current.DID).Str("handle", current.Handle).Msg("session resumed")

	return current, x.notify(models.SessionImport, current)
}

func (x *xrpcAdapter) RefreshSession(ctx context.Context) (models.Session, error) {
	current, ok := x.Session()
	if !ok {
		return models.Session{}, ErrNoSession
	}

	var out models.SessionResponse
	err := x.call(ctx, http.MethodPost, nsidRefreshSession, current.RefreshJWT, nil, &out)
	if err != nil {
		return models.Session{}, err
	}

	current.AccessJWT = out.AccessJWT
	current.RefreshJWT = out.RefreshJWT
	if out.Handle != "" {
		current.Handle = out.Handle
	}
	x.install(current)

	x.logger.Debug().Str("did", current.DID).Msg("session refreshed")

	return current, x.notify(models.SessionRefresh, current)
}

// ── transport ───────────────────────────────────────────────────────────────

// authed performs an authenticated call. The session is refreshed up front
// when the access token is about to expire, and once more followed by a
// single replay when the service answers ExpiredToken.
func (x *xrpcAdapter) authed(ctx context.Context, method, nsid string, build func(*resty.Request), out any) error {
	current, ok := x.Session()
	if !ok {
		return ErrNoSession
	}

	if utils.TokenExpiresWithin(current.AccessJWT, refreshWindow, x.now()) {
		refreshed, err := x.RefreshSession(ctx)
		if err != nil {
			return fmt.Errorf("refresh before %s: %w", nsid, err)
		}
		current = refreshed
	}

	err := x.call(ctx, method, nsid, current.AccessJWT, build, out)
	if !errors.Is(err, ErrExpiredToken) {
		return err
	}

	refreshed, rerr := x.RefreshSession(ctx)
	if rerr != nil {
		return fmt.Errorf("refresh after %s: %w", nsid, rerr)
	}

	return x.call(ctx, method, nsid, refreshed.AccessJWT, build, out)
}

func (x *xrpcAdapter) call(ctx context.Context, method, nsid, bearer string, build func(*resty.Request), out any) error {
	if err := x.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%s rate limiter: %w", nsid, err)
	}

	requestID := x.ids.Generate()
	req := x.client.R().
		SetContext(ctx).
		SetHeader("X-Request-ID", requestID)

	if method == http.MethodPost {
		req.SetHeader("Content-Type", "application/json")
	}
	if bearer != "" {
		req.SetHeader("Authorization", "Bearer "+bearer)
	}
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		req.SetHeader("X-Trace-ID", traceID)
	}
	if build != nil {
		build(req)
	}

	started := x.now()
	resp, err := req.Execute(method, xrpcPrefix+nsid)
	if err != nil {
		return fmt.Errorf("%s request: %w", nsid, err)
	}

	x.logger.Debug().
		Str("nsid", nsid).
		Str("request_id", requestID).
		Int("status", resp.StatusCode()).
		Dur("elapsed", x.now().Sub(started)).
		Msg("xrpc call")

	if err = mapXRPCError(nsid, resp); err != nil {
		return err
	}

	if out == nil {
		return nil
	}
	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode %s response: %w", nsid, err)
	}

	return nil
}

func (x *xrpcAdapter) query(ctx context.Context, nsid string, params url.Values, out any) error {
	return x.authed(ctx, http.MethodGet, nsid, func(r *resty.Request) {
		r.SetQueryParamsFromValues(params)
	}, out)
}

func (x *xrpcAdapter) procedure(ctx context.Context, nsid string, body any, out any) error {
	return x.authed(ctx, http.MethodPost, nsid, func(r *resty.Request) {
		r.SetBody(body)
	}, out)
}
