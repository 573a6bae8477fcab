// Package boinord talks to the BoI Nord member API and extracts the
// user's waitlist positions.
package boinord

import (
	"context"
	"math/rand"
	"strconv"
	"time"

	"waitlist-engine/internal/domain"
	"waitlist-engine/internal/util"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	DefaultBaseURL = "https://boinord.dk"
	DefaultTimeout = 20 * time.Second

	userHandlerPath = "/directproviders/userhandler.ashx"

	// rand is drawn from [cacheBustMin, cacheBustMax] so no intermediary
	// serves a stale login response.
	cacheBustMin = 1_000_000_000_000
	cacheBustMax = 9_999_999_999_999
)

const tracerName = "waitlist-engine/internal/boinord"

type Credentials struct {
	Username string
	Password string
}

func (c Credentials) String() string {
	return "Credentials{Username: " + strconv.Quote(c.Username) + ", Password: ***}"
}

type Config struct {
	BaseURL string
	Timeout time.Duration
	// TracerProvider defaults to the global provider.
	TracerProvider trace.TracerProvider
}

type Client struct {
	cfg     Config
	hc      *resty.Client
	limiter *util.HostLimiter
	tracer  trace.Tracer
	rand    func() int64
}

func New(cfg Config, limiter *util.HostLimiter) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.TracerProvider == nil {
		cfg.TracerProvider = otel.GetTracerProvider()
	}

	hc := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetRetryCount(0)

	return &Client{
		cfg:     cfg,
		hc:      hc,
		limiter: limiter,
		tracer:  cfg.TracerProvider.Tracer(tracerName),
		rand:    cacheBuster,
	}
}

func cacheBuster() int64 {
	return cacheBustMin + rand.Int63n(cacheBustMax-cacheBustMin+1)
}

// FetchApartments logs in with creds and returns the user's waitlist
// positions keyed by apartment variant. Failures are *Error values.
func (c *Client) FetchApartments(ctx context.Context, creds Credentials) (*domain.Apartments, error) {
	ctx, span := c.tracer.Start(ctx, "boinord.FetchApartments", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	apts, err := c.fetch(ctx, creds)
	if err != nil {
		span.RecordError(err)
		if kind, ok := KindOf(err); ok {
			span.SetStatus(codes.Error, kind.String())
		} else {
			span.SetStatus(codes.Error, "fetch failed")
		}
		return nil, err
	}
	span.SetAttributes(attribute.Int("boinord.apartments", apts.Len()))
	return apts, nil
}

func (c *Client) fetch(ctx context.Context, creds Credentials) (*domain.Apartments, error) {
	if err := c.limiter.WaitURL(ctx, c.cfg.BaseURL); err != nil {
		return nil, transportError(0, err)
	}

	res, err := c.hc.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"action":   "login",
			"user":     creds.Username,
			"password": creds.Password,
			"rand":     strconv.FormatInt(c.rand(), 10),
		}).
		Get(userHandlerPath)
	if err != nil {
		return nil, transportError(0, err)
	}

	trace.SpanFromContext(ctx).SetAttributes(attribute.Int("http.status_code", res.StatusCode()))
	return parseLoginResponse(res.StatusCode(), res.Body())
}
