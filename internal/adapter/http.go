package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/hearthkeep/hearthkeep/internal/config"
	"github.com/hearthkeep/hearthkeep/internal/logger"
	"github.com/hearthkeep/hearthkeep/internal/utils"
	"github.com/hearthkeep/hearthkeep/models"
)

type httpRemoteStore struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPRemoteStore constructs an HTTP/REST implementation of [RemoteStore].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and
// request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPRemoteStore(adapterCfg config.ClientAdapter, log *logger.Logger) (RemoteStore, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpRemoteStore{client: client, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
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

// FetchAll implements [RemoteStore]. It GETs /api/domains/{domain}, adding an
// actor query parameter for actor-scoped domains. A 404 means the domain has
// never been written and resolves to an empty snapshot.
func (h *httpRemoteStore) FetchAll(ctx context.Context, domain, actorID string) (models.Snapshot, error) {
	req := h.client.R().
		SetContext(ctx)
	if actorID != "" {
		req.SetQueryParam("actor", actorID)
	}

	resp, err := req.Get("/api/domains/" + url.PathEscape(domain))
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("fetch %s: %w", domain, err)
	}

	if err = mapHTTPError(resp); err != nil {
		if errors.Is(err, ErrNotFound) {
			return emptySnapshot(domain, actorID), nil
		}
		return models.Snapshot{}, fmt.Errorf("fetch %s: %w", domain, err)
	}

	var snapshot models.Snapshot
	if err = json.Unmarshal(resp.Body(), &snapshot); err != nil {
		return models.Snapshot{}, fmt.Errorf("decode %s snapshot: %w", domain, err)
	}
	if len(snapshot.Records) == 0 {
		snapshot.Records = models.EmptyRecords
	}

	return snapshot, nil
}

// Upsert implements [RemoteStore]. It PUTs the full snapshot to
// /api/domains/{domain}; the server overwrites whatever it held for the
// (domain, actor) pair, making repeated identical calls idempotent. The
// server addresses the write by URL and query string alone, so the actor id
// travels as the actor query parameter, same as on fetch.
func (h *httpRemoteStore) Upsert(ctx context.Context, snapshot models.Snapshot) error {
	req := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(snapshot)
	if snapshot.ActorID != "" {
		req.SetQueryParam("actor", snapshot.ActorID)
	}

	resp, err := req.Put("/api/domains/" + url.PathEscape(snapshot.Domain))
	if err != nil {
		return fmt.Errorf("upsert %s: %w", snapshot.Domain, err)
	}

	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("upsert %s: %w", snapshot.Domain, err)
	}

	return nil
}

// Ping implements [RemoteStore].
func (h *httpRemoteStore) Ping(ctx context.Context) error {
	resp, err := h.client.R().SetContext(ctx).Get("/api/ping")
	if err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return mapHTTPError(resp)
}

func emptySnapshot(domain, actorID string) models.Snapshot {
	return models.Snapshot{
		Domain:    domain,
		ActorID:   actorID,
		Records:   models.EmptyRecords,
		UpdatedAt: time.Time{},
	}
}
