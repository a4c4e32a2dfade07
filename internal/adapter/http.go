package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync/atomic"

	"github.com/MKhiriev/go-coreapi/internal/config"
	"github.com/MKhiriev/go-coreapi/internal/logger"
	"github.com/MKhiriev/go-coreapi/internal/utils"
	"github.com/go-resty/resty/v2"
)

const requestIDHeader = "X-Request-ID"

type httpConnector struct {
	client      *utils.HTTPClient
	idGenerator *utils.RequestIDGenerator

	logger *logger.Logger
}

// NewHTTPConnector constructs the HTTP implementation of [Connector]. All
// sessions it creates share one underlying HTTP client configured with
// adapterCfg.RequestTimeout.
func NewHTTPConnector(adapterCfg config.Adapter, logger *logger.Logger) Connector {
	return &httpConnector{
		client:      utils.NewHTTPClient(adapterCfg.RequestTimeout),
		idGenerator: utils.NewRequestIDGenerator(),
		logger:      logger,
	}
}

// Connect implements [Connector].
func (c *httpConnector) Connect(server, token string) (Session, error) {
	serverURL, err := normalizeBaseURL(server)
	if err != nil {
		return nil, fmt.Errorf("invalid coreapi server address: %w", err)
	}

	return &httpSession{
		connector: c,
		server:    serverURL,
		token:     strings.TrimSpace(token),
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyServer
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

type httpSession struct {
	connector *httpConnector

	server string
	token  string

	lastID atomic.Int64
}

func (s *httpSession) Server() string {
	return s.server
}

func (s *httpSession) Token() string {
	return s.token
}

// Call implements [Session]. Request ids start at 1 and grow by one per call
// made through the session.
func (s *httpSession) Call(ctx context.Context, method string, params any, result any) error {
	id := s.lastID.Add(1)
	requestID := s.connector.idGenerator.Generate()

	log := s.connector.logger.With().
		Str("method", method).
		Int64("rpc_id", id).
		Str("request_id", requestID).
		Logger()

	resp, err := s.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader(requestIDHeader, requestID).
		SetBody(newRPCRequest(method, params, id)).
		Post(s.server)
	if err != nil {
		log.Debug().Err(err).Msg("rpc call failed")
		return fmt.Errorf("%w: %s: %w", ErrTransport, method, err)
	}
	if err = mapHTTPError(method, resp); err != nil {
		log.Debug().Err(err).Msg("rpc call rejected")
		return err
	}

	var envelope rpcResponse
	if err = json.Unmarshal(resp.Body(), &envelope); err != nil {
		return fmt.Errorf("%w: %s: decode response: %v", ErrProtocol, method, err)
	}
	if err = mapEnvelopeError(method, id, envelope); err != nil {
		log.Debug().Err(err).Msg("rpc call returned an error")
		return err
	}

	log.Debug().Dur("elapsed", resp.Time()).Msg("rpc call completed")

	if result == nil {
		return nil
	}
	if err = json.Unmarshal(envelope.Result, result); err != nil {
		return fmt.Errorf("%w: %s: decode result: %v", ErrProtocol, method, err)
	}

	return nil
}

func (s *httpSession) authedRequest(ctx context.Context) *resty.Request {
	req := s.connector.client.R().SetContext(ctx)
	if s.token != "" {
		req.SetHeader("Authorization", utils.BearerHeader(s.token))
	}
	return req
}
