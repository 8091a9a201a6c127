// Package axl is a minimal client for the Cisco AXL SOAP API covering the
// two calls needed to rewrite a phone's busy lamp fields.
package axl

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"slices"
	"strconv"

	"github.com/google/uuid"
	"github.com/hooklift/gowsdl/soap"
	"go.uber.org/zap"

	"github.com/anicoll/blf-reorder/internal/pkg/config"
	"github.com/anicoll/blf-reorder/internal/pkg/contxt"
)

const axlNamespace = "http://www.cisco.com/AXL/API/"

type service struct {
	cfg       *config.AXLConfig
	transport http.RoundTripper
	logger    *zap.Logger
	history   History
}

// WithHTTPClient sends requests through the transport of c instead of the one
// built from the config.
func WithHTTPClient(c *http.Client) func(*service) {
	return func(s *service) {
		if c.Transport != nil {
			s.transport = c.Transport
		}
	}
}

func New(cfg *config.AXLConfig, opts ...func(*service)) *service {
	s := &service{
		cfg:    cfg,
		logger: zap.L(), // returns the global logger.
		transport: &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			TLSClientConfig: &tls.Config{
				InsecureSkipVerify: cfg.InsecureSkipVerify,
			},
		},
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// History returns the last request and response exchanged with the server.
func (s *service) History() History {
	return History{
		LastSent:     slices.Clone(s.history.LastSent),
		LastReceived: slices.Clone(s.history.LastReceived),
	}
}

func (s *service) endpoint() string {
	u := url.URL{
		Scheme: "https",
		Host:   net.JoinHostPort(s.cfg.Host, strconv.Itoa(s.cfg.Port)),
		Path:   "/axl/",
	}
	return u.String()
}

func (s *service) namespace() string {
	return axlNamespace + s.cfg.Version
}

// call sends request wrapped in a SOAP envelope and decodes the body of the
// reply into response. A SOAP fault is returned as *Fault.
func (s *service) call(ctx context.Context, operation string, request, response any) error {
	requestID := uuid.NewString()
	logger := s.logger.With(zap.String("operation", operation), zap.String("request_id", requestID))

	ctx, cancel := contxt.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	rec := &recorder{
		ctx:       ctx,
		requestID: requestID,
		next:      s.transport,
		logger:    logger,
	}
	client := soap.NewClient(s.endpoint(),
		soap.WithHTTPClient(&http.Client{Transport: rec}),
		soap.WithBasicAuth(s.cfg.Username, s.cfg.Password),
	)

	err := client.CallContext(ctx, fmt.Sprintf(`"CUCM:DB ver=%s %s"`, s.cfg.Version, operation), request, response)
	s.history = rec.history

	var sf *soap.SOAPFault
	switch {
	case errors.As(err, &sf):
		fault := newFault(operation, sf, s.History())
		logger.Warn("fault received", zap.Error(fault), zap.Int("axl_code", fault.AXLCode))
		return fault
	case err != nil && rec.status != 0 && !ok(rec.status):
		return fmt.Errorf("axl %s: unexpected status %d %s: %w", operation, rec.status, http.StatusText(rec.status), err)
	case err != nil:
		logger.Error("request failed", zap.Error(err))
		return fmt.Errorf("axl %s: %w", operation, err)
	case !ok(rec.status):
		return fmt.Errorf("axl %s: unexpected status %d %s", operation, rec.status, http.StatusText(rec.status))
	}
	return nil
}

func ok(status int) bool {
	return status/100 == 2
}
