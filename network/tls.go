package network

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/anisan-cli/streamkit/constant"
	utls "github.com/refraction-networking/utls"
	"golang.org/x/net/http2"
)

const dialTimeout = 30 * time.Second

var (
	fingerprint     *fingerprintTransport
	fingerprintOnce sync.Once
)

// FingerprintTransport returns a round tripper that performs TLS handshakes
// with a Chrome 120 Client Hello. HTTPS requests go over HTTP/2 first and
// fall back to HTTP/1.1 when the server refuses h2.
func FingerprintTransport() http.RoundTripper {
	fingerprintOnce.Do(func() {
		fingerprint = &fingerprintTransport{
			h2: &http2.Transport{
				DialTLSContext: func(ctx context.Context, network, addr string, _ *tls.Config) (net.Conn, error) {
					return dialTLS(ctx, network, addr, nil)
				},
			},
			h1: &http.Transport{
				Proxy: http.ProxyFromEnvironment,
				DialTLSContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
					return dialTLS(ctx, network, addr, []string{"http/1.1"})
				},
				IdleConnTimeout: 30 * time.Second,
			},
		}
	})
	return fingerprint
}

type fingerprintTransport struct {
	h2 *http2.Transport
	h1 *http.Transport
}

func (t *fingerprintTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.URL.Scheme != "https" {
		return t.h1.RoundTrip(req)
	}

	resp, err := t.h2.RoundTrip(req)
	if err == nil {
		return resp, nil
	}
	if req.Context().Err() != nil {
		return nil, err
	}

	retry := req.Clone(req.Context())
	if req.Body != nil && req.Body != http.NoBody {
		if req.GetBody == nil {
			return nil, err
		}
		body, bodyErr := req.GetBody()
		if bodyErr != nil {
			return nil, errors.Join(err, bodyErr)
		}
		retry.Body = body
	}

	return t.h1.RoundTrip(retry)
}

// dialTLS creates a TLS connection mimicking Chrome 120's fingerprint.
// A nil protos advertises both h2 and http/1.1.
func dialTLS(ctx context.Context, network, addr string, protos []string) (net.Conn, error) {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		host = addr
	}

	dialer := &net.Dialer{Timeout: dialTimeout}
	conn, err := dialer.DialContext(ctx, network, addr)
	if err != nil {
		return nil, err
	}

	tlsConn := utls.UClient(conn, &utls.Config{
		ServerName: host,
		MinVersion: tls.VersionTLS12,
		NextProtos: protos,
	}, utls.HelloChrome_120)

	if err := tlsConn.HandshakeContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("tls handshake: %w", err)
	}

	return tlsConn, nil
}

// FingerprintDo performs a single request over the fingerprint transport with
// browser-like default headers. It returns the body and status code without
// treating non-2xx statuses as errors.
func FingerprintDo(ctx context.Context, method, rawURL string, headers map[string]string, body string) (string, int, error) {
	var reqBody io.Reader
	if body != "" {
		reqBody = strings.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, reqBody)
	if err != nil {
		return "", 0, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", constant.UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	c := &http.Client{
		Timeout:   dialTimeout,
		Transport: FingerprintTransport(),
	}

	resp, err := c.Do(req)
	if err != nil {
		return "", 0, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", resp.StatusCode, fmt.Errorf("read body: %w", err)
	}

	return string(b), resp.StatusCode, nil
}
