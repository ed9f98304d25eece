// Package network provides a pre-configured HTTP client shared by site adapters.
package network

import (
	"net/http"
	"sync"
	"time"

	"github.com/anisan-cli/streamkit/key"
	"github.com/spf13/viper"
)

var (
	client     *http.Client
	clientOnce sync.Once
)

// Client returns the HTTP client shared across the application.
// It is configured once from network.timeout and network.tls_fingerprint.
func Client() *http.Client {
	clientOnce.Do(func() {
		timeout := time.Duration(viper.GetInt(key.NetworkTimeout)) * time.Second
		if timeout <= 0 {
			timeout = time.Minute
		}

		var transport http.RoundTripper = newTransport()
		if viper.GetBool(key.NetworkTLSFingerprint) {
			transport = FingerprintTransport()
		}

		client = &http.Client{
			Timeout:   timeout,
			Transport: transport,
		}
	})
	return client
}

// newTransport initializes a tuned http.Transport with optimized pool and timeout parameters.
func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 100
	t.MaxIdleConnsPerHost = 100
	t.MaxConnsPerHost = 200
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 30 * time.Second
	t.ExpectContinueTimeout = 30 * time.Second
	return t
}
