package network

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/anisan-cli/streamkit/constant"
	"github.com/anisan-cli/streamkit/log"
)

// Request describes one upstream call.
type Request struct {
	Method  string
	URL     string
	Headers map[string]string
	// Form, when set, is sent urlencoded as the request body.
	Form url.Values
	// Body is sent verbatim when Form is nil.
	Body string
}

// Do performs req with c and returns the response body.
// Responses outside the 2xx range are reported as *StatusError.
func Do(ctx context.Context, c *http.Client, req Request) ([]byte, error) {
	if req.Method == "" {
		req.Method = http.MethodGet
	}

	var body io.Reader
	switch {
	case req.Form != nil:
		body = strings.NewReader(req.Form.Encode())
	case req.Body != "":
		body = strings.NewReader(req.Body)
	}

	r, err := http.NewRequestWithContext(ctx, req.Method, req.URL, body)
	if err != nil {
		return nil, err
	}

	r.Header.Set("User-Agent", constant.UserAgent)
	r.Header.Set("Accept", "text/html,application/xhtml+xml,application/json;q=0.9,*/*;q=0.8")
	if req.Form != nil {
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	for k, v := range req.Headers {
		r.Header.Set(k, v)
	}

	log.WithFields(log.Fields{"method": req.Method, "url": req.URL}).Debug("request")

	resp, err := c.Do(r)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{
			Method:     req.Method,
			URL:        req.URL,
			StatusCode: resp.StatusCode,
			Location:   resp.Header.Get("Location"),
		}
	}

	return b, nil
}

// Get fetches rawURL with the shared client.
func Get(ctx context.Context, rawURL string, headers map[string]string) ([]byte, error) {
	return Do(ctx, Client(), Request{Method: http.MethodGet, URL: rawURL, Headers: headers})
}

// PostForm submits form to rawURL with the shared client.
func PostForm(ctx context.Context, rawURL string, form url.Values, headers map[string]string) ([]byte, error) {
	return Do(ctx, Client(), Request{Method: http.MethodPost, URL: rawURL, Form: form, Headers: headers})
}
