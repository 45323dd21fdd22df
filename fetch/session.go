package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/mirrordat/datmirror/debug"
)

// Session is an HTTP client with a base URL, a default timeout and
// retry with backoff on 5xx responses and transport errors.
type Session struct {
	base   *url.URL
	client *http.Client
}

type Option func(*options)

type options struct {
	timeout          time.Duration
	retries          int
	waitMin, waitMax time.Duration
}

func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

func WithRetries(n int) Option {
	return func(o *options) { o.retries = n }
}

// WithRetryWait bounds the backoff between retry attempts.
func WithRetryWait(min, max time.Duration) Option {
	return func(o *options) { o.waitMin, o.waitMax = min, max }
}

// NewSession creates a Session. An empty base means refs passed to Get
// and friends must be absolute.
func NewSession(base string, opts ...Option) (*Session, error) {
	o := &options{
		timeout: 3 * time.Minute,
		retries: 5,
	}
	for _, opt := range opts {
		opt(o)
	}

	var bu *url.URL
	if base != "" {
		var err error
		bu, err = url.Parse(base)
		if err != nil {
			return nil, fmt.Errorf("bad base url %q: %w", base, err)
		}
	}

	rc := retryablehttp.NewClient()
	rc.RetryMax = o.retries
	rc.Logger = nil
	if o.waitMin > 0 {
		rc.RetryWaitMin = o.waitMin
	}
	if o.waitMax > 0 {
		rc.RetryWaitMax = o.waitMax
	}
	client := rc.StandardClient()
	client.Timeout = o.timeout

	return &Session{base: bu, client: client}, nil
}

// Resolve resolves ref against the session's base URL.
func (s *Session) Resolve(ref string) (string, error) {
	u, err := url.Parse(ref)
	if err != nil {
		return "", fmt.Errorf("bad url %q: %w", ref, err)
	}
	if s.base != nil {
		u = s.base.ResolveReference(u)
	}
	return u.String(), nil
}

// Get fetches ref. Non-2xx statuses are returned as *StatusError.
func (s *Session) Get(ctx context.Context, ref string) (*http.Response, error) {
	return s.do(ctx, http.MethodGet, ref, nil, "")
}

// PostForm submits values to ref as a form body.
func (s *Session) PostForm(ctx context.Context, ref string, values url.Values) (*http.Response, error) {
	return s.do(ctx, http.MethodPost, ref, strings.NewReader(values.Encode()),
		"application/x-www-form-urlencoded")
}

// Submit sends a scraped form: values go in the query string for GET
// and in the body otherwise.
func (s *Session) Submit(ctx context.Context, method, ref string, values url.Values) (*http.Response, error) {
	if method == "" || strings.EqualFold(method, http.MethodGet) {
		u, err := url.Parse(ref)
		if err != nil {
			return nil, fmt.Errorf("bad url %q: %w", ref, err)
		}
		q := u.Query()
		for k, vs := range values {
			for _, v := range vs {
				q.Add(k, v)
			}
		}
		u.RawQuery = q.Encode()
		return s.Get(ctx, u.String())
	}
	return s.PostForm(ctx, ref, values)
}

func (s *Session) do(ctx context.Context, method, ref string, body io.Reader, contentType string) (*http.Response, error) {
	u, err := s.Resolve(ref)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if debug.HTTP() {
		debug.Logf("http: %s %s", method, u)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, &StatusError{URL: u, Code: resp.StatusCode}
	}
	return resp, nil
}

// Save streams resp's body into the file at path and closes the body.
func Save(resp *http.Response, path string) error {
	defer resp.Body.Close()
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, resp.Body); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// StatusError reports a non-success HTTP status.
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: unexpected status %d", e.URL, e.Code)
}
