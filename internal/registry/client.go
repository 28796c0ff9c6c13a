package registry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"sync"
	"time"

	"github.com/Masterminds/semver/v3"

	"github.com/vk/recipekit/internal/ctxlog"
)

// ErrNotFound marks a package or version the registry does not know about.
// It is terminal: the client never retries after seeing it.
var ErrNotFound = errors.New("not found in registry")

// ErrNoMatchingVersion marks a constraint that none of a package's
// published versions satisfies.
var ErrNoMatchingVersion = errors.New("no version matches constraint")

const (
	defaultCacheTTL    = 15 * time.Minute
	defaultMaxAttempts = 3
	defaultRetryDelay  = 250 * time.Millisecond
)

// Client talks to one package registry endpoint.
type Client struct {
	baseURL     *url.URL
	httpClient  *http.Client
	cacheTTL    time.Duration
	maxAttempts int
	retryDelay  time.Duration
	now         func() time.Time

	mu       sync.Mutex
	versions map[string]versionEntry
}

type versionEntry struct {
	fetched  time.Time
	versions []*semver.Version
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithCacheTTL sets how long version listings stay fresh.
func WithCacheTTL(ttl time.Duration) Option {
	return func(c *Client) { c.cacheTTL = ttl }
}

// WithMaxAttempts sets the retry budget for transient failures.
func WithMaxAttempts(n int) Option {
	return func(c *Client) { c.maxAttempts = n }
}

// WithRetryDelay sets the pause between retry attempts.
func WithRetryDelay(d time.Duration) Option {
	return func(c *Client) { c.retryDelay = d }
}

// withClock overrides the cache clock in tests.
func withClock(now func() time.Time) Option {
	return func(c *Client) { c.now = now }
}

// New creates a client for the registry at base, e.g.
// "https://registry.example.com".
func New(base string, opts ...Option) (*Client, error) {
	u, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("invalid registry URL %q: %w", base, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid registry URL %q: scheme and host are required", base)
	}
	c := &Client{
		baseURL:     u,
		httpClient:  http.DefaultClient,
		cacheTTL:    defaultCacheTTL,
		maxAttempts: defaultMaxAttempts,
		retryDelay:  defaultRetryDelay,
		now:         time.Now,
		versions:    make(map[string]versionEntry),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.maxAttempts < 1 {
		return nil, fmt.Errorf("retry attempts must be at least 1, got %d", c.maxAttempts)
	}
	return c, nil
}

// ListVersions returns the package's published versions in ascending
// semver order. Fresh results are served from the in-memory cache.
func (c *Client) ListVersions(ctx context.Context, pkg string) ([]*semver.Version, error) {
	logger := ctxlog.FromContext(ctx)

	c.mu.Lock()
	entry, ok := c.versions[pkg]
	c.mu.Unlock()
	if ok && c.now().Sub(entry.fetched) < c.cacheTTL {
		logger.Debug("Serving version listing from cache.", "package", pkg)
		return append([]*semver.Version(nil), entry.versions...), nil
	}

	body, err := c.get(ctx, c.endpoint("api", "packages", pkg, "versions"))
	if err != nil {
		return nil, fmt.Errorf("listing versions of %q: %w", pkg, err)
	}

	var raw []string
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("decoding version listing of %q: %w", pkg, err)
	}
	versions := make([]*semver.Version, 0, len(raw))
	for _, s := range raw {
		v, err := semver.NewVersion(s)
		if err != nil {
			return nil, fmt.Errorf("registry returned malformed version %q for %q: %w", s, pkg, err)
		}
		versions = append(versions, v)
	}
	sort.Sort(semver.Collection(versions))

	c.mu.Lock()
	c.versions[pkg] = versionEntry{fetched: c.now(), versions: versions}
	c.mu.Unlock()

	return append([]*semver.Version(nil), versions...), nil
}

// FetchRecipe returns the raw recipe document of the highest published
// version that satisfies constraint. An empty constraint matches any
// version. Prerelease versions are skipped unless allowPrerelease is set.
func (c *Client) FetchRecipe(ctx context.Context, pkg, constraint string, allowPrerelease bool) (json.RawMessage, error) {
	if constraint == "" {
		constraint = "*"
	}
	rng, err := semver.NewConstraint(constraint)
	if err != nil {
		return nil, fmt.Errorf("invalid version constraint %q: %w", constraint, err)
	}

	versions, err := c.ListVersions(ctx, pkg)
	if err != nil {
		return nil, err
	}

	var best *semver.Version
	for _, v := range versions {
		if v.Prerelease() != "" && !allowPrerelease {
			continue
		}
		ok := rng.Check(v)
		if !ok && allowPrerelease && v.Prerelease() != "" {
			// Constraints without a prerelease comparator never match
			// prerelease versions, so re-check against the release base.
			if base, err := v.SetPrerelease(""); err == nil {
				ok = rng.Check(&base)
			}
		}
		if ok {
			best = v
		}
	}
	if best == nil {
		return nil, fmt.Errorf("package %q, constraint %q: %w", pkg, constraint, ErrNoMatchingVersion)
	}

	ctxlog.FromContext(ctx).Debug("Selected recipe version.", "package", pkg, "version", best.Original())
	body, err := c.get(ctx, c.endpoint("api", "packages", pkg, best.Original(), "recipe"))
	if err != nil {
		return nil, fmt.Errorf("fetching recipe of %q %s: %w", pkg, best.Original(), err)
	}
	return json.RawMessage(body), nil
}

// FetchArtifact streams the release artifact of one exact version into w.
func (c *Client) FetchArtifact(ctx context.Context, pkg, version string, w io.Writer) error {
	resp, err := c.doWithRetry(ctx, c.endpoint("api", "packages", pkg, version, "artifact"))
	if err != nil {
		return fmt.Errorf("fetching artifact of %q %s: %w", pkg, version, err)
	}
	defer resp.Body.Close()
	if _, err := io.Copy(w, resp.Body); err != nil {
		return fmt.Errorf("downloading artifact of %q %s: %w", pkg, version, err)
	}
	return nil
}

func (c *Client) endpoint(parts ...string) string {
	return c.baseURL.JoinPath(parts...).String()
}

// get performs one retried GET and returns the response body.
func (c *Client) get(ctx context.Context, endpoint string) ([]byte, error) {
	resp, err := c.doWithRetry(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	return io.ReadAll(resp.Body)
}

// doWithRetry issues a GET with the client's bounded retry policy: a 404 is
// terminal, transport errors and 5xx responses retry until the attempt
// budget runs out, any other status is surfaced as-is.
func (c *Client) doWithRetry(ctx context.Context, endpoint string) (*http.Response, error) {
	logger := ctxlog.FromContext(ctx)

	var lastErr error
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(c.retryDelay):
			}
			logger.Warn("Retrying registry request.", "url", endpoint, "attempt", attempt, "error", lastErr)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}
		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		switch {
		case resp.StatusCode == http.StatusOK:
			return resp, nil
		case resp.StatusCode == http.StatusNotFound:
			resp.Body.Close()
			return nil, ErrNotFound
		case resp.StatusCode >= 500:
			resp.Body.Close()
			lastErr = fmt.Errorf("registry responded with status %d", resp.StatusCode)
		default:
			resp.Body.Close()
			return nil, fmt.Errorf("registry responded with status %d", resp.StatusCode)
		}
	}
	return nil, fmt.Errorf("giving up after %d attempts: %w", c.maxAttempts, lastErr)
}
