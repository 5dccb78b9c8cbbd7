/*
Copyright © 2025 RecurLib Authors
SPDX-License-Identifier: Apache-2.0
*/
package livechart

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"time"

	"golang.org/x/time/rate"

	"github.com/recurlib/recurlib/pkg/dataset"
	"github.com/recurlib/recurlib/pkg/defaults"
	"github.com/recurlib/recurlib/pkg/errors"
	"github.com/recurlib/recurlib/pkg/nuclide"
)

// DefaultBaseURL is the IAEA-NDS Live Chart of Nuclides data service.
const DefaultBaseURL = "https://www-nds.iaea.org/relnsd/v1/data"

// The service reports failure as a bare error-code body instead of an HTTP
// status: a single digit 0-6 plus newline.
var reErrorCode = regexp.MustCompile(`^([0-6])\s*$`)

// Error-code meanings per the service's API guide. Code 0 is not a failure:
// the request was valid but no dataset exists.
var errorCodes = map[string]string{
	"1": `"fields" unspecified`,
	"2": `"nuclides" required for use with "fields", but unspecified`,
	"3": `"fields" misspelled`,
	"4": `"parents" or "products" unspecified for fission yields`,
	"5": `"rad_types" invalid`,
	"6": "unknown error",
}

// Client fetches decay datasets from the Live Chart data service. Requests
// are rate limited; the service is a shared public resource.
type Client struct {
	base      string
	hc        *http.Client
	limiter   *rate.Limiter
	userAgent string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the data service endpoint.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.base = u }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.hc = hc }
}

// WithRateLimit overrides the requests-per-second cap and burst size.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) { c.limiter = rate.NewLimiter(rate.Limit(rps), burst) }
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// NewClient returns a Client with default endpoint, timeout, and rate
// limiting.
func NewClient(opts ...Option) *Client {
	c := &Client{
		base:      DefaultBaseURL,
		hc:        &http.Client{Timeout: defaults.FetchTimeout},
		limiter:   rate.NewLimiter(rate.Limit(defaults.FetchRateLimit), defaults.FetchRateBurst),
		userAgent: "recurlib",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// errNoDataset is the internal marker for service error code 0.
var errNoDataset = errors.New(errors.ErrCodeNotFound, "no dataset for query")

// query performs one rate-limited GET and returns the CSV payload. Service
// error code 0 surfaces as errNoDataset; other codes are request failures.
func (c *Client) query(ctx context.Context, params url.Values) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, errors.Wrap(errors.ErrCodeTimeout, "waiting for rate limiter", err)
	}

	u := c.base + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, "building request", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		requestResults.WithLabelValues(statusError).Inc()
		return nil, errors.WrapWithContext(errors.ErrCodeUnavailable,
			"querying live chart service", err, map[string]any{"url": u})
	}
	defer resp.Body.Close()
	requestDuration.Observe(time.Since(start).Seconds())

	if resp.StatusCode != http.StatusOK {
		requestResults.WithLabelValues(statusError).Inc()
		return nil, errors.NewWithContext(errors.ErrCodeUnavailable,
			"live chart service returned non-200 status",
			map[string]any{"status": resp.StatusCode, "url": u})
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		requestResults.WithLabelValues(statusError).Inc()
		return nil, errors.Wrap(errors.ErrCodeUnavailable, "reading response body", err)
	}

	if m := reErrorCode.FindSubmatch(bytes.TrimSpace(body)); m != nil {
		code := string(m[1])
		if code == "0" {
			requestResults.WithLabelValues(statusNoData).Inc()
			return nil, errNoDataset
		}
		requestResults.WithLabelValues(statusError).Inc()
		return nil, errors.NewWithContext(errors.ErrCodeInvalidRequest,
			"live chart service rejected query: "+errorCodes[code],
			map[string]any{"code": code, "url": u})
	}

	requestResults.WithLabelValues(statusOK).Inc()
	return body, nil
}

// FetchRaw collects everything known about one nuclide: decay radiations by
// radiation type, gamma transitions, and declared levels. A nuclide with no
// data under any query yields ErrCodeNotFound.
func (c *Client) FetchRaw(ctx context.Context, id nuclide.ID) (*dataset.RawDataset, error) {
	ds := &dataset.RawDataset{Nuclide: id}
	nucl := id.LiveChart()

	seenDecay := make(map[string]bool)
	for _, rt := range dataset.RadiationTypes {
		body, err := c.query(ctx, url.Values{
			"fields":    []string{"decay_rads"},
			"nuclides":  []string{nucl},
			"rad_types": []string{rt},
		})
		if err == errNoDataset {
			continue
		}
		if err != nil {
			return nil, err
		}

		rads, err := dataset.DecodeRadiations(bytes.NewReader(body), rt)
		if err != nil {
			slog.Warn("skipping malformed radiation payload",
				"nuclide", id.String(), "rad_type", rt, "error", err)
			continue
		}
		ds.Radiations = append(ds.Radiations, rads...)

		// The same payload carries the decay-mode and daughter columns;
		// identical rows recur across radiation types.
		decays, err := dataset.DecodeDecays(bytes.NewReader(body))
		if err != nil {
			continue
		}
		for _, d := range decays {
			key := fmt.Sprintf("%s|%s|%v|%v",
				d.Mode, d.Daughter.Code(), d.ParentLevel, d.DaughterLevel)
			if seenDecay[key] {
				continue
			}
			seenDecay[key] = true
			ds.Decays = append(ds.Decays, d)
		}
	}

	if body, err := c.query(ctx, url.Values{
		"fields":   []string{"gammas"},
		"nuclides": []string{nucl},
	}); err == nil {
		gammas, err := dataset.DecodeGammas(bytes.NewReader(body))
		if err != nil {
			slog.Warn("skipping malformed gamma payload",
				"nuclide", id.String(), "error", err)
		} else {
			ds.Gammas = gammas
		}
	} else if err != errNoDataset {
		return nil, err
	}

	if body, err := c.query(ctx, url.Values{
		"fields":   []string{"levels"},
		"nuclides": []string{nucl},
	}); err == nil {
		levels, err := dataset.DecodeLevels(bytes.NewReader(body))
		if err != nil {
			slog.Warn("skipping malformed level payload",
				"nuclide", id.String(), "error", err)
		} else {
			ds.Levels = levels
		}
	} else if err != errNoDataset {
		return nil, err
	}

	if ds.Empty() {
		return nil, errors.NewWithContext(errors.ErrCodeNotFound,
			"no decay dataset for nuclide",
			map[string]any{"nuclide": id.String()})
	}
	return ds, nil
}
