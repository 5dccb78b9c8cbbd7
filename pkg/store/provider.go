/*
Copyright © 2025 RecurLib Authors
SPDX-License-Identifier: Apache-2.0
*/
package store

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/recurlib/recurlib/pkg/dataset"
	"github.com/recurlib/recurlib/pkg/errors"
	"github.com/recurlib/recurlib/pkg/nuclide"
)

// Provider supplies the raw decay dataset for a nuclide. A nuclide with no
// dataset upstream yields an ErrCodeNotFound error; any other error is a
// retrievable failure (network, malformed payload).
type Provider interface {
	FetchRaw(ctx context.Context, id nuclide.ID) (*dataset.RawDataset, error)
}

// ProviderFunc adapts a function to the Provider interface.
type ProviderFunc func(ctx context.Context, id nuclide.ID) (*dataset.RawDataset, error)

// FetchRaw implements Provider.
func (f ProviderFunc) FetchRaw(ctx context.Context, id nuclide.ID) (*dataset.RawDataset, error) {
	return f(ctx, id)
}

// NotFound builds the canonical missing-dataset error for a nuclide.
func NotFound(id nuclide.ID) error {
	return errors.NewWithContext(errors.ErrCodeNotFound,
		"no decay dataset for nuclide",
		map[string]any{"nuclide": id.String()})
}

// cached is one memoized fetch outcome. found=false memoizes the upstream
// not-found answer so it is never re-fetched within a run.
type cached struct {
	ds    *dataset.RawDataset
	found bool
}

// CachedProvider layers a run-local memory cache and an optional persisted
// cache in front of a remote provider. Fetch order is memory, persisted
// cache, remote; remote results (including not-found) are written back to
// both layers. Concurrent fetches of the same nuclide collapse into one
// remote call.
type CachedProvider struct {
	remote Provider
	disk   *Cache
	group  singleflight.Group

	// mu guards mem: singleflight only serializes same-key callers,
	// distinct nuclides fetch concurrently.
	mu  sync.Mutex
	mem map[string]cached
}

// NewCachedProvider wraps remote with caching. disk may be nil to run
// memory-only.
func NewCachedProvider(remote Provider, disk *Cache) *CachedProvider {
	return &CachedProvider{
		remote: remote,
		disk:   disk,
		mem:    make(map[string]cached),
	}
}

// FetchRaw implements Provider.
func (p *CachedProvider) FetchRaw(ctx context.Context, id nuclide.ID) (*dataset.RawDataset, error) {
	key := id.Code()

	v, err, _ := p.group.Do(key, func() (any, error) {
		if c, ok := p.memGet(key); ok {
			cacheResults.WithLabelValues(resultMemory).Inc()
			return c, nil
		}

		if p.disk != nil {
			ds, hit, err := p.disk.Get(ctx, id)
			if err != nil {
				return cached{}, err
			}
			if hit {
				cacheResults.WithLabelValues(resultDisk).Inc()
				c := cached{ds: ds, found: ds != nil}
				p.memSet(key, c)
				return c, nil
			}
		}

		cacheResults.WithLabelValues(resultRemote).Inc()
		c, err := p.fetchRemote(ctx, id)
		if err != nil {
			return cached{}, err
		}
		p.memSet(key, c)
		return c, nil
	})
	if err != nil {
		return nil, err
	}

	c := v.(cached)
	if !c.found {
		return nil, NotFound(id)
	}
	return c.ds, nil
}

func (p *CachedProvider) memGet(key string) (cached, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	c, ok := p.mem[key]
	return c, ok
}

func (p *CachedProvider) memSet(key string, c cached) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.mem[key] = c
}

// fetchRemote calls upstream and persists the outcome. An upstream
// not-found is a persistable answer, not a transient failure.
func (p *CachedProvider) fetchRemote(ctx context.Context, id nuclide.ID) (cached, error) {
	start := time.Now()
	ds, err := p.remote.FetchRaw(ctx, id)
	fetchDuration.Observe(time.Since(start).Seconds())

	switch {
	case err == nil:
	case errors.IsCode(err, errors.ErrCodeNotFound):
		ds = nil
	default:
		return cached{}, err
	}

	if p.disk != nil {
		if err := p.disk.Put(ctx, id, ds); err != nil {
			// The answer is still good; only persistence failed.
			logPutFailure(id, err)
		}
	}
	return cached{ds: ds, found: ds != nil}, nil
}
