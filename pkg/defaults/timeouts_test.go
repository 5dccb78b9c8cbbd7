/*
Copyright © 2025 RecurLib Authors
SPDX-License-Identifier: Apache-2.0
*/
package defaults

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimeoutOrdering(t *testing.T) {
	// A single fetch must fit well inside a resolution run.
	assert.Less(t, FetchTimeout, ResolveTimeout)
	assert.Positive(t, FetchRateLimit)
	assert.Positive(t, FetchRateBurst)
	assert.Positive(t, LevelTolerance)
	assert.Greater(t, MaxChainDepth, 64)
}
