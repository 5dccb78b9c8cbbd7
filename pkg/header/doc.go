/*
Copyright © 2025 RecurLib Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package header defines the common document header (kind, schema version,
// run identifier, generation timestamp) embedded in every emitted report so
// consumers can distinguish library, lineage, and level documents.
package header
