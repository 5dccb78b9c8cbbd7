/*
Copyright © 2025 RecurLib Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package serializer writes RecurLib documents (libraries, lineages, level
// reports) to files or stdout in JSON, YAML, or flattened-table form, and
// reads documents back from files or URLs.
//
// Usage:
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatYAML, path)
//	defer w.(serializer.Closer).Close()
//	if err := w.Serialize(ctx, lib); err != nil {
//		...
//	}
package serializer
