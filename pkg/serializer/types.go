/*
Copyright © 2025 RecurLib Authors
SPDX-License-Identifier: Apache-2.0
*/
package serializer

import "context"

// Serializer writes a document to its destination in a configured format.
//
// The context parameter is used for cancellation and timeouts by
// implementations that perform slow I/O.
type Serializer interface {
	Serialize(ctx context.Context, doc any) error
}

// Closer is an optional interface a Serializer can implement when it holds
// resources such as file handles.
type Closer interface {
	Close() error
}
