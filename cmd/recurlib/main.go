/*
Copyright © 2025 RecurLib Authors
SPDX-License-Identifier: Apache-2.0
*/
package main

import "github.com/recurlib/recurlib/pkg/cli"

func main() {
	cli.Execute()
}
