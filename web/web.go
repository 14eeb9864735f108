// Package web holds the embedded single-page form served by the API binary.
package web

import _ "embed"

//go:embed index.html
var IndexHTML []byte
