// Package api embeds the OpenAPI description of the travel planner HTTP API.
// The server serves it at /openapi.yaml.
package api

import _ "embed"

// OpenAPI holds the raw bytes of openapi.yaml.
//
//go:embed openapi.yaml
var OpenAPI []byte
