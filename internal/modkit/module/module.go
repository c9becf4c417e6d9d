// Package module defines the contract console modules satisfy and the
// port lookup used to cross wire them
package module

import (
	phttp "dataproc/internal/platform/net/http"
)

// Module is what the API composer mounts
type Module interface {
	MountRoutes(r phttp.Router)
	Ports() any
	Name() string
}
