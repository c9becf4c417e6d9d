package module

import (
	"sort"
	"sync"
)

// process registry of mounted modules and their ports, filled by the API composer
var (
	mu  sync.RWMutex
	reg = map[string]any{}
)

// Register records a mounted module and its port set; a repeat name overwrites
func Register(name string, ports any) {
	mu.Lock()
	reg[name] = ports
	mu.Unlock()
}

// Names lists registered module names in order
func Names() []string {
	mu.RLock()
	out := make([]string, 0, len(reg))
	for k := range reg {
		out = append(out, k)
	}
	mu.RUnlock()
	sort.Strings(out)
	return out
}

// Reset clears the registry for tests
func Reset() {
	mu.Lock()
	reg = map[string]any{}
	mu.Unlock()
}
