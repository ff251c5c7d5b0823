package app

import (
	"sync"

	"github.com/kegliz/naqmap/geometry"
	"github.com/kegliz/naqmap/naop"
)

// compileResult is what a POST /api/compile run keeps around so a
// later GET .../viz request can render the same layout.
type compileResult struct {
	Program *naop.Program
	Geo     *geometry.Geometry
}

// compileStore holds compile results in memory, keyed by the id
// returned from the compile call. There is no eviction: the mapserver
// is a demo/debugging surface, not a persistent service.
type compileStore struct {
	mu      sync.RWMutex
	results map[string]compileResult
}

func newCompileStore() *compileStore {
	return &compileStore{results: make(map[string]compileResult)}
}

func (s *compileStore) Put(id string, r compileResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results[id] = r
}

func (s *compileStore) Get(id string) (compileResult, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.results[id]
	return r, ok
}
