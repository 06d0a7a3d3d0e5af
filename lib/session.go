package lib

import (
	"sort"
	"sync"
)

// Symbol is one symbol table entry.
type Symbol struct {
	Name string
	Type string
}

// Session holds the state shared by consecutive checks: the symbol table
// filled by successful declarations and the set of identifiers seen by
// lexeme checks. Nothing reads the declared-variables set back; it is only
// exposed for inspection.
type Session struct {
	mu       sync.Mutex
	symbols  map[string]string
	declared map[string]struct{}
}

func NewSession() *Session {
	return &Session{
		symbols:  map[string]string{},
		declared: map[string]struct{}{},
	}
}

// Redeclaring a name silently replaces its type.
func (s *Session) declare(name string, typ string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.symbols[name] = typ
}

func (s *Session) observe(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.declared[name] = struct{}{}
}

// Lookup returns the declared type of name.
func (s *Session) Lookup(name string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	typ, ok := s.symbols[name]
	return typ, ok
}

// Symbols returns a snapshot of the symbol table sorted by name.
func (s *Session) Symbols() []Symbol {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]Symbol, 0, len(s.symbols))
	for name, typ := range s.symbols {
		result = append(result, Symbol{Name: name, Type: typ})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}

func (s *Session) DeclaredVariables() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]string, 0, len(s.declared))
	for name := range s.declared {
		result = append(result, name)
	}
	sort.Strings(result)
	return result
}

func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.symbols = map[string]string{}
	s.declared = map[string]struct{}{}
}
