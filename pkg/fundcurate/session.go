package fundcurate

import "github.com/zeebo/xxh3"

// Session remembers which input artifacts were already curated so the same
// upload is not processed twice. Artifacts are identified by content, not name.
type Session struct {
	seen map[uint64]string
}

// NewSession returns an empty session.
func NewSession() *Session {
	return &Session{seen: make(map[uint64]string)}
}

// Remember records data under name. If identical content was recorded
// before, it returns the earlier name and true and keeps the first record.
func (s *Session) Remember(name string, data []byte) (string, bool) {
	sum := xxh3.Hash(data)
	if first, ok := s.seen[sum]; ok {
		return first, true
	}
	s.seen[sum] = name
	return name, false
}

// Len returns the number of distinct artifacts recorded.
func (s *Session) Len() int {
	return len(s.seen)
}
