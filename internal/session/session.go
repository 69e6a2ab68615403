package session

import (
	"encoding/json"
	"time"
)

// Session is the server-side record bound to one authenticated connection.
// The record is stored as JSON under <prefix><id>; the id itself lives in
// the cache key and in the client cookie, never inside the value.
//
// Extra carries transport-specific fields that may be attached to the
// record by other layers. They survive a round-trip through the store but
// the service never interprets them.
type Session struct {
	ID        string
	UserID    string
	CreatedAt time.Time
	Extra     map[string]any
}

// Authenticated reports whether the record belongs to a logged-in user.
// A record with no userId is never treated as authenticated.
func (s *Session) Authenticated() bool {
	return s != nil && s.UserID != ""
}

// serialized layout: createdAt is milliseconds since epoch, matching the
// representation the web clients expect.
func (s Session) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(s.Extra)+2)
	for k, v := range s.Extra {
		m[k] = v
	}
	m["userId"] = s.UserID
	m["createdAt"] = s.CreatedAt.UnixMilli()
	return json.Marshal(m)
}

func (s *Session) UnmarshalJSON(data []byte) error {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}

	if v, ok := m["userId"].(string); ok {
		s.UserID = v
	}
	delete(m, "userId")

	if v, ok := m["createdAt"].(float64); ok {
		s.CreatedAt = time.UnixMilli(int64(v))
	}
	delete(m, "createdAt")

	if len(m) > 0 {
		s.Extra = m
	}

	return nil
}
