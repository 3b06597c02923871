// Package session provides the SessionStore implementations: the process-wide
// holder of "current user or none", persisted under the well-known key "user"
// and rehydrated at startup.
package session

import (
	"encoding/json"

	"github.com/Elvis-12/sky-wanderer-control-center/internal/core/domain"
)

// PersistKey is the single entry name under which the session is persisted.
const PersistKey = "user"

// decode parses a persisted session. Malformed payloads, missing identity
// fields, or an unknown role all count as "no session".
func decode(raw []byte) (domain.Session, bool) {
	var s domain.Session
	if err := json.Unmarshal(raw, &s); err != nil {
		return domain.Session{}, false
	}
	if s.ID == "" || s.Email == "" || !s.Role.Valid() {
		return domain.Session{}, false
	}
	return s, true
}
