// Package session tracks designer sessions and coordinates exclusive canvas
// editing. Two SSH users may browse concurrently, but only one session edits
// a given canvas at a time.
package session

import (
	"fmt"
	"sync/atomic"
	"time"
)

// SessionID uniquely identifies a designer session (e.g., an SSH connection).
type SessionID string

var sessionSeq atomic.Uint64

// NewSessionID derives a session identifier from a user name, the current
// time, and a process-wide sequence number, so concurrent connections by the
// same user never collide.
func NewSessionID(user string) SessionID {
	return SessionID(fmt.Sprintf("%s-%d-%d", user, time.Now().UnixNano(), sessionSeq.Add(1)))
}
