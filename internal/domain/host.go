package domain

import (
	"fmt"
	"regexp"
)

// MaxHostLen bounds candidate hosts to the DNS name limit.
const MaxHostLen = 253

var hostPattern = regexp.MustCompile(`^[A-Za-z0-9](?:[A-Za-z0-9.\-]*[A-Za-z0-9])?$`)

// Host is a probe target that has passed the allow-list grammar. ParseHost
// is the only constructor, so any Host that reaches command construction
// has been validated. The zero value is empty and never produced.
type Host struct {
	name string
}

// String returns the validated host text, unchanged from the candidate.
func (h Host) String() string { return h.name }

// RejectError explains why a candidate host was refused.
type RejectError struct {
	Candidate string
	Reason    string
}

func (e *RejectError) Error() string {
	return fmt.Sprintf("invalid host %q: %s", e.Candidate, e.Reason)
}

// ParseHost validates a raw caller-supplied candidate: ASCII letters,
// digits, '.' and '-' only, no leading or trailing separator, non-empty,
// at most MaxHostLen bytes. Nothing is trimmed or case-folded and no DNS
// lookup happens here; a candidate with surrounding whitespace is a
// reject, not a trim-and-accept.
func ParseHost(raw string) (Host, error) {
	if raw == "" {
		return Host{}, &RejectError{Candidate: raw, Reason: "empty"}
	}
	if len(raw) > MaxHostLen {
		return Host{}, &RejectError{
			Candidate: raw[:16] + "…",
			Reason:    fmt.Sprintf("longer than %d bytes", MaxHostLen),
		}
	}
	for i := 0; i < len(raw); i++ {
		if !isHostByte(raw[i]) {
			return Host{}, &RejectError{
				Candidate: raw,
				Reason:    fmt.Sprintf("disallowed byte %q", raw[i]),
			}
		}
	}
	if !hostPattern.MatchString(raw) {
		return Host{}, &RejectError{
			Candidate: raw,
			Reason:    "must not start or end with '.' or '-'",
		}
	}
	return Host{name: raw}, nil
}

func isHostByte(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z', b >= '0' && b <= '9':
		return true
	case b == '.' || b == '-':
		return true
	}
	return false
}
