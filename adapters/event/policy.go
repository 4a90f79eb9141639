package event

import (
	"fmt"
	"strings"
)

// DeliveryPolicy decides what Notify does when a handler returns an error.
type DeliveryPolicy int

const (
	// FailFast stops at the first failing handler and returns its error.
	// Handlers registered after it do not see the event.
	FailFast DeliveryPolicy = iota
	// BestEffort runs every handler and returns all their errors combined.
	BestEffort
)

func (p DeliveryPolicy) String() string {
	switch p {
	case FailFast:
		return "fail-fast"
	case BestEffort:
		return "best-effort"
	default:
		return fmt.Sprintf("DeliveryPolicy(%d)", int(p))
	}
}

func ParsePolicy(s string) (DeliveryPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "fail-fast", "failfast":
		return FailFast, nil
	case "best-effort", "besteffort":
		return BestEffort, nil
	default:
		return FailFast, fmt.Errorf("unknown delivery policy %q", s)
	}
}
