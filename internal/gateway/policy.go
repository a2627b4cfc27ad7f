package gateway

import (
	"strings"

	"github.com/ShiraazMoollatjie/goluhn"
)

// ApprovalPolicy decides the outcome of the standard flow once all phases
// have run. The explicit-decline entry point bypasses it.
type ApprovalPolicy interface {
	Approve(card CardDetails) bool
}

// AlwaysApprove is the wired default: the simulated gateway authorizes every
// submission regardless of card data.
type AlwaysApprove struct{}

func (AlwaysApprove) Approve(CardDetails) bool { return true }

// LuhnPolicy declines cards whose number fails its checksum. Available for
// stricter simulations, not wired by default.
type LuhnPolicy struct{}

func (LuhnPolicy) Approve(card CardDetails) bool {
	number := strings.ReplaceAll(card.Number, " ", "")
	return goluhn.Validate(number) == nil
}
