package domain

import (
	"encoding/json"
	"fmt"

	"github.com/finsight-app/finsight_backend/internal/apperrors"
)

// RiskTier selects the investment-pathway strategy requested from the
// advisor backend.
type RiskTier string

const (
	RiskConservative RiskTier = "conservative"
	RiskBalanced     RiskTier = "balanced"
	RiskAggressive   RiskTier = "aggressive"
)

// ParseRiskTier validates a risk tier string.
func ParseRiskTier(s string) (RiskTier, error) {
	switch t := RiskTier(s); t {
	case RiskConservative, RiskBalanced, RiskAggressive:
		return t, nil
	default:
		return "", fmt.Errorf("%w: unknown risk tier %q", apperrors.ErrValidation, s)
	}
}

// AdvisorReply is the text payload the advisor backend returns for a chat
// turn: the model's intermediate thought plus the final output.
type AdvisorReply struct {
	Thought string `json:"thought"`
	Output  string `json:"output"`
}

// PathwayGraph is the node/edge visualization payload for an investment
// pathway. Nodes and edges are already-finalized display data; they pass
// through verbatim.
type PathwayGraph struct {
	Nodes json.RawMessage `json:"nodes"`
	Edges json.RawMessage `json:"edges"`
}
