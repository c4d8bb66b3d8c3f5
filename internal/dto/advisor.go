package dto

import "encoding/json"

// ChatRequest is a single turn sent to the financial assistant.
type ChatRequest struct {
	Input string `json:"input" binding:"required"`
}

// ChatResponse carries the assistant's thought process and final answer.
type ChatResponse struct {
	Thought string `json:"thought"`
	Output  string `json:"output"`
}

// FinancialPathRequest asks the advisor backend for an investment pathway.
// Input may be empty; the advisor service substitutes the default prompt
// for the chosen risk tier.
type FinancialPathRequest struct {
	Input string `json:"input"`
	Risk  string `json:"risk" binding:"required,oneof=conservative balanced aggressive"`
}

// FinancialPathResponse is the node/edge graph the flow renderer consumes,
// passed through from the advisor backend verbatim.
type FinancialPathResponse struct {
	Nodes json.RawMessage `json:"nodes"`
	Edges json.RawMessage `json:"edges"`
}
