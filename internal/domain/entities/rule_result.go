package entities

// Metadata carries rule diagnostic values (thresholds and computed figures).
// Values should stay scalar (numbers, strings, booleans): encoding/json orders
// map keys when marshalling, which keeps the serialized form deterministic.

type Metadata map[string]interface{}

// RuleResult is the outcome of one rule evaluation. Produced once per rule per
// decision and never mutated; Message is populated only when the rule failed.

type RuleResult struct {
	RuleCode string   `json:"rule_code"`
	Passed   bool     `json:"passed"`
	Message  string   `json:"message,omitempty"`
	Metadata Metadata `json:"metadata,omitempty"`
}
