// Package valuecanvas defines the Value Canvas interview agent: an eight
// section guided conversation that produces the client's core positioning
// document.
package valuecanvas

import (
	"ai-strategy-agent-be/pkg/agent/catalog"
	"ai-strategy-agent-be/pkg/agents/promptfmt"
)

const (
	// Key identifies this agent in routes, sessions and events.
	Key = "value_canvas"

	// AgentID is this agent's id in the remote section store.
	AgentID = 2

	// PassScore is the lowest self-rated score that completes a section.
	PassScore = 3
)

var sections = []catalog.Descriptor{
	{
		ID:             "interview",
		Title:          "Initial Interview",
		RequiredFields: []string{"client_name", "preferred_name", "company_name", "industry"},
		Next:           "icp",
		RemoteID:       9,
	},
	{
		ID:    "icp",
		Title: "Ideal Client Persona",
		RequiredFields: []string{
			"icp_nickname", "icp_role_identity", "icp_context_scale",
			"icp_industry_sector_context", "icp_demographics", "icp_interests",
			"icp_values", "icp_golden_insight", "icp_buying_triggers", "icp_red_flags",
		},
		Next:     "pain",
		RemoteID: 10,
	},
	{
		ID:    "pain",
		Title: "The Pain",
		RequiredFields: []string{
			"pain1_symptom", "pain1_struggle", "pain1_cost", "pain1_consequence",
			"pain2_symptom", "pain2_struggle", "pain2_cost", "pain2_consequence",
			"pain3_symptom", "pain3_struggle", "pain3_cost", "pain3_consequence",
		},
		Next:     "deep_fear",
		RemoteID: 11,
	},
	{
		ID:             "deep_fear",
		Title:          "The Deep Fear",
		RequiredFields: []string{"deep_fear", "golden_insight"},
		Next:           "payoffs",
		RemoteID:       12,
	},
	{
		ID:    "payoffs",
		Title: "The Payoffs",
		RequiredFields: []string{
			"payoff1_objective", "payoff1_desire", "payoff1_without", "payoff1_resolution",
			"payoff2_objective", "payoff2_desire", "payoff2_without", "payoff2_resolution",
			"payoff3_objective", "payoff3_desire", "payoff3_without", "payoff3_resolution",
		},
		Next:     "signature_method",
		RemoteID: 13,
	},
	{
		ID:             "signature_method",
		Title:          "Signature Method",
		RequiredFields: []string{"method_name", "sequenced_principles", "principle_descriptions"},
		Next:           "mistakes",
		RemoteID:       14,
	},
	{
		ID:             "mistakes",
		Title:          "The Mistakes",
		RequiredFields: []string{"mistakes"},
		Next:           "prize",
		RemoteID:       15,
	},
	{
		ID:             "prize",
		Title:          "The Prize",
		RequiredFields: []string{"prize_statement"},
		RemoteID:       16,
	},
}

// Catalog is the process-wide, read-only section chain for this agent.
var Catalog = catalog.MustNew(sections)

// Prompts implements the executor's prompt boundary for this agent.
type Prompts struct{}

func (Prompts) BaseRules() string { return baseRules }

func (Prompts) SectionPrompt(id catalog.SectionID, profile map[string]string) string {
	text, ok := sectionPrompts[id]
	if !ok {
		return ""
	}
	return promptfmt.Render(text, profile)
}
