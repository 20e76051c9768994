// Package specialreport defines the Special Report agent: three sections
// that plan a lead-generating report from topic to chapter structure.
package specialreport

import (
	"ai-strategy-agent-be/pkg/agent/catalog"
	"ai-strategy-agent-be/pkg/agents/promptfmt"
)

const (
	Key     = "special_report"
	AgentID = 6

	PassScore = 3
)

var sections = []catalog.Descriptor{
	{
		ID:             "topic_selection",
		Title:          "Topic Selection",
		RequiredFields: []string{"report_topic", "target_reader", "reader_payoff"},
		Next:           "content_development",
		RemoteID:       23,
	},
	{
		ID:             "content_development",
		Title:          "Content Development",
		RequiredFields: []string{"key_arguments", "supporting_evidence", "unique_angle"},
		Next:           "report_structure",
		RemoteID:       24,
	},
	{
		ID:             "report_structure",
		Title:          "Report Structure",
		RequiredFields: []string{"chapter_outline", "call_to_action"},
		RemoteID:       25,
	},
}

var Catalog = catalog.MustNew(sections)

type Prompts struct{}

func (Prompts) BaseRules() string { return baseRules }

func (Prompts) SectionPrompt(id catalog.SectionID, profile map[string]string) string {
	text, ok := sectionPrompts[id]
	if !ok {
		return ""
	}
	return promptfmt.Render(text, profile)
}
