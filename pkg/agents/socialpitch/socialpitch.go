// Package socialpitch defines the Social Pitch interview agent: six short
// sections that produce a pitch for social settings, built on top of a
// finished Value Canvas.
package socialpitch

import (
	"ai-strategy-agent-be/pkg/agent/catalog"
	"ai-strategy-agent-be/pkg/agents/promptfmt"
)

const (
	Key     = "social_pitch"
	AgentID = 3

	// PassScore matches the rating scale shared by all interview agents.
	PassScore = 3
)

var sections = []catalog.Descriptor{
	{
		ID:             "name",
		Title:          "Name",
		RequiredFields: []string{"pitch_name"},
		Next:           "same",
		RemoteID:       17,
	},
	{
		ID:             "same",
		Title:          "Same",
		RequiredFields: []string{"same_statement"},
		Next:           "fame",
		RemoteID:       18,
	},
	{
		ID:             "fame",
		Title:          "Fame",
		RequiredFields: []string{"fame_statement"},
		Next:           "sp_pain",
		RemoteID:       19,
	},
	{
		ID:             "sp_pain",
		Title:          "Pain",
		RequiredFields: []string{"pain_statement"},
		Next:           "aim",
		RemoteID:       20,
	},
	{
		ID:             "aim",
		Title:          "Aim",
		RequiredFields: []string{"aim_statement"},
		Next:           "game",
		RemoteID:       21,
	},
	{
		ID:             "game",
		Title:          "Game",
		RequiredFields: []string{"game_statement"},
		RemoteID:       22,
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
