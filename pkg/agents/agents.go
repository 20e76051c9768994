// Package agents registers every interview agent the service can run.
package agents

import (
	"fmt"

	"ai-strategy-agent-be/pkg/agent/catalog"
	"ai-strategy-agent-be/pkg/agent/executor"
	"ai-strategy-agent-be/pkg/agents/socialpitch"
	"ai-strategy-agent-be/pkg/agents/specialreport"
	"ai-strategy-agent-be/pkg/agents/valuecanvas"
)

// Definition bundles everything agent-specific the service needs to run one
// interview: its section chain, its prompts, and its remote store identity.
type Definition struct {
	Key       string
	AgentID   int
	PassScore int
	Catalog   *catalog.Catalog
	Prompts   executor.PromptProvider
}

var registry = map[string]Definition{
	valuecanvas.Key: {
		Key:       valuecanvas.Key,
		AgentID:   valuecanvas.AgentID,
		PassScore: valuecanvas.PassScore,
		Catalog:   valuecanvas.Catalog,
		Prompts:   valuecanvas.Prompts{},
	},
	socialpitch.Key: {
		Key:       socialpitch.Key,
		AgentID:   socialpitch.AgentID,
		PassScore: socialpitch.PassScore,
		Catalog:   socialpitch.Catalog,
		Prompts:   socialpitch.Prompts{},
	},
	specialreport.Key: {
		Key:       specialreport.Key,
		AgentID:   specialreport.AgentID,
		PassScore: specialreport.PassScore,
		Catalog:   specialreport.Catalog,
		Prompts:   specialreport.Prompts{},
	},
}

// Lookup resolves an agent key from a route or session.
func Lookup(key string) (Definition, error) {
	def, ok := registry[key]
	if !ok {
		return Definition{}, fmt.Errorf("unknown agent %q", key)
	}
	return def, nil
}

// Keys lists the registered agent keys.
func Keys() []string {
	out := make([]string, 0, len(registry))
	for key := range registry {
		out = append(out, key)
	}
	return out
}
