package state

import (
	"fmt"
	"strings"

	"ai-strategy-agent-be/pkg/agent/catalog"
)

// DirectiveKind enumerates the navigation outcomes of a turn.
type DirectiveKind int

const (
	DirectiveStay DirectiveKind = iota
	DirectiveNext
	DirectiveJump
)

// Directive is the validated navigation decision for a turn. Jump carries its
// target section; Stay and Next do not.
type Directive struct {
	Kind   DirectiveKind
	Target catalog.SectionID
}

func Stay() Directive { return Directive{Kind: DirectiveStay} }
func Next() Directive { return Directive{Kind: DirectiveNext} }

func JumpTo(id catalog.SectionID) Directive {
	return Directive{Kind: DirectiveJump, Target: id}
}

func (d Directive) String() string {
	switch d.Kind {
	case DirectiveNext:
		return "next"
	case DirectiveJump:
		return "jump:" + string(d.Target)
	default:
		return "stay"
	}
}

// ParseDirective converts the oracle's raw directive string into a tagged
// Directive. Accepted forms are "stay", "next", "jump:<id>" and the legacy
// "modify:<id>". A jump target not present in the catalog is an error; the
// caller decides how to degrade (it must never crash the turn).
func ParseDirective(raw string, cat *catalog.Catalog) (Directive, error) {
	s := strings.ToLower(strings.TrimSpace(raw))

	switch s {
	case "stay", "":
		return Stay(), nil
	case "next":
		return Next(), nil
	}

	for _, prefix := range []string{"jump:", "modify:"} {
		if target, ok := strings.CutPrefix(s, prefix); ok {
			id := catalog.SectionID(strings.TrimSpace(target))
			if !cat.Contains(id) {
				return Stay(), fmt.Errorf("directive %q names unknown section %q", raw, id)
			}
			return JumpTo(id), nil
		}
	}

	return Stay(), fmt.Errorf("unrecognized directive %q", raw)
}
