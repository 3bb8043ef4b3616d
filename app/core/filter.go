package core

import (
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// ApplyQuery updates the highlight set from a search query.
//
//	""            clears the filter
//	"=expr"       boolean expression over {id, name, role, degree}
//	anything else fuzzy match on name and role
//
// A bad expression clears the filter and reports the error; the canvas keeps
// running either way.
func (s *Scene) ApplyQuery(query string) error {
	query = strings.TrimSpace(query)
	if query == "" {
		s.highlighted = nil
		return nil
	}

	if code, ok := strings.CutPrefix(query, "="); ok {
		program, err := expr.Compile(code, expr.AsBool(), expr.AllowUndefinedVariables())
		if err != nil {
			s.highlighted = nil
			return err
		}
		s.highlighted = s.matchExpr(program)
		return nil
	}

	hits := make(map[string]bool, len(s.Graph.Nodes))
	for _, n := range s.Graph.Nodes {
		if fuzzy.MatchFold(query, n.Name) || fuzzy.MatchFold(query, n.Role) {
			hits[n.ID] = true
		}
	}
	s.highlighted = hits
	return nil
}

func (s *Scene) matchExpr(program *vm.Program) map[string]bool {
	hits := make(map[string]bool, len(s.Graph.Nodes))
	for _, n := range s.Graph.Nodes {
		env := map[string]any{
			"id":     n.ID,
			"name":   n.Name,
			"role":   n.Role,
			"degree": n.Degree,
		}
		out, err := expr.Run(program, env)
		if err != nil {
			// A node the expression chokes on just doesn't match.
			continue
		}
		if hit, ok := out.(bool); ok && hit {
			hits[n.ID] = true
		}
	}
	return hits
}
