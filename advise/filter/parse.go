package filter

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/advise-tools/advise/advise/advisor"
	"github.com/advise-tools/advise/advise/issue"
)

const (
	vulnerabilitiesTerm = "vulnerabilities"
	defectsTerm         = "defects"
	issuesTerm          = "issues"

	andSeparator     = ","
	orSeparator      = "|"
	termArgSeparator = ":"
	negation         = "!"
)

// Parse builds a filter from its textual form. Comma separated clauses are ANDed, "|" separated terms within a
// clause are ORed, and a leading "!" negates a term. Terms are:
//
//	vulnerabilities
//	defects
//	issues[:SEVERITY[:CAPABILITY]]
//
// An empty expression yields a filter matching every result. All problems in the expression are reported together.
func Parse(expr string) (Filter, error) {
	var (
		all  All
		errs error
	)

	for _, clause := range strings.Split(expr, andSeparator) {
		clause = strings.TrimSpace(clause)
		if clause == "" {
			continue
		}

		var alternatives Any
		for _, term := range strings.Split(clause, orSeparator) {
			f, err := parseTerm(strings.TrimSpace(term))
			if err != nil {
				errs = multierror.Append(errs, err)
				continue
			}
			alternatives = append(alternatives, f)
		}

		switch len(alternatives) {
		case 0:
			continue
		case 1:
			all = append(all, alternatives[0])
		default:
			all = append(all, alternatives)
		}
	}

	if errs != nil {
		return nil, fmt.Errorf("invalid filter expression %q: %w", expr, errs)
	}

	if len(all) == 1 {
		return all[0], nil
	}
	return all, nil
}

// MustParse is like Parse but panics on an invalid expression.
func MustParse(expr string) Filter {
	f, err := Parse(expr)
	if err != nil {
		panic(err)
	}
	return f
}

func parseTerm(term string) (Filter, error) {
	if strings.HasPrefix(term, negation) {
		inner, err := parseTerm(strings.TrimSpace(strings.TrimPrefix(term, negation)))
		if err != nil {
			return nil, err
		}
		return Not{Filter: inner}, nil
	}

	fields := strings.Split(term, termArgSeparator)
	name := strings.ToLower(strings.TrimSpace(fields[0]))
	args := fields[1:]

	switch name {
	case vulnerabilitiesTerm, defectsTerm:
		if len(args) > 0 {
			return nil, fmt.Errorf("filter %q takes no arguments", name)
		}
		if name == vulnerabilitiesTerm {
			return Vulnerabilities{}, nil
		}
		return Defects{}, nil
	case issuesTerm:
		return parseIssues(args)
	case "":
		return nil, fmt.Errorf("empty filter term")
	default:
		return nil, fmt.Errorf("unknown filter %q (options: %s, %s, %s)", name, vulnerabilitiesTerm, defectsTerm, issuesTerm)
	}
}

func parseIssues(args []string) (Filter, error) {
	if len(args) > 2 {
		return nil, fmt.Errorf("filter %q takes at most a severity and a capability", issuesTerm)
	}

	f := Issues{MinSeverity: issue.HintSeverity}
	if len(args) > 0 {
		sev, err := issue.ParseSeverity(args[0])
		if err != nil {
			return nil, err
		}
		f.MinSeverity = sev
	}
	if len(args) > 1 {
		c, err := advisor.ParseCapability(args[1])
		if err != nil {
			return nil, err
		}
		f.Capability = &c
	}
	return f, nil
}
