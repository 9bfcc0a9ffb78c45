// Package ground loads ground planning problems from YAML documents.
package ground

import (
	"os"

	"github.com/ghodss/yaml"
	"github.com/pkg/errors"

	"github.com/plan-framework/satplan/pkg/planning"
)

// Document is the YAML shape of a ground problem. Fluents are declared
// once by name and referenced by name everywhere else; indices are
// assigned in declaration order.
type Document struct {
	Name         string           `json:"name,omitempty"`
	Requirements []string         `json:"requirements,omitempty"`
	Fluents      []string         `json:"fluents"`
	Actions      []ActionDocument `json:"actions,omitempty"`
	Init         []string         `json:"init,omitempty"`
	Goal         []string         `json:"goal,omitempty"`
}

// ActionDocument declares one ground action by the names of the
// fluents its precondition and effect touch.
type ActionDocument struct {
	Name   string   `json:"name"`
	Pre    []string `json:"pre,omitempty"`
	PreNot []string `json:"preNot,omitempty"`
	Add    []string `json:"add,omitempty"`
	Del    []string `json:"del,omitempty"`
}

// Load reads and resolves the problem document at path.
func Load(path string) (*planning.Problem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading problem document %s", path)
	}
	problem, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "resolving problem document %s", path)
	}
	return problem, nil
}

// Parse resolves a YAML problem document into an index-stable ground
// problem. Fluent and action names must be unique, and every fluent
// reference must name a declared fluent.
func Parse(data []byte) (*planning.Problem, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "parsing problem document")
	}

	index := make(map[string]int, len(doc.Fluents))
	fluents := make([]planning.Fluent, 0, len(doc.Fluents))
	for i, name := range doc.Fluents {
		if name == "" {
			return nil, errors.Errorf("fluent %d has no name", i)
		}
		if _, ok := index[name]; ok {
			return nil, errors.Errorf("duplicate fluent %q", name)
		}
		index[name] = i
		fluents = append(fluents, planning.Fluent(name))
	}

	resolve := func(names []string, where string) (planning.FluentSet, error) {
		var set planning.FluentSet
		for _, name := range names {
			i, ok := index[name]
			if !ok {
				return planning.FluentSet{}, errors.Errorf("%s references unknown fluent %q", where, name)
			}
			set.Add(i)
		}
		return set, nil
	}

	actions := make([]planning.Action, 0, len(doc.Actions))
	seen := make(map[string]struct{}, len(doc.Actions))
	for i, ad := range doc.Actions {
		if ad.Name == "" {
			return nil, errors.Errorf("action %d has no name", i)
		}
		if _, ok := seen[ad.Name]; ok {
			return nil, errors.Errorf("duplicate action %q", ad.Name)
		}
		seen[ad.Name] = struct{}{}

		pre, err := resolve(ad.Pre, "pre of action "+ad.Name)
		if err != nil {
			return nil, err
		}
		preNot, err := resolve(ad.PreNot, "preNot of action "+ad.Name)
		if err != nil {
			return nil, err
		}
		add, err := resolve(ad.Add, "add of action "+ad.Name)
		if err != nil {
			return nil, err
		}
		del, err := resolve(ad.Del, "del of action "+ad.Name)
		if err != nil {
			return nil, err
		}

		actions = append(actions, planning.Action{
			Name:         ad.Name,
			Precondition: planning.Literals{Pos: pre, Neg: preNot},
			Effect:       planning.Literals{Pos: add, Neg: del},
		})
	}

	init, err := resolve(doc.Init, "init")
	if err != nil {
		return nil, err
	}
	goal, err := resolve(doc.Goal, "goal")
	if err != nil {
		return nil, err
	}

	var requirements []planning.Requirement
	for _, r := range doc.Requirements {
		requirements = append(requirements, planning.Requirement(r))
	}

	return &planning.Problem{
		Name:         doc.Name,
		Requirements: requirements,
		Fluents:      fluents,
		Actions:      actions,
		Init:         init,
		Goal:         goal,
	}, nil
}
