package indices

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

type lengthPolicy int

const (
	// fullLength: tensor length is the number of included variables.
	fullLength lengthPolicy = iota
	// paddedLength: model-input length, padded with two slots per
	// known-future variable and one per additional model variable.
	paddedLength
)

// TensorIndex maps the variables of one tensor to per-role position arrays.
// Each array holds the mapping positions of the names belonging to the
// corresponding role, in strictly ascending order, so the layout is
// reproducible regardless of input list ordering. Immutable once built.
type TensorIndex struct {
	prognostic []int
	diagnostic []int
	forcing    []int
	targets    []int
	full       []int

	includes    []string
	nameToIndex map[string]int

	policy      lengthPolicy
	knownFuture int
	additional  int
}

// NewInputTensorIndex builds the index of a model-input tensor. The
// knownFuture and additional lists only contribute to Len: a known-future
// variable reserves two input slots (current + future value) and an
// additional model variable one, none of which appear in the full array.
func NewInputTensorIndex(
	roles RoleLists,
	includes []string,
	nameToIndex map[string]int,
	knownFuture []string,
	additional []string,
) (*TensorIndex, error) {
	index, err := newTensorIndex(roles, includes, nameToIndex, paddedLength)
	if err != nil {
		return nil, err
	}
	index.knownFuture = len(knownFuture)
	index.additional = len(additional)
	return index, nil
}

// NewOutputTensorIndex builds the index of an output tensor, whose length is
// simply the number of included variables.
func NewOutputTensorIndex(roles RoleLists, includes []string, nameToIndex map[string]int) (*TensorIndex, error) {
	return newTensorIndex(roles, includes, nameToIndex, fullLength)
}

func newTensorIndex(roles RoleLists, includes []string, nameToIndex map[string]int, policy lengthPolicy) (*TensorIndex, error) {
	missing := lo.Filter(includes, func(name string, _ int) bool {
		_, ok := nameToIndex[name]
		return !ok
	})
	if len(missing) > 0 {
		return nil, &InvalidIncludesError{Missing: missing}
	}

	return &TensorIndex{
		prognostic:  buildIdxFromList(roles.Prognostic, nameToIndex),
		diagnostic:  buildIdxFromList(roles.Diagnostic, nameToIndex),
		forcing:     buildIdxFromList(roles.Forcing, nameToIndex),
		targets:     buildIdxFromList(roles.Targets, nameToIndex),
		full:        buildIdxFromList(includes, nameToIndex),
		includes:    includes,
		nameToIndex: nameToIndex,
		policy:      policy,
	}, nil
}

// buildIdxFromList collects the mapping positions of the names present in
// varList, ascending. Names absent from the mapping are dropped, not errors:
// a role list may legally mention variables this tensor does not carry.
func buildIdxFromList(varList []string, nameToIndex map[string]int) []int {
	positions := make([]int, 0, len(varList))
	for name, position := range nameToIndex {
		if lo.Contains(varList, name) {
			positions = append(positions, position)
		}
	}
	slices.Sort(positions)
	return positions
}

// Len returns the tensor length. For output tensors this is len(Full()); for
// model-input tensors it additionally counts the padded known-future and
// additional slots, so it intentionally differs from len(Full()) whenever
// those lists are non-empty.
func (t *TensorIndex) Len() int {
	if t.policy == paddedLength {
		return len(t.prognostic) + len(t.forcing) + 2*t.knownFuture + t.additional
	}
	return len(t.full)
}

// Index returns the position array of the given role.
func (t *TensorIndex) Index(role Role) []int {
	switch role {
	case Prognostic:
		return t.prognostic
	case Diagnostic:
		return t.diagnostic
	case Forcing:
		return t.forcing
	case Targets:
		return t.targets
	case Full:
		return t.full
	default:
		panic(fmt.Sprintf("indices: invalid role %v", role))
	}
}

func (t *TensorIndex) Prognostic() []int { return t.prognostic }

func (t *TensorIndex) Diagnostic() []int { return t.diagnostic }

func (t *TensorIndex) Forcing() []int { return t.forcing }

func (t *TensorIndex) Targets() []int { return t.targets }

func (t *TensorIndex) Full() []int { return t.full }

func (t *TensorIndex) Includes() []string { return t.includes }

func (t *TensorIndex) NameToIndex() map[string]int { return t.nameToIndex }

// Equal reports whether both indices hold elementwise-equal position arrays.
// A nil operand is only equal to nil.
func (t *TensorIndex) Equal(other *TensorIndex) bool {
	if t == nil || other == nil {
		return t == nil && other == nil
	}
	return slices.Equal(t.prognostic, other.prognostic) &&
		slices.Equal(t.diagnostic, other.diagnostic) &&
		slices.Equal(t.forcing, other.forcing) &&
		slices.Equal(t.targets, other.targets) &&
		slices.Equal(t.full, other.full)
}

// ToDict exports the five position arrays keyed by role name, suitable for
// persisting alongside a checkpoint.
func (t *TensorIndex) ToDict() map[string][]int {
	return map[string][]int{
		Prognostic.String(): t.prognostic,
		Diagnostic.String(): t.diagnostic,
		Forcing.String():    t.forcing,
		Targets.String():    t.targets,
		Full.String():       t.full,
	}
}

func (t *TensorIndex) kindName() string {
	if t.policy == paddedLength {
		return "InputTensorIndex"
	}
	return "OutputTensorIndex"
}

func (t *TensorIndex) String() string {
	return fmt.Sprintf("%s(includes=%v, full=%v)", t.kindName(), t.includes, t.full)
}

// MarshalYAML renders the index as a tagged scalar (e.g.
// "!InputTensorIndex ...") for human-readable dumps.
func (t *TensorIndex) MarshalYAML() (any, error) {
	return &yaml.Node{
		Kind:  yaml.ScalarNode,
		Tag:   "!" + t.kindName(),
		Value: t.String(),
	}, nil
}

func (t *TensorIndex) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.ToDict())
}
