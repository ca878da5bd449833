package indices

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

type indexKind int

const (
	dataKind indexKind = iota
	modelKind
)

var indexKindNames = map[indexKind]string{
	dataKind:  "DataIndex",
	modelKind: "ModelIndex",
}

// VariableIndex pairs the input and output tensor indices of one indexing
// space. Data space uses a single name-to-index mapping; model space carries
// separate mappings for the model's input and output tensors, whose layouts
// may differ in width and ordering. Immutable once built.
type VariableIndex struct {
	Input  *TensorIndex
	Output *TensorIndex

	kind       indexKind
	prognostic []string
	diagnostic []string
	forcing    []string
	targets    []string

	nameToIndexInput  map[string]int
	nameToIndexOutput map[string]int
}

// NewDataIndex builds the variable index of the data space. Prognostic
// variables are derived as the complement of diagnostic, forcing and targets
// within the mapping's key set; the input tensor covers forcing + prognostic
// and the output tensor diagnostic + targets.
func NewDataIndex(diagnostic, forcing, targets []string, nameToIndex map[string]int) (*VariableIndex, error) {
	return newVariableIndex(dataKind, diagnostic, forcing, targets, nameToIndex, nameToIndex, nil, nil)
}

// NewModelIndex builds the variable index of the model space. The knownFuture
// and additional lists are forwarded to the input tensor index, where they
// only affect its padded length.
func NewModelIndex(
	diagnostic, forcing, targets []string,
	nameToIndexInput, nameToIndexOutput map[string]int,
	knownFuture, additional []string,
) (*VariableIndex, error) {
	return newVariableIndex(modelKind, diagnostic, forcing, targets, nameToIndexInput, nameToIndexOutput, knownFuture, additional)
}

func newVariableIndex(
	kind indexKind,
	diagnostic, forcing, targets []string,
	nameToIndexInput, nameToIndexOutput map[string]int,
	knownFuture, additional []string,
) (*VariableIndex, error) {
	prognostic := derivePrognostic(nameToIndexInput, diagnostic, forcing, targets)
	roles := RoleLists{
		Prognostic: prognostic,
		Diagnostic: diagnostic,
		Forcing:    forcing,
		Targets:    targets,
	}

	input, err := NewInputTensorIndex(roles, lo.Union(forcing, prognostic), nameToIndexInput, knownFuture, additional)
	if err != nil {
		return nil, err
	}
	output, err := NewOutputTensorIndex(roles, lo.Union(diagnostic, targets), nameToIndexOutput)
	if err != nil {
		return nil, err
	}

	return &VariableIndex{
		Input:             input,
		Output:            output,
		kind:              kind,
		prognostic:        prognostic,
		diagnostic:        diagnostic,
		forcing:           forcing,
		targets:           targets,
		nameToIndexInput:  nameToIndexInput,
		nameToIndexOutput: nameToIndexOutput,
	}, nil
}

// derivePrognostic returns the mapping keys not assigned to any other role,
// ordered by their tensor position so derivation is deterministic.
func derivePrognostic(nameToIndex map[string]int, diagnostic, forcing, targets []string) []string {
	assigned := lo.Union(forcing, diagnostic, targets)
	names := lo.Keys(nameToIndex)
	slices.SortFunc(names, func(a, b string) int {
		return nameToIndex[a] - nameToIndex[b]
	})
	return lo.Filter(names, func(name string, _ int) bool {
		return !lo.Contains(assigned, name)
	})
}

func (v *VariableIndex) Prognostic() []string { return v.prognostic }

func (v *VariableIndex) Diagnostic() []string { return v.diagnostic }

func (v *VariableIndex) Forcing() []string { return v.forcing }

func (v *VariableIndex) Targets() []string { return v.targets }

// Equal reports whether both variable indices hold equal input and output
// tensor indices. A nil operand is only equal to nil.
func (v *VariableIndex) Equal(other *VariableIndex) bool {
	if v == nil || other == nil {
		return v == nil && other == nil
	}
	return v.Input.Equal(other.Input) && v.Output.Equal(other.Output)
}

// ToDict exports both tensor indices keyed by view.
func (v *VariableIndex) ToDict() map[string]map[string][]int {
	return map[string]map[string][]int{
		"input":  v.Input.ToDict(),
		"output": v.Output.ToDict(),
	}
}

func (v *VariableIndex) String() string {
	return fmt.Sprintf("%s(input=%v, output=%v)", indexKindNames[v.kind], v.Input, v.Output)
}

// MarshalYAML renders the index as a tagged scalar (e.g. "!DataIndex ...")
// for human-readable dumps.
func (v *VariableIndex) MarshalYAML() (any, error) {
	return &yaml.Node{
		Kind:  yaml.ScalarNode,
		Tag:   "!" + indexKindNames[v.kind],
		Value: v.String(),
	}, nil
}

func (v *VariableIndex) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.ToDict())
}
