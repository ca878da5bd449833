// Package config decodes resolved variable configurations and builds the
// data- and model-space indices from them.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/MeteoSwiss-APN/anemoi-models/pkg/indices"
)

// Variables is the resolved variable configuration of one dataset/model
// pair. NameToIndex describes the data-space tensor layout; the model-space
// mappings default to it when omitted.
type Variables struct {
	Diagnostic  []string       `mapstructure:"diagnostic" yaml:"diagnostic"`
	Forcing     []string       `mapstructure:"forcing" yaml:"forcing"`
	Targets     []string       `mapstructure:"targets" yaml:"targets"`
	KnownFuture []string       `mapstructure:"knownFuture" yaml:"knownFuture"`
	Additional  []string       `mapstructure:"additional" yaml:"additional"`
	NameToIndex map[string]int `mapstructure:"nameToIndex" yaml:"nameToIndex"`
	ModelInput  map[string]int `mapstructure:"nameToIndexModelInput" yaml:"nameToIndexModelInput"`
	ModelOutput map[string]int `mapstructure:"nameToIndexModelOutput" yaml:"nameToIndexModelOutput"`
}

func FromJSON(file string) (Variables, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return Variables{}, err
	}

	var raw map[string]any
	if err := json.Unmarshal(bytes, &raw); err != nil {
		return Variables{}, err
	}

	var variables Variables
	if err := mapstructure.Decode(raw, &variables); err != nil {
		return Variables{}, err
	}

	return variables, validate(variables)
}

func FromYAML(file string) (Variables, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return Variables{}, err
	}

	var variables Variables
	if err := yaml.Unmarshal(bytes, &variables); err != nil {
		return Variables{}, err
	}

	return variables, validate(variables)
}

func validate(variables Variables) error {
	if len(variables.NameToIndex) == 0 {
		return fmt.Errorf("variable configuration is missing nameToIndex")
	}
	return nil
}

// DataIndex builds the data-space variable index from the configuration.
func DataIndex(variables Variables) (*indices.VariableIndex, error) {
	index, err := indices.NewDataIndex(
		variables.Diagnostic,
		variables.Forcing,
		variables.Targets,
		variables.NameToIndex,
	)
	if err != nil {
		return nil, fmt.Errorf("cannot build data index: %w", err)
	}
	return index, nil
}

// ModelIndex builds the model-space variable index from the configuration,
// falling back to the data-space mapping for either tensor when the
// corresponding model mapping is omitted.
func ModelIndex(variables Variables) (*indices.VariableIndex, error) {
	input := variables.ModelInput
	if input == nil {
		input = variables.NameToIndex
	}
	output := variables.ModelOutput
	if output == nil {
		output = variables.NameToIndex
	}

	index, err := indices.NewModelIndex(
		variables.Diagnostic,
		variables.Forcing,
		variables.Targets,
		input,
		output,
		variables.KnownFuture,
		variables.Additional,
	)
	if err != nil {
		return nil, fmt.Errorf("cannot build model index: %w", err)
	}
	return index, nil
}
