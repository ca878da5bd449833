package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MeteoSwiss-APN/anemoi-models/pkg/indices"
)

func TestFromJSON(t *testing.T) {
	//** Act
	variables, err := FromJSON("testdata/variables.json")

	//** Assert
	assert.NoError(t, err)
	assert.Equal(t, []string{"z"}, variables.Diagnostic)
	assert.Equal(t, []string{"sp"}, variables.Forcing)
	assert.Equal(t, []string{"sp"}, variables.KnownFuture)
	assert.Equal(t, 5, len(variables.NameToIndex))
	assert.Equal(t, 4, variables.NameToIndex["sp"])
}

func TestFromYAMLMatchesJSON(t *testing.T) {
	//** Act
	fromJSON, err1 := FromJSON("testdata/variables.json")
	fromYAML, err2 := FromYAML("testdata/variables.yaml")

	//** Assert
	assert.NoError(t, err1)
	assert.NoError(t, err2)
	assert.Equal(t, fromJSON, fromYAML)
}

func TestFromJSONMissingFile(t *testing.T) {
	//** Act
	_, err := FromJSON("testdata/does_not_exist.json")

	//** Assert
	assert.Error(t, err)
}

func TestFromYAMLMissingMapping(t *testing.T) {
	//** Arrange
	file := t.TempDir() + "/empty.yaml"
	assert.NoError(t, os.WriteFile(file, []byte("diagnostic: [z]\n"), 0o644))

	//** Act
	_, err := FromYAML(file)

	//** Assert
	assert.ErrorContains(t, err, "nameToIndex")
}

func TestDataIndexFromConfig(t *testing.T) {
	//** Arrange
	variables, err := FromYAML("testdata/variables.yaml")
	assert.NoError(t, err)

	//** Act
	index, err := DataIndex(variables)

	//** Assert
	assert.NoError(t, err)
	assert.Equal(t, []string{"t", "u", "v"}, index.Prognostic())
	assert.Equal(t, []int{0, 1, 2, 4}, index.Input.Full())
	assert.Equal(t, []int{3}, index.Output.Full())
	// Data-space lengths never pad for known-future or additional variables
	assert.Equal(t, 4, index.Input.Len())
}

func TestModelIndexFromConfig(t *testing.T) {
	//** Arrange
	variables, err := FromYAML("testdata/variables.yaml")
	assert.NoError(t, err)

	//** Act
	index, err := ModelIndex(variables)

	//** Assert
	assert.NoError(t, err)
	// 3 prognostic + 1 forcing + 2*1 known future + 1 additional
	assert.Equal(t, 7, index.Input.Len())
	assert.Equal(t, 1, index.Output.Len())
}

func TestModelIndexSeparateOutputMapping(t *testing.T) {
	//** Arrange
	variables, err := FromYAML("testdata/model_variables.yaml")
	assert.NoError(t, err)

	//** Act
	index, err := ModelIndex(variables)

	//** Assert
	assert.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 4}, index.Input.Full())
	assert.Equal(t, []int{3}, index.Output.Full())
}

func TestDataIndexFromConfigInvalidForcing(t *testing.T) {
	//** Arrange
	variables, err := FromYAML("testdata/variables.yaml")
	assert.NoError(t, err)
	variables.Forcing = append(variables.Forcing, "tp")

	//** Act
	_, err = DataIndex(variables)

	//** Assert
	var invalidErr *indices.InvalidIncludesError
	assert.ErrorAs(t, err, &invalidErr)
	assert.Equal(t, []string{"tp"}, invalidErr.Missing)
}
