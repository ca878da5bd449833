package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"path"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/MeteoSwiss-APN/anemoi-models/internal/config"
	"github.com/MeteoSwiss-APN/anemoi-models/pkg/indices"
)

var (
	validSpaces  = []string{"data", "model"}
	validFormats = []string{"json", "yaml"}
	builders     = map[string]func(config.Variables) (*indices.VariableIndex, error){
		"data":  config.DataIndex,
		"model": config.ModelIndex,
	}
)

func main() {
	// Define arguments
	inputPtr := flag.String("input", "", "Variable configuration file (.json or .yaml/.yml)")
	spacePtr := flag.String("space", "data", `Indexing space to build. Allowed values are: "data" (dataset tensor layout, the default) and "model" (network input/output tensor layout)`)
	formatPtr := flag.String("format", "json", `Output format. Allowed values are: "json" (index arrays, the default) and "yaml" (tagged human-readable dump)`)
	flag.Parse()

	// Validate arguments
	if *inputPtr == "" {
		log.Fatal("missing required -input flag")
	}
	if !slices.Contains(validSpaces, *spacePtr) {
		log.Fatalf("invalid space %q: allowed values are %v", *spacePtr, validSpaces)
	}
	if !slices.Contains(validFormats, *formatPtr) {
		log.Fatalf("invalid format %q: allowed values are %v", *formatPtr, validFormats)
	}

	variables, err := loadVariables(*inputPtr)
	if err != nil {
		log.Fatalf("cannot parse input file: %v", err)
	}

	index, err := builders[*spacePtr](variables)
	if err != nil {
		log.Fatalf("cannot build %s index: %v", *spacePtr, err)
	}

	output, err := render(index, *formatPtr)
	if err != nil {
		log.Fatalf("cannot render index: %v", err)
	}
	fmt.Print(output)
}

func loadVariables(file string) (config.Variables, error) {
	switch path.Ext(file) {
	case ".json":
		return config.FromJSON(file)
	case ".yaml", ".yml":
		return config.FromYAML(file)
	default:
		return config.Variables{}, fmt.Errorf("unsupported file extension %q", path.Ext(file))
	}
}

func render(index *indices.VariableIndex, format string) (string, error) {
	if format == "yaml" {
		dump, err := yaml.Marshal(index)
		if err != nil {
			return "", err
		}
		return string(dump), nil
	}

	dump, err := json.MarshalIndent(index.ToDict(), "", "    ")
	if err != nil {
		return "", err
	}
	return string(dump) + "\n", nil
}
