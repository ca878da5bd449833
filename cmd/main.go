package main

import (
	"fmt"
	"log"

	"gopkg.in/yaml.v3"

	"github.com/MeteoSwiss-APN/anemoi-models/pkg/indices"
)

func main() {
	nameToIndex := map[string]int{"t": 0, "u": 1, "v": 2, "z": 3, "sp": 4}
	diagnostic := []string{"z"}
	forcing := []string{"sp"}

	data, err := indices.NewDataIndex(diagnostic, forcing, nil, nameToIndex)
	if err != nil {
		log.Fatalf("cannot build data index: %v", err)
	}

	model, err := indices.NewModelIndex(diagnostic, forcing, nil, nameToIndex, nameToIndex, []string{"sp"}, nil)
	if err != nil {
		log.Fatalf("cannot build model index: %v", err)
	}

	fmt.Println(data)
	fmt.Println(model)
	fmt.Printf("data input length: %d, model input length: %d\n", data.Input.Len(), model.Input.Len())

	dump, err := yaml.Marshal(map[string]any{"data": data, "model": model})
	if err != nil {
		log.Fatalf("cannot dump indices: %v", err)
	}
	fmt.Print(string(dump))
}
