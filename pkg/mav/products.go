package mav

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

//go:embed products.yaml
var defaultProductsYaml []byte

type productDefinition struct {
	Name         string `yaml:"name"`
	Abbreviation string `yaml:"abbreviation"`
}

// ProductTable maps lower cased raw product names to their short codes
type ProductTable map[string]string

func LoadProductTable(data []byte) (ProductTable, error) {
	var definitions []productDefinition

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	if err := decoder.Decode(&definitions); err != nil {
		return nil, err
	}

	table := ProductTable{}
	for _, definition := range definitions {
		name := strings.ToLower(strings.TrimSpace(definition.Name))
		if name == "" || definition.Abbreviation == "" {
			return nil, fmt.Errorf("product definition %q is incomplete", definition.Name)
		}

		table[name] = definition.Abbreviation
	}

	return table, nil
}

var defaultProductTable = sync.OnceValue(func() ProductTable {
	table, err := LoadProductTable(defaultProductsYaml)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load embedded product table")
	}

	return table
})

func DefaultProductTable() ProductTable {
	return defaultProductTable()
}

func (p ProductTable) Lookup(rawName string) (string, bool) {
	abbreviation, ok := p[strings.ToLower(strings.TrimSpace(rawName))]
	return abbreviation, ok
}

// Abbreviate returns the short code for a raw product name, or the name unchanged if unknown
func (p ProductTable) Abbreviate(rawName string) string {
	if abbreviation, ok := p.Lookup(rawName); ok {
		return abbreviation
	}

	return rawName
}

// ProductName translates the long then the short provider name, falling back to the short one
func (p ProductTable) ProductName(kind OfferTrainKind) string {
	for _, name := range []string{kind.Name, kind.SortName} {
		if abbreviation, ok := p.Lookup(name); ok {
			return abbreviation
		}
	}

	return kind.DisplayName()
}
