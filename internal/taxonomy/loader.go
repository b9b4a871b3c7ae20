package taxonomy

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"jobmill/internal/models"
)

// fileTables is the YAML shape of a taxonomy override file. Every section
// is optional; omitted sections keep the built-in defaults.
type fileTables struct {
	ContractKeywords   map[string][]string `yaml:"contract_keywords"`
	PartTimeKeywords   []string            `yaml:"part_time_keywords"`
	JuniorKeywords     []string            `yaml:"junior_keywords"`
	SeniorKeywords     []string            `yaml:"senior_keywords"`
	Technologies       []string            `yaml:"technologies"`
	RemoteKeywords     []string            `yaml:"remote_keywords"`
	NegotiableKeywords []string            `yaml:"negotiable_keywords"`
	DepartmentRegions  map[string]string   `yaml:"department_regions"`
	Countries          []string            `yaml:"countries"`
	LabelNormalization map[string]string   `yaml:"label_normalization"`
}

// Load reads a taxonomy override file and merges it over the defaults.
// An empty path returns the defaults unchanged.
func Load(path string) (*Tables, error) {
	tables := Default()
	if path == "" {
		return tables, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read taxonomy file: %w", err)
	}

	var file fileTables
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse taxonomy file: %w", err)
	}

	if len(file.ContractKeywords) > 0 {
		keywords := make(map[models.ContractType][]string, len(file.ContractKeywords))
		for name, list := range file.ContractKeywords {
			keywords[models.ContractType(name)] = list
		}
		tables.ContractKeywords = keywords
	}
	if len(file.PartTimeKeywords) > 0 {
		tables.PartTimeKeywords = file.PartTimeKeywords
	}
	if len(file.JuniorKeywords) > 0 {
		tables.JuniorKeywords = file.JuniorKeywords
	}
	if len(file.SeniorKeywords) > 0 {
		tables.SeniorKeywords = file.SeniorKeywords
	}
	if len(file.Technologies) > 0 {
		tables.Technologies = file.Technologies
	}
	if len(file.RemoteKeywords) > 0 {
		tables.RemoteKeywords = file.RemoteKeywords
	}
	if len(file.NegotiableKeywords) > 0 {
		tables.NegotiableKeywords = file.NegotiableKeywords
	}
	if len(file.DepartmentRegions) > 0 {
		tables.DepartmentRegions = file.DepartmentRegions
	}
	if len(file.Countries) > 0 {
		tables.Countries = countrySet(file.Countries...)
	}
	if len(file.LabelNormalization) > 0 {
		tables.LabelNormalization = file.LabelNormalization
	}

	return tables, nil
}
