package predict

import (
	"fmt"
	"slices"
	"strings"
)

// Model describes a model family and the sample count it expects per cycle.
type Model struct {
	Name       string
	Resolution int
}

var models = []Model{
	{Name: "Paderborn", Resolution: 1024},
	{Name: "Sydney", Resolution: 128},
}

var materials = []string{
	"3C90", "3C92", "3C94", "3C95", "3E6",
	"3F4", "77", "78", "79", "ML95S",
	"N27", "N30", "N49", "N87", "T37",
}

// Models returns the supported model families.
func Models() []Model {
	return slices.Clone(models)
}

// DefaultModel is the model preselected by the front-ends.
func DefaultModel() Model {
	return models[len(models)-1]
}

// LookupModel finds a model by case-insensitive name.
func LookupModel(name string) (Model, error) {
	for _, m := range models {
		if strings.EqualFold(m.Name, name) {
			return m, nil
		}
	}
	return Model{}, fmt.Errorf("%w: %q", ErrUnknownModel, name)
}

// Materials returns the supported core materials.
func Materials() []string {
	return slices.Clone(materials)
}

// DefaultMaterial is the material preselected by the front-ends.
func DefaultMaterial() string {
	return materials[len(materials)-1]
}

// LookupMaterial returns the canonical spelling of a material name.
func LookupMaterial(name string) (string, error) {
	for _, m := range materials {
		if strings.EqualFold(m, name) {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMaterial, name)
}
