package seed

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/georgemunganga/awe-electronics/internal/modules/catalog"
	"github.com/georgemunganga/awe-electronics/internal/modules/order"
	"github.com/georgemunganga/awe-electronics/internal/modules/shipping"
	"github.com/georgemunganga/awe-electronics/internal/modules/user"
)

//go:embed seed.yaml
var defaultData []byte

// Dataset is the initial content of every in-memory store.
type Dataset struct {
	Users     []user.User         `yaml:"users"`
	Products  []catalog.Product   `yaml:"products"`
	Orders    []order.Order       `yaml:"orders"`
	Receipts  []order.Receipt     `yaml:"receipts"`
	Shipments []shipping.Shipment `yaml:"shipments"`
}

// Default returns the embedded demo dataset.
func Default() (*Dataset, error) {
	return Parse(defaultData)
}

// LoadFile reads a dataset from path, or the embedded one when path is empty.
func LoadFile(path string) (*Dataset, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML data into a Dataset and checks that ids are unique per collection.
func Parse(data []byte) (*Dataset, error) {
	var ds Dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("failed to parse seed YAML: %w", err)
	}
	if err := ds.validate(); err != nil {
		return nil, err
	}
	return &ds, nil
}

func (ds *Dataset) validate() error {
	checks := []struct {
		name string
		ids  []int
	}{
		{"user", idsOf(ds.Users, func(u user.User) int { return u.ID })},
		{"product", idsOf(ds.Products, func(p catalog.Product) int { return p.ID })},
		{"order", idsOf(ds.Orders, func(o order.Order) int { return o.ID })},
		{"receipt", idsOf(ds.Receipts, func(r order.Receipt) int { return r.ID })},
		{"shipment", idsOf(ds.Shipments, func(s shipping.Shipment) int { return s.ID })},
	}
	for _, c := range checks {
		seen := make(map[int]bool, len(c.ids))
		for _, id := range c.ids {
			if id <= 0 {
				return fmt.Errorf("seed: %s id must be positive, got %d", c.name, id)
			}
			if seen[id] {
				return fmt.Errorf("seed: duplicate %s id %d", c.name, id)
			}
			seen[id] = true
		}
	}
	return nil
}

func idsOf[T any](items []T, id func(T) int) []int {
	out := make([]int, len(items))
	for i, it := range items {
		out[i] = id(it)
	}
	return out
}
