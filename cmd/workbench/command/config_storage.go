package command

import (
	"fmt"
	"os"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-workbench/internal/item"
	"github.com/pixil98/go-workbench/internal/recipe"
	"github.com/pixil98/go-workbench/internal/storage"
)

type StorageConfig struct {
	Items   DatasetConfig `json:"items"`
	Recipes DatasetConfig `json:"recipes"`
}

func (c *StorageConfig) validate() error {
	el := errors.NewErrorList()
	el.Add(c.Items.Validate("items"))
	el.Add(c.Recipes.Validate("recipes"))
	return el.Err()
}

func (c *StorageConfig) BuildCatalog() (*item.Catalog, error) {
	defs, err := storage.Load[item.List](c.Items.Path)
	if err != nil {
		return nil, fmt.Errorf("loading items: %w", err)
	}
	return item.NewCatalog(defs)
}

func (c *StorageConfig) BuildIndex() (*recipe.Index, error) {
	table, err := storage.Load[recipe.Table](c.Recipes.Path)
	if err != nil {
		return nil, fmt.Errorf("loading recipes: %w", err)
	}
	return recipe.NewIndex(table)
}

// DatasetConfig points at a dataset file or a directory of them.
type DatasetConfig struct {
	Path string `json:"path"`
}

func (c *DatasetConfig) Validate(name string) error {
	if c.Path == "" {
		return fmt.Errorf("%s: path is required", name)
	}
	_, err := os.Stat(c.Path)
	if err != nil {
		return fmt.Errorf("%s: invalid path %q: %w", name, c.Path, err)
	}

	return nil
}
