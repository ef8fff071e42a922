package services

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"nutritrack/models"
)

var sampleFoods = []models.CatalogFood{
	{Name: "Chicken breast (6oz)", Cal: 300, Protein: 55, Carbs: 0, Fat: 6},
	{Name: "Brown rice (1 cup)", Cal: 220, Protein: 5, Carbs: 45, Fat: 2},
	{Name: "Avocado (half)", Cal: 120, Protein: 2, Carbs: 6, Fat: 11},
	{Name: "Greek yogurt", Cal: 150, Protein: 15, Carbs: 20, Fat: 0},
	{Name: "Protein shake", Cal: 160, Protein: 30, Carbs: 8, Fat: 3},
	{Name: "Banana", Cal: 105, Protein: 1, Carbs: 27, Fat: 0},
	{Name: "Almonds (1oz)", Cal: 165, Protein: 6, Carbs: 6, Fat: 14},
	{Name: "Eggs (2)", Cal: 140, Protein: 12, Carbs: 1, Fat: 10},
}

// CatalogService serves the quick-add foods.
type CatalogService struct {
	foods []models.CatalogFood
}

func NewCatalogService(foods []models.CatalogFood) *CatalogService {
	if len(foods) == 0 {
		foods = sampleFoods
	}
	return &CatalogService{foods: foods}
}

type catalogFile struct {
	Foods []models.CatalogFood `yaml:"foods"`
}

// LoadCatalog reads a YAML file of the form `foods: [{name, cal, ...}]`.
// An empty path yields the built-in samples.
func LoadCatalog(path string) (*CatalogService, error) {
	if path == "" {
		return NewCatalogService(nil), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f catalogFile
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &f); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	for i, food := range f.Foods {
		if strings.TrimSpace(food.Name) == "" {
			return nil, fmt.Errorf("catalog %s: entry %d has no name", path, i)
		}
	}
	return NewCatalogService(f.Foods), nil
}

func (s *CatalogService) List() []models.CatalogFood {
	out := make([]models.CatalogFood, len(s.foods))
	copy(out, s.foods)
	return out
}

// Search matches q case-insensitively anywhere in the name.
func (s *CatalogService) Search(q string) []models.CatalogFood {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return s.List()
	}
	out := []models.CatalogFood{}
	for _, f := range s.foods {
		if strings.Contains(strings.ToLower(f.Name), q) {
			out = append(out, f)
		}
	}
	return out
}
