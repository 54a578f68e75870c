package entity

import "strings"

// Category categoría del catálogo.
type Category string

const (
	CategoryQuimicos  Category = "Químicos"
	CategorySolventes Category = "Solventes"
	CategoryEquipos   Category = "Equipos"
	CategoryInsumos   Category = "Insumos"
	CategoryOtros     Category = "Otros"
)

// Categories en el orden en que se muestran.
var Categories = []Category{CategoryQuimicos, CategorySolventes, CategoryEquipos, CategoryInsumos, CategoryOtros}

func (c Category) Valid() bool {
	switch c {
	case CategoryQuimicos, CategorySolventes, CategoryEquipos, CategoryInsumos, CategoryOtros:
		return true
	default:
		return false
	}
}

// ParseCategory vacío → Otros; comparación sin distinguir mayúsculas.
func ParseCategory(s string) (Category, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return CategoryOtros, true
	}
	for _, c := range Categories {
		if strings.EqualFold(string(c), s) {
			return c, true
		}
	}
	return Category(s), false
}
