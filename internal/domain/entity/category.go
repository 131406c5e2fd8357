package entity

// Category es una etiqueta de agrupación de productos. El conjunto de categorías
// no admite duplicados y conserva el orden de inserción.
type Category = string

// AllCategories es el filtro del POS que muestra todos los productos.
const AllCategories Category = "Todos"

// ContainsCategory indica si name ya está en el conjunto (comparación exacta).
func ContainsCategory(categories []Category, name Category) bool {
	for _, c := range categories {
		if c == name {
			return true
		}
	}
	return false
}
