// internal/model/product.go
package model

type Product struct {
	ID          int     `db:"product_id" json:"product_id"`
	Name        string  `db:"name" json:"name"`
	Description string  `db:"description" json:"description"`
	Price       float64 `db:"price" json:"price"`
	Category    string  `db:"category" json:"category"`
	ImageURL    string  `db:"image_url" json:"image_url"`
}

// Text returns the value of a text column by its column name.
func (p Product) Text(column string) (string, bool) {
	switch column {
	case "name":
		return p.Name, true
	case "description":
		return p.Description, true
	case "category":
		return p.Category, true
	case "image_url":
		return p.ImageURL, true
	}
	return "", false
}

// Number returns the value of a numeric column by its column name.
func (p Product) Number(column string) (float64, bool) {
	if column == "price" {
		return p.Price, true
	}
	return 0, false
}
