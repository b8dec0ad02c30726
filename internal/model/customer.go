// internal/model/customer.go
package model

type Customer struct {
	ID          int    `db:"customer_id" json:"customer_id"`
	FirstName   string `db:"first_name" json:"first_name"`
	LastName    string `db:"last_name" json:"last_name"`
	Address     string `db:"address" json:"address"`
	Email       string `db:"email" json:"email"`
	PhoneNumber string `db:"phone_number" json:"phone_number"`
}

// Text returns the value of a text column by its column name.
func (c Customer) Text(column string) (string, bool) {
	switch column {
	case "first_name":
		return c.FirstName, true
	case "last_name":
		return c.LastName, true
	case "address":
		return c.Address, true
	case "email":
		return c.Email, true
	case "phone_number":
		return c.PhoneNumber, true
	}
	return "", false
}

// Number always reports false; customers have no numeric columns.
func (c Customer) Number(string) (float64, bool) { return 0, false }
