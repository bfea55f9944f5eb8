package models

// Client is a row of the clients table.
type Client struct {
	ID       string `db:"id"`
	Name     string `db:"name"`
	Type     string `db:"type"`
	Document string `db:"document"` // unique
	Email    string `db:"email"`
	Phone    string `db:"phone"`
	Address  string `db:"address"`
	City     string `db:"city"`
	State    string `db:"state"`
}
