package domain

// ClientType distinguishes individuals (PF) from organizations (PJ).
type ClientType string

const (
	ClientIndividual   ClientType = "PF"
	ClientOrganization ClientType = "PJ"
)

// Client represents a customer of the company.
type Client struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Type     ClientType `json:"type"`
	Document string     `json:"document"` // CPF or CNPJ, unique at the persistence layer
	Email    string     `json:"email"`
	Phone    string     `json:"phone"`
	Address  string     `json:"address"`
	City     string     `json:"city"`
	State    string     `json:"state"`
}

func (c Client) GetID() string    { return c.ID }
func (c *Client) SetID(id string) { c.ID = id }
