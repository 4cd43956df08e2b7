package types

type Property struct {
	ID           string  `json:"id,omitempty"`
	Name         string  `json:"name"`
	Address      string  `json:"address"`
	Price        float64 `json:"price"`
	CodeInternal string  `json:"code_internal"`
	Year         int     `json:"year"`
	// IDOwner is a weak reference to an Owner record. Existence is
	// enforced by command validators, never by the repository.
	IDOwner string `json:"id_owner"`
}

func (p Property) GetID() string { return p.ID }

func (Property) Collection() string { return CollectionProperty }
