package types

type PropertyImage struct {
	ID string `json:"id,omitempty"`
	// IDProperty is a weak reference to a Property record.
	IDProperty string `json:"id_property"`
	File       string `json:"file"`
	Enabled    bool   `json:"enabled"`
}

func (i PropertyImage) GetID() string { return i.ID }

func (PropertyImage) Collection() string { return CollectionPropertyImage }
