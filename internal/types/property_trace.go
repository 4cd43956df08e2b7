package types

import "time"

type PropertyTrace struct {
	ID string `json:"id,omitempty"`
	// IDProperty is a weak reference to a Property record.
	IDProperty string    `json:"id_property"`
	DateSale   time.Time `json:"date_sale"`
	Name       string    `json:"name"`
	Value      float64   `json:"value"`
	Tax        float64   `json:"tax"`
}

func (t PropertyTrace) GetID() string { return t.ID }

func (PropertyTrace) Collection() string { return CollectionPropertyTrace }
