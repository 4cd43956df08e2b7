package types

import "time"

type Owner struct {
	ID        string    `json:"id,omitempty"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Birthdate time.Time `json:"birthdate"`
	Photo     string    `json:"photo,omitempty"`
}

func (o Owner) GetID() string { return o.ID }

func (Owner) Collection() string { return CollectionOwner }
