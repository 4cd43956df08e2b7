package commands

import "time"

type CreateOwner struct {
	Name      string    `json:"name" validate:"required,max=200"`
	Address   string    `json:"address" validate:"required,max=300"`
	Birthdate time.Time `json:"birthdate" validate:"required,lt"`
	Photo     string    `json:"photo" validate:"omitempty,url"`
}

type UpdateOwner struct {
	ID        string    `json:"id" validate:"required"`
	Name      string    `json:"name" validate:"required,max=200"`
	Address   string    `json:"address" validate:"required,max=300"`
	Birthdate time.Time `json:"birthdate" validate:"required,lt"`
	Photo     string    `json:"photo" validate:"omitempty,url"`
}

type DeleteOwner struct {
	ID string `json:"id" validate:"required"`
}

type CreateProperty struct {
	Name    string  `json:"name" validate:"required,max=200"`
	Address string  `json:"address" validate:"required,max=300"`
	Price   float64 `json:"price" validate:"gte=0"`
	// CodeInternal is generated when left empty.
	CodeInternal string `json:"code_internal" validate:"omitempty,max=64"`
	Year         int    `json:"year" validate:"required,gte=1800"`
	IDOwner      string `json:"id_owner" validate:"required"`
}

type UpdateProperty struct {
	ID           string  `json:"id" validate:"required"`
	Name         string  `json:"name" validate:"required,max=200"`
	Address      string  `json:"address" validate:"required,max=300"`
	Price        float64 `json:"price" validate:"gte=0"`
	CodeInternal string  `json:"code_internal" validate:"required,max=64"`
	Year         int     `json:"year" validate:"required,gte=1800"`
	IDOwner      string  `json:"id_owner" validate:"required"`
}

type ChangePropertyPrice struct {
	ID    string  `json:"id" validate:"required"`
	Price float64 `json:"price" validate:"gte=0"`
}

type DeleteProperty struct {
	ID string `json:"id" validate:"required"`
}

type CreatePropertyImage struct {
	IDProperty string `json:"id_property" validate:"required"`
	File       string `json:"file" validate:"required,url"`
	Enabled    bool   `json:"enabled"`
}

type UpdatePropertyImage struct {
	ID         string `json:"id" validate:"required"`
	IDProperty string `json:"id_property" validate:"required"`
	File       string `json:"file" validate:"required,url"`
	Enabled    bool   `json:"enabled"`
}

type CreatePropertyTrace struct {
	IDProperty string    `json:"id_property" validate:"required"`
	DateSale   time.Time `json:"date_sale" validate:"required,lte"`
	Name       string    `json:"name" validate:"required,max=200"`
	Value      float64   `json:"value" validate:"gt=0"`
	Tax        float64   `json:"tax" validate:"gte=0,lte=100"`
}
