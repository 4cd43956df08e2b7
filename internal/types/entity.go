package types

// Collection names for the document store. Mapping is explicit so the
// repositories never derive a collection from a type name.
const (
	CollectionOwner         = "owner"
	CollectionProperty      = "property"
	CollectionPropertyImage = "property_image"
	CollectionPropertyTrace = "property_trace"
)

// Entity is satisfied by every stored record. IDs are store-assigned
// "collection:key" strings, immutable after insert.
type Entity interface {
	GetID() string
	Collection() string
}
