package commands

// Per-command validator sets. Existence checks ride on the narrow
// RefChecker surface so validators never see the write half of a
// repository.

func CreateOwnerValidators() []Validator[CreateOwner] {
	return []Validator[CreateOwner]{
		NewFieldRules[CreateOwner](),
	}
}

func UpdateOwnerValidators() []Validator[UpdateOwner] {
	return []Validator[UpdateOwner]{
		NewFieldRules[UpdateOwner](),
		Rules(
			RecordRef("id", func(c UpdateOwner) string { return c.ID }),
		),
	}
}

func DeleteOwnerValidators() []Validator[DeleteOwner] {
	return []Validator[DeleteOwner]{
		NewFieldRules[DeleteOwner](),
		Rules(
			RecordRef("id", func(c DeleteOwner) string { return c.ID }),
		),
	}
}

func CreatePropertyValidators(owners RefChecker) []Validator[CreateProperty] {
	return []Validator[CreateProperty]{
		NewFieldRules[CreateProperty](),
		Rules(
			YearNotAfterCurrent("year", func(c CreateProperty) int { return c.Year }),
			RefExists("id_owner", owners, func(c CreateProperty) string { return c.IDOwner }),
		),
	}
}

func UpdatePropertyValidators(owners RefChecker) []Validator[UpdateProperty] {
	return []Validator[UpdateProperty]{
		NewFieldRules[UpdateProperty](),
		Rules(
			RecordRef("id", func(c UpdateProperty) string { return c.ID }),
			YearNotAfterCurrent("year", func(c UpdateProperty) int { return c.Year }),
			RefExists("id_owner", owners, func(c UpdateProperty) string { return c.IDOwner }),
		),
	}
}

func ChangePropertyPriceValidators() []Validator[ChangePropertyPrice] {
	return []Validator[ChangePropertyPrice]{
		NewFieldRules[ChangePropertyPrice](),
		Rules(
			RecordRef("id", func(c ChangePropertyPrice) string { return c.ID }),
		),
	}
}

func DeletePropertyValidators() []Validator[DeleteProperty] {
	return []Validator[DeleteProperty]{
		NewFieldRules[DeleteProperty](),
		Rules(
			RecordRef("id", func(c DeleteProperty) string { return c.ID }),
		),
	}
}

func CreatePropertyImageValidators(properties RefChecker) []Validator[CreatePropertyImage] {
	return []Validator[CreatePropertyImage]{
		NewFieldRules[CreatePropertyImage](),
		Rules(
			RefExists("id_property", properties, func(c CreatePropertyImage) string { return c.IDProperty }),
		),
	}
}

func UpdatePropertyImageValidators(properties RefChecker) []Validator[UpdatePropertyImage] {
	return []Validator[UpdatePropertyImage]{
		NewFieldRules[UpdatePropertyImage](),
		Rules(
			RecordRef("id", func(c UpdatePropertyImage) string { return c.ID }),
			RefExists("id_property", properties, func(c UpdatePropertyImage) string { return c.IDProperty }),
		),
	}
}

func CreatePropertyTraceValidators(properties RefChecker) []Validator[CreatePropertyTrace] {
	return []Validator[CreatePropertyTrace]{
		NewFieldRules[CreatePropertyTrace](),
		Rules(
			RefExists("id_property", properties, func(c CreatePropertyTrace) string { return c.IDProperty }),
		),
	}
}
