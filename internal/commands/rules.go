package commands

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/yungbote/realista-backend/internal/results"
	"github.com/yungbote/realista-backend/internal/store"
)

// RefChecker is the narrow read-only repository surface existence
// rules depend on.
type RefChecker interface {
	Exists(ctx context.Context, id string) (bool, error)
}

// fieldRules validates the declarative `validate` struct tags of a
// command and reports violations under the json field names.
type fieldRules[C any] struct {
	v *validator.Validate
}

func NewFieldRules[C any]() Validator[C] {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return &fieldRules[C]{v: v}
}

func (r *fieldRules[C]) Validate(ctx context.Context, cmd C) ([]results.FieldError, error) {
	err := r.v.StructCtx(ctx, cmd)
	if err == nil {
		return nil, nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, err
	}
	out := make([]results.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, results.FieldError{Field: fe.Field(), Message: ruleMessage(fe)})
	}
	return out, nil
}

func ruleMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "url":
		return "must be a valid URL"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "gte":
		return "must be at least " + fe.Param()
	case "lte":
		if fe.Param() == "" {
			return "must not be in the future"
		}
		return "must be at most " + fe.Param()
	case "gt":
		if fe.Param() == "" {
			return "must be in the future"
		}
		return "must be greater than " + fe.Param()
	case "lt":
		if fe.Param() == "" {
			return "must be in the past"
		}
		return "must be less than " + fe.Param()
	}
	return "is invalid"
}

// RuleFunc is a single imperative rule for checks the struct tags
// cannot express. A nil FieldError means the rule passed; the error
// return is for infrastructure failures only.
type RuleFunc[C any] func(ctx context.Context, cmd C) (*results.FieldError, error)

type ruleSet[C any] struct {
	rules []RuleFunc[C]
}

// Rules bundles imperative rules into a Validator. Every rule runs;
// violations accumulate rather than failing fast.
func Rules[C any](rules ...RuleFunc[C]) Validator[C] {
	return ruleSet[C]{rules: rules}
}

func (s ruleSet[C]) Validate(ctx context.Context, cmd C) ([]results.FieldError, error) {
	var out []results.FieldError
	for _, rule := range s.rules {
		violation, err := rule(ctx, cmd)
		if err != nil {
			return nil, err
		}
		if violation != nil {
			out = append(out, *violation)
		}
	}
	return out, nil
}

// RecordRef checks that the named field holds a syntactically valid
// record key. Empty values are left to the required tag.
func RecordRef[C any](field string, id func(C) string) RuleFunc[C] {
	return func(_ context.Context, cmd C) (*results.FieldError, error) {
		v := id(cmd)
		if v == "" {
			return nil, nil
		}
		if !store.ValidKey(v) {
			return &results.FieldError{Field: field, Message: "must be a record reference of the form collection:key"}, nil
		}
		return nil, nil
	}
}

// RefExists checks that the referenced record exists. A failed check
// is a field violation on the command, never a not-found outcome.
func RefExists[C any](field string, refs RefChecker, id func(C) string) RuleFunc[C] {
	return func(ctx context.Context, cmd C) (*results.FieldError, error) {
		v := id(cmd)
		if v == "" {
			return nil, nil
		}
		if !store.ValidKey(v) {
			return &results.FieldError{Field: field, Message: "must be a record reference of the form collection:key"}, nil
		}
		ok, err := refs.Exists(ctx, v)
		if err != nil {
			return nil, fmt.Errorf("check %s reference: %w", field, err)
		}
		if !ok {
			return &results.FieldError{Field: field, Message: "references a record that does not exist"}, nil
		}
		return nil, nil
	}
}

// YearNotAfterCurrent bounds a year field by the wall clock year.
func YearNotAfterCurrent[C any](field string, year func(C) int) RuleFunc[C] {
	return func(_ context.Context, cmd C) (*results.FieldError, error) {
		if year(cmd) > time.Now().Year() {
			return &results.FieldError{Field: field, Message: "must not be after the current year"}, nil
		}
		return nil, nil
	}
}
