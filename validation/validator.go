package validation

import (
	"fmt"
	"group-maker/domain"
	"group-maker/errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	namesRules  = "gt=0,min=2,dive,required"
	countRules  = "required,number"
	tagMaxCount = "groups_lte_names"
)

var validate = newValidator()

// GroupRequest is a fully parsed user request.
type GroupRequest struct {
	Names  domain.NameList `validate:"gt=0,min=2,dive,required"`
	Groups int             `validate:"gte=2"`
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterStructValidation(groupsFitNames, GroupRequest{})
	return v
}

func groupsFitNames(sl validator.StructLevel) {
	req := sl.Current().Interface().(GroupRequest)
	if len(req.Names) > 0 && req.Groups > len(req.Names) {
		sl.ReportError(req.Groups, "Groups", "Groups", tagMaxCount, strconv.Itoa(len(req.Names)))
	}
}

// ValidateNames checks the names prompt on its own, before a group count is known.
func ValidateNames(names domain.NameList) error {
	return translate(validate.Var([]string(names), namesRules), len(names))
}

// ParseGroupCount turns the raw count prompt into an integer.
// Signs, decimals and anything else than digits are rejected.
func ParseGroupCount(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if err := validate.Var(raw, countRules); err != nil {
		return 0, errors.ErrGroupCountNotNumber
	}
	count, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.ErrGroupCountNotNumber
	}
	return count, nil
}

// ValidateRequest checks the names and the group count together.
func ValidateRequest(req GroupRequest) error {
	return translate(validate.Struct(req), len(req.Names))
}

// translate maps the first validator failure onto the input error taxonomy.
func translate(err error, nameCount int) error {
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return fmt.Errorf("%w: %v", errors.ErrUnexpected, err)
	}

	fe := verrs[0]
	switch fe.Tag() {
	case "gt":
		return errors.ErrNoNames
	case "min":
		return errors.ErrNotEnoughNames
	case "required":
		return errors.ErrBlankName
	case "gte":
		return errors.ErrGroupCountTooSmall
	case tagMaxCount:
		return fmt.Errorf("%w (%v requested, only %d names)", errors.ErrTooManyGroups, fe.Value(), nameCount)
	default:
		return fmt.Errorf("%w: %s failed on %q", errors.ErrInvalidInput, fe.Field(), fe.Tag())
	}
}
