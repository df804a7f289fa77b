package mock

import (
	"reflect"
	"strings"

	domainerrors "telemock/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"
)

// Binder decodes request values into typed inputs and validates them.
type Binder struct {
	validate *validator.Validate
}

// NewBinder creates a Binder that reports invalid fields by their wire name.
func NewBinder() *Binder {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("mapstructure"), ",")
		if name == "" || name == "-" {
			return field.Name
		}

		return name
	})

	return &Binder{validate: v}
}

var defaultBinder = NewBinder()

// Bind decodes the merged query and body values of req into dst, which must
// be a pointer to a struct, then validates it.
func Bind(req *Request, dst any) error {
	return defaultBinder.Bind(req, dst)
}

// Bind decodes weakly: "3" fills an int and 3 fills a string. A value that
// cannot be converted leaves its field untouched, so a pointer field stays nil
// exactly as if the key were absent.
func (b *Binder) Bind(req *Request, dst any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           dst,
		TagName:          "mapstructure",
	})
	if err != nil {
		return errors.Wrap(err, "create decoder")
	}

	// Conversion failures degrade to absent fields.
	_ = decoder.Decode(req.Values())

	return b.Validate(dst)
}

// Validate runs the struct's validate tags.
func (b *Binder) Validate(dst any) error {
	err := b.validate.Struct(dst)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		fields := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			fields = append(fields, fe.Field())
		}

		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(strings.Join(fields, ", ")))
	}

	return errors.Wrap(err, "validate input")
}
