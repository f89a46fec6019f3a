package dto

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterStructValidation(pointLocated, PointRequest{})
	v.RegisterStructValidation(favoriteLocated, AddFavoriteRequest{})
	return v
}

// A point needs a complete coordinate pair, an address, or a favorite.
func pointLocated(sl validator.StructLevel) {
	p := sl.Current().Interface().(PointRequest)

	if (p.Lat == nil) != (p.Lng == nil) {
		sl.ReportError(p.Lat, "lat", "Lat", "latlngpair", "")
		return
	}
	if p.Lat == nil && strings.TrimSpace(p.Address) == "" && p.FavoriteID == nil {
		sl.ReportError(p.Address, "address", "Address", "located", "")
	}
}

func favoriteLocated(sl validator.StructLevel) {
	f := sl.Current().Interface().(AddFavoriteRequest)

	if (f.Lat == nil) != (f.Lng == nil) {
		sl.ReportError(f.Lat, "lat", "Lat", "latlngpair", "")
		return
	}
	if f.Lat == nil && strings.TrimSpace(f.Address) == "" {
		sl.ReportError(f.Address, "address", "Address", "located", "")
	}
	if f.Lat != nil && strings.TrimSpace(f.Name) == "" && strings.TrimSpace(f.Address) == "" {
		sl.ReportError(f.Name, "name", "Name", "required", "")
	}
}

// Validate checks v against its struct tags and returns a client-facing message.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return errors.New(strings.Join(msgs, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Namespace()
	switch fe.Tag() {
	case "latitude":
		return fmt.Sprintf("%s must be between -90 and 90", field)
	case "longitude":
		return fmt.Sprintf("%s must be between -180 and 180", field)
	case "latlngpair":
		return fmt.Sprintf("%s: lat and lng must be given together", field)
	case "located":
		return fmt.Sprintf("%s: point requires lat/lng, address, or favorite_id", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s exceeds maximum %s", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "required":
		return fmt.Sprintf("%s is required", field)
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}
