// Package serializers maps persistent entities to and from their external
// representations. Each mapper is a stateless transform: inbound records are
// validated and persisted atomically, outbound records are derived from a
// stored entity.
package serializers

import (
	"errors"
	"reflect"
	"strings"

	"fireside/internal/models"

	"github.com/go-playground/validator/v10"
)

// Visibility controls how a representation field may be used.
type Visibility int

const (
	// ReadWrite fields appear in both directions.
	ReadWrite Visibility = iota
	// ReadOnly fields appear outbound only; inbound values are ignored.
	ReadOnly
	// WriteOnly fields are accepted inbound and never serialized outbound.
	WriteOnly
)

// FieldSpec describes one exposed representation field.
type FieldSpec struct {
	Name       string
	Visibility Visibility
	Rule       string // validation rule applied to inbound values
}

// EntityConfig enumerates the exposed fields of one entity. Configurations
// are resolved once at startup, not per call.
type EntityConfig struct {
	Entity string
	Fields []FieldSpec
}

// Writable reports whether inbound input may set the named field.
func (c EntityConfig) Writable(name string) bool {
	for _, f := range c.Fields {
		if f.Name == name {
			return f.Visibility != ReadOnly
		}
	}
	return false
}

// Readable reports whether the named field appears in outbound records.
func (c EntityConfig) Readable(name string) bool {
	for _, f := range c.Fields {
		if f.Name == name {
			return f.Visibility != WriteOnly
		}
	}
	return false
}

// Per-entity field exposure. Owner references (userProfile, userPost,
// userComment) are read-only: they are always taken from the authenticated
// caller, never from the payload.
var (
	AccountFields = EntityConfig{
		Entity: "account",
		Fields: []FieldSpec{
			{Name: "id", Visibility: ReadOnly},
			{Name: "email", Visibility: ReadWrite, Rule: "required,email,max=50"},
			{Name: "password", Visibility: WriteOnly, Rule: "required"},
		},
	}

	ProfileFields = EntityConfig{
		Entity: "profile",
		Fields: []FieldSpec{
			{Name: "id", Visibility: ReadOnly},
			{Name: "nickName", Visibility: ReadWrite, Rule: "required,max=20"},
			{Name: "userProfile", Visibility: ReadOnly},
			{Name: "created_on", Visibility: ReadOnly},
			{Name: "img", Visibility: ReadWrite},
		},
	}

	PostFields = EntityConfig{
		Entity: "post",
		Fields: []FieldSpec{
			{Name: "id", Visibility: ReadOnly},
			{Name: "title", Visibility: ReadWrite, Rule: "required,max=100"},
			{Name: "userPost", Visibility: ReadOnly},
			{Name: "created_on", Visibility: ReadOnly},
			{Name: "img", Visibility: ReadWrite},
			{Name: "liked", Visibility: ReadWrite},
		},
	}

	CommentFields = EntityConfig{
		Entity: "comment",
		Fields: []FieldSpec{
			{Name: "id", Visibility: ReadOnly},
			{Name: "text", Visibility: ReadWrite, Rule: "required,max=100"},
			{Name: "userComment", Visibility: ReadOnly},
			{Name: "post", Visibility: ReadWrite, Rule: "required"},
		},
	}
)

// dateLayout renders created_on timestamps as YYYY-MM-DD.
const dateLayout = "2006-01-02"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report violations under the representation field name, not the Go one.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateInbound runs struct validation and converts violations into a
// single ValidationError enumerating every offending field. The whole
// inbound record is rejected; nothing is persisted.
func validateInbound(in interface{}) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return models.NewInternalError(err)
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	return models.NewValidationError("Invalid field value(s)", fields...)
}
