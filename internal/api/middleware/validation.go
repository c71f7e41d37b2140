package middleware

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"

	"api-playground/internal/api/errors"
)

// Input locations, used as the prefix of every validation detail key
const (
	LocationPath  = "path"
	LocationQuery = "query"
	LocationBody  = "body"
)

// Enum is implemented by closed string enumerations.
// Fields of such types are checked with the `enum` binding tag.
type Enum interface {
	IsValid() bool
	Values() []string
}

var registerOnce sync.Once

// RegisterValidators configures gin's validator engine: field names are
// reported by their json/form/uri tag and the `enum` rule is installed.
// Safe to call more than once.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(tagName)
		_ = v.RegisterValidation("enum", func(fl validator.FieldLevel) bool {
			e, ok := fl.Field().Interface().(Enum)
			return ok && e.IsValid()
		})
	})
}

func tagName(fld reflect.StructField) string {
	for _, tag := range []string{"json", "form", "uri"} {
		name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return fld.Name
}

// BindURI binds path parameters into obj. Numeric parse failures are reported
// per parameter before struct validation runs.
func BindURI(c *gin.Context, obj interface{}) *errors.APIError {
	lookup := func(key string) []string {
		if v, ok := c.Params.Get(key); ok {
			return []string{v}
		}
		return nil
	}
	if details := checkNumeric(obj, "uri", LocationPath, lookup); len(details) > 0 {
		return errors.NewValidationError("Validation failed", details)
	}
	if err := c.ShouldBindUri(obj); err != nil {
		return TranslateBindError(err, LocationPath)
	}
	return nil
}

// BindQuery binds query parameters into obj.
func BindQuery(c *gin.Context, obj interface{}) *errors.APIError {
	if details := checkNumeric(obj, "form", LocationQuery, c.QueryArray); len(details) > 0 {
		return errors.NewValidationError("Validation failed", details)
	}
	if err := c.ShouldBindQuery(obj); err != nil {
		return TranslateBindError(err, LocationQuery)
	}
	return nil
}

// BindQueryStrict is BindQuery that also rejects query keys obj does not declare.
func BindQueryStrict(c *gin.Context, obj interface{}) *errors.APIError {
	present := lo.Keys(c.Request.URL.Query())
	unknown := lo.Without(present, declaredKeys(obj, "form")...)
	if len(unknown) > 0 {
		sort.Strings(unknown)
		details := make(map[string]string, len(unknown))
		for _, key := range unknown {
			details[LocationQuery+"."+key] = "extra inputs are not permitted"
		}
		return errors.NewValidationError("Validation failed", details)
	}
	return BindQuery(c, obj)
}

// BindJSON binds and validates the JSON request body into obj.
func BindJSON(c *gin.Context, obj interface{}) *errors.APIError {
	if err := c.ShouldBindJSON(obj); err != nil {
		return TranslateBindError(err, LocationBody)
	}
	if v, ok := obj.(interface{ Validate() *errors.APIError }); ok {
		return v.Validate()
	}
	return nil
}

// TranslateBindError converts binding and validation errors into a structured
// validation failure keyed by "<location>.<field>".
func TranslateBindError(err error, location string) *errors.APIError {
	details := make(map[string]string)

	var validationErrs validator.ValidationErrors
	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError
	var numErr *strconv.NumError

	switch {
	case stderrors.As(err, &validationErrs):
		for _, fe := range validationErrs {
			details[location+"."+fieldPath(fe)] = reason(fe)
		}
	case stderrors.As(err, &typeErr):
		field := typeErr.Field
		if field == "" {
			field = "request"
		}
		details[location+"."+field] = "must be " + jsonKind(typeErr.Type)
	case stderrors.As(err, &syntaxErr):
		details[location] = "invalid JSON format"
	case stderrors.Is(err, io.EOF):
		details[location] = "field required"
	case stderrors.As(err, &numErr):
		details[location] = fmt.Sprintf("%q is not a valid integer", numErr.Num)
	default:
		details[location] = err.Error()
	}

	return errors.NewValidationError("Validation failed", details)
}

// fieldPath drops the root struct name from the validator namespace
func fieldPath(fe validator.FieldError) string {
	parts := strings.SplitN(fe.Namespace(), ".", 2)
	if len(parts) == 2 {
		return parts[1]
	}
	return fe.Field()
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field required"
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte", "min":
		return "must be greater than or equal to " + fe.Param()
	case "lt":
		return "must be less than " + fe.Param()
	case "lte", "max":
		return "must be less than or equal to " + fe.Param()
	case "oneof":
		return "must be one of: " + strings.Join(strings.Fields(fe.Param()), ", ")
	case "enum":
		if e, ok := fe.Value().(Enum); ok {
			return "must be one of: " + strings.Join(e.Values(), ", ")
		}
		return "is not an allowed value"
	default:
		return "is invalid"
	}
}

func jsonKind(t reflect.Type) string {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "a valid integer"
	case reflect.Float32, reflect.Float64:
		return "a valid number"
	case reflect.String:
		return "a valid string"
	case reflect.Bool:
		return "a valid boolean"
	case reflect.Slice, reflect.Array:
		return "a valid list"
	default:
		return "a valid object"
	}
}

// declaredKeys lists the names obj declares under the given struct tag
func declaredKeys(obj interface{}, tag string) []string {
	t := reflect.TypeOf(obj)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	keys := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		name := strings.SplitN(t.Field(i).Tag.Get(tag), ",", 2)[0]
		if name != "" && name != "-" {
			keys = append(keys, name)
		}
	}
	return keys
}

// checkNumeric reports integer fields whose raw input does not parse
func checkNumeric(obj interface{}, tag, location string, lookup func(string) []string) map[string]string {
	t := reflect.TypeOf(obj)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	details := make(map[string]string)
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
		if name == "" || name == "-" {
			continue
		}
		kind := field.Type.Kind()
		if kind == reflect.Ptr {
			kind = field.Type.Elem().Kind()
		}
		switch kind {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		default:
			continue
		}
		for _, raw := range lookup(name) {
			if _, err := strconv.ParseInt(raw, 10, 64); err != nil {
				details[location+"."+name] = "value is not a valid integer"
				break
			}
		}
	}
	return details
}
