package manager

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/kasuboski/streamportal/pkg/availability"
	"golang.org/x/text/language"
)

// DefaultLanguage is used when a request does not name one
const DefaultLanguage = "en-US"

// ValidationError reports the request field that was rejected
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// SearchRequest is a catalog search
type SearchRequest struct {
	TextSearch     string `json:"text_search" validate:"required,min=2,max=100"`
	TypeOfContent  string `json:"type_of_content" validate:"oneof=Movie Series"`
	OptionLanguage string `json:"option_language" validate:"language"`
}

// DetailsRequest asks for the details of one title
type DetailsRequest struct {
	ContentID      int    `json:"content_id" validate:"gt=0,lte=2147483647"`
	TypeOfContent  string `json:"type_of_content" validate:"oneof=Movie Series"`
	OptionLanguage string `json:"option_language" validate:"language"`
}

// Ref is the title the request points at
func (r DetailsRequest) Ref() availability.ContentRef {
	return availability.ContentRef{ID: r.ContentID, Kind: availability.Kind(r.TypeOfContent)}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		return name
	})
	// registration only fails for an empty tag or nil func
	_ = v.RegisterValidation("language", func(fl validator.FieldLevel) bool {
		_, err := language.Parse(fl.Field().String())
		return err == nil
	})
	return v
}

// Normalize sanitizes the query and fills the default language
func (r *SearchRequest) Normalize() {
	r.TextSearch = Sanitize(r.TextSearch)
	if r.OptionLanguage == "" {
		r.OptionLanguage = DefaultLanguage
	}
}

// Validate normalizes the request and checks every field
func (r *SearchRequest) Validate() error {
	r.Normalize()
	return validationError(validate.Struct(r))
}

// Normalize fills the default language
func (r *DetailsRequest) Normalize() {
	if r.OptionLanguage == "" {
		r.OptionLanguage = DefaultLanguage
	}
}

// Validate normalizes the request and checks every field
func (r *DetailsRequest) Validate() error {
	r.Normalize()
	return validationError(validate.Struct(r))
}

var dangerous = []string{"<", ">", `"`, "'", "&", "script", "javascript"}

// Sanitize strips markup characters and script keywords from a query and trims it
func Sanitize(text string) string {
	for _, d := range dangerous {
		text = strings.ReplaceAll(text, d, "")
	}
	return strings.TrimSpace(text)
}

// validationError turns the first failed field into a ValidationError
func validationError(err error) error {
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return &ValidationError{Message: err.Error()}
	}

	fe := fieldErrs[0]
	return &ValidationError{Field: fe.Field(), Message: message(fe)}
}

func message(fe validator.FieldError) string {
	switch fe.Field() {
	case "text_search":
		switch fe.Tag() {
		case "required":
			return "Search query cannot be empty"
		case "min":
			return "Search query must be at least 2 characters long"
		case "max":
			return "Search query too long (max 100 characters)"
		}
	case "type_of_content":
		return "Content type must be one of: Movie, Series"
	case "content_id":
		if fe.Tag() == "lte" {
			return "Content ID is out of range"
		}
		return "Content ID must be a positive integer"
	case "option_language":
		return "Language must be a valid BCP 47 language tag"
	}
	return fe.Error()
}
