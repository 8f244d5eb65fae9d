package workflow

import (
	"errors"
	"unicode"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/SscSPs/news_management_app/internal/apperrors"
	"github.com/SscSPs/news_management_app/internal/core/domain"
)

// presence picks the rules for a create (fields required) or an update (only when supplied).
func presence(creating bool) validation.Rule {
	if creating {
		return validation.Required
	}
	return validation.NilOrNotEmpty
}

// ValidateArticlePayload checks shape constraints of an article payload.
func ValidateArticlePayload(p domain.ArticlePayload, creating bool) error {
	err := validation.ValidateStruct(&p,
		validation.Field(&p.ArticleID, validation.NilOrNotEmpty, validation.Length(1, 20)),
		validation.Field(&p.Title, presence(creating), validation.Length(1, 400)),
		validation.Field(&p.Headline, presence(creating), validation.Length(1, 150)),
		validation.Field(&p.Content, presence(creating)),
		validation.Field(&p.Source, validation.Length(0, 400)),
		validation.Field(&p.CategoryID, validation.Min(1)),
		validation.Field(&p.TagIDs, validation.Each(validation.Min(1))),
	)
	return toValidationError(err)
}

// ValidateCategoryPayload checks shape constraints of a category payload.
func ValidateCategoryPayload(p domain.CategoryPayload, creating bool) error {
	err := validation.ValidateStruct(&p,
		validation.Field(&p.CategoryID, validation.Min(1)),
		validation.Field(&p.Name, presence(creating), validation.Length(1, 100)),
		validation.Field(&p.Description, validation.Length(0, 250)),
		validation.Field(&p.ParentCategoryID, validation.Min(1)),
	)
	if err == nil && p.CategoryID != nil && p.ParentCategoryID != nil && *p.CategoryID == *p.ParentCategoryID {
		return apperrors.NewValidationError("parentCategoryID", "a category cannot be its own parent")
	}
	return toValidationError(err)
}

// ValidateTagPayload checks shape constraints of a tag payload.
func ValidateTagPayload(p domain.TagPayload, creating bool) error {
	err := validation.ValidateStruct(&p,
		validation.Field(&p.TagID, validation.Min(1)),
		validation.Field(&p.Name, presence(creating), validation.Length(1, 50)),
		validation.Field(&p.Note, validation.Length(0, 400)),
	)
	return toValidationError(err)
}

func toValidationError(err error) error {
	if err == nil {
		return nil
	}
	var fieldErrs validation.Errors
	if errors.As(err, &fieldErrs) {
		details := make(map[string]string, len(fieldErrs))
		for field, fieldErr := range fieldErrs {
			details[lowerFirst(field)] = fieldErr.Error()
		}
		return &apperrors.ValidationError{Details: details}
	}
	return err
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}
