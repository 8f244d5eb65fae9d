package workflow_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/news_management_app/internal/apperrors"
	"github.com/SscSPs/news_management_app/internal/core/domain"
	"github.com/SscSPs/news_management_app/internal/core/workflow"
)

func strPtr(s string) *string { return &s }

func TestValidateArticlePayload(t *testing.T) {
	err := workflow.ValidateArticlePayload(domain.ArticlePayload{Title: strPtr("t")}, true)
	require.Error(t, err)
	var verr *apperrors.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Details, "headline")
	assert.Contains(t, verr.Details, "content")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	assert.NoError(t, workflow.ValidateArticlePayload(domain.ArticlePayload{Title: strPtr("new title")}, false))
	assert.Error(t, workflow.ValidateArticlePayload(domain.ArticlePayload{Title: strPtr("")}, false))
}

func TestValidateCategoryPayloadSelfParent(t *testing.T) {
	id := 4
	err := workflow.ValidateCategoryPayload(domain.CategoryPayload{CategoryID: &id, Name: strPtr("World"), ParentCategoryID: &id}, true)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestValidateTagPayload(t *testing.T) {
	assert.NoError(t, workflow.ValidateTagPayload(domain.TagPayload{Name: strPtr("politics")}, true))
	assert.Error(t, workflow.ValidateTagPayload(domain.TagPayload{}, true))
}
