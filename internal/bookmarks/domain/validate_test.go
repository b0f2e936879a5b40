package domain_test

import (
	"strings"
	"testing"

	"markfy/internal/bookmarks/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldNames(ve *domain.ValidationError) []string {
	names := make([]string, len(ve.Fields))
	for i, f := range ve.Fields {
		names[i] = f.Field
	}
	return names
}

// TestCreateInputValidate_ValidInput_NoError verifies the happy path
func TestCreateInputValidate_ValidInput_NoError(t *testing.T) {
	in := domain.CreateInput{
		Title:       "Go Documentation",
		URL:         "https://go.dev/doc/",
		Description: "The official docs",
	}

	assert.NoError(t, in.Validate())
}

// TestCreateInputValidate_MissingTitle_ReportsTitle verifies the required title
func TestCreateInputValidate_MissingTitle_ReportsTitle(t *testing.T) {
	in := domain.CreateInput{URL: "https://go.dev"}

	err := in.Validate()

	require.Error(t, err)
	ve, ok := domain.AsValidationError(err)
	require.True(t, ok)
	assert.Contains(t, fieldNames(ve), "title")
}

// TestCreateInputValidate_WhitespaceTitle_ReportsTitle treats blanks as empty
func TestCreateInputValidate_WhitespaceTitle_ReportsTitle(t *testing.T) {
	in := domain.CreateInput{Title: "   ", URL: "https://go.dev"}

	err := in.Validate()

	require.Error(t, err)
	ve, _ := domain.AsValidationError(err)
	assert.Contains(t, fieldNames(ve), "title")
}

// TestCreateInputValidate_BadURLs_ReportsURL covers the scheme and host rules
func TestCreateInputValidate_BadURLs_ReportsURL(t *testing.T) {
	for _, raw := range []string{
		"not-a-url",
		"ftp://example.com/file",
		"javascript:alert(1)",
		"http://",
	} {
		in := domain.CreateInput{Title: "x", URL: raw}

		err := in.Validate()

		require.Error(t, err, "url %q", raw)
		ve, ok := domain.AsValidationError(err)
		require.True(t, ok)
		assert.Contains(t, fieldNames(ve), "url", "url %q", raw)
	}
}

// TestCreateInputValidate_LongFields_ReportsLimits covers the length caps
func TestCreateInputValidate_LongFields_ReportsLimits(t *testing.T) {
	in := domain.CreateInput{
		Title:       strings.Repeat("a", 256),
		URL:         "https://example.com/" + strings.Repeat("p", 2048),
		Description: strings.Repeat("d", 501),
	}

	err := in.Validate()

	require.Error(t, err)
	ve, ok := domain.AsValidationError(err)
	require.True(t, ok)
	names := fieldNames(ve)
	assert.Contains(t, names, "title")
	assert.Contains(t, names, "url")
	assert.Contains(t, names, "description")
}

// TestCreateInputValidate_MultipleIssues_AccumulatesAll reports every field
func TestCreateInputValidate_MultipleIssues_AccumulatesAll(t *testing.T) {
	in := domain.CreateInput{Title: "", URL: "bogus"}

	err := in.Validate()

	require.Error(t, err)
	ve, ok := domain.AsValidationError(err)
	require.True(t, ok)
	assert.Len(t, ve.Fields, 2)
}

// TestUpdateInputValidate_NilFields_NoError verifies absent fields are skipped
func TestUpdateInputValidate_NilFields_NoError(t *testing.T) {
	assert.NoError(t, domain.UpdateInput{}.Validate())
}

// TestUpdateInputValidate_EmptyTitle_ReportsTitle rejects blanking the title
func TestUpdateInputValidate_EmptyTitle_ReportsTitle(t *testing.T) {
	empty := ""
	in := domain.UpdateInput{Title: &empty}

	err := in.Validate()

	require.Error(t, err)
	ve, _ := domain.AsValidationError(err)
	assert.Contains(t, fieldNames(ve), "title")
}

// TestUpdateInputValidate_BadURL_ReportsURL validates a provided url
func TestUpdateInputValidate_BadURL_ReportsURL(t *testing.T) {
	bad := "ftp://example.com"
	in := domain.UpdateInput{URL: &bad}

	err := in.Validate()

	require.Error(t, err)
	ve, _ := domain.AsValidationError(err)
	assert.Contains(t, fieldNames(ve), "url")
}

// TestUpdateInputIsEmpty_Variants verifies emptiness detection
func TestUpdateInputIsEmpty_Variants(t *testing.T) {
	fav := true

	assert.True(t, domain.UpdateInput{}.IsEmpty())
	assert.False(t, domain.UpdateInput{IsFavorite: &fav}.IsEmpty())
}
