package validator_test

import (
	"errors"
	"testing"

	"portfolio/internal/domain/models"
	"portfolio/internal/lib/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_Struct(t *testing.T) {
	v := validator.New()

	t.Run("valid contact", func(t *testing.T) {
		err := v.Struct(models.Contact{Name: "a", Email: "a@b.co", Subject: "s", Message: "m"})
		assert.NoError(t, err)
	})

	t.Run("fields keyed by json name", func(t *testing.T) {
		err := v.Struct(models.Contact{Name: "a", Email: "nope", Message: "m"})
		require.Error(t, err)

		var ve *models.ValidationError
		require.True(t, errors.As(err, &ve))
		assert.Equal(t, map[string]string{
			"email":   "email must be a valid email",
			"subject": "subject is required",
		}, ve.Fields)
	})

	t.Run("optional url", func(t *testing.T) {
		bad := "not a url"
		p := models.Project{Title: "t", Slug: "s", Description: "d", Image: "i", DemoURL: &bad}

		err := v.Struct(p)
		var ve *models.ValidationError
		require.True(t, errors.As(err, &ve))
		assert.Equal(t, "demoUrl must be a valid URL", ve.Fields["demoUrl"])

		p.DemoURL = nil
		assert.NoError(t, v.Struct(p))
	})

	t.Run("blog requires cover image", func(t *testing.T) {
		err := v.Struct(models.BlogPost{Title: "t", Slug: "s", Excerpt: "e", Content: "c", Category: "c"})
		var ve *models.ValidationError
		require.True(t, errors.As(err, &ve))
		assert.Contains(t, ve.Fields, "coverImage")
		assert.Len(t, ve.Fields, 1)
	})
}
