package errors

import (
	"encoding/json"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bindTarget struct {
	Type      string `binding:"required,oneof=manual uid"`
	FirstName string `binding:"required"`
}

func TestNewBindingError(t *testing.T) {
	v := validator.New()
	v.SetTagName("binding")

	t.Run("collects field failures", func(t *testing.T) {
		err := v.Struct(bindTarget{Type: "import"})
		c := NewBindingError(err)
		require.NotNil(t, c)
		assert.True(t, c.HasError())
		assert.Equal(t, []ValidationError{
			{Field: "Type", Messages: []string{"failed on oneof"}},
			{Field: "FirstName", Messages: []string{"failed on required"}},
		}, c.Errors())
	})

	t.Run("ignores non field errors", func(t *testing.T) {
		var target bindTarget
		err := json.Unmarshal([]byte("{"), &target)
		assert.Nil(t, NewBindingError(err))
	})
}
