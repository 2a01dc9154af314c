package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/shapeguard/pkg/shape"
	"github.com/dmitrymomot/shapeguard/pkg/validator"
)

func TestOneOf(t *testing.T) {
	t.Run("passes for allowed value", func(t *testing.T) {
		rule := validator.OneOf("size", "md", []string{"sm", "md", "lg"})
		assert.True(t, rule.Check())
		assert.Equal(t, "size", rule.Error.Field)
		assert.Equal(t, "must be one of: [sm md lg]", rule.Error.Message)
		assert.Equal(t, "validation.in_list", rule.Error.TranslationKey)
		assert.Equal(t, "size", rule.Error.TranslationValues["field"])
		assert.Equal(t, []string{"sm", "md", "lg"}, rule.Error.TranslationValues["allowed_values"])
	})

	t.Run("fails for other value", func(t *testing.T) {
		assert.False(t, validator.OneOf("size", "xl", []string{"sm", "md", "lg"}).Check())
	})

	t.Run("property bag values", func(t *testing.T) {
		options := []any{[]any{"a", "b"}, "c"}
		assert.True(t, validator.OneOf[any]("pair", []any{"a", "b"}, options).Check())
		assert.False(t, validator.OneOf[any]("pair", []any{"a"}, options).Check())
	})

	t.Run("none of", func(t *testing.T) {
		rule := validator.NoneOf("status", "banned", []string{"banned", "deleted"})
		assert.False(t, rule.Check())
		assert.Equal(t, "validation.not_in_list", rule.Error.TranslationKey)
		assert.True(t, validator.NoneOf("status", "active", []string{"banned"}).Check())
	})
}

func TestNumericRules(t *testing.T) {
	t.Run("between", func(t *testing.T) {
		rule := validator.Between("count", 3, 1, 3)
		assert.True(t, rule.Check())
		assert.Equal(t, "must be between 1 and 3", rule.Error.Message)
		assert.Equal(t, "validation.between", rule.Error.TranslationKey)
		assert.Equal(t, 1, rule.Error.TranslationValues["min"])
		assert.Equal(t, 3, rule.Error.TranslationValues["max"])
		assert.False(t, validator.Between("count", 4, 1, 3).Check())
	})

	t.Run("min and max", func(t *testing.T) {
		assert.True(t, validator.Min("age", 18, 18).Check())
		assert.False(t, validator.Min("age", 17, 18).Check())
		assert.True(t, validator.Max("ratio", 0.5, 1.0).Check())
		assert.False(t, validator.Max("ratio", 1.5, 1.0).Check())
		assert.Equal(t, "must be at most 1", validator.Max("ratio", 1.5, 1.0).Error.Message)
	})
}

func TestCollectionRules(t *testing.T) {
	t.Run("present", func(t *testing.T) {
		rule := validator.Present("title", "hello")
		assert.True(t, rule.Check())
		assert.Equal(t, "field is required", rule.Error.Message)
		assert.Equal(t, "validation.required", rule.Error.TranslationKey)
		assert.False(t, validator.Present("title", map[string]any{}).Check())
	})

	t.Run("all present", func(t *testing.T) {
		assert.True(t, validator.AllPresent("tags", []any{"a", "b"}).Check())
		assert.False(t, validator.AllPresent("tags", []any{"a", " "}).Check())
	})

	t.Run("all in", func(t *testing.T) {
		rule := validator.AllIn("scopes", []string{"read"}, []string{"read", "write"})
		assert.True(t, rule.Check())
		assert.Equal(t, "validation.all_in_list", rule.Error.TranslationKey)
		assert.False(t, validator.AllIn("scopes", []string{"admin"}, []string{"read"}).Check())
	})
}

func TestShapeRules(t *testing.T) {
	userShape := shape.Shape{
		"name":  "string",
		"email": []any{"string", nil},
		"pet":   []any{"undefined", shape.Shape{"meows": shape.Boolean}},
	}

	t.Run("shaped passes", func(t *testing.T) {
		rule := validator.Shaped("user", map[string]any{"name": "Ann", "email": nil}, userShape)
		assert.True(t, rule.Check())
		assert.Equal(t, "user", rule.Error.Field)
		assert.Equal(t, "does not match the expected shape", rule.Error.Message)
		assert.Equal(t, "validation.shape", rule.Error.TranslationKey)
	})

	t.Run("shaped fails", func(t *testing.T) {
		rule := validator.Shaped("user", map[string]any{"name": "Ann", "email": nil, "pet": map[string]any{"meows": "no"}}, userShape)
		assert.False(t, rule.Check())
	})

	t.Run("shaped honours options", func(t *testing.T) {
		deep := shape.Shape{"a": shape.Shape{"b": shape.Shape{"c": "string"}}}
		value := map[string]any{"a": map[string]any{"b": map[string]any{"c": "x"}}}
		assert.True(t, validator.Shaped("tree", value, deep).Check())
		assert.False(t, validator.Shaped("tree", value, deep, shape.WithMaxDepth(1)).Check())
	})

	t.Run("all shaped", func(t *testing.T) {
		users := []map[string]any{
			{"name": "Ann", "email": nil},
			{"name": "Bob", "email": "bob@example.com"},
		}
		rule := validator.AllShaped("users", users, userShape)
		assert.True(t, rule.Check())
		assert.Equal(t, 2, rule.Error.TranslationValues["count"])

		users = append(users, map[string]any{"name": 1, "email": nil})
		assert.False(t, validator.AllShaped("users", users, userShape).Check())
		assert.True(t, validator.AllShaped[any]("users", nil, userShape).Check())
	})
}

// Validates a component property bag decoded from JSON.
func TestApply_PropertyBag(t *testing.T) {
	itemShape := shape.Shape{"id": "number", "label": "string"}
	props := map[string]any{
		"size":  "lg",
		"count": 4.0,
		"title": "Inbox",
		"items": []any{
			map[string]any{"id": 1.0, "label": "first"},
			map[string]any{"id": 2.0, "label": 2.0},
		},
		"owner": map[string]any{"id": "u1"},
	}

	err := validator.Apply(
		validator.OneOf("size", props["size"], []any{"sm", "md", "lg"}),
		validator.Between("count", props["count"].(float64), 1, 3),
		validator.Present("title", props["title"]),
		validator.AllShaped("items", props["items"].([]any), itemShape),
		validator.Shaped("owner", props["owner"], shape.Shape{"id": "string"}),
	)
	require.Error(t, err)

	verrs := validator.ExtractValidationErrors(err)
	require.NotNil(t, verrs)
	assert.Equal(t, []string{"count", "items"}, verrs.Fields())
}
