package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "employee-directory/pkg/errors"
)

var testSchema = Schema{
	Name: "testEntity",
	Fields: []Field{
		{Name: "name", Label: "Name", Kind: String, Required: true},
		{Name: "email", Label: "Email", Kind: String, Required: true, Rules: "email", RuleMessage: "Email must be a valid email address"},
		{Name: "phone", Label: "Phone", Kind: String, Required: false, Rules: "us_phone", RuleMessage: "Phone number must be in the format ###-###-####"},
		{Name: "age", Label: "Age", Kind: Number, Required: false},
		{Name: "createdAt", Label: "Created at", Kind: Date, Required: false},
	},
}

func validData() map[string]any {
	return map[string]any{
		"name":  "Jane Doe",
		"email": "jane@example.com",
	}
}

func TestValidate_Passes(t *testing.T) {
	data := validData()
	data["phone"] = "123-456-7890"
	data["age"] = float64(34)
	data["createdAt"] = "2024-03-01T10:00:00Z"

	assert.NoError(t, testSchema.Validate(data))
}

func TestValidate_MissingRequiredField(t *testing.T) {
	data := validData()
	delete(data, "name")

	err := testSchema.Validate(data)
	require.Error(t, err)
	assert.Equal(t, "Validation error: Name is required", err.Error())

	var validationErr *apperrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, 400, validationErr.StatusCode)
	assert.Equal(t, apperrors.CodeValidationError, validationErr.Code)
}

func TestValidate_EmptyString(t *testing.T) {
	data := validData()
	data["name"] = ""

	err := testSchema.Validate(data)
	require.Error(t, err)
	assert.Equal(t, "Validation error: Name cannot be empty", err.Error())
}

func TestValidate_EmptyOptionalString(t *testing.T) {
	data := validData()
	data["phone"] = ""

	err := testSchema.Validate(data)
	require.Error(t, err)
	assert.Equal(t, "Validation error: Phone cannot be empty", err.Error())
}

func TestValidate_FirstViolationWins(t *testing.T) {
	err := testSchema.Validate(map[string]any{})
	require.Error(t, err)
	assert.Equal(t, "Validation error: Name is required", err.Error(),
		"name is declared before email, so its violation must be reported")
}

func TestValidate_EmailRule(t *testing.T) {
	data := validData()
	data["email"] = "not-an-email"

	err := testSchema.Validate(data)
	require.Error(t, err)
	assert.Equal(t, "Validation error: Email must be a valid email address", err.Error())
}

func TestValidate_PhoneRule(t *testing.T) {
	for _, phone := range []string{"1234567890", "123-45-67890", "abc-def-ghij", "123-456-78901"} {
		data := validData()
		data["phone"] = phone

		err := testSchema.Validate(data)
		require.Error(t, err, "phone %q should be rejected", phone)
		assert.Equal(t, "Validation error: Phone number must be in the format ###-###-####", err.Error())
	}
}

func TestValidate_KindChecks(t *testing.T) {
	data := validData()
	data["name"] = 42.0
	err := testSchema.Validate(data)
	require.Error(t, err)
	assert.Equal(t, "Validation error: Name must be a string", err.Error())

	data = validData()
	data["age"] = "old"
	err = testSchema.Validate(data)
	require.Error(t, err)
	assert.Equal(t, "Validation error: Age must be a number", err.Error())

	data = validData()
	data["createdAt"] = "yesterday"
	err = testSchema.Validate(data)
	require.Error(t, err)
	assert.Equal(t, "Validation error: Created at must be a valid date", err.Error())
}

func TestValidate_UnknownFieldsIgnored(t *testing.T) {
	data := validData()
	data["nickname"] = "JD"
	data["extra"] = map[string]any{"nested": true}

	assert.NoError(t, testSchema.Validate(data))
	assert.Contains(t, data, "nickname", "unknown fields are ignored, not stripped")
}

func TestValidate_NilValueTreatedAsAbsent(t *testing.T) {
	data := validData()
	data["phone"] = nil
	assert.NoError(t, testSchema.Validate(data))

	data["name"] = nil
	err := testSchema.Validate(data)
	require.Error(t, err)
	assert.Equal(t, "Validation error: Name is required", err.Error())
}
