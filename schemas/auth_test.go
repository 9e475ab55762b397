package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAccountValidation(t *testing.T) {
	valid := RegisterAccount{
		Email:     "jane@example.com",
		FirstName: "Jane",
		LastName:  "Doe",
		Password:  "s3cret",
		Role:      "clinician",
	}
	require.NoError(t, valid.Validate())
	assert.Equal(t, "Jane Doe", valid.DisplayName())

	req := valid
	req.Email = "not-an-email"
	err := req.Validate()
	require.Error(t, err)
	assert.Equal(t, "Invalid email address", fieldMessages(t, err)["email"])

	req = valid
	req.Role = "  "
	err = req.Validate()
	require.Error(t, err)
	assert.Equal(t, "Role is required", fieldMessages(t, err)["role"])

	// Role is a free-text claim, not a closed set.
	req = valid
	req.Role = "astronaut"
	assert.NoError(t, req.Validate())
}

func TestLoginAccountValidation(t *testing.T) {
	req := LoginAccount{Email: "jane@example.com", Password: "s3cret"}
	require.NoError(t, req.Validate())

	req.Password = ""
	err := req.Validate()
	require.Error(t, err)
	assert.Equal(t, "Password is required", fieldMessages(t, err)["password"])
}
