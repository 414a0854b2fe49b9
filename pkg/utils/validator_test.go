package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"InOut-Attendance-Backend/models"
)

func TestValidateStructAssignment(t *testing.T) {
	payload := models.AssignmentPayload{
		EmployeeID:         "EMP001",
		AssignedLocationID: "loc-1",
		ShiftStartTime:     "09:00 AM",
		ShiftEndTime:       "06:00 PM",
	}
	assert.Nil(t, ValidateStruct(payload))
}

func TestValidateStructRejectsBadTimeOfDay(t *testing.T) {
	payload := models.AssignmentPayload{
		EmployeeID:         "EMP001",
		AssignedLocationID: "loc-1",
		ShiftStartTime:     "25:00",
	}

	errs := ValidateStruct(payload)
	require.NotNil(t, errs)
	assert.Equal(t, "ShiftStartTime", errs[0].Field)
}

func TestGenerateBase64KeyDecodesTo32Bytes(t *testing.T) {
	key, err := GenerateBase64Key(32)
	require.NoError(t, err)
	assert.NotEmpty(t, key)

	_, err = GenerateBase64Key(16)
	assert.Error(t, err)
}

func TestValidateStructPasswordUppercase(t *testing.T) {
	payload := models.UserRegisterPayload{
		Name:     "Budi Santoso",
		Email:    "budi@inout.local",
		Password: "alllowercase1",
	}

	errs := ValidateStruct(payload)
	require.NotNil(t, errs)
	assert.Equal(t, "Password", errs[0].Field)
}
