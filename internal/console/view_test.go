package console

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aysha-dheesan-banu/hospital-managelment-system/internal/model"
)

func TestPlaceholdersSubstituteMissingNames(t *testing.T) {
	assert.Equal(t, NoHospitalLabel, RoleHospitalName(model.Role{RoleName: "Global"}))
	assert.Equal(t, NoRoleLabel, UserRoleName(model.User{Username: "jdoe"}))
	assert.Equal(t, UnknownLabel, DoctorUsername(model.Doctor{}))
	assert.Equal(t, UnknownLabel, DoctorHospitalName(model.Doctor{}))
}

func TestDenormalizedNamesArePreferred(t *testing.T) {
	name := "St. Mary"
	role := "Nurse"
	assert.Equal(t, "St. Mary", RoleHospitalName(model.Role{HospitalName: &name}))
	assert.Equal(t, "Nurse", UserRoleName(model.User{RoleName: &role}))

	empty := ""
	assert.Equal(t, NoHospitalLabel, RoleHospitalName(model.Role{HospitalName: &empty}),
		"an empty server string still renders as the placeholder")
}

func TestDoctorBio(t *testing.T) {
	bio := "20 years in cardiology"
	assert.Equal(t, bio, DoctorBio(model.Doctor{ShortBio: &bio}))
	assert.Empty(t, DoctorBio(model.Doctor{}))
}
