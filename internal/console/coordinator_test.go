package console

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateHospitalRoundTrip(t *testing.T) {
	f := newFakeAPI(t)
	co := newTestConsole(t, f, true)
	ctx := context.Background()

	co.Hospitals.Draft.Name = "St. Mary"
	co.Hospitals.Draft.Address = "1 Elm St"
	require.NoError(t, co.SubmitHospital(ctx))

	hospitals := co.Store().Hospitals()
	require.Len(t, hospitals, 1)
	assert.NotZero(t, hospitals[0].ID, "id must be server-assigned")
	assert.Equal(t, "St. Mary", hospitals[0].Name)
	assert.Equal(t, "1 Elm St", hospitals[0].Address)

	assert.Empty(t, co.Hospitals.Draft.Name, "draft must clear after submit")
	assert.False(t, co.Hospitals.Session.Editing())
	assert.NoError(t, co.Hospitals.Err)
}

func TestUpdateIsIdempotent(t *testing.T) {
	f := newFakeAPI(t)
	seedFake(f)
	co := newTestConsole(t, f, true)
	ctx := context.Background()
	require.NoError(t, co.Store().Load(ctx))

	submit := func() {
		co.StartEditHospital(co.Store().Hospitals()[0])
		co.Hospitals.Draft.Name = "St. Mary Renamed"
		co.Hospitals.Draft.Address = "2 Birch Rd"
		require.NoError(t, co.SubmitHospital(ctx))
	}
	submit()
	first := co.Store().Hospitals()[0]
	submit()
	second := co.Store().Hospitals()[0]

	assert.Equal(t, first, second, "same payload twice must yield an identical record")
}

func TestRoleEmptyHospitalSelectionMapsToNull(t *testing.T) {
	f := newFakeAPI(t)
	co := newTestConsole(t, f, true)
	ctx := context.Background()

	co.Roles.Draft.RoleName = "Auditor"
	co.Roles.Draft.Permissions = "read"
	co.Roles.Draft.HospitalID = "" // empty selection = global role
	require.NoError(t, co.SubmitRole(ctx))

	roles := co.Store().Roles()
	require.Len(t, roles, 1)
	assert.Nil(t, roles[0].HospitalID)
	assert.Equal(t, NoHospitalLabel, RoleHospitalName(roles[0]),
		"a global role must render with the placeholder, not a blank")
}

func TestEditUserResetsPasswordAndKeepsStoredOne(t *testing.T) {
	f := newFakeAPI(t)
	seedFake(f)
	co := newTestConsole(t, f, true)
	ctx := context.Background()
	require.NoError(t, co.Store().Load(ctx))

	user := co.Store().Users()[0]
	co.StartEditUser(user)
	assert.Empty(t, co.Users.Draft.Password, "password is never copied into a draft")

	co.Users.Draft.FullName = "Jane A. Doe"
	require.NoError(t, co.SubmitUser(ctx))

	f.mu.Lock()
	defer f.mu.Unlock()
	assert.Equal(t, "hunter2", f.passwords[user.ID], "blank password must leave the stored one unchanged")
}

func TestDeleteDeclinedMakesNoNetworkCall(t *testing.T) {
	f := newFakeAPI(t)
	seedFake(f)
	co := newTestConsole(t, f, false)
	ctx := context.Background()
	require.NoError(t, co.Store().Load(ctx))
	listsBefore := f.listCalls["/v1/hospitals"]

	require.NoError(t, co.DeleteHospital(ctx, co.Store().Hospitals()[0].ID))

	f.mu.Lock()
	defer f.mu.Unlock()
	assert.Empty(t, f.deleteCalls, "declined confirmation must issue zero delete calls")
	assert.Equal(t, listsBefore, f.listCalls["/v1/hospitals"], "and no reload either")
}

func TestDeleteAcceptedIssuesOneDeleteAndOneReload(t *testing.T) {
	f := newFakeAPI(t)
	seedFake(f)
	co := newTestConsole(t, f, true)
	ctx := context.Background()
	require.NoError(t, co.Store().Load(ctx))
	listsBefore := f.listCalls["/v1/hospitals"]
	id := co.Store().Hospitals()[0].ID

	require.NoError(t, co.DeleteHospital(ctx, id))

	f.mu.Lock()
	deleteCalls := append([]string(nil), f.deleteCalls...)
	listsAfter := f.listCalls["/v1/hospitals"]
	f.mu.Unlock()

	require.Len(t, deleteCalls, 1)
	assert.Equal(t, "hospital/1", deleteCalls[0])
	assert.Equal(t, listsBefore+1, listsAfter, "exactly one reload follows the delete")
	assert.Empty(t, co.Store().Hospitals())
}

func TestSubmitFailureLeavesDraftAndSessionUntouched(t *testing.T) {
	f := newFakeAPI(t)
	seedFake(f)
	co := newTestConsole(t, f, true)
	ctx := context.Background()
	require.NoError(t, co.Store().Load(ctx))

	co.StartEditRole(co.Store().Roles()[0])
	co.Roles.Draft.RoleName = "Head Nurse"
	f.rejectWrite = true

	require.Error(t, co.SubmitRole(ctx))

	assert.Equal(t, "Head Nurse", co.Roles.Draft.RoleName, "draft survives a failed submit")
	assert.True(t, co.Roles.Session.Editing(), "session survives a failed submit")
	assert.Error(t, co.Roles.Err)
}

func TestDoctorSubmitBlocksEmptyMandatorySelections(t *testing.T) {
	f := newFakeAPI(t)
	co := newTestConsole(t, f, true)
	ctx := context.Background()

	co.Doctors.Draft.Specialty = "Oncology"
	// user and hospital selections left at their empty defaults
	err := co.SubmitDoctor(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "user is required")

	f.mu.Lock()
	defer f.mu.Unlock()
	assert.Zero(t, f.createCalls, "an invalid draft must never reach the wire")
}

func TestEditSessionsAreIndependentAcrossTypes(t *testing.T) {
	f := newFakeAPI(t)
	seedFake(f)
	co := newTestConsole(t, f, true)
	ctx := context.Background()
	require.NoError(t, co.Store().Load(ctx))

	co.StartEditRole(co.Store().Roles()[0])
	co.StartEditUser(co.Store().Users()[0])
	co.Users.Draft.FullName = "Renamed"
	require.NoError(t, co.SubmitUser(ctx))

	assert.True(t, co.Roles.Session.Editing(), "submitting a user must not disturb the role session")
	assert.False(t, co.Users.Session.Editing())
}

func TestCancelClearsDraftAndSession(t *testing.T) {
	f := newFakeAPI(t)
	seedFake(f)
	co := newTestConsole(t, f, true)
	require.NoError(t, co.Store().Load(context.Background()))

	co.StartEditHospital(co.Store().Hospitals()[0])
	require.True(t, co.Hospitals.Session.Editing())

	co.CancelHospital()
	assert.False(t, co.Hospitals.Session.Editing())
	assert.Empty(t, co.Hospitals.Draft.Name)
	assert.Empty(t, co.Hospitals.Draft.Address)
}
