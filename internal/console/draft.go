package console

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aysha-dheesan-banu/hospital-managelment-system/internal/model"
)

// Drafts hold user-entered field values in raw textual form, mirroring the
// input surface rather than the domain shape: numeric and nullable-FK
// fields arrive as free text.  Payload() performs the single, fallible
// conversion from text to a validated request just before a submit;
// nothing invalid ever reaches the wire.

// parseOptionalRef converts the text of an optional FK field.  Empty text
// maps to a nil reference (an explicit null on the wire).
func parseOptionalRef(raw string) (*uint64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid id %q", raw)
	}
	return &id, nil
}

// parseRequiredRef converts the text of a mandatory FK field.  An empty
// selection is rejected here rather than forwarded as an invalid key.
func parseRequiredRef(field, raw string) (uint64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("%s is required", field)
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", field, raw)
	}
	return id, nil
}

// EditSession distinguishes "creating new" from "editing existing id N"
// for one entity type's draft.
type EditSession struct {
	id      uint64
	editing bool
}

// Begin marks the session as editing the given record id.
func (s *EditSession) Begin(id uint64) {
	s.id = id
	s.editing = true
}

// Clear returns the session to the idle (creating) state.
func (s *EditSession) Clear() {
	s.id = 0
	s.editing = false
}

// Editing reports whether a record is being edited.
func (s *EditSession) Editing() bool { return s.editing }

// ID returns the record id under edit; meaningful only while Editing.
func (s *EditSession) ID() uint64 { return s.id }

// HospitalDraft is the in-progress form for a hospital.
type HospitalDraft struct {
	Name    string
	Address string
}

func (d *HospitalDraft) Reset() { *d = HospitalDraft{} }

// LoadFrom copies a record's fields into the draft as text.
func (d *HospitalDraft) LoadFrom(h model.Hospital) {
	d.Name = h.Name
	d.Address = h.Address
}

// Payload converts the draft into a validated write request.
func (d *HospitalDraft) Payload() (model.HospitalRequest, error) {
	return model.HospitalRequest{
		Name:    strings.TrimSpace(d.Name),
		Address: strings.TrimSpace(d.Address),
	}, nil
}

// RoleDraft is the in-progress form for a role.  HospitalID is raw text;
// empty means a global role.
type RoleDraft struct {
	RoleName    string
	Permissions string
	HospitalID  string
}

func (d *RoleDraft) Reset() { *d = RoleDraft{} }

func (d *RoleDraft) LoadFrom(r model.Role) {
	d.RoleName = r.RoleName
	d.Permissions = r.Permissions
	d.HospitalID = ""
	if r.HospitalID != nil {
		d.HospitalID = strconv.FormatUint(*r.HospitalID, 10)
	}
}

func (d *RoleDraft) Payload() (model.RoleRequest, error) {
	hospitalID, err := parseOptionalRef(d.HospitalID)
	if err != nil {
		return model.RoleRequest{}, fmt.Errorf("hospital: %w", err)
	}
	return model.RoleRequest{
		RoleName:    strings.TrimSpace(d.RoleName),
		Permissions: strings.TrimSpace(d.Permissions),
		HospitalID:  hospitalID,
	}, nil
}

// UserDraft is the in-progress form for a user account.  Password is never
// copied from an existing record: editing always starts with it empty, and
// an empty password on submit leaves the stored one unchanged.
type UserDraft struct {
	Username string
	FullName string
	Email    string
	Password string
	RoleID   string
}

func (d *UserDraft) Reset() { *d = UserDraft{} }

func (d *UserDraft) LoadFrom(u model.User) {
	d.Username = u.Username
	d.FullName = u.FullName
	d.Email = u.Email
	d.Password = ""
	d.RoleID = ""
	if u.RoleID != nil {
		d.RoleID = strconv.FormatUint(*u.RoleID, 10)
	}
}

func (d *UserDraft) Payload() (model.UserRequest, error) {
	roleID, err := parseOptionalRef(d.RoleID)
	if err != nil {
		return model.UserRequest{}, fmt.Errorf("role: %w", err)
	}
	return model.UserRequest{
		Username: strings.TrimSpace(d.Username),
		FullName: strings.TrimSpace(d.FullName),
		Email:    strings.TrimSpace(d.Email),
		Password: d.Password,
		RoleID:   roleID,
	}, nil
}

// DoctorDraft is the in-progress form for a staff assignment.  Both FK
// fields are mandatory; Payload rejects empty selections.
type DoctorDraft struct {
	UserID     string
	HospitalID string
	Specialty  string
	ShortBio   string
}

func (d *DoctorDraft) Reset() { *d = DoctorDraft{} }

func (d *DoctorDraft) LoadFrom(doc model.Doctor) {
	d.UserID = strconv.FormatUint(doc.UserID, 10)
	d.HospitalID = strconv.FormatUint(doc.HospitalID, 10)
	d.Specialty = doc.Specialty
	d.ShortBio = ""
	if doc.ShortBio != nil {
		d.ShortBio = *doc.ShortBio
	}
}

func (d *DoctorDraft) Payload() (model.DoctorRequest, error) {
	userID, err := parseRequiredRef("user", d.UserID)
	if err != nil {
		return model.DoctorRequest{}, err
	}
	hospitalID, err := parseRequiredRef("hospital", d.HospitalID)
	if err != nil {
		return model.DoctorRequest{}, err
	}
	req := model.DoctorRequest{
		UserID:     userID,
		HospitalID: hospitalID,
		Specialty:  strings.TrimSpace(d.Specialty),
	}
	if bio := strings.TrimSpace(d.ShortBio); bio != "" {
		req.ShortBio = &bio
	}
	return req, nil
}
