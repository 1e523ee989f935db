package console

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/aysha-dheesan-banu/hospital-managelment-system/internal/client"
	"github.com/aysha-dheesan-banu/hospital-managelment-system/internal/model"
)

// ConfirmFunc decides whether a destructive action proceeds.  Injected so
// the coordinator is independent of how confirmation is obtained: a modal,
// a terminal prompt, or a deterministic stub in tests.
type ConfirmFunc func(prompt string) bool

// HospitalPanel bundles the draft, edit session and last error for the
// hospitals view.  The other three panels are shaped the same way.
type HospitalPanel struct {
	Draft   HospitalDraft
	Session EditSession
	Err     error
}

type RolePanel struct {
	Draft   RoleDraft
	Session EditSession
	Err     error
}

type UserPanel struct {
	Draft   UserDraft
	Session EditSession
	Err     error
}

type DoctorPanel struct {
	Draft   DoctorDraft
	Session EditSession
	Err     error
}

// Console is the mutation coordinator plus the consolidated editing state
// of the four entity panels.  Panels are fully independent: editing a role
// does not disturb an in-progress user edit.
//
// Submits are not guarded against overlap; a second submit issued while
// the first is in flight can create a duplicate record.  The UI loop is
// synchronous, so this does not arise in practice.
type Console struct {
	api     *client.Client
	store   *EntityStore
	logger  *zap.Logger
	confirm ConfirmFunc

	Hospitals HospitalPanel
	Roles     RolePanel
	Users     UserPanel
	Doctors   DoctorPanel
}

// New builds a Console over the given client, store and confirmation
// predicate.
func New(api *client.Client, store *EntityStore, logger *zap.Logger, confirm ConfirmFunc) *Console {
	return &Console{api: api, store: store, logger: logger, confirm: confirm}
}

// Store exposes the snapshot for rendering.
func (co *Console) Store() *EntityStore { return co.store }

// finishMutation is the shared success path of every submit and delete:
// the authoritative snapshot is reloaded.  Each call site clears its own
// panel state first; a failing reload is logged by the store and reported
// to the caller, but the cleared draft/session state stays cleared.
func (co *Console) finishMutation(ctx context.Context) error {
	return co.store.Load(ctx)
}

// --- hospitals ---

// StartEditHospital copies the record into the draft and marks the session
// as editing it.  Any unsaved draft for this panel is discarded.
func (co *Console) StartEditHospital(h model.Hospital) {
	co.Hospitals.Draft.LoadFrom(h)
	co.Hospitals.Session.Begin(h.ID)
}

// CancelHospital clears the draft and leaves editing.
func (co *Console) CancelHospital() {
	co.Hospitals.Draft.Reset()
	co.Hospitals.Session.Clear()
}

// SubmitHospital validates the draft and issues a create or an update
// depending on the session state.  On success the draft and session are
// cleared and the snapshot reloaded; on failure both are left untouched
// and the error is recorded on the panel.
func (co *Console) SubmitHospital(ctx context.Context) error {
	p := &co.Hospitals
	req, err := p.Draft.Payload()
	if err != nil {
		p.Err = err
		return err
	}
	if p.Session.Editing() {
		_, err = co.api.UpdateHospital(ctx, p.Session.ID(), req)
	} else {
		_, err = co.api.CreateHospital(ctx, req)
	}
	if err != nil {
		p.Err = err
		co.logger.Warn("hospital submit failed", zap.Error(err))
		return err
	}
	p.Draft.Reset()
	p.Session.Clear()
	p.Err = nil
	return co.finishMutation(ctx)
}

// DeleteHospital asks for confirmation and, if granted, issues the delete
// followed by a reload.  A declined confirmation performs no network
// action at all.
func (co *Console) DeleteHospital(ctx context.Context, id uint64) error {
	if !co.confirm(fmt.Sprintf("Delete hospital #%d?", id)) {
		return nil
	}
	if err := co.api.DeleteHospital(ctx, id); err != nil {
		co.Hospitals.Err = err
		co.logger.Warn("hospital delete failed", zap.Uint64("id", id), zap.Error(err))
		return err
	}
	co.Hospitals.Err = nil
	return co.finishMutation(ctx)
}

// --- roles ---

func (co *Console) StartEditRole(r model.Role) {
	co.Roles.Draft.LoadFrom(r)
	co.Roles.Session.Begin(r.ID)
}

func (co *Console) CancelRole() {
	co.Roles.Draft.Reset()
	co.Roles.Session.Clear()
}

func (co *Console) SubmitRole(ctx context.Context) error {
	p := &co.Roles
	req, err := p.Draft.Payload()
	if err != nil {
		p.Err = err
		return err
	}
	if p.Session.Editing() {
		_, err = co.api.UpdateRole(ctx, p.Session.ID(), req)
	} else {
		_, err = co.api.CreateRole(ctx, req)
	}
	if err != nil {
		p.Err = err
		co.logger.Warn("role submit failed", zap.Error(err))
		return err
	}
	p.Draft.Reset()
	p.Session.Clear()
	p.Err = nil
	return co.finishMutation(ctx)
}

func (co *Console) DeleteRole(ctx context.Context, id uint64) error {
	if !co.confirm(fmt.Sprintf("Delete role #%d?", id)) {
		return nil
	}
	if err := co.api.DeleteRole(ctx, id); err != nil {
		co.Roles.Err = err
		co.logger.Warn("role delete failed", zap.Uint64("id", id), zap.Error(err))
		return err
	}
	co.Roles.Err = nil
	return co.finishMutation(ctx)
}

// --- users ---

func (co *Console) StartEditUser(u model.User) {
	co.Users.Draft.LoadFrom(u)
	co.Users.Session.Begin(u.ID)
}

func (co *Console) CancelUser() {
	co.Users.Draft.Reset()
	co.Users.Session.Clear()
}

func (co *Console) SubmitUser(ctx context.Context) error {
	p := &co.Users
	req, err := p.Draft.Payload()
	if err != nil {
		p.Err = err
		return err
	}
	if p.Session.Editing() {
		_, err = co.api.UpdateUser(ctx, p.Session.ID(), req)
	} else {
		_, err = co.api.CreateUser(ctx, req)
	}
	if err != nil {
		p.Err = err
		co.logger.Warn("user submit failed", zap.Error(err))
		return err
	}
	p.Draft.Reset()
	p.Session.Clear()
	p.Err = nil
	return co.finishMutation(ctx)
}

func (co *Console) DeleteUser(ctx context.Context, id uint64) error {
	if !co.confirm(fmt.Sprintf("Delete user #%d?", id)) {
		return nil
	}
	if err := co.api.DeleteUser(ctx, id); err != nil {
		co.Users.Err = err
		co.logger.Warn("user delete failed", zap.Uint64("id", id), zap.Error(err))
		return err
	}
	co.Users.Err = nil
	return co.finishMutation(ctx)
}

// --- doctors ---

func (co *Console) StartEditDoctor(d model.Doctor) {
	co.Doctors.Draft.LoadFrom(d)
	co.Doctors.Session.Begin(d.ID)
}

func (co *Console) CancelDoctor() {
	co.Doctors.Draft.Reset()
	co.Doctors.Session.Clear()
}

func (co *Console) SubmitDoctor(ctx context.Context) error {
	p := &co.Doctors
	req, err := p.Draft.Payload()
	if err != nil {
		p.Err = err
		return err
	}
	if p.Session.Editing() {
		_, err = co.api.UpdateDoctor(ctx, p.Session.ID(), req)
	} else {
		_, err = co.api.CreateDoctor(ctx, req)
	}
	if err != nil {
		p.Err = err
		co.logger.Warn("doctor submit failed", zap.Error(err))
		return err
	}
	p.Draft.Reset()
	p.Session.Clear()
	p.Err = nil
	return co.finishMutation(ctx)
}

func (co *Console) DeleteDoctor(ctx context.Context, id uint64) error {
	if !co.confirm(fmt.Sprintf("Delete doctor #%d?", id)) {
		return nil
	}
	if err := co.api.DeleteDoctor(ctx, id); err != nil {
		co.Doctors.Err = err
		co.logger.Warn("doctor delete failed", zap.Uint64("id", id), zap.Error(err))
		return err
	}
	co.Doctors.Err = nil
	return co.finishMutation(ctx)
}
