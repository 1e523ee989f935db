// Package console implements the state-synchronization core of the admin
// console: the last-known-good entity snapshot, per-entity edit drafts and
// sessions, the mutation coordinator and the display-name resolution.
//
// The package assumes a single goroutine of control (the interactive UI
// loop).  The four collections are written only by EntityStore.Load;
// mutations never touch local state directly, they trigger a fresh
// authoritative reload instead.
package console

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/aysha-dheesan-banu/hospital-managelment-system/internal/client"
	"github.com/aysha-dheesan-banu/hospital-managelment-system/internal/model"
)

// EntityStore holds the last successful snapshot of the four collections.
type EntityStore struct {
	api    *client.Client
	logger *zap.Logger

	busy      bool
	hospitals []model.Hospital
	roles     []model.Role
	users     []model.User
	doctors   []model.Doctor
}

// NewEntityStore builds an empty store over the given API client.
func NewEntityStore(api *client.Client, logger *zap.Logger) *EntityStore {
	return &EntityStore{api: api, logger: logger}
}

// Busy reports whether a combined load is currently in flight.
func (s *EntityStore) Busy() bool { return s.busy }

func (s *EntityStore) Hospitals() []model.Hospital { return s.hospitals }
func (s *EntityStore) Roles() []model.Role         { return s.roles }
func (s *EntityStore) Users() []model.User         { return s.users }
func (s *EntityStore) Doctors() []model.Doctor     { return s.doctors }

// Load fetches the four collections concurrently and commits them
// atomically: if any fetch fails, none of the collections change.  The
// busy flag is cleared unconditionally.  Failures are logged and returned;
// the store itself exposes no error state.
func (s *EntityStore) Load(ctx context.Context) error {
	s.busy = true
	defer func() { s.busy = false }()

	var (
		hospitals []model.Hospital
		roles     []model.Role
		users     []model.User
		doctors   []model.Doctor
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		hospitals, err = s.api.ListHospitals(gctx)
		return err
	})
	g.Go(func() (err error) {
		roles, err = s.api.ListRoles(gctx)
		return err
	})
	g.Go(func() (err error) {
		users, err = s.api.ListUsers(gctx)
		return err
	})
	g.Go(func() (err error) {
		doctors, err = s.api.ListDoctors(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.Warn("load failed; keeping previous snapshot", zap.Error(err))
		return err
	}

	// All four fetches succeeded; commit the snapshot as a unit.
	s.hospitals = hospitals
	s.roles = roles
	s.users = users
	s.doctors = doctors
	return nil
}
