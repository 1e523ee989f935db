package console

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"go.uber.org/zap"

	"github.com/aysha-dheesan-banu/hospital-managelment-system/internal/client"
	"github.com/aysha-dheesan-banu/hospital-managelment-system/internal/model"
)

// fakeAPI is an in-memory stand-in for the admin service.  It implements
// the /v1 CRUD contract the console consumes: fully materialized joins on
// read, denormalized fields ignored on write, ids assigned server-side.
type fakeAPI struct {
	mu sync.Mutex

	hospitals []model.Hospital
	roles     []model.Role
	users     []model.User
	doctors   []model.Doctor

	// passwords mirrors server-side hash storage, keyed by user id, so
	// tests can verify the blank-password-keeps-current contract.
	passwords map[uint64]string

	nextID uint64

	failList    map[string]bool // list path -> respond 500
	rejectWrite bool            // all writes respond 409

	listCalls   map[string]int
	deleteCalls []string
	createCalls int

	srv *httptest.Server
}

func newFakeAPI(t *testing.T) *fakeAPI {
	t.Helper()
	f := &fakeAPI{
		passwords: map[uint64]string{},
		failList:  map[string]bool{},
		listCalls: map[string]int{},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/hospitals", func(w http.ResponseWriter, r *http.Request) {
		f.list(w, "/v1/hospitals", func() any { return f.hospitals })
	})
	mux.HandleFunc("GET /v1/roles", func(w http.ResponseWriter, r *http.Request) {
		f.list(w, "/v1/roles", func() any { return f.roles })
	})
	mux.HandleFunc("GET /v1/users", func(w http.ResponseWriter, r *http.Request) {
		f.list(w, "/v1/users", func() any { return f.users })
	})
	mux.HandleFunc("GET /v1/doctors", func(w http.ResponseWriter, r *http.Request) {
		f.list(w, "/v1/doctors", func() any { return f.doctors })
	})

	mux.HandleFunc("POST /v1/hospitals", f.createHospital)
	mux.HandleFunc("PUT /v1/hospitals/{id}", f.updateHospital)
	mux.HandleFunc("DELETE /v1/hospitals/{id}", f.deleteEntity("hospital"))

	mux.HandleFunc("POST /v1/roles", f.createRole)
	mux.HandleFunc("PUT /v1/roles/{id}", f.updateRole)
	mux.HandleFunc("DELETE /v1/roles/{id}", f.deleteEntity("role"))

	mux.HandleFunc("POST /v1/users", f.createUser)
	mux.HandleFunc("PUT /v1/users/{id}", f.updateUser)
	mux.HandleFunc("DELETE /v1/users/{id}", f.deleteEntity("user"))

	mux.HandleFunc("POST /v1/doctors", f.createDoctor)
	mux.HandleFunc("PUT /v1/doctors/{id}", f.updateDoctor)
	mux.HandleFunc("DELETE /v1/doctors/{id}", f.deleteEntity("doctor"))

	f.srv = httptest.NewServer(mux)
	t.Cleanup(f.srv.Close)
	return f
}

func (f *fakeAPI) client() *client.Client {
	return client.New(f.srv.URL, zap.NewNop())
}

func zapNop() *zap.Logger { return zap.NewNop() }

func (f *fakeAPI) assign() uint64 {
	f.nextID++
	return f.nextID
}

func (f *fakeAPI) list(w http.ResponseWriter, path string, items func() any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls[path]++
	if f.failList[path] {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "db error"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func decode[T any](r *http.Request) (T, error) {
	var v T
	err := json.NewDecoder(r.Body).Decode(&v)
	return v, err
}

func pathID(r *http.Request) uint64 {
	id, _ := strconv.ParseUint(r.PathValue("id"), 10, 64)
	return id
}

func (f *fakeAPI) gateWrite(w http.ResponseWriter) bool {
	if f.rejectWrite {
		writeJSON(w, http.StatusConflict, map[string]string{"error": "conflict"})
		return false
	}
	return true
}

// hospitalName resolves the denormalized name for roles and doctors the
// way the real service's joins do.
func (f *fakeAPI) hospitalName(id *uint64) *string {
	if id == nil {
		return nil
	}
	for _, h := range f.hospitals {
		if h.ID == *id {
			name := h.Name
			return &name
		}
	}
	return nil
}

func (f *fakeAPI) createHospital(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.gateWrite(w) {
		return
	}
	req, err := decode[model.HospitalRequest](r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	f.createCalls++
	h := model.Hospital{ID: f.assign(), Name: req.Name, Address: req.Address}
	f.hospitals = append(f.hospitals, h)
	writeJSON(w, http.StatusCreated, h)
}

func (f *fakeAPI) updateHospital(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.gateWrite(w) {
		return
	}
	req, _ := decode[model.HospitalRequest](r)
	id := pathID(r)
	for i := range f.hospitals {
		if f.hospitals[i].ID == id {
			f.hospitals[i].Name = req.Name
			f.hospitals[i].Address = req.Address
			writeJSON(w, http.StatusOK, f.hospitals[i])
			return
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]string{"error": "hospital not found"})
}

func (f *fakeAPI) createRole(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.gateWrite(w) {
		return
	}
	req, _ := decode[model.RoleRequest](r)
	f.createCalls++
	role := model.Role{
		ID:           f.assign(),
		RoleName:     req.RoleName,
		Permissions:  req.Permissions,
		HospitalID:   req.HospitalID,
		HospitalName: f.hospitalName(req.HospitalID),
	}
	f.roles = append(f.roles, role)
	writeJSON(w, http.StatusCreated, role)
}

func (f *fakeAPI) updateRole(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.gateWrite(w) {
		return
	}
	req, _ := decode[model.RoleRequest](r)
	id := pathID(r)
	for i := range f.roles {
		if f.roles[i].ID == id {
			f.roles[i].RoleName = req.RoleName
			f.roles[i].Permissions = req.Permissions
			f.roles[i].HospitalID = req.HospitalID
			f.roles[i].HospitalName = f.hospitalName(req.HospitalID)
			writeJSON(w, http.StatusOK, f.roles[i])
			return
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]string{"error": "role not found"})
}

func (f *fakeAPI) roleName(id *uint64) *string {
	if id == nil {
		return nil
	}
	for _, role := range f.roles {
		if role.ID == *id {
			name := role.RoleName
			return &name
		}
	}
	return nil
}

func (f *fakeAPI) createUser(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.gateWrite(w) {
		return
	}
	req, _ := decode[model.UserRequest](r)
	f.createCalls++
	u := model.User{
		ID:       f.assign(),
		Username: req.Username,
		FullName: req.FullName,
		Email:    req.Email,
		RoleID:   req.RoleID,
		RoleName: f.roleName(req.RoleID),
	}
	f.users = append(f.users, u)
	f.passwords[u.ID] = req.Password
	writeJSON(w, http.StatusCreated, u)
}

func (f *fakeAPI) updateUser(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.gateWrite(w) {
		return
	}
	req, _ := decode[model.UserRequest](r)
	id := pathID(r)
	for i := range f.users {
		if f.users[i].ID == id {
			f.users[i].Username = req.Username
			f.users[i].FullName = req.FullName
			f.users[i].Email = req.Email
			f.users[i].RoleID = req.RoleID
			f.users[i].RoleName = f.roleName(req.RoleID)
			if req.Password != "" {
				f.passwords[id] = req.Password
			}
			writeJSON(w, http.StatusOK, f.users[i])
			return
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]string{"error": "user not found"})
}

func (f *fakeAPI) userNames(id uint64) (*string, *string) {
	for _, u := range f.users {
		if u.ID == id {
			username, fullName := u.Username, u.FullName
			return &username, &fullName
		}
	}
	return nil, nil
}

func (f *fakeAPI) createDoctor(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.gateWrite(w) {
		return
	}
	req, _ := decode[model.DoctorRequest](r)
	f.createCalls++
	username, fullName := f.userNames(req.UserID)
	d := model.Doctor{
		ID:           f.assign(),
		UserID:       req.UserID,
		HospitalID:   req.HospitalID,
		Specialty:    req.Specialty,
		ShortBio:     req.ShortBio,
		Username:     username,
		FullName:     fullName,
		HospitalName: f.hospitalName(&req.HospitalID),
	}
	f.doctors = append(f.doctors, d)
	writeJSON(w, http.StatusCreated, d)
}

func (f *fakeAPI) updateDoctor(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.gateWrite(w) {
		return
	}
	req, _ := decode[model.DoctorRequest](r)
	id := pathID(r)
	for i := range f.doctors {
		if f.doctors[i].ID == id {
			username, fullName := f.userNames(req.UserID)
			f.doctors[i].UserID = req.UserID
			f.doctors[i].HospitalID = req.HospitalID
			f.doctors[i].Specialty = req.Specialty
			f.doctors[i].ShortBio = req.ShortBio
			f.doctors[i].Username = username
			f.doctors[i].FullName = fullName
			f.doctors[i].HospitalName = f.hospitalName(&req.HospitalID)
			writeJSON(w, http.StatusOK, f.doctors[i])
			return
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]string{"error": "doctor not found"})
}

func (f *fakeAPI) deleteEntity(entity string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		id := pathID(r)
		f.deleteCalls = append(f.deleteCalls, entity+"/"+strconv.FormatUint(id, 10))
		switch entity {
		case "hospital":
			for i := range f.hospitals {
				if f.hospitals[i].ID == id {
					f.hospitals = append(f.hospitals[:i], f.hospitals[i+1:]...)
					w.WriteHeader(http.StatusNoContent)
					return
				}
			}
		case "role":
			for i := range f.roles {
				if f.roles[i].ID == id {
					f.roles = append(f.roles[:i], f.roles[i+1:]...)
					w.WriteHeader(http.StatusNoContent)
					return
				}
			}
		case "user":
			for i := range f.users {
				if f.users[i].ID == id {
					f.users = append(f.users[:i], f.users[i+1:]...)
					w.WriteHeader(http.StatusNoContent)
					return
				}
			}
		case "doctor":
			for i := range f.doctors {
				if f.doctors[i].ID == id {
					f.doctors = append(f.doctors[:i], f.doctors[i+1:]...)
					w.WriteHeader(http.StatusNoContent)
					return
				}
			}
		}
		writeJSON(w, http.StatusNotFound, map[string]string{"error": entity + " not found"})
	}
}

// newTestConsole wires a console over the fake API with the given
// confirmation outcome.
func newTestConsole(t *testing.T, f *fakeAPI, confirm bool) *Console {
	t.Helper()
	api := f.client()
	store := NewEntityStore(api, zap.NewNop())
	return New(api, store, zap.NewNop(), func(string) bool { return confirm })
}
