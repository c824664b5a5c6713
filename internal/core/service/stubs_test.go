package service

// In-memory stub repositories shared by the service tests. Each one
// mirrors the error contract of the real Postgres implementation:
// not-found sentinels on missing rows, failWith to simulate a storage
// fault.

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/eventhive/booking-api/internal/core/domain"
)

var discardLogger = zerolog.Nop()

// ---------------------------------------------------------------------------
// Roles
// ---------------------------------------------------------------------------

type stubRoleRepo struct {
	byID     map[int64]*domain.Role
	nextID   int64
	failWith error
}

func newStubRoleRepo() *stubRoleRepo {
	return &stubRoleRepo{byID: make(map[int64]*domain.Role), nextID: 1}
}

func (r *stubRoleRepo) seed(name string) int64 {
	id := r.nextID
	r.nextID++
	r.byID[id] = &domain.Role{ID: id, Name: name}
	return id
}

func (r *stubRoleRepo) Create(_ context.Context, name string) (int64, error) {
	if r.failWith != nil {
		return 0, r.failWith
	}
	return r.seed(name), nil
}

func (r *stubRoleRepo) GetAll(_ context.Context) ([]domain.Role, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	out := make([]domain.Role, 0, len(r.byID))
	for _, role := range r.byID {
		out = append(out, *role)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubRoleRepo) GetByID(_ context.Context, id int64) (*domain.Role, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	role, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrRoleNotFound
	}
	clone := *role
	return &clone, nil
}

func (r *stubRoleRepo) GetByName(_ context.Context, name string) (*domain.Role, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	for _, role := range r.byID {
		if role.Name == name {
			clone := *role
			return &clone, nil
		}
	}
	return nil, domain.ErrRoleNotFound
}

func (r *stubRoleRepo) ExistsByName(_ context.Context, name string, excludeID int64) (bool, error) {
	if r.failWith != nil {
		return false, r.failWith
	}
	for _, role := range r.byID {
		if role.Name == name && role.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubRoleRepo) Update(_ context.Context, role *domain.Role) error {
	if r.failWith != nil {
		return r.failWith
	}
	if _, ok := r.byID[role.ID]; !ok {
		return domain.ErrRoleNotFound
	}
	clone := *role
	r.byID[role.ID] = &clone
	return nil
}

func (r *stubRoleRepo) Delete(_ context.Context, id int64) error {
	if r.failWith != nil {
		return r.failWith
	}
	if _, ok := r.byID[id]; !ok {
		return domain.ErrRoleNotFound
	}
	delete(r.byID, id)
	return nil
}

// ---------------------------------------------------------------------------
// Tags
// ---------------------------------------------------------------------------

type stubTagRepo struct {
	byID     map[int64]*domain.Tag
	nextID   int64
	failWith error
}

func newStubTagRepo() *stubTagRepo {
	return &stubTagRepo{byID: make(map[int64]*domain.Tag), nextID: 1}
}

func (r *stubTagRepo) seed(name string) int64 {
	id := r.nextID
	r.nextID++
	r.byID[id] = &domain.Tag{ID: id, Name: name}
	return id
}

func (r *stubTagRepo) Create(_ context.Context, name string) (int64, error) {
	if r.failWith != nil {
		return 0, r.failWith
	}
	return r.seed(name), nil
}

func (r *stubTagRepo) GetAll(_ context.Context) ([]domain.Tag, error) {
	out := make([]domain.Tag, 0, len(r.byID))
	for _, tag := range r.byID {
		out = append(out, *tag)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubTagRepo) GetByID(_ context.Context, id int64) (*domain.Tag, error) {
	tag, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrTagNotFound
	}
	clone := *tag
	return &clone, nil
}

func (r *stubTagRepo) GetByName(_ context.Context, name string) (*domain.Tag, error) {
	for _, tag := range r.byID {
		if tag.Name == name {
			clone := *tag
			return &clone, nil
		}
	}
	return nil, domain.ErrTagNotFound
}

func (r *stubTagRepo) ExistsByName(_ context.Context, name string, excludeID int64) (bool, error) {
	if r.failWith != nil {
		return false, r.failWith
	}
	for _, tag := range r.byID {
		if tag.Name == name && tag.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubTagRepo) Update(_ context.Context, tag *domain.Tag) error {
	if _, ok := r.byID[tag.ID]; !ok {
		return domain.ErrTagNotFound
	}
	clone := *tag
	r.byID[tag.ID] = &clone
	return nil
}

func (r *stubTagRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrTagNotFound
	}
	delete(r.byID, id)
	return nil
}

// ---------------------------------------------------------------------------
// Users
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	byID     map[int64]*domain.User
	nextID   int64
	failWith error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byID: make(map[int64]*domain.User), nextID: 1}
}

func (r *stubUserRepo) seed(username, email string) int64 {
	id := r.nextID
	r.nextID++
	r.byID[id] = &domain.User{
		ID:           id,
		Username:     username,
		Name:         "Test " + username,
		Email:        email,
		PasswordHash: "hashed:secret123",
		RoleID:       domain.RoleStandardUser,
		CreatedAt:    time.Now().UTC(),
	}
	return id
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (int64, error) {
	if r.failWith != nil {
		return 0, r.failWith
	}
	id := r.nextID
	r.nextID++
	clone := *user
	clone.ID = id
	r.byID[id] = &clone
	return id, nil
}

func (r *stubUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	user, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *user
	return &clone, nil
}

func (r *stubUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	for _, user := range r.byID {
		if user.Username == username {
			clone := *user
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	for _, user := range r.byID {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context, page, size int) ([]domain.User, error) {
	all := make([]domain.User, 0, len(r.byID))
	for _, user := range r.byID {
		all = append(all, *user)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })

	skip := (page - 1) * size
	if skip >= len(all) {
		return []domain.User{}, nil
	}
	end := skip + size
	if end > len(all) {
		end = len(all)
	}
	return all[skip:end], nil
}

func (r *stubUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.byID)), nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) error {
	if r.failWith != nil {
		return r.failWith
	}
	if _, ok := r.byID[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	clone := *user
	r.byID[user.ID] = &clone
	return nil
}

func (r *stubUserRepo) UpdateRole(_ context.Context, userID, roleID int64) error {
	user, ok := r.byID[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	user.RoleID = roleID
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.byID, id)
	return nil
}

// ---------------------------------------------------------------------------
// Events
// ---------------------------------------------------------------------------

type stubEventRepo struct {
	byID     map[int64]*domain.Event
	nextID   int64
	failWith error
}

func newStubEventRepo() *stubEventRepo {
	return &stubEventRepo{byID: make(map[int64]*domain.Event), nextID: 1}
}

func (r *stubEventRepo) seed(event domain.Event) int64 {
	id := r.nextID
	r.nextID++
	event.ID = id
	r.byID[id] = &event
	return id
}

func (r *stubEventRepo) Create(_ context.Context, event *domain.Event) (int64, error) {
	if r.failWith != nil {
		return 0, r.failWith
	}
	clone := *event
	return r.seed(clone), nil
}

func (r *stubEventRepo) sorted() []domain.Event {
	out := make([]domain.Event, 0, len(r.byID))
	for _, e := range r.byID {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *stubEventRepo) List(_ context.Context, page, size int) ([]domain.Event, error) {
	all := r.sorted()
	skip := (page - 1) * size
	if skip >= len(all) {
		return []domain.Event{}, nil
	}
	end := skip + size
	if end > len(all) {
		end = len(all)
	}
	return all[skip:end], nil
}

func (r *stubEventRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.byID)), nil
}

func (r *stubEventRepo) GetByID(_ context.Context, id int64) (*domain.Event, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	event, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	clone := *event
	return &clone, nil
}

func (r *stubEventRepo) ListByActive(_ context.Context, active bool) ([]domain.Event, error) {
	var out []domain.Event
	for _, e := range r.sorted() {
		if e.IsActive == active {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *stubEventRepo) ListByCreator(_ context.Context, userID int64) ([]domain.Event, error) {
	var out []domain.Event
	for _, e := range r.sorted() {
		if e.CreatedBy == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *stubEventRepo) SearchByName(_ context.Context, name string) ([]domain.Event, error) {
	var out []domain.Event
	for _, e := range r.sorted() {
		if strings.Contains(strings.ToLower(e.Name), strings.ToLower(name)) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *stubEventRepo) SearchByDescription(_ context.Context, description string) ([]domain.Event, error) {
	var out []domain.Event
	for _, e := range r.sorted() {
		if strings.Contains(strings.ToLower(e.Description), strings.ToLower(description)) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *stubEventRepo) SearchByCategory(_ context.Context, category string) ([]domain.Event, error) {
	var out []domain.Event
	for _, e := range r.sorted() {
		if strings.Contains(strings.ToLower(e.Category), strings.ToLower(category)) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *stubEventRepo) SearchByVenue(_ context.Context, venue string) ([]domain.Event, error) {
	var out []domain.Event
	for _, e := range r.sorted() {
		if strings.Contains(strings.ToLower(e.Venue), strings.ToLower(venue)) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *stubEventRepo) ListByDate(_ context.Context, date time.Time) ([]domain.Event, error) {
	var out []domain.Event
	for _, e := range r.sorted() {
		y1, m1, d1 := e.Date.Date()
		y2, m2, d2 := date.Date()
		if y1 == y2 && m1 == m2 && d1 == d2 {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *stubEventRepo) ListByPrice(_ context.Context, price float64) ([]domain.Event, error) {
	var out []domain.Event
	for _, e := range r.sorted() {
		if e.Price == price {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *stubEventRepo) Update(_ context.Context, event *domain.Event) error {
	if r.failWith != nil {
		return r.failWith
	}
	if _, ok := r.byID[event.ID]; !ok {
		return domain.ErrEventNotFound
	}
	clone := *event
	r.byID[event.ID] = &clone
	return nil
}

func (r *stubEventRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrEventNotFound
	}
	delete(r.byID, id)
	return nil
}

// ---------------------------------------------------------------------------
// Event tags
// ---------------------------------------------------------------------------

type pair struct{ eventID, tagID int64 }

type stubEventTagRepo struct {
	pairs    map[pair]struct{}
	failWith error
}

func newStubEventTagRepo() *stubEventTagRepo {
	return &stubEventTagRepo{pairs: make(map[pair]struct{})}
}

func (r *stubEventTagRepo) Create(_ context.Context, eventID, tagID int64) error {
	if r.failWith != nil {
		return r.failWith
	}
	key := pair{eventID, tagID}
	if _, ok := r.pairs[key]; ok {
		return domain.ErrEventTagExists
	}
	r.pairs[key] = struct{}{}
	return nil
}

func (r *stubEventTagRepo) all() []domain.EventTag {
	out := make([]domain.EventTag, 0, len(r.pairs))
	for p := range r.pairs {
		out = append(out, domain.EventTag{EventID: p.eventID, TagID: p.tagID})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].EventID != out[j].EventID {
			return out[i].EventID < out[j].EventID
		}
		return out[i].TagID < out[j].TagID
	})
	return out
}

func (r *stubEventTagRepo) GetAll(_ context.Context) ([]domain.EventTag, error) {
	return r.all(), nil
}

func (r *stubEventTagRepo) ListByEventID(_ context.Context, eventID int64) ([]domain.EventTag, error) {
	var out []domain.EventTag
	for _, et := range r.all() {
		if et.EventID == eventID {
			out = append(out, et)
		}
	}
	return out, nil
}

func (r *stubEventTagRepo) ListByTagID(_ context.Context, tagID int64) ([]domain.EventTag, error) {
	var out []domain.EventTag
	for _, et := range r.all() {
		if et.TagID == tagID {
			out = append(out, et)
		}
	}
	return out, nil
}

func (r *stubEventTagRepo) Exists(_ context.Context, eventID, tagID int64) (bool, error) {
	if r.failWith != nil {
		return false, r.failWith
	}
	_, ok := r.pairs[pair{eventID, tagID}]
	return ok, nil
}

func (r *stubEventTagRepo) Delete(_ context.Context, eventID, tagID int64) error {
	key := pair{eventID, tagID}
	if _, ok := r.pairs[key]; !ok {
		return domain.ErrEventTagNotFound
	}
	delete(r.pairs, key)
	return nil
}

// ---------------------------------------------------------------------------
// Bookings
// ---------------------------------------------------------------------------

type stubBookingRepo struct {
	byID     map[int64]*domain.Booking
	nextID   int64
	failWith error
}

func newStubBookingRepo() *stubBookingRepo {
	return &stubBookingRepo{byID: make(map[int64]*domain.Booking), nextID: 1}
}

func (r *stubBookingRepo) Create(_ context.Context, booking *domain.Booking) (int64, error) {
	if r.failWith != nil {
		return 0, r.failWith
	}
	for _, b := range r.byID {
		if b.UserID == booking.UserID && b.EventID == booking.EventID {
			return 0, domain.ErrBookingExists
		}
	}
	id := r.nextID
	r.nextID++
	clone := *booking
	clone.ID = id
	r.byID[id] = &clone
	return id, nil
}

func (r *stubBookingRepo) sorted() []domain.Booking {
	out := make([]domain.Booking, 0, len(r.byID))
	for _, b := range r.byID {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *stubBookingRepo) List(_ context.Context, page, size int) ([]domain.Booking, error) {
	all := r.sorted()
	skip := (page - 1) * size
	if skip >= len(all) {
		return []domain.Booking{}, nil
	}
	end := skip + size
	if end > len(all) {
		end = len(all)
	}
	return all[skip:end], nil
}

func (r *stubBookingRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.byID)), nil
}

func (r *stubBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	booking, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	clone := *booking
	return &clone, nil
}

func (r *stubBookingRepo) ListByUserID(_ context.Context, userID int64) ([]domain.Booking, error) {
	var out []domain.Booking
	for _, b := range r.sorted() {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *stubBookingRepo) ListByEventID(_ context.Context, eventID int64) ([]domain.Booking, error) {
	var out []domain.Booking
	for _, b := range r.sorted() {
		if b.EventID == eventID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *stubBookingRepo) Exists(_ context.Context, userID, eventID int64) (bool, error) {
	if r.failWith != nil {
		return false, r.failWith
	}
	for _, b := range r.byID {
		if b.UserID == userID && b.EventID == eventID {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubBookingRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrBookingNotFound
	}
	delete(r.byID, id)
	return nil
}

// ---------------------------------------------------------------------------
// Credentials
// ---------------------------------------------------------------------------

// fakeCreds hashes by prefixing so tests can assert the stored value
// without real bcrypt work.
type fakeCreds struct {
	hashErr error
}

func (f *fakeCreds) Hash(plain string) (string, error) {
	if f.hashErr != nil {
		return "", f.hashErr
	}
	return "hashed:" + plain, nil
}

func (f *fakeCreds) Verify(plain, hash string) bool {
	return hash == "hashed:"+plain
}

// ---------------------------------------------------------------------------
// Existence wiring
// ---------------------------------------------------------------------------

type fixtures struct {
	roles    *stubRoleRepo
	tags     *stubTagRepo
	users    *stubUserRepo
	events   *stubEventRepo
	exists   Existence
	eventTag *stubEventTagRepo
	bookings *stubBookingRepo
}

func newFixtures() *fixtures {
	f := &fixtures{
		roles:    newStubRoleRepo(),
		tags:     newStubTagRepo(),
		users:    newStubUserRepo(),
		events:   newStubEventRepo(),
		eventTag: newStubEventTagRepo(),
		bookings: newStubBookingRepo(),
	}
	f.exists = NewExistenceChecker(f.users, f.events, f.tags, f.roles, discardLogger)
	f.roles.seed("Admin")
	f.roles.seed("User")
	return f
}
