package doctor

import (
	"context"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

// -- Mock Repositories --

type mockRepo struct {
	doctors map[uuid.UUID]*Doctor
	rules   map[uuid.UUID][]*WeeklyAvailability
}

func newMockRepo() *mockRepo {
	return &mockRepo{
		doctors: make(map[uuid.UUID]*Doctor),
		rules:   make(map[uuid.UUID][]*WeeklyAvailability),
	}
}

func (m *mockRepo) Create(_ context.Context, d *Doctor) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	m.doctors[d.ID] = d
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id uuid.UUID) (*Doctor, error) {
	d, ok := m.doctors[id]
	if !ok {
		return nil, ErrNotFound
	}
	return d, nil
}

func (m *mockRepo) List(_ context.Context, f Filter, limit, offset int) ([]*Doctor, int, error) {
	var result []*Doctor
	for _, d := range m.doctors {
		if f.Specialty != "" && !strings.EqualFold(d.Specialty, f.Specialty) {
			continue
		}
		if f.Telemedicine != nil && d.TelemedicineAvailable != *f.Telemedicine {
			continue
		}
		result = append(result, d)
	}
	return result, len(result), nil
}

func (m *mockRepo) CreateAvailability(_ context.Context, a *WeeklyAvailability) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	m.rules[a.DoctorID] = append(m.rules[a.DoctorID], a)
	return nil
}

func (m *mockRepo) AvailabilityByDoctor(_ context.Context, doctorID uuid.UUID) ([]*WeeklyAvailability, error) {
	return m.rules[doctorID], nil
}

type mockBookedSlots struct {
	slots map[string][]string // doctorID|date -> slots
}

func newMockBookedSlots() *mockBookedSlots {
	return &mockBookedSlots{slots: make(map[string][]string)}
}

func (m *mockBookedSlots) book(doctorID uuid.UUID, date time.Time, slot string) {
	key := doctorID.String() + "|" + date.Format("2006-01-02")
	m.slots[key] = append(m.slots[key], slot)
}

func (m *mockBookedSlots) BookedSlots(_ context.Context, doctorID uuid.UUID, date time.Time) ([]string, error) {
	return m.slots[doctorID.String()+"|"+date.Format("2006-01-02")], nil
}

func newTestService() (*Service, *mockRepo, *mockBookedSlots) {
	repo := newMockRepo()
	booked := newMockBookedSlots()
	return NewService(repo, booked), repo, booked
}

func seedDoctor(t *testing.T, repo *mockRepo) *Doctor {
	t.Helper()
	d := &Doctor{Name: "Dr. Asha Rao", Specialty: "Cardiology", Location: "Mumbai"}
	if err := repo.Create(context.Background(), d); err != nil {
		t.Fatalf("seed doctor: %v", err)
	}
	return d
}

// monday is a fixed Monday used across availability tests.
var monday = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

func TestAvailableSlots_GeneratesThirtyMinuteGrid(t *testing.T) {
	svc, repo, _ := newTestService()
	d := seedDoctor(t, repo)
	repo.CreateAvailability(context.Background(), &WeeklyAvailability{
		DoctorID: d.ID, DayOfWeek: 1, StartTime: "09:00", EndTime: "11:00", IsAvailable: true,
	})

	slots, err := svc.AvailableSlots(context.Background(), d.ID, monday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"09:00", "09:30", "10:00", "10:30"}
	if !reflect.DeepEqual(slots, want) {
		t.Errorf("expected %v, got %v", want, slots)
	}
}

func TestAvailableSlots_EndTimeExclusive(t *testing.T) {
	svc, repo, _ := newTestService()
	d := seedDoctor(t, repo)
	repo.CreateAvailability(context.Background(), &WeeklyAvailability{
		DoctorID: d.ID, DayOfWeek: 1, StartTime: "17:00", EndTime: "17:30", IsAvailable: true,
	})

	slots, err := svc.AvailableSlots(context.Background(), d.ID, monday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 1 || slots[0] != "17:00" {
		t.Errorf("expected [17:00], got %v", slots)
	}
}

func TestAvailableSlots_ExcludesBooked(t *testing.T) {
	svc, repo, booked := newTestService()
	d := seedDoctor(t, repo)
	repo.CreateAvailability(context.Background(), &WeeklyAvailability{
		DoctorID: d.ID, DayOfWeek: 1, StartTime: "09:00", EndTime: "17:00", IsAvailable: true,
	})
	booked.book(d.ID, monday, "10:00")

	slots, err := svc.AvailableSlots(context.Background(), d.ID, monday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, s := range slots {
		if s == "10:00" {
			t.Error("expected booked slot 10:00 to be excluded")
		}
	}
	// 09:00..16:30 is 16 slots, minus the booked one
	if len(slots) != 15 {
		t.Errorf("expected 15 slots, got %d", len(slots))
	}
}

func TestAvailableSlots_NoRulesForWeekday(t *testing.T) {
	svc, repo, _ := newTestService()
	d := seedDoctor(t, repo)
	// Rule is for Tuesday, requested date is a Monday.
	repo.CreateAvailability(context.Background(), &WeeklyAvailability{
		DoctorID: d.ID, DayOfWeek: 2, StartTime: "09:00", EndTime: "17:00", IsAvailable: true,
	})

	slots, err := svc.AvailableSlots(context.Background(), d.ID, monday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if slots == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(slots) != 0 {
		t.Errorf("expected no slots, got %v", slots)
	}
}

func TestAvailableSlots_SkipsDisabledRules(t *testing.T) {
	svc, repo, _ := newTestService()
	d := seedDoctor(t, repo)
	repo.CreateAvailability(context.Background(), &WeeklyAvailability{
		DoctorID: d.ID, DayOfWeek: 1, StartTime: "09:00", EndTime: "17:00", IsAvailable: false,
	})

	slots, err := svc.AvailableSlots(context.Background(), d.ID, monday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 0 {
		t.Errorf("expected no slots from disabled rule, got %v", slots)
	}
}

func TestAvailableSlots_OverlappingRulesDeduped(t *testing.T) {
	svc, repo, _ := newTestService()
	d := seedDoctor(t, repo)
	repo.CreateAvailability(context.Background(), &WeeklyAvailability{
		DoctorID: d.ID, DayOfWeek: 1, StartTime: "09:00", EndTime: "12:00", IsAvailable: true,
	})
	repo.CreateAvailability(context.Background(), &WeeklyAvailability{
		DoctorID: d.ID, DayOfWeek: 1, StartTime: "11:00", EndTime: "14:00", IsAvailable: true,
	})

	slots, err := svc.AvailableSlots(context.Background(), d.ID, monday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"09:00", "09:30", "10:00", "10:30", "11:00", "11:30", "12:00", "12:30", "13:00", "13:30"}
	if !reflect.DeepEqual(slots, want) {
		t.Errorf("expected %v, got %v", want, slots)
	}
}

func TestAvailableSlots_DoctorNotFound(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.AvailableSlots(context.Background(), uuid.New(), monday)
	if err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestAvailableSlots_SundayIsWeekdayZero(t *testing.T) {
	svc, repo, _ := newTestService()
	d := seedDoctor(t, repo)
	repo.CreateAvailability(context.Background(), &WeeklyAvailability{
		DoctorID: d.ID, DayOfWeek: 0, StartTime: "10:00", EndTime: "11:00", IsAvailable: true,
	})

	sunday := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	slots, err := svc.AvailableSlots(context.Background(), d.ID, sunday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"10:00", "10:30"}
	if !reflect.DeepEqual(slots, want) {
		t.Errorf("expected %v, got %v", want, slots)
	}
}

func TestGetProfile_IncludesAvailability(t *testing.T) {
	svc, repo, _ := newTestService()
	d := seedDoctor(t, repo)
	repo.CreateAvailability(context.Background(), &WeeklyAvailability{
		DoctorID: d.ID, DayOfWeek: 1, StartTime: "09:00", EndTime: "17:00", IsAvailable: true,
	})

	profile, err := svc.GetProfile(context.Background(), d.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile.Name != d.Name {
		t.Errorf("expected name %q, got %q", d.Name, profile.Name)
	}
	if len(profile.Availability) != 1 {
		t.Errorf("expected 1 availability rule, got %d", len(profile.Availability))
	}
}

func TestGetProfile_NotFound(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.GetProfile(context.Background(), uuid.New())
	if err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:30", 570, false},
		{"23:59", 1439, false},
		{"9:30", 0, true},
		{"25:00", 0, true},
		{"oops", 0, true},
	}
	for _, tt := range tests {
		got, err := parseClock(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseClock(%q): expected error", tt.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseClock(%q): unexpected error %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseClock(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestFormatClock_ZeroPadded(t *testing.T) {
	if got := formatClock(570); got != "09:30" {
		t.Errorf("formatClock(570) = %q, want 09:30", got)
	}
	if got := formatClock(0); got != "00:00" {
		t.Errorf("formatClock(0) = %q, want 00:00", got)
	}
}
