package vacation

import (
	"errors"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/jengzang/vacances-backend-go/internal/models"
)

var paris = mustLoad("Europe/Paris")

func mustLoad(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.FixedZone("CET", 3600)
	}
	return loc
}

func day(s string) time.Time {
	t, err := time.ParseInLocation("2006-01-02 15:04", s, paris)
	if err != nil {
		t, err = time.ParseInLocation("2006-01-02", s, paris)
		if err != nil {
			panic(err)
		}
	}
	return t
}

func period(desc, start, end string) models.VacationPeriod {
	return models.VacationPeriod{
		Description: desc,
		StartDate:   start,
		EndDate:     end,
		Zones:       "Zone A",
		Location:    "Lyon",
	}
}

var (
	winter = period("Vacances d'Hiver", "2025-02-10", "2025-02-24")
	spring = period("Vacances de Printemps", "2025-04-12", "2025-04-27")
)

func TestMembershipIsInclusive(t *testing.T) {
	tests := []struct {
		date string
		want bool
	}{
		{"2025-02-09 23:59", false},
		{"2025-02-10 00:00", true},
		{"2025-02-17 12:30", true},
		{"2025-02-24 23:59", true},
		{"2025-02-25 00:00", false},
	}
	for _, tt := range tests {
		if got := Contains(winter, day(tt.date), paris); got != tt.want {
			t.Errorf("Contains(%s) = %v, want %v", tt.date, got, tt.want)
		}
	}
}

func TestStatusBoundaryDays(t *testing.T) {
	r := NewResolver(WithLocation(paris))
	periods := []models.VacationPeriod{winter, spring}

	for _, d := range []string{"2025-02-10 08:00", "2025-02-24 22:00"} {
		st, err := r.Status(day(d), periods)
		if err != nil {
			t.Fatalf("Status(%s): %v", d, err)
		}
		if st.Status != models.StatusInVacation {
			t.Fatalf("Status(%s) = %s, want in_vacation", d, st.Status)
		}
	}
	for _, d := range []string{"2025-02-09 08:00", "2025-02-25 08:00"} {
		st, err := r.Status(day(d), periods)
		if err != nil {
			t.Fatalf("Status(%s): %v", d, err)
		}
		if st.Status != models.StatusInSchool {
			t.Fatalf("Status(%s) = %s, want in_school", d, st.Status)
		}
	}
}

func TestStatusDuringVacation(t *testing.T) {
	st, err := NewResolver(WithLocation(paris)).Status(day("2025-02-15 10:00"), []models.VacationPeriod{spring, winter})
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if st.Status != models.StatusInVacation {
		t.Fatalf("status = %s, want in_vacation", st.Status)
	}
	if st.CurrentVacation == nil || st.CurrentVacation.Description != winter.Description {
		t.Fatalf("current = %+v, want winter", st.CurrentVacation)
	}
	if st.NextVacation.Description != spring.Description {
		t.Fatalf("next = %s, want spring", st.NextVacation.Description)
	}
	if st.EventType != models.EventSchoolStart {
		t.Fatalf("event = %s, want school_start", st.EventType)
	}
	if !st.NextEvent.Equal(day("2025-04-12")) {
		t.Fatalf("next event = %v, want 2025-04-12 midnight", st.NextEvent)
	}
	if st.ResumeDate == nil || !st.ResumeDate.Equal(day("2025-02-25")) {
		t.Fatalf("resume = %v, want 2025-02-25", st.ResumeDate)
	}
}

func TestStatusDuringSchool(t *testing.T) {
	st, err := NewResolver(WithLocation(paris)).Status(day("2025-03-01 18:45"), []models.VacationPeriod{winter, spring})
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if st.Status != models.StatusInSchool {
		t.Fatalf("status = %s, want in_school", st.Status)
	}
	if st.CurrentVacation != nil || st.ResumeDate != nil {
		t.Fatalf("unexpected current vacation %+v", st.CurrentVacation)
	}
	if st.NextVacation.Description != spring.Description || st.EventType != models.EventVacationStart {
		t.Fatalf("next = %s/%s", st.NextVacation.Description, st.EventType)
	}
	if !st.NextEvent.Equal(day("2025-04-12")) {
		t.Fatalf("next event = %v, want 2025-04-12", st.NextEvent)
	}
}

func TestStatusStartDayIsNotNext(t *testing.T) {
	// a period starting today is current, not next
	st, err := NewResolver(WithLocation(paris)).Status(day("2025-04-12 07:00"), []models.VacationPeriod{winter, spring})
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if st.Status != models.StatusInVacation || st.CurrentVacation.Description != spring.Description {
		t.Fatalf("status = %+v", st)
	}
}

func TestStatusExhausted(t *testing.T) {
	r := NewResolver(WithLocation(paris))
	tests := []struct {
		name    string
		now     string
		periods []models.VacationPeriod
	}{
		{"empty", "2025-03-01", nil},
		{"after every period", "2025-05-01", []models.VacationPeriod{winter, spring}},
		{"inside last period", "2025-04-20", []models.VacationPeriod{winter, spring}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, err := r.Status(day(tt.now), tt.periods)
			if !errors.Is(err, ErrNoVacationData) {
				t.Fatalf("err = %v, want ErrNoVacationData", err)
			}
			if st != nil {
				t.Fatalf("status = %+v, want nil", st)
			}
		})
	}
}

func TestStatusNextAfterVacationSkipsAbuttingStart(t *testing.T) {
	// "bridge" starts on the current vacation's last day and is not a candidate
	bridge := period("Pont", "2025-02-24", "2025-02-25")
	after := period("Lendemain", "2025-02-25", "2025-02-26")
	st, err := NewResolver(WithLocation(paris)).Status(day("2025-02-20"), []models.VacationPeriod{winter, bridge, spring, after})
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if st.NextVacation.Description != "Lendemain" {
		t.Fatalf("next = %s, want Lendemain", st.NextVacation.Description)
	}
}

func TestStatusOverlapFirstInListWins(t *testing.T) {
	a := period("A", "2025-02-08", "2025-02-20")
	b := period("B", "2025-02-10", "2025-02-24")
	st, err := NewResolver(WithLocation(paris)).Status(day("2025-02-15"), []models.VacationPeriod{b, a, spring})
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if st.CurrentVacation.Description != "B" {
		t.Fatalf("current = %s, want B", st.CurrentVacation.Description)
	}
}

func TestStatusSameStartKeepsInputOrder(t *testing.T) {
	first := period("first", "2025-04-12", "2025-04-20")
	second := period("second", "2025-04-12", "2025-04-27")
	st, err := NewResolver(WithLocation(paris)).Status(day("2025-03-01"), []models.VacationPeriod{first, second})
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if st.NextVacation.Description != "first" {
		t.Fatalf("next = %s, want first", st.NextVacation.Description)
	}
}

func TestStatusMalformedPolicy(t *testing.T) {
	broken := period("broken", "2025-03-10", "2025-03-01")
	unreadable := period("unreadable", "10/03/2025", "2025-03-12")
	periods := []models.VacationPeriod{broken, winter, unreadable, spring}

	st, err := NewResolver(WithLocation(paris)).Status(day("2025-03-05"), periods)
	if err != nil {
		t.Fatalf("skip policy: %v", err)
	}
	if st.Skipped != 2 {
		t.Fatalf("skipped = %d, want 2", st.Skipped)
	}
	if st.Status != models.StatusInSchool || st.NextVacation.Description != spring.Description {
		t.Fatalf("status = %+v", st)
	}

	_, err = NewResolver(WithLocation(paris), WithMalformedPolicy(RejectMalformed)).Status(day("2025-03-05"), periods)
	if !errors.Is(err, ErrMalformedPeriod) {
		t.Fatalf("reject policy err = %v, want ErrMalformedPeriod", err)
	}

	_, err = NewResolver(WithLocation(paris)).Status(day("2025-03-05"), []models.VacationPeriod{broken})
	if !errors.Is(err, ErrNoVacationData) {
		t.Fatalf("only malformed err = %v, want ErrNoVacationData", err)
	}
}

func TestStatusRFC3339Dates(t *testing.T) {
	// the open-data API encodes Paris midnight as 23:00 UTC the day before
	p := models.VacationPeriod{
		Description: "Vacances d'Hiver",
		StartDate:   "2025-02-09T23:00:00+00:00",
		EndDate:     "2025-02-23T23:00:00+00:00",
	}
	st, err := NewResolver(WithLocation(paris)).Status(day("2025-01-20"), []models.VacationPeriod{p})
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if !st.NextEvent.Equal(day("2025-02-10")) {
		t.Fatalf("next event = %v, want 2025-02-10", st.NextEvent)
	}
}

func TestStatusIsStateless(t *testing.T) {
	r := NewResolver(WithLocation(paris))
	periods := []models.VacationPeriod{winter}
	if _, err := r.Status(day("2025-01-01"), periods); err != nil {
		t.Fatalf("first call: %v", err)
	}
	periods = append(periods, spring)
	st, err := r.Status(day("2025-03-01"), periods)
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if st.NextVacation.Description != spring.Description {
		t.Fatalf("next = %s", st.NextVacation.Description)
	}
}

func TestResolveStatusUsesLocationOfNow(t *testing.T) {
	st, err := ResolveStatus(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC), []models.VacationPeriod{winter, spring})
	if err != nil {
		t.Fatalf("ResolveStatus: %v", err)
	}
	want := time.Date(2025, 4, 12, 0, 0, 0, 0, time.UTC)
	if !st.NextEvent.Equal(want) {
		t.Fatalf("next event = %v, want %v", st.NextEvent, want)
	}
}

func TestParseMalformedPolicy(t *testing.T) {
	for in, want := range map[string]MalformedPolicy{"": SkipMalformed, "skip": SkipMalformed, "REJECT": RejectMalformed} {
		got, err := ParseMalformedPolicy(in)
		if err != nil || got != want {
			t.Errorf("ParseMalformedPolicy(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseMalformedPolicy("ignore"); err == nil {
		t.Error("ParseMalformedPolicy(ignore) succeeded")
	}
}
