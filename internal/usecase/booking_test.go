package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/moshdev2213/letsbook/internal/domain"
)

func fixedNow(uc *BookingUsecase, y int, m time.Month, d int) {
	uc.now = func() time.Time { return time.Date(y, m, d, 12, 0, 0, 0, time.UTC) }
}

func testTrain() *domain.Train {
	return &domain.Train{ID: "t1", Name: "Udarata Menike", Type: "Express"}
}

func TestResolveSchedule(t *testing.T) {
	one := &domain.ScheduleSlot{ID: "s1", Label: "08.00 am - 10.00 am"}

	tests := []struct {
		name  string
		slots []*domain.ScheduleSlot
	}{
		{"none", nil},
		{"single", []*domain.ScheduleSlot{one}},
		{"many", []*domain.ScheduleSlot{one, {ID: "s2", Label: one.Label}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := &fakeGateway{slots: tt.slots}
			uc := NewBookingUsecase(gw)

			slot, err := uc.ResolveSchedule(context.Background(), testSession(), "08.00 am - 10.00 am")
			switch tt.name {
			case "none":
				if !errors.Is(err, domain.ErrScheduleNotFound) {
					t.Fatalf("want ErrScheduleNotFound, got %v", err)
				}
			case "single":
				if err != nil || slot.ID != "s1" {
					t.Fatalf("got %+v, %v", slot, err)
				}
			case "many":
				var ambiguous *domain.AmbiguousScheduleError
				if !errors.As(err, &ambiguous) {
					t.Fatalf("want AmbiguousScheduleError, got %v", err)
				}
				if ambiguous.Count != 2 {
					t.Fatalf("count = %d", ambiguous.Count)
				}
			}
		})
	}
}

func TestBuildDraft(t *testing.T) {
	gw := &fakeGateway{slots: []*domain.ScheduleSlot{{ID: "s1", Label: "08.00 am"}}}
	uc := NewBookingUsecase(gw)
	fixedNow(uc, 2024, time.May, 1)

	draft, err := uc.BuildDraft(context.Background(), testSession(), testTrain(), "08.00 am", 2,
		time.Date(2024, time.May, 15, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatal(err)
	}
	want := domain.Draft{
		TrainID:    "t1",
		ScheduleID: "s1",
		Email:      "mosh@dev.lk",
		Reserved:   "2024.5.15",
		Seats:      2,
		Cancelled:  domain.NotCancelled,
	}
	if *draft != want {
		t.Fatalf("draft = %+v, want %+v", *draft, want)
	}
}

func TestBuildDraftDateOutOfRange(t *testing.T) {
	gw := &fakeGateway{slots: []*domain.ScheduleSlot{{ID: "s1"}}}
	uc := NewBookingUsecase(gw)
	fixedNow(uc, 2024, time.May, 1)

	for _, travel := range []time.Time{
		time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC),  // same day
		time.Date(2024, time.May, 31, 0, 0, 0, 0, time.UTC), // 30 days out
	} {
		_, err := uc.BuildDraft(context.Background(), testSession(), testTrain(), "08.00 am", 1, travel)
		if !errors.Is(err, domain.ErrDateOutOfRange) {
			t.Errorf("travel %s: want ErrDateOutOfRange, got %v", travel, err)
		}
	}
}

func TestBuildDraftResolvesBeforeWindowCheck(t *testing.T) {
	gw := &fakeGateway{slots: nil}
	uc := NewBookingUsecase(gw)
	fixedNow(uc, 2024, time.May, 1)

	// the date is also out of range, but the schedule miss comes first
	_, err := uc.BuildDraft(context.Background(), testSession(), testTrain(), "bogus", 1,
		time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC))
	if !errors.Is(err, domain.ErrScheduleNotFound) {
		t.Fatalf("want ErrScheduleNotFound, got %v", err)
	}
}

func TestBuildDraftSeatsRequired(t *testing.T) {
	uc := NewBookingUsecase(&fakeGateway{})
	_, err := uc.BuildDraft(context.Background(), testSession(), testTrain(), "08.00 am", 0, time.Now())
	if !errors.Is(err, domain.ErrSeatsRequired) {
		t.Fatalf("want ErrSeatsRequired, got %v", err)
	}
}

func TestSubmit(t *testing.T) {
	created := &domain.Reservation{ID: "r1", Seats: 2, Reserved: "2024.5.15"}
	gw := &fakeGateway{reservation: created}
	uc := NewBookingUsecase(gw)

	draft := &domain.Draft{TrainID: "t1", ScheduleID: "s1", Email: "mosh@dev.lk", Reserved: "2024.5.15", Seats: 2}
	got, err := uc.Submit(context.Background(), testSession(), draft)
	if err != nil {
		t.Fatal(err)
	}
	if got.ID != "r1" {
		t.Fatalf("got %+v", got)
	}
	if gw.lastDraft != *draft {
		t.Fatalf("sent draft %+v", gw.lastDraft)
	}
}

func TestEditReplacesOnlySeats(t *testing.T) {
	r := &domain.Reservation{
		ID: "r1", TrainID: "t1", ScheduleID: "s1", Email: "mosh@dev.lk",
		Reserved: "2024.5.15", Seats: 2, Cancelled: domain.NotCancelled,
	}
	gw := &fakeGateway{}
	uc := NewBookingUsecase(gw)
	fixedNow(uc, 2024, time.May, 1)

	updated, err := uc.Edit(context.Background(), testSession(), r, 4)
	if err != nil {
		t.Fatal(err)
	}
	if gw.lastID != "r1" {
		t.Fatalf("updated id = %q", gw.lastID)
	}
	want := domain.Draft{
		TrainID: "t1", ScheduleID: "s1", Email: "mosh@dev.lk",
		Reserved: "2024.5.15", Seats: 4, Cancelled: domain.NotCancelled,
	}
	if gw.lastPayload != want {
		t.Fatalf("payload = %+v, want %+v", gw.lastPayload, want)
	}
	if updated.Seats != 4 {
		t.Fatalf("updated seats = %d", updated.Seats)
	}
}

func TestEditWindowClosed(t *testing.T) {
	r := &domain.Reservation{ID: "r1", Reserved: "2024.7.1", Seats: 2}
	uc := NewBookingUsecase(&fakeGateway{})
	fixedNow(uc, 2024, time.May, 1)

	_, err := uc.Edit(context.Background(), testSession(), r, 4)
	if !errors.Is(err, domain.ErrEditWindowClosed) {
		t.Fatalf("want ErrEditWindowClosed, got %v", err)
	}
}

func TestEditAtWindowBoundary(t *testing.T) {
	// exactly 30 days out is still editable
	r := &domain.Reservation{ID: "r1", TrainID: "t1", ScheduleID: "s1", Reserved: "2024.5.31", Seats: 2}
	uc := NewBookingUsecase(&fakeGateway{})
	fixedNow(uc, 2024, time.May, 1)

	if _, err := uc.Edit(context.Background(), testSession(), r, 3); err != nil {
		t.Fatal(err)
	}
}

func TestCancelSetsFlagOnly(t *testing.T) {
	r := &domain.Reservation{
		ID: "r1", TrainID: "t1", ScheduleID: "s1", Email: "mosh@dev.lk",
		Reserved: "2024.5.15", Seats: 2, Cancelled: domain.NotCancelled,
	}
	gw := &fakeGateway{}
	uc := NewBookingUsecase(gw)

	got, err := uc.Cancel(context.Background(), testSession(), r)
	if err != nil {
		t.Fatal(err)
	}
	if gw.lastPayload.Cancelled != domain.Cancelled {
		t.Fatal("cancel flag not set")
	}
	if gw.lastPayload.Seats != 2 || gw.lastPayload.Reserved != "2024.5.15" {
		t.Fatalf("other fields changed: %+v", gw.lastPayload)
	}
	if !got.IsCancelled() {
		t.Fatal("result not cancelled")
	}
}

func TestBookingRequiresSession(t *testing.T) {
	uc := NewBookingUsecase(&fakeGateway{})
	ctx := context.Background()

	if _, err := uc.Trains(ctx, nil); !errors.Is(err, domain.ErrSessionRequired) {
		t.Fatalf("Trains: %v", err)
	}
	if _, err := uc.Reservations(ctx, nil); !errors.Is(err, domain.ErrSessionRequired) {
		t.Fatalf("Reservations: %v", err)
	}
	if _, err := uc.Submit(ctx, nil, &domain.Draft{}); !errors.Is(err, domain.ErrSessionRequired) {
		t.Fatalf("Submit: %v", err)
	}
}
