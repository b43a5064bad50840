package booking_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/JohnRey-Adao/AppDev2-CleaningService/models"
	"github.com/JohnRey-Adao/AppDev2-CleaningService/services/booking"
	"github.com/JohnRey-Adao/AppDev2-CleaningService/services/cleaner"
	"github.com/JohnRey-Adao/AppDev2-CleaningService/utils"
)

// --- in-memory fakes ---

type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings map[string]models.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]models.Booking)}
}

func (r *fakeBookingRepo) Create(_ context.Context, b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bookings[b.ID] = *b
	return nil
}

func (r *fakeBookingRepo) GetByID(_ context.Context, id string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, utils.NotFoundError{Resource: "booking", ID: id}
	}
	return &b, nil
}

func (r *fakeBookingRepo) GetAll(_ context.Context) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		out = append(out, b)
	}
	return out, nil
}

func (r *fakeBookingRepo) GetByCustomer(_ context.Context, customerID string) ([]models.Booking, error) {
	return r.filter(func(b models.Booking) bool { return b.CustomerID == customerID })
}

func (r *fakeBookingRepo) GetByCleaner(_ context.Context, cleanerID string) ([]models.Booking, error) {
	return r.filter(func(b models.Booking) bool { return b.CleanerID == cleanerID })
}

func (r *fakeBookingRepo) GetByStatus(_ context.Context, status models.BookingStatus) ([]models.Booking, error) {
	return r.filter(func(b models.Booking) bool { return b.Status == status })
}

func (r *fakeBookingRepo) GetByDateRange(_ context.Context, start, end time.Time) ([]models.Booking, error) {
	return r.filter(func(b models.Booking) bool {
		return !b.BookingDate.Before(start) && !b.BookingDate.After(end)
	})
}

func (r *fakeBookingRepo) GetForCleanerOnDay(_ context.Context, cleanerID string, start, end time.Time) ([]models.Booking, error) {
	return r.filter(func(b models.Booking) bool {
		return b.CleanerID == cleanerID &&
			!b.BookingDate.Before(start) && !b.BookingDate.After(end) &&
			b.Status != models.BookingCancelled
	})
}

func (r *fakeBookingRepo) Update(_ context.Context, b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.bookings[b.ID]; !ok {
		return utils.NotFoundError{Resource: "booking", ID: b.ID}
	}
	r.bookings[b.ID] = *b
	return nil
}

func (r *fakeBookingRepo) UpdateStatus(_ context.Context, id string, status models.BookingStatus) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, utils.NotFoundError{Resource: "booking", ID: id}
	}
	b.Status = status
	b.UpdatedAt = time.Now()
	r.bookings[id] = b
	return &b, nil
}

func (r *fakeBookingRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.bookings[id]; !ok {
		return utils.NotFoundError{Resource: "booking", ID: id}
	}
	delete(r.bookings, id)
	return nil
}

func (r *fakeBookingRepo) DeleteByCleaner(_ context.Context, cleanerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, b := range r.bookings {
		if b.CleanerID == cleanerID {
			delete(r.bookings, id)
		}
	}
	return nil
}

func (r *fakeBookingRepo) filter(keep func(models.Booking) bool) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if keep(b) {
			out = append(out, b)
		}
	}
	return out, nil
}

type fakeCleanerRepo struct {
	mu                sync.Mutex
	cleaners          map[string]models.Cleaner
	statusUpdateCalls int
}

func newFakeCleanerRepo() *fakeCleanerRepo {
	return &fakeCleanerRepo{cleaners: make(map[string]models.Cleaner)}
}

func (r *fakeCleanerRepo) Create(_ context.Context, c *models.Cleaner) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cleaners[c.ID] = *c
	return nil
}

func (r *fakeCleanerRepo) GetByID(_ context.Context, id string) (*models.Cleaner, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.cleaners[id]
	if !ok {
		return nil, utils.NotFoundError{Resource: "cleaner", ID: id}
	}
	return &c, nil
}

func (r *fakeCleanerRepo) GetAll(_ context.Context) ([]models.Cleaner, error) {
	return r.filter(func(models.Cleaner) bool { return true })
}

func (r *fakeCleanerRepo) GetByStatus(_ context.Context, status models.CleanerStatus) ([]models.Cleaner, error) {
	return r.filter(func(c models.Cleaner) bool { return c.Status == status })
}

func (r *fakeCleanerRepo) GetByCity(_ context.Context, city string) ([]models.Cleaner, error) {
	return r.filter(func(c models.Cleaner) bool { return c.City == city })
}

func (r *fakeCleanerRepo) GetByRegion(_ context.Context, region string) ([]models.Cleaner, error) {
	return r.filter(func(c models.Cleaner) bool { return c.Region == region })
}

func (r *fakeCleanerRepo) GetAvailableByCity(_ context.Context, city string) ([]models.Cleaner, error) {
	return r.filter(func(c models.Cleaner) bool {
		return c.City == city && c.Status == models.CleanerAvailable
	})
}

func (r *fakeCleanerRepo) GetByMaxRate(_ context.Context, maxRate decimal.Decimal) ([]models.Cleaner, error) {
	return r.filter(func(c models.Cleaner) bool {
		return c.Status == models.CleanerAvailable && c.HourlyRate.LessThanOrEqual(maxRate)
	})
}

func (r *fakeCleanerRepo) Update(_ context.Context, c *models.Cleaner) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.cleaners[c.ID]; !ok {
		return utils.NotFoundError{Resource: "cleaner", ID: c.ID}
	}
	r.cleaners[c.ID] = *c
	return nil
}

func (r *fakeCleanerRepo) UpdateStatus(_ context.Context, id string, status models.CleanerStatus) (*models.Cleaner, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.cleaners[id]
	if !ok {
		return nil, utils.NotFoundError{Resource: "cleaner", ID: id}
	}
	c.Status = status
	r.cleaners[id] = c
	r.statusUpdateCalls++
	return &c, nil
}

func (r *fakeCleanerRepo) UpdateRate(_ context.Context, id string, rate decimal.Decimal) (*models.Cleaner, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.cleaners[id]
	if !ok {
		return nil, utils.NotFoundError{Resource: "cleaner", ID: id}
	}
	c.HourlyRate = rate
	r.cleaners[id] = c
	return &c, nil
}

func (r *fakeCleanerRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.cleaners, id)
	return nil
}

func (r *fakeCleanerRepo) filter(keep func(models.Cleaner) bool) ([]models.Cleaner, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Cleaner
	for _, c := range r.cleaners {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCleanerRepo) status(id string) models.CleanerStatus {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cleaners[id].Status
}

type fakeCustomerRepo struct {
	mu        sync.Mutex
	customers map[string]models.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: make(map[string]models.Customer)}
}

func (r *fakeCustomerRepo) Create(_ context.Context, c *models.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.customers[c.ID] = *c
	return nil
}

func (r *fakeCustomerRepo) GetByID(_ context.Context, id string) (*models.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.customers[id]
	if !ok {
		return nil, utils.NotFoundError{Resource: "customer", ID: id}
	}
	return &c, nil
}

func (r *fakeCustomerRepo) GetAll(_ context.Context) ([]models.Customer, error) { return nil, nil }
func (r *fakeCustomerRepo) GetByCity(_ context.Context, _ string) ([]models.Customer, error) {
	return nil, nil
}
func (r *fakeCustomerRepo) GetByRegion(_ context.Context, _ string) ([]models.Customer, error) {
	return nil, nil
}
func (r *fakeCustomerRepo) Update(_ context.Context, _ *models.Customer) error { return nil }
func (r *fakeCustomerRepo) Delete(_ context.Context, _ string) error           { return nil }

type fakeIdentityRepo struct {
	mu     sync.Mutex
	active map[string]bool
}

func newFakeIdentityRepo() *fakeIdentityRepo {
	return &fakeIdentityRepo{active: make(map[string]bool)}
}

func (r *fakeIdentityRepo) Create(_ context.Context, identity *models.Identity) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.active[identity.ID] = identity.Active
	return nil
}

func (r *fakeIdentityRepo) GetByID(_ context.Context, id string) (*models.Identity, error) {
	return &models.Identity{ID: id}, nil
}

func (r *fakeIdentityRepo) GetByEmail(_ context.Context, email string) (*models.Identity, error) {
	return nil, utils.NotFoundError{Resource: "identity", ID: email}
}

func (r *fakeIdentityRepo) SetActive(_ context.Context, id string, active bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.active[id] = active
	return nil
}

func (r *fakeIdentityRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.active, id)
	return nil
}

// --- fixture ---

type fixture struct {
	engine     *booking.DefaultBookingService
	bookings   *fakeBookingRepo
	cleaners   *fakeCleanerRepo
	customers  *fakeCustomerRepo
	identities *fakeIdentityRepo
}

const (
	cleanerX   = "cleaner-x"
	customerID = "customer-1"
	customer2  = "customer-2"
)

func newFixture() *fixture {
	bookings := newFakeBookingRepo()
	cleaners := newFakeCleanerRepo()
	customers := newFakeCustomerRepo()
	identities := newFakeIdentityRepo()

	ctx := context.Background()
	cleaners.Create(ctx, &models.Cleaner{
		ID:         cleanerX,
		HourlyRate: decimal.RequireFromString("20.00"),
		Status:     models.CleanerAvailable,
	})
	customers.Create(ctx, &models.Customer{ID: customerID})
	customers.Create(ctx, &models.Customer{ID: customer2})

	coordinator := &cleaner.DefaultCleanerService{
		Repo:       cleaners,
		Identities: identities,
		Bookings:   bookings,
	}

	engine := &booking.DefaultBookingService{
		Bookings:  bookings,
		Cleaners:  cleaners,
		Customers: customers,
		Locks:     booking.NewMemoryDayLocker(),
		Txn:       booking.NoopTxnRunner{},
		Policy:    booking.AllowAny,
		Listeners: []booking.EventListener{coordinator},
	}

	return &fixture{
		engine:     engine,
		bookings:   bookings,
		cleaners:   cleaners,
		customers:  customers,
		identities: identities,
	}
}

func mustCreate(t *testing.T, f *fixture, customer, date string, hours int) *models.Booking {
	t.Helper()
	b, err := f.engine.CreateBooking(context.Background(), models.BookingInput{
		CustomerID:    customer,
		CleanerID:     cleanerX,
		BookingDate:   date,
		DurationHours: hours,
	})
	if err != nil {
		t.Fatalf("CreateBooking failed: %v", err)
	}
	return b
}

// --- tests ---

func TestCreateBookingPricesAndStartsPending(t *testing.T) {
	f := newFixture()
	b := mustCreate(t, f, customerID, "2024-06-01T09:00", 3)

	if b.Status != models.BookingPending {
		t.Errorf("status = %s, want PENDING", b.Status)
	}
	if want := decimal.RequireFromString("60.00"); !b.TotalAmount.Equal(want) {
		t.Errorf("totalAmount = %s, want %s", b.TotalAmount, want)
	}
	if b.DurationHours != 3 {
		t.Errorf("durationHours = %d, want 3", b.DurationHours)
	}
}

func TestCreateBookingRejectsOccupiedDay(t *testing.T) {
	f := newFixture()
	mustCreate(t, f, customerID, "2024-06-01T09:00", 3)

	_, err := f.engine.CreateBooking(context.Background(), models.BookingInput{
		CustomerID:    customer2,
		CleanerID:     cleanerX,
		BookingDate:   "2024-06-01T14:00",
		DurationHours: 2,
	})
	var conflict utils.ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("err = %v, want ConflictError", err)
	}
}

func TestCancelledBookingDoesNotBlockDay(t *testing.T) {
	f := newFixture()
	first := mustCreate(t, f, customerID, "2024-06-01T09:00", 3)

	if _, err := f.engine.CancelBooking(context.Background(), first.ID); err != nil {
		t.Fatalf("CancelBooking failed: %v", err)
	}

	// The day is free again once the only booking on it is cancelled.
	mustCreate(t, f, customer2, "2024-06-01T14:00", 2)
}

func TestCreateBookingResolvesParties(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	var notFound utils.NotFoundError
	_, err := f.engine.CreateBooking(ctx, models.BookingInput{
		CustomerID:    "ghost",
		CleanerID:     cleanerX,
		BookingDate:   "2024-06-01T09:00",
		DurationHours: 1,
	})
	if !errors.As(err, &notFound) {
		t.Errorf("unknown customer: err = %v, want NotFoundError", err)
	}

	_, err = f.engine.CreateBooking(ctx, models.BookingInput{
		CustomerID:    customerID,
		CleanerID:     "ghost",
		BookingDate:   "2024-06-01T09:00",
		DurationHours: 1,
	})
	if !errors.As(err, &notFound) {
		t.Errorf("unknown cleaner: err = %v, want NotFoundError", err)
	}
}

func TestCreateBookingRejectsMalformedDate(t *testing.T) {
	f := newFixture()
	_, err := f.engine.CreateBooking(context.Background(), models.BookingInput{
		CustomerID:    customerID,
		CleanerID:     cleanerX,
		BookingDate:   "June 1st 2024",
		DurationHours: 1,
	})
	var validation utils.ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
}

func TestRoundTripFetch(t *testing.T) {
	f := newFixture()
	created := mustCreate(t, f, customerID, "2024-06-01T09:00", 3)

	fetched, err := f.engine.GetBooking(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("GetBooking failed: %v", err)
	}
	if fetched.CustomerID != created.CustomerID ||
		fetched.CleanerID != created.CleanerID ||
		!fetched.BookingDate.Equal(created.BookingDate) ||
		fetched.DurationHours != created.DurationHours ||
		!fetched.TotalAmount.Equal(created.TotalAmount) ||
		fetched.Status != created.Status {
		t.Errorf("fetched booking differs from created: %+v vs %+v", fetched, created)
	}
}

func TestConfirmIsIdempotent(t *testing.T) {
	f := newFixture()
	b := mustCreate(t, f, customerID, "2024-06-01T09:00", 3)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		updated, err := f.engine.ConfirmBooking(ctx, b.ID)
		if err != nil {
			t.Fatalf("ConfirmBooking #%d failed: %v", i+1, err)
		}
		if updated.Status != models.BookingConfirmed {
			t.Errorf("status after confirm #%d = %s, want CONFIRMED", i+1, updated.Status)
		}
	}
	if got := f.cleaners.status(cleanerX); got != models.CleanerAvailable {
		t.Errorf("cleaner status = %s, want AVAILABLE (confirm has no side effects)", got)
	}
}

func TestStartAndCompleteSyncCleanerStatus(t *testing.T) {
	f := newFixture()
	b := mustCreate(t, f, customerID, "2024-06-01T09:00", 3)
	ctx := context.Background()

	if _, err := f.engine.ConfirmBooking(ctx, b.ID); err != nil {
		t.Fatalf("ConfirmBooking failed: %v", err)
	}

	started, err := f.engine.StartBooking(ctx, b.ID)
	if err != nil {
		t.Fatalf("StartBooking failed: %v", err)
	}
	if started.Status != models.BookingInProgress {
		t.Errorf("status = %s, want IN_PROGRESS", started.Status)
	}
	if got := f.cleaners.status(cleanerX); got != models.CleanerBusy {
		t.Errorf("cleaner status after start = %s, want BUSY", got)
	}

	completed, err := f.engine.CompleteBooking(ctx, b.ID)
	if err != nil {
		t.Fatalf("CompleteBooking failed: %v", err)
	}
	if completed.Status != models.BookingCompleted {
		t.Errorf("status = %s, want COMPLETED", completed.Status)
	}
	if got := f.cleaners.status(cleanerX); got != models.CleanerAvailable {
		t.Errorf("cleaner status after complete = %s, want AVAILABLE", got)
	}
}

func TestCancelFreesOnlyBusyCleaner(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	// Cancel while the cleaner is BUSY: status resets to AVAILABLE.
	b := mustCreate(t, f, customerID, "2024-06-01T09:00", 3)
	if _, err := f.engine.StartBooking(ctx, b.ID); err != nil {
		t.Fatalf("StartBooking failed: %v", err)
	}
	if _, err := f.engine.CancelBooking(ctx, b.ID); err != nil {
		t.Fatalf("CancelBooking failed: %v", err)
	}
	if got := f.cleaners.status(cleanerX); got != models.CleanerAvailable {
		t.Errorf("cleaner status after cancelling in-progress booking = %s, want AVAILABLE", got)
	}

	// Cancel a PENDING booking: the cleaner's status is left untouched.
	b2 := mustCreate(t, f, customer2, "2024-06-02T09:00", 2)
	callsBefore := f.cleaners.statusUpdateCalls
	if _, err := f.engine.CancelBooking(ctx, b2.ID); err != nil {
		t.Fatalf("CancelBooking failed: %v", err)
	}
	if got := f.cleaners.status(cleanerX); got != models.CleanerAvailable {
		t.Errorf("cleaner status = %s, want AVAILABLE", got)
	}
	if f.cleaners.statusUpdateCalls != callsBefore {
		t.Errorf("cancelling a pending booking touched the cleaner status %d times",
			f.cleaners.statusUpdateCalls-callsBefore)
	}
}

func TestAvailabilityQuery(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	free, err := f.engine.IsCleanerAvailableOnDate(ctx, cleanerX, "2024-06-01")
	if err != nil || !free {
		t.Fatalf("empty day: free=%v err=%v, want true", free, err)
	}

	mustCreate(t, f, customerID, "2024-06-01T09:00", 3)
	free, err = f.engine.IsCleanerAvailableOnDate(ctx, cleanerX, "2024-06-01")
	if err != nil || free {
		t.Fatalf("occupied day: free=%v err=%v, want false", free, err)
	}

	var notFound utils.NotFoundError
	if _, err := f.engine.IsCleanerAvailableOnDate(ctx, "ghost", "2024-06-01"); !errors.As(err, &notFound) {
		t.Errorf("unknown cleaner: err = %v, want NotFoundError", err)
	}
}

func TestConcurrentCreationSingleWinner(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	var wg sync.WaitGroup
	results := make(chan error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.engine.CreateBooking(ctx, models.BookingInput{
				CustomerID:    customerID,
				CleanerID:     cleanerX,
				BookingDate:   "2024-06-01T09:00",
				DurationHours: 2,
			})
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var successes, conflicts int
	for err := range results {
		if err == nil {
			successes++
			continue
		}
		var conflict utils.ConflictError
		if errors.As(err, &conflict) {
			conflicts++
		} else {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if successes != 1 || conflicts != 1 {
		t.Fatalf("got %d successes and %d conflicts, want exactly 1 of each", successes, conflicts)
	}

	active, err := f.bookings.GetForCleanerOnDay(ctx, cleanerX,
		time.Date(2024, 6, 1, 0, 0, 0, 0, time.Local),
		time.Date(2024, 6, 2, 0, 0, 0, 0, time.Local).Add(-time.Nanosecond))
	if err != nil {
		t.Fatalf("GetForCleanerOnDay failed: %v", err)
	}
	if len(active) != 1 {
		t.Fatalf("active bookings on day = %d, want 1", len(active))
	}
}

func TestGenericStatusUpdateReachesNoShow(t *testing.T) {
	f := newFixture()
	b := mustCreate(t, f, customerID, "2024-06-01T09:00", 3)

	updated, err := f.engine.UpdateBookingStatus(context.Background(), b.ID, models.BookingNoShow)
	if err != nil {
		t.Fatalf("UpdateBookingStatus failed: %v", err)
	}
	if updated.Status != models.BookingNoShow {
		t.Errorf("status = %s, want NO_SHOW", updated.Status)
	}
	// No cleaner side effects on the generic path.
	if got := f.cleaners.status(cleanerX); got != models.CleanerAvailable {
		t.Errorf("cleaner status = %s, want AVAILABLE", got)
	}
}

func TestTransitionOnMissingBooking(t *testing.T) {
	f := newFixture()
	var notFound utils.NotFoundError
	if _, err := f.engine.ConfirmBooking(context.Background(), "ghost"); !errors.As(err, &notFound) {
		t.Fatalf("err = %v, want NotFoundError", err)
	}
}
