package leave_test

import (
	"context"
	"testing"
	"time"

	"dayflow/internal/attendance"
	"dayflow/internal/employee"
	"dayflow/internal/leave"
	"dayflow/internal/messaging/kafka"
	"dayflow/internal/shared/contextutil"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type fakeLeaveRepository struct {
	createRequestFn   func(ctx context.Context, r *leave.LeaveRequest) error
	updateRequestFn   func(ctx context.Context, r *leave.LeaveRequest) error
	findRequestByIDFn func(ctx context.Context, id string) (*leave.LeaveRequest, error)
	findRequestsFn    func(ctx context.Context, filter leave.ListFilter) ([]leave.LeaveRequest, error)
	findAllTypesFn    func(ctx context.Context) ([]leave.LeaveType, error)
	findTypeByIDFn    func(ctx context.Context, id string) (*leave.LeaveType, error)
	createBalanceFn   func(ctx context.Context, b *leave.LeaveBalance) error
	updateBalanceFn   func(ctx context.Context, b *leave.LeaveBalance) error
	findBalanceFn     func(ctx context.Context, employeeID, leaveTypeID string, year int) (*leave.LeaveBalance, error)
	findBalancesFn    func(ctx context.Context, employeeID string, year int) ([]leave.LeaveBalance, error)
}

func (f *fakeLeaveRepository) WithTx(tx *gorm.DB) leave.Repository { return f }

func (f *fakeLeaveRepository) CreateRequest(ctx context.Context, r *leave.LeaveRequest) error {
	if f.createRequestFn != nil {
		return f.createRequestFn(ctx, r)
	}
	return nil
}

func (f *fakeLeaveRepository) UpdateRequest(ctx context.Context, r *leave.LeaveRequest) error {
	if f.updateRequestFn != nil {
		return f.updateRequestFn(ctx, r)
	}
	return nil
}

func (f *fakeLeaveRepository) FindRequestByID(ctx context.Context, id string) (*leave.LeaveRequest, error) {
	if f.findRequestByIDFn != nil {
		return f.findRequestByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeLeaveRepository) FindRequests(ctx context.Context, filter leave.ListFilter) ([]leave.LeaveRequest, error) {
	if f.findRequestsFn != nil {
		return f.findRequestsFn(ctx, filter)
	}
	return nil, nil
}

func (f *fakeLeaveRepository) FindAllTypes(ctx context.Context) ([]leave.LeaveType, error) {
	if f.findAllTypesFn != nil {
		return f.findAllTypesFn(ctx)
	}
	return nil, nil
}

func (f *fakeLeaveRepository) FindTypeByID(ctx context.Context, id string) (*leave.LeaveType, error) {
	if f.findTypeByIDFn != nil {
		return f.findTypeByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeLeaveRepository) CreateBalance(ctx context.Context, b *leave.LeaveBalance) error {
	if f.createBalanceFn != nil {
		return f.createBalanceFn(ctx, b)
	}
	return nil
}

func (f *fakeLeaveRepository) UpdateBalance(ctx context.Context, b *leave.LeaveBalance) error {
	if f.updateBalanceFn != nil {
		return f.updateBalanceFn(ctx, b)
	}
	return nil
}

func (f *fakeLeaveRepository) FindBalance(ctx context.Context, employeeID, leaveTypeID string, year int) (*leave.LeaveBalance, error) {
	if f.findBalanceFn != nil {
		return f.findBalanceFn(ctx, employeeID, leaveTypeID, year)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeLeaveRepository) FindBalances(ctx context.Context, employeeID string, year int) ([]leave.LeaveBalance, error) {
	if f.findBalancesFn != nil {
		return f.findBalancesFn(ctx, employeeID, year)
	}
	return nil, nil
}

type fakeAttendanceRepository struct {
	createFn                func(ctx context.Context, a *attendance.Attendance) error
	updateFn                func(ctx context.Context, a *attendance.Attendance) error
	findByEmployeeAndDateFn func(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error)
}

func (f *fakeAttendanceRepository) WithTx(tx *gorm.DB) attendance.Repository { return f }

func (f *fakeAttendanceRepository) Create(ctx context.Context, a *attendance.Attendance) error {
	if f.createFn != nil {
		return f.createFn(ctx, a)
	}
	return nil
}

func (f *fakeAttendanceRepository) Update(ctx context.Context, a *attendance.Attendance) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, a)
	}
	return nil
}

func (f *fakeAttendanceRepository) FindByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	if f.findByEmployeeAndDateFn != nil {
		return f.findByEmployeeAndDateFn(ctx, employeeID, date)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAttendanceRepository) FindByEmployeeInRange(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.Attendance, error) {
	return nil, nil
}

func (f *fakeAttendanceRepository) FindInRange(ctx context.Context, from, to time.Time) ([]attendance.Attendance, error) {
	return nil, nil
}

type fakeOutboxRepository struct {
	createFn func(ctx context.Context, event kafka.OutboxEvent) error
}

func (f *fakeOutboxRepository) WithTx(tx *gorm.DB) kafka.OutboxRepository { return f }

func (f *fakeOutboxRepository) Create(ctx context.Context, event kafka.OutboxEvent) error {
	if f.createFn != nil {
		return f.createFn(ctx, event)
	}
	return nil
}

func (f *fakeOutboxRepository) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}

func (f *fakeOutboxRepository) MarkSent(ctx context.Context, id string) error { return nil }

func (f *fakeOutboxRepository) MarkFailed(ctx context.Context, id string, reason string) error {
	return nil
}

type leaveServiceDeps struct {
	mock       sqlmock.Sqlmock
	service    leave.Service
	repo       *fakeLeaveRepository
	attendance *fakeAttendanceRepository
	outbox     *fakeOutboxRepository
	close      func()
}

func setupLeaveServiceTest(t *testing.T, now time.Time) *leaveServiceDeps {
	t.Helper()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
	})
	assert.NoError(t, err)

	repo := &fakeLeaveRepository{}
	attRepo := &fakeAttendanceRepository{}
	outbox := &fakeOutboxRepository{}
	svc := leave.NewServiceWithClock(gdb, repo, attRepo, outbox, func() time.Time { return now })

	return &leaveServiceDeps{
		mock:       mock,
		service:    svc,
		repo:       repo,
		attendance: attRepo,
		outbox:     outbox,
		close:      func() { db.Close() },
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func reviewerContext() context.Context {
	return contextutil.WithCaller(context.Background(), contextutil.Caller{
		ID:   uuid.New().String(),
		Role: employee.RoleHR,
	})
}

func pendingRequest(employeeID, typeID uuid.UUID, start, end time.Time, days int) *leave.LeaveRequest {
	return &leave.LeaveRequest{
		ID:          uuid.New(),
		EmployeeID:  employeeID,
		LeaveTypeID: typeID,
		StartDate:   start,
		EndDate:     end,
		Days:        days,
		Status:      leave.StatusPending,
	}
}

func TestLeaveService_Review_Approve(t *testing.T) {
	employeeID := uuid.New()
	typeID := uuid.New()
	now := time.Date(2025, 6, 20, 10, 0, 0, 0, time.UTC)
	start := time.Date(2025, 6, 23, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 25, 0, 0, 0, 0, time.UTC)

	t.Run("success debits balance and backfills attendance", func(t *testing.T) {
		deps := setupLeaveServiceTest(t, now)
		defer deps.close()

		expectTx(t, deps.mock, true)

		request := pendingRequest(employeeID, typeID, start, end, 3)
		deps.repo.findRequestByIDFn = func(ctx context.Context, id string) (*leave.LeaveRequest, error) {
			return request, nil
		}

		var updatedBalance *leave.LeaveBalance
		deps.repo.findBalanceFn = func(ctx context.Context, eid, tid string, year int) (*leave.LeaveBalance, error) {
			assert.Equal(t, 2025, year)
			return &leave.LeaveBalance{
				EmployeeID:  employeeID,
				LeaveTypeID: typeID,
				Year:        year,
				TotalDays:   12,
				UsedDays:    2,
			}, nil
		}
		deps.repo.updateBalanceFn = func(ctx context.Context, b *leave.LeaveBalance) error {
			updatedBalance = b
			return nil
		}

		// 2025-06-23 already has a present row; the other two days have none.
		existingDay := time.Date(2025, 6, 23, 0, 0, 0, 0, time.UTC)
		var updatedAttendance []attendance.Attendance
		var createdAttendance []attendance.Attendance
		deps.attendance.findByEmployeeAndDateFn = func(ctx context.Context, eid string, date time.Time) (*attendance.Attendance, error) {
			if date.Equal(existingDay) {
				return &attendance.Attendance{
					ID:         uuid.New(),
					EmployeeID: employeeID,
					Date:       date,
					Status:     attendance.StatusPresent,
				}, nil
			}
			return nil, gorm.ErrRecordNotFound
		}
		deps.attendance.updateFn = func(ctx context.Context, a *attendance.Attendance) error {
			updatedAttendance = append(updatedAttendance, *a)
			return nil
		}
		deps.attendance.createFn = func(ctx context.Context, a *attendance.Attendance) error {
			createdAttendance = append(createdAttendance, *a)
			return nil
		}

		var outboxEvent *kafka.OutboxEvent
		deps.outbox.createFn = func(ctx context.Context, event kafka.OutboxEvent) error {
			outboxEvent = &event
			return nil
		}

		resp, err := deps.service.Review(reviewerContext(), request.ID.String(), leave.ReviewLeaveRequest{
			Status: leave.StatusApproved,
		})

		assert.NoError(t, err)
		assert.Equal(t, leave.StatusApproved, resp.Status)
		assert.NotNil(t, resp.ReviewedBy)
		assert.NotNil(t, resp.ReviewedAt)

		assert.Equal(t, 5, updatedBalance.UsedDays)

		assert.Len(t, updatedAttendance, 1)
		assert.Equal(t, attendance.StatusLeave, updatedAttendance[0].Status)
		assert.Len(t, createdAttendance, 2)
		for _, a := range createdAttendance {
			assert.Equal(t, attendance.StatusLeave, a.Status)
			assert.Nil(t, a.CheckIn)
			assert.Nil(t, a.CheckOut)
		}

		assert.NotNil(t, outboxEvent)
		assert.Equal(t, "leave.reviewed", outboxEvent.EventType)

		assert.NoError(t, deps.mock.ExpectationsWereMet())
	})

	t.Run("missing balance bucket is skipped silently", func(t *testing.T) {
		deps := setupLeaveServiceTest(t, now)
		defer deps.close()

		expectTx(t, deps.mock, true)

		request := pendingRequest(employeeID, typeID, start, end, 3)
		deps.repo.findRequestByIDFn = func(ctx context.Context, id string) (*leave.LeaveRequest, error) {
			return request, nil
		}

		var created int
		deps.attendance.createFn = func(ctx context.Context, a *attendance.Attendance) error {
			created++
			return nil
		}

		resp, err := deps.service.Review(reviewerContext(), request.ID.String(), leave.ReviewLeaveRequest{
			Status: leave.StatusApproved,
		})

		assert.NoError(t, err)
		assert.Equal(t, leave.StatusApproved, resp.Status)
		assert.Equal(t, 3, created)
		assert.NoError(t, deps.mock.ExpectationsWereMet())
	})

	t.Run("balance year is the processing year, not the leave year", func(t *testing.T) {
		reviewedAt := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)
		deps := setupLeaveServiceTest(t, reviewedAt)
		defer deps.close()

		expectTx(t, deps.mock, true)

		decemberStart := time.Date(2025, 12, 29, 0, 0, 0, 0, time.UTC)
		decemberEnd := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
		request := pendingRequest(employeeID, typeID, decemberStart, decemberEnd, 3)
		deps.repo.findRequestByIDFn = func(ctx context.Context, id string) (*leave.LeaveRequest, error) {
			return request, nil
		}

		var queriedYear int
		deps.repo.findBalanceFn = func(ctx context.Context, eid, tid string, year int) (*leave.LeaveBalance, error) {
			queriedYear = year
			return nil, gorm.ErrRecordNotFound
		}

		_, err := deps.service.Review(reviewerContext(), request.ID.String(), leave.ReviewLeaveRequest{
			Status: leave.StatusApproved,
		})

		assert.NoError(t, err)
		assert.Equal(t, 2026, queriedYear)
	})

	t.Run("weekends inside the range are marked too", func(t *testing.T) {
		deps := setupLeaveServiceTest(t, now)
		defer deps.close()

		expectTx(t, deps.mock, true)

		// Friday 2025-06-20 through Monday 2025-06-23 spans a weekend.
		friday := time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC)
		monday := time.Date(2025, 6, 23, 0, 0, 0, 0, time.UTC)
		request := pendingRequest(employeeID, typeID, friday, monday, 4)
		deps.repo.findRequestByIDFn = func(ctx context.Context, id string) (*leave.LeaveRequest, error) {
			return request, nil
		}

		var days []time.Time
		deps.attendance.createFn = func(ctx context.Context, a *attendance.Attendance) error {
			days = append(days, a.Date)
			return nil
		}

		_, err := deps.service.Review(reviewerContext(), request.ID.String(), leave.ReviewLeaveRequest{
			Status: leave.StatusApproved,
		})

		assert.NoError(t, err)
		assert.Len(t, days, 4)
	})
}

func TestLeaveService_Review_Reject(t *testing.T) {
	employeeID := uuid.New()
	typeID := uuid.New()
	now := time.Date(2025, 6, 20, 10, 0, 0, 0, time.UTC)

	t.Run("success leaves balance and attendance untouched", func(t *testing.T) {
		deps := setupLeaveServiceTest(t, now)
		defer deps.close()

		expectTx(t, deps.mock, true)

		request := pendingRequest(employeeID, typeID,
			time.Date(2025, 6, 23, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 6, 25, 0, 0, 0, 0, time.UTC), 3)
		deps.repo.findRequestByIDFn = func(ctx context.Context, id string) (*leave.LeaveRequest, error) {
			return request, nil
		}

		balanceTouched := false
		deps.repo.findBalanceFn = func(ctx context.Context, eid, tid string, year int) (*leave.LeaveBalance, error) {
			balanceTouched = true
			return nil, gorm.ErrRecordNotFound
		}
		attendanceTouched := false
		deps.attendance.createFn = func(ctx context.Context, a *attendance.Attendance) error {
			attendanceTouched = true
			return nil
		}

		resp, err := deps.service.Review(reviewerContext(), request.ID.String(), leave.ReviewLeaveRequest{
			Status: leave.StatusRejected,
		})

		assert.NoError(t, err)
		assert.Equal(t, leave.StatusRejected, resp.Status)
		assert.NotNil(t, resp.ReviewedBy)
		assert.False(t, balanceTouched)
		assert.False(t, attendanceTouched)
		assert.NoError(t, deps.mock.ExpectationsWereMet())
	})
}

func TestLeaveService_Review_Preconditions(t *testing.T) {
	now := time.Date(2025, 6, 20, 10, 0, 0, 0, time.UTC)

	t.Run("negative case - invalid decision", func(t *testing.T) {
		deps := setupLeaveServiceTest(t, now)
		defer deps.close()

		_, err := deps.service.Review(reviewerContext(), uuid.New().String(), leave.ReviewLeaveRequest{
			Status: "cancelled",
		})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "approved or rejected")
	})

	t.Run("negative case - request not found", func(t *testing.T) {
		deps := setupLeaveServiceTest(t, now)
		defer deps.close()

		_, err := deps.service.Review(reviewerContext(), uuid.New().String(), leave.ReviewLeaveRequest{
			Status: leave.StatusApproved,
		})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})

	t.Run("negative case - second review of the same request", func(t *testing.T) {
		deps := setupLeaveServiceTest(t, now)
		defer deps.close()

		request := pendingRequest(uuid.New(), uuid.New(),
			time.Date(2025, 6, 23, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 6, 25, 0, 0, 0, 0, time.UTC), 3)
		request.Status = leave.StatusApproved
		deps.repo.findRequestByIDFn = func(ctx context.Context, id string) (*leave.LeaveRequest, error) {
			return request, nil
		}

		_, err := deps.service.Review(reviewerContext(), request.ID.String(), leave.ReviewLeaveRequest{
			Status: leave.StatusRejected,
		})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "already been processed")
	})

	t.Run("negative case - attendance write failure rolls everything back", func(t *testing.T) {
		deps := setupLeaveServiceTest(t, now)
		defer deps.close()

		expectTx(t, deps.mock, false)

		request := pendingRequest(uuid.New(), uuid.New(),
			time.Date(2025, 6, 23, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 6, 25, 0, 0, 0, 0, time.UTC), 3)
		deps.repo.findRequestByIDFn = func(ctx context.Context, id string) (*leave.LeaveRequest, error) {
			return request, nil
		}
		deps.attendance.createFn = func(ctx context.Context, a *attendance.Attendance) error {
			return gorm.ErrInvalidData
		}

		_, err := deps.service.Review(reviewerContext(), request.ID.String(), leave.ReviewLeaveRequest{
			Status: leave.StatusApproved,
		})

		assert.Error(t, err)
		assert.NoError(t, deps.mock.ExpectationsWereMet())
	})
}

func TestLeaveService_Create(t *testing.T) {
	employeeID := uuid.New()
	typeID := uuid.New()
	now := time.Date(2025, 6, 20, 10, 0, 0, 0, time.UTC)

	employeeCtx := contextutil.WithCaller(context.Background(), contextutil.Caller{
		ID:   employeeID.String(),
		Role: employee.RoleEmployee,
	})

	annualLeave := func() *leave.LeaveType {
		return &leave.LeaveType{ID: typeID, Name: "Annual Leave", IsPaid: true, MaxDaysPerYear: 12}
	}

	t.Run("success computes inclusive day count", func(t *testing.T) {
		deps := setupLeaveServiceTest(t, now)
		defer deps.close()

		deps.repo.findTypeByIDFn = func(ctx context.Context, id string) (*leave.LeaveType, error) {
			return annualLeave(), nil
		}
		var created *leave.LeaveRequest
		deps.repo.createRequestFn = func(ctx context.Context, r *leave.LeaveRequest) error {
			created = r
			return nil
		}

		resp, err := deps.service.Create(employeeCtx, leave.CreateLeaveRequest{
			LeaveTypeID: typeID.String(),
			StartDate:   "2025-07-01",
			EndDate:     "2025-07-03",
			Reason:      "Family trip",
		})

		assert.NoError(t, err)
		assert.Equal(t, 3, created.Days)
		assert.Equal(t, leave.StatusPending, created.Status)
		assert.Equal(t, 3, resp.Days)
	})

	t.Run("single day request counts one day", func(t *testing.T) {
		deps := setupLeaveServiceTest(t, now)
		defer deps.close()

		deps.repo.findTypeByIDFn = func(ctx context.Context, id string) (*leave.LeaveType, error) {
			return annualLeave(), nil
		}
		var created *leave.LeaveRequest
		deps.repo.createRequestFn = func(ctx context.Context, r *leave.LeaveRequest) error {
			created = r
			return nil
		}

		_, err := deps.service.Create(employeeCtx, leave.CreateLeaveRequest{
			LeaveTypeID: typeID.String(),
			StartDate:   "2025-07-01",
			EndDate:     "2025-07-01",
			Reason:      "Appointment",
		})

		assert.NoError(t, err)
		assert.Equal(t, 1, created.Days)
	})

	t.Run("negative case - end before start", func(t *testing.T) {
		deps := setupLeaveServiceTest(t, now)
		defer deps.close()

		_, err := deps.service.Create(employeeCtx, leave.CreateLeaveRequest{
			LeaveTypeID: typeID.String(),
			StartDate:   "2025-07-03",
			EndDate:     "2025-07-01",
			Reason:      "Backwards",
		})

		assert.Error(t, err)
	})

	t.Run("negative case - attachment required", func(t *testing.T) {
		deps := setupLeaveServiceTest(t, now)
		defer deps.close()

		deps.repo.findTypeByIDFn = func(ctx context.Context, id string) (*leave.LeaveType, error) {
			return &leave.LeaveType{ID: typeID, Name: "Sick Leave", RequiresAttachment: true}, nil
		}

		_, err := deps.service.Create(employeeCtx, leave.CreateLeaveRequest{
			LeaveTypeID: typeID.String(),
			StartDate:   "2025-07-01",
			EndDate:     "2025-07-02",
			Reason:      "Flu",
		})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "attachment")
	})

	t.Run("negative case - insufficient balance", func(t *testing.T) {
		deps := setupLeaveServiceTest(t, now)
		defer deps.close()

		deps.repo.findTypeByIDFn = func(ctx context.Context, id string) (*leave.LeaveType, error) {
			return annualLeave(), nil
		}
		deps.repo.findBalanceFn = func(ctx context.Context, eid, tid string, year int) (*leave.LeaveBalance, error) {
			return &leave.LeaveBalance{TotalDays: 12, UsedDays: 11}, nil
		}

		_, err := deps.service.Create(employeeCtx, leave.CreateLeaveRequest{
			LeaveTypeID: typeID.String(),
			StartDate:   "2025-07-01",
			EndDate:     "2025-07-03",
			Reason:      "Too long",
		})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Insufficient leave balance")
	})

	t.Run("missing balance bucket does not block creation", func(t *testing.T) {
		deps := setupLeaveServiceTest(t, now)
		defer deps.close()

		deps.repo.findTypeByIDFn = func(ctx context.Context, id string) (*leave.LeaveType, error) {
			return annualLeave(), nil
		}

		_, err := deps.service.Create(employeeCtx, leave.CreateLeaveRequest{
			LeaveTypeID: typeID.String(),
			StartDate:   "2025-07-01",
			EndDate:     "2025-07-03",
			Reason:      "No bucket yet",
		})

		assert.NoError(t, err)
	})
}

func TestLeaveService_SeedYear(t *testing.T) {
	now := time.Date(2025, 6, 20, 10, 0, 0, 0, time.UTC)
	employeeID := uuid.New()

	t.Run("creates one bucket per type", func(t *testing.T) {
		deps := setupLeaveServiceTest(t, now)
		defer deps.close()

		typeA := leave.LeaveType{ID: uuid.New(), Name: "Annual Leave", MaxDaysPerYear: 12}
		typeB := leave.LeaveType{ID: uuid.New(), Name: "Sick Leave", MaxDaysPerYear: 7}
		deps.repo.findAllTypesFn = func(ctx context.Context) ([]leave.LeaveType, error) {
			return []leave.LeaveType{typeA, typeB}, nil
		}

		var created []leave.LeaveBalance
		deps.repo.createBalanceFn = func(ctx context.Context, b *leave.LeaveBalance) error {
			created = append(created, *b)
			return nil
		}

		err := deps.service.SeedYear(context.Background(), employeeID.String(), 2025)

		assert.NoError(t, err)
		assert.Len(t, created, 2)
		assert.Equal(t, 12, created[0].TotalDays)
		assert.Equal(t, 0, created[0].UsedDays)
		assert.Equal(t, 2025, created[0].Year)
	})

	t.Run("existing buckets are not duplicated", func(t *testing.T) {
		deps := setupLeaveServiceTest(t, now)
		defer deps.close()

		typeA := leave.LeaveType{ID: uuid.New(), Name: "Annual Leave", MaxDaysPerYear: 12}
		deps.repo.findAllTypesFn = func(ctx context.Context) ([]leave.LeaveType, error) {
			return []leave.LeaveType{typeA}, nil
		}
		deps.repo.findBalanceFn = func(ctx context.Context, eid, tid string, year int) (*leave.LeaveBalance, error) {
			return &leave.LeaveBalance{}, nil
		}

		created := 0
		deps.repo.createBalanceFn = func(ctx context.Context, b *leave.LeaveBalance) error {
			created++
			return nil
		}

		err := deps.service.SeedYear(context.Background(), employeeID.String(), 2025)

		assert.NoError(t, err)
		assert.Equal(t, 0, created)
	})
}
