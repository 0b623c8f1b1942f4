package controller

import (
	"context"
	"errors"
	"sync"
	"testing"

	e "github.com/parsel/projectops/internal/delivery/errors"
	"github.com/parsel/projectops/internal/delivery/events"
	"github.com/parsel/projectops/internal/delivery/models"
	"github.com/parsel/projectops/internal/pkg/utils"
	"github.com/google/uuid"
	"go.uber.org/zap/zaptest"
)

func TestCatalogService_CreateEmployee(t *testing.T) {
	tests := []struct {
		name          string
		input         *models.Employee
		mockSetup     func(*MockRepository)
		expectError   bool
		expectedError error
	}{
		{
			name: "successful creation",
			input: &models.Employee{
				FullName: "Alice Moran",
				JobRole:  "Site Engineer",
				Email:    "alice@parsel.com",
				Status:   "Active",
				Phone:    "555-0199",
			},
			mockSetup: func(mr *MockRepository) {
				mr.employeeValueTaken = func(_ context.Context, _, _ string, _ uuid.UUID) (bool, error) {
					return false, nil
				}
				mr.createEmployee = func(_ context.Context, _ *models.Employee) error {
					return nil
				}
			},
			expectError: false,
		},
		{
			name: "missing required field",
			input: &models.Employee{
				FullName: "Alice Moran",
				Email:    "alice@parsel.com",
				Status:   "Active",
				Phone:    "555-0199",
			},
			mockSetup:     func(_ *MockRepository) {},
			expectError:   true,
			expectedError: e.ErrValidation,
		},
		{
			name: "duplicate email",
			input: &models.Employee{
				FullName: "Alice Moran",
				JobRole:  "Site Engineer",
				Email:    "alice@parsel.com",
				Status:   "Active",
				Phone:    "555-0199",
			},
			mockSetup: func(mr *MockRepository) {
				mr.employeeValueTaken = func(_ context.Context, column, _ string, _ uuid.UUID) (bool, error) {
					return column == "email", nil
				}
			},
			expectError:   true,
			expectedError: e.ErrConflict,
		},
		{
			name: "repository error",
			input: &models.Employee{
				FullName: "Alice Moran",
				JobRole:  "Site Engineer",
				Email:    "alice@parsel.com",
				Status:   "Active",
				Phone:    "555-0199",
			},
			mockSetup: func(mr *MockRepository) {
				mr.employeeValueTaken = func(_ context.Context, _, _ string, _ uuid.UUID) (bool, error) {
					return false, nil
				}
				mr.createEmployee = func(_ context.Context, _ *models.Employee) error {
					return errors.New("database error")
				}
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := zaptest.NewLogger(t)
			mockRepo := &MockRepository{}
			mockProducer := &MockProducer{wg: new(sync.WaitGroup)}
			tt.mockSetup(mockRepo)
			service := NewCatalogService(mockRepo, mockProducer, logger)

			// For successful creation, add one waitgroup counter for the async event.
			if !tt.expectError {
				mockProducer.wg.Add(1)
			}

			result, err := service.CreateEmployee(context.Background(), tt.input)

			if !tt.expectError {
				mockProducer.wg.Wait()
			}

			if tt.expectError {
				if err == nil {
					t.Fatal("expected error but got none")
				}
				if tt.expectedError != nil && !errors.Is(err, tt.expectedError) {
					t.Errorf("expected error %v, got %v", tt.expectedError, err)
				}
			} else {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if result.ID == uuid.Nil {
					t.Error("expected employee ID to be set")
				}
				produced := mockProducer.events()
				if len(produced) != 1 {
					t.Fatal("expected creation event to be produced")
				}
				if produced[0].Type != events.RecordCreated || produced[0].Entity != events.EntityEmployee {
					t.Errorf("unexpected event %v/%v", produced[0].Type, produced[0].Entity)
				}
			}
		})
	}
}

func TestCatalogService_UpdateEmployee(t *testing.T) {
	testID := uuid.New()

	tests := []struct {
		name          string
		input         *models.EmployeeUpdate
		mockSetup     func(*MockRepository)
		expectError   bool
		expectedError error
	}{
		{
			name: "successful update",
			input: &models.EmployeeUpdate{
				ID:      testID,
				JobRole: utils.Ptr("Lead Engineer"),
			},
			mockSetup: func(mr *MockRepository) {
				mr.updateEmployee = func(_ context.Context, _ *models.EmployeeUpdate) error {
					return nil
				}
				mr.getEmployee = func(_ context.Context, _ uuid.UUID) (*models.Employee, error) {
					return &models.Employee{ID: testID, JobRole: "Lead Engineer"}, nil
				}
			},
			expectError: false,
		},
		{
			name:          "invalid ID",
			input:         &models.EmployeeUpdate{ID: uuid.Nil},
			mockSetup:     func(_ *MockRepository) {},
			expectError:   true,
			expectedError: e.ErrValidation,
		},
		{
			name: "required field blanked",
			input: &models.EmployeeUpdate{
				ID:    testID,
				Email: utils.Ptr(""),
			},
			mockSetup:     func(_ *MockRepository) {},
			expectError:   true,
			expectedError: e.ErrValidation,
		},
		{
			name: "email taken by another employee",
			input: &models.EmployeeUpdate{
				ID:    testID,
				Email: utils.Ptr("ben@parsel.com"),
			},
			mockSetup: func(mr *MockRepository) {
				mr.employeeValueTaken = func(_ context.Context, _, _ string, exclude uuid.UUID) (bool, error) {
					if exclude != testID {
						t.Errorf("uniqueness probe should exclude the updated record, got %v", exclude)
					}
					return true, nil
				}
			},
			expectError:   true,
			expectedError: e.ErrConflict,
		},
		{
			name: "not found",
			input: &models.EmployeeUpdate{
				ID:      testID,
				JobRole: utils.Ptr("Lead Engineer"),
			},
			mockSetup: func(mr *MockRepository) {
				mr.updateEmployee = func(_ context.Context, _ *models.EmployeeUpdate) error {
					return e.ErrNotFound
				}
			},
			expectError:   true,
			expectedError: e.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := zaptest.NewLogger(t)
			mockRepo := &MockRepository{}
			mockProducer := &MockProducer{wg: new(sync.WaitGroup)}
			tt.mockSetup(mockRepo)
			service := NewCatalogService(mockRepo, mockProducer, logger)

			if !tt.expectError {
				mockProducer.wg.Add(1)
			}

			_, err := service.UpdateEmployee(context.Background(), tt.input)

			if !tt.expectError {
				mockProducer.wg.Wait()
			}

			if tt.expectError {
				if err == nil {
					t.Fatal("expected error but got none")
				}
				if !errors.Is(err, tt.expectedError) {
					t.Errorf("expected error %v, got %v", tt.expectedError, err)
				}
			} else {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if len(mockProducer.events()) != 1 {
					t.Error("expected update event to be produced")
				}
			}
		})
	}
}

func TestCatalogService_DeleteEmployee(t *testing.T) {
	testID := uuid.New()

	tests := []struct {
		name          string
		cascade       bool
		mockSetup     func(*MockRepository)
		expectError   bool
		expectedError error
	}{
		{
			name:    "successful deletion without dependents",
			cascade: false,
			mockSetup: func(mr *MockRepository) {
				mr.getEmployee = func(_ context.Context, _ uuid.UUID) (*models.Employee, error) {
					return &models.Employee{ID: testID}, nil
				}
				mr.countAssignmentsByEmployee = func(_ context.Context, _ uuid.UUID) (int64, error) {
					return 0, nil
				}
				mr.deleteEmployee = func(_ context.Context, _ uuid.UUID) error {
					return nil
				}
			},
			expectError: false,
		},
		{
			name:    "rejected while assignments remain",
			cascade: false,
			mockSetup: func(mr *MockRepository) {
				mr.getEmployee = func(_ context.Context, _ uuid.UUID) (*models.Employee, error) {
					return &models.Employee{ID: testID}, nil
				}
				mr.countAssignmentsByEmployee = func(_ context.Context, _ uuid.UUID) (int64, error) {
					return 2, nil
				}
			},
			expectError:   true,
			expectedError: e.ErrDependency,
		},
		{
			name:    "cascade removes dependents",
			cascade: true,
			mockSetup: func(mr *MockRepository) {
				mr.getEmployee = func(_ context.Context, _ uuid.UUID) (*models.Employee, error) {
					return &models.Employee{ID: testID}, nil
				}
				mr.deleteEmployeeCascade = func(_ context.Context, _ uuid.UUID) error {
					return nil
				}
			},
			expectError: false,
		},
		{
			name:    "not found",
			cascade: false,
			mockSetup: func(mr *MockRepository) {
				mr.getEmployee = func(_ context.Context, _ uuid.UUID) (*models.Employee, error) {
					return nil, e.ErrNotFound
				}
			},
			expectError:   true,
			expectedError: e.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := zaptest.NewLogger(t)
			mockRepo := &MockRepository{}
			mockProducer := &MockProducer{wg: new(sync.WaitGroup)}
			tt.mockSetup(mockRepo)
			service := NewCatalogService(mockRepo, mockProducer, logger)

			if !tt.expectError {
				mockProducer.wg.Add(1)
			}

			err := service.DeleteEmployee(context.Background(), testID, tt.cascade)

			if !tt.expectError {
				mockProducer.wg.Wait()
			}

			if tt.expectError {
				if err == nil {
					t.Fatal("expected error but got none")
				}
				if !errors.Is(err, tt.expectedError) {
					t.Errorf("expected error %v, got %v", tt.expectedError, err)
				}
			} else {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				produced := mockProducer.events()
				if len(produced) != 1 {
					t.Fatal("expected deletion event to be produced")
				}
				if produced[0].Type != events.RecordDeleted {
					t.Errorf("expected deletion event, got %v", produced[0].Type)
				}
			}
		})
	}
}
