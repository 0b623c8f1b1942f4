package controller

import (
	"context"
	"errors"
	"sync"
	"testing"

	e "github.com/parsel/projectops/internal/delivery/errors"
	"github.com/parsel/projectops/internal/delivery/models"
	"github.com/google/uuid"
	"go.uber.org/zap/zaptest"
)

func TestCatalogService_CreateProcurement(t *testing.T) {
	projectID := uuid.New()
	supplierID := uuid.New()
	materialID := uuid.New()

	valid := func() *models.ProcurementRecord {
		return &models.ProcurementRecord{
			ProjectID:         projectID,
			SupplierID:        supplierID,
			MaterialID:        materialID,
			QuantityPurchased: 40,
			PurchaseCost:      5000,
		}
	}

	allExist := func(mr *MockRepository) {
		mr.projectExists = func(_ context.Context, _ uuid.UUID) (bool, error) { return true, nil }
		mr.supplierExists = func(_ context.Context, _ uuid.UUID) (bool, error) { return true, nil }
		mr.materialExists = func(_ context.Context, _ uuid.UUID) (bool, error) { return true, nil }
	}

	tests := []struct {
		name          string
		input         *models.ProcurementRecord
		mockSetup     func(*MockRepository)
		expectError   bool
		expectedError error
	}{
		{
			name:  "successful creation",
			input: valid(),
			mockSetup: func(mr *MockRepository) {
				allExist(mr)
				mr.createProcurement = func(_ context.Context, _ *models.ProcurementRecord) error {
					return nil
				}
			},
			expectError: false,
		},
		{
			name: "missing supplier reference",
			input: &models.ProcurementRecord{
				ProjectID:  projectID,
				MaterialID: materialID,
			},
			mockSetup:     func(_ *MockRepository) {},
			expectError:   true,
			expectedError: e.ErrValidation,
		},
		{
			name:  "unknown material",
			input: valid(),
			mockSetup: func(mr *MockRepository) {
				allExist(mr)
				mr.materialExists = func(_ context.Context, _ uuid.UUID) (bool, error) {
					return false, nil
				}
			},
			expectError:   true,
			expectedError: e.ErrReference,
		},
		{
			name:  "unknown project",
			input: valid(),
			mockSetup: func(mr *MockRepository) {
				allExist(mr)
				mr.projectExists = func(_ context.Context, _ uuid.UUID) (bool, error) {
					return false, nil
				}
			},
			expectError:   true,
			expectedError: e.ErrReference,
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

			result, err := service.CreateProcurement(context.Background(), tt.input)

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
				if result.ID == uuid.Nil {
					t.Error("expected procurement record ID to be set")
				}
			}
		})
	}
}

func TestCatalogService_UpdateProcurement(t *testing.T) {
	testID := uuid.New()
	otherProject := uuid.New()

	tests := []struct {
		name          string
		input         *models.ProcurementRecordUpdate
		mockSetup     func(*MockRepository)
		expectError   bool
		expectedError error
	}{
		{
			name: "reference re-checked on reassignment",
			input: &models.ProcurementRecordUpdate{
				ID:        testID,
				ProjectID: &otherProject,
			},
			mockSetup: func(mr *MockRepository) {
				mr.projectExists = func(_ context.Context, id uuid.UUID) (bool, error) {
					return id != otherProject, nil
				}
			},
			expectError:   true,
			expectedError: e.ErrReference,
		},
		{
			name: "nil reference cannot be written",
			input: &models.ProcurementRecordUpdate{
				ID:         testID,
				SupplierID: &uuid.Nil,
			},
			mockSetup:     func(_ *MockRepository) {},
			expectError:   true,
			expectedError: e.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := zaptest.NewLogger(t)
			mockRepo := &MockRepository{}
			tt.mockSetup(mockRepo)
			service := NewCatalogService(mockRepo, &MockProducer{}, logger)

			_, err := service.UpdateProcurement(context.Background(), tt.input)
			if err == nil {
				t.Fatal("expected error but got none")
			}
			if !errors.Is(err, tt.expectedError) {
				t.Errorf("expected error %v, got %v", tt.expectedError, err)
			}
		})
	}
}

func TestCatalogService_CreateAssignment(t *testing.T) {
	projectID := uuid.New()
	employeeID := uuid.New()

	tests := []struct {
		name          string
		input         *models.Assignment
		mockSetup     func(*MockRepository)
		expectError   bool
		expectedError error
	}{
		{
			name: "successful creation",
			input: &models.Assignment{
				ProjectID:  projectID,
				EmployeeID: employeeID,
				Role:       "Lead Engineer",
			},
			mockSetup: func(mr *MockRepository) {
				mr.projectExists = func(_ context.Context, _ uuid.UUID) (bool, error) { return true, nil }
				mr.employeeExists = func(_ context.Context, _ uuid.UUID) (bool, error) { return true, nil }
				mr.createAssignment = func(_ context.Context, _ *models.Assignment) error { return nil }
			},
			expectError: false,
		},
		{
			name: "unknown employee",
			input: &models.Assignment{
				ProjectID:  projectID,
				EmployeeID: employeeID,
			},
			mockSetup: func(mr *MockRepository) {
				mr.projectExists = func(_ context.Context, _ uuid.UUID) (bool, error) { return true, nil }
				mr.employeeExists = func(_ context.Context, _ uuid.UUID) (bool, error) { return false, nil }
			},
			expectError:   true,
			expectedError: e.ErrReference,
		},
		{
			name:          "missing project reference",
			input:         &models.Assignment{EmployeeID: employeeID},
			mockSetup:     func(_ *MockRepository) {},
			expectError:   true,
			expectedError: e.ErrValidation,
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

			result, err := service.CreateAssignment(context.Background(), tt.input)

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
				if result.ID == uuid.Nil {
					t.Error("expected assignment ID to be set")
				}
			}
		})
	}
}
