package controllers

import (
	"testing"
	"time"

	"stafftrack_service/internal/entity"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var TaskFieldDescriptions = []pgconn.FieldDescription{
	{Name: "id", DataTypeOID: 20},
	{Name: "employee_id", DataTypeOID: 20},
	{Name: "description", DataTypeOID: 25},
	{Name: "status", DataTypeOID: 25},
	{Name: "created_at", DataTypeOID: 1114},
}

func TestTaskController_CreateTask(t *testing.T) {
	t.Run("successful create", func(t *testing.T) {
		mockDB := &MockDB{}
		deps := CreateTestDependencies(mockDB, &MockRedis{})

		now := time.Now()
		mockDB.On("QueryRow", mock.Anything, mock.AnythingOfType("string"), uint64(3), "Prepare onboarding docs", "Pending").
			Return(NewMockRow([]interface{}{uint64(1), now}, nil))

		controller := NewTaskController(deps)
		task, err := controller.CreateTask(entity.TaskCreate{EmployeeID: 3, Description: "Prepare onboarding docs"})

		assert.NoError(t, err)
		assert.Equal(t, uint64(1), task.ID)
		assert.Equal(t, entity.TaskPending, task.Status)
		assert.Equal(t, now, task.CreatedAt)

		mockDB.AssertExpectations(t)
	})

	t.Run("missing description rejected", func(t *testing.T) {
		deps := CreateTestDependencies(&MockDB{}, &MockRedis{})

		controller := NewTaskController(deps)
		_, err := controller.CreateTask(entity.TaskCreate{EmployeeID: 3})

		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestTaskController_EmployeeTasks(t *testing.T) {
	mockDB := &MockDB{}
	deps := CreateTestDependencies(mockDB, &MockRedis{})

	now := time.Now()
	rows := NewMockRows([][]interface{}{
		{uint64(2), uint64(3), "Review PR", "Pending", now},
		{uint64(1), uint64(3), "Write report", "Completed", now},
	}, nil, TaskFieldDescriptions)

	mockDB.On("Query", mock.Anything, mock.AnythingOfType("string"), uint64(3)).Return(rows, nil)

	controller := NewTaskController(deps)
	tasks, err := controller.EmployeeTasks(3)

	assert.NoError(t, err)
	assert.Len(t, tasks, 2)
	assert.Equal(t, "Review PR", tasks[0].Description)

	mockDB.AssertExpectations(t)
}

func TestTaskController_UpdateTask(t *testing.T) {
	statusCompleted := "Completed"
	statusBogus := "Started"
	description := "Refine report"

	tests := []struct {
		name        string
		upd         entity.TaskUpdate
		setupMocks  func(*MockDB)
		expectedErr error
	}{
		{
			name: "status update",
			upd:  entity.TaskUpdate{Status: &statusCompleted},
			setupMocks: func(mockDB *MockDB) {
				mockDB.On("Exec", mock.Anything, mock.AnythingOfType("string"), "Completed", uint64(1)).
					Return(NewMockCommandTag(1), nil)
			},
		},
		{
			name: "description and status update",
			upd:  entity.TaskUpdate{Description: &description, Status: &statusCompleted},
			setupMocks: func(mockDB *MockDB) {
				mockDB.On("Exec", mock.Anything, mock.AnythingOfType("string"), "Refine report", "Completed", uint64(1)).
					Return(NewMockCommandTag(1), nil)
			},
		},
		{
			name:        "unknown status rejected",
			upd:         entity.TaskUpdate{Status: &statusBogus},
			setupMocks:  func(*MockDB) {},
			expectedErr: ErrInvalidInput,
		},
		{
			name:        "empty update rejected",
			upd:         entity.TaskUpdate{},
			setupMocks:  func(*MockDB) {},
			expectedErr: ErrInvalidInput,
		},
		{
			name: "task not found",
			upd:  entity.TaskUpdate{Status: &statusCompleted},
			setupMocks: func(mockDB *MockDB) {
				mockDB.On("Exec", mock.Anything, mock.AnythingOfType("string"), "Completed", uint64(1)).
					Return(NewMockCommandTag(0), nil)
			},
			expectedErr: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockDB := &MockDB{}
			deps := CreateTestDependencies(mockDB, &MockRedis{})

			tt.setupMocks(mockDB)

			controller := NewTaskController(deps)
			err := controller.UpdateTask(1, tt.upd)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}

			mockDB.AssertExpectations(t)
		})
	}
}

func TestTaskController_DeleteTask(t *testing.T) {
	t.Run("completed task deleted", func(t *testing.T) {
		mockDB := &MockDB{}
		deps := CreateTestDependencies(mockDB, &MockRedis{})

		mockDB.On("Exec", mock.Anything, mock.AnythingOfType("string"), uint64(1)).
			Return(NewMockCommandTag(1), nil)

		controller := NewTaskController(deps)
		err := controller.DeleteTask(1)

		assert.NoError(t, err)

		mockDB.AssertExpectations(t)
	})

	t.Run("pending task refused", func(t *testing.T) {
		mockDB := &MockDB{}
		deps := CreateTestDependencies(mockDB, &MockRedis{})

		mockDB.On("Exec", mock.Anything, mock.AnythingOfType("string"), uint64(1)).
			Return(NewMockCommandTag(0), nil)

		controller := NewTaskController(deps)
		err := controller.DeleteTask(1)

		assert.ErrorIs(t, err, ErrTaskNotCompleted)

		mockDB.AssertExpectations(t)
	})
}
