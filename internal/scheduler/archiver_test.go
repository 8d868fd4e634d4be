package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"stafftrack_service/internal/config"
	"stafftrack_service/internal/controllers"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockDB struct {
	mock.Mock
}

func (m *mockDB) Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error) {
	mockArgs := append([]interface{}{ctx, sql}, args...)
	callArgs := m.Called(mockArgs...)
	return callArgs.Get(0).(pgx.Rows), callArgs.Error(1)
}

func (m *mockDB) QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row {
	mockArgs := append([]interface{}{ctx, sql}, args...)
	callArgs := m.Called(mockArgs...)
	return callArgs.Get(0).(pgx.Row)
}

func (m *mockDB) Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error) {
	mockArgs := append([]interface{}{ctx, sql}, args...)
	callArgs := m.Called(mockArgs...)
	return callArgs.Get(0).(pgconn.CommandTag), callArgs.Error(1)
}

func (m *mockDB) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	return args.Get(0).(pgx.Tx), args.Error(1)
}

type mockTx struct {
	mock.Mock
}

func (m *mockTx) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *mockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockTx) Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error) {
	mockArgs := append([]interface{}{ctx, sql}, args...)
	callArgs := m.Called(mockArgs...)
	return callArgs.Get(0).(pgx.Rows), callArgs.Error(1)
}

func (m *mockTx) QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row {
	mockArgs := append([]interface{}{ctx, sql}, args...)
	callArgs := m.Called(mockArgs...)
	return callArgs.Get(0).(pgx.Row)
}

func (m *mockTx) Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error) {
	mockArgs := append([]interface{}{ctx, sql}, args...)
	callArgs := m.Called(mockArgs...)
	return callArgs.Get(0).(pgconn.CommandTag), callArgs.Error(1)
}

func (m *mockTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	args := m.Called(ctx, tableName, columnNames, rowSrc)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults {
	args := m.Called(ctx, b)
	return args.Get(0).(pgx.BatchResults)
}

func (m *mockTx) LargeObjects() pgx.LargeObjects {
	return pgx.LargeObjects{}
}

func (m *mockTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	args := m.Called(ctx, name, sql)
	return args.Get(0).(*pgconn.StatementDescription), args.Error(1)
}

func (m *mockTx) Conn() *pgx.Conn {
	return nil
}

func testDeps(db *mockDB) *controllers.Dependens {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	cfg := &config.Config{}
	cfg.Archive.Schedule = "0 5 * * *"

	return &controllers.Dependens{
		DB:     db,
		Logger: logger,
		Config: cfg,
	}
}

func TestArchiver_Sweep(t *testing.T) {
	t.Run("copies and clears in one transaction", func(t *testing.T) {
		db := &mockDB{}
		tx := &mockTx{}

		db.On("Begin", mock.Anything).Return(tx, nil)
		tx.On("Exec", mock.Anything, mock.AnythingOfType("string")).
			Return(pgconn.NewCommandTag("INSERT 0 5"), nil).Once()
		tx.On("Exec", mock.Anything, mock.AnythingOfType("string")).
			Return(pgconn.NewCommandTag("DELETE 5"), nil).Once()
		tx.On("Commit", mock.Anything).Return(nil)
		tx.On("Rollback", mock.Anything).Return(errors.New("tx is closed"))

		archiver := NewArchiver(testDeps(db))
		err := archiver.Sweep(context.Background())

		assert.NoError(t, err)

		db.AssertExpectations(t)
		tx.AssertExpectations(t)
	})

	t.Run("copy failure rolls back without deleting", func(t *testing.T) {
		db := &mockDB{}
		tx := &mockTx{}

		db.On("Begin", mock.Anything).Return(tx, nil)
		tx.On("Exec", mock.Anything, mock.AnythingOfType("string")).
			Return(pgconn.NewCommandTag(""), errors.New("insert failed")).Once()
		tx.On("Rollback", mock.Anything).Return(nil)

		archiver := NewArchiver(testDeps(db))
		err := archiver.Sweep(context.Background())

		assert.Error(t, err)

		db.AssertExpectations(t)
		tx.AssertExpectations(t)
	})

	t.Run("commit failure surfaces the error", func(t *testing.T) {
		db := &mockDB{}
		tx := &mockTx{}

		db.On("Begin", mock.Anything).Return(tx, nil)
		tx.On("Exec", mock.Anything, mock.AnythingOfType("string")).
			Return(pgconn.NewCommandTag("INSERT 0 2"), nil).Once()
		tx.On("Exec", mock.Anything, mock.AnythingOfType("string")).
			Return(pgconn.NewCommandTag("DELETE 2"), nil).Once()
		tx.On("Commit", mock.Anything).Return(errors.New("commit failed"))
		tx.On("Rollback", mock.Anything).Return(nil)

		archiver := NewArchiver(testDeps(db))
		err := archiver.Sweep(context.Background())

		assert.Error(t, err)

		db.AssertExpectations(t)
		tx.AssertExpectations(t)
	})
}

func TestArchiver_Start(t *testing.T) {
	t.Run("rejects malformed schedule", func(t *testing.T) {
		db := &mockDB{}
		deps := testDeps(db)
		deps.Config.Archive.Schedule = "not a cron expr"

		archiver := NewArchiver(deps)
		err := archiver.Start()

		assert.Error(t, err)
	})

	t.Run("accepts configured schedule", func(t *testing.T) {
		db := &mockDB{}

		archiver := NewArchiver(testDeps(db))
		err := archiver.Start()

		assert.NoError(t, err)
		archiver.Stop()
	})
}
