package infra

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockGorm(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		DisableAutomaticPing: true,
	})
	if err != nil {
		t.Fatalf("gorm.Open error: %v", err)
	}
	return gdb, mock
}

func TestDBProber_NilDB(t *testing.T) {
	t.Parallel()

	p := NewDBProber(nil)
	if p.Connected(context.Background()) {
		t.Fatal("nil database reported as connected")
	}
}

func TestDBProber_PingOK(t *testing.T) {
	gdb, mock := newMockGorm(t)
	mock.ExpectPing()

	p := NewDBProber(gdb)
	if !p.Connected(context.Background()) {
		t.Fatal("healthy database reported as disconnected")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDBProber_PingFails(t *testing.T) {
	gdb, mock := newMockGorm(t)
	mock.ExpectPing().WillReturnError(errors.New("connection refused"))

	p := NewDBProber(gdb)
	if p.Connected(context.Background()) {
		t.Fatal("unreachable database reported as connected")
	}
}
