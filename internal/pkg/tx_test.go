package pkg

import (
	"context"
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

type txRecord struct {
	ID   uint `gorm:"primaryKey"`
	Name string
}

func openTxTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("gorm.Open: %v", err)
	}
	if err := db.AutoMigrate(&txRecord{}); err != nil {
		t.Fatalf("AutoMigrate: %v", err)
	}
	return db
}

func countRecords(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	if err := db.Model(&txRecord{}).Count(&n).Error; err != nil {
		t.Fatalf("Count: %v", err)
	}
	return n
}

func TestWithTx_CommitsOnSuccess(t *testing.T) {
	db := openTxTestDB(t)

	err := WithTx(context.Background(), db, func(tx *gorm.DB) error {
		return tx.Create(&txRecord{Name: "committed"}).Error
	})
	if err != nil {
		t.Fatalf("WithTx() error = %v", err)
	}

	if n := countRecords(t, db); n != 1 {
		t.Fatalf("records = %d, want 1 after commit", n)
	}
}

func TestWithTx_RollsBackOnError(t *testing.T) {
	db := openTxTestDB(t)
	boom := errors.New("business rule violated")

	err := WithTx(context.Background(), db, func(tx *gorm.DB) error {
		if err := tx.Create(&txRecord{Name: "doomed"}).Error; err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("WithTx() error = %v, want %v", err, boom)
	}

	if n := countRecords(t, db); n != 0 {
		t.Fatalf("records = %d, want rollback to drop the insert", n)
	}
}

func TestWithTx_RollsBackAndRepanics(t *testing.T) {
	db := openTxTestDB(t)

	func() {
		defer func() {
			if r := recover(); r != "midway failure" {
				t.Fatalf("recover() = %v, want re-panic with original value", r)
			}
		}()
		_ = WithTx(context.Background(), db, func(tx *gorm.DB) error {
			if err := tx.Create(&txRecord{Name: "doomed"}).Error; err != nil {
				return err
			}
			panic("midway failure")
		})
	}()

	if n := countRecords(t, db); n != 0 {
		t.Fatalf("records = %d, want rollback on panic", n)
	}
}

func TestWithTx_CancelledContext(t *testing.T) {
	db := openTxTestDB(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := WithTx(ctx, db, func(tx *gorm.DB) error {
		return tx.Create(&txRecord{Name: "never"}).Error
	})
	if err == nil {
		t.Fatal("WithTx() error = nil, want failure for cancelled context")
	}

	if n := countRecords(t, db); n != 0 {
		t.Fatalf("records = %d, want none", n)
	}
}
