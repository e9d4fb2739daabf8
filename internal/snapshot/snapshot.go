// Package snapshot persists exported MoneyMoney data in a local SQLite
// database so repeated CLI runs can be inspected and compared without
// driving the application again.
package snapshot

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	moneymoney "github.com/gronke/go-moneymoney"
)

const timeFormat = time.RFC3339

const schema = `
CREATE TABLE IF NOT EXISTS account_snapshots (
	taken_at       TEXT    NOT NULL,
	uuid           TEXT    NOT NULL,
	name           TEXT    NOT NULL,
	account_number TEXT    NOT NULL,
	bank_code      TEXT    NOT NULL,
	account_type   TEXT    NOT NULL,
	balance        REAL    NOT NULL,
	currency       TEXT    NOT NULL,
	account_group  INTEGER NOT NULL,
	portfolio      INTEGER NOT NULL,
	PRIMARY KEY (taken_at, uuid)
);

CREATE TABLE IF NOT EXISTS transaction_snapshots (
	taken_at      TEXT    NOT NULL,
	id            INTEGER NOT NULL,
	booking_date  TEXT    NOT NULL,
	value_date    TEXT    NOT NULL,
	name          TEXT    NOT NULL,
	purpose       TEXT    NOT NULL,
	amount        REAL    NOT NULL,
	currency      TEXT    NOT NULL,
	account_uuid  TEXT    NOT NULL,
	category_uuid TEXT    NOT NULL,
	booked        INTEGER NOT NULL,
	checkmark     INTEGER NOT NULL,
	comment       TEXT    NOT NULL,
	PRIMARY KEY (taken_at, id)
);
`

// Store is a snapshot database.
type Store struct {
	db *sql.DB
}

// Open opens (and if needed creates) the snapshot database at path.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create snapshot directory %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("open snapshot database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect to snapshot database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create snapshot schema: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// SaveAccounts records the accounts of one export run under takenAt.
func (s *Store) SaveAccounts(takenAt time.Time, accounts []moneymoney.Account) error {
	return s.inTx(func(tx *sql.Tx) error {
		stmt, err := tx.Prepare(`
			INSERT INTO account_snapshots (
				taken_at, uuid, name, account_number, bank_code,
				account_type, balance, currency, account_group, portfolio
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		taken := takenAt.UTC().Format(timeFormat)
		for _, a := range accounts {
			_, err := stmt.Exec(
				taken, a.UUID.String(), a.Name, a.AccountNumber, a.BankCode,
				a.Type.String(), a.Balance.Amount, a.Balance.Currency.String(),
				a.Group, a.Portfolio,
			)
			if err != nil {
				return fmt.Errorf("insert account %s: %w", a.UUID, err)
			}
		}
		return nil
	})
}

// SaveTransactions records the transactions of one export run under
// takenAt.
func (s *Store) SaveTransactions(takenAt time.Time, transactions []moneymoney.Transaction) error {
	return s.inTx(func(tx *sql.Tx) error {
		stmt, err := tx.Prepare(`
			INSERT INTO transaction_snapshots (
				taken_at, id, booking_date, value_date, name, purpose,
				amount, currency, account_uuid, category_uuid,
				booked, checkmark, comment
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		taken := takenAt.UTC().Format(timeFormat)
		for _, t := range transactions {
			_, err := stmt.Exec(
				taken, t.ID,
				t.BookingDate.UTC().Format(timeFormat),
				t.ValueDate.UTC().Format(timeFormat),
				t.Name, t.Purpose, t.Amount, t.Currency,
				t.AccountUUID.String(), t.CategoryUUID.String(),
				t.Booked, t.Checkmark, t.Comment,
			)
			if err != nil {
				return fmt.Errorf("insert transaction %d: %w", t.ID, err)
			}
		}
		return nil
	})
}

// AccountRow is a stored account snapshot line.
type AccountRow struct {
	TakenAt       time.Time
	UUID          string
	Name          string
	AccountNumber string
	BankCode      string
	AccountType   string
	Balance       float64
	Currency      string
	Group         bool
	Portfolio     bool
}

// Times lists the distinct snapshot timestamps, oldest first.
func (s *Store) Times() ([]time.Time, error) {
	rows, err := s.db.Query(`
		SELECT DISTINCT taken_at FROM account_snapshots
		UNION
		SELECT DISTINCT taken_at FROM transaction_snapshots
		ORDER BY taken_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var times []time.Time
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		t, err := time.Parse(timeFormat, raw)
		if err != nil {
			return nil, fmt.Errorf("parse snapshot time %q: %w", raw, err)
		}
		times = append(times, t)
	}
	return times, rows.Err()
}

// AccountsAt returns the account rows recorded at takenAt.
func (s *Store) AccountsAt(takenAt time.Time) ([]AccountRow, error) {
	rows, err := s.db.Query(`
		SELECT taken_at, uuid, name, account_number, bank_code,
		       account_type, balance, currency, account_group, portfolio
		FROM account_snapshots
		WHERE taken_at = ?
		ORDER BY name`, takenAt.UTC().Format(timeFormat))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []AccountRow
	for rows.Next() {
		var r AccountRow
		var raw string
		err := rows.Scan(
			&raw, &r.UUID, &r.Name, &r.AccountNumber, &r.BankCode,
			&r.AccountType, &r.Balance, &r.Currency, &r.Group, &r.Portfolio,
		)
		if err != nil {
			return nil, err
		}
		if r.TakenAt, err = time.Parse(timeFormat, raw); err != nil {
			return nil, fmt.Errorf("parse snapshot time %q: %w", raw, err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *Store) inTx(fn func(*sql.Tx) error) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("tx err: %v, rollback err: %v", err, rbErr)
		}
		return err
	}
	return tx.Commit()
}
