package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"

	"github.com/zipcast/zipcast/internal/weather"
)

// Schema is the DDL for the weather_daily table. The uniqueness constraint on
// (date_local, zip) is what makes Upsert idempotent; created_at keeps its
// first-insert value because the upsert never touches it.
const Schema = `
CREATE TABLE IF NOT EXISTS weather_daily (
    date_local DATE NOT NULL,
    zip VARCHAR(10) NOT NULL,
    lat DECIMAL(9,6) NOT NULL,
    lon DECIMAL(9,6) NOT NULL,
    ` + "`condition`" + ` VARCHAR(64) NOT NULL,
    temp_high_f DECIMAL(4,1) NOT NULL,
    temp_low_f DECIMAL(4,1) NOT NULL,
    precip_mm DECIMAL(6,1) NOT NULL,
    wind_max_mph DECIMAL(5,1) NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    UNIQUE KEY uq_weather_daily (date_local, zip)
)`

const upsertSQL = "INSERT INTO weather_daily" +
	" (date_local, zip, lat, lon, `condition`, temp_high_f, temp_low_f, precip_mm, wind_max_mph)" +
	" VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)" +
	" ON DUPLICATE KEY UPDATE" +
	" lat = VALUES(lat), lon = VALUES(lon), `condition` = VALUES(`condition`)," +
	" temp_high_f = VALUES(temp_high_f), temp_low_f = VALUES(temp_low_f)," +
	" precip_mm = VALUES(precip_mm), wind_max_mph = VALUES(wind_max_mph)"

const getSQL = "SELECT date_local, zip, lat, lon, `condition`, temp_high_f, temp_low_f, precip_mm, wind_max_mph, created_at" +
	" FROM weather_daily WHERE zip = ? AND date_local = ?"

// Config holds the relational connection settings.
type Config struct {
	Host     string
	Port     string
	User     string
	Password string
	Database string
}

// MySQLStore is the MySQL-backed implementation of weather.Store.
type MySQLStore struct {
	db *sql.DB
}

// NewMySQLStore wraps an existing connection pool. Used directly by tests.
func NewMySQLStore(db *sql.DB) *MySQLStore {
	return &MySQLStore{db: db}
}

// Open connects to MySQL and verifies the connection with a short ping.
func Open(cfg Config) (*MySQLStore, error) {
	dsn := mysql.NewConfig()
	dsn.Net = "tcp"
	dsn.Addr = cfg.Host + ":" + cfg.Port
	dsn.User = cfg.User
	dsn.Passwd = cfg.Password
	dsn.DBName = cfg.Database
	dsn.ParseTime = true

	db, err := sql.Open("mysql", dsn.FormatDSN())
	if err != nil {
		return nil, fmt.Errorf("%w: open mysql: %v", weather.ErrPersistence, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: ping mysql: %v", weather.ErrPersistence, err)
	}

	return &MySQLStore{db: db}, nil
}

// Close releases the underlying connection pool.
func (s *MySQLStore) Close() error {
	return s.db.Close()
}

// InitSchema creates the weather_daily table if it does not exist.
func (s *MySQLStore) InitSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("%w: create weather_daily: %v", weather.ErrPersistence, err)
	}
	return nil
}

// Upsert inserts a row for (Date, Zip) or overwrites the non-key fields of an
// existing row for the same key. The single statement is atomic; created_at
// is deliberately absent from the update list.
func (s *MySQLStore) Upsert(ctx context.Context, rec weather.DailyRecord) error {
	_, err := s.db.ExecContext(ctx, upsertSQL,
		rec.Date, rec.Zip,
		rec.Coords.Lat, rec.Coords.Lon,
		rec.Condition,
		rec.TempHighF, rec.TempLowF,
		rec.PrecipMM, rec.WindMaxMPH,
	)
	if err != nil {
		return fmt.Errorf("%w: upsert %s: %v", weather.ErrPersistence, rec.Key(), err)
	}
	return nil
}

// Get returns the stored record for the exact (zip, date) key. A missing row
// is a normal result and surfaces as weather.ErrNotFound.
func (s *MySQLStore) Get(ctx context.Context, zip, date string) (weather.DailyRecord, error) {
	var (
		rec     weather.DailyRecord
		dbDate  time.Time
		created time.Time
	)

	row := s.db.QueryRowContext(ctx, getSQL, zip, date)
	err := row.Scan(
		&dbDate, &rec.Zip,
		&rec.Coords.Lat, &rec.Coords.Lon,
		&rec.Condition,
		&rec.TempHighF, &rec.TempLowF,
		&rec.PrecipMM, &rec.WindMaxMPH,
		&created,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return weather.DailyRecord{}, fmt.Errorf("%w: %s:%s", weather.ErrNotFound, zip, date)
	}
	if err != nil {
		return weather.DailyRecord{}, fmt.Errorf("%w: get %s:%s: %v", weather.ErrPersistence, zip, date, err)
	}

	rec.Date = dbDate.Format("2006-01-02")
	rec.CreatedAt = created
	return rec, nil
}
