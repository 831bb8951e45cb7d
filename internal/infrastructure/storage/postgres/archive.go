package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/klauspost/compress/zstd"

	"maree/internal/core/id"
	"maree/internal/domain/demand"
)

// CompressionAlgo specifies the compression algorithm used.
type CompressionAlgo string

const (
	CompressionNone CompressionAlgo = "none"
	CompressionZstd CompressionAlgo = "zstd"
)

// ArchivedReport is one stored pipeline report.
type ArchivedReport struct {
	ID               id.ID           `db:"id"`
	HolidayID        id.ID           `db:"holiday_id"`
	HolidayName      string          `db:"holiday_name"`
	Status           string          `db:"status"`
	TotalOrders      int             `db:"total_orders"`
	Body             json.RawMessage `db:"body"`
	BodyCompressed   []byte          `db:"body_compressed"`
	CompressionAlgo  CompressionAlgo `db:"compression_algo"`
	GeneratedAt      time.Time       `db:"generated_at"`
	ArchivedAt       time.Time       `db:"archived_at"`
}

// ReportArchive persists every generated report so past purchasing
// signals stay auditable. It implements notify.Sink.
type ReportArchive struct {
	txManager         *TxManager
	encoder           *zstd.Encoder
	decoder           *zstd.Decoder
	compressThreshold int // bytes
}

// NewReportArchive creates a report archive.
func NewReportArchive(txManager *TxManager) (*ReportArchive, error) {
	encoder, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, fmt.Errorf("create zstd encoder: %w", err)
	}

	decoder, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("create zstd decoder: %w", err)
	}

	return &ReportArchive{
		txManager:         txManager,
		encoder:           encoder,
		decoder:           decoder,
		compressThreshold: 8 * 1024,
	}, nil
}

// Name implements notify.Sink.
func (a *ReportArchive) Name() string { return "archive" }

// Deliver implements notify.Sink: serializes and stores the report.
func (a *ReportArchive) Deliver(ctx context.Context, report demand.Report) error {
	body, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	entry := ArchivedReport{
		ID:              id.New(),
		HolidayID:       report.Holiday.ID,
		HolidayName:     report.Holiday.Name,
		Status:          string(report.Status),
		TotalOrders:     report.TotalOrders,
		Body:            body,
		CompressionAlgo: CompressionNone,
		GeneratedAt:     report.GeneratedAt,
		ArchivedAt:      time.Now().UTC(),
	}

	// Compress large bodies; small reports stay queryable as plain JSONB.
	if len(body) > a.compressThreshold {
		entry.BodyCompressed = a.encoder.EncodeAll(body, nil)
		entry.Body = nil
		entry.CompressionAlgo = CompressionZstd
	}

	sql := `
		INSERT INTO report_archive (
			id, holiday_id, holiday_name, status, total_orders,
			body, body_compressed, compression_algo,
			generated_at, archived_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	querier := a.txManager.GetQuerier(ctx)
	_, err = querier.Exec(ctx, sql,
		entry.ID, entry.HolidayID, entry.HolidayName, entry.Status, entry.TotalOrders,
		entry.Body, entry.BodyCompressed, entry.CompressionAlgo,
		entry.GeneratedAt, entry.ArchivedAt,
	)
	if err != nil {
		return fmt.Errorf("insert archived report: %w", err)
	}
	return nil
}

// GetByHoliday retrieves archived reports for a holiday, newest first.
func (a *ReportArchive) GetByHoliday(ctx context.Context, holidayID id.ID, limit int) ([]demand.Report, error) {
	if limit <= 0 {
		limit = 20
	}

	sql := `
		SELECT body, body_compressed, compression_algo
		FROM report_archive
		WHERE holiday_id = $1
		ORDER BY archived_at DESC
		LIMIT $2
	`

	querier := a.txManager.GetQuerier(ctx)
	rows, err := querier.Query(ctx, sql, holidayID, limit)
	if err != nil {
		return nil, fmt.Errorf("query archived reports: %w", err)
	}
	defer rows.Close()

	var reports []demand.Report
	for rows.Next() {
		var body []byte
		var compressed []byte
		var algo CompressionAlgo
		if err := rows.Scan(&body, &compressed, &algo); err != nil {
			return nil, fmt.Errorf("scan archived report: %w", err)
		}

		if algo == CompressionZstd {
			body, err = a.decoder.DecodeAll(compressed, nil)
			if err != nil {
				return nil, fmt.Errorf("decompress report: %w", err)
			}
		}

		var report demand.Report
		if err := json.Unmarshal(body, &report); err != nil {
			return nil, fmt.Errorf("unmarshal report: %w", err)
		}
		reports = append(reports, report)
	}
	return reports, rows.Err()
}
