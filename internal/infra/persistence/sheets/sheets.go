// Package sheets implements the persistence layer on top of a Google
// Spreadsheet. The spreadsheet is an opaque external store: every read
// fetches a fresh snapshot of the worksheet, and there is no locking,
// transaction, or compare-and-swap across calls.
package sheets

import (
	"context"
	"fmt"
	"log/slog"

	"pickup/config"
	domainerrors "pickup/internal/domain/errors"
	"pickup/internal/domain/lifecycle"
	"pickup/internal/errors"

	"go.uber.org/fx"
	sheetsapi "google.golang.org/api/sheets/v4"
	"google.golang.org/api/option"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Context context.Context
	Config  *config.Config
	Logger  *slog.Logger
}

// Client wraps the Sheets API service for one spreadsheet document.
type Client struct {
	svc           *sheetsapi.Service
	spreadsheetID string
	logger        *slog.Logger
}

// New creates the Sheets API client and verifies the spreadsheet is
// reachable on startup.
func New(params Params) (*Client, error) {
	cfg := params.Config.Sheets

	opts := []option.ClientOption{
		option.WithScopes(sheetsapi.SpreadsheetsScope),
	}
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	svc, err := sheetsapi.NewService(params.Context, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Sheets API service")
	}

	client := &Client{
		svc:           svc,
		spreadsheetID: cfg.SpreadsheetID,
		logger:        params.Logger,
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if _, err := client.svc.Spreadsheets.Get(client.spreadsheetID).
				Fields("spreadsheetId").Context(ctx).Do(); err != nil {
				return errors.Wrap(err, "failed to reach spreadsheet")
			}
			client.logger.Info("Connected to spreadsheet",
				slog.String("spreadsheetId", client.spreadsheetID))

			return nil
		},
	})

	return client, nil
}

// NewClient builds a Client outside the fx lifecycle, for CLI use.
func NewClient(ctx context.Context, cfg *config.SheetsConfig, logger *slog.Logger) (*Client, error) {
	opts := []option.ClientOption{
		option.WithScopes(sheetsapi.SpreadsheetsScope),
	}
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	svc, err := sheetsapi.NewService(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Sheets API service")
	}

	return &Client{svc: svc, spreadsheetID: cfg.SpreadsheetID, logger: logger}, nil
}

// Service exposes the raw API service for administrative operations.
func (c *Client) Service() *sheetsapi.Service {
	return c.svc
}

// SpreadsheetID returns the configured document id.
func (c *Client) SpreadsheetID() string {
	return c.spreadsheetID
}

// dataRange is the A1 range of the data rows of a worksheet, skipping the
// header row.
func dataRange(sheet, lastColumn string) string {
	return fmt.Sprintf("%s!A2:%s", sheet, lastColumn)
}

// rowRange is the A1 range of a single data row. rowNum is 1-based and
// includes the header row, so the first data row is 2.
func rowRange(sheet string, rowNum int, lastColumn string) string {
	return fmt.Sprintf("%s!A%d:%s%d", sheet, rowNum, lastColumn, rowNum)
}

// values fetches a fresh snapshot of the given range.
func (c *Client) values(ctx context.Context, readRange string) ([][]any, error) {
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, readRange).
		Context(ctx).Do()
	if err != nil {
		return nil, domainerrors.NewStoreExecuteError(err, "failed to read range "+readRange)
	}

	return resp.Values, nil
}

// appendRow appends one row to the worksheet.
func (c *Client) appendRow(ctx context.Context, sheet string, row []any) error {
	_, err := c.svc.Spreadsheets.Values.Append(c.spreadsheetID, sheet+"!A:A",
		&sheetsapi.ValueRange{Values: [][]any{row}}).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to append row to "+sheet)
	}

	return nil
}

// updateRow overwrites one data row in place.
func (c *Client) updateRow(ctx context.Context, sheet string, rowNum int, lastColumn string, row []any) error {
	writeRange := rowRange(sheet, rowNum, lastColumn)
	_, err := c.svc.Spreadsheets.Values.Update(c.spreadsheetID, writeRange,
		&sheetsapi.ValueRange{Values: [][]any{row}}).
		ValueInputOption("RAW").
		Context(ctx).Do()
	if err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to update range "+writeRange)
	}

	return nil
}

// findRowByID scans the data rows for the row whose first cell equals id.
// Returns the row values and its 1-based row number.
func (c *Client) findRowByID(ctx context.Context, sheet, lastColumn, id string) ([]any, int, bool, error) {
	rows, err := c.values(ctx, dataRange(sheet, lastColumn))
	if err != nil {
		return nil, 0, false, err
	}

	for i, row := range rows {
		if cellString(row, 0) == id {
			return row, i + 2, true, nil
		}
	}

	return nil, 0, false, nil
}
