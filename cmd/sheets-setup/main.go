// Command sheets-setup prepares the backing spreadsheet: it creates the
// Addresses and CheckIns worksheets when missing and writes their header
// rows. Run it once against a fresh spreadsheet before starting the server.
package main

import (
	"context"
	"log/slog"
	"os"

	"pickup/config"
	"pickup/internal/infra/persistence/sheets"

	"github.com/pkg/errors"
	sheetsapi "google.golang.org/api/sheets/v4"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if err := run(context.Background(), logger); err != nil {
		logger.Error("Setup failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := config.New()
	if err != nil {
		return err
	}

	client, err := sheets.NewClient(ctx, cfg.Sheets, logger)
	if err != nil {
		return err
	}

	svc := client.Service()
	spreadsheetID := client.SpreadsheetID()

	doc, err := svc.Spreadsheets.Get(spreadsheetID).Context(ctx).Do()
	if err != nil {
		return errors.Wrap(err, "failed to fetch spreadsheet")
	}

	existing := make(map[string]bool, len(doc.Sheets))
	for _, sheet := range doc.Sheets {
		existing[sheet.Properties.Title] = true
	}

	worksheets := []struct {
		title  string
		header []any
	}{
		{cfg.Sheets.AddressSheet, sheets.AddressHeader},
		{cfg.Sheets.CheckInSheet, sheets.CheckInHeader},
	}

	var requests []*sheetsapi.Request
	for _, ws := range worksheets {
		if existing[ws.title] {
			logger.Info("Worksheet already exists", slog.String("title", ws.title))
			continue
		}
		requests = append(requests, &sheetsapi.Request{
			AddSheet: &sheetsapi.AddSheetRequest{
				Properties: &sheetsapi.SheetProperties{Title: ws.title},
			},
		})
	}

	if len(requests) > 0 {
		_, err = svc.Spreadsheets.BatchUpdate(spreadsheetID, &sheetsapi.BatchUpdateSpreadsheetRequest{
			Requests: requests,
		}).Context(ctx).Do()
		if err != nil {
			return errors.Wrap(err, "failed to add worksheets")
		}
	}

	for _, ws := range worksheets {
		_, err = svc.Spreadsheets.Values.Update(spreadsheetID, ws.title+"!A1", &sheetsapi.ValueRange{
			Values: [][]any{ws.header},
		}).ValueInputOption("RAW").Context(ctx).Do()
		if err != nil {
			return errors.Wrapf(err, "failed to write header for %s", ws.title)
		}
		logger.Info("Worksheet ready", slog.String("title", ws.title))
	}

	return nil
}
