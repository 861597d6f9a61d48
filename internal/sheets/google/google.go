package google

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	ports "moneymanager/internal/sheets"

	gdrive "google.golang.org/api/drive/v3"
	goption "google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"
)

const spreadsheetMIME = "application/vnd.google-apps.spreadsheet"

// Client talks to Google Sheets for table contents and to Google Drive for
// lookup-by-name and sharing grants. One Client serves every user ledger.
type Client struct {
	sheets *gsheet.Service
	drive  *gdrive.Service
}

// Ensure interface conformance
var (
	_ ports.Store  = (*Client)(nil)
	_ ports.Sharer = (*Client)(nil)
)

// NewFromEnv creates a client using Service Account credentials taken from
// GOOGLE_SERVICE_ACCOUNT_JSON, GOOGLE_SERVICE_ACCOUNT_FILE, or
// GOOGLE_APPLICATION_CREDENTIALS.
func NewFromEnv(ctx context.Context) (*Client, error) {
	credentialsJSON, err := credentialsFromEnv(ctx)
	if err != nil {
		return nil, err
	}

	sheetsSvc, err := gsheet.NewService(ctx,
		goption.WithCredentialsJSON(credentialsJSON),
		goption.WithScopes(gsheet.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}

	driveSvc, err := gdrive.NewService(ctx,
		goption.WithCredentialsJSON(credentialsJSON),
		goption.WithScopes(gdrive.DriveScope))
	if err != nil {
		return nil, fmt.Errorf("create drive service: %w", err)
	}

	return &Client{sheets: sheetsSvc, drive: driveSvc}, nil
}

func credentialsFromEnv(ctx context.Context) ([]byte, error) {
	serviceAccountJSON := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_JSON"))
	serviceAccountFile := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_FILE"))
	if serviceAccountJSON == "" && serviceAccountFile == "" {
		serviceAccountFile = strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"))
	}

	switch {
	case serviceAccountJSON != "":
		slog.InfoContext(ctx, "Using inline Service Account credentials", "json_length", len(serviceAccountJSON))
		return []byte(serviceAccountJSON), nil
	case serviceAccountFile != "":
		credentialsJSON, err := os.ReadFile(serviceAccountFile)
		if err != nil {
			return nil, fmt.Errorf("read service account file: %w", err)
		}
		slog.InfoContext(ctx, "Read Service Account credentials from file", "path", serviceAccountFile, "size", len(credentialsJSON))
		return credentialsJSON, nil
	default:
		return nil, errors.New("missing service account credentials (set GOOGLE_SERVICE_ACCOUNT_JSON, GOOGLE_SERVICE_ACCOUNT_FILE, or GOOGLE_APPLICATION_CREDENTIALS)")
	}
}

// Open finds the spreadsheet with the given name via a Drive query. Returns
// ports.ErrNotFound when no spreadsheet with that name exists.
func (c *Client) Open(ctx context.Context, name string) (ports.Ledger, error) {
	query := fmt.Sprintf("name = '%s' and mimeType = '%s' and trashed = false",
		escapeQueryTerm(name), spreadsheetMIME)
	list, err := c.drive.Files.List().
		Q(query).
		Fields("files(id, name)").
		PageSize(1).
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("lookup spreadsheet %q: %w", name, err)
	}
	if len(list.Files) == 0 {
		return nil, ports.ErrNotFound
	}
	return &Table{client: c, id: list.Files[0].Id, name: name}, nil
}

// Create makes a new spreadsheet titled name and writes header as row 1.
func (c *Client) Create(ctx context.Context, name string, header []string) (ports.Ledger, error) {
	ss, err := c.sheets.Spreadsheets.Create(&gsheet.Spreadsheet{
		Properties: &gsheet.SpreadsheetProperties{Title: name},
	}).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("create spreadsheet %q: %w", name, err)
	}

	headerRow := make([]any, len(header))
	for i, h := range header {
		headerRow[i] = h
	}
	vr := &gsheet.ValueRange{Values: [][]any{headerRow}}
	_, err = c.sheets.Spreadsheets.Values.Update(ss.SpreadsheetId, "A1", vr).
		ValueInputOption("RAW").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("write header row for %q: %w", name, err)
	}

	slog.InfoContext(ctx, "Created spreadsheet", "name", name, "spreadsheet_id", ss.SpreadsheetId)
	return &Table{client: c, id: ss.SpreadsheetId, name: name}, nil
}

// Share grants write access on the spreadsheet to the given address and sends
// the notification email so the recipient gets a link.
func (c *Client) Share(ctx context.Context, ledgerID, email string) error {
	perm := &gdrive.Permission{
		Type:         "user",
		Role:         "writer",
		EmailAddress: email,
	}
	_, err := c.drive.Permissions.Create(ledgerID, perm).
		SendNotificationEmail(true).
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("share spreadsheet %s with %s: %w", ledgerID, email, err)
	}
	return nil
}

// escapeQueryTerm escapes a string literal for a Drive search query.
func escapeQueryTerm(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `'`, `\'`)
}
