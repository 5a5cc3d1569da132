package google

import (
	"context"
	"fmt"
	"net/http"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/planilhas/sheets-api/aggregate"
)

// Sheets reads worksheet values through the Google Sheets v4 API.
type Sheets struct {
	service *sheets.Service
}

// Authenticator creates a Sheets client for each request from the configured credentials.
type Authenticator struct {
	Credentials string
	Scope       string
	Endpoint    string
}

func (a Authenticator) Authorize(ctx context.Context) (aggregate.Fetcher, error) {
	client, err := Authorize(ctx, a.Credentials, a.Scope)
	if err != nil {
		return nil, fmt.Errorf("authentication/authorization error (%w)", err)
	}

	s, err := NewSheets(ctx, client, a.Endpoint)
	if err != nil {
		return nil, err
	}

	return s, nil
}

func NewSheets(ctx context.Context, client *http.Client, endpoint string) (*Sheets, error) {
	options := []option.ClientOption{
		option.WithHTTPClient(client),
	}

	if endpoint != "" {
		options = append(options, option.WithEndpoint(endpoint))
	}

	service, err := sheets.NewService(ctx, options...)
	if err != nil {
		return nil, fmt.Errorf("unable to create new Sheets client (%w)", err)
	}

	return &Sheets{
		service: service,
	}, nil
}

// Values returns the cell values of a worksheet range as rows of cells.
func (s *Sheets) Values(ctx context.Context, spreadsheet, area string) ([][]any, error) {
	response, err := s.service.Spreadsheets.Values.Get(spreadsheet, area).Context(ctx).Do()
	if err != nil {
		return nil, err
	}

	return response.Values, nil
}

// Tabs returns the titles of the worksheets in a spreadsheet.
func (s *Sheets) Tabs(ctx context.Context, spreadsheet string) ([]string, error) {
	response, err := s.service.Spreadsheets.Get(spreadsheet).Fields("sheets.properties.title").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch spreadsheet (%w)", err)
	}

	tabs := []string{}
	for _, sheet := range response.Sheets {
		if sheet.Properties != nil {
			tabs = append(tabs, sheet.Properties.Title)
		}
	}

	return tabs, nil
}
