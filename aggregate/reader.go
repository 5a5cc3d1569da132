package aggregate

import (
	"context"
	"fmt"
	"time"

	"github.com/planilhas/sheets-api/log"
	"github.com/planilhas/sheets-api/table"
)

// Fetcher retrieves the raw cell grid for a worksheet tab.
type Fetcher interface {
	Values(ctx context.Context, spreadsheet, tab string) ([][]any, error)
}

// Authenticator creates an authorised Fetcher. It is invoked once per request.
type Authenticator interface {
	Authorize(ctx context.Context) (Fetcher, error)
}

// Result is the outcome of reading a single tab: either the records or the reason the tab
// could not be read.
type Result struct {
	Tab     string
	Records []table.Record
	Err     error
}

// Read fetches a tab and converts it to records. It never fails: fetch errors (and panics
// raised by the fetcher) are returned in Result.Err.
func Read(ctx context.Context, fetcher Fetcher, spreadsheet, tab string) (result Result) {
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			result = Result{
				Tab: tab,
				Err: fmt.Errorf("%v", r),
			}
		}
	}()

	rows, err := fetcher.Values(ctx, spreadsheet, tab)
	if err != nil {
		return Result{
			Tab: tab,
			Err: err,
		}
	}

	records := table.MakeRecords(rows)

	log.Debugf("read tab '%s': %v rows, %v records (%v)", tab, len(rows), len(records), time.Since(start).Round(time.Millisecond))

	return Result{
		Tab:     tab,
		Records: records,
	}
}

// Collapse returns the records for a successful read and an empty list for a failed read,
// logging the failure.
func (r Result) Collapse() []table.Record {
	if r.Err != nil {
		log.With("tab", r.Tab).Warnf("error reading tab \"%s\" (%v)", r.Tab, r.Err)
		return []table.Record{}
	}

	if r.Records == nil {
		return []table.Record{}
	}

	return r.Records
}
