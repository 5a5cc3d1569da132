// Copyright 2026 planilhas. All rights reserved.
// Use of this source code is governed by an MIT-style license
// that can be found in the LICENSE file.

/*
Package sheets serves the worksheets of a planning spreadsheet stored in Google Sheets as
a single JSON document.

Each GET /all-data request authenticates with a service account, reads the configured tabs
concurrently, converts each tab into a list of records keyed by the tab's header row and
derives two consolidated lists:

  - receitasDeTarefas, the inspection and replacement recipes with a common 'Nome da Tarefa' field
  - pedidosDeCompraPDs, the purchased and generated purchase orders tagged with a 'Status' field

A tab that cannot be read is returned as an empty list and logged. Authentication and
configuration errors fail the request with an HTTP 500.

sheets-api supports the following commands:

  - serve, to run the HTTP server (the default)
  - get, to retrieve the aggregated data to a JSON, XLSX or TSV file
  - check, to verify that the configured tabs exist in the spreadsheet
  - config, to display the effective configuration
  - version, to display the version
*/
package sheets
