package aggregate

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/planilhas/sheets-api/config"
	"github.com/planilhas/sheets-api/table"
)

type Aggregator struct {
	Spreadsheet string
	Tabs        config.Tabs
	Merge       config.Merge

	// Maximum number of concurrent tab reads. 0 reads all tabs concurrently.
	Workers int
}

func NewAggregator(c *config.Config) *Aggregator {
	return &Aggregator{
		Spreadsheet: c.SpreadsheetID(),
		Tabs:        c.Tabs,
		Merge:       c.Merge,
		Workers:     c.Workers,
	}
}

// Aggregate reads every configured tab and assembles the response document.
func (a *Aggregator) Aggregate(ctx context.Context, fetcher Fetcher) (*Response, error) {
	return a.Assemble(a.Fetch(ctx, fetcher))
}

// Read reads every configured tab concurrently, returning the results in configuration
// order once all the reads have completed.
func (a *Aggregator) Read(ctx context.Context, fetcher Fetcher) []Result {
	tabs := a.Tabs.List()
	results := make([]Result, len(tabs))

	var g errgroup.Group
	if a.Workers > 0 {
		g.SetLimit(a.Workers)
	}

	for i, tab := range tabs {
		g.Go(func() error {
			results[i] = Read(ctx, fetcher, a.Spreadsheet, tab)
			return nil
		})
	}

	g.Wait()

	return results
}

// Fetch is Read with the failed tabs collapsed to empty lists.
func (a *Aggregator) Fetch(ctx context.Context, fetcher Fetcher) *ResultSet {
	rs := NewResultSet()
	for _, result := range a.Read(ctx, fetcher) {
		rs.Put(result.Tab, result.Collapse())
	}

	return rs
}

// Assemble builds the response document from the tab records. Every tab referenced by the
// configuration must be present in the result set.
func (a *Aggregator) Assemble(rs *ResultSet) (*Response, error) {
	var err error

	lookup := func(tab string) []table.Record {
		records, e := rs.Get(tab)
		if e != nil && err == nil {
			err = e
		}

		return records
	}

	response := Response{
		PlanoDeExecucao:              lookup(a.Tabs.PlanoDeExecucao),
		InventarioPPU:                lookup(a.Tabs.InventarioPPU),
		InventarioCentro:             lookup(a.Tabs.InventarioCentro),
		PriceList:                    lookup(a.Tabs.PriceList),
		Lisde:                        lookup(a.Tabs.Lisde),
		PoliticaDeEstoqueDeInspecoes: lookup(a.Tabs.PoliticaDeEstoque),
		DemandasDePIM:                lookup(a.Tabs.DemandasDePIM),
		ControleDeEntrada:            lookup(a.Tabs.ControleDeEntrada),
		OrdensDeServico:              lookup(a.Tabs.OrdensDeServico),
		Logins:                       lookup(a.Tabs.Login),
	}

	if err != nil {
		return nil, err
	}

	if response.ReceitasDeTarefas, err = Merge(rs, a.Merge.Tarefas); err != nil {
		return nil, fmt.Errorf("error merging '%s' (%w)", a.Merge.Tarefas.Field, err)
	}

	if response.PedidosDeCompraPDs, err = Merge(rs, a.Merge.Pedidos); err != nil {
		return nil, fmt.Errorf("error merging '%s' (%w)", a.Merge.Pedidos.Field, err)
	}

	return &response, nil
}
