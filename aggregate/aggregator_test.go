package aggregate

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planilhas/sheets-api/config"
	"github.com/planilhas/sheets-api/table"
)

func TestAggregate(t *testing.T) {
	f := fixture()

	response, err := aggregator().Aggregate(context.Background(), f)
	require.NoError(t, err)

	assert.Len(t, f.calls, 14)
	assert.ElementsMatch(t, config.DefaultTabs.List(), f.calls)

	assert.Equal(t, []table.Record{
		table.NewRecord("TAREFA", "Inspeção motor", "DATA", "2024-01-10"),
		table.NewRecord("TAREFA", "Troca filtro", "DATA", "2024-01-12"),
	}, response.PlanoDeExecucao)

	assert.Len(t, response.InventarioPPU, 1)
	assert.Empty(t, response.InventarioCentro)
	assert.Len(t, response.PriceList, 1)
	assert.Len(t, response.Lisde, 1)
	assert.Empty(t, response.PoliticaDeEstoqueDeInspecoes)
	assert.Len(t, response.DemandasDePIM, 1)
	assert.Len(t, response.ControleDeEntrada, 1)
	assert.Len(t, response.OrdensDeServico, 1)
	assert.Equal(t, []table.Record{table.NewRecord("usuario", "admin", "senha", "admin")}, response.Logins)
}

func TestAggregateReceitasDeTarefas(t *testing.T) {
	response, err := aggregator().Aggregate(context.Background(), fixture())
	require.NoError(t, err)

	expected := []table.Record{
		table.NewRecord("NOME_INSPECAO", "Inspeção A", "HORAS", "2", "Nome da Tarefa", "Inspeção A"),
		table.NewRecord("NOME_INSPECAO", "Inspeção B", "HORAS", "3", "Nome da Tarefa", "Inspeção B"),
		table.NewRecord("NOME_TROCA", "Troca de óleo", "PECA", "Óleo 15W40", "Nome da Tarefa", "Troca de óleo"),
	}

	assert.Equal(t, expected, response.ReceitasDeTarefas)
}

func TestAggregatePedidosDeCompraPDs(t *testing.T) {
	response, err := aggregator().Aggregate(context.Background(), fixture())
	require.NoError(t, err)

	expected := []table.Record{
		table.NewRecord("PD", "PD-001", "Valor", "100,00", "Status", "Pago"),
		table.NewRecord("PD", "PD-002", "Valor", "50,00", "Status", "Gerado"),
		table.NewRecord("PD", "PD-003", "Valor", "", "Status", "Gerado"),
	}

	assert.Equal(t, expected, response.PedidosDeCompraPDs)
}

func TestAggregateDoesNotModifyTabRecords(t *testing.T) {
	a := aggregator()
	rs := a.Fetch(context.Background(), fixture())

	_, err := a.Assemble(rs)
	require.NoError(t, err)

	records, err := rs.Get("PD Comprado")
	require.NoError(t, err)

	status, _ := records[0].Get("Status")
	assert.Equal(t, "?", status)
}

func TestAggregateWithFailedTab(t *testing.T) {
	f := fixture()
	f.errors["Receita Trocas"] = errors.New("connection reset by peer")

	response, err := aggregator().Aggregate(context.Background(), f)
	require.NoError(t, err)

	assert.Len(t, response.PlanoDeExecucao, 2)
	assert.Len(t, response.Logins, 1)
	assert.Len(t, response.ReceitasDeTarefas, 2)
	assert.Len(t, response.PedidosDeCompraPDs, 3)
}

func TestAggregateWithAllTabsFailing(t *testing.T) {
	f := &fake{}

	response, err := aggregator().Aggregate(context.Background(), f)
	require.NoError(t, err)

	b, err := json.Marshal(response)
	require.NoError(t, err)

	assert.NotContains(t, string(b), "null")
	for _, field := range response.Fields() {
		assert.NotNil(t, field.Records, field.Name)
		assert.Empty(t, field.Records, field.Name)
	}
}

func TestReadKeepsConfigurationOrder(t *testing.T) {
	f := fixture()
	f.errors["Lisde"] = errors.New("rate limited")

	results := aggregator().Read(context.Background(), f)

	require.Len(t, results, 14)
	for i, tab := range config.DefaultTabs.List() {
		assert.Equal(t, tab, results[i].Tab)
	}

	assert.EqualError(t, results[8].Err, "rate limited")
}

func TestReadIsConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	ready := make(chan struct{})

	wg.Add(14)
	go func() {
		wg.Wait()
		close(ready)
	}()

	f := fetcherFunc(func(ctx context.Context, spreadsheet, tab string) ([][]any, error) {
		wg.Done()

		select {
		case <-ready:
			return [][]any{{"A"}, {tab}}, nil

		case <-time.After(5 * time.Second):
			return nil, errors.New("timeout waiting for concurrent reads")
		}
	})

	for _, result := range aggregator().Read(context.Background(), f) {
		assert.NoError(t, result.Err)
	}
}

func TestReadWithWorkerLimit(t *testing.T) {
	var active int32
	var peak int32

	f := fetcherFunc(func(ctx context.Context, spreadsheet, tab string) ([][]any, error) {
		n := atomic.AddInt32(&active, 1)
		defer atomic.AddInt32(&active, -1)

		for {
			p := atomic.LoadInt32(&peak)
			if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
				break
			}
		}

		time.Sleep(5 * time.Millisecond)

		return [][]any{}, nil
	})

	a := aggregator()
	a.Workers = 3

	results := a.Read(context.Background(), f)

	assert.Len(t, results, 14)
	assert.LessOrEqual(t, atomic.LoadInt32(&peak), int32(3))
}

func TestAssembleWithMisconfiguredTab(t *testing.T) {
	a := aggregator()
	rs := a.Fetch(context.Background(), fixture())

	a.Tabs.Lisde = "Lisdee"

	_, err := a.Assemble(rs)
	assert.ErrorContains(t, err, "Lisdee")
}

func TestAssembleWithMisconfiguredMergeRule(t *testing.T) {
	a := aggregator()
	rs := a.Fetch(context.Background(), fixture())

	a.Merge.Pedidos.Sources = []config.MergeSource{{Tab: "PD Cancelado", Value: "Cancelado"}}

	_, err := a.Assemble(rs)
	assert.ErrorContains(t, err, "PD Cancelado")
}

func TestResponseJSON(t *testing.T) {
	response, err := aggregator().Aggregate(context.Background(), fixture())
	require.NoError(t, err)

	b, err := json.Marshal(response)
	require.NoError(t, err)

	fields := []string{
		"planoDeExecução", "inventárioPPU", "inventárioCentro", "priceList", "lisde",
		"politicaDeEstoqueDeInspeções", "demandasDePIM", "controleDeEntrada", "ordensDeServiço",
		"logins", "receitasDeTarefas", "pedidosDeCompraPDs",
	}

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.Len(t, decoded, len(fields))

	last := -1
	for _, field := range fields {
		ix := strings.Index(string(b), `"`+field+`":`)
		assert.Greater(t, ix, last, field)
		last = ix
	}

	assert.Contains(t, string(b), `{"PD":"PD-001","Valor":"100,00","Status":"Pago"}`)
}

func TestResponseField(t *testing.T) {
	response, err := aggregator().Aggregate(context.Background(), fixture())
	require.NoError(t, err)

	field, ok := response.Field("logins")
	require.True(t, ok)
	assert.Equal(t, response.Logins, field.Records)

	_, ok = response.Field("login")
	assert.False(t, ok)
}

type fetcherFunc func(ctx context.Context, spreadsheet, tab string) ([][]any, error)

func (f fetcherFunc) Values(ctx context.Context, spreadsheet, tab string) ([][]any, error) {
	return f(ctx, spreadsheet, tab)
}
