package aggregate

import (
	"context"
	"fmt"
	"sync"

	"github.com/planilhas/sheets-api/config"
)

type fake struct {
	sync.Mutex
	sheets map[string][][]any
	errors map[string]error
	calls  []string
}

func (f *fake) Values(ctx context.Context, spreadsheet, tab string) ([][]any, error) {
	f.Lock()
	f.calls = append(f.calls, tab)
	f.Unlock()

	if err, ok := f.errors[tab]; ok {
		return nil, err
	}

	if rows, ok := f.sheets[tab]; ok {
		return rows, nil
	}

	return nil, fmt.Errorf("Unable to parse range: %s", tab)
}

func fixture() *fake {
	return &fake{
		sheets: map[string][][]any{
			"Plano de Execução": {
				{"TAREFA", "DATA"},
				{"Inspeção motor", "2024-01-10"},
				{"", ""},
				{"Troca filtro", "2024-01-12"},
			},
			"Inventário PPU": {
				{"ITEM", "QTD"},
				{"Filtro", "10"},
			},
			"Inventário Centro": {
				{"ITEM", "QTD"},
			},
			"Receita Inspeções": {
				{"NOME_INSPECAO", "HORAS"},
				{"Inspeção A", "2"},
				{"Inspeção B", "3"},
			},
			"Receita Trocas": {
				{"NOME_TROCA", "PECA"},
				{"Troca de óleo", "Óleo 15W40"},
			},
			"PD Comprado": {
				{"PD", "Valor", "Status"},
				{"PD-001", "100,00", "?"},
			},
			"PD Gerado": {
				{"PD", "Valor"},
				{"PD-002", "50,00"},
				{"PD-003"},
			},
			"Price List":                       {{"ITEM", "PRECO"}, {"Filtro", "12,50"}},
			"Lisde":                            {{"ID"}, {"1"}},
			"Politica de Estoque de Inspeções": {},
			"Demandas de PIM":                  {{"PIM"}, {"PIM-1"}},
			"Controle de Entrada":              {{"NF"}, {"123"}},
			"Ordens de Serviço":                {{"OS"}, {"OS-9"}},
			"Login":                            {{"usuario", "senha"}, {"admin", "admin"}},
		},
		errors: map[string]error{},
	}
}

func aggregator() *Aggregator {
	return NewAggregator(config.Default())
}
