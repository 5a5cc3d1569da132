// Package config holds the immutable service configuration: the spreadsheet, the worksheet
// tabs to read, the merge rules for the derived collections and the HTTP/logging settings.
package config

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"golang.org/x/text/unicode/norm"
)

const (
	SHEETS_READONLY = "https://www.googleapis.com/auth/spreadsheets.readonly"

	DEFAULT_SPREADSHEET = "1km_Pjsd4lCpWDZUWijBQIGmQJT-vXMZO-22L0ARtNfc"
	DEFAULT_CREDENTIALS = "credentials.json"
	DEFAULT_BIND        = ":3001"
)

type Config struct {
	Spreadsheet string `mapstructure:"spreadsheet" yaml:"spreadsheet"`
	Credentials string `mapstructure:"credentials" yaml:"credentials"`
	Scope       string `mapstructure:"scope" yaml:"scope"`
	Endpoint    string `mapstructure:"endpoint" yaml:"endpoint,omitempty"`
	Workers     int    `mapstructure:"workers" yaml:"workers"`

	Tabs  Tabs  `mapstructure:"tabs" yaml:"tabs"`
	Merge Merge `mapstructure:"merge" yaml:"merge"`

	HTTP struct {
		Bind           string   `mapstructure:"bind" yaml:"bind"`
		AllowedOrigins []string `mapstructure:"allowed_origins" yaml:"allowed_origins"`
		MaxConnections int      `mapstructure:"max_connections" yaml:"max_connections"`
	} `mapstructure:"http" yaml:"http"`

	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`
}

// Tabs names the worksheets read for each request.
type Tabs struct {
	PlanoDeExecucao   string `mapstructure:"plano_de_execucao" yaml:"plano_de_execucao"`
	InventarioPPU     string `mapstructure:"inventario_ppu" yaml:"inventario_ppu"`
	InventarioCentro  string `mapstructure:"inventario_centro" yaml:"inventario_centro"`
	ReceitaInspecoes  string `mapstructure:"receita_inspecoes" yaml:"receita_inspecoes"`
	ReceitaTrocas     string `mapstructure:"receita_trocas" yaml:"receita_trocas"`
	PDComprado        string `mapstructure:"pd_comprado" yaml:"pd_comprado"`
	PDGerado          string `mapstructure:"pd_gerado" yaml:"pd_gerado"`
	PriceList         string `mapstructure:"price_list" yaml:"price_list"`
	Lisde             string `mapstructure:"lisde" yaml:"lisde"`
	PoliticaDeEstoque string `mapstructure:"politica_de_estoque" yaml:"politica_de_estoque"`
	DemandasDePIM     string `mapstructure:"demandas_de_pim" yaml:"demandas_de_pim"`
	ControleDeEntrada string `mapstructure:"controle_de_entrada" yaml:"controle_de_entrada"`
	OrdensDeServico   string `mapstructure:"ordens_de_servico" yaml:"ordens_de_servico"`
	Login             string `mapstructure:"login" yaml:"login"`
}

// Merge holds the rules for the two derived collections.
type Merge struct {
	Tarefas MergeRule `mapstructure:"tarefas" yaml:"tarefas"`
	Pedidos MergeRule `mapstructure:"pedidos" yaml:"pedidos"`
}

// MergeRule concatenates the records of the source tabs, in order, setting Field on each
// copied record.
type MergeRule struct {
	Field   string        `mapstructure:"field" yaml:"field"`
	Sources []MergeSource `mapstructure:"sources" yaml:"sources"`
}

// MergeSource sets the rule field from another field of the record (From) or to a fixed
// value (Value). From takes precedence.
type MergeSource struct {
	Tab   string `mapstructure:"tab" yaml:"tab"`
	From  string `mapstructure:"from" yaml:"from,omitempty"`
	Value string `mapstructure:"value" yaml:"value,omitempty"`
}

var DefaultTabs = Tabs{
	PlanoDeExecucao:   "Plano de Execução",
	InventarioPPU:     "Inventário PPU",
	InventarioCentro:  "Inventário Centro",
	ReceitaInspecoes:  "Receita Inspeções",
	ReceitaTrocas:     "Receita Trocas",
	PDComprado:        "PD Comprado",
	PDGerado:          "PD Gerado",
	PriceList:         "Price List",
	Lisde:             "Lisde",
	PoliticaDeEstoque: "Politica de Estoque de Inspeções",
	DemandasDePIM:     "Demandas de PIM",
	ControleDeEntrada: "Controle de Entrada",
	OrdensDeServico:   "Ordens de Serviço",
	Login:             "Login",
}

var DefaultMerge = Merge{
	Tarefas: MergeRule{
		Field: "Nome da Tarefa",
		Sources: []MergeSource{
			{Tab: "Receita Inspeções", From: "NOME_INSPECAO"},
			{Tab: "Receita Trocas", From: "NOME_TROCA"},
		},
	},
	Pedidos: MergeRule{
		Field: "Status",
		Sources: []MergeSource{
			{Tab: "PD Comprado", Value: "Pago"},
			{Tab: "PD Gerado", Value: "Gerado"},
		},
	},
}

// List returns the tab names in the order in which they are fetched.
func (t Tabs) List() []string {
	return []string{
		t.PlanoDeExecucao,
		t.InventarioPPU,
		t.InventarioCentro,
		t.ReceitaInspecoes,
		t.ReceitaTrocas,
		t.PDComprado,
		t.PDGerado,
		t.PriceList,
		t.Lisde,
		t.PoliticaDeEstoque,
		t.DemandasDePIM,
		t.ControleDeEntrada,
		t.OrdensDeServico,
		t.Login,
	}
}

// Default returns the configuration used when no config file or environment overrides
// are present.
func Default() *Config {
	c := Config{
		Spreadsheet: DEFAULT_SPREADSHEET,
		Credentials: DEFAULT_CREDENTIALS,
		Scope:       SHEETS_READONLY,
		Tabs:        DefaultTabs,
		Merge: Merge{
			Tarefas: MergeRule{
				Field:   DefaultMerge.Tarefas.Field,
				Sources: append([]MergeSource{}, DefaultMerge.Tarefas.Sources...),
			},
			Pedidos: MergeRule{
				Field:   DefaultMerge.Pedidos.Field,
				Sources: append([]MergeSource{}, DefaultMerge.Pedidos.Sources...),
			},
		},
	}

	c.HTTP.Bind = DEFAULT_BIND
	c.HTTP.AllowedOrigins = []string{"*"}
	c.Log.Level = "info"
	c.Log.Format = "text"

	return &c
}

// SpreadsheetID returns the spreadsheet ID, extracting it from a Google Sheets URL if the
// spreadsheet was configured as a URL.
func (c *Config) SpreadsheetID() string {
	s := strings.TrimSpace(c.Spreadsheet)
	match := regexp.MustCompile(`^https://docs.google.com/spreadsheets/d/(.*?)(?:/.*)?$`).FindStringSubmatch(s)
	if len(match) > 1 {
		return match[1]
	}

	return s
}

func (c *Config) Validate() error {
	if c.SpreadsheetID() == "" {
		return fmt.Errorf("missing spreadsheet ID")
	}

	if strings.TrimSpace(c.Credentials) == "" {
		return fmt.Errorf("missing credentials file")
	}

	if strings.TrimSpace(c.Scope) == "" {
		return fmt.Errorf("missing authorisation scope")
	}

	tabs := []string{}
	for i, tab := range c.Tabs.List() {
		if strings.TrimSpace(tab) == "" {
			return fmt.Errorf("missing name for tab %v", i+1)
		}

		tabs = append(tabs, norm.NFC.String(tab))
	}

	for _, rule := range []MergeRule{c.Merge.Tarefas, c.Merge.Pedidos} {
		if strings.TrimSpace(rule.Field) == "" {
			return fmt.Errorf("merge rule is missing a field name")
		}

		for _, source := range rule.Sources {
			if strings.TrimSpace(source.Tab) == "" {
				return fmt.Errorf("merge rule '%s' has a source without a tab", rule.Field)
			}

			if !slices.Contains(tabs, norm.NFC.String(source.Tab)) {
				return fmt.Errorf("merge rule '%s' source '%s' is not one of the configured tabs", rule.Field, source.Tab)
			}
		}
	}

	if c.Workers < 0 {
		return fmt.Errorf("invalid workers %v", c.Workers)
	}

	if c.HTTP.MaxConnections < 0 {
		return fmt.Errorf("invalid max-connections %v", c.HTTP.MaxConnections)
	}

	return nil
}
