package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const ENV_PREFIX = "SHEETS_API"

// Load builds the configuration from (in increasing order of precedence) the defaults, the
// configuration file and the environment. A .env file in the working directory is loaded
// into the environment first if it exists. If file is empty, sheets-api.yaml is looked up
// in the working directory, $HOME/.sheets-api and DEFAULT_CONFIG_DIR and is optional.
func Load(file string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file (%w)", err)
	}

	v := viper.New()

	setDefaults(v, Default())

	v.SetEnvPrefix(ENV_PREFIX)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("credentials", ENV_PREFIX+"_CREDENTIALS", "GOOGLE_APPLICATION_CREDENTIALS"); err != nil {
		return nil, err
	}

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file %s (%w)", file, err)
		}
	} else {
		v.SetConfigName("sheets-api")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.sheets-api")
		v.AddConfigPath(DEFAULT_CONFIG_DIR)

		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("error reading config file %s (%w)", v.ConfigFileUsed(), err)
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("invalid configuration (%w)", err)
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration (%w)", err)
	}

	return &c, nil
}

func setDefaults(v *viper.Viper, c *Config) {
	v.SetDefault("spreadsheet", c.Spreadsheet)
	v.SetDefault("credentials", c.Credentials)
	v.SetDefault("scope", c.Scope)
	v.SetDefault("endpoint", c.Endpoint)
	v.SetDefault("workers", c.Workers)

	v.SetDefault("tabs.plano_de_execucao", c.Tabs.PlanoDeExecucao)
	v.SetDefault("tabs.inventario_ppu", c.Tabs.InventarioPPU)
	v.SetDefault("tabs.inventario_centro", c.Tabs.InventarioCentro)
	v.SetDefault("tabs.receita_inspecoes", c.Tabs.ReceitaInspecoes)
	v.SetDefault("tabs.receita_trocas", c.Tabs.ReceitaTrocas)
	v.SetDefault("tabs.pd_comprado", c.Tabs.PDComprado)
	v.SetDefault("tabs.pd_gerado", c.Tabs.PDGerado)
	v.SetDefault("tabs.price_list", c.Tabs.PriceList)
	v.SetDefault("tabs.lisde", c.Tabs.Lisde)
	v.SetDefault("tabs.politica_de_estoque", c.Tabs.PoliticaDeEstoque)
	v.SetDefault("tabs.demandas_de_pim", c.Tabs.DemandasDePIM)
	v.SetDefault("tabs.controle_de_entrada", c.Tabs.ControleDeEntrada)
	v.SetDefault("tabs.ordens_de_servico", c.Tabs.OrdensDeServico)
	v.SetDefault("tabs.login", c.Tabs.Login)

	v.SetDefault("merge.tarefas.field", c.Merge.Tarefas.Field)
	v.SetDefault("merge.tarefas.sources", sources(c.Merge.Tarefas.Sources))
	v.SetDefault("merge.pedidos.field", c.Merge.Pedidos.Field)
	v.SetDefault("merge.pedidos.sources", sources(c.Merge.Pedidos.Sources))

	v.SetDefault("http.bind", c.HTTP.Bind)
	v.SetDefault("http.allowed_origins", c.HTTP.AllowedOrigins)
	v.SetDefault("http.max_connections", c.HTTP.MaxConnections)

	v.SetDefault("log.level", c.Log.Level)
	v.SetDefault("log.format", c.Log.Format)
}

func sources(list []MergeSource) []any {
	l := []any{}
	for _, s := range list {
		l = append(l, map[string]any{
			"tab":   s.Tab,
			"from":  s.From,
			"value": s.Value,
		})
	}

	return l
}
