package config

const DEFAULT_CONFIG_DIR = "/usr/local/etc/com.github.planilhas/sheets-api"
