package config

const DEFAULT_CONFIG_DIR = "/usr/local/etc/sheets-api"
