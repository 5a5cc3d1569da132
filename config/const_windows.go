package config

const DEFAULT_CONFIG_DIR = `C:\ProgramData\sheets-api`
