package commands

import (
	"fmt"

	"github.com/planilhas/sheets-api/config"
	"github.com/planilhas/sheets-api/google"
	"github.com/planilhas/sheets-api/log"
)

const APP = "sheets-api"

// Options are the global command line options.
type Options struct {
	Config string
	Debug  bool
}

func load(options *Options) (*config.Config, error) {
	c, err := config.Load(options.Config)
	if err != nil {
		return nil, err
	}

	if err := log.SetFormat(c.Log.Format); err != nil {
		return nil, err
	}

	level := c.Log.Level
	if options.Debug {
		level = "debug"
	}

	if err := log.SetLevel(level); err != nil {
		return nil, err
	}

	log.Debugf("spreadsheet:%s  credentials:%s  tabs:%v", c.SpreadsheetID(), c.Credentials, len(c.Tabs.List()))

	return c, nil
}

func authenticator(c *config.Config) google.Authenticator {
	return google.Authenticator{
		Credentials: c.Credentials,
		Scope:       c.Scope,
		Endpoint:    c.Endpoint,
	}
}

func required(flag, value string) error {
	if value == "" {
		return fmt.Errorf("--%s is a required option", flag)
	}

	return nil
}
