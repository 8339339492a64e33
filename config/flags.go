package config

import (
	"flag"
	"fmt"
	"os"
)

// Get builds the configuration from the command line.
func Get() (Config, error) {
	return parse(flag.CommandLine, os.Args[1:])
}

func parse(fs *flag.FlagSet, args []string) (Config, error) {
	configPath := fs.String("config", "", "path to yaml config")
	prices := fs.String("prices", "", "path to a JSON price feed, added to configured sources")
	balancesPath := fs.String("balances", "", "path to a YAML/JSON balances file")
	iconsURL := fs.String("icons-url", "", "base URL of token icons")
	from := fs.String("from", "", "currency to convert from, example: USD")
	to := fs.String("to", "", "currency to convert to, example: ETH")
	amount := fs.String("amount", "", "amount to convert, example: 4000")
	serve := fs.String("serve", "", "serve HTTP API on the address, example: :8080")
	refresh := fs.Duration("refresh-interval", 0, "price refresh interval in serve mode")
	interactive := fs.Bool("interactive", false, "pick the conversion in an interactive terminal form")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	c := Default()
	if *configPath != "" {
		var err error
		c, err = getYaml(*configPath)
		if err != nil {
			return Config{}, err
		}
	}

	if *prices != "" {
		c.Sources = append(c.Sources, SourceConfig{Type: SourceFile, Path: *prices})
	}
	if *balancesPath != "" {
		c.BalancesPath = *balancesPath
	}
	if *serve != "" {
		c.ServeAddr = *serve
	}
	if *refresh > 0 {
		c.RefreshInterval = *refresh
	}
	c.Interactive = *interactive
	if *iconsURL != "" {
		c.IconBaseURL = *iconsURL
	}
	if *from != "" || *to != "" || *amount != "" {
		req, err := ParseConversionRequest(*from, *to, *amount)
		if err != nil {
			return Config{}, fmt.Errorf("invalid conversion flags --from=%s --to=%s --amount=%s: %w", *from, *to, *amount, err)
		}
		c.Conversion = req
	}

	if len(c.Sources) == 0 {
		return Config{}, fmt.Errorf("no price sources configured, use --prices or 'sources' in yaml config")
	}

	return c, nil
}
