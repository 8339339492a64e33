package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vadiminshakov/walletswap/internal/domain"
	"github.com/vadiminshakov/walletswap/internal/services/icons"
	"github.com/vadiminshakov/walletswap/internal/services/priority"
	"gopkg.in/yaml.v3"
)

// Source types.
const (
	SourceFile        = "file"
	SourceBinance     = "binance"
	SourceBybit       = "bybit"
	SourceHyperliquid = "hyperliquid"
)

const (
	defaultIconBaseURL     = "https://raw.githubusercontent.com/Switcheo/token-icons/main/tokens/"
	defaultRefreshInterval = time.Minute
)

type Config struct {
	IconBaseURL     string
	IconExceptions  map[string]string
	Priorities      map[string]int
	UnknownPriority int
	Sources         []SourceConfig
	BalancesPath    string
	// Conversion is nil when no conversion was requested.
	Conversion *domain.ConversionRequest
	// ServeAddr enables the HTTP server when set.
	ServeAddr       string
	RefreshInterval time.Duration
	// Interactive asks for the conversion in a terminal form after the first refresh.
	Interactive bool
}

// SourceConfig describes one price source.
type SourceConfig struct {
	Type string `yaml:"type"`
	// Path of the JSON feed for file sources.
	Path string `yaml:"path,omitempty"`
	// Quote asset for exchange sources (USDT, USDC).
	Quote string `yaml:"quote,omitempty"`
	// Anchor emits the quote asset at price 1.
	Anchor bool `yaml:"anchor,omitempty"`
	// URL overrides the exchange API URL (hyperliquid only).
	URL string `yaml:"url,omitempty"`
}

type ConfigTmp struct {
	Icons struct {
		BaseURL    *string           `yaml:"base_url"`
		Exceptions map[string]string `yaml:"exceptions"`
	} `yaml:"icons"`
	Priorities struct {
		Unknown  *int           `yaml:"unknown"`
		Networks map[string]int `yaml:"networks"`
	} `yaml:"priorities"`
	Sources         []SourceConfig `yaml:"sources"`
	Balances        string         `yaml:"balances"`
	Serve           string         `yaml:"serve"`
	RefreshInterval time.Duration  `yaml:"refresh_interval"`
	Conversion      struct {
		From   string `yaml:"from"`
		To     string `yaml:"to"`
		Amount string `yaml:"amount"`
	} `yaml:"conversion"`
}

// Default returns the built-in configuration without sources.
func Default() Config {
	return Config{
		IconBaseURL:     defaultIconBaseURL,
		IconExceptions:  copyStrings(icons.DefaultExceptions),
		Priorities:      copyInts(priority.DefaultNetworks),
		UnknownPriority: priority.DefaultUnknown,
		RefreshInterval: defaultRefreshInterval,
	}
}

func getYaml(path string) (Config, error) {
	f, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	return parseYaml(f)
}

func parseYaml(data []byte) (Config, error) {
	var tmp ConfigTmp
	if err := yaml.Unmarshal(data, &tmp); err != nil {
		return Config{}, err
	}

	c := Default()
	if tmp.Icons.BaseURL != nil {
		c.IconBaseURL = *tmp.Icons.BaseURL
	}
	if tmp.Icons.Exceptions != nil {
		c.IconExceptions = tmp.Icons.Exceptions
	}
	if tmp.Priorities.Unknown != nil {
		c.UnknownPriority = *tmp.Priorities.Unknown
	}
	if tmp.Priorities.Networks != nil {
		c.Priorities = tmp.Priorities.Networks
	}
	c.BalancesPath = tmp.Balances
	c.ServeAddr = tmp.Serve
	if tmp.RefreshInterval > 0 {
		c.RefreshInterval = tmp.RefreshInterval
	}

	for i, s := range tmp.Sources {
		s.Type = strings.ToLower(strings.TrimSpace(s.Type))
		if err := validateSource(s); err != nil {
			return Config{}, fmt.Errorf("incorrect source #%d in yaml config: %w", i, err)
		}
		c.Sources = append(c.Sources, s)
	}

	if tmp.Conversion.From != "" || tmp.Conversion.To != "" || tmp.Conversion.Amount != "" {
		req, err := ParseConversionRequest(tmp.Conversion.From, tmp.Conversion.To, tmp.Conversion.Amount)
		if err != nil {
			return Config{}, fmt.Errorf("incorrect 'conversion' param in yaml config: %w", err)
		}
		c.Conversion = req
	}

	return c, nil
}

func validateSource(s SourceConfig) error {
	switch s.Type {
	case SourceFile:
		if s.Path == "" {
			return fmt.Errorf("file source requires 'path'")
		}
	case SourceBinance, SourceBybit:
		if s.Quote == "" {
			return fmt.Errorf("%s source requires 'quote'", s.Type)
		}
	case SourceHyperliquid:
	default:
		return fmt.Errorf("unsupported source type %q", s.Type)
	}
	return nil
}

// ParseConversionRequest validates user input for a conversion.
func ParseConversionRequest(from, to, amount string) (*domain.ConversionRequest, error) {
	if from == "" || to == "" {
		return nil, fmt.Errorf("both 'from' and 'to' currencies are required")
	}
	if strings.TrimSpace(amount) == "" {
		return nil, fmt.Errorf("amount is required")
	}
	a, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, fmt.Errorf("incorrect amount %q (correct format is 12.5): %w", amount, err)
	}
	if !a.IsPositive() {
		return nil, fmt.Errorf("amount should be higher than 0, got %s", a)
	}
	return &domain.ConversionRequest{From: from, To: to, Amount: a}, nil
}

func copyStrings(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func copyInts(m map[string]int) map[string]int {
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
