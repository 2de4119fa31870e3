package config

import "fmt"

func validate(c *Config) error {
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("http timeout must be > 0")
	}
	if c.RequestDelay < 0 {
		return fmt.Errorf("request delay must be >= 0")
	}
	if c.Keyword == "" {
		return fmt.Errorf("keyword must not be empty")
	}
	if c.SheetName == "" {
		return fmt.Errorf("sheet name must not be empty")
	}
	if c.URLColumn == "" {
		return fmt.Errorf("url column must not be empty")
	}
	return nil
}
