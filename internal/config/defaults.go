package config

import "time"

// Default constants for application configuration
const (
	DefaultLogLevel     = "info"
	DefaultJSONLog      = false
	DefaultUserAgent    = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
	DefaultHTTPTimeout  = 10 * time.Second
	DefaultRequestDelay = 1 * time.Second
	DefaultKeyword      = "kursziel"
	DefaultSheetName    = "Kursziele_Input"
	DefaultURLColumn    = "Url"
	DefaultOutputSuffix = "_kursziele"
	DefaultOutputSheet  = "Kursziele"
	DefaultCheckURL     = "https://www.finanzen.net/kursziele/703000"
)
