package config

import "github.com/theoremus-urban-solutions/jetblue-fares/jetblue"

// SearchConfig contains search defaults
type SearchConfig struct {
	Passengers jetblue.PassengerInfo `yaml:"passengers"`
	TimeoutMS  int                   `yaml:"timeoutMS" validate:"gte=0"`
}

// FiltersConfig contains default hour windows; nil means open
type FiltersConfig struct {
	DepartAfter  *int `yaml:"departAfter" validate:"omitempty,gte=0,lte=23"`
	DepartBefore *int `yaml:"departBefore" validate:"omitempty,gte=0,lte=23"`
	ReturnAfter  *int `yaml:"returnAfter" validate:"omitempty,gte=0,lte=23"`
	ReturnBefore *int `yaml:"returnBefore" validate:"omitempty,gte=0,lte=23"`
}

// NormalizerConfig contains parse options
type NormalizerConfig struct {
	UnknownStatus string `yaml:"unknownStatus" validate:"omitempty,oneof=strict degrade"`
}

// EstimateConfig contains best fares client configuration
type EstimateConfig struct {
	BaseURL           string  `yaml:"baseURL" validate:"omitempty,url"`
	RequestsPerSecond float64 `yaml:"requestsPerSecond" validate:"gte=0"`
	Burst             int     `yaml:"burst" validate:"gte=0"`
}

// OutputConfig contains rendering configuration
type OutputConfig struct {
	Format string `yaml:"format" validate:"omitempty,oneof=text json dump"`
}

// LoggingConfig contains logrus configuration
type LoggingConfig struct {
	Level  string `yaml:"level" validate:"omitempty,oneof=trace debug info warn warning error fatal panic"`
	Format string `yaml:"format" validate:"omitempty,oneof=text json"`
}

// Route represents a saved origin and destination pair
type Route struct {
	Name        string `yaml:"name" validate:"required"`
	Origin      string `yaml:"origin" validate:"required,len=3,alpha"`
	Destination string `yaml:"destination" validate:"required,len=3,alpha"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Search     SearchConfig     `yaml:"search"`
	Filters    FiltersConfig    `yaml:"filters"`
	Normalizer NormalizerConfig `yaml:"normalizer"`
	Estimate   EstimateConfig   `yaml:"estimate"`
	Output     OutputConfig     `yaml:"output"`
	Logging    LoggingConfig    `yaml:"logging"`
	Routes     []Route          `yaml:"routes" validate:"dive"`
}
