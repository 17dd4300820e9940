package config

// LoanConfig содержит настройки выдачи книг.
type LoanConfig struct {
	DurationDays int `yaml:"duration_days" env:"LIBRARY_LOAN_DURATION_DAYS" env-default:"14"`
}
