package config

//go:generate go tool go-enum --marshal --names

// Output format of the report.
// ENUM(text, json, yaml)
type ReportFormat string

// Whether report uses colors.
// ENUM(auto, always, never)
type ColorMode string

// Order of selectors in the report.
// ENUM(source, natural)
type OrderMode string

// What to do with block at-rules (@media, @supports, ...).
// ENUM(compare, skip)
type AtRulesMode string
