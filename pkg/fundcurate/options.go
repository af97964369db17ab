// Package fundcurate curates fund export workbooks into the multi-tab
// research layout and records every change it makes.
package fundcurate

import "log/slog"

// DefaultSheets lists the export sheet names that are curated.
var DefaultSheets = []string{"Preqin_Export", "Funds", "Sheet1"}

// DefaultSentinels lists cell values the export uses for "no data".
var DefaultSentinels = []string{"0", "nan", "n/a"}

// Options configures curation behavior.
type Options struct {
	// Sheets is the allow-list of source sheet names, in processing order.
	// If nil, DefaultSheets is used.
	Sheets []string
	// Sentinels are cleared to "" in every source cell before building tabs.
	// If nil, DefaultSentinels is used.
	Sentinels []string
	// Logger receives progress and warnings. If nil, slog.Default() is used.
	Logger *slog.Logger
}

// DefaultOptions returns default curation options.
func DefaultOptions() Options {
	return Options{
		Sheets:    DefaultSheets,
		Sentinels: DefaultSentinels,
	}
}

func (o Options) sheets() []string {
	if o.Sheets != nil {
		return o.Sheets
	}
	return DefaultSheets
}

func (o Options) sentinels() []string {
	if o.Sentinels != nil {
		return o.Sentinels
	}
	return DefaultSentinels
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}
