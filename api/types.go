// Package api - API types for conversions
// Requests and responses for the /convert and /table endpoints.
package api

import (
	"basecalc/core/output"
)

// ConvertRequest is the input to POST /convert
type ConvertRequest struct {
	// Input is "<integer digits>" or "<integer digits>,<fraction digits>"
	Input string `json:"input"`

	// InputBase is the base Input is written in
	InputBase int `json:"input_base"`

	// OutputBase is the base to convert to
	OutputBase int `json:"output_base"`

	// MaxSteps limits the fraction expansion (optional, default 24)
	MaxSteps *int `json:"max_steps,omitempty"`

	// DecimalPlaces requests a decimal approximation (optional)
	DecimalPlaces int32 `json:"decimal_places,omitempty"`
}

// ConvertResponse is the output of POST /convert
type ConvertResponse struct {
	output.Conversion

	Metadata *ResponseMetadata `json:"metadata,omitempty"`
}

// TableRequest is the input to POST /table
type TableRequest struct {
	// Entries are the values to tabulate; their bases become the columns
	Entries []TableEntry `json:"entries"`

	// MaxSteps limits fraction digits per cell (optional, default 4)
	MaxSteps *int `json:"max_steps,omitempty"`
}

// TableEntry is one value with its base
type TableEntry struct {
	Value string `json:"value"`
	Base  int    `json:"base"`
}

// TableResponse is the output of POST /table
type TableResponse struct {
	// Bases are the column bases in entry order
	Bases []int `json:"bases"`

	// Rows holds one row per entry
	Rows []TableRow `json:"rows"`

	Metadata *ResponseMetadata `json:"metadata,omitempty"`
}

// TableRow is one entry converted into every column base
type TableRow struct {
	Label string   `json:"label"`
	Cells []string `json:"cells"`
}

// ResponseMetadata contains execution metadata
type ResponseMetadata struct {
	// InputHash is a SHA-256 of the request body as decoded
	InputHash string `json:"input_hash"`

	// Version is the server version
	Version string `json:"version"`

	// DurationMs is the handling time
	DurationMs int64 `json:"duration_ms"`
}

// ErrorResponse is the body of every non-2xx response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail describes a failure
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
