package dto

import "time"

type EntryResponse struct {
	ID           string    `json:"id"`
	OriginalName string    `json:"original_name"`
	ContentType  string    `json:"content_type"`
	Kind         string    `json:"kind"`
	Status       string    `json:"status"`
	OutputFormat string    `json:"output_format"`
	HasOutput    bool      `json:"has_output"`
	DownloadName string    `json:"download_name,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type AcceptResponse struct {
	Accepted []EntryResponse `json:"accepted"`
	Rejected []string        `json:"rejected,omitempty"`
}

type SetFormatRequest struct {
	Format string `json:"format"`
}

type ConvertResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type HealthResponse struct {
	Status      string `json:"status"`
	EngineReady bool   `json:"engine_ready"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
