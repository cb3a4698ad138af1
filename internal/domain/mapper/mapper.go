package mapper

import (
	"file-converter/internal/domain/dto"
	"file-converter/internal/domain/entities"
)

func ToEntryResponse(entry entities.ConversionEntry) dto.EntryResponse {
	return dto.EntryResponse{
		ID:           entry.ID,
		OriginalName: entry.OriginalName,
		ContentType:  entry.ContentType,
		Kind:         string(entry.Kind),
		Status:       string(entry.Status),
		OutputFormat: entry.OutputFormat,
		HasOutput:    entry.OutputHandle != "",
		DownloadName: entry.OutputName,
		CreatedAt:    entry.CreatedAt,
		UpdatedAt:    entry.UpdatedAt,
	}
}

func ToEntryResponses(entries []entities.ConversionEntry) []dto.EntryResponse {
	responses := make([]dto.EntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, ToEntryResponse(entry))
	}
	return responses
}
