// file: internals/features/academic/imports/dto/manifest_dto.go
package dto

import "github.com/google/uuid"

// RowResult es el resultado por-fila de un import masivo. Las filas que
// fallan no abortan el lote: éxito parcial es el contrato.
type RowResult struct {
	Row   int        `json:"row"`
	OK    bool       `json:"ok"`
	ID    *uuid.UUID `json:"id,omitempty"`
	Error string     `json:"error,omitempty"`
}

type ImportManifest struct {
	Total   int         `json:"total"`
	OkCount int         `json:"ok_count"`
	Rows    []RowResult `json:"rows"`
}

func BuildManifest(rows []RowResult) ImportManifest {
	ok := 0
	for _, r := range rows {
		if r.OK {
			ok++
		}
	}
	return ImportManifest{Total: len(rows), OkCount: ok, Rows: rows}
}
