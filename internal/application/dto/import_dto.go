package dto

// SheetData primera hoja de un archivo de carga masiva.
// Columns son las claves canónicas encontradas en el encabezado.
type SheetData struct {
	Name    string
	Columns []string
	Rows    []SheetRow
}

// HasColumn indica si el encabezado trae la clave canónica.
func (s *SheetData) HasColumn(key string) bool {
	for _, c := range s.Columns {
		if c == key {
			return true
		}
	}
	return false
}

// SheetRow fila de datos; Line es el número de fila en la hoja (1-based).
type SheetRow struct {
	Line  int
	Cells map[string]string
}

// ImportSummary respuesta exitosa de POST /upload.
type ImportSummary struct {
	LoteID      string `json:"lote_id"`
	Archivo     string `json:"archivo"`
	Hoja        string `json:"hoja"`
	FilasLeidas int    `json:"filas_leidas"`
	Insertadas  int    `json:"insertadas"`
}

// ImportRowError error de una fila concreta del archivo.
type ImportRowError struct {
	Fila   int    `json:"fila"`
	Serial string `json:"serial,omitempty"`
	Error  string `json:"error"`
}

// ImportErrorResponse cuerpo 400/409 de POST /upload.
type ImportErrorResponse struct {
	Code    string           `json:"code"`
	Message string           `json:"message"`
	Errores []ImportRowError `json:"errores,omitempty"`
}
