package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse confirmación simple ("Ordem excluída com sucesso!").
type MessageResponse struct {
	Message string `json:"message"`
}

// ListResponse listado filtrado junto al total de la colección sin filtrar.
type ListResponse[T any] struct {
	Items []T `json:"items"`
	Count int `json:"count"`
	Total int `json:"total"`
}

// ReloadResponse estado de carga por colección tras un reload.
type ReloadResponse struct {
	Loaded map[string]bool `json:"loaded"`
}
