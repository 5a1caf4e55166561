package api

// Response общий конверт успешного ответа
type Response struct {
	Data       any       `json:"data,omitempty"`
	Pagination *PageInfo `json:"pagination,omitempty"`
	Status     string    `json:"status"`
	Message    string    `json:"message"`
	StatusCode int       `json:"statusCode"`
}

// PageInfo описывает страницу списка
type PageInfo struct {
	Page       int `json:"page"`
	PerPage    int `json:"perPage"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// NewPageInfo вычисляет число страниц
func NewPageInfo(page, perPage, total int) *PageInfo {
	totalPages := 0
	if perPage > 0 {
		totalPages = (total + perPage - 1) / perPage
	}
	return &PageInfo{Page: page, PerPage: perPage, Total: total, TotalPages: totalPages}
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`             // текст статуса или причина 401
	Message string `json:"message,omitempty"` // сообщение доменной ошибки
	Origin  string `json:"origin,omitempty"`  // только в development
	Cause   string `json:"cause,omitempty"`   // только в development
}
