package directory

// DefaultPageSize filas por página del listado.
const DefaultPageSize = 50

// PageInfo metadatos de la página devuelta.
type PageInfo struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
	From       int `json:"from"`
	To         int `json:"to"`
}

// TotalPages cantidad de páginas para total filas; nunca menor que 1.
func TotalPages(total, size int) int {
	if size <= 0 {
		size = DefaultPageSize
	}
	if total <= 0 {
		return 1
	}
	return (total + size - 1) / size
}

// ClampPage ajusta page al rango [1, totalPages].
func ClampPage(page, total, size int) int {
	if page < 1 {
		return 1
	}
	if n := TotalPages(total, size); page > n {
		return n
	}
	return page
}

// Paginate devuelve la ventana de la página pedida (1-based) ya acotada.
// From y To son posiciones 1-based para "Mostrando X a Y de N"; en una lista
// vacía ambos son 0.
func Paginate[T any](list []T, page, size int) ([]T, PageInfo) {
	if size <= 0 {
		size = DefaultPageSize
	}
	total := len(list)
	page = ClampPage(page, total, size)
	start := (page - 1) * size
	end := min(start+size, total)

	info := PageInfo{
		Page:       page,
		PageSize:   size,
		Total:      total,
		TotalPages: TotalPages(total, size),
	}
	if total == 0 {
		return []T{}, info
	}
	info.From = start + 1
	info.To = end
	return list[start:end], info
}
