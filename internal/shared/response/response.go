package response

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

type PaginationMeta struct {
	Total      int64 `json:"total,omitempty"`
	TotalPages int   `json:"total_pages,omitempty"`
	Page       int   `json:"page,omitempty"`
	PageSize   int   `json:"page_size,omitempty"`
}

func NewPaginationMeta(total int64, page, limit int) PaginationMeta {
	totalPages := 0
	if limit > 0 {
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}

	return PaginationMeta{
		Total:      total,
		TotalPages: totalPages,
		Page:       page,
		PageSize:   limit,
	}
}

// Paginate clamps the [start:end) window of a slice of length n. Pages past
// the end yield an empty window; page is compared before multiplying so huge
// values cannot overflow.
func Paginate(n, page, pageSize int) (start, end int) {
	if n <= 0 || page < 1 || pageSize < 1 || page-1 > (n-1)/pageSize {
		return n, n
	}
	start = (page - 1) * pageSize
	end = n
	if pageSize < n-start {
		end = start + pageSize
	}
	return start, end
}

// Offset is the row offset of page, or false when the page starts at or past
// total.
func Offset(total int64, page, pageSize int) (int, bool) {
	if total <= 0 || page < 1 || pageSize < 1 || int64(page-1) > (total-1)/int64(pageSize) {
		return 0, false
	}
	return (page - 1) * pageSize, true
}

type ApiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  any             `json:"data,omitempty"`
	Meta  *PaginationMeta `json:"meta,omitempty"`
	Error any             `json:"error,omitempty"`
}

func Success(c *gin.Context, status int, data any, meta *PaginationMeta) {
	c.JSON(status, ApiEnvelope{
		Ok:   true,
		Data: data,
		Meta: meta,
	})
}

func Error(c *gin.Context, status int, errorCode string, message string, details any) {
	c.JSON(status, ApiEnvelope{
		Ok: false,
		Error: map[string]any{
			"code":    errorCode,
			"message": message,
			"details": details,
		},
	})
}

// Attachment streams a downloadable file (CSV/XLSX exports).
func Attachment(c *gin.Context, filename, contentType string, body []byte) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, contentType, body)
}
