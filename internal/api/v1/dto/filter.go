package dto

// Order fields accepted by FilterParams.OrderBy
const (
	OrderByCreatedAt = "created_at"
	OrderByUpdatedAt = "updated_at"
)

// FilterParams are the list filters read from the query string.
// Keys other than these four are rejected.
type FilterParams struct {
	Limit   int      `form:"limit,default=10" json:"limit" binding:"gt=0,lte=100"`
	Offset  int      `form:"offset,default=0" json:"offset" binding:"gte=0"`
	OrderBy string   `form:"order_by,default=created_at" json:"order_by" binding:"oneof=created_at updated_at"`
	Tags    []string `form:"tags" json:"tags"`
}

// Normalize fills defaults binding leaves as zero values
func (p *FilterParams) Normalize() {
	if p.Tags == nil {
		p.Tags = []string{}
	}
}

// DefaultSearchQuery is returned by GET /items/search when no q is given
var DefaultSearchQuery = []string{"foo", "bar", "fizz"}

// SearchResponse echoes the q values
type SearchResponse struct {
	Q []string `json:"q"`
}
