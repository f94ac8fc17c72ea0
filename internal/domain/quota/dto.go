package quota

type CreateQuotaDTO struct {
	Limit    *float64 `json:"limit" binding:"required,gte=0"`
	Platform string   `json:"platform" binding:"required,max=20"`
	Units    string   `json:"units" binding:"required,max=15"`
}

// UpdateQuotaDTO replaces limit and usage. Both are required.
type UpdateQuotaDTO struct {
	Limit *float64 `json:"limit" binding:"required,gte=0"`
	Usage *float64 `json:"usage" binding:"required,gte=0"`
}
