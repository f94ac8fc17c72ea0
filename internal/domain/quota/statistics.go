package quota

// PlatformUsage sums the quotas of every project on one platform.
type PlatformUsage struct {
	Platform   string
	Units      string
	Quotas     int64
	TotalLimit float64
	TotalUsage float64
}

// Quota returns the aggregate as a single quota so the ledger helpers apply.
func (u PlatformUsage) Quota() *Quota {
	return &Quota{
		Units:    u.Units,
		Limit:    u.TotalLimit,
		Usage:    u.TotalUsage,
		Platform: u.Platform,
	}
}
