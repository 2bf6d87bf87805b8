package metrics

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrMethod      = "method"
	AttrPath        = "path"
	AttrStatus      = "status"
	AttrProvider    = "provider"
	AttrPlaceholder = "placeholder"
	AttrCacheResult = "result"
	AttrBreakerTo   = "to"
)
