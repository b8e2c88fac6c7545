package domain

const (
	// DefaultTagsKey is the top-level document key holding tags applied to
	// every resource.
	DefaultTagsKey = "default_tags"

	TagKeyName         = "Name"
	TagKeyCustomerName = "CustomerName"

	// Standard tag keys whose first enumerated value becomes a default tag.
	TagKeyEnvironmentType = "EnvironmentType"
	TagKeyCostCenter      = "CostCenter"
	TagKeyPlatform        = "Platform"
)
