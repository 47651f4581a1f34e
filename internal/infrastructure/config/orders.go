package config

// OrdersConfig holds order application policies
type OrdersConfig struct {
	// EmptyPageAsFailure selects how a paged query with zero matching
	// orders is reported: true yields failure("No orders found.", 404),
	// false yields success with an empty page and total count zero.
	EmptyPageAsFailure bool `mapstructure:"empty_page_as_failure"`

	// MaxPageSize caps the page size accepted by list queries
	MaxPageSize int `mapstructure:"max_page_size" validate:"min=1"`
}
