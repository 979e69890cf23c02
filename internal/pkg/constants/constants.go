package constants

const (
	ViperHTTPAddrKey        = "http.addr"
	ViperCORSOriginsKey     = "http.cors_origins"
	ViperShutdownTimeoutKey = "http.shutdown_timeout"

	ViperDatabaseURLKey      = "database.url"
	ViperDatabaseMaxConnsKey = "database.max_conns"
	ViperConnectRetriesKey   = "database.connect_retries"

	ViperExplorerRowLimitKey = "explorer.row_limit"
	ViperExplorerPageSizeKey = "explorer.page_size"
	ViperTopOrgaosKey        = "overview.top_orgaos"
	ViperCurrentYearKey      = "overview.current_year"

	ViperLogLevelKey       = "log.level"
	ViperLogDevelopmentKey = "log.development"
)

const (
	// TipoOutros groups records that carry no authorization type.
	TipoOutros = "Outros"
	// NotAvailable is shown when a metric has nothing to be computed from.
	NotAvailable = "N/A"
	// Placeholder is rendered in place of empty fields.
	Placeholder = "-"

	DefaultRowLimit = 500
	DefaultPageSize = 50
	MaxPageSize     = 500
	DefaultTopN     = 10

	FirstYear = 2001
	LastYear  = 2025
)

const (
	CtxKeyRequestID = "request_id"
	HeaderRequestID = "X-Request-Id"
)
