package catalog

// Catalog file formats
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Embedded resource names
const (
	DefaultRecipesFile = "recipes.yaml"
	SchemaFile         = "recipes.schema.json"
)

// Error messages
const (
	ErrMsgReadCatalogFailed    = "failed to read catalog file %s: %w"
	ErrMsgParseCatalogFailed   = "failed to parse %s catalog: %w"
	ErrMsgUnknownFormatFmt     = "unsupported catalog format %q"
	ErrMsgSchemaCompileFailed  = "failed to compile catalog schema: %w"
	ErrMsgSchemaValidateFailed = "catalog does not match schema: %w"
	ErrMsgEmptyCatalog         = "catalog has no recipes"
	ErrMsgLoadDefaultFailed    = "failed to load default catalog: %w"
)

// Log messages
const (
	LogMsgCatalogLoaded = "Recipe catalog loaded"
)
