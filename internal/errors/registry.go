package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
	DocURL   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Decode Errors (E001-E099)
	// ============================================

	"E001": {
		Category: CategoryDecode,
		Message:  "Document is not valid JSON",
		Detail:   "The file could not be parsed as JSON. Documents must be a single JSON object, either a versioned wrapper or a bare node.",
		DocURL:   "https://kryon.dev/docs/errors/E001",
	},
	"E002": {
		Category: CategoryDecode,
		Message:  "Document has no root node",
		Detail:   "A versioned document must carry a \"root\" object. A bare node document must itself be a node object with a \"type\" field.",
		DocURL:   "https://kryon.dev/docs/errors/E002",
	},
	"E003": {
		Category: CategoryDecode,
		Message:  "Node is missing its type",
		Detail:   "Every node object needs a \"type\" field naming its kind in PascalCase, such as \"Container\" or \"Text\".",
		DocURL:   "https://kryon.dev/docs/errors/E003",
	},

	// ============================================
	// Validation Errors (E100-E199)
	// ============================================

	"E100": {
		Category: CategoryValidation,
		Message:  "Heading level out of range",
		Detail:   "Heading levels run from 1 to 6, matching the HTML heading elements.",
		DocURL:   "https://kryon.dev/docs/errors/E100",
	},
	"E101": {
		Category: CategoryValidation,
		Message:  "Malformed color literal",
		Detail:   "Colors are hex strings with 3, 6, or 8 digits (#f00, #ff0000, #ff0000cc) or an rgba(r, g, b, a) expression.",
		DocURL:   "https://kryon.dev/docs/errors/E101",
	},
	"E102": {
		Category: CategoryValidation,
		Message:  "Malformed dimension literal",
		Detail:   "Dimensions are \"auto\", a pixel count like \"100px\", or a percentage like \"50%\". Unrecognized strings are carried through opaquely, so this only fires when a dimension object is structurally wrong.",
		DocURL:   "https://kryon.dev/docs/errors/E102",
	},

	// ============================================
	// Codegen Errors (E200-E299)
	// ============================================

	"E200": {
		Category: CategoryCodegen,
		Message:  "Source generation failed",
		Detail:   "The document decoded cleanly but could not be regenerated as source.",
		DocURL:   "https://kryon.dev/docs/errors/E200",
	},

	// ============================================
	// CLI Errors (E300-E399)
	// ============================================

	"E300": {
		Category: CategoryCLI,
		Message:  "Input file not found",
		Detail:   "The document path given on the command line does not exist or is not readable.",
		DocURL:   "https://kryon.dev/docs/errors/E300",
	},
	"E301": {
		Category: CategoryCLI,
		Message:  "Output file could not be written",
		DocURL:   "https://kryon.dev/docs/errors/E301",
	},
	"E302": {
		Category: CategoryCLI,
		Message:  "Unknown output language",
		Detail:   "The --language flag names the language recorded in document metadata; it is free-form, but source regeneration only supports \"go\".",
		DocURL:   "https://kryon.dev/docs/errors/E302",
	},

	// ============================================
	// Store Errors (E400-E499)
	// ============================================

	"E400": {
		Category: CategoryStore,
		Message:  "Invalid document name",
		Detail:   "Published document names may not contain path separators or parent references.",
		DocURL:   "https://kryon.dev/docs/errors/E400",
	},
	"E401": {
		Category: CategoryStore,
		Message:  "Document not found in store",
		DocURL:   "https://kryon.dev/docs/errors/E401",
	},
	"E402": {
		Category: CategoryStore,
		Message:  "Store operation failed",
		Detail:   "The disk or S3 backend reported an error. The wrapped error carries the backend detail.",
		DocURL:   "https://kryon.dev/docs/errors/E402",
	},
}

// Lookup returns the template for a code, if registered.
func Lookup(code string) (ErrorTemplate, bool) {
	template, ok := registry[code]
	return template, ok
}
