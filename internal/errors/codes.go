package errors

type Code string

const (
	CodeUnknown            Code = "UNKNOWN"
	CodeInternal           Code = "INTERNAL_ERROR"
	CodeConfigValidation   Code = "CONFIG_VALIDATION_ERROR"
	CodeConfigReadError    Code = "CONFIG_READ_ERROR"
	CodeConfigParseError   Code = "CONFIG_PARSE_ERROR"
	CodeConfigNotFound     Code = "CONFIG_NOT_FOUND"
	CodePlatformAPIError   Code = "PLATFORM_API_ERROR"
	CodePlatformAuthError  Code = "PLATFORM_AUTH_ERROR"
	CodeResourceNotFound   Code = "RESOURCE_NOT_FOUND"
	CodeTypeAssertionError Code = "TYPE_ASSERTION_ERROR"
	CodeNotImplemented     Code = "NOT_IMPLEMENTED"
	CodeTimeout            Code = "TIMEOUT_ERROR"

	// Discovery and tagging
	CodeLookupMiss            Code = "LOOKUP_MISS"
	CodeMalformedSchema       Code = "MALFORMED_SCHEMA"
	CodeTransient             Code = "TRANSIENT_ERROR"
	CodeStorageReadError      Code = "STORAGE_READ_ERROR"
	CodeStorageWriteError     Code = "STORAGE_WRITE_ERROR"
	CodeDocumentParseError    Code = "DOCUMENT_PARSE_ERROR"
	CodeSpreadsheetParseError Code = "SPREADSHEET_PARSE_ERROR"
)

func (c Code) String() string {
	return string(c)
}

// ErrorKind is the coarse classification used by the jobs to decide whether
// a per-resource failure is skipped, logged or propagated.
type ErrorKind string

const (
	KindNone       ErrorKind = ""
	KindLookupMiss ErrorKind = "lookup_miss"
	KindMalformed  ErrorKind = "malformed_schema"
	KindTransient  ErrorKind = "transient"
	KindAuth       ErrorKind = "auth"
	KindNotFound   ErrorKind = "not_found"
	KindCanceled   ErrorKind = "canceled"
	KindOther      ErrorKind = "other"
)

var codeKinds = map[Code]ErrorKind{
	CodeLookupMiss:            KindLookupMiss,
	CodeMalformedSchema:       KindMalformed,
	CodeDocumentParseError:    KindMalformed,
	CodeSpreadsheetParseError: KindMalformed,
	CodeTransient:             KindTransient,
	CodeTimeout:               KindTransient,
	CodePlatformAuthError:     KindAuth,
	CodeResourceNotFound:      KindNotFound,
}
