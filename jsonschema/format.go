package jsonschema

// Format names the expected format of a string instance. The constants below
// cover the formats this package recognizes, any other value is a custom
// format carried verbatim.
type Format string

const (
	// FormatDateTime represents an RFC 3339 date-time string.
	FormatDateTime Format = "date-time"
	// FormatEmail represents an email address string.
	FormatEmail Format = "email"
	// FormatHostname represents an internet hostname string.
	FormatHostname Format = "hostname"
	// FormatIPv4 represents an IPv4 address string.
	FormatIPv4 Format = "ipv4"
	// FormatIPv6 represents an IPv6 address string.
	FormatIPv6 Format = "ipv6"
	// FormatURI represents a URI string.
	FormatURI Format = "uri"
)

// Known returns true if the format is one of the recognized constants.
func (f Format) Known() bool {
	switch f {
	case FormatDateTime, FormatEmail, FormatHostname, FormatIPv4, FormatIPv6, FormatURI:
		return true
	default:
		return false
	}
}

// String returns the format as a string.
func (f Format) String() string {
	return string(f)
}
