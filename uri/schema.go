package uri

// Schema is a well-known URL scheme from a closed set.
// The zero value is [SchemaUndefined].
type Schema uint8

const (
	SchemaUndefined Schema = iota
	SchemaHTTP
	SchemaHTTPS
	SchemaFTP
	SchemaSFTP
	SchemaMailto
	SchemaFile
	SchemaData
	SchemaIRC
	SchemaSSH
	SchemaTelnet
	SchemaWS
	SchemaWSS
	SchemaLDAP
	SchemaRTSP
)

var schemaNames = [...]string{
	SchemaUndefined: "",
	SchemaHTTP:      "http",
	SchemaHTTPS:     "https",
	SchemaFTP:       "ftp",
	SchemaSFTP:      "sftp",
	SchemaMailto:    "mailto",
	SchemaFile:      "file",
	SchemaData:      "data",
	SchemaIRC:       "irc",
	SchemaSSH:       "ssh",
	SchemaTelnet:    "telnet",
	SchemaWS:        "ws",
	SchemaWSS:       "wss",
	SchemaLDAP:      "ldap",
	SchemaRTSP:      "rtsp",
}

var schemasByName = func() map[string]Schema {
	m := make(map[string]Schema, len(schemaNames)-1)
	for s, name := range schemaNames {
		if Schema(s) == SchemaUndefined {
			continue
		}
		m[name] = Schema(s)
	}
	return m
}()

// ParseSchema returns the schema whose name equals token exactly.
// Matching is case-sensitive, "HTTP" is not [SchemaHTTP].
// [SchemaUndefined] is returned for unknown tokens.
func ParseSchema(token string) Schema {
	return schemasByName[token]
}

// Schemas returns all known schemas in declaration order.
func Schemas() []Schema {
	ss := make([]Schema, 0, len(schemaNames)-1)
	for s := SchemaHTTP; int(s) < len(schemaNames); s++ {
		ss = append(ss, s)
	}
	return ss
}

// String returns the scheme text, e.g. "https".
// Undefined and out of range schemas return an empty string.
func (s Schema) String() string {
	if int(s) >= len(schemaNames) {
		return ""
	}
	return schemaNames[s]
}

// IsValid reports whether s is a known schema other than [SchemaUndefined].
func (s Schema) IsValid() bool {
	return s != SchemaUndefined && int(s) < len(schemaNames)
}
