package version

// Version is the server release version.
const Version = "0.3.1"

// ProtocolVersion is the MCP protocol revision this server prefers.
const ProtocolVersion = "2024-11-05"

// SupportedProtocolVersions lists revisions the server will negotiate,
// newest first.
var SupportedProtocolVersions = []string{
	"2025-06-18",
	"2025-03-26",
	"2024-11-05",
}
