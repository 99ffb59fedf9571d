package providers

const (
	// Identifier for tools.keycdn.com.
	NameKeyCDN = "keycdn"

	// Identifier for ip-api.com.
	NameIPAPI = "ipapi"

	// Identifier for ipinfo.io.
	NameIPInfo = "ipinfo"

	// Identifier for ipstack.com
	NameIPStack = "ipstack"

	// Identifier for ip2c.org.
	NameIP2C = "ip2c"

	// Identifier for a generic scraper of HTML tables.
	NameHTMLTable = "htmltable"

	// Identifier for local MaxMind GeoIP2/GeoLite2 City databases.
	NameMaxmind = "maxmind"

	// Identifier for local IP2Location BIN databases.
	NameIP2Location = "ip2location"
)
