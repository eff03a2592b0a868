package kv

// Logical namespaces used by the API handlers. Every value is a full JSON
// document (or an opaque token string) replaced atomically on write.
const (
	// KeySites holds the serialized Collection.
	KeySites = "navhome:sites"
	// KeyConfig holds the opaque settings blob.
	KeyConfig = "navhome:config"
	// KeyAdminToken holds the admin secret when it is not supplied via
	// the environment.
	KeyAdminToken = "navhome:config:api_token"
)
