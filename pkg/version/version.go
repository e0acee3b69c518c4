package version

// AppName is a name of a service
var AppName = "transactions-api"

// Version is the app-global version string, substituted with a real value during build
var Version = "UNKNOWN"
