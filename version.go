package whisperer

// Version is the service version reported by the health endpoint and
// the --version flag
const Version = "1.0.0"
