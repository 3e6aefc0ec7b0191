package sdk

// Version is the SDK release version, sent in the User-Agent header.
const Version = "0.3.0"
