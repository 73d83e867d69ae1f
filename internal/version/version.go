package version

// Version is the ekan CLI version. Overridden at build time with
// -ldflags "-X github.com/Fanaperana/ekan/internal/version.Version=...".
var Version = "0.1.0"
