package arbor

// Version is the release of the module, printed by the CLI.
const Version = "0.1.0"
