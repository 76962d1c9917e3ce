package lox

// Version is the interpreter release reported by the CLI.
const Version = "0.1.0"
