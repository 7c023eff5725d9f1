// Package i18n provides the translation lookup consumed by field error
// messages. The field engine only depends on the Translator interface;
// Catalog is the YAML-backed implementation for applications that ship
// locale files, and Static covers tests and small programs.
package i18n
