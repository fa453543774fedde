// Package storage provides persistent stores on top of the sql engine.
// Corpus keeps labeled training messages, Detections keeps messages classified as spam.
// Each store works with its own table, all rows are scoped by the engine's group id.
package storage
