// config.go - Haupt-Konfigurationsfunktionen fuer tensorlower
//
// Dieses Modul enthaelt:
// - LogLevel: Gibt Log-Level zurueck (TENSORLOWER_DEBUG)
// - Backend: Gibt den Graph-Builder-Backend-Namen zurueck (TENSORLOWER_BACKEND)
// - Var: Liest eine bereinigte Environment-Variable
//
// Weitere Konfigurationen sind ausgelagert:
// - config_features.go: Limits des Referenz-Builders
// - config_utils.go: Utility-Funktionen und AsMap/Values
package envconfig

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// LogLevel gibt das Log-Level zurueck
// Konfigurierbar via TENSORLOWER_DEBUG
// Werte: 0/false = INFO (Default), 1/true = DEBUG, 2 = TRACE
func LogLevel() slog.Level {
	level := slog.LevelInfo
	if s := Var("TENSORLOWER_DEBUG"); s != "" {
		if b, _ := strconv.ParseBool(s); b {
			level = slog.LevelDebug
		} else if i, _ := strconv.ParseInt(s, 10, 64); i != 0 {
			level = slog.Level(i * -4)
		}
	}

	return level
}

// Backend gibt den Namen des Graph-Builder-Backends zurueck
// Konfigurierbar via TENSORLOWER_BACKEND
// Default: ref
func Backend() string {
	if s := backend(); s != "" {
		return s
	}
	return "ref"
}

var backend = String("TENSORLOWER_BACKEND")

// Var gibt eine Environment-Variable zurueck
// Entfernt fuehrende/trailing Quotes und Leerzeichen
func Var(key string) string {
	return strings.Trim(strings.TrimSpace(os.Getenv(key)), "\"'")
}
