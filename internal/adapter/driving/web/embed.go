package web

import "embed"

// StaticFS holds the embedded static assets (stylesheet).
//
//go:embed static/*
var StaticFS embed.FS

// templateFS holds the embedded HTML page templates.
//
//go:embed templates/*.html
var templateFS embed.FS
