// Package assets embeds the dashboard page template and its static files.
package assets

import _ "embed"

// Index is the page template, executed with html/template.
//
//go:embed index.html.tpl
var Index string

// Style is the page stylesheet, minified before inlining.
//
//go:embed style.css
var Style string

// Script draws the marker map, minified before inlining.
//
//go:embed script.js
var Script string

// Favicon is served at /favicon.ico.
//
//go:embed favicon.svg
var Favicon []byte
