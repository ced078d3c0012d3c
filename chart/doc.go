// Package chart drives a chart instance living in a JavaScript runtime.
//
// A Chart serializes its options with package chartopts and hands the
// resulting payloads to a Runtime, which calls the browser-side helpers
// initChart, updateChart, clearChart and disposeChart. ScriptRuntime records
// those calls as JavaScript statements for static pages.
package chart
