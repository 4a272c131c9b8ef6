// Package exporter writes the pipeline's output files.
//
// It contains three components:
//
// CSV export: the cleaned dataset with numeric codes and a labeled copy
// with human-readable category columns, with optional UTF-8 BOM for
// Excel compatibility.
//
// Workbook export: a multi-sheet XLSX workbook holding the descriptive
// statistics, correlation matrix, group aggregates and test results.
//
// Summary export: a plain-text digest of the headline findings.
package exporter
