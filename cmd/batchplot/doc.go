// Package main is the entry point for the batchplot analyzer.
//
// batchplot reads a CSV file of grouped experimental measurements
// (batch,x,y,value per line), averages each batch's values over the points
// inside the unit circle, prints the averages as a table and renders a
// scatter plot of all points next to the input file.
//
// Configuration:
//   - Environment variables (BATCHPLOT_* — log level, plot format and size)
//   - CLI flags for the input file and optional JSON export
//   - Interactive filename prompt when no -file flag is given
//
// Usage:
//
//	# Interactive
//	./batchplot
//	Which CSV file should be analyzed? measurements.csv
//
//	# Scripted, with JSON export
//	./batchplot -file measurements.csv -export results.json
//
// Exit codes: 0 on success, 1 when the input file is missing or any
// reporting stage fails.
package main
