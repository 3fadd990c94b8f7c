// Package report renders the diagnostics of a finished slideshow as an
// Excel workbook: tag-count histogram of horizontal and combined slides,
// score against maximum score at every junction, cumulative slide counts
// and cumulative lost score, each with a chart.
package report
