// Package driver sequences one end-to-end optimization run: parse the
// stdin configuration protocol, ingest regions/routes/activity data,
// run intersector to populate Benefits, run knapsack to choose an
// allocation, and write the result. Every run is tagged with a uuid
// correlation id included in every log line it produces, in the style
// of sneller's per-query id logging (elasticproxy/proxy_http/logging.go).
package driver
