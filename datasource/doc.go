// Package datasource loads transaction Datasets from files. A Parser turns one file
// into lists of item labels; LoadFiles parses several files concurrently and maps
// their labels onto dense item indices.
package datasource
