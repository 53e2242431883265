// Package seed loads an initial alert collection from disk.
//
// JSON and YAML files hold a single array of alerts. JSON Lines files hold
// one alert per line and only the newest lines are kept, so very large
// captures are read in one pass with memory bounded by the limit.
package seed
