// Package entities catalogs the Nordkost business records and wires each of
// them to a cached resource. One entity costs a struct plus a dozen lines of
// wiring; everything else (query encoding, caching, invalidation,
// notifications) comes from apiclient and resourcecache.
package entities
