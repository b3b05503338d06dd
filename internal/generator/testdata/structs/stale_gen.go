package structs

// left behind by an earlier run against a different schema
var stale = missingIdentifier
