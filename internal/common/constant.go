package common

// AuthorizationHeaderName is the HTTP header carrying the gateway token.
const AuthorizationHeaderName = "Authorization"

// DefaultReservedListID is the list every owner receives automatically.
const DefaultReservedListID = "bestgirl"

// PageBudget is the maximum number of characters in a rendered page body.
const PageBudget = 2048
