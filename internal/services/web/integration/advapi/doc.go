// Package advapi is the client for the remote advertiser REST API.
//
// Every browser session owns one Session: a resty client over a cookie jar
// seeded from the credentials stored for that browser. Calls made through a
// Session may rotate the upstream cookies; callers persist Session.Credentials
// when Session.Changed reports true.
package advapi
