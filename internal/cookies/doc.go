// Package cookies reads the Gemini session cookies out of browser cookie
// exports. The main entry point is Extractor, which reads a Netscape-format
// text export and keeps only the three recognized identifiers
// (__Secure-1PSID, __Secure-1PSIDCC and __Secure-1PSIDTS). ImportCookies
// additionally reads Firefox and Chrome SQLite cookie stores so that the
// same cookies can be re-exported as a Netscape file.
//
// Cookie values are never logged. Only names, paths and counts are.
package cookies
