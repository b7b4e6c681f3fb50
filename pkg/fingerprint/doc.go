// Package fingerprint derives a stable, anonymous client identifier from
// ambient browser identity signals.
//
// Generate hashes the useragent.Env values (user agent, platform,
// language, touch capability); GenerateRequest does the same from HTTP
// identity headers plus the set of stable headers present on the
// request. Both return a 32-character hex string suitable as a cache or
// analytics key. No raw signal is recoverable from the output.
//
//	fp := fingerprint.Generate(useragent.NewEnv(ua, useragent.WithPlatform(platform)))
//
// The Middleware variant computes the request fingerprint once and
// stores it in the context for downstream handlers.
package fingerprint
