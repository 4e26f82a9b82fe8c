// Copyright (c) 2025 Vox Observer.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package providers holds the clients for the external collaborators the
dashboard leans on. All of them are opaque request/response dependencies:
one call, a timeout, no retry or backoff logic of their own. A failed call
surfaces as an error and the boundary maps it to 502.

  - Wikipedia: encyclopedia page summaries keyed by display name
  - Brave: web search returning title/url/snippet triples
  - Completion: chat-completion text used as position labels

Each client exposes its base URL (or accepts a client config) so tests can
point it at an httptest.Server fake.
*/
package providers
