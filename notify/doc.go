// Copyright (c) 2025 BeefMusic.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package notify forwards listener submissions (song requests, suggestions,
problem reports) to Discord webhooks.

Each submission type has its own webhook URL; an unset URL disables that
notification. Posts are retried up to 3 times and are best-effort
throughout: callers log a failed notification and carry on, the submission
itself is already stored.
*/
package notify
