// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package driver is the base every backend driver is built on.
//
// Resources the backend is finished with are not released where the
// backend notices it, which is usually the backend goroutine in the middle
// of executing commands. They are queued with ScheduleDestroySlow or
// ScheduleRelease and released when the user goroutine calls Purge, once
// per frame. Purge detaches the queue under its lock and runs the release
// callbacks with the lock dropped, so callbacks are free to call back into
// the driver.
//
// Driver methods can be bracketed with DebugCommandBegin and
// DebugCommandEnd. The instrumentation level is fixed at build time:
//
//	go build -tags koru_debug_log             # method names to the log
//	go build -tags koru_debug_systrace        # begin/end trace markers
//	go build -tags "koru_debug_log koru_debug_systrace"
//
// Without either tag both functions are empty.
package driver
