// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

//go:build !koru_debug_log && koru_debug_systrace

package driver

// DebugCommandsLevel is the instrumentation level this build was made with
const DebugCommandsLevel = DebugCommandsSystrace
